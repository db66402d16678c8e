// Copyright (c) 2025 Pollbox Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package polls

import (
	"context"
	"errors"
	"time"

	"pollbox/models"
)

var (
	// ErrQuestionNotFound covers questions that do not exist as well as
	// questions that are not currently displayed. Callers cannot tell a
	// future-dated or choiceless question apart from a nonexistent one.
	ErrQuestionNotFound = errors.New("question not found")

	// ErrInvalidChoice means the question resolved but the submitted
	// choice does not belong to it. Recoverable: re-present the form.
	ErrInvalidChoice = errors.New("choice does not belong to question")
)

// DefaultListLimit is the number of questions the index shows when the
// caller does not ask for a specific limit.
const DefaultListLimit = 5

// Store is the record store the services operate on. Implementations must
// apply the vote increment as an atomic read-modify-write so concurrent
// votes are never lost.
type Store interface {
	// ListDisplayed returns displayed questions ordered by publish
	// timestamp descending, ties broken by id descending, at most limit.
	ListDisplayed(ctx context.Context, now time.Time, limit int) ([]models.Question, error)

	// GetDisplayed returns the question iff it exists and is displayed
	// at now; otherwise ErrQuestionNotFound.
	GetDisplayed(ctx context.Context, id string, now time.Time) (models.Question, error)

	// ChoicesByQuestion returns the question's choices ordered by id.
	ChoicesByQuestion(ctx context.Context, questionID string) ([]models.Choice, error)

	// IncrementVotes adds exactly 1 to the tally of the choice, scoped to
	// the owning question. ErrInvalidChoice when no such choice exists
	// under that question.
	IncrementVotes(ctx context.Context, questionID, choiceID string) error
}

// Service implements the listing and voting operations over an injected
// record store. All methods take the current time explicitly.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// ListRecent returns the displayed questions, most recently published
// first. A non-positive limit falls back to DefaultListLimit. An empty
// result is not an error.
func (s *Service) ListRecent(ctx context.Context, now time.Time, limit int) ([]models.Question, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	return s.store.ListDisplayed(ctx, now, limit)
}

// GetForInteraction resolves a question for the detail, results, and
// voting flows. Hidden questions fail with ErrQuestionNotFound exactly
// like missing ones.
func (s *Service) GetForInteraction(ctx context.Context, id string, now time.Time) (models.Question, error) {
	return s.store.GetDisplayed(ctx, id, now)
}

// Results returns a displayed question together with its choices and
// their tallies.
func (s *Service) Results(ctx context.Context, id string, now time.Time) (models.Question, []models.Choice, error) {
	q, err := s.GetForInteraction(ctx, id, now)
	if err != nil {
		return models.Question{}, nil, err
	}
	choices, err := s.store.ChoicesByQuestion(ctx, q.ID)
	if err != nil {
		return models.Question{}, nil, err
	}
	return q, choices, nil
}

// VoteReceipt points the caller at the results of the question just
// voted on.
type VoteReceipt struct {
	QuestionID string
	ChoiceID   string
}

// RecordVote applies one vote to the choice. ErrQuestionNotFound when the
// question is missing or hidden, ErrInvalidChoice when the choice does not
// belong to it. No tally mutates on failure; each successful call adds
// exactly 1 (repeat submissions count as distinct votes).
func (s *Service) RecordVote(ctx context.Context, questionID, choiceID string, now time.Time) (VoteReceipt, error) {
	q, err := s.GetForInteraction(ctx, questionID, now)
	if err != nil {
		return VoteReceipt{}, err
	}
	if err := s.store.IncrementVotes(ctx, q.ID, choiceID); err != nil {
		return VoteReceipt{}, err
	}
	return VoteReceipt{QuestionID: q.ID, ChoiceID: choiceID}, nil
}
