// Copyright (c) 2025 Pollbox Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"pollbox/models"
	"pollbox/polls"
)

// timeLayout is fixed-width (microseconds, always UTC with a trailing Z)
// so text comparison of two encoded values matches time order.
const timeLayout = "2006-01-02T15:04:05.000000Z07:00"

func encodeTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func decodeTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse pub_date %q: %w", s, err)
	}
	return t, nil
}

// SQLStore is the record store over a SQL database. It implements
// polls.Store and additionally carries the administrative writes.
type SQLStore struct {
	db *sql.DB
}

func New(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

// ListDisplayed returns published questions with at least one choice,
// newest first, ties broken by id descending so the order is a total one.
func (s *SQLStore) ListDisplayed(ctx context.Context, now time.Time, limit int) ([]models.Question, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT q.id, q.text, q.pub_date, COUNT(c.id)
		FROM question q
		JOIN choice c ON c.question_id = q.id
		WHERE q.pub_date <= $1
		GROUP BY q.id, q.text, q.pub_date
		ORDER BY q.pub_date DESC, q.id DESC
		LIMIT $2
	`, encodeTime(now), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query displayed questions: %w", err)
	}
	defer rows.Close()

	questions := []models.Question{}
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate questions: %w", err)
	}

	return questions, nil
}

// GetDisplayed resolves a question for public interaction. Missing,
// future-dated, and choiceless questions all come back as
// polls.ErrQuestionNotFound.
func (s *SQLStore) GetDisplayed(ctx context.Context, id string, now time.Time) (models.Question, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT q.id, q.text, q.pub_date, COUNT(c.id)
		FROM question q
		JOIN choice c ON c.question_id = q.id
		WHERE q.id = $1 AND q.pub_date <= $2
		GROUP BY q.id, q.text, q.pub_date
	`, id, encodeTime(now))

	q, err := scanQuestion(row)
	if err == sql.ErrNoRows {
		return models.Question{}, polls.ErrQuestionNotFound
	}
	if err != nil {
		return models.Question{}, err
	}

	return q, nil
}

// GetQuestion is the administrative lookup: no publish or choice gating.
func (s *SQLStore) GetQuestion(ctx context.Context, id string) (models.Question, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT q.id, q.text, q.pub_date, COUNT(c.id)
		FROM question q
		LEFT JOIN choice c ON c.question_id = q.id
		WHERE q.id = $1
		GROUP BY q.id, q.text, q.pub_date
	`, id)

	q, err := scanQuestion(row)
	if err == sql.ErrNoRows {
		return models.Question{}, polls.ErrQuestionNotFound
	}
	if err != nil {
		return models.Question{}, err
	}

	return q, nil
}

// ChoicesByQuestion returns the question's choices ordered by id.
func (s *SQLStore) ChoicesByQuestion(ctx context.Context, questionID string) ([]models.Choice, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, question_id, text, votes
		FROM choice
		WHERE question_id = $1
		ORDER BY id
	`, questionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query choices: %w", err)
	}
	defer rows.Close()

	choices := []models.Choice{}
	for rows.Next() {
		var c models.Choice
		if err := rows.Scan(&c.ID, &c.QuestionID, &c.Text, &c.Votes); err != nil {
			return nil, fmt.Errorf("failed to scan choice: %w", err)
		}
		choices = append(choices, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate choices: %w", err)
	}

	return choices, nil
}

// IncrementVotes applies one vote as a single atomic statement. Scoping
// the UPDATE by question_id makes "choice of another question" and
// "choice does not exist" the same no-op, reported as
// polls.ErrInvalidChoice.
func (s *SQLStore) IncrementVotes(ctx context.Context, questionID, choiceID string) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE choice
		SET votes = votes + 1
		WHERE id = $1 AND question_id = $2
	`, choiceID, questionID)
	if err != nil {
		return fmt.Errorf("failed to increment votes: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return polls.ErrInvalidChoice
	}

	return nil
}

// CreateQuestion inserts a question with a fresh id. The publish
// timestamp is truncated to the stored precision so reads round-trip.
func (s *SQLStore) CreateQuestion(ctx context.Context, text string, pubDate time.Time) (models.Question, error) {
	q := models.Question{
		ID:      uuid.NewString(),
		Text:    text,
		PubDate: pubDate.UTC().Truncate(time.Microsecond),
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO question (id, text, pub_date)
		VALUES ($1, $2, $3)
	`, q.ID, q.Text, encodeTime(q.PubDate))
	if err != nil {
		return models.Question{}, fmt.Errorf("failed to insert question: %w", err)
	}

	return q, nil
}

// UpdateQuestion applies an administrative edit. Nil fields are left
// unchanged.
func (s *SQLStore) UpdateQuestion(ctx context.Context, id string, text *string, pubDate *time.Time) error {
	q, err := s.GetQuestion(ctx, id)
	if err != nil {
		return err
	}

	if text != nil {
		q.Text = *text
	}
	if pubDate != nil {
		q.PubDate = pubDate.UTC().Truncate(time.Microsecond)
	}

	_, err = s.db.ExecContext(ctx, `
		UPDATE question
		SET text = $1, pub_date = $2
		WHERE id = $3
	`, q.Text, encodeTime(q.PubDate), id)
	if err != nil {
		return fmt.Errorf("failed to update question: %w", err)
	}

	return nil
}

// DeleteQuestion removes a question; its choices cascade.
func (s *SQLStore) DeleteQuestion(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM question WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete question: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return polls.ErrQuestionNotFound
	}

	return nil
}

// AddChoice creates a choice under the question with a zero tally.
func (s *SQLStore) AddChoice(ctx context.Context, questionID, text string) (models.Choice, error) {
	if _, err := s.GetQuestion(ctx, questionID); err != nil {
		return models.Choice{}, err
	}

	c := models.Choice{
		ID:         uuid.NewString(),
		QuestionID: questionID,
		Text:       text,
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO choice (id, question_id, text, votes)
		VALUES ($1, $2, $3, 0)
	`, c.ID, c.QuestionID, c.Text)
	if err != nil {
		return models.Choice{}, fmt.Errorf("failed to insert choice: %w", err)
	}

	return c, nil
}

// DeleteChoice removes a choice, scoped to its owning question.
func (s *SQLStore) DeleteChoice(ctx context.Context, questionID, choiceID string) error {
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM choice WHERE id = $1 AND question_id = $2
	`, choiceID, questionID)
	if err != nil {
		return fmt.Errorf("failed to delete choice: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return polls.ErrInvalidChoice
	}

	return nil
}

// scanner covers *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanQuestion(row scanner) (models.Question, error) {
	var q models.Question
	var pubDate string
	if err := row.Scan(&q.ID, &q.Text, &pubDate, &q.ChoiceCount); err != nil {
		if err == sql.ErrNoRows {
			return models.Question{}, err
		}
		return models.Question{}, fmt.Errorf("failed to scan question: %w", err)
	}

	t, err := decodeTime(pubDate)
	if err != nil {
		return models.Question{}, err
	}
	q.PubDate = t

	return q, nil
}
