// Copyright (c) 2025 Pollbox Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Request types

type CreateQuestionRequest struct {
	Text    string     `json:"text"`
	PubDate *time.Time `json:"pub_date,omitempty"` // defaults to now; future dates schedule publication
}

type UpdateQuestionRequest struct {
	Text    *string    `json:"text,omitempty"`
	PubDate *time.Time `json:"pub_date,omitempty"`
}

type AddChoiceRequest struct {
	Text string `json:"text"`
}

type VoteRequest struct {
	ChoiceID string `json:"choice_id"`
}

// Response types

type CreateQuestionResponse struct {
	QuestionID string `json:"question_id"`
	AdminKey   string `json:"admin_key"`
}

type AddChoiceResponse struct {
	ChoiceID string `json:"choice_id"`
}

type VoteResponse struct {
	QuestionID string `json:"question_id"`
	ChoiceID   string `json:"choice_id"`
	ResultsURL string `json:"results_url"`
}

// QuestionSummary is one entry of the index listing.
type QuestionSummary struct {
	ID           string    `json:"id"`
	Text         string    `json:"text"`
	PubDate      time.Time `json:"pub_date"`
	PublishedAgo string    `json:"published_ago"`
}

type QuestionListResponse struct {
	Questions []QuestionSummary `json:"questions"`
	Message   string            `json:"message,omitempty"`
}

// ChoiceOption is a choice as shown on the detail (voting form) view.
// Tallies are deliberately absent; they belong to the results view.
type ChoiceOption struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type QuestionDetailResponse struct {
	ID           string         `json:"id"`
	Text         string         `json:"text"`
	PubDate      time.Time      `json:"pub_date"`
	PublishedAgo string         `json:"published_ago"`
	Choices      []ChoiceOption `json:"choices"`
}

// ChoiceResult is a choice with its vote tally on the results view.
type ChoiceResult struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Votes int64  `json:"votes"`
}

type QuestionResultsResponse struct {
	ID         string         `json:"id"`
	Text       string         `json:"text"`
	PubDate    time.Time      `json:"pub_date"`
	Choices    []ChoiceResult `json:"choices"`
	TotalVotes int64          `json:"total_votes"`
}

// QuestionAdminResponse is the admin view of a question. Unlike the public
// views it includes unpublished questions and per-choice tallies.
type QuestionAdminResponse struct {
	Question             Question `json:"question"`
	Choices              []Choice `json:"choices"`
	Published            bool     `json:"published"`
	Displayed            bool     `json:"displayed"`
	WasPublishedRecently bool     `json:"was_published_recently"`
}

// Domain types

type Question struct {
	ID      string    `json:"id"`
	Text    string    `json:"text"`
	PubDate time.Time `json:"pub_date"`

	// ChoiceCount is populated by store reads; it is not a column of the
	// question table.
	ChoiceCount int `json:"-"`
}

type Choice struct {
	ID         string `json:"id"`
	QuestionID string `json:"question_id"`
	Text       string `json:"text"`
	Votes      int64  `json:"votes"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
