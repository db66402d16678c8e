// Copyright (c) 2025 Pollbox Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/jonboulle/clockwork"

	"pollbox/middleware"
	"pollbox/models"
	"pollbox/polls"
)

// ListingHandler serves the public read-only views: index, detail, and
// results. Unpublished and choiceless questions are invisible here.
type ListingHandler struct {
	svc   *polls.Service
	clock clockwork.Clock
}

func NewListingHandler(svc *polls.Service, clock clockwork.Clock) *ListingHandler {
	return &ListingHandler{svc: svc, clock: clock}
}

// Index handles GET /questions
// Returns the most recently published questions, default 5.
func (h *ListingHandler) Index(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		n, err := strconv.Atoi(limitStr)
		if err != nil || n <= 0 {
			middleware.ErrorResponse(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	now := h.clock.Now()
	questions, err := h.svc.ListRecent(r.Context(), now, limit)
	if err != nil {
		slog.Error("failed to list questions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	resp := models.QuestionListResponse{
		Questions: make([]models.QuestionSummary, 0, len(questions)),
	}
	for _, q := range questions {
		resp.Questions = append(resp.Questions, models.QuestionSummary{
			ID:           q.ID,
			Text:         q.Text,
			PubDate:      q.PubDate,
			PublishedAgo: humanize.RelTime(q.PubDate, now, "ago", "from now"),
		})
	}
	if len(resp.Questions) == 0 {
		resp.Message = "No polls are available."
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// Detail handles GET /questions/{id}
// Returns the question and its choices without tallies (the voting form).
func (h *ListingHandler) Detail(w http.ResponseWriter, r *http.Request) {
	questionID := r.PathValue("id")
	if questionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question_id is required")
		return
	}

	now := h.clock.Now()
	q, choices, err := h.svc.Results(r.Context(), questionID, now)
	if errors.Is(err, polls.ErrQuestionNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}
	if err != nil {
		slog.Error("failed to query question", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	resp := models.QuestionDetailResponse{
		ID:           q.ID,
		Text:         q.Text,
		PubDate:      q.PubDate,
		PublishedAgo: humanize.RelTime(q.PubDate, now, "ago", "from now"),
		Choices:      make([]models.ChoiceOption, 0, len(choices)),
	}
	for _, c := range choices {
		resp.Choices = append(resp.Choices, models.ChoiceOption{ID: c.ID, Text: c.Text})
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// Results handles GET /questions/{id}/results
// Returns the question and its choices with vote tallies.
func (h *ListingHandler) Results(w http.ResponseWriter, r *http.Request) {
	questionID := r.PathValue("id")
	if questionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question_id is required")
		return
	}

	now := h.clock.Now()
	q, choices, err := h.svc.Results(r.Context(), questionID, now)
	if errors.Is(err, polls.ErrQuestionNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}
	if err != nil {
		slog.Error("failed to query results", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	resp := models.QuestionResultsResponse{
		ID:      q.ID,
		Text:    q.Text,
		PubDate: q.PubDate,
		Choices: make([]models.ChoiceResult, 0, len(choices)),
	}
	for _, c := range choices {
		resp.Choices = append(resp.Choices, models.ChoiceResult{ID: c.ID, Text: c.Text, Votes: c.Votes})
		resp.TotalVotes += c.Votes
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}
