// Copyright (c) 2025 Pollbox Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/jonboulle/clockwork"

	"pollbox/auth"
	"pollbox/cliparse"
	"pollbox/middleware"
	"pollbox/models"
	"pollbox/polls"
	"pollbox/store"
)

// QuestionHandler owns the administrative surface: creating, editing, and
// deleting questions and their choices.
type QuestionHandler struct {
	store *store.SQLStore
	cfg   cliparse.Config
	clock clockwork.Clock
}

func NewQuestionHandler(st *store.SQLStore, cfg cliparse.Config, clock clockwork.Clock) *QuestionHandler {
	return &QuestionHandler{store: st, cfg: cfg, clock: clock}
}

// Create handles POST /questions
func (h *QuestionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateQuestionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate input
	if req.Text == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "text is required")
		return
	}

	pubDate := h.clock.Now()
	if req.PubDate != nil {
		pubDate = *req.PubDate
	}

	q, err := h.store.CreateQuestion(r.Context(), req.Text, pubDate)
	if err != nil {
		slog.Error("failed to insert question", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create question")
		return
	}

	// Generate admin key
	adminKey := auth.GenerateAdminKey(q.ID, h.cfg.AdminKeySalt)

	slog.Info("question created", "question_id", q.ID, "pub_date", q.PubDate)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateQuestionResponse{
		QuestionID: q.ID,
		AdminKey:   adminKey,
	})
}

// GetAdmin handles GET /questions/{id}/admin
// Returns full question state, including unpublished questions the public
// views hide.
func (h *QuestionHandler) GetAdmin(w http.ResponseWriter, r *http.Request) {
	questionID := r.PathValue("id")
	if questionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question_id is required")
		return
	}

	// Validate admin key
	adminKey := r.Header.Get("X-Admin-Key")
	if err := auth.ValidateAdminKey(questionID, adminKey, h.cfg.AdminKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return
	}

	q, err := h.store.GetQuestion(r.Context(), questionID)
	if errors.Is(err, polls.ErrQuestionNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}
	if err != nil {
		slog.Error("failed to query question", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	choices, err := h.store.ChoicesByQuestion(r.Context(), q.ID)
	if err != nil {
		slog.Error("failed to query choices", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	now := h.clock.Now()
	middleware.JSONResponse(w, http.StatusOK, models.QuestionAdminResponse{
		Question:             q,
		Choices:              choices,
		Published:            polls.IsPublished(q, now),
		Displayed:            polls.IsDisplayed(q, now),
		WasPublishedRecently: polls.WasPublishedRecently(q, now),
	})
}

// Update handles PATCH /questions/{id}
func (h *QuestionHandler) Update(w http.ResponseWriter, r *http.Request) {
	questionID := r.PathValue("id")
	if questionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question_id is required")
		return
	}

	// Validate admin key
	adminKey := r.Header.Get("X-Admin-Key")
	if err := auth.ValidateAdminKey(questionID, adminKey, h.cfg.AdminKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return
	}

	var req models.UpdateQuestionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Text == nil && req.PubDate == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "nothing to update")
		return
	}
	if req.Text != nil && *req.Text == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "text cannot be empty")
		return
	}

	err := h.store.UpdateQuestion(r.Context(), questionID, req.Text, req.PubDate)
	if errors.Is(err, polls.ErrQuestionNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}
	if err != nil {
		slog.Error("failed to update question", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update question")
		return
	}

	slog.Info("question updated", "question_id", questionID)

	q, err := h.store.GetQuestion(r.Context(), questionID)
	if err != nil {
		slog.Error("failed to query question after update", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, q)
}

// Delete handles DELETE /questions/{id}
func (h *QuestionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	questionID := r.PathValue("id")
	if questionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question_id is required")
		return
	}

	// Validate admin key
	adminKey := r.Header.Get("X-Admin-Key")
	if err := auth.ValidateAdminKey(questionID, adminKey, h.cfg.AdminKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return
	}

	err := h.store.DeleteQuestion(r.Context(), questionID)
	if errors.Is(err, polls.ErrQuestionNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}
	if err != nil {
		slog.Error("failed to delete question", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete question")
		return
	}

	slog.Info("question deleted", "question_id", questionID)

	w.WriteHeader(http.StatusNoContent)
}

// AddChoice handles POST /questions/{id}/choices
func (h *QuestionHandler) AddChoice(w http.ResponseWriter, r *http.Request) {
	questionID := r.PathValue("id")
	if questionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question_id is required")
		return
	}

	// Validate admin key
	adminKey := r.Header.Get("X-Admin-Key")
	if err := auth.ValidateAdminKey(questionID, adminKey, h.cfg.AdminKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return
	}

	// Parse request
	var req models.AddChoiceRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Text == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "text is required")
		return
	}

	c, err := h.store.AddChoice(r.Context(), questionID, req.Text)
	if errors.Is(err, polls.ErrQuestionNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}
	if err != nil {
		slog.Error("failed to insert choice", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create choice")
		return
	}

	slog.Info("choice added", "question_id", questionID, "choice_id", c.ID)

	middleware.JSONResponse(w, http.StatusCreated, models.AddChoiceResponse{
		ChoiceID: c.ID,
	})
}

// DeleteChoice handles DELETE /questions/{id}/choices/{choiceId}
func (h *QuestionHandler) DeleteChoice(w http.ResponseWriter, r *http.Request) {
	questionID := r.PathValue("id")
	choiceID := r.PathValue("choiceId")
	if questionID == "" || choiceID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question_id and choice_id are required")
		return
	}

	// Validate admin key
	adminKey := r.Header.Get("X-Admin-Key")
	if err := auth.ValidateAdminKey(questionID, adminKey, h.cfg.AdminKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return
	}

	err := h.store.DeleteChoice(r.Context(), questionID, choiceID)
	if errors.Is(err, polls.ErrInvalidChoice) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Choice not found")
		return
	}
	if err != nil {
		slog.Error("failed to delete choice", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete choice")
		return
	}

	slog.Info("choice deleted", "question_id", questionID, "choice_id", choiceID)

	w.WriteHeader(http.StatusNoContent)
}
