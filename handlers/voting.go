// Copyright (c) 2025 Pollbox Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/jonboulle/clockwork"

	"pollbox/middleware"
	"pollbox/models"
	"pollbox/polls"
)

// VotingHandler records votes. There is no voter identity: every accepted
// submission is one more vote, resubmissions included.
type VotingHandler struct {
	svc   *polls.Service
	clock clockwork.Clock
}

func NewVotingHandler(svc *polls.Service, clock clockwork.Clock) *VotingHandler {
	return &VotingHandler{svc: svc, clock: clock}
}

// Vote handles POST /questions/{id}/vote
func (h *VotingHandler) Vote(w http.ResponseWriter, r *http.Request) {
	questionID := r.PathValue("id")
	if questionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question_id is required")
		return
	}

	// Parse request
	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.ChoiceID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "You didn't select a choice.")
		return
	}

	receipt, err := h.svc.RecordVote(r.Context(), questionID, req.ChoiceID, h.clock.Now())
	if errors.Is(err, polls.ErrQuestionNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}
	if errors.Is(err, polls.ErrInvalidChoice) {
		// Recoverable: the caller should re-present the choice form.
		middleware.ErrorResponse(w, http.StatusBadRequest, "You didn't select a valid choice.")
		return
	}
	if err != nil {
		slog.Error("failed to record vote", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record vote")
		return
	}

	slog.Info("vote recorded",
		"question_id", receipt.QuestionID,
		"choice_id", receipt.ChoiceID,
		"remote", middleware.GetClientIP(r),
	)

	middleware.JSONResponse(w, http.StatusOK, models.VoteResponse{
		QuestionID: receipt.QuestionID,
		ChoiceID:   receipt.ChoiceID,
		ResultsURL: "/questions/" + receipt.QuestionID + "/results",
	})
}
