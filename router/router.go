// Copyright (c) 2025 Pollbox Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/jonboulle/clockwork"

	"pollbox/cliparse"
	"pollbox/handlers"
	"pollbox/middleware"
	"pollbox/polls"
	"pollbox/store"
)

func NewRouter(db *sql.DB, cfg cliparse.Config, clock clockwork.Clock) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	st := store.New(db)
	svc := polls.NewService(st)
	questionHandler := handlers.NewQuestionHandler(st, cfg, clock)
	listingHandler := handlers.NewListingHandler(svc, clock)
	votingHandler := handlers.NewVotingHandler(svc, clock)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Question management (admin operations)
	mux.HandleFunc("POST /questions", middleware.WithLogging(questionHandler.Create))
	mux.HandleFunc("GET /questions/{id}/admin", middleware.WithLogging(questionHandler.GetAdmin))
	mux.HandleFunc("PATCH /questions/{id}", middleware.WithLogging(questionHandler.Update))
	mux.HandleFunc("DELETE /questions/{id}", middleware.WithLogging(questionHandler.Delete))
	mux.HandleFunc("POST /questions/{id}/choices", middleware.WithLogging(questionHandler.AddChoice))
	mux.HandleFunc("DELETE /questions/{id}/choices/{choiceId}", middleware.WithLogging(questionHandler.DeleteChoice))

	// Public views
	mux.HandleFunc("GET /questions", middleware.WithLogging(listingHandler.Index))
	mux.HandleFunc("GET /questions/{id}", middleware.WithLogging(listingHandler.Detail))
	mux.HandleFunc("GET /questions/{id}/results", middleware.WithLogging(listingHandler.Results))

	// Voting
	mux.HandleFunc("POST /questions/{id}/vote", middleware.WithLogging(votingHandler.Vote))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pollbox API v1"))
	})

	return mux
}
