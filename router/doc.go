// Copyright (c) 2025 Pollbox Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the pollbox API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg, clock)

# Endpoints

Health:

	GET /health

Question management (admin, requires X-Admin-Key):

	POST   /questions                         - Create question
	GET    /questions/{id}/admin              - Full question state
	PATCH  /questions/{id}                    - Edit text / pub_date
	DELETE /questions/{id}                    - Delete (choices cascade)
	POST   /questions/{id}/choices            - Add choice
	DELETE /questions/{id}/choices/{choiceId} - Delete choice

Public views:

	GET /questions              - Latest displayed questions
	GET /questions/{id}         - Detail (voting form data)
	GET /questions/{id}/results - Vote tallies

Voting (public):

	POST /questions/{id}/vote - Record one vote

# Handler Initialization

The router wires the store and core service once and injects them:

	st := store.New(db)
	svc := polls.NewService(st)
	questionHandler := handlers.NewQuestionHandler(st, cfg, clock)
	listingHandler := handlers.NewListingHandler(svc, clock)
	votingHandler := handlers.NewVotingHandler(svc, clock)

All handlers share the same clock so every request sees one notion of now.
*/
package router
