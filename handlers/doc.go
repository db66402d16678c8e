// Copyright (c) 2025 Pollbox Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the pollbox API.

# Handler Types

Each handler is a struct built with its dependencies:

  - QuestionHandler: administrative question/choice management
  - ListingHandler: public index, detail, and results views
  - VotingHandler: vote submission

Handlers receive the store or service plus a clockwork.Clock; the clock
is the single source of "now", which flows explicitly into the core.

# Public Views

	GET /questions              → Index (latest 5 displayed questions)
	GET /questions/{id}         → Detail (choices, no tallies)
	GET /questions/{id}/results → Results (choices with tallies)

A question is visible here only once its pub_date has passed AND it has
at least one choice. Anything else is a 404, indistinguishable from a
question that never existed.

# Voting

	POST /questions/{id}/vote {"choice_id": "..."}

404 when the question is missing or hidden; 400 with a user-facing
message when the choice does not belong to the question (re-present the
form); 200 with a results URL on success. Voting is not idempotent:
resubmitting counts again.

# Administration

	POST   /questions                          → Create (returns admin_key)
	GET    /questions/{id}/admin               → GetAdmin
	PATCH  /questions/{id}                     → Update
	DELETE /questions/{id}                     → Delete
	POST   /questions/{id}/choices             → AddChoice
	DELETE /questions/{id}/choices/{choiceId}  → DeleteChoice

Admin operations require the X-Admin-Key header. The admin view shows
unpublished questions and a was_published_recently flag.
*/
package handlers
