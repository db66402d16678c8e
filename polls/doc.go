// Copyright (c) 2025 Pollbox Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package polls holds the core poll semantics: the visibility policy and the
listing and voting services.

# Visibility Policy

Pure predicates over a question and an explicit now:

	polls.IsPublished(q, now)          // pub_date <= now (inclusive)
	polls.IsDisplayed(q, now)          // published AND >= 1 choice
	polls.WasPublishedRecently(q, now) // within the last 24 hours

# Services

Service wraps an injected Store (the record store) and exposes:

	svc.ListRecent(ctx, now, limit)             // index listing
	svc.GetForInteraction(ctx, id, now)         // detail / results gate
	svc.Results(ctx, id, now)                   // question + tallies
	svc.RecordVote(ctx, questionID, choiceID, now)

Every method takes now explicitly; callers own the clock. Hidden
questions (future-dated or choiceless) are indistinguishable from missing
ones: both surface ErrQuestionNotFound.

# Errors

	ErrQuestionNotFound // unrecoverable for this request; map to 404
	ErrInvalidChoice    // recoverable; re-present the choice form

All other store faults pass through unmodified; the services never retry.

# Voting

RecordVote is NOT idempotent. A resubmitted form is a second vote. The
tally increment happens inside the store as a single atomic statement, so
two concurrent votes on the same choice both count.
*/
package polls
