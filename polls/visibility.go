// Copyright (c) 2025 Pollbox Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package polls

import (
	"time"

	"pollbox/models"
)

// IsPublished reports whether the question's publish timestamp has passed.
// The comparison is inclusive: a question published exactly at now counts
// as published.
func IsPublished(q models.Question, now time.Time) bool {
	return !q.PubDate.After(now)
}

// IsDisplayed reports whether the question appears in public views:
// published and owning at least one choice.
func IsDisplayed(q models.Question, now time.Time) bool {
	return IsPublished(q, now) && q.ChoiceCount >= 1
}

// WasPublishedRecently reports whether the question was published within
// the last 24 hours. Future-dated questions are never "recent".
func WasPublishedRecently(q models.Question, now time.Time) bool {
	return !q.PubDate.Before(now.Add(-24 * time.Hour)) && !q.PubDate.After(now)
}
