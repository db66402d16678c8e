// Copyright (c) 2025 Pollbox Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store implements the record store over database/sql.

SQLStore satisfies polls.Store for the public read/vote path and carries
the administrative writes next to it:

	st := store.New(conn)
	svc := polls.NewService(st)

# Displayed Questions

The visibility policy is pushed down into SQL: the publish filter is
`pub_date <= now`, the choice-existence filter is an inner JOIN on
choice, and the listing orders by `pub_date DESC, id DESC` so equal
timestamps still produce one deterministic order.

# Vote Increment

IncrementVotes runs

	UPDATE choice SET votes = votes + 1 WHERE id = $1 AND question_id = $2

One statement, read-modify-write inside the engine, so two concurrent
votes on the same choice both land. Zero affected rows means the choice
does not belong to the question (or does not exist) and surfaces as
polls.ErrInvalidChoice without mutating anything.

# Time Encoding

Publish timestamps are stored as fixed-width UTC text
(2006-01-02T15:04:05.000000Z). Both supported engines compare that
encoding lexicographically in time order, which keeps the listing query
portable. Writes truncate to microseconds so values round-trip exactly.

# Identifiers

Record ids are system-assigned UUID strings (github.com/google/uuid),
immutable once assigned.
*/
package store
