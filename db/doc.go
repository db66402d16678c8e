// Copyright (c) 2025 Pollbox Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connection and schema creation.

# Opening a Connection

Open selects the driver from the configured database type:

	conn, err := db.Open(cfg) // cfg.DatabaseType: "sqlite" or "postgres"

PostgreSQL uses github.com/lib/pq; sqlite uses modernc.org/sqlite (pure
Go, no cgo), which also backs the test suite's in-memory databases.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

	question 1──* choice

  - question: id, text, pub_date
  - choice: id, question_id, text, votes

choice.question_id cascades on delete. pub_date is stored as fixed-width
UTC text so ordering and range filters behave identically on both engines.

# Indexes

  - question.pub_date (index listing)
  - choice.question_id (choice lookups and existence filters)
*/
package db
