// Copyright (c) 2025 Pollbox Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Pollbox API server.

Pollbox is a small polling service: administrators publish questions with
answer choices, and the public lists recent polls, views them, and votes.
A question is only visible to the public once its publication date has
passed and it has at least one choice.

# Starting the Server

The server reads configuration from a .env file, the environment, or CLI
flags. The default database is an on-disk SQLite file:

	DATABASE_URL=pollbox.db go run main.go

Or against PostgreSQL:

	go run main.go -p 3318 -t postgres -d "postgres://..."

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite path or PostgreSQL connection string
  - ADMIN_KEY_SALT (--admin-salt): Secret for admin key HMAC

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): "sqlite" (default) or "postgres"

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (questions, listing, voting)
  - polls: Visibility rules and the listing/voting services
  - store: SQL-backed record store
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - auth: Admin key generation and validation
  - db: Connection setup and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
