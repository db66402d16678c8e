// Copyright (c) 2025 Pollbox Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"pollbox/cliparse"
)

// Open connects to the database named by the configuration. DatabaseType
// selects the driver: "postgres" (lib/pq) or "sqlite" (modernc, pure Go).
func Open(cfg cliparse.Config) (*sql.DB, error) {
	var driver string
	switch cfg.DatabaseType {
	case "postgres":
		driver = "postgres"
	case "sqlite":
		driver = "sqlite"
	default:
		return nil, fmt.Errorf("unsupported database type %q (want sqlite or postgres)", cfg.DatabaseType)
	}

	dsn := cfg.DatabaseURL
	if cfg.DatabaseType == "sqlite" {
		// sqlite leaves foreign keys off per connection unless asked;
		// the pragma in the DSN applies to every pooled connection.
		if strings.Contains(dsn, "?") {
			dsn += "&_pragma=foreign_keys(1)"
		} else {
			dsn += "?_pragma=foreign_keys(1)"
		}
	}

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", cfg.DatabaseType, err)
	}

	if cfg.DatabaseType == "sqlite" {
		// sqlite handles one writer at a time; a single pooled connection
		// avoids SQLITE_BUSY under concurrent votes.
		conn.SetMaxOpenConns(1)
	}

	return conn, nil
}
