// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes the required tables for the configured
database type (sqlite or postgres):

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS.

# Tables

  - assessment: one row per completed prediction (id, created_at,
    validated input as JSON, probability, binary result)

Timestamps are written from Go, so the two dialects only differ in the
input column type (TEXT vs JSONB).
*/
package db
