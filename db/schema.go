// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, databaseType string) error {
	schema := sqliteSchema
	if databaseType == "postgres" {
		schema = postgresSchema
	}

	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const sqliteSchema = `
-- Stored assessments
CREATE TABLE IF NOT EXISTS assessment (
    id TEXT PRIMARY KEY,
    created_at TIMESTAMP NOT NULL,
    input TEXT NOT NULL,
    probability REAL NOT NULL CHECK (probability >= 0 AND probability <= 1),
    result INTEGER NOT NULL CHECK (result IN (0, 1))
);

CREATE INDEX IF NOT EXISTS idx_assessment_created_at ON assessment(created_at);
`

const postgresSchema = `
-- Stored assessments
CREATE TABLE IF NOT EXISTS assessment (
    id TEXT PRIMARY KEY,
    created_at TIMESTAMP NOT NULL,
    input JSONB NOT NULL,
    probability REAL NOT NULL CHECK (probability >= 0 AND probability <= 1),
    result INTEGER NOT NULL CHECK (result IN (0, 1))
);

CREATE INDEX IF NOT EXISTS idx_assessment_created_at ON assessment(created_at);
`
