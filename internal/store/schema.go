package store

import (
	"context"
	"database/sql"
	"fmt"
)

const (
	tableLLMEvents = "llm_request_events"
	tableRuns      = "runs"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS llm_request_events (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		sequence      INTEGER NOT NULL UNIQUE,
		timestamp     TEXT    NOT NULL,
		run_id        TEXT    NOT NULL DEFAULT '',
		provider      TEXT    NOT NULL,
		model         TEXT    NOT NULL,
		purpose       TEXT    NOT NULL DEFAULT '',
		input_tokens  INTEGER NOT NULL DEFAULT 0,
		output_tokens INTEGER NOT NULL DEFAULT 0,
		latency_ms    INTEGER NOT NULL DEFAULT 0,
		success       INTEGER NOT NULL DEFAULT 0,
		error_message TEXT    NOT NULL DEFAULT '',
		request_body  TEXT    NOT NULL DEFAULT '',
		response_body TEXT    NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS llm_request_events_run_id ON llm_request_events (run_id)`,
	`CREATE TABLE IF NOT EXISTS runs (
		id            TEXT    PRIMARY KEY,
		started_at    TEXT    NOT NULL,
		finished_at   TEXT    NOT NULL DEFAULT '',
		status        TEXT    NOT NULL,
		use_case      TEXT    NOT NULL,
		model         TEXT    NOT NULL,
		labels        TEXT    NOT NULL DEFAULT '',
		sample_size   INTEGER NOT NULL DEFAULT 0,
		batch_size    INTEGER NOT NULL DEFAULT 0,
		output_path   TEXT    NOT NULL DEFAULT '',
		records       INTEGER NOT NULL DEFAULT 0,
		error_message TEXT    NOT NULL DEFAULT ''
	)`,
}

// migrate creates every table the repositories need. Statements are
// idempotent so Open can run them on every start.
func migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}
