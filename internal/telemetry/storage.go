// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package telemetry

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// =============================================================================
// EVENT STORE
// =============================================================================

const schema = `
CREATE TABLE IF NOT EXISTS dispatches (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	timestamp    INTEGER NOT NULL,
	workspace_id TEXT NOT NULL,
	channel_id   TEXT NOT NULL DEFAULT '',
	model        TEXT NOT NULL,
	duration_ms  INTEGER NOT NULL,
	ok           INTEGER NOT NULL,
	error        TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_dispatches_timestamp ON dispatches(timestamp);
`

// EventStore persists dispatch events to a SQLite database.
type EventStore struct {
	db *sql.DB
}

// OpenEventStore opens (and if needed creates) the database at path.
func OpenEventStore(path string) (*EventStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	return &EventStore{db: db}, nil
}

// Insert writes one event.
func (es *EventStore) Insert(ev DispatchEvent) error {
	_, err := es.db.Exec(
		`INSERT INTO dispatches (timestamp, workspace_id, channel_id, model, duration_ms, ok, error)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		ev.Timestamp.UnixMilli(), ev.WorkspaceID, ev.ChannelID, ev.Model,
		ev.Duration.Milliseconds(), boolToInt(ev.OK), ev.Error,
	)
	return err
}

// Recent returns up to limit events, newest first.
func (es *EventStore) Recent(limit int) ([]DispatchEvent, error) {
	rows, err := es.db.Query(
		`SELECT timestamp, workspace_id, channel_id, model, duration_ms, ok, error
		 FROM dispatches ORDER BY timestamp DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []DispatchEvent
	for rows.Next() {
		var (
			ts, durationMs int64
			ok             int
			ev             DispatchEvent
		)
		if err := rows.Scan(&ts, &ev.WorkspaceID, &ev.ChannelID, &ev.Model, &durationMs, &ok, &ev.Error); err != nil {
			return nil, err
		}
		ev.Timestamp = time.UnixMilli(ts)
		ev.Duration = time.Duration(durationMs) * time.Millisecond
		ev.OK = ok != 0
		events = append(events, ev)
	}
	return events, rows.Err()
}

// Totals returns lifetime dispatch and failure counts.
func (es *EventStore) Totals() (total, failed int, err error) {
	row := es.db.QueryRow(`SELECT COUNT(*), COALESCE(SUM(1 - ok), 0) FROM dispatches`)
	err = row.Scan(&total, &failed)
	return total, failed, err
}

// Close closes the database.
func (es *EventStore) Close() error {
	return es.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
