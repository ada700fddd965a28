// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package telemetry records assistant dispatch outcomes.
package telemetry

import (
	"sync"
	"time"
)

// =============================================================================
// EVENTS
// =============================================================================

// DispatchEvent is one assistant dispatch outcome.
type DispatchEvent struct {
	Timestamp   time.Time     `json:"timestamp"`
	WorkspaceID string        `json:"workspace_id"`
	ChannelID   string        `json:"channel_id,omitempty"`
	Model       string        `json:"model"`
	Duration    time.Duration `json:"duration"`
	OK          bool          `json:"ok"`
	Error       string        `json:"error,omitempty"`
}

// Stats aggregates the session's dispatch events.
type Stats struct {
	Total      int
	Failed     int
	AvgLatency time.Duration
}

// =============================================================================
// TRACKER
// =============================================================================

// Tracker collects dispatch events in memory and mirrors them to an
// optional persistent store.
type Tracker struct {
	mu      sync.Mutex
	events  []DispatchEvent
	storage *EventStore
}

// NewTracker creates a tracker. dbPath may be empty for a memory-only
// tracker; a storage open failure degrades to memory-only as well, since
// telemetry must never block the chat flow.
func NewTracker(dbPath string) *Tracker {
	t := &Tracker{}
	if dbPath != "" {
		if es, err := OpenEventStore(dbPath); err == nil {
			t.storage = es
		}
	}
	return t
}

// RecordSuccess records a completed dispatch.
func (t *Tracker) RecordSuccess(workspaceID, channelID, model string, duration time.Duration) {
	t.record(DispatchEvent{
		Timestamp:   time.Now(),
		WorkspaceID: workspaceID,
		ChannelID:   channelID,
		Model:       model,
		Duration:    duration,
		OK:          true,
	})
}

// RecordFailure records a failed dispatch. The transcript is unaffected by
// the failure; this event is its only trace.
func (t *Tracker) RecordFailure(workspaceID, channelID, model string, duration time.Duration, err error) {
	ev := DispatchEvent{
		Timestamp:   time.Now(),
		WorkspaceID: workspaceID,
		ChannelID:   channelID,
		Model:       model,
		Duration:    duration,
	}
	if err != nil {
		ev.Error = err.Error()
	}
	t.record(ev)
}

func (t *Tracker) record(ev DispatchEvent) {
	t.mu.Lock()
	t.events = append(t.events, ev)
	storage := t.storage
	t.mu.Unlock()

	if storage != nil {
		// Best effort; a full disk must not surface in the chat flow.
		_ = storage.Insert(ev)
	}
}

// Events returns a copy of the session's events.
func (t *Tracker) Events() []DispatchEvent {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]DispatchEvent, len(t.events))
	copy(out, t.events)
	return out
}

// Stats aggregates the session's events.
func (t *Tracker) Stats() Stats {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := Stats{Total: len(t.events)}
	var sum time.Duration
	for _, ev := range t.events {
		if !ev.OK {
			s.Failed++
		}
		sum += ev.Duration
	}
	if s.Total > 0 {
		s.AvgLatency = sum / time.Duration(s.Total)
	}
	return s
}

// Close releases the persistent store, if any.
func (t *Tracker) Close() error {
	t.mu.Lock()
	storage := t.storage
	t.storage = nil
	t.mu.Unlock()

	if storage != nil {
		return storage.Close()
	}
	return nil
}
