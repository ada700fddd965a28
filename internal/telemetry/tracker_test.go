// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package telemetry

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracker_MemoryOnly(t *testing.T) {
	tr := NewTracker("")
	defer tr.Close()

	tr.RecordSuccess("w1", "c1", "llama3.1", 200*time.Millisecond)
	tr.RecordFailure("w1", "", "llama3.1", 100*time.Millisecond, errors.New("boom"))

	stats := tr.Stats()
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Failed)
	assert.Equal(t, 150*time.Millisecond, stats.AvgLatency)

	events := tr.Events()
	require.Len(t, events, 2)
	assert.True(t, events[0].OK)
	assert.Equal(t, "boom", events[1].Error)
}

func TestEventStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "telemetry.db")

	es, err := OpenEventStore(path)
	require.NoError(t, err)
	defer es.Close()

	require.NoError(t, es.Insert(DispatchEvent{
		Timestamp:   time.Now(),
		WorkspaceID: "w1",
		ChannelID:   "c1",
		Model:       "llama3.1",
		Duration:    1200 * time.Millisecond,
		OK:          true,
	}))
	require.NoError(t, es.Insert(DispatchEvent{
		Timestamp:   time.Now(),
		WorkspaceID: "w1",
		Model:       "llama3.1",
		Duration:    80 * time.Millisecond,
		Error:       "timed out",
	}))

	total, failed, err := es.Totals()
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Equal(t, 1, failed)

	events, err := es.Recent(10)
	require.NoError(t, err)
	require.Len(t, events, 2)
	for _, ev := range events {
		assert.Equal(t, "w1", ev.WorkspaceID)
	}
}

func TestTracker_WithStorage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "telemetry.db")

	tr := NewTracker(path)
	tr.RecordSuccess("w1", "", "m", time.Second)
	require.NoError(t, tr.Close())

	// Reopen and confirm the event survived the session.
	es, err := OpenEventStore(path)
	require.NoError(t, err)
	defer es.Close()

	total, failed, err := es.Totals()
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, 0, failed)
}
