// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"testing"

	"github.com/rimahq/rima-tui/internal/model"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		input   string
		wantCmd string
		wantArg string
	}{
		{"/quit", "quit", ""},
		{"/open 2", "open", "2"},
		{"/open Europe Trip", "open", "Europe Trip"},
		{"/INVITE a@b.c", "invite", "a@b.c"},
		{"/new  Spaced Title ", "new", "Spaced Title"},
	}
	for _, tt := range tests {
		cmd, arg := parseCommand(tt.input)
		if cmd != tt.wantCmd || arg != tt.wantArg {
			t.Errorf("parseCommand(%q) = (%q, %q), want (%q, %q)", tt.input, cmd, arg, tt.wantCmd, tt.wantArg)
		}
	}
}

func TestMatchWorkspace(t *testing.T) {
	ws := []model.Workspace{
		{ID: "w1", Title: "Europe Trip"},
		{ID: "w2", Title: "Bookings"},
	}

	if w, ok := matchWorkspace(ws, "2"); !ok || w.ID != "w2" {
		t.Errorf("index match = %+v, %v", w, ok)
	}
	if w, ok := matchWorkspace(ws, "euro"); !ok || w.ID != "w1" {
		t.Errorf("prefix match = %+v, %v", w, ok)
	}
	if _, ok := matchWorkspace(ws, "0"); ok {
		t.Error("index 0 matched")
	}
	if _, ok := matchWorkspace(ws, "mars"); ok {
		t.Error("unknown title matched")
	}
}

func TestMatchChannel(t *testing.T) {
	w := model.Workspace{Channels: []model.Channel{
		{ID: "c1", Title: "Itinerary"},
		{ID: "c2", Title: "Group Chat"},
	}}

	if ch, ok := matchChannel(w, "#group"); !ok || ch.ID != "c2" {
		t.Errorf("hash-prefix match = %+v, %v", ch, ok)
	}
	if ch, ok := matchChannel(w, "1"); !ok || ch.ID != "c1" {
		t.Errorf("index match = %+v, %v", ch, ok)
	}
	if _, ok := matchChannel(w, "3"); ok {
		t.Error("out-of-range index matched")
	}
}
