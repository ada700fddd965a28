// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rimahq/rima-tui/internal/model"
	"github.com/rimahq/rima-tui/internal/store"
)

func TestDefault_OpensInStore(t *testing.T) {
	f := Default()
	s := store.New(f.Roster, f.Workspaces, f.CurrentUserID)

	if got := s.CurrentUser().ID; got != CurrentUserID {
		t.Errorf("current user = %q, want %q", got, CurrentUserID)
	}
	if got := len(s.Workspaces()); got != 5 {
		t.Errorf("workspaces = %d, want 5", got)
	}
}

func TestDefault_WelcomeMessages(t *testing.T) {
	for _, w := range Workspaces() {
		if len(w.Messages) != 1 {
			t.Errorf("workspace %s has %d messages, want 1 welcome", w.ID, len(w.Messages))
			continue
		}
		if !w.Messages[0].Sender.IsAssistant() {
			t.Errorf("workspace %s welcome not from assistant", w.ID)
		}
	}
}

func TestDefault_ChannelIDsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, w := range Workspaces() {
		for _, c := range w.Channels {
			if seen[c.ID] {
				t.Errorf("channel ID %q duplicated across workspaces", c.ID)
			}
			seen[c.ID] = true
		}
	}
}

func TestDefault_SoloChannelsExist(t *testing.T) {
	// The trigger predicate depends on at least one solo channel being
	// present out of the box.
	solo := 0
	for _, w := range Workspaces() {
		for _, c := range w.Channels {
			if c.IsSolo() {
				solo++
			}
		}
	}
	if solo == 0 {
		t.Error("fixture has no solo channels")
	}
}

func TestLoad_EmptyPathIsBuiltin(t *testing.T) {
	f, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if f.CurrentUserID != CurrentUserID {
		t.Errorf("current user = %q", f.CurrentUserID)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixture.json")
	data := `{
		"current_user_id": "u_demo",
		"roster": [{"id": "u_demo", "name": "Demo", "avatar_color": "231", "role": "Owner"}],
		"workspaces": [{
			"id": "w_demo",
			"title": "Demo",
			"description": "A demo workspace.",
			"progress": 10,
			"members": [{"id": "u_demo", "name": "Demo", "avatar_color": "231"}],
			"channels": [],
			"messages": [{"id": "m1", "content": "hello", "timestamp": "2026-01-02T15:04:05Z"}]
		}]
	}`
	if err := os.WriteFile(path, []byte(data), 0600); err != nil {
		t.Fatal(err)
	}

	f, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if f.CurrentUserID != "u_demo" {
		t.Errorf("current user = %q", f.CurrentUserID)
	}
	if len(f.Workspaces) != 1 || len(f.Workspaces[0].Messages) != 1 {
		t.Fatalf("unexpected fixture shape: %+v", f)
	}
	if !f.Workspaces[0].Messages[0].Sender.IsAssistant() {
		t.Error("deserialized message sender not restored")
	}
}

func TestLoadFile_Invalid(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		data string
	}{
		{"missing current user", `{"roster": [], "workspaces": []}`},
		{"current user not in roster", `{"current_user_id": "ghost", "roster": [{"id": "u1", "name": "A"}], "workspaces": []}`},
		{"duplicate channel IDs", `{
			"current_user_id": "u1",
			"roster": [{"id": "u1", "name": "A"}],
			"workspaces": [
				{"id": "w1", "title": "One", "channels": [{"id": "c1", "title": "X", "members": [], "messages": []}], "members": [], "messages": []},
				{"id": "w2", "title": "Two", "channels": [{"id": "c1", "title": "Y", "members": [], "messages": []}], "members": [], "messages": []}
			]
		}`},
		{"not json", `nope`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".json")
			if err := os.WriteFile(path, []byte(tt.data), 0600); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadFile(path); err == nil {
				t.Error("LoadFile accepted an invalid fixture")
			}
		})
	}
}

func TestDefault_UnreadSeedsArePositive(t *testing.T) {
	var withUnread []model.Channel
	for _, w := range Workspaces() {
		for _, c := range w.Channels {
			if c.Unread > 0 {
				withUnread = append(withUnread, c)
			}
		}
	}
	if len(withUnread) == 0 {
		t.Error("fixture seeds no unread channels; clear-on-open has nothing to exercise")
	}
}
