// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package store

import (
	"errors"
	"testing"

	"github.com/rimahq/rima-tui/internal/model"
)

func testStore() *Store {
	sara := model.User{ID: "u_sara", Name: "Sara", Role: "Owner"}
	alex := model.User{ID: "u_alex", Name: "Alex"}
	jordan := model.User{ID: "u_jordan", Name: "Jordan"}

	workspaces := []model.Workspace{
		{
			ID:      "w1",
			Title:   "Europe Trip",
			Members: []model.User{sara, alex},
			Channels: []model.Channel{
				{ID: "c1", Title: "Itinerary", Members: []model.User{sara, alex}, Unread: 3},
				{ID: "c2", Title: "Visas", Members: []model.User{sara}},
			},
			Messages: []model.Message{},
		},
		{
			ID:       "w2",
			Title:    "Paris",
			Members:  []model.User{sara},
			Channels: []model.Channel{},
			Messages: []model.Message{},
		},
	}

	return New([]model.User{sara, alex, jordan}, workspaces, "u_sara")
}

// =============================================================================
// CREATION
// =============================================================================

func TestCreateWorkspace(t *testing.T) {
	s := testStore()
	id := s.CreateWorkspace("Milan", "#22D1EE")

	w, ok := s.Workspace(id)
	if !ok {
		t.Fatal("created workspace not found")
	}
	if w.Title != "Milan" {
		t.Errorf("Title = %q, want Milan", w.Title)
	}
	if w.Progress != 0 {
		t.Errorf("Progress = %d, want 0", w.Progress)
	}
	if len(w.Channels) != 0 || len(w.Messages) != 0 {
		t.Error("new workspace must start with empty channel and message lists")
	}
	if len(w.Members) != 1 || w.Members[0].ID != "u_sara" {
		t.Errorf("Members = %v, want sole creating user", w.Members)
	}
}

func TestCreateChannel(t *testing.T) {
	s := testStore()
	id, err := s.CreateChannel("w1", "Hotels")
	if err != nil {
		t.Fatalf("CreateChannel: %v", err)
	}

	_, c, ok := s.Channel(id)
	if !ok {
		t.Fatal("created channel not found")
	}
	if c.Title != "Hotels" {
		t.Errorf("Title = %q, want Hotels", c.Title)
	}
	if len(c.Members) != 1 || c.Members[0].ID != "u_sara" {
		t.Errorf("Members = %v, want sole creating user", c.Members)
	}

	if _, err := s.CreateChannel("missing", "x"); !errors.Is(err, ErrWorkspaceNotFound) {
		t.Errorf("CreateChannel(missing) err = %v, want ErrWorkspaceNotFound", err)
	}
}

func TestCreate_IDsUnique(t *testing.T) {
	s := testStore()
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		id := s.CreateWorkspace("w", "")
		if seen[id] {
			t.Fatalf("duplicate workspace id %q", id)
		}
		seen[id] = true
	}
}

// =============================================================================
// MESSAGES
// =============================================================================

func TestAppendMessage_Routing(t *testing.T) {
	s := testStore()
	me := s.CurrentUser()

	if err := s.AppendMessage(model.Target{WorkspaceID: "w1"}, model.NewUserMessage(me, "to workspace")); err != nil {
		t.Fatalf("workspace append: %v", err)
	}
	if err := s.AppendMessage(model.Target{WorkspaceID: "w1", ChannelID: "c1"}, model.NewUserMessage(me, "to channel")); err != nil {
		t.Fatalf("channel append: %v", err)
	}

	w, _ := s.Workspace("w1")
	if len(w.Messages) != 1 || w.Messages[0].Content != "to workspace" {
		t.Errorf("workspace transcript = %v, want single workspace message", w.Messages)
	}
	c, _ := w.Channel("c1")
	if len(c.Messages) != 1 || c.Messages[0].Content != "to channel" {
		t.Errorf("channel transcript = %v, want single channel message", c.Messages)
	}

	// Sibling entities untouched.
	if c2, _ := w.Channel("c2"); len(c2.Messages) != 0 {
		t.Error("append leaked into sibling channel")
	}
	if w2, _ := s.Workspace("w2"); len(w2.Messages) != 0 {
		t.Error("append leaked into sibling workspace")
	}
}

func TestAppendMessage_AppendOnly(t *testing.T) {
	s := testStore()
	me := s.CurrentUser()
	target := model.Target{WorkspaceID: "w1", ChannelID: "c1"}

	contents := []string{"one", "two", "three"}
	for _, c := range contents {
		if err := s.AppendMessage(target, model.NewUserMessage(me, c)); err != nil {
			t.Fatalf("append %q: %v", c, err)
		}
	}

	msgs, ok := s.Messages(target)
	if !ok {
		t.Fatal("target not found")
	}
	if len(msgs) != len(contents) {
		t.Fatalf("transcript length = %d, want %d", len(msgs), len(contents))
	}
	for i, c := range contents {
		if msgs[i].Content != c {
			t.Errorf("msgs[%d] = %q, want %q (reordered?)", i, msgs[i].Content, c)
		}
	}
}

func TestAppendMessage_SnapshotIsolation(t *testing.T) {
	s := testStore()
	before := s.Workspaces()
	beforeW1, _ := s.Workspace("w1")

	err := s.AppendMessage(model.Target{WorkspaceID: "w1", ChannelID: "c1"}, model.NewUserMessage(s.CurrentUser(), "new"))
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	// The snapshot taken before the mutation must be unchanged.
	c, _ := beforeW1.Channel("c1")
	if len(c.Messages) != 0 {
		t.Error("old snapshot mutated by append")
	}
	if &before[0] == &s.Workspaces()[0] && len(before) > 0 {
		// Same backing array would mean in-place mutation.
		t.Error("store reused snapshot backing array")
	}
}

func TestAppendMessage_DanglingTarget(t *testing.T) {
	s := testStore()
	me := s.CurrentUser()

	if err := s.AppendMessage(model.Target{WorkspaceID: "nope"}, model.NewUserMessage(me, "x")); !errors.Is(err, ErrWorkspaceNotFound) {
		t.Errorf("dangling workspace err = %v, want ErrWorkspaceNotFound", err)
	}
	if err := s.AppendMessage(model.Target{WorkspaceID: "w1", ChannelID: "nope"}, model.NewUserMessage(me, "x")); !errors.Is(err, ErrChannelNotFound) {
		t.Errorf("dangling channel err = %v, want ErrChannelNotFound", err)
	}
}

// =============================================================================
// MEMBERSHIP
// =============================================================================

func TestAddMember_Idempotent(t *testing.T) {
	s := testStore()

	if err := s.AddMember("c2", "u_jordan"); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if err := s.AddMember("c2", "u_jordan"); err != nil {
		t.Fatalf("second add: %v", err)
	}

	_, c, _ := s.Channel("c2")
	count := 0
	for _, m := range c.Members {
		if m.ID == "u_jordan" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("jordan appears %d times, want exactly 1", count)
	}
}

func TestAddMember_Errors(t *testing.T) {
	s := testStore()

	if err := s.AddMember("c2", "u_ghost"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("unknown user err = %v, want ErrUserNotFound", err)
	}
	if err := s.AddMember("c_ghost", "u_jordan"); !errors.Is(err, ErrChannelNotFound) {
		t.Errorf("unknown channel err = %v, want ErrChannelNotFound", err)
	}
}

func TestInviteMember(t *testing.T) {
	s := testStore()

	_, before, _ := s.Channel("c2")

	if _, err := s.InviteMember("c2", "not-an-email"); !errors.Is(err, ErrInvalidEmail) {
		t.Errorf("invalid email err = %v, want ErrInvalidEmail", err)
	}
	if _, after, _ := s.Channel("c2"); len(after.Members) != len(before.Members) {
		t.Error("failed invite changed membership")
	}

	guest, err := s.InviteMember("c2", "jordan@x.com")
	if err != nil {
		t.Fatalf("invite: %v", err)
	}
	if guest.Name != "Jordan" {
		t.Errorf("guest name = %q, want Jordan", guest.Name)
	}
	if guest.Role != "Guest" {
		t.Errorf("guest role = %q, want Guest", guest.Role)
	}

	_, c, _ := s.Channel("c2")
	if len(c.Members) != len(before.Members)+1 {
		t.Errorf("members = %d, want %d", len(c.Members), len(before.Members)+1)
	}
	if _, ok := s.User(guest.ID); !ok {
		t.Error("invited guest missing from roster")
	}
}

// =============================================================================
// UNREAD
// =============================================================================

func TestClearUnread_Idempotent(t *testing.T) {
	s := testStore()

	s.ClearUnread("c1")
	first := s.Workspaces()

	s.ClearUnread("c1")
	s.ClearUnread("c1")

	_, c, _ := s.Channel("c1")
	if c.Unread != 0 {
		t.Errorf("Unread = %d, want 0", c.Unread)
	}
	// Re-clearing an already-read channel changes nothing observable.
	_, cFirst, _ := storeView(first).Channel("c1")
	if cFirst.Unread != 0 {
		t.Error("first clear did not take effect")
	}

	// Dangling channel is a no-op, not a panic.
	s.ClearUnread("missing")
}

// storeView wraps a snapshot for lookups in tests.
func storeView(ws []model.Workspace) *Store {
	return &Store{workspaces: ws}
}
