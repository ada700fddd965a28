// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package store owns the canonical in-memory collection of workspaces,
// channels, members and messages.
package store

import (
	"errors"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/rimahq/rima-tui/internal/model"
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	ErrWorkspaceNotFound = errors.New("workspace not found")
	ErrChannelNotFound   = errors.New("channel not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrInvalidEmail      = errors.New("invalid email address")
)

// guestAvatarColors is the palette new invited members cycle through.
var guestAvatarColors = []string{"#34D399", "#FBBF24", "#FB7185", "#38BDF8", "#A78BFA"}

var titleCaser = cases.Title(language.English)

// =============================================================================
// STORE
// =============================================================================

// Store is the canonical owner of all chat entity data. It is safe for
// concurrent use; see the package doc for the snapshot semantics.
type Store struct {
	mu         sync.RWMutex
	workspaces []model.Workspace
	roster     []model.User
	me         model.User
}

// New creates a store seeded with the given roster and workspaces. The
// current user is the roster entry with the given ID; creation and invite
// operations act on their behalf.
func New(roster []model.User, workspaces []model.Workspace, currentUserID string) *Store {
	s := &Store{
		workspaces: workspaces,
		roster:     roster,
	}
	for _, u := range roster {
		if u.ID == currentUserID {
			s.me = u
			break
		}
	}
	return s
}

// CurrentUser returns the user all local actions are attributed to.
func (s *Store) CurrentUser() model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.me
}

// Roster returns the known users.
func (s *Store) Roster() []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.roster
}

// User returns the roster entry with the given ID.
func (s *Store) User(id string) (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.roster {
		if u.ID == id {
			return u, true
		}
	}
	return model.User{}, false
}

// =============================================================================
// READS
// =============================================================================

// Workspaces returns the current snapshot. Callers must treat the returned
// slice as read-only; it is replaced wholesale on every mutation.
func (s *Store) Workspaces() []model.Workspace {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.workspaces
}

// Workspace returns the workspace with the given ID, if present.
func (s *Store) Workspace(id string) (model.Workspace, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return findWorkspace(s.workspaces, id)
}

// Channel returns the channel with the given ID and its parent workspace.
// Channel IDs are unique across the store.
func (s *Store) Channel(channelID string) (model.Workspace, model.Channel, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, w := range s.workspaces {
		if c, ok := w.Channel(channelID); ok {
			return w, c, true
		}
	}
	return model.Workspace{}, model.Channel{}, false
}

// Messages returns the transcript for a target, or false when the target
// does not resolve.
func (s *Store) Messages(t model.Target) ([]model.Message, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	w, ok := findWorkspace(s.workspaces, t.WorkspaceID)
	if !ok {
		return nil, false
	}
	if !t.IsChannel() {
		return w.Messages, true
	}
	c, ok := w.Channel(t.ChannelID)
	if !ok {
		return nil, false
	}
	return c.Messages, true
}

// =============================================================================
// CREATION
// =============================================================================

// CreateWorkspace inserts a new workspace with the current user as sole
// member and returns its generated ID.
func (s *Store) CreateWorkspace(title, theme string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	w := model.Workspace{
		ID:       model.NewID(),
		Title:    title,
		Theme:    theme,
		Members:  []model.User{s.me},
		Channels: []model.Channel{},
		Messages: []model.Message{},
	}

	next := make([]model.Workspace, len(s.workspaces), len(s.workspaces)+1)
	copy(next, s.workspaces)
	s.workspaces = append(next, w)
	return w.ID
}

// CreateChannel inserts a new channel into the workspace with the current
// user as sole member and returns the channel's generated ID.
func (s *Store) CreateChannel(workspaceID, title string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := model.NewID()
	ok := false
	s.workspaces = mapWorkspaces(s.workspaces, workspaceID, func(w model.Workspace) model.Workspace {
		ok = true
		ch := model.Channel{
			ID:       id,
			Title:    title,
			Members:  []model.User{s.me},
			Messages: []model.Message{},
		}
		next := make([]model.Channel, len(w.Channels), len(w.Channels)+1)
		copy(next, w.Channels)
		w.Channels = append(next, ch)
		return w
	})
	if !ok {
		return "", ErrWorkspaceNotFound
	}
	return id, nil
}

// =============================================================================
// MESSAGES
// =============================================================================

// AppendMessage appends strictly to the end of the target's transcript.
// No other workspace or channel is touched.
func (s *Store) AppendMessage(t model.Target, msg model.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	s.workspaces = mapWorkspaces(s.workspaces, t.WorkspaceID, func(w model.Workspace) model.Workspace {
		if !t.IsChannel() {
			found = true
			w.Messages = appendMessage(w.Messages, msg)
			return w
		}
		w.Channels = mapChannels(w.Channels, t.ChannelID, func(c model.Channel) model.Channel {
			found = true
			c.Messages = appendMessage(c.Messages, msg)
			return c
		})
		return w
	})

	if !found {
		if t.IsChannel() {
			return ErrChannelNotFound
		}
		return ErrWorkspaceNotFound
	}
	return nil
}

// =============================================================================
// MEMBERSHIP
// =============================================================================

// AddMember adds a roster user to a channel. Adding an existing member is a
// no-op, not an error.
func (s *Store) AddMember(channelID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var user model.User
	known := false
	for _, u := range s.roster {
		if u.ID == userID {
			user = u
			known = true
			break
		}
	}
	if !known {
		return ErrUserNotFound
	}

	found := false
	s.workspaces = mapAnyChannel(s.workspaces, channelID, func(c model.Channel) model.Channel {
		found = true
		if c.HasMember(userID) {
			return c
		}
		next := make([]model.User, len(c.Members), len(c.Members)+1)
		copy(next, c.Members)
		c.Members = append(next, user)
		return c
	})
	if !found {
		return ErrChannelNotFound
	}
	return nil
}

// InviteMember synthesizes a guest user from an email address and adds it to
// the channel. The display name is the Title-cased local part of the email.
func (s *Store) InviteMember(channelID, email string) (model.User, error) {
	local, _, ok := strings.Cut(email, "@")
	if !ok {
		return model.User{}, ErrInvalidEmail
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	guest := model.User{
		ID:          model.NewID(),
		Name:        titleCaser.String(strings.ToLower(local)),
		AvatarColor: guestAvatarColors[len(s.roster)%len(guestAvatarColors)],
		Role:        "Guest",
	}

	found := false
	s.workspaces = mapAnyChannel(s.workspaces, channelID, func(c model.Channel) model.Channel {
		found = true
		next := make([]model.User, len(c.Members), len(c.Members)+1)
		copy(next, c.Members)
		c.Members = append(next, guest)
		return c
	})
	if !found {
		return model.User{}, ErrChannelNotFound
	}

	roster := make([]model.User, len(s.roster), len(s.roster)+1)
	copy(roster, s.roster)
	s.roster = append(roster, guest)
	return guest, nil
}

// =============================================================================
// UNREAD
// =============================================================================

// ClearUnread zeroes the channel's unread counter. Idempotent; a dangling
// channel ID is a no-op.
func (s *Store) ClearUnread(channelID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.workspaces = mapAnyChannel(s.workspaces, channelID, func(c model.Channel) model.Channel {
		if c.Unread == 0 {
			return c
		}
		c.Unread = 0
		return c
	})
}

// =============================================================================
// SNAPSHOT HELPERS
// =============================================================================

// mapWorkspaces returns a new slice with fn applied to the workspace with
// the given ID. Untouched entries are shared with the old snapshot.
func mapWorkspaces(ws []model.Workspace, id string, fn func(model.Workspace) model.Workspace) []model.Workspace {
	next := make([]model.Workspace, len(ws))
	for i, w := range ws {
		if w.ID == id {
			next[i] = fn(w)
		} else {
			next[i] = w
		}
	}
	return next
}

// mapChannels is mapWorkspaces for a workspace's channel list.
func mapChannels(cs []model.Channel, id string, fn func(model.Channel) model.Channel) []model.Channel {
	next := make([]model.Channel, len(cs))
	for i, c := range cs {
		if c.ID == id {
			next[i] = fn(c)
		} else {
			next[i] = c
		}
	}
	return next
}

// mapAnyChannel applies fn to the channel with the given ID wherever it
// lives. Workspaces that do not contain it are shared unchanged.
func mapAnyChannel(ws []model.Workspace, channelID string, fn func(model.Channel) model.Channel) []model.Workspace {
	next := make([]model.Workspace, len(ws))
	for i, w := range ws {
		if _, ok := w.Channel(channelID); ok {
			w.Channels = mapChannels(w.Channels, channelID, fn)
		}
		next[i] = w
	}
	return next
}

func appendMessage(msgs []model.Message, msg model.Message) []model.Message {
	next := make([]model.Message, len(msgs), len(msgs)+1)
	copy(next, msgs)
	return append(next, msg)
}

func findWorkspace(ws []model.Workspace, id string) (model.Workspace, bool) {
	if id == "" {
		return model.Workspace{}, false
	}
	for _, w := range ws {
		if w.ID == id {
			return w, true
		}
	}
	return model.Workspace{}, false
}
