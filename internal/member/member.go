// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package member is the thin membership layer over the store.
package member

import (
	"github.com/rimahq/rima-tui/internal/model"
	"github.com/rimahq/rima-tui/internal/store"
)

// Manager adds and invites channel members.
type Manager struct {
	store *store.Store
}

// NewManager creates a membership manager over the store.
func NewManager(s *store.Store) *Manager {
	return &Manager{store: s}
}

// AddMember adds a roster user to a channel. Idempotent for existing
// members.
func (m *Manager) AddMember(channelID, userID string) error {
	return m.store.AddMember(channelID, userID)
}

// InviteByEmail invites a new member by email address and returns the
// synthesized guest user. The caller is responsible for re-prompting on
// store.ErrInvalidEmail.
func (m *Manager) InviteByEmail(channelID, email string) (model.User, error) {
	return m.store.InviteMember(channelID, email)
}
