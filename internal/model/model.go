// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for workspaces, channels,
// members and chat messages.
package model

import (
	"time"

	"github.com/google/uuid"
)

// AssistantName is the display name of the built-in assistant persona.
const AssistantName = "Rima"

// AssistantTag is the literal users type to address the assistant directly.
const AssistantTag = "@Rima"

// =============================================================================
// USER
// =============================================================================

// User is a member of a workspace or channel. Identity is ID; display
// attributes are presentation-only.
type User struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	AvatarColor string `json:"avatar_color"`
	Role        string `json:"role,omitempty"`
}

// =============================================================================
// SENDER
// =============================================================================

// Sender identifies who wrote a message: either a user or the assistant,
// never both. The zero value is an anonymous user sender and should not
// appear in practice; construct senders with UserSender or AssistantSender.
type Sender struct {
	user      User
	assistant bool
}

// UserSender returns a sender for the given user.
func UserSender(u User) Sender {
	return Sender{user: u}
}

// AssistantSender returns the assistant sender.
func AssistantSender() Sender {
	return Sender{assistant: true}
}

// IsAssistant reports whether the sender is the assistant.
func (s Sender) IsAssistant() bool {
	return s.assistant
}

// User returns the sending user and true, or a zero User and false when the
// sender is the assistant.
func (s Sender) User() (User, bool) {
	if s.assistant {
		return User{}, false
	}
	return s.user, true
}

// DisplayName returns the name to show next to a message.
func (s Sender) DisplayName() string {
	if s.assistant {
		return AssistantName
	}
	return s.user.Name
}

// =============================================================================
// MESSAGE
// =============================================================================

// Message is a single chat message. Messages are immutable once created and
// transcripts are append-only.
type Message struct {
	ID        string    `json:"id"`
	Sender    Sender    `json:"-"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// NewUserMessage creates a message from a user with a generated ID and the
// current time.
func NewUserMessage(from User, content string) Message {
	return Message{
		ID:        NewID(),
		Sender:    UserSender(from),
		Content:   content,
		Timestamp: time.Now(),
	}
}

// NewAssistantMessage creates an assistant reply message.
func NewAssistantMessage(content string) Message {
	return Message{
		ID:        NewID(),
		Sender:    AssistantSender(),
		Content:   content,
		Timestamp: time.Now(),
	}
}

// FormatTimestamp renders the message time at minute resolution, matching
// the transcript display format.
func (m Message) FormatTimestamp() string {
	return m.Timestamp.Format("15:04")
}

// =============================================================================
// CHANNEL
// =============================================================================

// Channel is a named conversation inside a workspace. Members are unique by
// user ID; Unread is produced externally and cleared when the channel is
// activated.
type Channel struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Members     []User    `json:"members"`
	Messages    []Message `json:"messages"`
	Unread      int       `json:"unread,omitempty"`
}

// HasMember reports whether the user is already a channel member.
func (c Channel) HasMember(userID string) bool {
	for _, m := range c.Members {
		if m.ID == userID {
			return true
		}
	}
	return false
}

// IsSolo reports whether the channel has exactly one member. Solo channels
// are always assistant-addressed.
func (c Channel) IsSolo() bool {
	return len(c.Members) == 1
}

// =============================================================================
// WORKSPACE
// =============================================================================

// Workspace is a project container: members, channels and a workspace-level
// transcript of its own.
type Workspace struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Category     string    `json:"category,omitempty"`
	Theme        string    `json:"theme,omitempty"`
	Schedule     string    `json:"schedule,omitempty"`
	Tags         []string  `json:"tags,omitempty"`
	Progress     int       `json:"progress"`
	ProgressNote string    `json:"progress_note,omitempty"`
	ProfileID    string    `json:"profile_id,omitempty"`
	Members      []User    `json:"members"`
	Channels     []Channel `json:"channels"`
	Messages     []Message `json:"messages"`
	Budget       string    `json:"budget,omitempty"`
	Deadline     string    `json:"deadline,omitempty"`
	Phase        string    `json:"phase,omitempty"`
}

// Channel returns the channel with the given ID, if present.
func (w Workspace) Channel(id string) (Channel, bool) {
	for _, c := range w.Channels {
		if c.ID == id {
			return c, true
		}
	}
	return Channel{}, false
}

// UnreadTotal sums unread counters across the workspace's channels.
func (w Workspace) UnreadTotal() int {
	total := 0
	for _, c := range w.Channels {
		total += c.Unread
	}
	return total
}

// =============================================================================
// TARGET
// =============================================================================

// Target identifies the collection a message belongs to: a workspace-level
// transcript, or a channel transcript when ChannelID is set.
type Target struct {
	WorkspaceID string
	ChannelID   string
}

// IsChannel reports whether the target is a channel transcript.
func (t Target) IsChannel() bool {
	return t.ChannelID != ""
}

// IsZero reports whether the target identifies nothing.
func (t Target) IsZero() bool {
	return t.WorkspaceID == ""
}

// =============================================================================
// IDS
// =============================================================================

// NewID generates a store-unique entity ID. Uniqueness is an invariant of
// the data model, not a probability argument, which rules out the
// timestamp-derived IDs the original seed data used.
func NewID() string {
	return uuid.NewString()
}
