// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package view tracks which screen is active and which workspace and
// channel IDs it is scoped to.
package view

import (
	"github.com/rimahq/rima-tui/internal/model"
	"github.com/rimahq/rima-tui/internal/store"
)

// =============================================================================
// SCREENS
// =============================================================================

// Screen identifies which page the UI is showing.
type Screen int

const (
	ScreenHome Screen = iota
	ScreenWorkspace
	ScreenChannel
	ScreenWorkspaceSummary
	ScreenChannelSummary
	ScreenSettings
	ScreenNewWorkspace
	ScreenNewChannel
)

// String returns the screen name for logs and tests.
func (s Screen) String() string {
	switch s {
	case ScreenHome:
		return "home"
	case ScreenWorkspace:
		return "workspace"
	case ScreenChannel:
		return "channel"
	case ScreenWorkspaceSummary:
		return "workspace_summary"
	case ScreenChannelSummary:
		return "channel_summary"
	case ScreenSettings:
		return "settings"
	case ScreenNewWorkspace:
		return "new_workspace"
	case ScreenNewChannel:
		return "new_channel"
	default:
		return "unknown"
	}
}

// IsSummary reports whether the screen is one of the overview pages.
func (s Screen) IsSummary() bool {
	return s == ScreenWorkspaceSummary || s == ScreenChannelSummary
}

// =============================================================================
// CONTROLLER
// =============================================================================

// Controller is the view-state machine. It runs on the UI event loop and is
// not safe for concurrent use; only derived reads go through the store.
type Controller struct {
	store *store.Store

	screen      Screen
	workspaceID string
	channelID   string
}

// NewController creates a controller at the home screen with no active IDs.
func NewController(s *store.Store) *Controller {
	return &Controller{store: s, screen: ScreenHome}
}

// Screen returns the active screen.
func (c *Controller) Screen() Screen { return c.screen }

// ActiveWorkspaceID returns the active workspace ID, if any.
func (c *Controller) ActiveWorkspaceID() string { return c.workspaceID }

// ActiveChannelID returns the active channel ID, if any. Only meaningful
// together with an active workspace ID.
func (c *Controller) ActiveChannelID() string { return c.channelID }

// =============================================================================
// DERIVED READS
// =============================================================================

// ActiveWorkspace resolves the active workspace by ID. Absent when no ID is
// set or the ID dangles.
func (c *Controller) ActiveWorkspace() (model.Workspace, bool) {
	if c.workspaceID == "" {
		return model.Workspace{}, false
	}
	return c.store.Workspace(c.workspaceID)
}

// ActiveChannel resolves the active channel within the active workspace.
func (c *Controller) ActiveChannel() (model.Channel, bool) {
	if c.channelID == "" {
		return model.Channel{}, false
	}
	w, ok := c.ActiveWorkspace()
	if !ok {
		return model.Channel{}, false
	}
	return w.Channel(c.channelID)
}

// Target returns the message target for the active screen: the workspace
// transcript on workspace pages, the channel transcript on channel pages,
// and a zero target anywhere else.
func (c *Controller) Target() model.Target {
	switch c.screen {
	case ScreenWorkspace, ScreenWorkspaceSummary:
		return model.Target{WorkspaceID: c.workspaceID}
	case ScreenChannel, ScreenChannelSummary:
		return model.Target{WorkspaceID: c.workspaceID, ChannelID: c.channelID}
	default:
		return model.Target{}
	}
}

// =============================================================================
// TRANSITIONS
// =============================================================================

// GoHome returns to the home screen and drops the active IDs.
func (c *Controller) GoHome() {
	c.screen = ScreenHome
	c.workspaceID = ""
	c.channelID = ""
}

// OpenWorkspace activates a workspace and shows its chat page.
func (c *Controller) OpenWorkspace(id string) {
	c.screen = ScreenWorkspace
	c.workspaceID = id
	c.channelID = ""
}

// OpenChannel activates a channel within a workspace. Activation clears the
// channel's unread counter exactly once, synchronously with the transition;
// the side effect is coupled to navigation, not rendering.
func (c *Controller) OpenChannel(workspaceID, channelID string) {
	c.screen = ScreenChannel
	c.workspaceID = workspaceID
	c.channelID = channelID
	c.store.ClearUnread(channelID)
}

// OpenSummary switches a workspace or channel page to its overview. On any
// other screen it is a no-op.
func (c *Controller) OpenSummary() {
	switch c.screen {
	case ScreenWorkspace:
		c.screen = ScreenWorkspaceSummary
	case ScreenChannel:
		c.screen = ScreenChannelSummary
	}
}

// OpenSettings shows the settings page. Active IDs are kept so Back can
// return to the screen it was entered from.
func (c *Controller) OpenSettings() {
	c.screen = ScreenSettings
}

// OpenNewWorkspace shows the workspace creation form.
func (c *Controller) OpenNewWorkspace() {
	c.screen = ScreenNewWorkspace
}

// OpenNewChannel shows the channel creation form for a workspace.
func (c *Controller) OpenNewChannel(workspaceID string) {
	c.screen = ScreenNewChannel
	c.workspaceID = workspaceID
	c.channelID = ""
}

// Back leaves the current screen. Summaries return to their entity page;
// settings and the creation forms return to the deepest context whose ID is
// still set (channel, then workspace, then home). There is no call stack:
// the back-target is derived from the IDs alone.
func (c *Controller) Back() {
	switch c.screen {
	case ScreenWorkspaceSummary:
		c.screen = ScreenWorkspace
	case ScreenChannelSummary:
		c.screen = ScreenChannel
	case ScreenSettings, ScreenNewWorkspace, ScreenNewChannel:
		switch {
		case c.channelID != "":
			c.screen = ScreenChannel
		case c.workspaceID != "":
			c.screen = ScreenWorkspace
		default:
			c.GoHome()
		}
	case ScreenChannel:
		c.OpenWorkspace(c.workspaceID)
	case ScreenWorkspace:
		c.GoHome()
	}
}
