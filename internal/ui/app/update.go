// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package app is the root Bubble Tea program for rima.
package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rimahq/rima-tui/internal/view"
)

// Update is the single event handler for the whole UI.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.theme.SetSize(msg.Width, msg.Height)
		a.composer.SetWidth(msg.Width)
		a.statusBar.Width = msg.Width
		return a, nil

	case assistantReplyMsg:
		a.settleDispatch()
		return a, nil

	case dispatchFailedMsg:
		// Failed turns are silent in the transcript; the indicator just
		// stands down.
		a.settleDispatch()
		return a, nil

	case configReloadedMsg:
		a.cfg = msg.Config
		return a, nil

	case spinner.TickMsg:
		sp := a.statusBar.Spinner()
		var cmd tea.Cmd
		*sp, cmd = sp.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, a.forwardToInputs(msg)
}

// settleDispatch retires one in-flight assistant turn.
func (a *App) settleDispatch() {
	if a.inflight > 0 {
		a.inflight--
	}
	a.statusBar.Typing = a.inflight > 0
}

// forwardToInputs passes non-key messages to whichever input is active.
func (a *App) forwardToInputs(msg tea.Msg) tea.Cmd {
	if a.form.mode != formNone {
		var cmd tea.Cmd
		a.form.input, cmd = a.form.input.Update(msg)
		return cmd
	}
	return a.composer.Update(msg)
}

// =============================================================================
// KEY HANDLING
// =============================================================================

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		a.quitting = true
		return a, tea.Quit
	}

	if a.form.mode != formNone {
		return a.handleFormKey(msg)
	}

	switch a.vs.Screen() {
	case view.ScreenHome:
		return a.handleHomeKey(msg)
	case view.ScreenSettings:
		return a.handleSettingsKey(msg)
	default:
		return a.handleChatKey(msg)
	}
}

// ==========================================================================
// HOME - workspace cards, no composer
// ==========================================================================

func (a *App) handleHomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	workspaces := a.store.Workspaces()

	switch msg.String() {
	case "q":
		a.quitting = true
		return a, tea.Quit
	case "up", "k":
		if a.selection > 0 {
			a.selection--
		}
	case "down", "j":
		if a.selection < len(workspaces)-1 {
			a.selection++
		}
	case "enter":
		if a.selection < len(workspaces) {
			a.vs.OpenWorkspace(workspaces[a.selection].ID)
			a.selection = 0
			return a, a.composer.Focus()
		}
	case "n":
		return a, a.openForm(formNewWorkspace, "Workspace title")
	case "s":
		a.vs.OpenSettings()
		a.composer.Blur()
	}
	return a, nil
}

// ==========================================================================
// CHAT SCREENS - workspace, channel and the two summaries
// ==========================================================================

func (a *App) handleChatKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.vs.Back()
		a.selection = 0
		if a.vs.Screen() == view.ScreenHome {
			a.composer.Blur()
		}
		return a, nil

	case "enter":
		if strings.TrimSpace(a.composer.Value()) != "" {
			return a, a.sendCurrent()
		}
		// An empty composer on the workspace page opens the selected
		// channel instead.
		if a.vs.Screen() == view.ScreenWorkspace {
			if w, ok := a.vs.ActiveWorkspace(); ok && a.selection < len(w.Channels) {
				a.vs.OpenChannel(w.ID, w.Channels[a.selection].ID)
				a.selection = 0
			}
		}
		return a, nil

	case "up":
		if a.selection > 0 {
			a.selection--
		}
		return a, nil

	case "down":
		if a.selection < a.selectionMax() {
			a.selection++
		}
		return a, nil

	case "ctrl+o":
		a.vs.OpenSummary()
		return a, nil

	case "ctrl+n":
		if a.vs.Screen() == view.ScreenWorkspace {
			return a, a.openForm(formNewChannel, "Channel title")
		}
		return a, nil

	case "ctrl+a":
		if a.vs.Screen() == view.ScreenChannelSummary {
			return a, a.addSelectedMember()
		}
		return a, nil

	case "ctrl+e":
		if a.vs.Screen() == view.ScreenChannelSummary {
			return a, a.openForm(formInvite, "email@example.com")
		}
		return a, nil
	}

	return a, a.composer.Update(msg)
}

// selectionMax is the top index for the active screen's list.
func (a *App) selectionMax() int {
	switch a.vs.Screen() {
	case view.ScreenWorkspace:
		if w, ok := a.vs.ActiveWorkspace(); ok {
			return len(w.Channels) - 1
		}
	case view.ScreenChannelSummary:
		return len(a.addableMembers()) - 1
	}
	return 0
}

// addSelectedMember adds the highlighted roster user to the active channel.
func (a *App) addSelectedMember() tea.Cmd {
	ids := a.addableMembers()
	if a.selection >= len(ids) {
		return nil
	}
	// Duplicates are a store-level no-op, so errors here mean the channel
	// is gone; nothing useful to show.
	_ = a.members.AddMember(a.vs.ActiveChannelID(), ids[a.selection])
	if a.selection > 0 {
		a.selection--
	}
	return nil
}

// ==========================================================================
// SETTINGS
// ==========================================================================

func (a *App) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		a.vs.Back()
		if a.vs.Screen() != view.ScreenHome {
			return a, a.composer.Focus()
		}
	case "t":
		a.cfg.UI.ShowTimestamps = !a.cfg.UI.ShowTimestamps
	case "d":
		a.cfg.UI.DarkMode = !a.cfg.UI.DarkMode
	case "w":
		// Persistence failures surface on the settings page itself.
		if err := a.cfg.Save(""); err != nil {
			a.form.err = err.Error()
		} else {
			a.form.err = ""
		}
	}
	return a, nil
}

// ==========================================================================
// FORMS
// ==========================================================================

func (a *App) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return a, a.closeForm()
	case "enter":
		return a, a.submitForm()
	}

	var cmd tea.Cmd
	a.form.input, cmd = a.form.input.Update(msg)
	return a, cmd
}

func (a *App) submitForm() tea.Cmd {
	value := strings.TrimSpace(a.form.input.Value())

	switch a.form.mode {
	case formNewWorkspace:
		if value == "" {
			a.form.err = "Title is required."
			return nil
		}
		id := a.store.CreateWorkspace(value, "")
		a.vs.OpenWorkspace(id)
		a.selection = 0
		return a.closeForm()

	case formNewChannel:
		if value == "" {
			a.form.err = "Title is required."
			return nil
		}
		id, err := a.store.CreateChannel(a.vs.ActiveWorkspaceID(), value)
		if err != nil {
			a.form.err = err.Error()
			return nil
		}
		a.vs.OpenChannel(a.vs.ActiveWorkspaceID(), id)
		a.selection = 0
		return a.closeForm()

	case formInvite:
		if _, err := a.members.InviteByEmail(a.vs.ActiveChannelID(), value); err != nil {
			// Invalid email keeps the form open for another try.
			a.form.err = "Enter a valid email address."
			return nil
		}
		return a.closeForm()
	}

	return a.closeForm()
}
