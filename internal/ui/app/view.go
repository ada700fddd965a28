// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package app is the root Bubble Tea program for rima.
package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rimahq/rima-tui/internal/ui/components"
	"github.com/rimahq/rima-tui/internal/view"
)

// View renders the active screen.
func (a *App) View() string {
	if a.quitting {
		return ""
	}

	var body string
	switch a.vs.Screen() {
	case view.ScreenHome:
		body = a.viewHome()
	case view.ScreenWorkspace:
		body = a.viewWorkspace()
	case view.ScreenChannel:
		body = a.viewChannel()
	case view.ScreenWorkspaceSummary:
		body = a.viewWorkspaceSummary()
	case view.ScreenChannelSummary:
		body = a.viewChannelSummary()
	case view.ScreenSettings:
		body = a.viewSettings()
	}

	if a.form.mode != formNone {
		body = lipgloss.JoinVertical(lipgloss.Left, body, a.viewForm())
	}

	a.statusBar.Shortcuts = a.shortcuts()
	return lipgloss.JoinVertical(lipgloss.Left,
		a.viewHeader(),
		body,
		a.statusBar.View(),
	)
}

// =============================================================================
// HEADER AND STATUS
// =============================================================================

func (a *App) viewHeader() string {
	title := "Workspaces"
	subtitle := ""

	if w, ok := a.vs.ActiveWorkspace(); ok {
		title = w.Title
		subtitle = w.Schedule
		if ch, ok := a.vs.ActiveChannel(); ok {
			title = w.Title + " / #" + ch.Title
			subtitle = ch.Description
		}
	}
	if a.vs.Screen() == view.ScreenSettings {
		title = "Settings"
		subtitle = ""
	}

	return components.Header(title, subtitle, a.width, a.theme)
}

func (a *App) shortcuts() []components.Shortcut {
	switch a.vs.Screen() {
	case view.ScreenHome:
		return []components.Shortcut{
			{Key: "enter", Desc: "open"},
			{Key: "n", Desc: "new workspace"},
			{Key: "s", Desc: "settings"},
			{Key: "q", Desc: "quit"},
		}
	case view.ScreenWorkspace:
		return []components.Shortcut{
			{Key: "enter", Desc: "send/open"},
			{Key: "ctrl+o", Desc: "overview"},
			{Key: "ctrl+n", Desc: "new channel"},
			{Key: "esc", Desc: "back"},
		}
	case view.ScreenChannel:
		return []components.Shortcut{
			{Key: "enter", Desc: "send"},
			{Key: "ctrl+o", Desc: "overview"},
			{Key: "esc", Desc: "back"},
		}
	case view.ScreenChannelSummary:
		return []components.Shortcut{
			{Key: "ctrl+a", Desc: "add member"},
			{Key: "ctrl+e", Desc: "invite"},
			{Key: "esc", Desc: "back"},
		}
	case view.ScreenSettings:
		return []components.Shortcut{
			{Key: "t", Desc: "timestamps"},
			{Key: "d", Desc: "dark mode"},
			{Key: "w", Desc: "write config"},
			{Key: "esc", Desc: "back"},
		}
	default:
		return []components.Shortcut{{Key: "esc", Desc: "back"}}
	}
}

// =============================================================================
// HOME
// =============================================================================

func (a *App) viewHome() string {
	workspaces := a.store.Workspaces()
	if len(workspaces) == 0 {
		return a.theme.Container.Render(
			a.theme.CardDesc.Render("No workspaces yet. Press n to create one."))
	}

	cards := make([]string, 0, len(workspaces))
	for i, w := range workspaces {
		card := components.NewWorkspaceCard(w, a.theme)
		card.Width = a.width - 4
		card.Selected = i == a.selection
		cards = append(cards, card.View())
	}
	return a.theme.Container.Render(strings.Join(cards, "\n"))
}

// =============================================================================
// WORKSPACE
// =============================================================================

func (a *App) viewWorkspace() string {
	w, ok := a.vs.ActiveWorkspace()
	if !ok {
		return a.theme.FormError.Render("This workspace no longer exists.")
	}

	var sections []string

	if len(w.Channels) > 0 {
		rows := make([]string, 0, len(w.Channels))
		for i, ch := range w.Channels {
			rows = append(rows, components.ChannelRow(ch, i == a.selection, a.width-4, a.theme))
		}
		sections = append(sections, strings.Join(rows, "\n"))
	}

	sections = append(sections, a.viewTranscript(), a.composer.View())
	return a.theme.Container.Render(strings.Join(sections, "\n"))
}

// =============================================================================
// CHANNEL
// =============================================================================

func (a *App) viewChannel() string {
	if _, ok := a.vs.ActiveChannel(); !ok {
		return a.theme.FormError.Render("This channel no longer exists.")
	}
	return a.theme.Container.Render(
		lipgloss.JoinVertical(lipgloss.Left, a.viewTranscript(), a.composer.View()))
}

// viewTranscript renders the messages for the active target.
func (a *App) viewTranscript() string {
	msgs, _ := a.store.Messages(a.vs.Target())

	// Show the tail that fits; the chat stays pinned to the newest turn.
	visible := a.height / 3
	if visible < 4 {
		visible = 4
	}
	if len(msgs) > visible {
		msgs = msgs[len(msgs)-visible:]
	}

	ml := components.NewMessageList(a.theme)
	ml.SetMessages(msgs)
	ml.SetWidth(a.width - 4)
	ml.ShowTimestamps = a.cfg.UI.ShowTimestamps
	return ml.View()
}

// =============================================================================
// SUMMARIES
// =============================================================================

func (a *App) viewWorkspaceSummary() string {
	w, ok := a.vs.ActiveWorkspace()
	if !ok {
		return a.theme.FormError.Render("This workspace no longer exists.")
	}

	rows := []string{
		a.summaryRow("Progress", fmt.Sprintf("%d%%", w.Progress)),
	}
	if w.ProgressNote != "" {
		rows = append(rows, a.summaryRow("Status", w.ProgressNote))
	}
	if w.Phase != "" {
		rows = append(rows, a.summaryRow("Phase", w.Phase))
	}
	if w.Budget != "" {
		rows = append(rows, a.summaryRow("Budget", w.Budget))
	}
	if w.Deadline != "" {
		rows = append(rows, a.summaryRow("Deadline", w.Deadline))
	}

	members := make([]string, 0, len(w.Members))
	for _, u := range w.Members {
		members = append(members, components.MemberRow(u, a.theme))
	}
	rows = append(rows, a.theme.SummaryLabel.Render("Members"), strings.Join(members, "\n"))

	box := a.theme.SummaryBox.Width(a.width - 6).Render(strings.Join(rows, "\n"))
	return a.theme.Container.Render(
		lipgloss.JoinVertical(lipgloss.Left, box, a.viewTranscript(), a.composer.View()))
}

func (a *App) viewChannelSummary() string {
	ch, ok := a.vs.ActiveChannel()
	if !ok {
		return a.theme.FormError.Render("This channel no longer exists.")
	}

	rows := []string{a.summaryRow("Channel", "#"+ch.Title)}
	if ch.Description != "" {
		rows = append(rows, a.summaryRow("About", ch.Description))
	}

	members := make([]string, 0, len(ch.Members))
	for _, u := range ch.Members {
		members = append(members, components.MemberRow(u, a.theme))
	}
	rows = append(rows, a.theme.SummaryLabel.Render("Members"), strings.Join(members, "\n"))

	if addable := a.addableMembers(); len(addable) > 0 {
		rows = append(rows, a.theme.SummaryLabel.Render("Add"))
		for i, id := range addable {
			u, _ := a.store.User(id)
			row := components.MemberRow(u, a.theme)
			if i == a.selection {
				row = a.theme.ChannelItemSelected.Render(row)
			}
			rows = append(rows, row)
		}
	}

	box := a.theme.SummaryBox.Width(a.width - 6).Render(strings.Join(rows, "\n"))
	return a.theme.Container.Render(
		lipgloss.JoinVertical(lipgloss.Left, box, a.viewTranscript(), a.composer.View()))
}

func (a *App) summaryRow(label, value string) string {
	return a.theme.SummaryLabel.Render(label) + a.theme.SummaryValue.Render(value)
}

// =============================================================================
// SETTINGS
// =============================================================================

func (a *App) viewSettings() string {
	onOff := func(b bool) string {
		if b {
			return "on"
		}
		return "off"
	}

	rows := []string{
		a.summaryRow("Model", a.cfg.Ollama.Model),
		a.summaryRow("Ollama", a.cfg.Ollama.URL),
		a.summaryRow("Timestamps", onOff(a.cfg.UI.ShowTimestamps)),
		a.summaryRow("Dark mode", onOff(a.cfg.UI.DarkMode)),
		a.summaryRow("Telemetry", onOff(a.cfg.Telemetry.Enabled)),
	}
	if a.form.err != "" {
		rows = append(rows, a.theme.FormError.Render(a.form.err))
	}

	box := a.theme.SummaryBox.Width(a.width - 6).Render(strings.Join(rows, "\n"))
	return a.theme.Container.Render(box)
}

// =============================================================================
// FORMS
// =============================================================================

func (a *App) viewForm() string {
	var label string
	switch a.form.mode {
	case formNewWorkspace:
		label = "New workspace"
	case formNewChannel:
		label = "New channel"
	case formInvite:
		label = "Invite by email"
	}

	rows := []string{
		a.theme.FormLabel.Render(label),
		a.form.input.View(),
	}
	if a.form.err != "" {
		rows = append(rows, a.theme.FormError.Render(a.form.err))
	}
	rows = append(rows, a.theme.ShortcutDesc.Render("enter to confirm, esc to cancel"))

	return a.theme.FormBox.Width(min(a.width-6, 60)).Render(strings.Join(rows, "\n"))
}
