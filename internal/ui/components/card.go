// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the rima TUI.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rimahq/rima-tui/internal/model"
	"github.com/rimahq/rima-tui/internal/ui/styles"
	"github.com/rimahq/rima-tui/internal/util"
)

// =============================================================================
// WORKSPACE CARD
// =============================================================================

// WorkspaceCard renders a workspace tile for the home screen: title,
// description, progress bar, tags and the unread badge.
type WorkspaceCard struct {
	Workspace model.Workspace
	Width     int
	Selected  bool
	theme     *styles.Theme
}

// NewWorkspaceCard creates a card for the workspace.
func NewWorkspaceCard(w model.Workspace, theme *styles.Theme) *WorkspaceCard {
	return &WorkspaceCard{
		Workspace: w,
		Width:     40,
		theme:     theme,
	}
}

// View renders the card.
func (c *WorkspaceCard) View() string {
	w := c.Workspace
	innerWidth := c.Width - 6
	if innerWidth < 16 {
		innerWidth = 16
	}

	title := c.theme.CardTitle.Render(util.TruncateWidth(w.Title, innerWidth))
	if unread := w.UnreadTotal(); unread > 0 {
		title += " " + c.theme.UnreadBadge.Render(fmt.Sprintf("%d", unread))
	}

	desc := c.theme.CardDesc.Render(util.TruncateWidth(w.Description, innerWidth))

	lines := []string{title, desc}

	if w.Schedule != "" || w.Phase != "" {
		meta := w.Schedule
		if w.Phase != "" {
			if meta != "" {
				meta += " | "
			}
			meta += w.Phase
		}
		lines = append(lines, c.theme.CardMeta.Render(util.TruncateWidth(meta, innerWidth)))
	}

	lines = append(lines, ProgressBar(w.Progress, innerWidth, c.theme))

	if len(w.Tags) > 0 {
		var tags []string
		for _, tag := range w.Tags {
			tags = append(tags, c.theme.CardTag.Render(tag))
		}
		lines = append(lines, util.TruncateWidth(strings.Join(tags, " "), innerWidth))
	}

	body := strings.Join(lines, "\n")

	style := c.theme.Card
	if c.Selected {
		style = c.theme.CardSelected
	}
	return style.Width(c.Width - 2).Render(body)
}

// =============================================================================
// PROGRESS BAR
// =============================================================================

// ProgressBar renders a 0-100 progress value as a fixed-width bar with the
// percentage appended.
func ProgressBar(progress, width int, theme *styles.Theme) string {
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}

	label := fmt.Sprintf(" %d%%", progress)
	barWidth := width - util.StringWidth(label)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := barWidth * progress / 100
	color := styles.ProgressColor(progress)

	bar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat("░", barWidth-filled))
	return bar + theme.CardMeta.Render(label)
}

// =============================================================================
// MEMBER ROW
// =============================================================================

// MemberRow renders a member with a colored avatar initial.
func MemberRow(u model.User, theme *styles.Theme) string {
	avatar := theme.AvatarStyle(u.AvatarColor).Render(util.Initial(u.Name))
	name := theme.MemberRow.Render(u.Name)
	if u.Role != "" {
		name += " " + theme.ChannelDesc.Render("("+u.Role+")")
	}
	return avatar + " " + name
}

// =============================================================================
// CHANNEL ROW
// =============================================================================

// ChannelRow renders a channel list entry with its unread badge.
func ChannelRow(c model.Channel, selected bool, width int, theme *styles.Theme) string {
	style := theme.ChannelItem
	if selected {
		style = theme.ChannelItemSelected
	}

	title := "# " + c.Title
	if c.Unread > 0 {
		title += " " + theme.UnreadBadge.Render(fmt.Sprintf("%d", c.Unread))
	}

	line := style.Render(title)
	if c.Description != "" {
		line += "  " + theme.ChannelDesc.Render(util.TruncateWidth(c.Description, width-util.StringWidth(title)-4))
	}
	return line
}
