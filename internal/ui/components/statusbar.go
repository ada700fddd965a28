// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the rima TUI.
package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"

	"github.com/rimahq/rima-tui/internal/model"
	"github.com/rimahq/rima-tui/internal/ui/styles"
	"github.com/rimahq/rima-tui/internal/util"
)

// =============================================================================
// STATUS BAR
// =============================================================================

// Shortcut is one key hint shown in the status bar.
type Shortcut struct {
	Key  string
	Desc string
}

// StatusBar renders the bottom bar: key hints on the left, the typing
// indicator on the right while a reply is pending.
type StatusBar struct {
	Width     int
	Shortcuts []Shortcut
	Typing    bool
	spinner   spinner.Model
	theme     *styles.Theme
}

// NewStatusBar creates the status bar.
func NewStatusBar(theme *styles.Theme) *StatusBar {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Spinner

	return &StatusBar{
		Width:   80,
		spinner: sp,
		theme:   theme,
	}
}

// Spinner exposes the underlying spinner model for tick updates.
func (s *StatusBar) Spinner() *spinner.Model {
	return &s.spinner
}

// View renders the bar at the configured width.
func (s *StatusBar) View() string {
	var hints []string
	for _, sc := range s.Shortcuts {
		hints = append(hints, s.theme.ShortcutKey.Render(sc.Key)+" "+s.theme.ShortcutDesc.Render(sc.Desc))
	}
	left := strings.Join(hints, "  ")

	right := ""
	if s.Typing {
		right = s.spinner.View() + s.theme.TypingText.Render(model.AssistantName+" is typing...")
	}

	gap := s.Width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}

	return s.theme.StatusBar.Width(s.Width).Render(left + strings.Repeat(" ", gap) + right)
}

// =============================================================================
// HEADER
// =============================================================================

// Header renders the top bar with the brand, current location and an
// optional subtitle.
func Header(title, subtitle string, width int, theme *styles.Theme) string {
	brand := theme.HeaderBrand.Render(model.AssistantName)
	loc := theme.HeaderTitle.Render(util.TruncateWidth(title, width/2))

	line := brand + "  " + loc
	if subtitle != "" {
		line += "  " + theme.HeaderSubtitle.Render(util.TruncateWidth(subtitle, width/3))
	}
	return theme.Header.Width(width).Render(line)
}
