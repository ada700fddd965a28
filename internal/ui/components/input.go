// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the rima TUI.
package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rimahq/rima-tui/internal/model"
	"github.com/rimahq/rima-tui/internal/ui/styles"
)

// =============================================================================
// COMPOSER INPUT
// =============================================================================

// Composer wraps the single-line message input shown at the bottom of
// workspace and channel screens.
type Composer struct {
	input textinput.Model
	width int
	theme *styles.Theme
}

// NewComposer creates the composer with rima styling applied.
func NewComposer(theme *styles.Theme) *Composer {
	ti := textinput.New()
	ti.Placeholder = "Message... (" + model.AssistantTag + " to ask the assistant)"
	ti.CharLimit = 4096
	ti.Width = 70
	ti.Prompt = "> "

	ti.PromptStyle = lipgloss.NewStyle().
		Foreground(styles.Cyan).
		Bold(true)
	ti.TextStyle = lipgloss.NewStyle().
		Foreground(styles.TextPrimary)
	ti.PlaceholderStyle = lipgloss.NewStyle().
		Foreground(styles.TextMuted).
		Italic(true)
	ti.Cursor.Style = lipgloss.NewStyle().
		Foreground(styles.Cyan)

	return &Composer{
		input: ti,
		width: 80,
		theme: theme,
	}
}

// Focus focuses the input.
func (c *Composer) Focus() tea.Cmd {
	return c.input.Focus()
}

// Blur removes focus from the input.
func (c *Composer) Blur() {
	c.input.Blur()
}

// Focused reports whether the input has focus.
func (c *Composer) Focused() bool {
	return c.input.Focused()
}

// Value returns the current input text.
func (c *Composer) Value() string {
	return c.input.Value()
}

// SetValue replaces the input text.
func (c *Composer) SetValue(v string) {
	c.input.SetValue(v)
}

// Reset clears the input.
func (c *Composer) Reset() {
	c.input.Reset()
}

// SetWidth resizes the input to the available width.
func (c *Composer) SetWidth(width int) {
	c.width = width
	inner := width - 6
	if inner < 20 {
		inner = 20
	}
	c.input.Width = inner
}

// Update forwards messages to the underlying text input.
func (c *Composer) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return cmd
}

// View renders the composer inside its container.
func (c *Composer) View() string {
	return c.theme.InputContainer.Width(c.width - 2).Render(c.input.View())
}
