// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the rima TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the application. It detects
// the terminal's color capability once at startup.
type Theme struct {
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	Width  int
	Height int

	// ==========================================================================
	// APPLICATION CONTAINER STYLES
	// ==========================================================================

	App       lipgloss.Style
	Container lipgloss.Style

	// ==========================================================================
	// HEADER STYLES
	// ==========================================================================

	Header         lipgloss.Style
	HeaderTitle    lipgloss.Style
	HeaderSubtitle lipgloss.Style
	HeaderBrand    lipgloss.Style
	Breadcrumb     lipgloss.Style

	// ==========================================================================
	// WORKSPACE CARD STYLES
	// ==========================================================================

	Card         lipgloss.Style
	CardSelected lipgloss.Style
	CardTitle    lipgloss.Style
	CardDesc     lipgloss.Style
	CardMeta     lipgloss.Style
	CardTag      lipgloss.Style
	UnreadBadge  lipgloss.Style

	// ==========================================================================
	// CHANNEL LIST STYLES
	// ==========================================================================

	ChannelItem         lipgloss.Style
	ChannelItemSelected lipgloss.Style
	ChannelDesc         lipgloss.Style

	// ==========================================================================
	// MESSAGE BUBBLE STYLES
	// ==========================================================================

	UserBubble      lipgloss.Style
	AssistantBubble lipgloss.Style
	SenderName      lipgloss.Style
	AssistantName   lipgloss.Style
	Timestamp       lipgloss.Style
	MentionText     lipgloss.Style

	// ==========================================================================
	// INPUT AREA STYLES
	// ==========================================================================

	InputContainer   lipgloss.Style
	InputPrompt      lipgloss.Style
	InputText        lipgloss.Style
	InputPlaceholder lipgloss.Style

	// ==========================================================================
	// STATUS BAR STYLES
	// ==========================================================================

	StatusBar    lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style
	TypingText   lipgloss.Style
	Spinner      lipgloss.Style

	// ==========================================================================
	// SUMMARY AND FORM STYLES
	// ==========================================================================

	SummaryBox     lipgloss.Style
	SummaryLabel   lipgloss.Style
	SummaryValue   lipgloss.Style
	FormBox        lipgloss.Style
	FormLabel      lipgloss.Style
	FormError      lipgloss.Style
	MemberRow      lipgloss.Style
	Avatar         lipgloss.Style
	ProgressFilled lipgloss.Style
	ProgressEmpty  lipgloss.Style
}

// NewTheme creates a theme with all styles configured for the current
// terminal.
func NewTheme() *Theme {
	colorProfile := termenv.ColorProfile()

	t := &Theme{
		IsDark:       termenv.HasDarkBackground(),
		HasTrueColor: colorProfile == termenv.TrueColor,
		ColorProfile: colorProfile,
	}

	t.initStyles()
	return t
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	t.App = lipgloss.NewStyle()
	t.Container = lipgloss.NewStyle().Padding(0, 1)

	// Header
	t.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan).
		Background(SurfaceDim).
		Padding(0, 2)

	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary)

	t.HeaderSubtitle = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true)

	t.HeaderBrand = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan)

	t.Breadcrumb = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Workspace cards
	t.Card = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 2)

	t.CardSelected = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Cyan).
		Padding(0, 2)

	t.CardTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary)

	t.CardDesc = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.CardMeta = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.CardTag = lipgloss.NewStyle().
		Foreground(Cyan).
		Background(CyanDeep).
		Padding(0, 1)

	t.UnreadBadge = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(Amber).
		Bold(true).
		Padding(0, 1)

	// Channel list
	t.ChannelItem = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Padding(0, 1)

	t.ChannelItemSelected = lipgloss.NewStyle().
		Background(CyanDeep).
		Foreground(TextPrimary).
		Bold(true).
		Padding(0, 1)

	t.ChannelDesc = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Message bubbles
	t.UserBubble = lipgloss.NewStyle().
		Foreground(UserBubbleFg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(UserBubbleBorder).
		Padding(0, 2).
		MarginLeft(4)

	t.AssistantBubble = lipgloss.NewStyle().
		Foreground(AssistantBubbleFg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(AssistantBubbleBorder).
		Padding(0, 2).
		MarginRight(4)

	t.SenderName = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary)

	t.AssistantName = lipgloss.NewStyle().
		Bold(true).
		Foreground(Violet)

	t.Timestamp = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.MentionText = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	// Input area
	t.InputContainer = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.InputPrompt = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.InputText = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.InputPlaceholder = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	// Status bar
	t.StatusBar = lipgloss.NewStyle().
		Background(SurfaceDim).
		Foreground(TextSecondary).
		Padding(0, 1)

	t.ShortcutKey = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.TypingText = lipgloss.NewStyle().
		Foreground(Violet).
		Italic(true)

	t.Spinner = lipgloss.NewStyle().
		Foreground(Violet)

	// Summaries and forms
	t.SummaryBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Violet).
		Padding(1, 2)

	t.SummaryLabel = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Width(12)

	t.SummaryValue = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Bold(true)

	t.FormBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Cyan).
		Padding(1, 2)

	t.FormLabel = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.FormError = lipgloss.NewStyle().
		Foreground(Rose).
		Bold(true)

	t.MemberRow = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.Avatar = lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1)

	t.ProgressFilled = lipgloss.NewStyle().
		Foreground(Emerald)

	t.ProgressEmpty = lipgloss.NewStyle().
		Foreground(Overlay)
}

// SetSize records the terminal dimensions for width-aware rendering.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// AvatarStyle returns the avatar style colored for a member. The color is
// an ANSI256 code carried on the user record.
func (t *Theme) AvatarStyle(colorCode string) lipgloss.Style {
	if colorCode == "" {
		return t.Avatar.Foreground(TextSecondary)
	}
	return t.Avatar.Foreground(lipgloss.Color(colorCode))
}
