// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the rima TUI.
package styles

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// PRIMARY ACCENT COLORS
// =============================================================================

// Cyan - Brand color, workspace accents, the assistant tag
var Cyan = lipgloss.AdaptiveColor{Light: "#0891B2", Dark: "#22D1EE"}

// CyanDeep - Darker cyan for backgrounds
var CyanDeep = lipgloss.AdaptiveColor{Light: "#0E7490", Dark: "#164E63"}

// Violet - Assistant messages and selections
var Violet = lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#A78BFA"}

// Emerald - Success states, progress above threshold
var Emerald = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34D399"}

// =============================================================================
// SEMANTIC COLORS
// =============================================================================

// Rose - Errors and destructive actions
var Rose = lipgloss.AdaptiveColor{Light: "#E11D48", Dark: "#FB7185"}

// Amber - Warnings, unread badges
var Amber = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"}

// =============================================================================
// SURFACE COLORS
// =============================================================================

// Surface - Main background
var Surface = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#18181B"}

// SurfaceDim - Headers, footers, cards
var SurfaceDim = lipgloss.AdaptiveColor{Light: "#F5F5F5", Dark: "#101012"}

// Overlay - Borders and separators
var Overlay = lipgloss.AdaptiveColor{Light: "#E5E5E5", Dark: "#3F3F46"}

// =============================================================================
// TEXT COLORS
// =============================================================================

// TextPrimary - Main body text
var TextPrimary = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#E4E4E7"}

// TextSecondary - Labels, descriptions
var TextSecondary = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#A1A1AA"}

// TextMuted - Timestamps, hints
var TextMuted = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#71717A"}

// TextInverse - Text on colored backgrounds
var TextInverse = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#18181B"}

// =============================================================================
// MESSAGE BUBBLE COLORS
// =============================================================================

// User message bubble - zinc tones, right-aligned
var UserBubbleFg = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#F4F4F5"}
var UserBubbleBorder = lipgloss.AdaptiveColor{Light: "#D4D4D8", Dark: "#52525B"}

// Assistant message bubble - violet tones, left-aligned
var AssistantBubbleFg = lipgloss.AdaptiveColor{Light: "#5B4B8A", Dark: "#E9E4F5"}
var AssistantBubbleBorder = lipgloss.AdaptiveColor{Light: "#C4B5FD", Dark: "#A78BFA"}

// =============================================================================
// PROGRESS
// =============================================================================

// ProgressLow - progress under a third
var ProgressLow = Rose

// ProgressMid - progress under two thirds
var ProgressMid = Amber

// ProgressHigh - progress above two thirds
var ProgressHigh = Emerald

// ProgressColor picks the bar color for a 0-100 progress value.
func ProgressColor(progress int) lipgloss.AdaptiveColor {
	switch {
	case progress < 34:
		return ProgressLow
	case progress < 67:
		return ProgressMid
	default:
		return ProgressHigh
	}
}
