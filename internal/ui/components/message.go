// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the rima TUI.
package components

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/rimahq/rima-tui/internal/model"
	"github.com/rimahq/rima-tui/internal/ui/styles"
	"github.com/rimahq/rima-tui/internal/util"
)

// =============================================================================
// MESSAGE BUBBLE COMPONENT
// =============================================================================

// MessageBubble renders one chat message. User messages sit right-aligned,
// assistant messages left-aligned with their own palette.
type MessageBubble struct {
	Message       model.Message
	Width         int
	ShowTimestamp bool
	theme         *styles.Theme
}

// NewMessageBubble creates a bubble for the message.
func NewMessageBubble(msg model.Message, theme *styles.Theme) *MessageBubble {
	return &MessageBubble{
		Message:       msg,
		Width:         80,
		ShowTimestamp: true,
		theme:         theme,
	}
}

// SetWidth sets the bubble width.
func (b *MessageBubble) SetWidth(width int) {
	b.Width = width
}

// View renders the message bubble.
func (b *MessageBubble) View() string {
	if b.Message.Sender.IsAssistant() {
		return b.renderAssistant()
	}
	return b.renderUser()
}

// ==========================================================================
// USER BUBBLE - right-aligned
// ==========================================================================

func (b *MessageBubble) renderUser() string {
	content := b.Message.Content
	if content == "" {
		content = "..."
	}

	maxContentWidth := b.Width - 12
	if maxContentWidth < 20 {
		maxContentWidth = 20
	}
	// Wrap before styling so escape codes don't skew width math.
	wrapped := wordWrap(content, maxContentWidth)
	contentWidth := min(maxLineWidth(wrapped)+4, b.Width-8)
	wrapped = highlightMentions(wrapped)

	bubble := b.theme.UserBubble.Width(contentWidth).Render(wrapped)

	name := b.theme.SenderName.Render(b.Message.Sender.DisplayName())
	header := name
	if b.ShowTimestamp {
		header += " " + b.theme.Timestamp.Render(b.Message.FormatTimestamp())
	}

	leftMargin := b.Width - contentWidth - 4
	if leftMargin < 0 {
		leftMargin = 0
	}
	margin := lipgloss.NewStyle().MarginLeft(leftMargin)

	return lipgloss.JoinVertical(lipgloss.Right,
		margin.Render(header),
		margin.Render(bubble),
	)
}

// ==========================================================================
// ASSISTANT BUBBLE - left-aligned, violet
// ==========================================================================

func (b *MessageBubble) renderAssistant() string {
	content := b.Message.Content
	if content == "" {
		content = "..."
	}

	maxContentWidth := b.Width - 12
	if maxContentWidth < 20 {
		maxContentWidth = 20
	}

	// Fenced code keeps its highlighting; prose gets wrapped.
	if strings.Contains(content, "```") {
		content = RenderCodeBlocks(content, maxContentWidth)
	} else {
		content = wordWrap(content, maxContentWidth)
	}

	contentWidth := min(maxLineWidth(content)+4, b.Width-8)

	bubble := b.theme.AssistantBubble.Width(contentWidth).Render(content)

	header := b.theme.AssistantName.Render(model.AssistantName)
	if b.ShowTimestamp {
		header += " " + b.theme.Timestamp.Render(b.Message.FormatTimestamp())
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, bubble)
}

// highlightMentions styles the assistant tag inside user content.
func highlightMentions(content string) string {
	start, end := indexFold(content, model.AssistantTag)
	if start < 0 {
		return content
	}
	styled := lipgloss.NewStyle().Foreground(styles.Cyan).Bold(true).Render(content[start:end])
	return content[:start] + styled + content[end:]
}

// indexFold locates the first case-insensitive occurrence of substr in s
// and returns its byte bounds in s. The walk stays on s itself: case
// conversion can change a rune's byte length, so offsets computed on a
// lowered copy cannot be reused to slice the original.
func indexFold(s, substr string) (int, int) {
	n := utf8.RuneCountInString(substr)
	if n == 0 {
		return 0, 0
	}
	for i := range s {
		j, left := i, n
		for left > 0 && j < len(s) {
			_, size := utf8.DecodeRuneInString(s[j:])
			j += size
			left--
		}
		if left > 0 {
			// Fewer than n runes remain; later starts only get shorter.
			return -1, -1
		}
		if strings.EqualFold(s[i:j], substr) {
			return i, j
		}
	}
	return -1, -1
}

// =============================================================================
// MESSAGE LIST COMPONENT
// =============================================================================

// MessageList renders a transcript.
type MessageList struct {
	Messages       []model.Message
	Width          int
	ShowTimestamps bool
	theme          *styles.Theme
}

// NewMessageList creates an empty transcript renderer.
func NewMessageList(theme *styles.Theme) *MessageList {
	return &MessageList{
		Width:          80,
		ShowTimestamps: true,
		theme:          theme,
	}
}

// SetMessages sets the messages to display.
func (ml *MessageList) SetMessages(messages []model.Message) {
	ml.Messages = messages
}

// SetWidth sets the list width.
func (ml *MessageList) SetWidth(width int) {
	ml.Width = width
}

// View renders all messages with spacing between bubbles.
func (ml *MessageList) View() string {
	if len(ml.Messages) == 0 {
		empty := lipgloss.NewStyle().
			Foreground(styles.TextMuted).
			Italic(true).
			Width(ml.Width).
			Align(lipgloss.Center).
			Padding(2, 0)
		return empty.Render("No messages yet. Say hi, or ask " + model.AssistantTag + ".")
	}

	bubbles := make([]string, 0, len(ml.Messages))
	for _, msg := range ml.Messages {
		bubble := NewMessageBubble(msg, ml.theme)
		bubble.SetWidth(ml.Width)
		bubble.ShowTimestamp = ml.ShowTimestamps
		bubbles = append(bubbles, bubble.View())
	}
	return strings.Join(bubbles, "\n")
}

// ==========================================================================
// UTILITY FUNCTIONS
// ==========================================================================

// wordWrap wraps text to fit within the given display width.
func wordWrap(text string, width int) string {
	if width <= 0 {
		return text
	}

	var result strings.Builder
	for lineIdx, line := range strings.Split(text, "\n") {
		if lineIdx > 0 {
			result.WriteString("\n")
		}

		words := strings.Fields(line)
		if len(words) == 0 {
			continue
		}

		current := words[0]
		for _, word := range words[1:] {
			if util.StringWidth(current)+1+util.StringWidth(word) <= width {
				current += " " + word
			} else {
				result.WriteString(current)
				result.WriteString("\n")
				current = word
			}
		}
		result.WriteString(current)
	}
	return result.String()
}

// maxLineWidth returns the display width of the widest line.
func maxLineWidth(text string) int {
	maxWidth := 0
	for _, line := range strings.Split(text, "\n") {
		if w := util.StringWidth(line); w > maxWidth {
			maxWidth = w
		}
	}
	return maxWidth
}
