// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package assistant turns a triggering chat message into a Rima reply.
package assistant

import (
	"fmt"
	"strings"

	"github.com/rimahq/rima-tui/internal/model"
)

// HistoryWindow is how many recent messages a dispatch carries as context.
const HistoryWindow = 15

// personaInstruction is the fixed behavioral block appended to every
// prompt.
const personaInstruction = `You are Rima, the workspace assistant. Be warm, concise and direct.
Do not use emoji or decorative symbols. Proactively surface tasks, risks
and deadlines you notice in the conversation. Answer in at most four
sentences unless a structured list is clearly warranted.`

// =============================================================================
// PROMPT BUILDER
// =============================================================================

// BuildPrompt renders the dispatch request into the single prompt sent to
// the text-generation collaborator.
func BuildPrompt(req Request) string {
	var b strings.Builder

	b.WriteString("Workspace: ")
	b.WriteString(req.Workspace.Title)
	if req.Workspace.Description != "" {
		b.WriteString(" — ")
		b.WriteString(req.Workspace.Description)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Progress: %d%%\n", req.Workspace.Progress)
	if req.Workspace.Phase != "" {
		fmt.Fprintf(&b, "Phase: %s\n", req.Workspace.Phase)
	}
	if req.Workspace.Budget != "" {
		fmt.Fprintf(&b, "Budget: %s\n", req.Workspace.Budget)
	}
	if req.Workspace.Deadline != "" {
		fmt.Fprintf(&b, "Deadline: %s\n", req.Workspace.Deadline)
	}

	if req.Channel != nil {
		fmt.Fprintf(&b, "Channel: %s", req.Channel.Title)
		if req.Channel.Description != "" {
			b.WriteString(" — ")
			b.WriteString(req.Channel.Description)
		}
		b.WriteString("\n")
	}

	if len(req.History) > 0 {
		b.WriteString("\nRecent conversation:\n")
		for _, msg := range req.History {
			fmt.Fprintf(&b, "%s: %s\n", msg.Sender.DisplayName(), msg.Content)
		}
	}

	b.WriteString("\nNew message:\n")
	fmt.Fprintf(&b, "%s\n", req.Trigger)

	b.WriteString("\n")
	b.WriteString(personaInstruction)
	return b.String()
}

// lastN returns the trailing n messages of a transcript.
func lastN(msgs []model.Message, n int) []model.Message {
	if len(msgs) <= n {
		return msgs
	}
	return msgs[len(msgs)-n:]
}
