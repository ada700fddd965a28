// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package router decides where an outgoing message goes and whether it
// should wake the assistant.
package router

import (
	"strings"

	"github.com/rimahq/rima-tui/internal/model"
	"github.com/rimahq/rima-tui/internal/store"
	"github.com/rimahq/rima-tui/internal/view"
)

// =============================================================================
// DECISION
// =============================================================================

// Decision records what Send did: the message that was appended, the
// transcript it went to, and whether the assistant should be dispatched for
// it.
type Decision struct {
	Message  model.Message
	Target   model.Target
	Dispatch bool
}

// =============================================================================
// ROUTER
// =============================================================================

// Router routes outgoing messages from the current view state into the
// store.
type Router struct {
	store *store.Store
	vs    *view.Controller
}

// New creates a router over the given store and view state.
func New(s *store.Store, vs *view.Controller) *Router {
	return &Router{store: s, vs: vs}
}

// Send routes one outgoing message.
//
// Blank content and sends outside a workspace or channel context are
// silently dropped: both return a zero Decision and false. A target whose
// IDs dangle is likewise a no-op, not an error.
func (r *Router) Send(content string) (Decision, bool) {
	if strings.TrimSpace(content) == "" {
		return Decision{}, false
	}

	target := r.vs.Target()
	if target.IsZero() {
		return Decision{}, false
	}

	msg := model.NewUserMessage(r.store.CurrentUser(), content)
	if err := r.store.AppendMessage(target, msg); err != nil {
		// Dangling view-state IDs resolve to absent, and absent is soft.
		return Decision{}, false
	}

	return Decision{
		Message:  msg,
		Target:   target,
		Dispatch: r.shouldDispatch(content),
	}, true
}

// shouldDispatch is the assistant trigger predicate. The assistant answers
// when it is tagged, when the user is on an overview page, or when the
// active channel has a single member (a solo channel is a direct line to
// the assistant).
func (r *Router) shouldDispatch(content string) bool {
	if strings.Contains(strings.ToLower(content), strings.ToLower(model.AssistantTag)) {
		return true
	}
	if r.vs.Screen().IsSummary() {
		return true
	}
	if ch, ok := r.vs.ActiveChannel(); ok && ch.IsSolo() {
		return true
	}
	return false
}
