// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package assistant turns a triggering chat message into a Rima reply.
package assistant

import (
	"context"
	"strings"
	"time"

	"github.com/rimahq/rima-tui/internal/model"
	"github.com/rimahq/rima-tui/internal/store"
	"github.com/rimahq/rima-tui/internal/telemetry"
)

// FallbackReply is appended when the collaborator succeeds but returns an
// empty body.
const FallbackReply = "I don't have a useful answer for that yet. Give me a bit more detail and I'll take another pass."

// DefaultTypingDelay is the artificial pause before a reply appears,
// simulating typing. Injectable; tests use zero.
const DefaultTypingDelay = 1200 * time.Millisecond

// =============================================================================
// COLLABORATOR INTERFACE
// =============================================================================

// TextGenerator is the external text-generation collaborator. The ollama
// client satisfies it.
type TextGenerator interface {
	Generate(ctx context.Context, model, prompt string) (string, error)
}

// =============================================================================
// REQUEST
// =============================================================================

// Request is one dispatch: the captured target, the entity snapshots the
// prompt is built from, the trailing history window, and the triggering
// content.
type Request struct {
	Target    model.Target
	Workspace model.Workspace
	Channel   *model.Channel
	History   []model.Message
	Trigger   string
}

// =============================================================================
// DISPATCHER
// =============================================================================

// Dispatcher builds prompts, calls the collaborator, and appends replies.
type Dispatcher struct {
	store   *store.Store
	gen     TextGenerator
	tracker *telemetry.Tracker
	model   string
	delay   time.Duration
}

// NewDispatcher creates a dispatcher. tracker may be nil; delay < 0 means
// DefaultTypingDelay.
func NewDispatcher(s *store.Store, gen TextGenerator, tracker *telemetry.Tracker, modelName string, delay time.Duration) *Dispatcher {
	if delay < 0 {
		delay = DefaultTypingDelay
	}
	return &Dispatcher{
		store:   s,
		gen:     gen,
		tracker: tracker,
		model:   modelName,
		delay:   delay,
	}
}

// BuildRequest assembles a dispatch request from the current store
// snapshot. The snapshot values are captured here; later store mutations do
// not affect the prompt.
func (d *Dispatcher) BuildRequest(target model.Target, trigger string) (Request, bool) {
	w, ok := d.store.Workspace(target.WorkspaceID)
	if !ok {
		return Request{}, false
	}

	req := Request{
		Target:    target,
		Workspace: w,
		Trigger:   trigger,
	}

	history := w.Messages
	if target.IsChannel() {
		c, ok := w.Channel(target.ChannelID)
		if !ok {
			return Request{}, false
		}
		req.Channel = &c
		history = c.Messages
	}
	req.History = lastN(history, HistoryWindow)
	return req, true
}

// Dispatch runs one assistant turn: one collaborator call, then after the
// typing delay a reply appended to the captured target. The target is fixed
// at request build time, so navigating away does not redirect the reply.
//
// On collaborator failure the error is recorded and returned; the
// transcript is left untouched.
func (d *Dispatcher) Dispatch(ctx context.Context, req Request) (model.Message, error) {
	prompt := BuildPrompt(req)
	start := time.Now()

	text, err := d.gen.Generate(ctx, d.model, prompt)
	if err != nil {
		if d.tracker != nil {
			d.tracker.RecordFailure(req.Target.WorkspaceID, req.Target.ChannelID, d.model, time.Since(start), err)
		}
		return model.Message{}, err
	}

	if strings.TrimSpace(text) == "" {
		text = FallbackReply
	}

	if d.delay > 0 {
		select {
		case <-ctx.Done():
			// Process shutdown; the reply is dropped like a failed turn.
			if d.tracker != nil {
				d.tracker.RecordFailure(req.Target.WorkspaceID, req.Target.ChannelID, d.model, time.Since(start), ctx.Err())
			}
			return model.Message{}, ctx.Err()
		case <-time.After(d.delay):
		}
	}

	reply := model.NewAssistantMessage(text)
	if err := d.store.AppendMessage(req.Target, reply); err != nil {
		if d.tracker != nil {
			d.tracker.RecordFailure(req.Target.WorkspaceID, req.Target.ChannelID, d.model, time.Since(start), err)
		}
		return model.Message{}, err
	}

	if d.tracker != nil {
		d.tracker.RecordSuccess(req.Target.WorkspaceID, req.Target.ChannelID, d.model, time.Since(start))
	}
	return reply, nil
}
