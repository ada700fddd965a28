// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package app is the root Bubble Tea program for rima.
package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rimahq/rima-tui/internal/assistant"
	"github.com/rimahq/rima-tui/internal/router"
)

// dispatchCmd runs one assistant turn off the event loop. The request was
// built before the user could navigate away, so the reply lands in the
// transcript the send happened in.
func (a *App) dispatchCmd(req assistant.Request) tea.Cmd {
	return func() tea.Msg {
		reply, err := a.dispatcher.Dispatch(context.Background(), req)
		if err != nil {
			return dispatchFailedMsg{Err: err}
		}
		return assistantReplyMsg{Reply: reply, Target: req.Target}
	}
}

// sendCurrent routes the composer content and schedules a dispatch when
// the router asks for one.
func (a *App) sendCurrent() tea.Cmd {
	content := a.composer.Value()
	decision, ok := a.router.Send(content)
	a.composer.Reset()
	if !ok {
		return nil
	}
	return a.maybeDispatch(decision)
}

// maybeDispatch builds and schedules the assistant turn for a routed send.
func (a *App) maybeDispatch(decision router.Decision) tea.Cmd {
	if !decision.Dispatch {
		return nil
	}
	req, ok := a.dispatcher.BuildRequest(decision.Target, decision.Message.Content)
	if !ok {
		return nil
	}
	a.inflight++
	a.statusBar.Typing = true
	return a.dispatchCmd(req)
}
