// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package app is the root Bubble Tea program for rima.
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rimahq/rima-tui/internal/config"
	"github.com/rimahq/rima-tui/internal/model"
)

// assistantReplyMsg arrives when a dispatched assistant turn has completed
// and its reply is already in the store.
type assistantReplyMsg struct {
	Reply  model.Message
	Target model.Target
}

// dispatchFailedMsg arrives when a dispatched turn failed. The transcript
// is untouched; only the typing indicator needs to stand down.
type dispatchFailedMsg struct {
	Err error
}

// configReloadedMsg arrives when the config watcher picked up an edited
// config file.
type configReloadedMsg struct {
	Config *config.Config
}

// ConfigReloaded wraps a freshly reloaded config for delivery via
// Program.Send.
func ConfigReloaded(cfg *config.Config) tea.Msg {
	return configReloadedMsg{Config: cfg}
}
