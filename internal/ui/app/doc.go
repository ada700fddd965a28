// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package app is the root Bubble Tea program for rima: one model that owns
// the store, the view-state controller, the message router and the
// assistant dispatcher, and renders whichever screen is active.
//
// The model follows the usual Elm split across files: model.go holds state
// and construction, update.go the event handling, view.go the rendering,
// commands.go the async tea.Cmd constructors and messages.go the message
// types they resolve to.
package app
