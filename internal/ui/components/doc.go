// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the rima TUI:
// message bubbles, workspace cards, channel rows, the composer input and
// the status bar. Components are pure renderers over model values; state
// lives in the app model.
package components
