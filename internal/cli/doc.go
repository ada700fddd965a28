// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides the plain-terminal REPL: the same store, routing
// and assistant dispatch as the TUI, driven by line input with history.
// Useful over SSH, in CI captures, and anywhere a full-screen program is
// unwelcome.
package cli
