// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package router decides where an outgoing message goes and whether it
// should wake the assistant.
//
// Routing is a function of the current view state: workspace pages append
// to the workspace transcript, channel pages to the channel transcript, and
// any other screen drops the message. The router appends exactly one user
// message per accepted send and produces at most one dispatch decision;
// scheduling the dispatch is the caller's job (the TUI turns it into a
// command, the plain CLI runs it in a goroutine).
package router
