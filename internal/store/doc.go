// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package store owns the canonical in-memory collection of workspaces,
// channels, members and messages.
//
// Every mutation builds a new snapshot and swaps it in under a lock. A user
// action and a delayed assistant append can therefore never observe or
// produce a half-applied update: readers always get a complete snapshot,
// and values handed out earlier stay valid and unchanged.
package store
