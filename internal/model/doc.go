// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for workspaces, channels,
// members and chat messages.
//
// The types here are plain values. All mutation goes through the store
// package, which replaces entities wholesale instead of editing them in
// place, so holding a Workspace or Channel value is always safe: it is a
// snapshot, never a live reference.
package model
