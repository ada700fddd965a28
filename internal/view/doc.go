// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package view tracks which screen is active and which workspace and
// channel IDs it is scoped to.
//
// The controller owns IDs and transient flags only, never entity bodies.
// Active entities are re-resolved from the store on every read, because the
// store replaces entity values on each mutation. A dangling ID resolves to
// absent, not an error; screens that need a present entity render an empty
// state instead.
package view
