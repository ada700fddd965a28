// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package member is the thin membership layer over the store: add a known
// user to a channel, or invite a new one by email. The interesting
// invariants (no duplicate members, email validation) live in the store;
// this package exists so UI surfaces share one entry point.
package member
