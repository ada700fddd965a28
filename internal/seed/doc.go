// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package seed supplies the startup fixture: the user roster and the
// initial workspaces a fresh session opens with. The built-in fixture is a
// trip-planning scenario; a JSON file can replace it entirely for demos
// and tests.
package seed
