// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small helpers shared across the application:
// width-aware string truncation for terminal rendering, and crash-safe
// file writing for config persistence.
package util
