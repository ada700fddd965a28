// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the rima TUI.
// All colors use Lip Gloss AdaptiveColor so light and dark terminals both
// get a readable palette; the Theme bundles the configured styles the
// screens render with.
package styles
