// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for rima.
//
// Configuration is TOML with sensible defaults and environment variable
// overrides, in order of precedence:
//   - RIMA_* environment variables
//   - ~/.rima/config.toml
//   - Built-in defaults
//
// A watcher can reload the file on change so a running session picks up
// edits without restarting.
package config
