// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package telemetry records assistant dispatch outcomes.
//
// This is the observability sink for the dispatcher: every dispatch, failed
// or not, becomes an event with its target, model and latency. Events live
// in memory for the session and can optionally be persisted to a SQLite
// database. Recording is fire-and-forget; nothing in the chat flow ever
// waits on or fails because of telemetry.
package telemetry
