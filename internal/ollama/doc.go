// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ollama provides the HTTP client for the external text-generation
// collaborator (an Ollama server).
//
// The client is deliberately small: a health check, a model listing, and a
// single non-streaming chat call. Replies surface whole; the UI's typing
// delay, not token streaming, provides the perceived latency. Errors carry
// a type so callers can distinguish "not running" from a timeout, and a
// rate limiter paces request starts without ever dropping one.
package ollama
