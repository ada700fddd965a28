// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package assistant turns a triggering chat message into a Rima reply.
//
// A dispatch captures its target when it starts. The external
// text-generation call is the only suspension point in the application:
// the caller fires it and moves on, and the reply lands in the captured
// transcript after a typing delay even if the user has navigated away. A
// failed dispatch is recorded in telemetry and leaves the transcript
// untouched; there is no retry and no placeholder message.
package assistant
