// Catalogrec - Product Catalog and Recommendation Store
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

// Package logging provides centralized zerolog-based structured logging for
// catalogrec.
//
// stdout belongs to the JSON response of each command, so every log line goes
// to stderr, or to a rotated file when one is configured.
//
// # Quick Start
//
//	import "github.com/tomtom215/catalogrec/internal/logging"
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//	defer logging.Close()
//
//	logging.Debug().Str("backend", "file").Msg("store opened")
//	logging.Ctx(ctx).Warn().Err(err).Msg("save failed")
//
// # Configuration
//
// Environment Variables (read by internal/config):
//
//	LOG_LEVEL   - Minimum log level: trace, debug, info, warn, error, disabled (default: warn)
//	LOG_FORMAT  - Output format: json, console (default: json)
//	LOG_CALLER  - Include caller file:line: true, false (default: false)
//	LOG_FILE    - Write logs to this file with size-based rotation
//
// # Log File Rotation
//
// When Config.File is set, output goes through lumberjack, which rotates the
// file at Rotation.MaxSizeMB and keeps Rotation.MaxBackups old files.
//
// # Context
//
// The CLI stores a request ID and the operation name in the context of every
// command. Ctx(ctx) returns a logger carrying both fields.
//
// # Best Practices
//
// Always terminate log chains with .Msg() or .Send():
//
//	logging.Warn().Str("key", "value").Msg("message")  // Correct
//	logging.Warn().Str("key", "value")                 // WRONG - log not emitted
//
// # Testing
//
//	var buf bytes.Buffer
//	logger := logging.NewTestLogger(&buf)
package logging
