// Package log provides structured logging for the letter toolchain.
//
// Package: log
// Title: Structured Logging Framework
// Description: This package implements a structured logging system with
//              contextual fields, multiple output formats, log levels and
//              integration with the structured error type. Loggers are
//              immutable values; every With* call returns a configured copy.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-18 v0.2.0: Reduced to the synchronous core used by the parser and CLI
//
// Usage:
//   import mdwlog "github.com/msto63/letter/foundation/core/log"
//
//   logger := mdwlog.New().
//     WithLevel(mdwlog.LevelDebug).
//     WithFormat(mdwlog.FormatConsole).
//     WithName("letter-parser")
//
//   logger.Debug("Parsing source", mdwlog.Fields{"length": len(src)})
//
//   timer := logger.StartTimer("parse")
//   // ... parse
//   timer.Stop()
//
//   // Structured errors are logged at a level matching their severity
//   logger.LogError(err)
package log
