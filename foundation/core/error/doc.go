// Package error provides structured error handling for the letter toolchain.
//
// Package: error
// Title: letter Error Handling Framework
// Description: Implements a structured error type carrying a code, a severity,
//              the failing operation and free-form details. Every failure the
//              scanner, parser, configuration loader or engine reports is one
//              of these values, so callers can branch on codes instead of
//              matching message text.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-18 v0.2.0: Syntax error codes, errors.As based code lookup
//
// Usage:
//
//	err := error.New("unexpected token").
//		WithCode(error.CodeUnexpectedToken).
//		WithOperation("parser.Parse").
//		WithDetail("found", ")").
//		WithDetail("expected", "IDENTIFIER")
//
//	if error.HasCode(err, error.CodeUnexpectedToken) {
//		// report to the user
//	}
package error
