// Package filex implements the file utilities used by the letter tools.
//
// Package: filex
// Title: File Operations for Source Files
// Description: Reading source files with a size limit and rewriting them
//              atomically after formatting.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive file utilities
// - 2026-10-18 v0.2.0: Reduced to source file handling
//
// Functions:
//   - FormatSize: human-readable byte counts
//   - ReadString: read a regular file, rejecting files above a byte limit
//   - WriteStringAtomic: replace a file through a temporary file and rename
//
// Errors from ReadString are *error.Error values from foundation/core/error
// with codes NOT_FOUND, INVALID_INPUT, INTERNAL or SYNTAX_INPUT_TOO_LONG.
//
// Usage:
//
//	source, err := filex.ReadString("program.let", 1<<20)
//	if err != nil {
//		return err
//	}
//	if err := filex.WriteStringAtomic("program.let", formatted); err != nil {
//		return err
//	}
package filex
