// Package stringx provides string helpers that extend the standard library.
//
// Package: stringx
// Title: Extended String Operations
// Description: Unicode-aware helpers for blank detection, truncation, line
//              splitting and indentation.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2026-10-18 v0.2.0: Case conversion, padding and random helpers removed
package stringx
