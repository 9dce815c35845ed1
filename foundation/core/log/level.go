// File: level.go
// Title: Log Level Definitions
// Description: Defines log levels for filtering and controlling log output,
//              with their names, tags and console colors in one table.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with standard log levels
// - 2026-10-18 v0.2.0: Audit level removed, table-driven names and parsing

package log

import (
	"slices"
	"strings"
)

// Level represents the importance level of a log message
type Level int

const (
	// LevelTrace is the most verbose threshold
	LevelTrace Level = iota

	// LevelDebug provides detailed information for debugging purposes
	LevelDebug

	// LevelInfo represents general informational messages
	LevelInfo

	// LevelWarn indicates failed operations the caller recovers from
	LevelWarn

	// LevelError represents error conditions that need attention
	LevelError

	// LevelFatal is the strictest threshold, it silences all other levels
	LevelFatal
)

type levelNames struct {
	name    string
	short   string
	color   string
	aliases []string
}

// names is indexed by Level
var names = [...]levelNames{
	LevelTrace: {name: "trace", short: "TRC", color: "\033[37m"},
	LevelDebug: {name: "debug", short: "DBG", color: "\033[36m"},
	LevelInfo:  {name: "info", short: "INF", color: "\033[32m", aliases: []string{"information"}},
	LevelWarn:  {name: "warn", short: "WRN", color: "\033[33m", aliases: []string{"warning"}},
	LevelError: {name: "error", short: "ERR", color: "\033[31m"},
	LevelFatal: {name: "fatal", short: "FTL", color: "\033[35m"},
}

func (l Level) known() bool {
	return l >= LevelTrace && l <= LevelFatal
}

// String returns the lower-case level name used in configuration files
func (l Level) String() string {
	if !l.known() {
		return "unknown"
	}
	return names[l].name
}

// ShortString returns the three-letter tag used by the text formatter
func (l Level) ShortString() string {
	if !l.known() {
		return "???"
	}
	return names[l].short
}

// Color returns the ANSI color sequence for console output
func (l Level) Color() string {
	if !l.known() {
		return "\033[0m"
	}
	return names[l].color
}

// ShouldLog returns true if this level should be logged given the minimum level
func (l Level) ShouldLog(minLevel Level) bool {
	return l >= minLevel
}

// ParseLevel accepts a level name, its three-letter tag or a common
// spelling such as "warning", ignoring case and surrounding space.
func ParseLevel(level string) (Level, error) {
	key := strings.ToLower(strings.TrimSpace(level))
	for l, n := range names {
		if key == n.name || key == strings.ToLower(n.short) || slices.Contains(n.aliases, key) {
			return Level(l), nil
		}
	}
	return LevelInfo, &ParseError{
		Input: level,
		Type:  "level",
	}
}

// ParseError represents an error parsing a log configuration value
type ParseError struct {
	Input string
	Type  string
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return "invalid " + e.Type + ": " + e.Input
}

// DefaultLevel returns the default log level
func DefaultLevel() Level {
	return LevelInfo
}
