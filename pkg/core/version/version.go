// ============================================================================
// letter - Front end for the letter language
// ============================================================================
//
// Package:     version
// Description: Central version management for all letter components
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants for all letter components
const (
	// Platform version
	Platform = "0.2.0"

	// Component versions
	CLI     = "0.2.0"
	REPL    = "0.2.0"
	Engine  = "0.2.0"
	Grammar = "1.0.0"
)

// Build information, set via -ldflags at build time
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "cli":
		return CLI
	case "repl":
		return REPL
	case "engine":
		return Engine
	case "grammar":
		return Grammar
	default:
		return Platform
	}
}

// Info returns the multi-line build summary printed by `letter version`
func Info() string {
	return fmt.Sprintf("letter v%s\n"+
		"  Grammar:    v%s\n"+
		"  Git Commit: %s\n"+
		"  Build Date: %s\n"+
		"  Go Version: %s\n"+
		"  OS/Arch:    %s/%s\n",
		Platform, Grammar, GitCommit, BuildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
