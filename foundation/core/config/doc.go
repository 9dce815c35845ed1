// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config provides configuration management with support
//              for TOML and YAML formats, layered defaults and environment
//              variable overrides.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-18 v0.2.0: Discovery, validation rules and file watching removed

/*
Package config provides configuration management for the letter toolchain.

Values are addressed with dot notation ("parser.max_depth"). Lookups consult,
in order, the environment (when an EnvPrefix is set), the parsed file, the
Defaults passed at load time, and finally the default argument of the getter.

# Basic Configuration Loading

	cfg, err := mdwconfig.LoadWithOptions("letter.toml", mdwconfig.LoadOptions{
		Format:    mdwconfig.FormatAuto,
		EnvPrefix: "LETTER",
		Defaults: map[string]interface{}{
			"parser.max_depth": 512,
		},
	})
	if err != nil {
		return err
	}

	depth := cfg.GetInt("parser.max_depth")
	level := cfg.GetString("log.level", "warn")

With EnvPrefix "LETTER", the environment variable LETTER_PARSER_MAX_DEPTH
overrides parser.max_depth.
*/
package config
