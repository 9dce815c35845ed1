// File: doc.go
// Title: Letter Package Documentation
// Description: Package documentation for the letter front end.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial package documentation
// - 2026-10-18 v0.2.0: Engine documentation for the letter language

/*
Package letter is the front end of the letter language: it turns source text
into a syntax tree.

Subpackages:

  - parser: rule-table scanner and recursive descent parser
  - ast: node types, visitors, formatting and validation

The Engine combines both. It applies input and nesting limits, tags every
call with a request ID, logs timing through foundation/core/log and
validates each tree after parsing unless Options.SkipValidation is set.
Without Options.Logger nothing is logged.

Usage:

	engine, err := letter.NewEngine(letter.Options{MaxDepth: 64})
	if err != nil {
		return err
	}

	result, err := engine.Parse("let total = price * (1 + rate);")
	if err != nil {
		return err
	}
	fmt.Println(ast.Outline(result.Program))

Options can also be read from a configuration file:

	cfg, _ := config.Load("letter.toml")
	opts, err := letter.OptionsFromConfig(cfg)
*/
package letter
