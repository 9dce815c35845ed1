// File: letter.go
// Title: Letter Engine Interface
// Description: Provides the high-level letter engine that ties scanner,
//              parser and tree validation together and adds request IDs,
//              timing and configuration on top.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial engine implementation
// - 2026-10-18 v0.2.0: Engine for the letter language front end

package letter

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	mdwconfig "github.com/msto63/letter/foundation/core/config"
	mdwerror "github.com/msto63/letter/foundation/core/error"
	mdwlog "github.com/msto63/letter/foundation/core/log"
	mdwast "github.com/msto63/letter/foundation/letter/ast"
	mdwparser "github.com/msto63/letter/foundation/letter/parser"
)

// Engine parses letter source text. An Engine is safe for concurrent use;
// every call works on its own parser.
type Engine struct {
	logger  *mdwlog.Logger
	options Options
}

// Options configures the letter engine behavior
type Options struct {
	// Logger for engine operations (optional, output is discarded when nil)
	Logger *mdwlog.Logger

	// LogLevel overrides the logger level; zero keeps the logger's own level
	LogLevel mdwlog.Level

	// MaxInputLength limits source length in bytes (default: 1 MiB)
	MaxInputLength int

	// MaxDepth limits statement and expression nesting (default: 512)
	MaxDepth int

	// SkipValidation turns off the validation visitor that Parse runs over
	// every tree. Check always validates.
	SkipValidation bool
}

// Result represents a successfully parsed source text
type Result struct {
	// Program is the root of the syntax tree
	Program *mdwast.Program

	// Source is the text that was parsed
	Source string

	// RequestID identifies this parse in logs and errors
	RequestID string

	// Duration is the time taken to parse and validate
	Duration time.Duration

	// Statements is the number of top-level statements
	Statements int
}

// NewEngine creates a new letter engine with the specified options
func NewEngine(opts ...Options) (*Engine, error) {
	// Default options
	options := Options{
		Logger:         mdwlog.New().WithOutput(io.Discard),
		MaxInputLength: mdwparser.DefaultMaxInputLength,
		MaxDepth:       mdwparser.DefaultMaxDepth,
	}

	// Apply provided options
	if len(opts) > 0 {
		provided := opts[0]
		if provided.MaxInputLength < 0 || provided.MaxDepth < 0 {
			return nil, mdwerror.New("engine limits must not be negative").
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("letter.NewEngine").
				WithDetail("max_input_length", provided.MaxInputLength).
				WithDetail("max_depth", provided.MaxDepth)
		}
		if provided.Logger != nil {
			options.Logger = provided.Logger
		}
		if provided.LogLevel != 0 {
			options.LogLevel = provided.LogLevel
		}
		if provided.MaxInputLength > 0 {
			options.MaxInputLength = provided.MaxInputLength
		}
		if provided.MaxDepth > 0 {
			options.MaxDepth = provided.MaxDepth
		}
		options.SkipValidation = provided.SkipValidation
	}

	logger := options.Logger
	if options.LogLevel != 0 {
		logger = logger.WithLevel(options.LogLevel)
	}

	return &Engine{
		logger:  logger.WithName("letter-engine"),
		options: options,
	}, nil
}

// OptionsFromConfig reads engine options from the log and parser sections
// of a configuration. Missing keys fall back to the engine defaults.
func OptionsFromConfig(cfg *mdwconfig.Config) (Options, error) {
	options := Options{
		MaxInputLength: mdwparser.DefaultMaxInputLength,
		MaxDepth:       mdwparser.DefaultMaxDepth,
	}
	if cfg == nil {
		return options, nil
	}

	if cfg.Has("log.level") {
		level, err := mdwlog.ParseLevel(cfg.GetString("log.level"))
		if err != nil {
			return Options{}, mdwerror.Wrap(err, "invalid log level in configuration").
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("letter.OptionsFromConfig").
				WithDetail("key", "log.level")
		}
		options.LogLevel = level
	}

	options.MaxInputLength = cfg.GetInt("parser.max_input_length", options.MaxInputLength)
	options.MaxDepth = cfg.GetInt("parser.max_depth", options.MaxDepth)
	options.SkipValidation = !cfg.GetBool("parser.validate", true)

	if options.MaxInputLength <= 0 || options.MaxDepth <= 0 {
		return Options{}, mdwerror.New("parser limits must be positive").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("letter.OptionsFromConfig").
			WithDetail("max_input_length", options.MaxInputLength).
			WithDetail("max_depth", options.MaxDepth)
	}

	return options, nil
}

// Options returns the effective engine options
func (e *Engine) Options() Options {
	return e.options
}

// Parse parses source into a syntax tree
func (e *Engine) Parse(source string) (*Result, error) {
	return e.parse(source, !e.options.SkipValidation)
}

// Check parses and validates source without returning the tree
func (e *Engine) Check(source string) error {
	_, err := e.parse(source, true)
	return err
}

// Format parses source and renders it back in canonical form
func (e *Engine) Format(source string) (string, error) {
	result, err := e.Parse(source)
	if err != nil {
		return "", err
	}
	return mdwast.Format(result.Program), nil
}

// Tokens returns the significant tokens of source
func (e *Engine) Tokens(source string) ([]mdwparser.Token, error) {
	requestID := uuid.NewString()
	logger := e.logger.WithRequestID(requestID)

	if len(source) > e.options.MaxInputLength {
		return nil, mdwerror.New(fmt.Sprintf("input exceeds maximum length: %d > %d", len(source), e.options.MaxInputLength)).
			WithCode(mdwerror.CodeInputTooLong).
			WithOperation("letter.Tokens").
			WithRequestID(requestID).
			WithDetail("length", len(source)).
			WithDetail("limit", e.options.MaxInputLength)
	}

	tokens, err := mdwparser.Tokenize(source)
	if err != nil {
		logger.Debug("Tokenize failed", mdwlog.Fields{
			"error_code": mdwerror.GetCode(err).String(),
			"error":      err.Error(),
		})
		return nil, withRequestID(err, requestID)
	}

	logger.Debug("Tokenize completed", mdwlog.Fields{
		"length": len(source),
		"tokens": len(tokens),
	})
	return tokens, nil
}

func (e *Engine) parse(source string, validate bool) (*Result, error) {
	requestID := uuid.NewString()
	logger := e.logger.WithRequestID(requestID)

	p, err := mdwparser.New(mdwparser.Options{
		Logger:         logger,
		MaxInputLength: e.options.MaxInputLength,
		MaxDepth:       e.options.MaxDepth,
	})
	if err != nil {
		return nil, withRequestID(err, requestID)
	}

	timer := logger.StartTimer("parse").WithLevel(mdwlog.LevelInfo).WithField("length", len(source))

	program, err := p.Parse(source)
	if err != nil {
		// the parser has already logged the failure
		return nil, withRequestID(err, requestID)
	}

	if validate {
		if errs := mdwast.Validate(program); len(errs) > 0 {
			err := mdwerror.Wrap(errs[0], fmt.Sprintf("syntax tree failed validation with %d problem(s)", len(errs))).
				WithCode(mdwerror.CodeValidationFailed).
				WithOperation("letter.Parse").
				WithRequestID(requestID).
				WithDetail("problems", len(errs))
			timer.StopWithError(err)
			return nil, err
		}
	}

	duration := timer.WithField("statements", len(program.Body)).Stop()

	return &Result{
		Program:    program,
		Source:     source,
		RequestID:  requestID,
		Duration:   duration,
		Statements: len(program.Body),
	}, nil
}

// withRequestID tags structured errors with the request they belong to
func withRequestID(err error, requestID string) error {
	if mdwErr, ok := mdwerror.As(err); ok {
		return mdwErr.WithRequestID(requestID)
	}
	return err
}
