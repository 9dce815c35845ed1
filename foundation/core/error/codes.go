// File: codes.go
// Title: Error Codes
// Description: Defines the closed set of error codes used across the letter
//              toolchain, grouped into generic, configuration, validation and
//              syntax families.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial error codes
// - 2026-10-18 v0.2.0: Syntax family replaces the service and business families

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Syntax tree validation
	CodeValidationFailed Code = "VALIDATION_FAILED"

	// Syntax (scanner and parser)
	CodeUnexpectedCharacter     Code = "SYNTAX_UNEXPECTED_CHARACTER"
	CodeUnexpectedEndOfInput    Code = "SYNTAX_UNEXPECTED_END_OF_INPUT"
	CodeUnexpectedToken         Code = "SYNTAX_UNEXPECTED_TOKEN"
	CodeUnsupportedTokenType    Code = "SYNTAX_UNSUPPORTED_TOKEN_TYPE"
	CodeInvalidAssignmentTarget Code = "SYNTAX_INVALID_ASSIGNMENT_TARGET"
	CodeNestingTooDeep          Code = "SYNTAX_NESTING_TOO_DEEP"
	CodeInputTooLong            Code = "SYNTAX_INPUT_TOO_LONG"
	CodeInvalidNumericLiteral   Code = "SYNTAX_INVALID_NUMERIC_LITERAL"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	case CodeValidationFailed:
		return "validation"
	case CodeUnexpectedCharacter, CodeUnexpectedEndOfInput, CodeUnexpectedToken,
		CodeUnsupportedTokenType, CodeInvalidAssignmentTarget, CodeNestingTooDeep,
		CodeInputTooLong, CodeInvalidNumericLiteral:
		return "syntax"
	default:
		return "generic"
	}
}

// IsSyntax reports whether the code belongs to the syntax family
func (c Code) IsSyntax() bool {
	return c.Category() == "syntax"
}
