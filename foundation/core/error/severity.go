// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels used to rank errors and to pick the
//              log level an error is reported at.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial severity levels
// - 2026-10-18 v0.2.0: Code mapping for the syntax family

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a problem with the caller's input, such as a
	// malformed program
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	SeverityMedium

	// SeverityHigh indicates a broken internal invariant
	SeverityHigh

	// SeverityCritical indicates the process cannot continue
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal, CodeInvalidNumericLiteral:
		return SeverityHigh

	case CodeConfigError, CodeInvalidConfig:
		return SeverityMedium

	case CodeInvalidInput, CodeNotFound, CodeValidationFailed,
		CodeUnexpectedCharacter, CodeUnexpectedEndOfInput, CodeUnexpectedToken,
		CodeUnsupportedTokenType, CodeInvalidAssignmentTarget, CodeNestingTooDeep,
		CodeInputTooLong:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
