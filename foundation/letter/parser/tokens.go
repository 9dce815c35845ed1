// File: tokens.go
// Title: Letter Token Definitions
// Description: Defines the closed set of token types produced by the scanner
//              and the Token value handed to the parser.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial token definitions
// - 2026-10-18 v0.2.0: Token set of the letter language

package parser

import (
	"fmt"
)

// TokenType represents the type of a lexical token
type TokenType int

const (
	// TokenIllegal is the zero value and is never produced by the scanner
	TokenIllegal TokenType = iota

	// Trivia, skipped by the scanner
	TokenWhitespace
	TokenComment

	// Delimiters
	TokenSemicolon  // ;
	TokenLeftBrace  // {
	TokenRightBrace // }
	TokenLeftParen  // (
	TokenRightParen // )
	TokenComma      // ,

	// Keywords
	TokenLet
	TokenIf
	TokenElse
	TokenTrue
	TokenFalse
	TokenNull

	// Literals and names
	TokenNumber
	TokenIdentifier
	TokenString

	// Operators
	TokenSimpleAssign           // =
	TokenComplexAssign          // += -= *= /=
	TokenAdditiveOperator       // + -
	TokenMultiplicativeOperator // * /
	TokenRelationalOperator     // < > <= >=
	TokenEqualityOperator       // == !=
	TokenLogicalAnd             // &&
	TokenLogicalOr              // ||
)

// String returns the name of the token type as used in error messages
func (tt TokenType) String() string {
	switch tt {
	case TokenWhitespace:
		return "WHITESPACE"
	case TokenComment:
		return "COMMENT"
	case TokenSemicolon:
		return ";"
	case TokenLeftBrace:
		return "{"
	case TokenRightBrace:
		return "}"
	case TokenLeftParen:
		return "("
	case TokenRightParen:
		return ")"
	case TokenComma:
		return ","
	case TokenLet:
		return "let"
	case TokenIf:
		return "if"
	case TokenElse:
		return "else"
	case TokenTrue:
		return "true"
	case TokenFalse:
		return "false"
	case TokenNull:
		return "null"
	case TokenNumber:
		return "NUMBER"
	case TokenIdentifier:
		return "IDENTIFIER"
	case TokenString:
		return "STRING"
	case TokenSimpleAssign:
		return "SIMPLE_ASSIGN"
	case TokenComplexAssign:
		return "COMPLEX_ASSIGN"
	case TokenAdditiveOperator:
		return "ADDITIVE_OPERATOR"
	case TokenMultiplicativeOperator:
		return "MULTIPLICATIVE_OPERATOR"
	case TokenRelationalOperator:
		return "RELATIONAL_OPERATOR"
	case TokenEqualityOperator:
		return "EQUALITY_OPERATOR"
	case TokenLogicalAnd:
		return "LOGICAL_AND"
	case TokenLogicalOr:
		return "LOGICAL_OR"
	default:
		return "ILLEGAL"
	}
}

// IsLiteral reports whether the token type starts a literal
func (tt TokenType) IsLiteral() bool {
	switch tt {
	case TokenNumber, TokenString, TokenTrue, TokenFalse, TokenNull:
		return true
	default:
		return false
	}
}

// IsAssignment reports whether the token type is = or a compound assignment
func (tt TokenType) IsAssignment() bool {
	return tt == TokenSimpleAssign || tt == TokenComplexAssign
}

// Token represents a lexical token with position information
type Token struct {
	Type     TokenType // Token type
	Value    string    // Matched text; quotes stripped for strings
	Position int       // Byte offset in input
	Line     int       // Line number (1-based)
	Column   int       // Column number (1-based, in runes)
}

// String returns a string representation of the token
func (t Token) String() string {
	return fmt.Sprintf("%s(%q)", t.Type, t.Value)
}
