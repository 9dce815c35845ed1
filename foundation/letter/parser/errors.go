// File: errors.go
// Title: Letter Syntax Errors
// Description: Constructors for the structured errors raised by the scanner
//              and parser, and helpers to read their source location.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: ParseError with position information
// - 2026-10-18 v0.2.0: Structured error codes for every syntax failure

package parser

import (
	"fmt"
	"strings"

	mdwerror "github.com/msto63/letter/foundation/core/error"
	mdwast "github.com/msto63/letter/foundation/letter/ast"
	mdwstringx "github.com/msto63/letter/foundation/utils/stringx"
)

const (
	opScan  = "scanner.Next"
	opParse = "parser.Parse"

	maxValueInError = 32
)

func errUnexpectedCharacter(ch rune, position, line, column int) error {
	return mdwerror.New(fmt.Sprintf("unexpected character %q at line %d, column %d", ch, line, column)).
		WithCode(mdwerror.CodeUnexpectedCharacter).
		WithOperation(opScan).
		WithDetails(map[string]interface{}{
			"char":     string(ch),
			"position": position,
			"line":     line,
			"column":   column,
		})
}

func errUnterminatedComment(s *Scanner) error {
	return mdwerror.New(fmt.Sprintf("unterminated block comment at line %d, column %d", s.line, s.column)).
		WithCode(mdwerror.CodeUnexpectedEndOfInput).
		WithOperation(opScan).
		WithDetails(map[string]interface{}{
			"expected": "*/",
			"line":     s.line,
			"column":   s.column,
		})
}

func errUnexpectedEndOfInput(expected string, s *Scanner) error {
	return mdwerror.New(fmt.Sprintf("unexpected end of input, expected %s", expected)).
		WithCode(mdwerror.CodeUnexpectedEndOfInput).
		WithOperation(opParse).
		WithDetails(map[string]interface{}{
			"expected": expected,
			"line":     s.Line(),
			"column":   s.Column(),
		})
}

func errUnexpectedToken(tok *Token, expected string) error {
	value := mdwstringx.Truncate(tok.Value, maxValueInError, "...")
	return mdwerror.New(fmt.Sprintf("unexpected token %s %q at line %d, column %d, expected %s",
		tok.Type, value, tok.Line, tok.Column, expected)).
		WithCode(mdwerror.CodeUnexpectedToken).
		WithOperation(opParse).
		WithDetails(map[string]interface{}{
			"found":    tok.Type.String(),
			"expected": expected,
			"value":    value,
			"line":     tok.Line,
			"column":   tok.Column,
		})
}

func errUnsupportedTokenType(tok *Token, rule string) error {
	return mdwerror.New(fmt.Sprintf("unsupported token type %s in %s at line %d, column %d",
		tok.Type, rule, tok.Line, tok.Column)).
		WithCode(mdwerror.CodeUnsupportedTokenType).
		WithOperation(opParse).
		WithDetails(map[string]interface{}{
			"kind":   tok.Type.String(),
			"rule":   rule,
			"line":   tok.Line,
			"column": tok.Column,
		})
}

func errInvalidAssignmentTarget(target mdwast.Expr, op *Token) error {
	pos := target.Position()
	return mdwerror.New(fmt.Sprintf("invalid assignment target %s for %q at line %d, column %d",
		mdwast.NodeType(target), op.Value, pos.Line, pos.Column)).
		WithCode(mdwerror.CodeInvalidAssignmentTarget).
		WithOperation(opParse).
		WithDetails(map[string]interface{}{
			"target":   mdwast.NodeType(target),
			"operator": op.Value,
			"line":     pos.Line,
			"column":   pos.Column,
		})
}

func errNestingTooDeep(limit int, tok *Token) error {
	err := mdwerror.New(fmt.Sprintf("nesting exceeds maximum depth of %d", limit)).
		WithCode(mdwerror.CodeNestingTooDeep).
		WithOperation(opParse).
		WithDetail("limit", limit)
	if tok != nil {
		err = err.WithDetail("line", tok.Line).WithDetail("column", tok.Column)
	}
	return err
}

func errInputTooLong(length, limit int) error {
	return mdwerror.New(fmt.Sprintf("input exceeds maximum length: %d > %d", length, limit)).
		WithCode(mdwerror.CodeInputTooLong).
		WithOperation(opParse).
		WithDetail("length", length).
		WithDetail("limit", limit)
}

func errInvalidNumericLiteral(tok *Token, cause error) error {
	return mdwerror.Wrap(cause, fmt.Sprintf("invalid numeric literal %q at line %d, column %d",
		mdwstringx.Truncate(tok.Value, maxValueInError, "..."), tok.Line, tok.Column)).
		WithCode(mdwerror.CodeInvalidNumericLiteral).
		WithSeverity(mdwerror.SeverityHigh).
		WithOperation(opParse).
		WithDetails(map[string]interface{}{
			"literal": tok.Value,
			"line":    tok.Line,
			"column":  tok.Column,
		})
}

// Location returns the line and column recorded on a syntax error
func Location(err error) (line, column int, ok bool) {
	mdwErr, isStructured := mdwerror.As(err)
	if !isStructured {
		return 0, 0, false
	}

	l, hasLine := mdwErr.Detail("line")
	c, hasColumn := mdwErr.Detail("column")
	if !hasLine || !hasColumn {
		return 0, 0, false
	}

	line, lineOK := l.(int)
	column, columnOK := c.(int)
	return line, column, lineOK && columnOK
}

// IsSyntaxError reports whether err was raised by the scanner or parser
func IsSyntaxError(err error) bool {
	return mdwerror.GetCode(err).IsSyntax()
}

// Excerpt returns the source line at line followed by a caret line
// pointing at column. Tabs before the column are kept so the caret lines
// up in a terminal.
func Excerpt(source string, line, column int) string {
	lines := mdwstringx.SplitLines(source)
	if line < 1 || line > len(lines) || column < 1 {
		return ""
	}

	text := lines[line-1]
	var pad strings.Builder
	i := 1
	for _, r := range text {
		if i >= column {
			break
		}
		if r == '\t' {
			pad.WriteRune('\t')
		} else {
			pad.WriteRune(' ')
		}
		i++
	}
	for ; i < column; i++ {
		pad.WriteRune(' ')
	}

	return text + "\n" + pad.String() + "^"
}
