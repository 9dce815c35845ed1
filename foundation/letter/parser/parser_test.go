// File: parser_test.go
// Title: Letter Parser Unit Tests
// Description: Unit tests for the recursive descent parser covering statement
//              forms, operator precedence and associativity, assignment
//              targets, positions, limits and error reporting.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial comprehensive test suite
// - 2026-10-18 v0.2.0: Grammar, precedence and error code tests

package parser

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/letter/foundation/core/error"
	mdwlog "github.com/msto63/letter/foundation/core/log"
	mdwast "github.com/msto63/letter/foundation/letter/ast"
)

func newTestParser(t *testing.T, opts Options) *Parser {
	t.Helper()

	if opts.Logger == nil {
		opts.Logger = mdwlog.New().WithOutput(io.Discard)
	}
	p, err := New(opts)
	require.NoError(t, err)
	return p
}

func mustParse(t *testing.T, source string) *mdwast.Program {
	t.Helper()

	program, err := newTestParser(t, Options{}).Parse(source)
	require.NoError(t, err, "source: %s", source)
	require.NotNil(t, program)
	return program
}

// stripPositions zeroes every Pos so trees can be compared by shape
func stripPositions(node mdwast.Node) mdwast.Node {
	mdwast.Walk(func(n mdwast.Node) bool {
		switch v := n.(type) {
		case *mdwast.Program:
			v.Pos = mdwast.Position{}
		case *mdwast.ExpressionStatement:
			v.Pos = mdwast.Position{}
		case *mdwast.BlockStatement:
			v.Pos = mdwast.Position{}
		case *mdwast.EmptyStatement:
			v.Pos = mdwast.Position{}
		case *mdwast.VariableStatement:
			v.Pos = mdwast.Position{}
		case *mdwast.VariableDeclaration:
			v.Pos = mdwast.Position{}
		case *mdwast.IfStatement:
			v.Pos = mdwast.Position{}
		case *mdwast.Identifier:
			v.Pos = mdwast.Position{}
		case *mdwast.BinaryExpression:
			v.Pos = mdwast.Position{}
		case *mdwast.LogicalExpression:
			v.Pos = mdwast.Position{}
		case *mdwast.AssignmentExpression:
			v.Pos = mdwast.Position{}
		case *mdwast.NumericLiteral:
			v.Pos = mdwast.Position{}
		case *mdwast.StringLiteral:
			v.Pos = mdwast.Position{}
		case *mdwast.BooleanLiteral:
			v.Pos = mdwast.Position{}
		case *mdwast.NullLiteral:
			v.Pos = mdwast.Position{}
		}
		return true
	}, node)
	return node
}

// Tree builders

func num(v int64) *mdwast.NumericLiteral              { return &mdwast.NumericLiteral{Value: v} }
func str(v string) *mdwast.StringLiteral              { return &mdwast.StringLiteral{Value: v} }
func ident(name string) *mdwast.Identifier            { return &mdwast.Identifier{Name: name} }
func exprStmt(e mdwast.Expr) mdwast.Statement         { return &mdwast.ExpressionStatement{Expression: e} }
func block(body ...mdwast.Statement) mdwast.Statement { return &mdwast.BlockStatement{Body: body} }

func bin(op string, left, right mdwast.Expr) mdwast.Expr {
	return &mdwast.BinaryExpression{Operator: op, Left: left, Right: right}
}

func logical(op string, left, right mdwast.Expr) mdwast.Expr {
	return &mdwast.LogicalExpression{Operator: op, Left: left, Right: right}
}

func assign(op, target string, value mdwast.Expr) mdwast.Expr {
	return &mdwast.AssignmentExpression{Operator: op, Target: ident(target), Value: value}
}

func program(body ...mdwast.Statement) *mdwast.Program {
	return &mdwast.Program{Body: body}
}

func TestParse_Trees(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *mdwast.Program
	}{
		{
			name:     "multiplication binds tighter than addition",
			input:    "2 + 2 * 2;",
			expected: program(exprStmt(bin("+", num(2), bin("*", num(2), num(2))))),
		},
		{
			name:     "additive operators are left-associative",
			input:    "3 + 2 - 2;",
			expected: program(exprStmt(bin("-", bin("+", num(3), num(2)), num(2)))),
		},
		{
			name:     "parentheses override precedence",
			input:    "(2 + 2) * 2;",
			expected: program(exprStmt(bin("*", bin("+", num(2), num(2)), num(2)))),
		},
		{
			name:     "chained assignment is right-associative",
			input:    "x = y = 42;",
			expected: program(exprStmt(assign("=", "x", assign("=", "y", num(42))))),
		},
		{
			name:     "compound assignment",
			input:    "total += price * 2;",
			expected: program(exprStmt(assign("+=", "total", bin("*", ident("price"), num(2))))),
		},
		{
			name:     "parenthesised identifier is a valid target",
			input:    "(x) = 1;",
			expected: program(exprStmt(assign("=", "x", num(1)))),
		},
		{
			name:     "nested blocks keep order",
			input:    "{ { 'a'; 1; } }",
			expected: program(block(block(exprStmt(str("a")), exprStmt(num(1))))),
		},
		{
			name:     "empty block and empty statement",
			input:    "{} ;",
			expected: program(&mdwast.BlockStatement{}, &mdwast.EmptyStatement{}),
		},
		{
			name:  "literals",
			input: `42; "hello"; 'world'; true; false; null;`,
			expected: program(
				exprStmt(num(42)),
				exprStmt(str("hello")),
				exprStmt(str("world")),
				exprStmt(&mdwast.BooleanLiteral{Value: true}),
				exprStmt(&mdwast.BooleanLiteral{Value: false}),
				exprStmt(&mdwast.NullLiteral{}),
			),
		},
		{
			name:  "variable statement",
			input: "let a, b = 2, c = a = 3;",
			expected: program(&mdwast.VariableStatement{Declarations: []*mdwast.VariableDeclaration{
				{ID: ident("a")},
				{ID: ident("b"), Init: num(2)},
				{ID: ident("c"), Init: assign("=", "a", num(3))},
			}}),
		},
		{
			name:  "relational and equality",
			input: "a + 1 < b == c >= 2;",
			expected: program(exprStmt(bin("==",
				bin("<", bin("+", ident("a"), num(1)), ident("b")),
				bin(">=", ident("c"), num(2))))),
		},
		{
			name:  "logical and binds tighter than or",
			input: "a || b && c || d;",
			expected: program(exprStmt(logical("||",
				logical("||", ident("a"), logical("&&", ident("b"), ident("c"))),
				ident("d")))),
		},
		{
			name:  "assignment of logical expression",
			input: "ok = x > 0 && y != null;",
			expected: program(exprStmt(assign("=", "ok", logical("&&",
				bin(">", ident("x"), num(0)),
				bin("!=", ident("y"), &mdwast.NullLiteral{}))))),
		},
		{
			name:  "if without else",
			input: "if (x) y = 1;",
			expected: program(&mdwast.IfStatement{
				Test:       ident("x"),
				Consequent: exprStmt(assign("=", "y", num(1))),
			}),
		},
		{
			name:  "dangling else binds to nearest if",
			input: "if (x) if (y) {} else {}",
			expected: program(&mdwast.IfStatement{
				Test: ident("x"),
				Consequent: &mdwast.IfStatement{
					Test:       ident("y"),
					Consequent: &mdwast.BlockStatement{},
					Alternate:  &mdwast.BlockStatement{},
				},
			}),
		},
		{
			name:  "comments between tokens",
			input: "let /* name */ x = // value\n 1;",
			expected: program(&mdwast.VariableStatement{Declarations: []*mdwast.VariableDeclaration{
				{ID: ident("x"), Init: num(1)},
			}}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stripPositions(mustParse(t, tt.input))
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		code     mdwerror.Code
		expected string
		line     int
		column   int
	}{
		{
			name:     "empty input",
			input:    "",
			code:     mdwerror.CodeUnexpectedEndOfInput,
			expected: "statement",
			line:     1,
			column:   1,
		},
		{
			name:     "only trivia",
			input:    "  // nothing\n",
			code:     mdwerror.CodeUnexpectedEndOfInput,
			expected: "statement",
			line:     2,
			column:   1,
		},
		{
			name:     "missing semicolon",
			input:    "x = 1",
			code:     mdwerror.CodeUnexpectedEndOfInput,
			expected: ";",
			line:     1,
			column:   6,
		},
		{
			name:     "unclosed block",
			input:    "{ x;",
			code:     mdwerror.CodeUnexpectedEndOfInput,
			expected: "}",
			line:     1,
			column:   5,
		},
		{
			name:     "dangling operator",
			input:    "1 +",
			code:     mdwerror.CodeUnexpectedEndOfInput,
			expected: "expression",
			line:     1,
			column:   4,
		},
		{
			name:     "literal as assignment target",
			input:    "1 = 2;",
			code:     mdwerror.CodeInvalidAssignmentTarget,
			line:     1,
			column:   1,
		},
		{
			name:     "binary expression as assignment target",
			input:    "a + b += 2;",
			code:     mdwerror.CodeInvalidAssignmentTarget,
			line:     1,
			column:   1,
		},
		{
			name:     "keyword as variable name",
			input:    "let if = 1;",
			code:     mdwerror.CodeUnexpectedToken,
			expected: "IDENTIFIER",
			line:     1,
			column:   5,
		},
		{
			name:     "missing closing paren",
			input:    "(1 + 2;",
			code:     mdwerror.CodeUnexpectedToken,
			expected: ")",
			line:     1,
			column:   7,
		},
		{
			name:     "stray closing brace",
			input:    "}",
			code:     mdwerror.CodeUnexpectedToken,
			expected: "IDENTIFIER",
			line:     1,
			column:   1,
		},
		{
			name:     "else without if",
			input:    "x;\nelse {}",
			code:     mdwerror.CodeUnexpectedToken,
			expected: "IDENTIFIER",
			line:     2,
			column:   1,
		},
		{
			name:   "scanner failure surfaces unchanged",
			input:  "let a = #;",
			code:   mdwerror.CodeUnexpectedCharacter,
			line:   1,
			column: 9,
		},
		{
			name:   "numeric literal overflow",
			input:  "99999999999999999999;",
			code:   mdwerror.CodeInvalidNumericLiteral,
			line:   1,
			column: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			program, err := newTestParser(t, Options{}).Parse(tt.input)
			require.Error(t, err)
			assert.Nil(t, program)

			mdwErr, ok := mdwerror.As(err)
			require.True(t, ok, "expected structured error, got %T", err)
			assert.Equal(t, tt.code, mdwErr.Code(), "error: %v", err)
			assert.True(t, IsSyntaxError(err))

			if tt.expected != "" {
				expected, found := mdwErr.Detail("expected")
				assert.True(t, found)
				assert.Equal(t, tt.expected, expected)
			}

			line, column, found := Location(err)
			require.True(t, found)
			assert.Equal(t, tt.line, line, "line")
			assert.Equal(t, tt.column, column, "column")
		})
	}
}

func TestParse_ErrorExcerptAfterCarriageReturn(t *testing.T) {
	for _, source := range []string{"x;\r1 = 2;", "x;\r\n1 = 2;", "x;\n1 = 2;"} {
		_, err := newTestParser(t, Options{}).Parse(source)
		require.Error(t, err)

		line, column, ok := Location(err)
		require.True(t, ok)
		assert.Equal(t, 2, line, "source %q", source)
		assert.Equal(t, 1, column, "source %q", source)
		assert.Equal(t, "1 = 2;\n^", Excerpt(source, line, column), "source %q", source)
	}
}

func TestParse_VerticalTabIsWhitespace(t *testing.T) {
	assert.Equal(t, program(exprStmt(ident("x"))), stripPositions(mustParse(t, "x;\v")))
}

func TestParse_InvalidAssignmentTargetDetails(t *testing.T) {
	_, err := newTestParser(t, Options{}).Parse("1 = 2;")
	require.Error(t, err)

	mdwErr, ok := mdwerror.As(err)
	require.True(t, ok)

	target, _ := mdwErr.Detail("target")
	operator, _ := mdwErr.Detail("operator")
	assert.Equal(t, "NumericLiteral", target)
	assert.Equal(t, "=", operator)
	assert.Equal(t, "parser.Parse", mdwErr.Operation())
}

func TestParse_NumericOverflowKeepsCause(t *testing.T) {
	_, err := newTestParser(t, Options{}).Parse("99999999999999999999;")
	require.Error(t, err)

	assert.Equal(t, mdwerror.SeverityHigh, mdwerror.GetSeverity(err))
	assert.Contains(t, err.Error(), "value out of range")
}

func TestParse_UnsupportedTokenType(t *testing.T) {
	p := newTestParser(t, Options{})
	p.scanner.Reset("")
	p.lookahead = &Token{Type: TokenComma, Value: ",", Line: 3, Column: 7}

	_, err := p.literal()
	require.Error(t, err)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeUnsupportedTokenType))

	mdwErr, _ := mdwerror.As(err)
	rule, _ := mdwErr.Detail("rule")
	kind, _ := mdwErr.Detail("kind")
	assert.Equal(t, "Literal", rule)
	assert.Equal(t, ",", kind)
}

func TestParse_Positions(t *testing.T) {
	program := mustParse(t, "let x = 1;\nif (x) {\n  x += 2;\n}")
	require.Len(t, program.Body, 2)

	assert.Equal(t, mdwast.Position{Line: 1, Column: 1}, program.Position())

	let := program.Body[0].(*mdwast.VariableStatement)
	assert.Equal(t, mdwast.Position{Line: 1, Column: 1, Offset: 0}, let.Pos)
	assert.Equal(t, mdwast.Position{Line: 1, Column: 5, Offset: 4}, let.Declarations[0].ID.Pos)
	assert.Equal(t, mdwast.Position{Line: 1, Column: 9, Offset: 8}, let.Declarations[0].Init.Position())

	ifStmt := program.Body[1].(*mdwast.IfStatement)
	assert.Equal(t, mdwast.Position{Line: 2, Column: 1, Offset: 11}, ifStmt.Pos)

	body := ifStmt.Consequent.(*mdwast.BlockStatement)
	stmt := body.Body[0].(*mdwast.ExpressionStatement)
	assert.Equal(t, mdwast.Position{Line: 3, Column: 3, Offset: 22}, stmt.Pos)
	assert.Equal(t, stmt.Pos, stmt.Expression.Position())
}

func TestParse_Idempotent(t *testing.T) {
	source := "let a = 1, b;\nif (a >= 1 && b == null) { b = a = a * (2 + 3); } else ;\n{ 'x'; \"y\"; }"

	first := mustParse(t, source)
	second := mustParse(t, source)
	assert.Equal(t, first, second)
	assert.NotSame(t, first, second)

	p := newTestParser(t, Options{})
	third, err := p.Parse(source)
	require.NoError(t, err)
	fourth, err := p.Parse(source)
	require.NoError(t, err)
	assert.Equal(t, third, fourth)
	assert.Equal(t, first, third)
}

func TestParse_ParserReusableAfterFailure(t *testing.T) {
	p := newTestParser(t, Options{})

	_, err := p.Parse("{ { {")
	require.Error(t, err)

	got, err := p.Parse("x;")
	require.NoError(t, err)
	assert.Equal(t, program(exprStmt(ident("x"))), stripPositions(got))
}

func TestParse_FormatRoundTrip(t *testing.T) {
	sources := []string{
		"2 + 2 * 2;",
		"(2 + 2) * 2;",
		"x = y = 42;",
		"let a, b = 'it\"s', c = \"it's\";",
		"if (a) if (b) {} else { c; }",
		"{ ; { 1; 2; } }",
		"a || b && c == d;",
		"n -= 1 - 0 / k;",
	}

	for _, source := range sources {
		t.Run(source, func(t *testing.T) {
			formatted := mdwast.Format(mustParse(t, source))
			again := mdwast.Format(mustParse(t, formatted))
			assert.Equal(t, formatted, again)
			assert.Equal(t,
				stripPositions(mustParse(t, source)),
				stripPositions(mustParse(t, formatted)))
		})
	}
}

func TestParse_Limits(t *testing.T) {
	t.Run("input too long", func(t *testing.T) {
		p := newTestParser(t, Options{MaxInputLength: 8})

		_, err := p.Parse("let x = 10;")
		require.Error(t, err)
		assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInputTooLong))

		_, err = p.Parse("x = 1;")
		assert.NoError(t, err)
	})

	t.Run("nested blocks too deep", func(t *testing.T) {
		p := newTestParser(t, Options{MaxDepth: 10})

		_, err := p.Parse(strings.Repeat("{", 20) + strings.Repeat("}", 20))
		require.Error(t, err)
		assert.True(t, mdwerror.HasCode(err, mdwerror.CodeNestingTooDeep))

		limit, _ := mdwerror.As(err)
		value, _ := limit.Detail("limit")
		assert.Equal(t, 10, value)
	})

	t.Run("nested parentheses too deep", func(t *testing.T) {
		p := newTestParser(t, Options{MaxDepth: 10})

		_, err := p.Parse(strings.Repeat("(", 20) + "1" + strings.Repeat(")", 20) + ";")
		require.Error(t, err)
		assert.True(t, mdwerror.HasCode(err, mdwerror.CodeNestingTooDeep))
	})

	t.Run("nesting within limit", func(t *testing.T) {
		p := newTestParser(t, Options{MaxDepth: 10})

		_, err := p.Parse("{{{ ((1)); }}}")
		assert.NoError(t, err)
	})

	t.Run("negative limits rejected", func(t *testing.T) {
		_, err := New(Options{MaxDepth: -1})
		require.Error(t, err)
		assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidConfig))
	})
}

func TestParse_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger := mdwlog.New().WithOutput(&buf).WithLevel(mdwlog.LevelDebug).WithFormat(mdwlog.FormatLogfmt)
	p := newTestParser(t, Options{Logger: logger})

	_, err := p.Parse("1;")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Parse completed")
	assert.Contains(t, buf.String(), "logger=letter-parser")

	buf.Reset()
	_, err = p.Parse("1 = 2;")
	require.Error(t, err)
	assert.Contains(t, buf.String(), "Parse failed")
	assert.Contains(t, buf.String(), "level=debug")
	assert.Contains(t, buf.String(), "SYNTAX_INVALID_ASSIGNMENT_TARGET")

	buf.Reset()
	quiet := newTestParser(t, Options{Logger: logger.WithLevel(mdwlog.LevelInfo)})
	_, err = quiet.Parse("1 = 2;")
	require.Error(t, err)
	assert.Empty(t, buf.String())
}

func TestParse_DefaultLoggerIsSilent(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)

	stdout := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = stdout }()

	_, parseErr := Parse("1 = 2;")
	_, okErr := Parse("x;")

	os.Stdout = stdout
	require.NoError(t, w.Close())
	written, err := io.ReadAll(r)
	require.NoError(t, err)

	assert.Error(t, parseErr)
	assert.NoError(t, okErr)
	assert.Empty(t, string(written))
}
