// File: scanner_test.go
// Title: Letter Scanner Unit Tests
// Description: Unit tests for the rule-table scanner covering token
//              classification, rule ordering, trivia skipping, position
//              tracking and scanner failures.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial comprehensive test suite
// - 2026-10-18 v0.2.0: Rule ordering and trivia cases

package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/letter/foundation/core/error"
)

type kindValue struct {
	Type  TokenType
	Value string
}

func scanAll(t *testing.T, source string) []kindValue {
	t.Helper()

	tokens, err := Tokenize(source)
	require.NoError(t, err)

	result := make([]kindValue, 0, len(tokens))
	for _, tok := range tokens {
		result = append(result, kindValue{tok.Type, tok.Value})
	}
	return result
}

func TestScanner_Classification(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []kindValue
	}{
		{
			name:  "punctuators",
			input: "; { } ( ) ,",
			expected: []kindValue{
				{TokenSemicolon, ";"}, {TokenLeftBrace, "{"}, {TokenRightBrace, "}"},
				{TokenLeftParen, "("}, {TokenRightParen, ")"}, {TokenComma, ","},
			},
		},
		{
			name:  "keywords and literals",
			input: "let if else true false null 42 x",
			expected: []kindValue{
				{TokenLet, "let"}, {TokenIf, "if"}, {TokenElse, "else"},
				{TokenTrue, "true"}, {TokenFalse, "false"}, {TokenNull, "null"},
				{TokenNumber, "42"}, {TokenIdentifier, "x"},
			},
		},
		{
			name:  "keyword prefixes are identifiers",
			input: "letter iffy elsewhere trueish nullable",
			expected: []kindValue{
				{TokenIdentifier, "letter"}, {TokenIdentifier, "iffy"}, {TokenIdentifier, "elsewhere"},
				{TokenIdentifier, "trueish"}, {TokenIdentifier, "nullable"},
			},
		},
		{
			name:  "compound assignment before simple assignment",
			input: "x += 1 -= 2 *= 3 /= 4 = 5",
			expected: []kindValue{
				{TokenIdentifier, "x"},
				{TokenComplexAssign, "+="}, {TokenNumber, "1"},
				{TokenComplexAssign, "-="}, {TokenNumber, "2"},
				{TokenComplexAssign, "*="}, {TokenNumber, "3"},
				{TokenComplexAssign, "/="}, {TokenNumber, "4"},
				{TokenSimpleAssign, "="}, {TokenNumber, "5"},
			},
		},
		{
			name:  "equality before assignment",
			input: "a == b != c",
			expected: []kindValue{
				{TokenIdentifier, "a"}, {TokenEqualityOperator, "=="},
				{TokenIdentifier, "b"}, {TokenEqualityOperator, "!="},
				{TokenIdentifier, "c"},
			},
		},
		{
			name:  "relational",
			input: "< > <= >=",
			expected: []kindValue{
				{TokenRelationalOperator, "<"}, {TokenRelationalOperator, ">"},
				{TokenRelationalOperator, "<="}, {TokenRelationalOperator, ">="},
			},
		},
		{
			name:  "arithmetic and logical",
			input: "1+2-3*4/5&&x||y",
			expected: []kindValue{
				{TokenNumber, "1"}, {TokenAdditiveOperator, "+"}, {TokenNumber, "2"},
				{TokenAdditiveOperator, "-"}, {TokenNumber, "3"},
				{TokenMultiplicativeOperator, "*"}, {TokenNumber, "4"},
				{TokenMultiplicativeOperator, "/"}, {TokenNumber, "5"},
				{TokenLogicalAnd, "&&"}, {TokenIdentifier, "x"},
				{TokenLogicalOr, "||"}, {TokenIdentifier, "y"},
			},
		},
		{
			name:  "strings have quotes stripped",
			input: `"hello" 'world' "it's" '' ""`,
			expected: []kindValue{
				{TokenString, "hello"}, {TokenString, "world"}, {TokenString, "it's"},
				{TokenString, ""}, {TokenString, ""},
			},
		},
		{
			name: "comments and whitespace are skipped",
			input: `// leading comment
				/* block
				   comment */ 42 /**/ ;	// trailing`,
			expected: []kindValue{
				{TokenNumber, "42"}, {TokenSemicolon, ";"},
			},
		},
		{
			name:     "division is not a comment",
			input:    "a / b",
			expected: []kindValue{{TokenIdentifier, "a"}, {TokenMultiplicativeOperator, "/"}, {TokenIdentifier, "b"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, scanAll(t, tt.input))
		})
	}
}

func TestScanner_EndOfInput(t *testing.T) {
	for _, input := range []string{"", "   \n\t", "// only a comment", "/* only */"} {
		s := NewScanner(input)
		tok, err := s.Next()
		require.NoError(t, err)
		assert.Nil(t, tok, "input %q", input)

		tok, err = s.Next()
		require.NoError(t, err)
		assert.Nil(t, tok, "repeated Next at end of input")
	}
}

func TestScanner_Positions(t *testing.T) {
	tokens, err := Tokenize("let x;\n  /* a\nb */ 'ä' x")
	require.NoError(t, err)
	require.Len(t, tokens, 5)

	assert.Equal(t, Token{Type: TokenLet, Value: "let", Position: 0, Line: 1, Column: 1}, tokens[0])
	assert.Equal(t, Token{Type: TokenIdentifier, Value: "x", Position: 4, Line: 1, Column: 5}, tokens[1])
	assert.Equal(t, Token{Type: TokenSemicolon, Value: ";", Position: 5, Line: 1, Column: 6}, tokens[2])
	assert.Equal(t, Token{Type: TokenString, Value: "ä", Position: 19, Line: 3, Column: 6}, tokens[3])
	// the string spans four bytes but three runes
	assert.Equal(t, Token{Type: TokenIdentifier, Value: "x", Position: 24, Line: 3, Column: 10}, tokens[4])
}

func TestScanner_LineEndings(t *testing.T) {
	tokens, err := Tokenize("a\rb\r\nc\n// note\rd /* x\r\ny */ e")
	require.NoError(t, err)
	require.Len(t, tokens, 5)

	expected := [][2]int{{1, 1}, {2, 1}, {3, 1}, {5, 1}, {6, 6}}
	for i, tok := range tokens {
		assert.Equal(t, expected[i], [2]int{tok.Line, tok.Column}, "token %q", tok.Value)
	}
}

func TestScanner_UnicodeWhitespace(t *testing.T) {
	for _, input := range []string{"a\vb", "a\u00a0b", "a\u3000b", "a\u2028b", "a\u0085b", "a\f\tb"} {
		assert.Equal(t, []kindValue{{TokenIdentifier, "a"}, {TokenIdentifier, "b"}}, scanAll(t, input), "input %q", input)
	}
}

func TestScanner_Reset(t *testing.T) {
	s := NewScanner("a b")
	_, err := s.Next()
	require.NoError(t, err)

	s.Reset("c")
	tok, err := s.Next()
	require.NoError(t, err)
	require.NotNil(t, tok)
	assert.Equal(t, "c", tok.Value)
	assert.Equal(t, 1, tok.Column)
}

func TestScanner_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		code    mdwerror.Code
		details map[string]interface{}
	}{
		{
			name:    "unexpected character",
			input:   "x = 1 @ 2;",
			code:    mdwerror.CodeUnexpectedCharacter,
			details: map[string]interface{}{"char": "@", "position": 6, "line": 1, "column": 7},
		},
		{
			name:    "non-ascii identifier",
			input:   "\nlet größe;",
			code:    mdwerror.CodeUnexpectedCharacter,
			details: map[string]interface{}{"char": "ö", "line": 2, "column": 7},
		},
		{
			name:    "unterminated string",
			input:   `"open`,
			code:    mdwerror.CodeUnexpectedCharacter,
			details: map[string]interface{}{"char": `"`, "position": 0},
		},
		{
			name:    "lone bang",
			input:   "!x",
			code:    mdwerror.CodeUnexpectedCharacter,
			details: map[string]interface{}{"char": "!"},
		},
		{
			name:    "unterminated block comment",
			input:   "1; /* never closed",
			code:    mdwerror.CodeUnexpectedEndOfInput,
			details: map[string]interface{}{"expected": "*/", "line": 1, "column": 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Tokenize(tt.input)
			require.Error(t, err)

			mdwErr, ok := mdwerror.As(err)
			require.True(t, ok, "expected structured error, got %T", err)
			assert.Equal(t, tt.code, mdwErr.Code())
			assert.Equal(t, "scanner.Next", mdwErr.Operation())
			for key, want := range tt.details {
				got, found := mdwErr.Detail(key)
				assert.True(t, found, "detail %q missing", key)
				assert.Equal(t, want, got, "detail %q", key)
			}
		})
	}
}

func TestTokenType_String(t *testing.T) {
	names := map[TokenType]string{
		TokenWhitespace:             "WHITESPACE",
		TokenComment:                "COMMENT",
		TokenSemicolon:              ";",
		TokenLet:                    "let",
		TokenNumber:                 "NUMBER",
		TokenSimpleAssign:           "SIMPLE_ASSIGN",
		TokenComplexAssign:          "COMPLEX_ASSIGN",
		TokenAdditiveOperator:       "ADDITIVE_OPERATOR",
		TokenMultiplicativeOperator: "MULTIPLICATIVE_OPERATOR",
		TokenRelationalOperator:     "RELATIONAL_OPERATOR",
		TokenEqualityOperator:       "EQUALITY_OPERATOR",
		TokenLogicalAnd:             "LOGICAL_AND",
		TokenLogicalOr:              "LOGICAL_OR",
		TokenIllegal:                "ILLEGAL",
	}

	for kind, want := range names {
		assert.Equal(t, want, kind.String())
	}
}

func TestExcerpt(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		line     int
		column   int
		expected string
	}{
		{"first line", "x = @;", 1, 5, "x = @;\n    ^"},
		{"second line", "a;\nlet = 1;", 2, 5, "let = 1;\n    ^"},
		{"tabs kept", "\tx @", 1, 4, "\tx @\n\t  ^"},
		{"end of line", "1 +", 1, 4, "1 +\n   ^"},
		{"line out of range", "x;", 3, 1, ""},
		{"invalid column", "x;", 1, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Excerpt(tt.source, tt.line, tt.column))
		})
	}
}
