// File: scanner.go
// Title: Letter Lexical Scanner
// Description: Implements the pull-based scanner. Each call to Next tries an
//              ordered table of anchored patterns at the cursor, skips
//              whitespace and comments, and returns the next token.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial lexer implementation
// - 2026-10-18 v0.2.0: Rule-table scanner with lazy token production

package parser

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

type rule struct {
	pattern *regexp.Regexp
	kind    TokenType
}

// rules is tried top to bottom and the first match wins. Two-character
// operators precede their one-character prefixes, comments precede "/",
// and keywords precede identifiers.
var rules = []rule{
	{regexp.MustCompile(`^[\s\v\x{85}\p{Zs}\x{2028}\x{2029}]+`), TokenWhitespace},
	{regexp.MustCompile(`^//[^\r\n]*`), TokenComment},
	{regexp.MustCompile(`^/\*[\s\S]*?\*/`), TokenComment},

	{regexp.MustCompile(`^;`), TokenSemicolon},
	{regexp.MustCompile(`^\{`), TokenLeftBrace},
	{regexp.MustCompile(`^\}`), TokenRightBrace},
	{regexp.MustCompile(`^\(`), TokenLeftParen},
	{regexp.MustCompile(`^\)`), TokenRightParen},
	{regexp.MustCompile(`^,`), TokenComma},

	{regexp.MustCompile(`^\blet\b`), TokenLet},
	{regexp.MustCompile(`^\bif\b`), TokenIf},
	{regexp.MustCompile(`^\belse\b`), TokenElse},
	{regexp.MustCompile(`^\btrue\b`), TokenTrue},
	{regexp.MustCompile(`^\bfalse\b`), TokenFalse},
	{regexp.MustCompile(`^\bnull\b`), TokenNull},

	{regexp.MustCompile(`^\d+`), TokenNumber},
	{regexp.MustCompile(`^\w+`), TokenIdentifier},

	{regexp.MustCompile(`^[=!]=`), TokenEqualityOperator},
	{regexp.MustCompile(`^[*/+-]=`), TokenComplexAssign},
	{regexp.MustCompile(`^=`), TokenSimpleAssign},
	{regexp.MustCompile(`^[+-]`), TokenAdditiveOperator},
	{regexp.MustCompile(`^[*/]`), TokenMultiplicativeOperator},
	{regexp.MustCompile(`^[<>]=?`), TokenRelationalOperator},
	{regexp.MustCompile(`^&&`), TokenLogicalAnd},
	{regexp.MustCompile(`^\|\|`), TokenLogicalOr},

	{regexp.MustCompile(`^"[^"]*"`), TokenString},
	{regexp.MustCompile(`^'[^']*'`), TokenString},
}

// Scanner produces tokens on demand from a source string
type Scanner struct {
	source string
	cursor int
	line   int
	column int
}

// NewScanner creates a scanner positioned at the start of source
func NewScanner(source string) *Scanner {
	s := &Scanner{}
	s.Reset(source)
	return s
}

// Reset re-initialises the scanner over a new source
func (s *Scanner) Reset(source string) {
	s.source = source
	s.cursor = 0
	s.line = 1
	s.column = 1
}

// Offset returns the byte offset of the cursor
func (s *Scanner) Offset() int { return s.cursor }

// Line returns the 1-based line of the cursor
func (s *Scanner) Line() int { return s.line }

// Column returns the 1-based column of the cursor
func (s *Scanner) Column() int { return s.column }

// Next returns the next significant token, or nil at end of input
func (s *Scanner) Next() (*Token, error) {
scan:
	for s.cursor < len(s.source) {
		rest := s.source[s.cursor:]
		if strings.HasPrefix(rest, "/*") && !strings.Contains(rest[2:], "*/") {
			return nil, errUnterminatedComment(s)
		}

		for _, r := range rules {
			loc := r.pattern.FindStringIndex(rest)
			if loc == nil || loc[1] == 0 {
				continue
			}

			text := rest[:loc[1]]
			tok := &Token{
				Type:     r.kind,
				Position: s.cursor,
				Line:     s.line,
				Column:   s.column,
			}
			s.advance(text)

			switch r.kind {
			case TokenWhitespace, TokenComment:
				continue scan
			case TokenString:
				tok.Value = strings.Clone(text[1 : len(text)-1])
			default:
				tok.Value = strings.Clone(text)
			}
			return tok, nil
		}

		ch, _ := utf8.DecodeRuneInString(rest)
		return nil, errUnexpectedCharacter(ch, s.cursor, s.line, s.column)
	}

	return nil, nil
}

// advance moves the cursor past text. Lines end at "\n", "\r\n" or a lone
// "\r", matching the line split used for error excerpts.
func (s *Scanner) advance(text string) {
	s.cursor += len(text)

	lineStart := -1
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				continue
			}
			s.line++
			lineStart = i + 1
		case '\n':
			s.line++
			lineStart = i + 1
		}
	}

	if lineStart < 0 {
		s.column += utf8.RuneCountInString(text)
		return
	}
	s.column = utf8.RuneCountInString(text[lineStart:]) + 1
}

// Tokenize scans the whole source and returns its significant tokens
func Tokenize(source string) ([]Token, error) {
	s := NewScanner(source)

	var tokens []Token
	for {
		tok, err := s.Next()
		if err != nil {
			return nil, err
		}
		if tok == nil {
			return tokens, nil
		}
		tokens = append(tokens, *tok)
	}
}
