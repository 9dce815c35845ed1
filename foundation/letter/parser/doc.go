// File: doc.go
// Title: Letter Parser Package Documentation
// Description: Implements the scanner and the recursive descent parser that
//              turn letter source text into a syntax tree.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial parser implementation
// - 2026-10-18 v0.2.0: Grammar of the letter language

/*
Package parser provides lexical analysis and parsing for the letter language.

The parser pulls tokens from the scanner on demand and never looks more than
one token ahead. Grammar, highest level first:

	Program              := Statement+
	Statement            := ";" | Block | VariableStatement | IfStatement | Expression ";"
	Block                := "{" Statement* "}"
	VariableStatement    := "let" Declaration ("," Declaration)* ";"
	Declaration          := IDENTIFIER ("=" Assignment)?
	IfStatement          := "if" "(" Expression ")" Statement ("else" Statement)?
	Expression           := Assignment
	Assignment           := LogicalOr (("=" | "+=" | "-=" | "*=" | "/=") Assignment)?
	LogicalOr            := LogicalAnd ("||" LogicalAnd)*
	LogicalAnd           := Equality ("&&" Equality)*
	Equality             := Relational (("==" | "!=") Relational)*
	Relational           := Additive (("<" | ">" | "<=" | ">=") Additive)*
	Additive             := Multiplicative (("+" | "-") Multiplicative)*
	Multiplicative       := Primary (("*" | "/") Primary)*
	Primary              := Literal | "(" Expression ")" | IDENTIFIER
	Literal              := NUMBER | STRING | "true" | "false" | "null"

Binary and logical operators are left-associative, assignment is
right-associative and requires an identifier on its left. An else binds to
the nearest open if.

Every failure is a *error.Error from foundation/core/error with a SYNTAX_*
code; Location extracts the line and column. Parsing stops at the first
failure and returns no tree. Lines end at "\n", "\r\n" or a lone "\r", and
Excerpt splits the source the same way.

Parse logs only at debug level and only when Options carries a Logger.

Usage:

	program, err := parser.Parse("let x = 2 + 2 * 2;")
	if err != nil {
		line, column, _ := parser.Location(err)
		...
	}
*/
package parser
