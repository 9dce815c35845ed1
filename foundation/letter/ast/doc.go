// File: doc.go
// Title: Letter Syntax Tree Package Documentation
// Description: Defines the syntax tree produced by the letter parser together
//              with visitors for printing, outlining and validation.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial AST implementation
// - 2026-10-18 v0.2.0: Statement and expression tree for the letter language

/*
Package ast defines the syntax tree for the letter language.

A parse produces a *Program whose Body holds Statement nodes. Statements and
expressions are closed families: Statement, Expr and Literal can only be
implemented by the types in this package, so a type switch over them is
exhaustive.

The tree enables:
  • Canonical, fully parenthesised source rendering (Format)
  • Indented outlines for inspection (Outline)
  • Tree-wide invariant checks (Validate, ValidationVisitor)
  • Custom traversals through Visitor or Walk

Two parses of the same text are equal under reflect.DeepEqual.
*/
package ast
