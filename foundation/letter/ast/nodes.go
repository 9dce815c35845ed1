// File: nodes.go
// Title: Letter Syntax Tree Node Definitions
// Description: Defines the statement, expression and literal nodes produced
//              by the parser. The node families are sealed with marker
//              methods so that only this package can add variants.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial AST node definitions
// - 2026-10-18 v0.2.0: Statement and expression grammar of the letter language

package ast

import "reflect"

// Node represents the base interface for all syntax tree nodes
type Node interface {
	// String returns the canonical source rendering of the node
	String() string

	// Accept implements the visitor pattern
	Accept(visitor Visitor) interface{}

	// Position returns the source position of the node's first token
	Position() Position

	// Validate checks the node's own invariants. Children are checked by
	// ValidationVisitor.
	Validate() error
}

// Position represents a position in the source code
type Position struct {
	Line   int // Line number (1-based)
	Column int // Column number (1-based)
	Offset int // Byte offset (0-based)
}

// Statement is implemented by every statement node
type Statement interface {
	Node
	stmtNode()
}

// Expr is implemented by every expression node
type Expr interface {
	Node
	exprNode()
}

// Literal is implemented by the literal expressions
type Literal interface {
	Expr
	literalNode()
}

// Program is the root of every parse
type Program struct {
	Body []Statement
	Pos  Position
}

// ExpressionStatement is an expression terminated by ";"
type ExpressionStatement struct {
	Expression Expr
	Pos        Position
}

// BlockStatement is a braced statement list; Body may be empty
type BlockStatement struct {
	Body []Statement
	Pos  Position
}

// EmptyStatement is a lone ";"
type EmptyStatement struct {
	Pos Position
}

// VariableStatement is a "let" with one or more declarations
type VariableStatement struct {
	Declarations []*VariableDeclaration
	Pos          Position
}

// VariableDeclaration binds ID, optionally to Init
type VariableDeclaration struct {
	ID   *Identifier
	Init Expr // nil without initializer
	Pos  Position
}

// IfStatement is a conditional with an optional else branch
type IfStatement struct {
	Test       Expr
	Consequent Statement
	Alternate  Statement // nil without else
	Pos        Position
}

// Identifier is a variable reference
type Identifier struct {
	Name string
	Pos  Position
}

// BinaryExpression covers the arithmetic, relational and equality operators
type BinaryExpression struct {
	Operator string
	Left     Expr
	Right    Expr
	Pos      Position
}

// LogicalExpression covers && and ||
type LogicalExpression struct {
	Operator string
	Left     Expr
	Right    Expr
	Pos      Position
}

// AssignmentExpression assigns Value to Target using = or a compound operator
type AssignmentExpression struct {
	Operator string
	Target   *Identifier
	Value    Expr
	Pos      Position
}

// NumericLiteral is a decimal integer
type NumericLiteral struct {
	Value int64
	Pos   Position
}

// StringLiteral holds the text between the quotes
type StringLiteral struct {
	Value string
	Pos   Position
}

// BooleanLiteral is true or false
type BooleanLiteral struct {
	Value bool
	Pos   Position
}

// NullLiteral is null
type NullLiteral struct {
	Pos Position
}

func (*ExpressionStatement) stmtNode() {}
func (*BlockStatement) stmtNode()      {}
func (*EmptyStatement) stmtNode()      {}
func (*VariableStatement) stmtNode()   {}
func (*IfStatement) stmtNode()         {}

func (*Identifier) exprNode()           {}
func (*BinaryExpression) exprNode()     {}
func (*LogicalExpression) exprNode()    {}
func (*AssignmentExpression) exprNode() {}
func (*NumericLiteral) exprNode()       {}
func (*StringLiteral) exprNode()        {}
func (*BooleanLiteral) exprNode()       {}
func (*NullLiteral) exprNode()          {}

func (*NumericLiteral) literalNode() {}
func (*StringLiteral) literalNode()  {}
func (*BooleanLiteral) literalNode() {}
func (*NullLiteral) literalNode()    {}

// Accept implementations

func (n *Program) Accept(v Visitor) interface{}              { return v.VisitProgram(n) }
func (n *ExpressionStatement) Accept(v Visitor) interface{}  { return v.VisitExpressionStatement(n) }
func (n *BlockStatement) Accept(v Visitor) interface{}       { return v.VisitBlockStatement(n) }
func (n *EmptyStatement) Accept(v Visitor) interface{}       { return v.VisitEmptyStatement(n) }
func (n *VariableStatement) Accept(v Visitor) interface{}    { return v.VisitVariableStatement(n) }
func (n *VariableDeclaration) Accept(v Visitor) interface{}  { return v.VisitVariableDeclaration(n) }
func (n *IfStatement) Accept(v Visitor) interface{}          { return v.VisitIfStatement(n) }
func (n *Identifier) Accept(v Visitor) interface{}           { return v.VisitIdentifier(n) }
func (n *BinaryExpression) Accept(v Visitor) interface{}     { return v.VisitBinaryExpression(n) }
func (n *LogicalExpression) Accept(v Visitor) interface{}    { return v.VisitLogicalExpression(n) }
func (n *AssignmentExpression) Accept(v Visitor) interface{} { return v.VisitAssignmentExpression(n) }
func (n *NumericLiteral) Accept(v Visitor) interface{}       { return v.VisitNumericLiteral(n) }
func (n *StringLiteral) Accept(v Visitor) interface{}        { return v.VisitStringLiteral(n) }
func (n *BooleanLiteral) Accept(v Visitor) interface{}       { return v.VisitBooleanLiteral(n) }
func (n *NullLiteral) Accept(v Visitor) interface{}          { return v.VisitNullLiteral(n) }

// Position implementations

func (n *Program) Position() Position              { return n.Pos }
func (n *ExpressionStatement) Position() Position  { return n.Pos }
func (n *BlockStatement) Position() Position       { return n.Pos }
func (n *EmptyStatement) Position() Position       { return n.Pos }
func (n *VariableStatement) Position() Position    { return n.Pos }
func (n *VariableDeclaration) Position() Position  { return n.Pos }
func (n *IfStatement) Position() Position          { return n.Pos }
func (n *Identifier) Position() Position           { return n.Pos }
func (n *BinaryExpression) Position() Position     { return n.Pos }
func (n *LogicalExpression) Position() Position    { return n.Pos }
func (n *AssignmentExpression) Position() Position { return n.Pos }
func (n *NumericLiteral) Position() Position       { return n.Pos }
func (n *StringLiteral) Position() Position        { return n.Pos }
func (n *BooleanLiteral) Position() Position       { return n.Pos }
func (n *NullLiteral) Position() Position          { return n.Pos }

// String implementations

func (n *Program) String() string              { return Format(n) }
func (n *ExpressionStatement) String() string  { return Format(n) }
func (n *BlockStatement) String() string       { return Format(n) }
func (n *EmptyStatement) String() string       { return Format(n) }
func (n *VariableStatement) String() string    { return Format(n) }
func (n *VariableDeclaration) String() string  { return Format(n) }
func (n *IfStatement) String() string          { return Format(n) }
func (n *Identifier) String() string           { return Format(n) }
func (n *BinaryExpression) String() string     { return Format(n) }
func (n *LogicalExpression) String() string    { return Format(n) }
func (n *AssignmentExpression) String() string { return Format(n) }
func (n *NumericLiteral) String() string       { return Format(n) }
func (n *StringLiteral) String() string        { return Format(n) }
func (n *BooleanLiteral) String() string       { return Format(n) }
func (n *NullLiteral) String() string          { return Format(n) }

// Children returns the direct children of node in source order. Nil
// children are omitted.
func Children(node Node) []Node {
	if isNil(node) {
		return nil
	}

	var children []Node

	switch n := node.(type) {
	case *Program:
		for _, s := range n.Body {
			if s != nil {
				children = append(children, s)
			}
		}
	case *BlockStatement:
		for _, s := range n.Body {
			if s != nil {
				children = append(children, s)
			}
		}
	case *ExpressionStatement:
		if n.Expression != nil {
			children = append(children, n.Expression)
		}
	case *VariableStatement:
		for _, d := range n.Declarations {
			if d != nil {
				children = append(children, d)
			}
		}
	case *VariableDeclaration:
		if n.ID != nil {
			children = append(children, n.ID)
		}
		if n.Init != nil {
			children = append(children, n.Init)
		}
	case *IfStatement:
		if n.Test != nil {
			children = append(children, n.Test)
		}
		if n.Consequent != nil {
			children = append(children, n.Consequent)
		}
		if n.Alternate != nil {
			children = append(children, n.Alternate)
		}
	case *BinaryExpression:
		children = appendOperands(children, n.Left, n.Right)
	case *LogicalExpression:
		children = appendOperands(children, n.Left, n.Right)
	case *AssignmentExpression:
		if n.Target != nil {
			children = append(children, n.Target)
		}
		if n.Value != nil {
			children = append(children, n.Value)
		}
	}

	return children
}

func appendOperands(children []Node, left, right Expr) []Node {
	if left != nil {
		children = append(children, left)
	}
	if right != nil {
		children = append(children, right)
	}
	return children
}

// Walk traverses the tree rooted at node in depth-first pre-order. If fn
// returns false the children of that node are skipped. Nil nodes, typed or
// untyped, are never passed to fn.
func Walk(fn func(Node) bool, node Node) {
	if isNil(node) || !fn(node) {
		return
	}
	for _, child := range Children(node) {
		Walk(fn, child)
	}
}

// isNil reports whether node is nil or a nil pointer held in the interface
func isNil(node Node) bool {
	if node == nil {
		return true
	}
	v := reflect.ValueOf(node)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
