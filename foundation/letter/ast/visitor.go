// File: visitor.go
// Title: Letter Syntax Tree Visitor Implementations
// Description: Implements the visitor pattern for traversing syntax trees,
//              plus the source printer, the outline printer and the
//              tree-wide validator built on it.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial visitor pattern implementation
// - 2026-10-18 v0.2.0: Statement visitors, outline printer

package ast

import (
	"strconv"
	"strings"

	mdwstringx "github.com/msto63/letter/foundation/utils/stringx"
)

// Visitor interface for traversing syntax tree nodes
type Visitor interface {
	// Statements
	VisitProgram(n *Program) interface{}
	VisitExpressionStatement(n *ExpressionStatement) interface{}
	VisitBlockStatement(n *BlockStatement) interface{}
	VisitEmptyStatement(n *EmptyStatement) interface{}
	VisitVariableStatement(n *VariableStatement) interface{}
	VisitVariableDeclaration(n *VariableDeclaration) interface{}
	VisitIfStatement(n *IfStatement) interface{}

	// Expressions
	VisitIdentifier(n *Identifier) interface{}
	VisitBinaryExpression(n *BinaryExpression) interface{}
	VisitLogicalExpression(n *LogicalExpression) interface{}
	VisitAssignmentExpression(n *AssignmentExpression) interface{}

	// Literals
	VisitNumericLiteral(n *NumericLiteral) interface{}
	VisitStringLiteral(n *StringLiteral) interface{}
	VisitBooleanLiteral(n *BooleanLiteral) interface{}
	VisitNullLiteral(n *NullLiteral) interface{}
}

// Format renders node as canonical source with every binary, logical and
// assignment expression parenthesised. The output parses back to an
// equivalent tree.
func Format(node Node) string {
	sv := NewStringVisitor()
	node.Accept(sv)
	return sv.String()
}

// Outline renders node as an indented tree, one node per line
func Outline(node Node) string {
	tv := NewTreeVisitor()
	node.Accept(tv)
	return tv.String()
}

// QuoteString wraps s in double quotes, or in single quotes when s itself
// contains a double quote. String literals have no escapes, so one of the
// two styles always round-trips.
func QuoteString(s string) string {
	if strings.Contains(s, `"`) {
		return "'" + s + "'"
	}
	return `"` + s + `"`
}

// StringVisitor renders nodes as source text
type StringVisitor struct {
	buffer strings.Builder
	indent int
}

// NewStringVisitor creates a new string visitor
func NewStringVisitor() *StringVisitor {
	return &StringVisitor{}
}

// String returns the rendered text
func (sv *StringVisitor) String() string {
	return sv.buffer.String()
}

// Reset clears the visitor state
func (sv *StringVisitor) Reset() {
	sv.buffer.Reset()
	sv.indent = 0
}

func (sv *StringVisitor) writeIndent() {
	for i := 0; i < sv.indent; i++ {
		sv.buffer.WriteString("  ")
	}
}

func (sv *StringVisitor) VisitProgram(n *Program) interface{} {
	for i, s := range n.Body {
		if i > 0 {
			sv.buffer.WriteString("\n")
		}
		s.Accept(sv)
	}
	return nil
}

func (sv *StringVisitor) VisitExpressionStatement(n *ExpressionStatement) interface{} {
	n.Expression.Accept(sv)
	sv.buffer.WriteString(";")
	return nil
}

func (sv *StringVisitor) VisitBlockStatement(n *BlockStatement) interface{} {
	if len(n.Body) == 0 {
		sv.buffer.WriteString("{}")
		return nil
	}

	sv.buffer.WriteString("{\n")
	sv.indent++
	for _, s := range n.Body {
		sv.writeIndent()
		s.Accept(sv)
		sv.buffer.WriteString("\n")
	}
	sv.indent--
	sv.writeIndent()
	sv.buffer.WriteString("}")
	return nil
}

func (sv *StringVisitor) VisitEmptyStatement(n *EmptyStatement) interface{} {
	sv.buffer.WriteString(";")
	return nil
}

func (sv *StringVisitor) VisitVariableStatement(n *VariableStatement) interface{} {
	sv.buffer.WriteString("let ")
	for i, d := range n.Declarations {
		if i > 0 {
			sv.buffer.WriteString(", ")
		}
		d.Accept(sv)
	}
	sv.buffer.WriteString(";")
	return nil
}

func (sv *StringVisitor) VisitVariableDeclaration(n *VariableDeclaration) interface{} {
	n.ID.Accept(sv)
	if n.Init != nil {
		sv.buffer.WriteString(" = ")
		n.Init.Accept(sv)
	}
	return nil
}

func (sv *StringVisitor) VisitIfStatement(n *IfStatement) interface{} {
	sv.buffer.WriteString("if (")
	n.Test.Accept(sv)
	sv.buffer.WriteString(") ")
	n.Consequent.Accept(sv)
	if n.Alternate != nil {
		sv.buffer.WriteString(" else ")
		n.Alternate.Accept(sv)
	}
	return nil
}

func (sv *StringVisitor) VisitIdentifier(n *Identifier) interface{} {
	sv.buffer.WriteString(n.Name)
	return nil
}

func (sv *StringVisitor) writeInfix(op string, left, right Node) {
	sv.buffer.WriteString("(")
	left.Accept(sv)
	sv.buffer.WriteString(" " + op + " ")
	right.Accept(sv)
	sv.buffer.WriteString(")")
}

func (sv *StringVisitor) VisitBinaryExpression(n *BinaryExpression) interface{} {
	sv.writeInfix(n.Operator, n.Left, n.Right)
	return nil
}

func (sv *StringVisitor) VisitLogicalExpression(n *LogicalExpression) interface{} {
	sv.writeInfix(n.Operator, n.Left, n.Right)
	return nil
}

func (sv *StringVisitor) VisitAssignmentExpression(n *AssignmentExpression) interface{} {
	sv.writeInfix(n.Operator, n.Target, n.Value)
	return nil
}

func (sv *StringVisitor) VisitNumericLiteral(n *NumericLiteral) interface{} {
	sv.buffer.WriteString(strconv.FormatInt(n.Value, 10))
	return nil
}

func (sv *StringVisitor) VisitStringLiteral(n *StringLiteral) interface{} {
	sv.buffer.WriteString(QuoteString(n.Value))
	return nil
}

func (sv *StringVisitor) VisitBooleanLiteral(n *BooleanLiteral) interface{} {
	sv.buffer.WriteString(strconv.FormatBool(n.Value))
	return nil
}

func (sv *StringVisitor) VisitNullLiteral(n *NullLiteral) interface{} {
	sv.buffer.WriteString("null")
	return nil
}

// TreeVisitor renders an indented outline of the tree. Children with a
// fixed role (test, left, init, ...) are prefixed with that role.
type TreeVisitor struct {
	buffer strings.Builder
	depth  int
	label  string
}

// NewTreeVisitor creates a new outline visitor
func NewTreeVisitor() *TreeVisitor {
	return &TreeVisitor{}
}

// String returns the rendered outline
func (tv *TreeVisitor) String() string {
	return tv.buffer.String()
}

// line writes one outline entry. Values spanning several lines are
// indented as a whole so they stay under their node.
func (tv *TreeVisitor) line(node Node, detail string) {
	text := NodeType(node)
	if tv.label != "" {
		text = tv.label + ": " + text
		tv.label = ""
	}
	if detail != "" {
		text += " " + detail
	}
	tv.buffer.WriteString(mdwstringx.Indent(text, "  ", tv.depth))
	tv.buffer.WriteString("\n")
}

func (tv *TreeVisitor) child(label string, node Node) {
	if node == nil {
		return
	}
	tv.depth++
	tv.label = label
	node.Accept(tv)
	tv.depth--
}

func (tv *TreeVisitor) VisitProgram(n *Program) interface{} {
	tv.line(n, "")
	for _, s := range n.Body {
		tv.child("", s)
	}
	return nil
}

func (tv *TreeVisitor) VisitExpressionStatement(n *ExpressionStatement) interface{} {
	tv.line(n, "")
	tv.child("", n.Expression)
	return nil
}

func (tv *TreeVisitor) VisitBlockStatement(n *BlockStatement) interface{} {
	tv.line(n, "")
	for _, s := range n.Body {
		tv.child("", s)
	}
	return nil
}

func (tv *TreeVisitor) VisitEmptyStatement(n *EmptyStatement) interface{} {
	tv.line(n, "")
	return nil
}

func (tv *TreeVisitor) VisitVariableStatement(n *VariableStatement) interface{} {
	tv.line(n, "")
	for _, d := range n.Declarations {
		tv.child("", d)
	}
	return nil
}

func (tv *TreeVisitor) VisitVariableDeclaration(n *VariableDeclaration) interface{} {
	tv.line(n, "")
	tv.child("id", n.ID)
	if n.Init != nil {
		tv.child("init", n.Init)
	}
	return nil
}

func (tv *TreeVisitor) VisitIfStatement(n *IfStatement) interface{} {
	tv.line(n, "")
	tv.child("test", n.Test)
	tv.child("consequent", n.Consequent)
	if n.Alternate != nil {
		tv.child("alternate", n.Alternate)
	}
	return nil
}

func (tv *TreeVisitor) VisitIdentifier(n *Identifier) interface{} {
	tv.line(n, n.Name)
	return nil
}

func (tv *TreeVisitor) VisitBinaryExpression(n *BinaryExpression) interface{} {
	tv.line(n, n.Operator)
	tv.child("left", n.Left)
	tv.child("right", n.Right)
	return nil
}

func (tv *TreeVisitor) VisitLogicalExpression(n *LogicalExpression) interface{} {
	tv.line(n, n.Operator)
	tv.child("left", n.Left)
	tv.child("right", n.Right)
	return nil
}

func (tv *TreeVisitor) VisitAssignmentExpression(n *AssignmentExpression) interface{} {
	tv.line(n, n.Operator)
	if n.Target != nil {
		tv.child("target", n.Target)
	}
	tv.child("value", n.Value)
	return nil
}

func (tv *TreeVisitor) VisitNumericLiteral(n *NumericLiteral) interface{} {
	tv.line(n, strconv.FormatInt(n.Value, 10))
	return nil
}

func (tv *TreeVisitor) VisitStringLiteral(n *StringLiteral) interface{} {
	tv.line(n, QuoteString(n.Value))
	return nil
}

func (tv *TreeVisitor) VisitBooleanLiteral(n *BooleanLiteral) interface{} {
	tv.line(n, strconv.FormatBool(n.Value))
	return nil
}

func (tv *TreeVisitor) VisitNullLiteral(n *NullLiteral) interface{} {
	tv.line(n, "")
	return nil
}

// ValidationVisitor validates every node of a tree and collects the errors
type ValidationVisitor struct {
	errors []error
}

// NewValidationVisitor creates a new validation visitor
func NewValidationVisitor() *ValidationVisitor {
	return &ValidationVisitor{}
}

// Errors returns all validation errors found
func (vv *ValidationVisitor) Errors() []error {
	return vv.errors
}

// HasErrors returns true if validation errors were found
func (vv *ValidationVisitor) HasErrors() bool {
	return len(vv.errors) > 0
}

// Reset clears all validation errors
func (vv *ValidationVisitor) Reset() {
	vv.errors = nil
}

func (vv *ValidationVisitor) visit(node Node) interface{} {
	if err := node.Validate(); err != nil {
		vv.errors = append(vv.errors, err)
	}
	for _, child := range Children(node) {
		child.Accept(vv)
	}
	return nil
}

func (vv *ValidationVisitor) VisitProgram(n *Program) interface{} { return vv.visit(n) }
func (vv *ValidationVisitor) VisitExpressionStatement(n *ExpressionStatement) interface{} {
	return vv.visit(n)
}
func (vv *ValidationVisitor) VisitBlockStatement(n *BlockStatement) interface{} { return vv.visit(n) }
func (vv *ValidationVisitor) VisitEmptyStatement(n *EmptyStatement) interface{} { return vv.visit(n) }
func (vv *ValidationVisitor) VisitVariableStatement(n *VariableStatement) interface{} {
	return vv.visit(n)
}
func (vv *ValidationVisitor) VisitVariableDeclaration(n *VariableDeclaration) interface{} {
	return vv.visit(n)
}
func (vv *ValidationVisitor) VisitIfStatement(n *IfStatement) interface{} { return vv.visit(n) }
func (vv *ValidationVisitor) VisitIdentifier(n *Identifier) interface{}   { return vv.visit(n) }
func (vv *ValidationVisitor) VisitBinaryExpression(n *BinaryExpression) interface{} {
	return vv.visit(n)
}
func (vv *ValidationVisitor) VisitLogicalExpression(n *LogicalExpression) interface{} {
	return vv.visit(n)
}
func (vv *ValidationVisitor) VisitAssignmentExpression(n *AssignmentExpression) interface{} {
	return vv.visit(n)
}
func (vv *ValidationVisitor) VisitNumericLiteral(n *NumericLiteral) interface{} { return vv.visit(n) }
func (vv *ValidationVisitor) VisitStringLiteral(n *StringLiteral) interface{}   { return vv.visit(n) }
func (vv *ValidationVisitor) VisitBooleanLiteral(n *BooleanLiteral) interface{} { return vv.visit(n) }
func (vv *ValidationVisitor) VisitNullLiteral(n *NullLiteral) interface{}       { return vv.visit(n) }

// Validate runs a ValidationVisitor over node and returns the collected errors
func Validate(node Node) []error {
	vv := NewValidationVisitor()
	node.Accept(vv)
	return vv.Errors()
}
