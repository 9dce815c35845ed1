// File: validate.go
// Title: Syntax Tree Node Validation
// Description: Implements Validate for every node. Validation is shallow:
//              each node checks its operator class, identifier shape and
//              required children.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial node validation
// - 2026-10-18 v0.2.0: Operator classes and identifier shape

package ast

import (
	"fmt"

	mdwerror "github.com/msto63/letter/foundation/core/error"
	mdwstringx "github.com/msto63/letter/foundation/utils/stringx"
)

var (
	binaryOperators = map[string]bool{
		"+": true, "-": true, "*": true, "/": true,
		"<": true, ">": true, "<=": true, ">=": true,
		"==": true, "!=": true,
	}
	logicalOperators = map[string]bool{
		"&&": true, "||": true,
	}
	assignmentOperators = map[string]bool{
		"=": true, "+=": true, "-=": true, "*=": true, "/=": true,
	}
)

// IsBinaryOperator reports whether op is an arithmetic, relational or equality operator
func IsBinaryOperator(op string) bool { return binaryOperators[op] }

// IsLogicalOperator reports whether op is && or ||
func IsLogicalOperator(op string) bool { return logicalOperators[op] }

// IsAssignmentOperator reports whether op is = or a compound assignment
func IsAssignmentOperator(op string) bool { return assignmentOperators[op] }

// IsValidIdentifier reports whether name is a non-empty ASCII word
func IsValidIdentifier(name string) bool {
	if mdwstringx.IsBlank(name) {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if !(c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z') {
			return false
		}
	}
	return true
}

func invalid(node Node, format string, args ...interface{}) error {
	pos := node.Position()
	return mdwerror.New(fmt.Sprintf(format, args...)).
		WithCode(mdwerror.CodeValidationFailed).
		WithOperation("ast.Validate").
		WithDetail("node", NodeType(node)).
		WithDetail("line", pos.Line).
		WithDetail("column", pos.Column)
}

func (n *Program) Validate() error {
	for i, s := range n.Body {
		if s == nil {
			return invalid(n, "program statement %d is nil", i)
		}
	}
	return nil
}

func (n *ExpressionStatement) Validate() error {
	if n.Expression == nil {
		return invalid(n, "expression statement requires an expression")
	}
	return nil
}

func (n *BlockStatement) Validate() error {
	for i, s := range n.Body {
		if s == nil {
			return invalid(n, "block statement %d is nil", i)
		}
	}
	return nil
}

func (n *EmptyStatement) Validate() error {
	return nil
}

func (n *VariableStatement) Validate() error {
	if len(n.Declarations) == 0 {
		return invalid(n, "variable statement requires at least one declaration")
	}
	for i, d := range n.Declarations {
		if d == nil {
			return invalid(n, "declaration %d is nil", i)
		}
	}
	return nil
}

func (n *VariableDeclaration) Validate() error {
	if n.ID == nil {
		return invalid(n, "variable declaration requires an identifier")
	}
	return nil
}

func (n *IfStatement) Validate() error {
	if n.Test == nil {
		return invalid(n, "if statement requires a test")
	}
	if n.Consequent == nil {
		return invalid(n, "if statement requires a consequent")
	}
	return nil
}

func (n *Identifier) Validate() error {
	if !IsValidIdentifier(n.Name) {
		return invalid(n, "invalid identifier %q", n.Name)
	}
	return nil
}

func (n *BinaryExpression) Validate() error {
	if !IsBinaryOperator(n.Operator) {
		return invalid(n, "invalid binary operator %q", n.Operator)
	}
	if n.Left == nil || n.Right == nil {
		return invalid(n, "binary expression requires two operands")
	}
	return nil
}

func (n *LogicalExpression) Validate() error {
	if !IsLogicalOperator(n.Operator) {
		return invalid(n, "invalid logical operator %q", n.Operator)
	}
	if n.Left == nil || n.Right == nil {
		return invalid(n, "logical expression requires two operands")
	}
	return nil
}

func (n *AssignmentExpression) Validate() error {
	if !IsAssignmentOperator(n.Operator) {
		return invalid(n, "invalid assignment operator %q", n.Operator)
	}
	if n.Target == nil {
		return invalid(n, "assignment requires an identifier target")
	}
	if n.Value == nil {
		return invalid(n, "assignment requires a value")
	}
	return nil
}

func (n *NumericLiteral) Validate() error { return nil }
func (n *StringLiteral) Validate() error  { return nil }
func (n *BooleanLiteral) Validate() error { return nil }
func (n *NullLiteral) Validate() error    { return nil }

// NodeType returns the variant name of node, e.g. "BinaryExpression"
func NodeType(node Node) string {
	switch node.(type) {
	case *Program:
		return "Program"
	case *ExpressionStatement:
		return "ExpressionStatement"
	case *BlockStatement:
		return "BlockStatement"
	case *EmptyStatement:
		return "EmptyStatement"
	case *VariableStatement:
		return "VariableStatement"
	case *VariableDeclaration:
		return "VariableDeclaration"
	case *IfStatement:
		return "IfStatement"
	case *Identifier:
		return "Identifier"
	case *BinaryExpression:
		return "BinaryExpression"
	case *LogicalExpression:
		return "LogicalExpression"
	case *AssignmentExpression:
		return "AssignmentExpression"
	case *NumericLiteral:
		return "NumericLiteral"
	case *StringLiteral:
		return "StringLiteral"
	case *BooleanLiteral:
		return "BooleanLiteral"
	case *NullLiteral:
		return "NullLiteral"
	default:
		return fmt.Sprintf("%T", node)
	}
}
