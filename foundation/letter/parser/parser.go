// File: parser.go
// Title: Letter Recursive Descent Parser
// Description: Implements the parsing phase. Pulls tokens from the scanner
//              with one token of lookahead and builds the syntax tree top
//              down, one procedure per grammar rule and one loop per
//              binary precedence level.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial parser implementation
// - 2026-10-18 v0.2.0: Statement grammar, assignment, depth and length limits

package parser

import (
	"io"
	"strconv"

	mdwerror "github.com/msto63/letter/foundation/core/error"
	mdwlog "github.com/msto63/letter/foundation/core/log"
	mdwast "github.com/msto63/letter/foundation/letter/ast"
)

const (
	// DefaultMaxInputLength is the input limit applied when Options leaves it zero
	DefaultMaxInputLength = 1 << 20

	// DefaultMaxDepth is the nesting limit applied when Options leaves it zero
	DefaultMaxDepth = 512
)

// Parser implements recursive descent parsing for letter source text.
// A Parser is not safe for concurrent use.
type Parser struct {
	scanner   *Scanner
	lookahead *Token // nil at end of input
	depth     int
	logger    *mdwlog.Logger
	options   Options
}

// Options configures parser behavior
type Options struct {
	Logger         *mdwlog.Logger // nil discards log output
	MaxInputLength int // bytes
	MaxDepth       int // nested statements and assignment expressions
}

// New creates a new parser with the given options
func New(opts Options) (*Parser, error) {
	if opts.MaxInputLength < 0 || opts.MaxDepth < 0 {
		return nil, mdwerror.New("parser limits must not be negative").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("parser.New").
			WithDetail("max_input_length", opts.MaxInputLength).
			WithDetail("max_depth", opts.MaxDepth)
	}

	// Set defaults
	if opts.Logger == nil {
		opts.Logger = mdwlog.New().WithOutput(io.Discard)
	}
	if opts.MaxInputLength == 0 {
		opts.MaxInputLength = DefaultMaxInputLength
	}
	if opts.MaxDepth == 0 {
		opts.MaxDepth = DefaultMaxDepth
	}

	return &Parser{
		scanner: NewScanner(""),
		logger:  opts.Logger.WithName("letter-parser"),
		options: opts,
	}, nil
}

// Parse parses a source text into a Program. On failure no tree is returned.
func Parse(source string) (*mdwast.Program, error) {
	p, err := New(Options{})
	if err != nil {
		return nil, err
	}
	return p.Parse(source)
}

// Parse parses source and returns its syntax tree
func (p *Parser) Parse(source string) (*mdwast.Program, error) {
	if len(source) > p.options.MaxInputLength {
		return nil, errInputTooLong(len(source), p.options.MaxInputLength)
	}

	p.scanner.Reset(source)
	p.depth = 0

	p.logger.Debug("Starting parse", mdwlog.Fields{
		"length": len(source),
	})

	program, err := p.run()
	if err != nil {
		p.logger.Debug("Parse failed", mdwlog.Fields{
			"error_code": mdwerror.GetCode(err).String(),
			"error":      err.Error(),
		})
		return nil, err
	}

	p.logger.Debug("Parse completed", mdwlog.Fields{
		"statements": len(program.Body),
	})

	return program, nil
}

func (p *Parser) run() (*mdwast.Program, error) {
	lookahead, err := p.scanner.Next()
	if err != nil {
		return nil, err
	}
	p.lookahead = lookahead

	return p.program()
}

// Program := StatementList(until end of input)
func (p *Parser) program() (*mdwast.Program, error) {
	program := &mdwast.Program{Pos: mdwast.Position{Line: 1, Column: 1}}

	for {
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		program.Body = append(program.Body, stmt)

		if p.lookahead == nil {
			return program, nil
		}
	}
}

// Statement := EmptyStatement | BlockStatement | VariableStatement
//            | IfStatement | ExpressionStatement
func (p *Parser) statement() (mdwast.Statement, error) {
	if p.lookahead == nil {
		return nil, errUnexpectedEndOfInput("statement", p.scanner)
	}

	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	switch p.lookahead.Type {
	case TokenSemicolon:
		return p.emptyStatement()
	case TokenLeftBrace:
		return p.blockStatement()
	case TokenLet:
		return p.variableStatement()
	case TokenIf:
		return p.ifStatement()
	default:
		return p.expressionStatement()
	}
}

// EmptyStatement := ";"
func (p *Parser) emptyStatement() (mdwast.Statement, error) {
	tok, err := p.eat(TokenSemicolon)
	if err != nil {
		return nil, err
	}
	return &mdwast.EmptyStatement{Pos: positionOf(tok)}, nil
}

// BlockStatement := "{" StatementList(until "}")? "}"
func (p *Parser) blockStatement() (mdwast.Statement, error) {
	open, err := p.eat(TokenLeftBrace)
	if err != nil {
		return nil, err
	}

	block := &mdwast.BlockStatement{Pos: positionOf(open)}
	for p.lookahead != nil && p.lookahead.Type != TokenRightBrace {
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		block.Body = append(block.Body, stmt)
	}

	if _, err := p.eat(TokenRightBrace); err != nil {
		return nil, err
	}
	return block, nil
}

// VariableStatement := "let" VariableDeclaration ("," VariableDeclaration)* ";"
func (p *Parser) variableStatement() (mdwast.Statement, error) {
	let, err := p.eat(TokenLet)
	if err != nil {
		return nil, err
	}

	stmt := &mdwast.VariableStatement{Pos: positionOf(let)}
	for {
		decl, err := p.variableDeclaration()
		if err != nil {
			return nil, err
		}
		stmt.Declarations = append(stmt.Declarations, decl)

		if !p.at(TokenComma) {
			break
		}
		if _, err := p.eat(TokenComma); err != nil {
			return nil, err
		}
	}

	if _, err := p.eat(TokenSemicolon); err != nil {
		return nil, err
	}
	return stmt, nil
}

// VariableDeclaration := Identifier ("=" AssignmentExpression)?
func (p *Parser) variableDeclaration() (*mdwast.VariableDeclaration, error) {
	id, err := p.identifier()
	if err != nil {
		return nil, err
	}

	decl := &mdwast.VariableDeclaration{ID: id, Pos: id.Pos}
	if p.at(TokenSimpleAssign) {
		if _, err := p.eat(TokenSimpleAssign); err != nil {
			return nil, err
		}
		if decl.Init, err = p.assignmentExpression(); err != nil {
			return nil, err
		}
	}
	return decl, nil
}

// IfStatement := "if" "(" Expression ")" Statement ("else" Statement)?
func (p *Parser) ifStatement() (mdwast.Statement, error) {
	tok, err := p.eat(TokenIf)
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(TokenLeftParen); err != nil {
		return nil, err
	}

	stmt := &mdwast.IfStatement{Pos: positionOf(tok)}
	if stmt.Test, err = p.expression(); err != nil {
		return nil, err
	}
	if _, err := p.eat(TokenRightParen); err != nil {
		return nil, err
	}
	if stmt.Consequent, err = p.statement(); err != nil {
		return nil, err
	}

	// The nearest open if takes the else.
	if p.at(TokenElse) {
		if _, err := p.eat(TokenElse); err != nil {
			return nil, err
		}
		if stmt.Alternate, err = p.statement(); err != nil {
			return nil, err
		}
	}
	return stmt, nil
}

// ExpressionStatement := Expression ";"
func (p *Parser) expressionStatement() (mdwast.Statement, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(TokenSemicolon); err != nil {
		return nil, err
	}
	return &mdwast.ExpressionStatement{Expression: expr, Pos: expr.Position()}, nil
}

// Expression := AssignmentExpression
func (p *Parser) expression() (mdwast.Expr, error) {
	return p.assignmentExpression()
}

// AssignmentExpression := LogicalOrExpression (AssignOp AssignmentExpression)?
func (p *Parser) assignmentExpression() (mdwast.Expr, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	left, err := p.logicalOrExpression()
	if err != nil {
		return nil, err
	}

	if p.lookahead == nil || !p.lookahead.Type.IsAssignment() {
		return left, nil
	}

	op, err := p.eat(p.lookahead.Type)
	if err != nil {
		return nil, err
	}

	target, ok := left.(*mdwast.Identifier)
	if !ok {
		return nil, errInvalidAssignmentTarget(left, op)
	}

	value, err := p.assignmentExpression()
	if err != nil {
		return nil, err
	}

	return &mdwast.AssignmentExpression{
		Operator: op.Value,
		Target:   target,
		Value:    value,
		Pos:      target.Pos,
	}, nil
}

// LogicalOrExpression := LogicalAndExpression ("||" LogicalAndExpression)*
func (p *Parser) logicalOrExpression() (mdwast.Expr, error) {
	return p.logicalLevel(TokenLogicalOr, p.logicalAndExpression)
}

// LogicalAndExpression := EqualityExpression ("&&" EqualityExpression)*
func (p *Parser) logicalAndExpression() (mdwast.Expr, error) {
	return p.logicalLevel(TokenLogicalAnd, p.equalityExpression)
}

// EqualityExpression := RelationalExpression (("==" | "!=") RelationalExpression)*
func (p *Parser) equalityExpression() (mdwast.Expr, error) {
	return p.binaryLevel(TokenEqualityOperator, p.relationalExpression)
}

// RelationalExpression := AdditiveExpression (("<" | ">" | "<=" | ">=") AdditiveExpression)*
func (p *Parser) relationalExpression() (mdwast.Expr, error) {
	return p.binaryLevel(TokenRelationalOperator, p.additiveExpression)
}

// AdditiveExpression := MultiplicativeExpression (("+" | "-") MultiplicativeExpression)*
func (p *Parser) additiveExpression() (mdwast.Expr, error) {
	return p.binaryLevel(TokenAdditiveOperator, p.multiplicativeExpression)
}

// MultiplicativeExpression := PrimaryExpression (("*" | "/") PrimaryExpression)*
func (p *Parser) multiplicativeExpression() (mdwast.Expr, error) {
	return p.binaryLevel(TokenMultiplicativeOperator, p.primaryExpression)
}

// binaryLevel folds a left-associative chain of operators of one kind
func (p *Parser) binaryLevel(kind TokenType, operand func() (mdwast.Expr, error)) (mdwast.Expr, error) {
	left, err := operand()
	if err != nil {
		return nil, err
	}

	for p.at(kind) {
		op, err := p.eat(kind)
		if err != nil {
			return nil, err
		}
		right, err := operand()
		if err != nil {
			return nil, err
		}
		left = &mdwast.BinaryExpression{Operator: op.Value, Left: left, Right: right, Pos: left.Position()}
	}
	return left, nil
}

// logicalLevel is binaryLevel for && and ||
func (p *Parser) logicalLevel(kind TokenType, operand func() (mdwast.Expr, error)) (mdwast.Expr, error) {
	left, err := operand()
	if err != nil {
		return nil, err
	}

	for p.at(kind) {
		op, err := p.eat(kind)
		if err != nil {
			return nil, err
		}
		right, err := operand()
		if err != nil {
			return nil, err
		}
		left = &mdwast.LogicalExpression{Operator: op.Value, Left: left, Right: right, Pos: left.Position()}
	}
	return left, nil
}

// PrimaryExpression := Literal | "(" Expression ")" | Identifier
func (p *Parser) primaryExpression() (mdwast.Expr, error) {
	if p.lookahead == nil {
		return nil, errUnexpectedEndOfInput("expression", p.scanner)
	}

	switch {
	case p.lookahead.Type.IsLiteral():
		return p.literal()
	case p.lookahead.Type == TokenLeftParen:
		return p.parenthesizedExpression()
	default:
		id, err := p.identifier()
		if err != nil {
			return nil, err
		}
		return id, nil
	}
}

func (p *Parser) parenthesizedExpression() (mdwast.Expr, error) {
	if _, err := p.eat(TokenLeftParen); err != nil {
		return nil, err
	}
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(TokenRightParen); err != nil {
		return nil, err
	}
	return expr, nil
}

func (p *Parser) identifier() (*mdwast.Identifier, error) {
	tok, err := p.eat(TokenIdentifier)
	if err != nil {
		return nil, err
	}
	return &mdwast.Identifier{Name: tok.Value, Pos: positionOf(tok)}, nil
}

// Literal := NUMBER | STRING | "true" | "false" | "null"
func (p *Parser) literal() (mdwast.Literal, error) {
	if p.lookahead == nil {
		return nil, errUnexpectedEndOfInput("literal", p.scanner)
	}

	switch p.lookahead.Type {
	case TokenNumber:
		tok, err := p.eat(TokenNumber)
		if err != nil {
			return nil, err
		}
		value, err := strconv.ParseInt(tok.Value, 10, 64)
		if err != nil {
			return nil, errInvalidNumericLiteral(tok, err)
		}
		return &mdwast.NumericLiteral{Value: value, Pos: positionOf(tok)}, nil

	case TokenString:
		tok, err := p.eat(TokenString)
		if err != nil {
			return nil, err
		}
		return &mdwast.StringLiteral{Value: tok.Value, Pos: positionOf(tok)}, nil

	case TokenTrue, TokenFalse:
		tok, err := p.eat(p.lookahead.Type)
		if err != nil {
			return nil, err
		}
		return &mdwast.BooleanLiteral{Value: tok.Type == TokenTrue, Pos: positionOf(tok)}, nil

	case TokenNull:
		tok, err := p.eat(TokenNull)
		if err != nil {
			return nil, err
		}
		return &mdwast.NullLiteral{Pos: positionOf(tok)}, nil

	default:
		return nil, errUnsupportedTokenType(p.lookahead, "Literal")
	}
}

// Utility methods

// eat consumes the lookahead if it has the expected type and fetches the
// next one from the scanner
func (p *Parser) eat(expected TokenType) (*Token, error) {
	tok := p.lookahead
	if tok == nil {
		return nil, errUnexpectedEndOfInput(expected.String(), p.scanner)
	}
	if tok.Type != expected {
		return nil, errUnexpectedToken(tok, expected.String())
	}

	next, err := p.scanner.Next()
	if err != nil {
		return nil, err
	}
	p.lookahead = next
	return tok, nil
}

// at reports whether the lookahead has the given type
func (p *Parser) at(kind TokenType) bool {
	return p.lookahead != nil && p.lookahead.Type == kind
}

func (p *Parser) enter() error {
	p.depth++
	if p.depth > p.options.MaxDepth {
		return errNestingTooDeep(p.options.MaxDepth, p.lookahead)
	}
	return nil
}

func (p *Parser) leave() {
	p.depth--
}

func positionOf(tok *Token) mdwast.Position {
	return mdwast.Position{
		Line:   tok.Line,
		Column: tok.Column,
		Offset: tok.Position,
	}
}
