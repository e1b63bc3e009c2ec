package parser

import (
	"errors"
	"fmt"

	"github.com/leonardinius/tinylox/internal/loxerrors"
	"github.com/leonardinius/tinylox/internal/token"
)

type Parser interface {
	// Parse returns the program's statements. Each malformed statement is
	// reported once and skipped; when there was at least one, no statements
	// are returned.
	Parse() ([]Stmt, error)
}

// Tokens a statement can begin with. Recovery stops in front of them.
var statementKeywords = map[token.TokenType]bool{
	token.CLASS:  true,
	token.FUN:    true,
	token.VAR:    true,
	token.FOR:    true,
	token.IF:     true,
	token.WHILE:  true,
	token.PRINT:  true,
	token.RETURN: true,
}

type parser struct {
	tokens   []token.Token
	current  int
	err      error
	reporter loxerrors.ErrReporter
}

func NewParser(tokens []token.Token, reporter loxerrors.ErrReporter) Parser {
	if len(tokens) == 0 {
		panic("tokens cannot be empty")
	}
	if tokens[len(tokens)-1].Type != token.EOF {
		panic("tokens must end with EOF")
	}

	return &parser{tokens: tokens, reporter: reporter}
}

// GoString implements fmt.GoStringer.
func (p *parser) GoString() string {
	return fmt.Sprintf("parser{tokens: %#v, current: %d, err: %#v}", p.tokens, p.current, p.err)
}

// String implements fmt.Stringer.
func (p *parser) String() string {
	return fmt.Sprintf("parser{tokens: %d, err: %v}", len(p.tokens), p.err)
}

// Parse implements Parser.
func (p *parser) Parse() ([]Stmt, error) {
	var statements []Stmt
	var errs []error

	for !p.isAtEnd() {
		start := p.current
		stmt := p.declaration()
		if p.err == nil {
			statements = append(statements, stmt)
			continue
		}

		errs = append(errs, p.err)
		if p.reporter != nil {
			p.reporter.ReportError(p.err)
		}
		p.resync(start)
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("%w\n%w", loxerrors.ErrParseError, errors.Join(errs...))
	}
	return statements, nil
}

func (p *parser) declaration() Stmt {
	if p.match(token.VAR) {
		return p.varDeclaration()
	}
	if p.match(token.PRINT) {
		return p.printStatement()
	}
	return p.expressionStatement()
}

func (p *parser) varDeclaration() Stmt {
	if !p.match(token.IDENTIFIER) {
		return p.failStmt(loxerrors.ErrParseUnexpectedVariableName)
	}
	name := p.previous()

	var initializer Expr
	if p.match(token.EQUAL) {
		initializer = p.expression()
	}

	if !p.match(token.SEMICOLON) {
		return p.failStmt(loxerrors.ErrParseExpectedSemicolonTokenAfterVar)
	}
	return &StmtVar{Name: name, Initializer: initializer}
}

func (p *parser) printStatement() Stmt {
	value := p.expression()
	if !p.match(token.SEMICOLON) {
		return p.failStmt(loxerrors.ErrParseExpectedSemicolonTokenAfterPrintValue)
	}
	return &StmtPrint{Expression: value}
}

func (p *parser) expressionStatement() Stmt {
	value := p.expression()
	if !p.match(token.SEMICOLON) {
		return p.failStmt(loxerrors.ErrParseExpectedSemicolonTokenAfterExpr)
	}
	return &StmtExpression{Expression: value}
}

func (p *parser) expression() Expr {
	return p.equality()
}

func (p *parser) equality() Expr {
	return p.binary(p.comparison, token.BANG_EQUAL, token.EQUAL_EQUAL)
}

func (p *parser) comparison() Expr {
	return p.binary(p.term, token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL)
}

func (p *parser) term() Expr {
	return p.binary(p.factor, token.MINUS, token.PLUS)
}

func (p *parser) factor() Expr {
	return p.binary(p.unary, token.SLASH, token.STAR)
}

// binary parses a left-associative chain of operand (op operand)*.
func (p *parser) binary(operand func() Expr, operators ...token.TokenType) Expr {
	left := operand()
	for p.matchAny(operators...) {
		operator := p.previous()
		left = &ExprBinary{Left: left, Operator: operator, Right: operand()}
	}
	return left
}

func (p *parser) unary() Expr {
	if p.matchAny(token.BANG, token.MINUS) {
		operator := p.previous()
		return &ExprUnary{Operator: operator, Right: p.unary()}
	}
	return p.primary()
}

func (p *parser) primary() Expr {
	switch {
	case p.match(token.FALSE):
		return &ExprLiteral{Value: false}
	case p.match(token.TRUE):
		return &ExprLiteral{Value: true}
	case p.match(token.NIL):
		return &ExprLiteral{Value: nil}
	case p.matchAny(token.NUMBER, token.STRING):
		return &ExprLiteral{Value: p.previous().Literal}
	case p.match(token.IDENTIFIER):
		return &ExprVariable{Name: p.previous()}
	case p.match(token.LEFT_PAREN):
		inner := p.expression()
		if !p.match(token.RIGHT_PAREN) {
			return p.failExpr(loxerrors.ErrParseExpectedRightParenToken)
		}
		return &ExprGrouping{Expression: inner}
	}

	return p.failExpr(loxerrors.ErrParseUnexpectedToken)
}

func (p *parser) matchAny(types ...token.TokenType) bool {
	for _, t := range types {
		if p.match(t) {
			return true
		}
	}
	return false
}

// match consumes the next token if it has type t. It never matches once an
// error is pending, which unwinds the descent without further reports.
func (p *parser) match(t token.TokenType) bool {
	if p.err != nil || p.isAtEnd() || p.peek().Type != t {
		return false
	}
	p.advance()
	return true
}

func (p *parser) peek() *token.Token {
	return &p.tokens[p.current]
}

func (p *parser) previous() *token.Token {
	return &p.tokens[p.current-1]
}

func (p *parser) advance() {
	if !p.isAtEnd() {
		p.current++
	}
}

func (p *parser) isAtEnd() bool {
	return p.peek().Type == token.EOF
}

func (p *parser) failStmt(cause error) Stmt {
	p.fail(cause)
	return nil
}

func (p *parser) failExpr(cause error) Expr {
	p.fail(cause)
	return nil
}

// fail records cause at the current token. Only the first failure of a
// statement is kept.
func (p *parser) fail(cause error) {
	if p.err == nil {
		p.err = loxerrors.NewParseError(p.peek(), cause)
	}
}

// resync clears the pending error and skips to the next statement: past a
// ';' or up to a statement keyword. A statement that failed on its first
// token always loses that token, so the loop makes progress.
func (p *parser) resync(start int) {
	p.err = nil

	if p.current == start {
		p.advance()
	}
	for !p.isAtEnd() {
		if p.previous().Type == token.SEMICOLON {
			return
		}
		if statementKeywords[p.peek().Type] {
			return
		}
		p.advance()
	}
}

var _ Parser = (*parser)(nil)
var _ fmt.Stringer = (*parser)(nil)
var _ fmt.GoStringer = (*parser)(nil)
