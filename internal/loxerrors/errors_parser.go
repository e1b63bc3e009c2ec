package loxerrors

import (
	"errors"
	"fmt"

	"github.com/leonardinius/tinylox/internal/token"
)

var (
	ErrParseError                                 = errors.New("parse error.")
	ErrParseUnexpectedToken                       = errors.New("Expect expression.")
	ErrParseUnexpectedVariableName                = errors.New("Expect variable name.")
	ErrParseExpectedRightParenToken               = errors.New("Expect ')' after expression.")
	ErrParseExpectedSemicolonTokenAfterPrintValue = errors.New("Expect ';' after print value.")
	ErrParseExpectedSemicolonTokenAfterExpr       = errors.New("Expect ';' after value.")
	ErrParseExpectedSemicolonTokenAfterVar        = errors.New("Expect ';' after variable declaration.")
)

func NewParseError(tok *token.Token, cause error) error {
	return &ParserError{tok: tok, cause: cause}
}

type ParserError struct {
	tok   *token.Token
	cause error
}

// Error implements error.
func (p *ParserError) Error() string {
	return p.Diagnostic().String()
}

func (p *ParserError) Unwrap() error {
	return p.cause
}

// Token returns the token the parser stopped at.
func (p *ParserError) Token() *token.Token {
	return p.tok
}

// Diagnostic implements diagnostic.
func (p *ParserError) Diagnostic() Diagnostic {
	return Diagnostic{Line: p.tok.Line, Where: p.tok.Where(), Message: fmt.Sprint(p.cause)}
}

var _ error = (*ParserError)(nil)
var _ unwrapInterface = (*ParserError)(nil)
var _ diagnostic = (*ParserError)(nil)
