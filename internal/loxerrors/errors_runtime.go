package loxerrors

import (
	"errors"
	"fmt"

	"github.com/leonardinius/tinylox/internal/token"
)

var (
	ErrRuntimeOperandMustBeNumber          = errors.New("Operand must be a number.")
	ErrRuntimeOperandsMustBeNumbers        = errors.New("Operands must be numbers.")
	ErrRuntimeOperandsMustNumbersOrStrings = errors.New("Operands must be two numbers or two strings.")
	ErrRuntimeOperandMustBeBoolean         = errors.New("Operand must be a boolean or nil.")
	ErrRuntimeDivisionByZero               = errors.New("Division by zero.")
	ErrRuntimeUndefinedVariable            = errors.New("Undefined variable")
)

func ErrRuntimeUndefinedVariableName(name string) error {
	return fmt.Errorf("%w '%s'.", ErrRuntimeUndefinedVariable, name)
}

func NewRuntimeError(tok *token.Token, cause error) error {
	return &RuntimeError{tok, cause}
}

type RuntimeError struct {
	tok   *token.Token
	cause error
}

// Error implements error.
func (r *RuntimeError) Error() string {
	return fmt.Sprintf("%v\n[line %d] in script", r.cause, r.tok.Line)
}

func (r *RuntimeError) Unwrap() error {
	return r.cause
}

// Token returns the operator or name the failure is attributed to.
func (r *RuntimeError) Token() *token.Token {
	return r.tok
}

// Diagnostic implements diagnostic.
func (r *RuntimeError) Diagnostic() Diagnostic {
	return Diagnostic{Line: r.tok.Line, Where: r.tok.Where(), Message: fmt.Sprint(r.cause)}
}

var _ error = (*RuntimeError)(nil)
var _ unwrapInterface = (*RuntimeError)(nil)
var _ diagnostic = (*RuntimeError)(nil)
