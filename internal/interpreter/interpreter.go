package interpreter

import (
	"context"
	"fmt"

	"github.com/leonardinius/tinylox/internal/loxerrors"
	"github.com/leonardinius/tinylox/internal/parser"
	"github.com/leonardinius/tinylox/internal/token"
)

type Interpreter interface {
	// Interpret executes the statements in order.
	// Returns the stringified value of the last expression statement ("" if
	// there was none) and the first runtime error, which also stops
	// execution. The error has already been reported.
	//
	// Not thread safe. Bindings survive between calls.
	Interpret(ctx context.Context, statements []parser.Stmt) (string, error)

	// Evaluate evaluates a single expression.
	//
	// Not thread safe.
	Evaluate(ctx context.Context, expr parser.Expr) (Value, error)
}

type interpreter struct {
	opts  *interpreterOpts
	scope ScopeID
}

func NewInterpreter(options ...InterpreterOption) Interpreter {
	return &interpreter{opts: newInterpreterOpts(options...), scope: GlobalScope}
}

// Interpret implements Interpreter.
func (i *interpreter) Interpret(ctx context.Context, statements []parser.Stmt) (string, error) {
	var last Value
	for _, stmt := range statements {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		value, err := i.execute(ctx, stmt)
		if err != nil {
			i.opts.reporter.ReportPanic(err)
			return "", err
		}
		if _, ok := stmt.(*parser.StmtExpression); ok {
			last = value
		}
	}

	if last == nil {
		return "", nil
	}
	return i.stringify(last), nil
}

// Evaluate implements Interpreter.
func (i *interpreter) Evaluate(ctx context.Context, expr parser.Expr) (Value, error) {
	return i.evaluate(ctx, expr)
}

func (i *interpreter) execute(ctx context.Context, stmt parser.Stmt) (Value, error) {
	switch s := stmt.(type) {
	case *parser.StmtExpression:
		return i.evaluate(ctx, s.Expression)
	case *parser.StmtPrint:
		return i.executePrint(ctx, s)
	case *parser.StmtVar:
		return i.executeVar(ctx, s)
	}

	return i.unreachable(stmt)
}

func (i *interpreter) executePrint(ctx context.Context, stmt *parser.StmtPrint) (Value, error) {
	value, err := i.evaluate(ctx, stmt.Expression)
	if err != nil {
		return nil, err
	}

	_, err = fmt.Fprintln(i.opts.stdout, i.stringify(value))
	return nil, err
}

func (i *interpreter) executeVar(ctx context.Context, stmt *parser.StmtVar) (Value, error) {
	var value Value = NilValue
	if stmt.Initializer != nil {
		var err error
		if value, err = i.evaluate(ctx, stmt.Initializer); err != nil {
			return nil, err
		}
	}

	i.opts.env.Define(i.scope, stmt.Name.Lexeme, value)
	return nil, nil
}

func (i *interpreter) evaluate(ctx context.Context, expr parser.Expr) (Value, error) {
	switch e := expr.(type) {
	case *parser.ExprBinary:
		return i.evaluateBinary(ctx, e)
	case *parser.ExprUnary:
		return i.evaluateUnary(ctx, e)
	case *parser.ExprGrouping:
		return i.evaluate(ctx, e.Expression)
	case *parser.ExprLiteral:
		return literalValue(e.Value), nil
	case *parser.ExprVariable:
		return i.opts.env.Get(i.scope, e.Name)
	}

	return i.unreachable(expr)
}

func (i *interpreter) evaluateBinary(ctx context.Context, expr *parser.ExprBinary) (Value, error) {
	left, err := i.evaluate(ctx, expr.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluate(ctx, expr.Right)
	if err != nil {
		return nil, err
	}

	switch expr.Operator.Type {
	case token.BANG_EQUAL:
		return ValueBool(!isEqual(left, right)), nil
	case token.EQUAL_EQUAL:
		return ValueBool(isEqual(left, right)), nil
	case token.PLUS:
		return i.plus(expr.Operator, left, right)
	}

	l, r, err := i.checkNumberOperands(expr.Operator, left, right)
	if err != nil {
		return nil, err
	}

	switch expr.Operator.Type {
	case token.GREATER:
		return ValueBool(l > r), nil
	case token.GREATER_EQUAL:
		return ValueBool(l >= r), nil
	case token.LESS:
		return ValueBool(l < r), nil
	case token.LESS_EQUAL:
		return ValueBool(l <= r), nil
	case token.MINUS:
		return l - r, nil
	case token.STAR:
		return l * r, nil
	case token.SLASH:
		if r == 0 {
			return nil, loxerrors.NewRuntimeError(expr.Operator, loxerrors.ErrRuntimeDivisionByZero)
		}
		// Go truncates toward zero.
		return l / r, nil
	}

	return i.unreachable(expr.Operator)
}

func (i *interpreter) plus(operator *token.Token, left, right Value) (Value, error) {
	switch l := left.(type) {
	case ValueNumber:
		if r, ok := right.(ValueNumber); ok {
			return l + r, nil
		}
	case ValueString:
		if r, ok := right.(ValueString); ok {
			return l + r, nil
		}
	}

	return nil, loxerrors.NewRuntimeError(operator, loxerrors.ErrRuntimeOperandsMustNumbersOrStrings)
}

func (i *interpreter) evaluateUnary(ctx context.Context, expr *parser.ExprUnary) (Value, error) {
	right, err := i.evaluate(ctx, expr.Right)
	if err != nil {
		return nil, err
	}

	switch expr.Operator.Type {
	case token.MINUS:
		if r, ok := right.(ValueNumber); ok {
			return -r, nil
		}
		return nil, loxerrors.NewRuntimeError(expr.Operator, loxerrors.ErrRuntimeOperandMustBeNumber)
	case token.BANG:
		truthy, err := i.isTruthy(expr.Operator, right)
		if err != nil {
			return nil, err
		}
		return ValueBool(!truthy), nil
	}

	return i.unreachable(expr.Operator)
}

// isTruthy accepts nil (falsy) and booleans only.
func (i *interpreter) isTruthy(operator *token.Token, value Value) (bool, error) {
	switch v := value.(type) {
	case ValueNil:
		return false, nil
	case ValueBool:
		return bool(v), nil
	}

	return false, loxerrors.NewRuntimeError(operator, loxerrors.ErrRuntimeOperandMustBeBoolean)
}

func (i *interpreter) checkNumberOperands(operator *token.Token, left, right Value) (ValueNumber, ValueNumber, error) {
	l, lok := left.(ValueNumber)
	r, rok := right.(ValueNumber)
	if !lok || !rok {
		return 0, 0, loxerrors.NewRuntimeError(operator, loxerrors.ErrRuntimeOperandsMustBeNumbers)
	}
	return l, r, nil
}

func (i *interpreter) stringify(v Value) string {
	return v.String()
}

func (i *interpreter) unreachable(node any) (Value, error) {
	panic(fmt.Sprintf("unreachable: %#v", node))
}

var _ Interpreter = (*interpreter)(nil)
