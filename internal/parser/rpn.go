package parser

import (
	"fmt"
	"strings"

	"github.com/leonardinius/tinylox/internal/token"
)

// RPNPrinter renders expressions in reverse Polish notation: operands
// first, operator last. Unary minus prints as "~" to tell it apart from
// subtraction; groupings disappear.
type RPNPrinter struct{}

func NewRPNPrinter() *RPNPrinter {
	return &RPNPrinter{}
}

func (p *RPNPrinter) Print(expr Expr) string {
	switch e := expr.(type) {
	case *ExprBinary:
		return p.reverse(e.Operator.Lexeme, e.Left, e.Right)
	case *ExprGrouping:
		return p.reverse("", e.Expression)
	case *ExprLiteral:
		return literalString(e.Value)
	case *ExprUnary:
		operator := e.Operator.Lexeme
		if e.Operator.Type == token.MINUS {
			operator = "~"
		}
		return p.reverse(operator, e.Right)
	case *ExprVariable:
		return e.Name.Lexeme
	case nil:
		return "<nil>"
	}

	panic(fmt.Sprintf("unexpected expression %T", expr))
}

func (p *RPNPrinter) PrintStmt(stmt Stmt) string {
	switch s := stmt.(type) {
	case *StmtExpression:
		return p.reverse(";", s.Expression)
	case *StmtPrint:
		return p.reverse("print", s.Expression)
	case *StmtVar:
		if s.Initializer == nil {
			return "nil " + s.Name.Lexeme + " var"
		}
		return p.reverse(s.Name.Lexeme+" var", s.Initializer)
	}

	panic(fmt.Sprintf("unexpected statement %T", stmt))
}

func (p *RPNPrinter) reverse(name string, exprs ...Expr) string {
	out := new(strings.Builder)
	for _, expr := range exprs {
		_, _ = out.WriteString(p.Print(expr))
		_, _ = out.WriteString(" ")
	}
	_, _ = out.WriteString(name)
	return strings.TrimSuffix(out.String(), " ")
}

// StmtPrinter is implemented by AstPrinter and RPNPrinter.
type StmtPrinter interface {
	Print(expr Expr) string
	PrintStmt(stmt Stmt) string
}

var _ StmtPrinter = (*AstPrinter)(nil)
var _ StmtPrinter = (*RPNPrinter)(nil)
