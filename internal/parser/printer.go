package parser

import (
	"fmt"
	"strings"
)

// AstPrinter renders trees in a parenthesized prefix notation, e.g.
// "(* (- 123) (group 45))". The output is meant for humans and tests; it is
// not valid source.
type AstPrinter struct{}

func NewAstPrinter() *AstPrinter {
	return &AstPrinter{}
}

func (p *AstPrinter) Print(expr Expr) string {
	switch e := expr.(type) {
	case *ExprBinary:
		return p.parenthesize(e.Operator.Lexeme, e.Left, e.Right)
	case *ExprGrouping:
		return p.parenthesize("group", e.Expression)
	case *ExprLiteral:
		return literalString(e.Value)
	case *ExprUnary:
		return p.parenthesize(e.Operator.Lexeme, e.Right)
	case *ExprVariable:
		return e.Name.Lexeme
	case nil:
		return "<nil>"
	}

	panic(fmt.Sprintf("unexpected expression %T", expr))
}

func (p *AstPrinter) PrintStmt(stmt Stmt) string {
	switch s := stmt.(type) {
	case *StmtExpression:
		return p.parenthesize(";", s.Expression)
	case *StmtPrint:
		return p.parenthesize("print", s.Expression)
	case *StmtVar:
		if s.Initializer == nil {
			return "(var " + s.Name.Lexeme + ")"
		}
		return p.parenthesize("var "+s.Name.Lexeme, s.Initializer)
	}

	panic(fmt.Sprintf("unexpected statement %T", stmt))
}

func (p *AstPrinter) parenthesize(name string, exprs ...Expr) string {
	out := new(strings.Builder)
	_, _ = out.WriteString("(")
	_, _ = out.WriteString(name)
	for _, expr := range exprs {
		_, _ = out.WriteString(" ")
		_, _ = out.WriteString(p.Print(expr))
	}
	_, _ = out.WriteString(")")
	return out.String()
}

func literalString(v any) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%v", v)
}
