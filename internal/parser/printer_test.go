package parser_test

import (
	"testing"

	"github.com/leonardinius/tinylox/internal/parser"
	"github.com/leonardinius/tinylox/internal/token"
	"github.com/stretchr/testify/assert"
)

func sampleTree() parser.Expr {
	return &parser.ExprBinary{
		Left: &parser.ExprUnary{
			Operator: token.NewTokenHeap(token.MINUS, "-", nil, 1),
			Right: &parser.ExprLiteral{
				Value: int64(123),
			},
		},
		Operator: token.NewTokenHeap(token.STAR, "*", nil, 1),
		Right: &parser.ExprGrouping{
			Expression: &parser.ExprLiteral{
				Value: int64(45),
			},
		}}
}

func TestAstPrinter(t *testing.T) {
	p := parser.NewAstPrinter()
	assert.Equal(t, "(* (- 123) (group 45))", p.Print(sampleTree()))
}

func TestRPNPrinter(t *testing.T) {
	p := parser.NewRPNPrinter()
	assert.Equal(t, "123 ~ 45 *", p.Print(sampleTree()))
}

func TestPrintStatements(t *testing.T) {
	name := token.NewTokenHeap(token.IDENTIFIER, "a", nil, 1)
	stmts := []parser.Stmt{
		&parser.StmtVar{Name: name},
		&parser.StmtVar{Name: name, Initializer: &parser.ExprLiteral{Value: "x"}},
		&parser.StmtPrint{Expression: &parser.ExprVariable{Name: name}},
		&parser.StmtExpression{Expression: &parser.ExprLiteral{Value: nil}},
	}

	testcases := []struct {
		name     string
		printer  parser.StmtPrinter
		expected []string
	}{
		{"lisp", parser.NewAstPrinter(), []string{"(var a)", "(var a x)", "(print a)", "(; nil)"}},
		{"rpn", parser.NewRPNPrinter(), []string{"nil a var", "x a var", "a print", "nil ;"}},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			out := make([]string, len(stmts))
			for i, stmt := range stmts {
				out[i] = tc.printer.PrintStmt(stmt)
			}
			assert.Equal(t, tc.expected, out)
		})
	}
}
