package parser

import "github.com/leonardinius/tinylox/internal/token"

// Expr is a closed set of expression nodes. Consumers switch on the
// concrete type; the unexported marker keeps other packages from adding
// variants.
type Expr interface {
	expr()
}

// Stmt is a closed set of statement nodes.
type Stmt interface {
	stmt()
}

type ExprBinary struct {
	Left     Expr
	Operator *token.Token
	Right    Expr
}

type ExprUnary struct {
	Operator *token.Token
	Right    Expr
}

type ExprGrouping struct {
	Expression Expr
}

// ExprLiteral holds nil, bool, int64 or string.
type ExprLiteral struct {
	Value any
}

type ExprVariable struct {
	Name *token.Token
}

type StmtExpression struct {
	Expression Expr
}

type StmtPrint struct {
	Expression Expr
}

// StmtVar declares Name. A nil Initializer binds nil.
type StmtVar struct {
	Name        *token.Token
	Initializer Expr
}

func (*ExprBinary) expr()   {}
func (*ExprUnary) expr()    {}
func (*ExprGrouping) expr() {}
func (*ExprLiteral) expr()  {}
func (*ExprVariable) expr() {}

func (*StmtExpression) stmt() {}
func (*StmtPrint) stmt()      {}
func (*StmtVar) stmt()        {}

var (
	_ Expr = (*ExprBinary)(nil)
	_ Expr = (*ExprUnary)(nil)
	_ Expr = (*ExprGrouping)(nil)
	_ Expr = (*ExprLiteral)(nil)
	_ Expr = (*ExprVariable)(nil)

	_ Stmt = (*StmtExpression)(nil)
	_ Stmt = (*StmtPrint)(nil)
	_ Stmt = (*StmtVar)(nil)
)
