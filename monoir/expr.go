package monoir

import "strconv"

type Expr interface {
	exprNode()
	Describe() string
}

var (
	_ Expr = UnitLit{}
	_ Expr = I32Lit(0)
	_ Expr = BoolLit(false)
	_ Expr = (*Var)(nil)
	_ Expr = (*If)(nil)
	_ Expr = (*Let)(nil)
	_ Expr = (*Lam)(nil)
	_ Expr = (*App)(nil)
)

type UnitLit struct{}

func (UnitLit) exprNode()        {}
func (UnitLit) Describe() string { return "UnitLit" }

type I32Lit int32

func (I32Lit) exprNode()        {}
func (I32Lit) Describe() string { return "I32Lit" }
func (l I32Lit) String() string { return strconv.Itoa(int(l)) }

type BoolLit bool

func (BoolLit) exprNode()        {}
func (BoolLit) Describe() string { return "BoolLit" }
func (l BoolLit) String() string { return strconv.FormatBool(bool(l)) }

type Var struct {
	Symbol Symbol
}

func (*Var) exprNode()        {}
func (*Var) Describe() string { return "Var" }

// If carries the type both of its branches evaluate to
type If struct {
	Cond, Then, Else Expr
	Type             Type
}

func (*If) exprNode()        {}
func (*If) Describe() string { return "If" }

type Let struct {
	Bind Bind
	Body Expr
}

func (*Let) exprNode()        {}
func (*Let) Describe() string { return "Let" }

// Lam does not carry its own type: the function type of a lambda is found on
// the symbol it is bound to
type Lam struct {
	Params []Symbol
	Body   Expr
}

func (*Lam) exprNode()        {}
func (*Lam) Describe() string { return "Lam" }

type App struct {
	Callee Expr
	Args   []Expr
}

func (*App) exprNode()        {}
func (*App) Describe() string { return "App" }
