package xir

import (
	"strconv"

	"github.com/cottand/monoc/typing"
)

// All expression types implement the Expr interface
type Expr interface {
	exprNode()
	// Describe returns the name of the expression variant
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
	_ Expr = (*TyLam)(nil)
	_ Expr = (*TyApp)(nil)
)

type UnitLit struct{}

func (UnitLit) exprNode()        {}
func (UnitLit) Describe() string { return "UnitLit" }

type I32Lit int32

func (I32Lit) exprNode()        {}
func (I32Lit) Describe() string { return "I32Lit" }

type BoolLit bool

func (BoolLit) exprNode()        {}
func (BoolLit) Describe() string { return "BoolLit" }

// Var references a symbol bound by a declaration, a let or a lambda
type Var struct {
	Symbol Symbol
}

func (*Var) exprNode()        {}
func (*Var) Describe() string { return "Var" }

// If is a conditional whose branches both have type Type
type If struct {
	Cond, Then, Else Expr
	Type             typing.Type
}

func (*If) exprNode()        {}
func (*If) Describe() string { return "If" }

// Let binds Bind in the scope of Body (non-recursive)
type Let struct {
	Bind Bind
	Body Expr
}

func (*Let) exprNode()        {}
func (*Let) Describe() string { return "Let" }

// Lam is an uncurried lambda. Return is the declared return type, which may be
// nil when the source left it out.
type Lam struct {
	Params []Symbol
	Body   Expr
	Return typing.Type
}

func (*Lam) exprNode()        {}
func (*Lam) Describe() string { return "Lam" }

// App applies Callee to all of Args at once
type App struct {
	Callee Expr
	Args   []Expr
}

func (*App) exprNode()        {}
func (*App) Describe() string { return "App" }

// TyLam abstracts Body over type parameters. It only exists before
// monomorphization.
type TyLam struct {
	Params []TyParam
	Body   Expr
}

func (*TyLam) exprNode()        {}
func (*TyLam) Describe() string { return "TyLam" }

// TyApp is an explicit type application. It only exists before
// monomorphization.
type TyApp struct {
	Expr Expr
	Args []typing.Type
}

func (*TyApp) exprNode()        {}
func (*TyApp) Describe() string { return "TyApp" }

func (l I32Lit) String() string  { return strconv.Itoa(int(l)) }
func (l BoolLit) String() string { return strconv.FormatBool(bool(l)) }
