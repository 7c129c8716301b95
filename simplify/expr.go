package simplify

import (
	"github.com/cottand/monoc/failed"
	"github.com/cottand/monoc/monoir"
	"github.com/cottand/monoc/util"
	"github.com/cottand/monoc/xir"
)

// lowerExpr translates expr one node at a time, keeping its shape and
// literal values and lowering every type in it
func lowerExpr(expr xir.Expr) (monoir.Expr, error) {
	switch expr := expr.(type) {
	case xir.UnitLit:
		return monoir.UnitLit{}, nil
	case xir.I32Lit:
		return monoir.I32Lit(expr), nil
	case xir.BoolLit:
		return monoir.BoolLit(expr), nil

	case *xir.Var:
		sym, err := ResolveSymbol(expr.Symbol)
		if err != nil {
			return nil, err
		}
		return &monoir.Var{Symbol: sym}, nil

	case *xir.If:
		cond, err := lowerExpr(expr.Cond)
		if err != nil {
			return nil, err
		}
		then, err := lowerExpr(expr.Then)
		if err != nil {
			return nil, err
		}
		else_, err := lowerExpr(expr.Else)
		if err != nil {
			return nil, err
		}
		ty, err := ResolveType(expr.Type)
		if err != nil {
			return nil, err
		}
		return &monoir.If{Cond: cond, Then: then, Else: else_, Type: ty}, nil

	case *xir.Let:
		bind, err := lowerBind(expr.Bind)
		if err != nil {
			return nil, err
		}
		body, err := lowerExpr(expr.Body)
		if err != nil {
			return nil, err
		}
		return &monoir.Let{Bind: bind, Body: body}, nil

	case *xir.Lam:
		// the declared return type is not checked again here: the type of the
		// lambda is on the symbol it is bound to
		params, err := util.MapErr(expr.Params, ResolveSymbol)
		if err != nil {
			return nil, err
		}
		body, err := lowerExpr(expr.Body)
		if err != nil {
			return nil, err
		}
		return &monoir.Lam{Params: params, Body: body}, nil

	case *xir.App:
		callee, err := lowerExpr(expr.Callee)
		if err != nil {
			return nil, err
		}
		args, err := util.MapErr(expr.Args, lowerExpr)
		if err != nil {
			return nil, err
		}
		return &monoir.App{Callee: callee, Args: args}, nil

	default:
		return nil, failed.New(failed.NewUnsupportedExpr{Expr: expr})
	}
}
