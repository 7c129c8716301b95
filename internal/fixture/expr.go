package fixture

import (
	"github.com/cottand/monoc/typing"
	"github.com/cottand/monoc/util"
	"github.com/cottand/monoc/xir"
	"github.com/pkg/errors"
)

func (e Expr) variants() int {
	n := 0
	for _, isSet := range []bool{
		e.Unit, e.I32 != nil, e.Bool != nil, e.Var != nil, e.If != nil,
		e.Let != nil, e.Lam != nil, e.App != nil, e.TyLam != nil, e.TyApp != nil,
	} {
		if isSet {
			n++
		}
	}
	return n
}

func (d *Decoder) Expr(e Expr) (xir.Expr, error) {
	if n := e.variants(); n != 1 {
		return nil, errors.Errorf("expression must set exactly one variant, found %d", n)
	}

	switch {
	case e.Unit:
		return xir.UnitLit{}, nil
	case e.I32 != nil:
		return xir.I32Lit(*e.I32), nil
	case e.Bool != nil:
		return xir.BoolLit(*e.Bool), nil
	case e.Var != nil:
		sym, err := d.Symbol(*e.Var)
		if err != nil {
			return nil, errors.WithMessage(err, "var")
		}
		return &xir.Var{Symbol: sym}, nil
	case e.If != nil:
		return d.ifExpr(*e.If)
	case e.Let != nil:
		bind, err := d.bind(e.Let.Bind)
		if err != nil {
			return nil, errors.WithMessage(err, "let")
		}
		body, err := d.Expr(e.Let.Body)
		if err != nil {
			return nil, errors.WithMessagef(err, "body of let %s", bind.Symbol)
		}
		return &xir.Let{Bind: bind, Body: body}, nil
	case e.Lam != nil:
		return d.lam(*e.Lam)
	case e.App != nil:
		callee, err := d.Expr(e.App.Callee)
		if err != nil {
			return nil, errors.WithMessage(err, "callee")
		}
		args, err := util.MapErr(e.App.Args, d.Expr)
		if err != nil {
			return nil, errors.WithMessagef(err, "argument of call to %s", xir.ExprString(callee))
		}
		return &xir.App{Callee: callee, Args: args}, nil
	case e.TyLam != nil:
		params, err := util.MapErr(e.TyLam.Params, d.tyParam)
		if err != nil {
			return nil, errors.WithMessage(err, "tylam")
		}
		body, err := d.Expr(e.TyLam.Body)
		if err != nil {
			return nil, errors.WithMessage(err, "body of tylam")
		}
		return &xir.TyLam{Params: params, Body: body}, nil
	default:
		expr, err := d.Expr(e.TyApp.Expr)
		if err != nil {
			return nil, errors.WithMessage(err, "tyapp")
		}
		args, err := util.MapErr(e.TyApp.Args, d.Type)
		if err != nil {
			return nil, errors.WithMessage(err, "type argument of tyapp")
		}
		return &xir.TyApp{Expr: expr, Args: args}, nil
	}
}

func (d *Decoder) ifExpr(e If) (xir.Expr, error) {
	cond, err := d.Expr(e.Cond)
	if err != nil {
		return nil, errors.WithMessage(err, "condition of if")
	}
	then, err := d.Expr(e.Then)
	if err != nil {
		return nil, errors.WithMessage(err, "then branch")
	}
	els, err := d.Expr(e.Else)
	if err != nil {
		return nil, errors.WithMessage(err, "else branch")
	}
	ty, err := d.Type(e.Type)
	if err != nil {
		return nil, errors.WithMessage(err, "type of if")
	}
	return &xir.If{Cond: cond, Then: then, Else: els, Type: ty}, nil
}

func (d *Decoder) lam(e Lam) (xir.Expr, error) {
	params, err := util.MapErr(e.Params, d.Symbol)
	if err != nil {
		return nil, errors.WithMessage(err, "lambda parameter")
	}
	body, err := d.Expr(e.Body)
	if err != nil {
		return nil, errors.WithMessage(err, "lambda body")
	}
	var ret typing.Type
	if e.Return != nil {
		if ret, err = d.Type(*e.Return); err != nil {
			return nil, errors.WithMessage(err, "lambda return type")
		}
	}
	return &xir.Lam{Params: params, Body: body, Return: ret}, nil
}

func (d *Decoder) tyParam(p TyParam) (xir.TyParam, error) {
	kind, err := ParseKind(p.Kind)
	if err != nil {
		return xir.TyParam{}, err
	}
	v := typing.TyVar(p.Var)
	d.fresher.Observe(v)
	return xir.TyParam{Var: v, Kind: kind}, nil
}
