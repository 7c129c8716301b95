package monoir

import (
	"fmt"

	"github.com/cottand/monoc/failed"
	"github.com/pkg/errors"
)

// Check re-validates a lowered module: every function binding must have the
// type of its symbol, and every expression in it must be well-typed.
//
// Lowering trusts the type checker, so this is only needed to catch bugs in
// the stages before it.
func Check(m *Module) error {
	for _, fn := range m.Funcs {
		t, err := TypeOf(fn.Expr)
		if err != nil {
			return errors.WithMessagef(err, "in %s", fn.Symbol)
		}
		if !Equal(t, fn.Symbol.Type) {
			return illTyped("%s is bound to an expression of type %v", fn.Symbol, t)
		}
	}
	return nil
}

func illTyped(format string, args ...any) error {
	return failed.New(failed.NewIllTyped{Reason: fmt.Sprintf(format, args...)})
}

// TypeOf computes the type of expr from the types of the symbols in it
func TypeOf(expr Expr) (Type, error) {
	switch expr := expr.(type) {
	case UnitLit:
		return Unit, nil
	case I32Lit:
		return I32, nil
	case BoolLit:
		return Bool, nil
	case *Var:
		return expr.Symbol.Type, nil
	case *If:
		cond, err := TypeOf(expr.Cond)
		if err != nil {
			return nil, err
		}
		if !Equal(cond, Bool) {
			return nil, illTyped("condition of if has type %v, not bool", cond)
		}
		for _, branch := range []Expr{expr.Then, expr.Else} {
			t, err := TypeOf(branch)
			if err != nil {
				return nil, err
			}
			if !Equal(t, expr.Type) {
				return nil, illTyped("branch of if has type %v but the if has type %v", t, expr.Type)
			}
		}
		return expr.Type, nil
	case *Let:
		bound, err := TypeOf(expr.Bind.Expr)
		if err != nil {
			return nil, err
		}
		if !Equal(bound, expr.Bind.Symbol.Type) {
			return nil, illTyped("%s is bound to an expression of type %v", expr.Bind.Symbol, bound)
		}
		return TypeOf(expr.Body)
	case *Lam:
		body, err := TypeOf(expr.Body)
		if err != nil {
			return nil, err
		}
		params := make([]Type, len(expr.Params))
		for i, param := range expr.Params {
			params[i] = param.Type
		}
		return &Function{Params: params, Return: body}, nil
	case *App:
		callee, err := TypeOf(expr.Callee)
		if err != nil {
			return nil, err
		}
		fn, ok := callee.(*Function)
		if !ok {
			return nil, illTyped("cannot call a value of type %v", callee)
		}
		if len(fn.Params) != len(expr.Args) {
			return nil, illTyped("function of type %v called with %d arguments", fn, len(expr.Args))
		}
		for i, arg := range expr.Args {
			t, err := TypeOf(arg)
			if err != nil {
				return nil, err
			}
			if !Equal(t, fn.Params[i]) {
				return nil, illTyped("argument %d has type %v, expected %v", i, t, fn.Params[i])
			}
		}
		return fn.Return, nil
	default:
		return nil, illTyped("unknown expression %T", expr)
	}
}
