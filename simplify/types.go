package simplify

import (
	"github.com/cottand/monoc/failed"
	"github.com/cottand/monoc/monoir"
	"github.com/cottand/monoc/typing"
	"github.com/cottand/monoc/util"
)

// ResolveType lowers a fully solved type to its monomorphic equivalent.
//
// Only i32, bool and () at kind *, and uncurried applications of the function
// constructor over those, can be lowered. Type variables must have been
// solved by type inference: one surviving here is reported, never defaulted.
func ResolveType(ty typing.Type) (monoir.Type, error) {
	switch ty := ty.(type) {
	case *typing.App:
		return resolveAppType(ty)

	case *typing.Con:
		if _, isStar := ty.Kind.(typing.KStar); !isStar {
			return nil, failed.New(failed.NewUnsupportedType{Type: ty, Reason: "constructor is not fully applied"})
		}
		switch ty.Con.Tag {
		case typing.ConI32:
			return monoir.I32, nil
		case typing.ConBool:
			return monoir.Bool, nil
		case typing.ConUnit:
			return monoir.Unit, nil
		default:
			return nil, failed.New(failed.NewUnsupportedType{Type: ty})
		}

	case typing.TyVar:
		return nil, failed.New(failed.NewUnresolvedTypeVar{Var: ty})

	default:
		return nil, failed.New(failed.NewUnsupportedType{Type: ty})
	}
}

// resolveAppType lowers the function type App(->, [p1, ..., pn, ret]).
// Arguments are lowered before the head is looked at, and any failure among
// them fails the whole type.
func resolveAppType(ty *typing.App) (monoir.Type, error) {
	args, err := util.MapErr(ty.Args, ResolveType)
	if err != nil {
		return nil, err
	}
	head, ok := ty.Head.(*typing.Con)
	if !ok || head.Con != typing.Func {
		return nil, failed.New(failed.NewUnsupportedType{Type: ty, Reason: "only function types can be applied"})
	}
	if len(args) == 0 {
		return nil, failed.New(failed.NewMalformedFuncType{Type: ty})
	}
	last := len(args) - 1
	return &monoir.Function{Params: args[:last:last], Return: args[last]}, nil
}
