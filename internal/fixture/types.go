package fixture

import (
	"strings"

	"github.com/cottand/monoc/typing"
	"github.com/cottand/monoc/util"
	"github.com/pkg/errors"
)

func (d *Decoder) Type(t Type) (typing.Type, error) {
	set := 0
	for _, isSet := range []bool{t.Con != "", t.Var != nil, t.App != nil, t.Fn != nil} {
		if isSet {
			set++
		}
	}
	if set != 1 {
		return nil, errors.Errorf("type must set exactly one of con, var, app or fn, found %d", set)
	}

	switch {
	case t.Con != "":
		kind, err := ParseKind(t.Kind)
		if err != nil {
			return nil, errors.WithMessagef(err, "con %s", t.Con)
		}
		return typing.NewCon(tyCon(t.Con), kind), nil
	case t.Var != nil:
		v := typing.TyVar(*t.Var)
		d.fresher.Observe(v)
		return v, nil
	case t.App != nil:
		head, err := d.Type(*t.App)
		if err != nil {
			return nil, errors.WithMessage(err, "head of app")
		}
		args, err := util.MapErr(t.Args, d.Type)
		if err != nil {
			return nil, errors.WithMessagef(err, "arguments of app %v", head)
		}
		return typing.NewApp(head, args...), nil
	default:
		args, err := util.MapErr(t.Fn, d.Type)
		if err != nil {
			return nil, errors.WithMessage(err, "fn")
		}
		return typing.NewFunc(args...), nil
	}
}

func tyCon(name string) typing.TyCon {
	switch name {
	case "i32":
		return typing.I32
	case "bool":
		return typing.Bool
	case "unit", "()":
		return typing.Unit
	case "func", "->":
		return typing.Func
	default:
		return typing.CustomCon(name)
	}
}

// ParseKind reads kinds written the way typing.Kind prints them, like
// "(* -> *)", with optional parentheses. The empty string is *.
func ParseKind(s string) (typing.Kind, error) {
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return typing.Star, nil
	}
	k, rest, err := parseKind(s)
	if err != nil {
		return nil, err
	}
	if rest != "" {
		return nil, errors.Errorf("unexpected %q after kind", rest)
	}
	return k, nil
}

// parseKind parses the longest kind at the start of s, where -> associates
// to the right
func parseKind(s string) (k typing.Kind, rest string, err error) {
	switch {
	case strings.HasPrefix(s, "*"):
		k, rest = typing.Star, s[1:]
	case strings.HasPrefix(s, "("):
		k, rest, err = parseKind(s[1:])
		if err != nil {
			return nil, "", err
		}
		if !strings.HasPrefix(rest, ")") {
			return nil, "", errors.Errorf("missing ) in kind at %q", rest)
		}
		rest = rest[1:]
	default:
		return nil, "", errors.Errorf("invalid kind at %q", s)
	}

	if !strings.HasPrefix(rest, "->") {
		return k, rest, nil
	}
	result, rest, err := parseKind(rest[2:])
	if err != nil {
		return nil, "", err
	}
	return typing.KFun{Param: k, Result: result}, rest, nil
}
