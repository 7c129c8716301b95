package monoir

import (
	"fmt"
	"strings"
)

// Type is one of the closed set of monomorphic types: a BaseType or a
// *Function
type Type interface {
	fmt.Stringer
	typeNode()
}

var (
	_ Type = BaseType(0)
	_ Type = (*Function)(nil)
)

type BaseType int8

const (
	Unit BaseType = iota
	Bool
	I32
)

func (BaseType) typeNode() {}

func (t BaseType) String() string {
	switch t {
	case Unit:
		return "()"
	case Bool:
		return "bool"
	case I32:
		return "i32"
	default:
		return "invalid"
	}
}

// Function is an uncurried function type
type Function struct {
	Params []Type
	Return Type
}

func (*Function) typeNode() {}

func (t *Function) String() string {
	params := make([]string, len(t.Params))
	for i, param := range t.Params {
		params[i] = param.String()
	}
	return "fn(" + strings.Join(params, ", ") + ") -> " + t.Return.String()
}

func Equal(a, b Type) bool {
	switch a := a.(type) {
	case BaseType:
		b, ok := b.(BaseType)
		return ok && a == b
	case *Function:
		b, ok := b.(*Function)
		if !ok || len(a.Params) != len(b.Params) || !Equal(a.Return, b.Return) {
			return false
		}
		for i := range a.Params {
			if !Equal(a.Params[i], b.Params[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
