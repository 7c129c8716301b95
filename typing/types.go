package typing

import (
	"fmt"
	"strings"
)

type ConTag uint8

const (
	ConCustom ConTag = iota
	ConI32
	ConBool
	ConUnit
	ConFunc
)

// TyCon is the identity of a type constructor, either built in or named by
// the user. It is comparable, so two TyCon are equal iff they name the same
// constructor.
type TyCon struct {
	Tag ConTag
	// Name is only set for ConCustom
	Name Name
}

var (
	I32  = TyCon{Tag: ConI32}
	Bool = TyCon{Tag: ConBool}
	Unit = TyCon{Tag: ConUnit}
	Func = TyCon{Tag: ConFunc}
)

func CustomCon(name string) TyCon {
	return TyCon{Tag: ConCustom, Name: Intern(name)}
}

func (c TyCon) IsBuiltin() bool { return c.Tag != ConCustom }

func (c TyCon) String() string {
	switch c.Tag {
	case ConI32:
		return "i32"
	case ConBool:
		return "bool"
	case ConUnit:
		return "()"
	case ConFunc:
		return "->"
	default:
		return c.Name.Value()
	}
}

// Type is a type term: a constructor at some Kind (*Con), an application of a
// type to arguments (*App) or a type variable (TyVar).
//
// Type trees are immutable once built, so subtrees are freely shared.
type Type interface {
	fmt.Stringer
	FreeTyVars() TyVarSet
	typeNode()
}

var (
	_ Type = (*Con)(nil)
	_ Type = (*App)(nil)
	_ Type = TyVar(0)
)

type Con struct {
	Con  TyCon
	Kind Kind
}

func NewCon(c TyCon, k Kind) *Con {
	return &Con{Con: c, Kind: k}
}

func (*Con) typeNode()            {}
func (*Con) FreeTyVars() TyVarSet { return nil }
func (t *Con) String() string     { return t.Con.String() + ":" + t.Kind.String() }

// App applies Head to Args. Function types are uncurried: a single App with a
// Func head carries every parameter followed by the return type.
type App struct {
	Head Type
	Args []Type
}

func NewApp(head Type, args ...Type) *App {
	return &App{Head: head, Args: args}
}

func (*App) typeNode() {}

func (t *App) FreeTyVars() TyVarSet {
	res := t.Head.FreeTyVars()
	for _, arg := range t.Args {
		res = res.Union(arg.FreeTyVars())
	}
	return res
}

// Constructor follows nested applications down to the head constructor.
// ok is false only for ill-formed applications headed by a variable.
func (t *App) Constructor() (con *Con, ok bool) {
	var head Type = t
	for {
		switch h := head.(type) {
		case *App:
			head = h.Head
		case *Con:
			return h, true
		default:
			return nil, false
		}
	}
}

func (t *App) String() string {
	args := make([]string, len(t.Args))
	for i, arg := range t.Args {
		args[i] = arg.String()
	}
	return fmt.Sprintf("App(%v, [%s])", t.Head, strings.Join(args, ", "))
}

// TyVar is a type variable. Identities are handed out by a Fresher and two
// variables are the same variable iff their identities are equal.
type TyVar uint32

func (TyVar) typeNode()              {}
func (v TyVar) FreeTyVars() TyVarSet { return TyVarSet{v} }
func (v TyVar) String() string       { return fmt.Sprintf("'a%d", uint32(v)) }

var (
	I32Type  = NewCon(I32, Star)
	BoolType = NewCon(Bool, Star)
	UnitType = NewCon(Unit, Star)
)

// NewFunc builds the uncurried function type taking all but the last of args
// and returning the last one
func NewFunc(args ...Type) *App {
	return NewApp(NewCon(Func, KindOfArity(len(args))), args...)
}

// Equal compares two types structurally
func Equal(a, b Type) bool {
	switch a := a.(type) {
	case *Con:
		b, ok := b.(*Con)
		return ok && a.Con == b.Con && a.Kind.Equal(b.Kind)
	case TyVar:
		b, ok := b.(TyVar)
		return ok && a == b
	case *App:
		b, ok := b.(*App)
		if !ok || len(a.Args) != len(b.Args) || !Equal(a.Head, b.Head) {
			return false
		}
		for i := range a.Args {
			if !Equal(a.Args[i], b.Args[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
