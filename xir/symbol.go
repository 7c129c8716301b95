package xir

import (
	"fmt"

	"github.com/cottand/monoc/typing"
)

// Symbol is a term variable after renaming: ID is unique across the whole
// program, Name is kept for display only
type Symbol struct {
	Name typing.Name
	ID   uint32
	Type typing.Type
}

func NewSymbol(name string, id uint32, ty typing.Type) Symbol {
	return Symbol{Name: typing.Intern(name), ID: id, Type: ty}
}

// WithType returns a copy of s with the same name and identity
func (s Symbol) WithType(ty typing.Type) Symbol {
	s.Type = ty
	return s
}

func (s Symbol) String() string {
	return fmt.Sprintf("%s_%d: %v", s.Name.Value(), s.ID, s.Type)
}

// TyParam binds a type variable in a type abstraction
type TyParam struct {
	Var  typing.TyVar
	Kind typing.Kind
}

func (p TyParam) String() string { return fmt.Sprintf("%v: %v", p.Var, p.Kind) }
