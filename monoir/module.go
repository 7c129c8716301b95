package monoir

import (
	"fmt"

	"github.com/cottand/monoc/typing"
)

// Module is ready for code generation: every type in it is monomorphic
type Module struct {
	Name    string
	Externs []Symbol
	Funcs   []Bind
}

func NewModule(name string) *Module {
	return &Module{Name: name}
}

func (m *Module) AddExtern(sym Symbol) {
	m.Externs = append(m.Externs, sym)
}

func (m *Module) AddFunc(bind Bind) {
	m.Funcs = append(m.Funcs, bind)
}

// Symbol keeps the name and identity it had before lowering
type Symbol struct {
	Name typing.Name
	ID   uint32
	Type Type
}

func NewSymbol(name typing.Name, id uint32, ty Type) Symbol {
	return Symbol{Name: name, ID: id, Type: ty}
}

func (s Symbol) String() string {
	return fmt.Sprintf("%s_%d: %v", s.Name.Value(), s.ID, s.Type)
}

type Bind struct {
	Symbol Symbol
	Expr   Expr
}
