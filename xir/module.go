package xir

// Module is the unit the type checker hands over: a name and its
// declarations, in source order
type Module struct {
	Name  string
	Decls []Decl
}

func NewModule(name string, decls ...Decl) Module {
	return Module{Name: name, Decls: decls}
}

func (m *Module) AddDecl(decl Decl) {
	m.Decls = append(m.Decls, decl)
}

// Decl is a top-level declaration: either *ExternDecl or *LetDecl
type Decl interface {
	declNode()
	String() string
}

var (
	_ Decl = (*ExternDecl)(nil)
	_ Decl = (*LetDecl)(nil)
)

// ExternDecl declares a symbol defined outside the module
type ExternDecl struct {
	Symbol Symbol
}

func (*ExternDecl) declNode()        {}
func (d *ExternDecl) String() string { return "extern " + d.Symbol.String() }

// LetDecl is a non-recursive top-level binding
type LetDecl struct {
	Bind Bind
}

func (*LetDecl) declNode()        {}
func (d *LetDecl) String() string { return "let " + d.Bind.Symbol.String() + " = " + ExprString(d.Bind.Expr) }

// Bind is a non-recursive binding of Expr to Symbol
type Bind struct {
	Symbol Symbol
	Expr   Expr
}
