// Package fixture describes xir modules in YAML, so that the lowering pass can
// be driven without a front-end.
//
//	- name: m
//	  decls:
//	    - extern: {name: print, id: 1, type: {fn: [{con: i32}, {con: unit}]}}
//	    - let:
//	        symbol: {name: id, id: 2, type: {fn: [{con: i32}, {con: i32}]}}
//	        expr:
//	          lam:
//	            params: [{name: x, id: 3, type: {con: i32}}]
//	            body: {var: {name: x, id: 3, type: {con: i32}}}
package fixture

import (
	"io"
	"log/slog"
	"os"

	"github.com/cottand/monoc/internal/log"
	"github.com/cottand/monoc/typing"
	"github.com/cottand/monoc/xir"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Module struct {
	Name  string `yaml:"name"`
	Decls []Decl `yaml:"decls"`
}

// Decl sets exactly one of Extern or Let
type Decl struct {
	Extern *Symbol `yaml:"extern,omitempty"`
	Let    *Bind   `yaml:"let,omitempty"`
}

type Bind struct {
	Symbol Symbol `yaml:"symbol"`
	Expr   Expr   `yaml:"expr"`
}

type Symbol struct {
	Name string `yaml:"name"`
	ID   uint32 `yaml:"id"`
	Type Type   `yaml:"type"`
}

// Type sets exactly one of Con, Var, App or Fn.
// Fn is shorthand for an application of the function constructor.
type Type struct {
	Con  string  `yaml:"con,omitempty"`
	Kind string  `yaml:"kind,omitempty"`
	Var  *uint32 `yaml:"var,omitempty"`
	App  *Type   `yaml:"app,omitempty"`
	Args []Type  `yaml:"args,omitempty"`
	Fn   []Type  `yaml:"fn,omitempty"`
}

// Expr sets exactly one of its fields
type Expr struct {
	Unit  bool    `yaml:"unit,omitempty"`
	I32   *int32  `yaml:"i32,omitempty"`
	Bool  *bool   `yaml:"bool,omitempty"`
	Var   *Symbol `yaml:"var,omitempty"`
	If    *If     `yaml:"if,omitempty"`
	Let   *Let    `yaml:"let,omitempty"`
	Lam   *Lam    `yaml:"lam,omitempty"`
	App   *App    `yaml:"app,omitempty"`
	TyLam *TyLam  `yaml:"tylam,omitempty"`
	TyApp *TyApp  `yaml:"tyapp,omitempty"`
}

type If struct {
	Cond Expr `yaml:"cond"`
	Then Expr `yaml:"then"`
	Else Expr `yaml:"else"`
	Type Type `yaml:"type"`
}

type Let struct {
	Bind Bind `yaml:"bind"`
	Body Expr `yaml:"body"`
}

type Lam struct {
	Params []Symbol `yaml:"params"`
	Body   Expr     `yaml:"body"`
	Return *Type    `yaml:"return,omitempty"`
}

type App struct {
	Callee Expr   `yaml:"callee"`
	Args   []Expr `yaml:"args"`
}

type TyParam struct {
	Var  uint32 `yaml:"var"`
	Kind string `yaml:"kind,omitempty"`
}

type TyLam struct {
	Params []TyParam `yaml:"params"`
	Body   Expr      `yaml:"body"`
}

type TyApp struct {
	Expr Expr   `yaml:"expr"`
	Args []Type `yaml:"args"`
}

type Option func(*Decoder)

// WithFresher makes the Decoder report every type variable it reads to f, so
// that variables handed out by f afterwards do not collide with them
func WithFresher(f *typing.Fresher) Option {
	return func(d *Decoder) { d.fresher = f }
}

type Decoder struct {
	fresher *typing.Fresher
	*slog.Logger
}

func NewDecoder(opts ...Option) *Decoder {
	d := &Decoder{
		fresher: typing.DefaultFresher(),
		Logger:  log.DefaultLogger.With("section", "fixture"),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Decode reads a YAML list of modules from r
func (d *Decoder) Decode(r io.Reader) ([]xir.Module, error) {
	var modules []Module
	if err := yaml.NewDecoder(r).Decode(&modules); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "could not parse fixture")
	}
	res := make([]xir.Module, 0, len(modules))
	for i, m := range modules {
		converted, err := d.Module(m)
		if err != nil {
			return nil, errors.WithMessagef(err, "module %d (%q)", i, m.Name)
		}
		d.Debug("decoded module", "name", m.Name, "decls", len(m.Decls))
		res = append(res, converted)
	}
	return res, nil
}

// DecodeFile is Decode on the contents of the file at path
func (d *Decoder) DecodeFile(path string) ([]xir.Module, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "could not open fixture")
	}
	defer f.Close()
	modules, err := d.Decode(f)
	return modules, errors.WithMessage(err, path)
}

func (d *Decoder) Module(m Module) (xir.Module, error) {
	res := xir.NewModule(m.Name)
	for i, decl := range m.Decls {
		converted, err := d.decl(decl)
		if err != nil {
			return xir.Module{}, errors.WithMessagef(err, "decl %d", i)
		}
		res.AddDecl(converted)
	}
	return res, nil
}

func (d *Decoder) decl(decl Decl) (xir.Decl, error) {
	switch {
	case decl.Extern != nil && decl.Let != nil:
		return nil, errors.New("declaration is both extern and let")
	case decl.Extern != nil:
		sym, err := d.Symbol(*decl.Extern)
		if err != nil {
			return nil, errors.WithMessage(err, "extern")
		}
		return &xir.ExternDecl{Symbol: sym}, nil
	case decl.Let != nil:
		bind, err := d.bind(*decl.Let)
		if err != nil {
			return nil, errors.WithMessage(err, "let")
		}
		return &xir.LetDecl{Bind: bind}, nil
	default:
		return nil, errors.New("declaration must be extern or let")
	}
}

func (d *Decoder) bind(b Bind) (xir.Bind, error) {
	sym, err := d.Symbol(b.Symbol)
	if err != nil {
		return xir.Bind{}, err
	}
	expr, err := d.Expr(b.Expr)
	if err != nil {
		return xir.Bind{}, errors.WithMessagef(err, "bound to %s_%d", b.Symbol.Name, b.Symbol.ID)
	}
	return xir.Bind{Symbol: sym, Expr: expr}, nil
}

func (d *Decoder) Symbol(s Symbol) (xir.Symbol, error) {
	if s.Name == "" {
		return xir.Symbol{}, errors.Errorf("symbol %d has no name", s.ID)
	}
	ty, err := d.Type(s.Type)
	if err != nil {
		return xir.Symbol{}, errors.WithMessagef(err, "type of %s_%d", s.Name, s.ID)
	}
	return xir.NewSymbol(s.Name, s.ID, ty), nil
}
