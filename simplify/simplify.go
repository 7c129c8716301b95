package simplify

import (
	"fmt"
	"log/slog"

	"github.com/cottand/monoc/internal/log"
	"github.com/cottand/monoc/monoir"
	"github.com/cottand/monoc/pass"
	"github.com/cottand/monoc/xir"
	"github.com/pkg/errors"
)

// Simplify lowers type-checked xir modules to monoir.
//
// It holds no mutable state, so a single Simplify may lower several disjoint
// batches concurrently.
type Simplify struct {
	// verify re-checks every lowered module with monoir.Check
	verify bool

	*slog.Logger
}

var _ pass.Pass[[]xir.Module, []*monoir.Module] = (*Simplify)(nil)

type Option func(*Simplify)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Simplify) { s.Logger = logger }
}

// WithVerify makes the pass type-check its own output. Lowering otherwise
// trusts that the input was fully type-checked, including lambda return types
// which are dropped while lowering.
func WithVerify() Option {
	return func(s *Simplify) { s.verify = true }
}

func New(opts ...Option) *Simplify {
	s := &Simplify{
		Logger: log.DefaultLogger.With("section", "simplify"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run lowers modules in order. The first module that fails aborts the whole
// batch: either every module is returned, or none is.
func (s *Simplify) Run(modules []xir.Module) ([]*monoir.Module, error) {
	res := make([]*monoir.Module, 0, len(modules))
	for i := range modules {
		lowered, err := s.Module(&modules[i])
		if err != nil {
			s.Debug("aborting batch", "module", modules[i].Name, "err", err)
			return nil, err
		}
		res = append(res, lowered)
	}
	return res, nil
}

// Module lowers a single module. Each declaration's symbol is resolved before
// its body is looked at, so an unsupported signature is reported first.
func (s *Simplify) Module(m *xir.Module) (*monoir.Module, error) {
	logger := s.With("module", m.Name)
	res := monoir.NewModule(m.Name)

	for _, decl := range m.Decls {
		switch decl := decl.(type) {
		case *xir.ExternDecl:
			sym, err := ResolveSymbol(decl.Symbol)
			if err != nil {
				return nil, errors.WithMessagef(err, "module %q: extern %s", m.Name, symbolRef(decl.Symbol))
			}
			logger.Debug("lowered extern", "symbol", decl.Symbol, "to", sym.Type.String())
			res.AddExtern(sym)

		case *xir.LetDecl:
			bind, err := lowerBind(decl.Bind)
			if err != nil {
				return nil, errors.WithMessagef(err, "module %q: let %s", m.Name, symbolRef(decl.Bind.Symbol))
			}
			logger.Debug("lowered function", "symbol", decl.Bind.Symbol, "to", bind.Symbol.Type.String())
			res.AddFunc(bind)

		default:
			return nil, errors.Errorf("module %q: unexpected declaration %T", m.Name, decl)
		}
	}

	if s.verify {
		if err := monoir.Check(res); err != nil {
			return nil, errors.WithMessagef(err, "module %q", m.Name)
		}
	}
	return res, nil
}

func symbolRef(sym xir.Symbol) string {
	return fmt.Sprintf("%s_%d", sym.Name.Value(), sym.ID)
}

// ResolveSymbol keeps the name and identity of sym and lowers its type
func ResolveSymbol(sym xir.Symbol) (monoir.Symbol, error) {
	ty, err := ResolveType(sym.Type)
	if err != nil {
		return monoir.Symbol{}, err
	}
	return monoir.NewSymbol(sym.Name, sym.ID, ty), nil
}

func lowerBind(bind xir.Bind) (monoir.Bind, error) {
	sym, err := ResolveSymbol(bind.Symbol)
	if err != nil {
		return monoir.Bind{}, err
	}
	expr, err := lowerExpr(bind.Expr)
	if err != nil {
		return monoir.Bind{}, err
	}
	return monoir.Bind{Symbol: sym, Expr: expr}, nil
}
