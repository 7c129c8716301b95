package xir

import (
	"context"
	"log/slog"

	"github.com/cottand/monoc/typing"
)

// slogExpr wraps an Expr as a slog.LogValuer to not render expression strings
// unless they definitely need to be logged
func slogExpr(expr Expr) slog.LogValuer     { return exprLogValuer{expr} }
func slogType(t typing.Type) slog.LogValuer { return typeLogValuer{t} }
func slogSymbol(s Symbol) slog.LogValuer    { return symbolLogValuer{s} }

type exprLogValuer struct{ Expr }
type typeLogValuer struct{ typing.Type }
type symbolLogValuer struct{ Symbol }

func (l exprLogValuer) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("str", ExprString(l.Expr)),
		slog.String("name", l.Describe()),
	)
}
func (l typeLogValuer) LogValue() slog.Value   { return slog.StringValue(l.Type.String()) }
func (l symbolLogValuer) LogValue() slog.Value { return slog.StringValue(l.Symbol.String()) }

// SlogHandler wraps underlying so that it lazily prints expression trees,
// types and symbols passed as attributes
func SlogHandler(underlying slog.Handler) slog.Handler {
	return &exprLogHandler{underlying: underlying}
}

type exprLogHandler struct {
	underlying slog.Handler
}

func wrapAttr(attr slog.Attr) slog.Attr {
	if attr.Value.Kind() != slog.KindAny {
		return attr
	}
	switch value := attr.Value.Any().(type) {
	case Expr:
		attr.Value = slog.AnyValue(slogExpr(value))
	case typing.Type:
		attr.Value = slog.AnyValue(slogType(value))
	case Symbol:
		attr.Value = slog.AnyValue(slogSymbol(value))
	}
	return attr
}

func (l *exprLogHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return l.underlying.Enabled(ctx, level)
}

func (l *exprLogHandler) Handle(ctx context.Context, record slog.Record) error {
	newRecord := slog.NewRecord(record.Time, record.Level, record.Message, record.PC)
	record.Attrs(func(attr slog.Attr) bool {
		newRecord.AddAttrs(wrapAttr(attr))
		return true
	})
	return l.underlying.Handle(ctx, newRecord)
}

func (l *exprLogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	wrapped := make([]slog.Attr, len(attrs))
	for i, attr := range attrs {
		wrapped[i] = wrapAttr(attr)
	}
	return SlogHandler(l.underlying.WithAttrs(wrapped))
}

func (l *exprLogHandler) WithGroup(name string) slog.Handler {
	return SlogHandler(l.underlying.WithGroup(name))
}
