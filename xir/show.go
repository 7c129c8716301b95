package xir

import (
	"fmt"
	"strings"
)

func ExprString(expr Expr) string {
	ctx := newShowContext()
	ctx.showExprWalker(expr)
	return ctx.String()
}

// ModuleString renders every declaration of m on its own line
func ModuleString(m Module) string {
	sb := &strings.Builder{}
	sb.WriteString("module " + m.Name + "\n")
	for _, decl := range m.Decls {
		sb.WriteString(decl.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

type showContext struct {
	*strings.Builder
	indent    int
	indentStr string
}

func newShowContext() *showContext {
	return &showContext{
		Builder:   &strings.Builder{},
		indentStr: "  ",
		indent:    0,
	}
}

func (ctx *showContext) newline() {
	ctx.WriteString("\n" + strings.Repeat(ctx.indentStr, ctx.indent))
}

func symbolRef(s Symbol) string {
	return fmt.Sprintf("%s_%d", s.Name.Value(), s.ID)
}

func (ctx *showContext) showExprWalker(expr Expr) {
	if expr == nil {
		ctx.WriteString("nil")
		return
	}
	switch expr := expr.(type) {
	case UnitLit:
		ctx.WriteString("()")
	case I32Lit:
		ctx.WriteString(expr.String())
	case BoolLit:
		ctx.WriteString(expr.String())
	case *Var:
		ctx.WriteString(symbolRef(expr.Symbol))
	case *If:
		ctx.WriteString("if ")
		ctx.showExprWalker(expr.Cond)
		ctx.indent++
		ctx.newline()
		ctx.WriteString("then ")
		ctx.showExprWalker(expr.Then)
		ctx.newline()
		ctx.WriteString("else ")
		ctx.showExprWalker(expr.Else)
		ctx.indent--
		ctx.WriteString(fmt.Sprintf(" : %v", expr.Type))
	case *Let:
		ctx.WriteString("let " + expr.Bind.Symbol.String() + " = ")
		ctx.showExprWalker(expr.Bind.Expr)
		ctx.newline()
		ctx.showExprWalker(expr.Body)
	case *Lam:
		params := make([]string, len(expr.Params))
		for i, param := range expr.Params {
			params[i] = param.String()
		}
		ctx.WriteString("fn(" + strings.Join(params, ", ") + ")")
		if expr.Return != nil {
			ctx.WriteString(fmt.Sprintf(" -> %v", expr.Return))
		}
		ctx.WriteString(" {")
		ctx.indent++
		ctx.newline()
		ctx.showExprWalker(expr.Body)
		ctx.indent--
		ctx.newline()
		ctx.WriteString("}")
	case *App:
		ctx.showExprWalker(expr.Callee)
		ctx.WriteString("(")
		for i, arg := range expr.Args {
			if i > 0 {
				ctx.WriteString(", ")
			}
			ctx.showExprWalker(arg)
		}
		ctx.WriteString(")")
	case *TyLam:
		params := make([]string, len(expr.Params))
		for i, param := range expr.Params {
			params[i] = param.String()
		}
		ctx.WriteString("tfn(" + strings.Join(params, ", ") + ") ")
		ctx.showExprWalker(expr.Body)
	case *TyApp:
		ctx.showExprWalker(expr.Expr)
		args := make([]string, len(expr.Args))
		for i, arg := range expr.Args {
			args[i] = arg.String()
		}
		ctx.WriteString("[" + strings.Join(args, ", ") + "]")
	default:
		ctx.WriteString("(" + expr.Describe() + ")")
	}
}
