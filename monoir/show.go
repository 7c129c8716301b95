package monoir

import (
	"fmt"
	"strings"
)

func ModuleString(m *Module) string {
	sb := &strings.Builder{}
	sb.WriteString("module " + m.Name + "\n")
	for _, ext := range m.Externs {
		sb.WriteString("extern " + ext.String() + "\n")
	}
	for _, fn := range m.Funcs {
		sb.WriteString("let " + fn.Symbol.String() + " = " + ExprString(fn.Expr) + "\n")
	}
	return sb.String()
}

func ExprString(expr Expr) string {
	sb := &strings.Builder{}
	showExprWalker(sb, expr, 0)
	return sb.String()
}

func showExprWalker(sb *strings.Builder, expr Expr, indent int) {
	newline := func() { sb.WriteString("\n" + strings.Repeat("  ", indent)) }
	switch expr := expr.(type) {
	case nil:
		sb.WriteString("nil")
	case UnitLit:
		sb.WriteString("()")
	case I32Lit:
		sb.WriteString(expr.String())
	case BoolLit:
		sb.WriteString(expr.String())
	case *Var:
		sb.WriteString(fmt.Sprintf("%s_%d", expr.Symbol.Name.Value(), expr.Symbol.ID))
	case *If:
		sb.WriteString("if ")
		showExprWalker(sb, expr.Cond, indent)
		indent++
		newline()
		sb.WriteString("then ")
		showExprWalker(sb, expr.Then, indent)
		newline()
		sb.WriteString("else ")
		showExprWalker(sb, expr.Else, indent)
		sb.WriteString(" : " + expr.Type.String())
	case *Let:
		sb.WriteString("let " + expr.Bind.Symbol.String() + " = ")
		showExprWalker(sb, expr.Bind.Expr, indent)
		newline()
		showExprWalker(sb, expr.Body, indent)
	case *Lam:
		params := make([]string, len(expr.Params))
		for i, param := range expr.Params {
			params[i] = param.String()
		}
		sb.WriteString("fn(" + strings.Join(params, ", ") + ") {")
		indent++
		newline()
		showExprWalker(sb, expr.Body, indent)
		indent--
		newline()
		sb.WriteString("}")
	case *App:
		showExprWalker(sb, expr.Callee, indent)
		sb.WriteString("(")
		for i, arg := range expr.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			showExprWalker(sb, arg, indent)
		}
		sb.WriteString(")")
	default:
		sb.WriteString("(" + expr.Describe() + ")")
	}
}
