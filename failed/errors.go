package failed

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/cottand/monoc/typing"
	"github.com/cottand/monoc/xir"
	"github.com/pkg/errors"
)

// enableDebugErrorPrinting makes errors include the frame that raised them when printed
const enableDebugErrorPrinting bool = false
const enableDebugFullStacktrace bool = false

type ErrCode int

const (
	None ErrCode = iota
	UnsupportedType
	UnresolvedTypeVar
	MalformedFuncType
	UnsupportedExpr
	IllTyped
)

func (c ErrCode) String() string {
	switch c {
	case UnsupportedType:
		return "unsupported type"
	case UnresolvedTypeVar:
		return "unresolved type variable"
	case MalformedFuncType:
		return "malformed function type"
	case UnsupportedExpr:
		return "unsupported expression"
	case IllTyped:
		return "ill-typed"
	default:
		return "unclassified"
	}
}

// CompileError is an error raised while lowering.
// Construct them with New so that they remember where they were raised.
type CompileError interface {
	Error() string
	Code() ErrCode

	withStack([]byte) CompileError
	getStack() []byte
}

func FormatWithCode(e CompileError) string {
	if enableDebugErrorPrinting && e.getStack() != nil {
		stack := string(e.getStack())
		if !enableDebugFullStacktrace {
			stack = strings.Split(stack, "\n")[6]
		}
		return fmt.Sprintf("%s:(E%03d) %s", stack, e.Code(), e.Error())
	}
	return fmt.Sprintf("(E%03d) %s", e.Code(), e.Error())
}

func New[E CompileError](err E) CompileError {
	return err.withStack(debug.Stack())
}

// CodeOf returns the code of the first CompileError wrapped by err, or None
func CodeOf(err error) ErrCode {
	var compileErr CompileError
	if errors.As(err, &compileErr) {
		return compileErr.Code()
	}
	return None
}

type Unclassified struct {
	From  error
	stack []byte
}

func (e Unclassified) Error() string {
	return fmt.Sprintf("unclassified error: %v", e.From)
}
func (e Unclassified) Unwrap() error    { return e.From }
func (e Unclassified) Code() ErrCode    { return None }
func (e Unclassified) getStack() []byte { return e.stack }
func (e Unclassified) withStack(stack []byte) CompileError {
	e.stack = stack
	return e
}

// NewUnsupportedType is raised for types outside of i32, bool, () and
// functions over those: custom constructors, built-ins at the wrong kind, or
// applications of anything but the function constructor
type NewUnsupportedType struct {
	Type typing.Type
	// Reason may be ""
	Reason string
	stack  []byte
}

func (e NewUnsupportedType) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("type not supported: %v", e.Type)
	}
	return fmt.Sprintf("type not supported: %v: %s", e.Type, e.Reason)
}
func (e NewUnsupportedType) Code() ErrCode    { return UnsupportedType }
func (e NewUnsupportedType) getStack() []byte { return e.stack }
func (e NewUnsupportedType) withStack(stack []byte) CompileError {
	e.stack = stack
	return e
}

// NewUnresolvedTypeVar means type inference left a variable unsolved, which
// is a bug upstream rather than a user error
type NewUnresolvedTypeVar struct {
	Var   typing.TyVar
	stack []byte
}

func (e NewUnresolvedTypeVar) Error() string {
	return fmt.Sprintf("unresolved type variable %v: all types must be solved before lowering", e.Var)
}
func (e NewUnresolvedTypeVar) Code() ErrCode    { return UnresolvedTypeVar }
func (e NewUnresolvedTypeVar) getStack() []byte { return e.stack }
func (e NewUnresolvedTypeVar) withStack(stack []byte) CompileError {
	e.stack = stack
	return e
}

// NewMalformedFuncType is a function type application without any argument,
// so without a return type
type NewMalformedFuncType struct {
	Type  typing.Type
	stack []byte
}

func (e NewMalformedFuncType) Error() string {
	return fmt.Sprintf("function with no return type found: %v", e.Type)
}
func (e NewMalformedFuncType) Code() ErrCode    { return MalformedFuncType }
func (e NewMalformedFuncType) getStack() []byte { return e.stack }
func (e NewMalformedFuncType) withStack(stack []byte) CompileError {
	e.stack = stack
	return e
}

type NewUnsupportedExpr struct {
	Expr  xir.Expr
	stack []byte
}

func (e NewUnsupportedExpr) Error() string {
	return fmt.Sprintf("expression not supported: %s %s", e.Expr.Describe(), xir.ExprString(e.Expr))
}
func (e NewUnsupportedExpr) Code() ErrCode    { return UnsupportedExpr }
func (e NewUnsupportedExpr) getStack() []byte { return e.stack }
func (e NewUnsupportedExpr) withStack(stack []byte) CompileError {
	e.stack = stack
	return e
}

// NewIllTyped is only raised when re-validating already lowered code
type NewIllTyped struct {
	Reason string
	stack  []byte
}

func (e NewIllTyped) Error() string    { return "ill-typed lowered code: " + e.Reason }
func (e NewIllTyped) Code() ErrCode    { return IllTyped }
func (e NewIllTyped) getStack() []byte { return e.stack }
func (e NewIllTyped) withStack(stack []byte) CompileError {
	e.stack = stack
	return e
}
