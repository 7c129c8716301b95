package simplify

import (
	"testing"

	"github.com/cottand/monoc/failed"
	"github.com/cottand/monoc/monoir"
	"github.com/cottand/monoc/typing"
	"github.com/cottand/monoc/xir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	i32   = typing.I32Type
	bool_ = typing.BoolType
	unit  = typing.UnitType
	fn    = typing.NewFunc
)

func TestResolveBaseTypes(t *testing.T) {
	testCases := []struct {
		name     string
		input    typing.Type
		expected monoir.Type
	}{
		{name: "i32", input: i32, expected: monoir.I32},
		{name: "bool", input: bool_, expected: monoir.Bool},
		{name: "unit", input: unit, expected: monoir.Unit},
		{name: "fresh constructor node", input: typing.NewCon(typing.I32, typing.Star), expected: monoir.I32},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for range 2 {
				res, err := ResolveType(tc.input)
				require.NoError(t, err)
				assert.Equal(t, tc.expected, res)
			}
		})
	}
}

func TestResolveFunctionArity(t *testing.T) {
	testCases := []struct {
		name     string
		args     []typing.Type
		expected *monoir.Function
	}{
		{
			name:     "thunk",
			args:     []typing.Type{unit},
			expected: &monoir.Function{Params: []monoir.Type{}, Return: monoir.Unit},
		},
		{
			name:     "unary",
			args:     []typing.Type{i32, bool_},
			expected: &monoir.Function{Params: []monoir.Type{monoir.I32}, Return: monoir.Bool},
		},
		{
			name: "higher order",
			args: []typing.Type{fn(i32, i32), bool_, fn(unit, i32)},
			expected: &monoir.Function{
				Params: []monoir.Type{
					&monoir.Function{Params: []monoir.Type{monoir.I32}, Return: monoir.I32},
					monoir.Bool,
				},
				Return: &monoir.Function{Params: []monoir.Type{monoir.Unit}, Return: monoir.I32},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := ResolveType(fn(tc.args...))
			require.NoError(t, err)
			resFn, ok := res.(*monoir.Function)
			require.True(t, ok, "expected a function type, got %v", res)
			assert.Len(t, resFn.Params, len(tc.args)-1)
			assert.True(t, monoir.Equal(tc.expected, res), "expected %v, got %v", tc.expected, res)
		})
	}
}

func TestResolveTypeErrors(t *testing.T) {
	custom := typing.NewCon(typing.CustomCon("Maybe"), typing.KindOfArity(1))

	testCases := []struct {
		name     string
		input    typing.Type
		code     failed.ErrCode
		messages []string
	}{
		{
			name:     "bare variable",
			input:    typing.TyVar(3),
			code:     failed.UnresolvedTypeVar,
			messages: []string{"unresolved type variable", "'a3"},
		},
		{
			name:     "custom constructor",
			input:    typing.NewCon(typing.CustomCon("String"), typing.Star),
			code:     failed.UnsupportedType,
			messages: []string{"not supported", "String:*"},
		},
		{
			name:     "built-in at a higher kind",
			input:    typing.NewCon(typing.I32, typing.KindOfArity(1)),
			code:     failed.UnsupportedType,
			messages: []string{"not supported", "i32:(* -> *)"},
		},
		{
			name:     "unapplied function constructor",
			input:    typing.NewCon(typing.Func, typing.KindOfArity(2)),
			code:     failed.UnsupportedType,
			messages: []string{"->"},
		},
		{
			name:     "function with no return type",
			input:    typing.NewApp(typing.NewCon(typing.Func, typing.Star)),
			code:     failed.MalformedFuncType,
			messages: []string{"function with no return type"},
		},
		{
			name:     "application of a custom constructor",
			input:    typing.NewApp(custom, i32),
			code:     failed.UnsupportedType,
			messages: []string{"Maybe", "only function types"},
		},
		{
			name:     "variable in a parameter",
			input:    fn(i32, typing.TyVar(1), bool_),
			code:     failed.UnresolvedTypeVar,
			messages: []string{"'a1"},
		},
		{
			name:     "custom constructor as return type",
			input:    fn(i32, typing.NewApp(custom, i32)),
			code:     failed.UnsupportedType,
			messages: []string{"Maybe"},
		},
		{
			name:     "curried function type",
			input:    typing.NewApp(fn(i32, i32), i32),
			code:     failed.UnsupportedType,
			messages: []string{"only function types"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := ResolveType(tc.input)
			assert.Nil(t, res)
			require.Error(t, err)
			assert.Equal(t, tc.code, failed.CodeOf(err))
			for _, msg := range tc.messages {
				assert.Contains(t, err.Error(), msg)
			}
		})
	}
}

func TestExternAndSimpleFunction(t *testing.T) {
	x := xir.NewSymbol("x", 3, i32)
	input := xir.NewModule("m",
		&xir.ExternDecl{Symbol: xir.NewSymbol("print", 1, fn(i32, unit))},
		&xir.LetDecl{Bind: xir.Bind{
			Symbol: xir.NewSymbol("id", 2, fn(i32, i32)),
			Expr: &xir.Lam{
				Params: []xir.Symbol{x},
				Body:   &xir.Var{Symbol: x},
				Return: i32,
			},
		}},
	)

	res, err := New().Run([]xir.Module{input})
	require.NoError(t, err)
	require.Len(t, res, 1)
	m := res[0]

	assert.Equal(t, "m", m.Name)
	require.Len(t, m.Externs, 1)
	assert.Equal(t, "print", m.Externs[0].Name.Value())
	assert.Equal(t, uint32(1), m.Externs[0].ID)
	assert.True(t, monoir.Equal(&monoir.Function{Params: []monoir.Type{monoir.I32}, Return: monoir.Unit}, m.Externs[0].Type))

	require.Len(t, m.Funcs, 1)
	id := m.Funcs[0]
	assert.Equal(t, "id", id.Symbol.Name.Value())
	assert.True(t, monoir.Equal(&monoir.Function{Params: []monoir.Type{monoir.I32}, Return: monoir.I32}, id.Symbol.Type))

	lam, ok := id.Expr.(*monoir.Lam)
	require.True(t, ok)
	require.Len(t, lam.Params, 1)
	assert.Equal(t, monoir.NewSymbol(x.Name, 3, monoir.I32), lam.Params[0])
	body, ok := lam.Body.(*monoir.Var)
	require.True(t, ok)
	assert.Equal(t, monoir.NewSymbol(x.Name, 3, monoir.I32), body.Symbol)

	assert.Equal(t, `module m
extern print_1: fn(i32) -> ()
let id_2: fn(i32) -> i32 = fn(x_3: i32) {
  x_3
}
`, monoir.ModuleString(m))
}

func TestUnresolvedVariableFailsBatch(t *testing.T) {
	good := xir.NewModule("good",
		&xir.LetDecl{Bind: xir.Bind{Symbol: xir.NewSymbol("one", 1, i32), Expr: xir.I32Lit(1)}},
	)
	bad := xir.NewModule("bad",
		&xir.LetDecl{Bind: xir.Bind{Symbol: xir.NewSymbol("what", 2, typing.TyVar(8)), Expr: xir.UnitLit{}}},
	)

	for name, batch := range map[string][]xir.Module{
		"bad first": {bad, good},
		"bad last":  {good, good, bad},
	} {
		t.Run(name, func(t *testing.T) {
			res, err := New().Run(batch)
			assert.Nil(t, res)
			require.Error(t, err)
			assert.Equal(t, failed.UnresolvedTypeVar, failed.CodeOf(err))
			assert.Contains(t, err.Error(), `module "bad": let what_2`)

			var unresolved failed.NewUnresolvedTypeVar
			require.ErrorAs(t, err, &unresolved)
			assert.Equal(t, typing.TyVar(8), unresolved.Var)
		})
	}
}

func TestMalformedFunctionType(t *testing.T) {
	input := xir.NewModule("m",
		&xir.ExternDecl{Symbol: xir.NewSymbol("f", 1, typing.NewApp(typing.NewCon(typing.Func, typing.KindOfArity(0))))},
	)

	_, err := New().Run([]xir.Module{input})
	require.Error(t, err)
	assert.Equal(t, failed.MalformedFuncType, failed.CodeOf(err))
	assert.Contains(t, err.Error(), "function with no return type")
	assert.Contains(t, err.Error(), "extern f_1")
}

func TestSignatureCheckedBeforeBody(t *testing.T) {
	input := xir.NewModule("m",
		&xir.LetDecl{Bind: xir.Bind{
			Symbol: xir.NewSymbol("f", 1, typing.TyVar(1)),
			Expr:   &xir.TyApp{Expr: xir.UnitLit{}, Args: []typing.Type{i32}},
		}},
	)

	_, err := New().Run([]xir.Module{input})
	assert.Equal(t, failed.UnresolvedTypeVar, failed.CodeOf(err))
}

func TestEmptyBatch(t *testing.T) {
	res, err := New().Run(nil)
	assert.NoError(t, err)
	assert.Empty(t, res)
}

func TestModulesKeepOrder(t *testing.T) {
	names := []string{"c", "a", "b"}
	var batch []xir.Module
	for _, name := range names {
		batch = append(batch, xir.NewModule(name))
	}

	res, err := New().Run(batch)
	require.NoError(t, err)
	require.Len(t, res, 3)
	for i, name := range names {
		assert.Equal(t, name, res[i].Name)
		assert.Empty(t, res[i].Externs)
		assert.Empty(t, res[i].Funcs)
	}
}
