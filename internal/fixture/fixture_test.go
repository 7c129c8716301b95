package fixture

import (
	"strings"
	"testing"

	"github.com/cottand/monoc/typing"
	"github.com/cottand/monoc/xir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeFile(t *testing.T) {
	res, err := NewDecoder().DecodeFile("testdata/extern_id.yaml")
	require.NoError(t, err)

	x := xir.NewSymbol("x", 3, typing.I32Type)
	expected := []xir.Module{xir.NewModule("m",
		&xir.ExternDecl{Symbol: xir.NewSymbol("print", 1, typing.NewFunc(typing.I32Type, typing.UnitType))},
		&xir.LetDecl{Bind: xir.Bind{
			Symbol: xir.NewSymbol("id", 2, typing.NewFunc(typing.I32Type, typing.I32Type)),
			Expr: &xir.Lam{
				Params: []xir.Symbol{x},
				Body:   &xir.Var{Symbol: x},
				Return: typing.I32Type,
			},
		}},
	)}
	assert.Equal(t, expected, res)
}

func TestDecodeEveryFixture(t *testing.T) {
	for _, name := range []string{"extern_id", "unresolved", "malformed", "everything"} {
		t.Run(name, func(t *testing.T) {
			res, err := NewDecoder().DecodeFile("testdata/" + name + ".yaml")
			require.NoError(t, err)
			assert.NotEmpty(t, res)
		})
	}
}

func TestDecodeTypes(t *testing.T) {
	testCases := []struct {
		input    string
		expected typing.Type
	}{
		{input: "{con: bool}", expected: typing.BoolType},
		{input: "{con: ()}", expected: typing.UnitType},
		{input: "{con: Maybe, kind: '* -> *'}", expected: typing.NewCon(typing.CustomCon("Maybe"), typing.KindOfArity(1))},
		{input: "{var: 4}", expected: typing.TyVar(4)},
		{input: "{fn: []}", expected: typing.NewApp(typing.NewCon(typing.Func, typing.Star))},
		{
			input: "{app: {con: Maybe, kind: '(* -> *)'}, args: [{con: i32}]}",
			expected: typing.NewApp(
				typing.NewCon(typing.CustomCon("Maybe"), typing.KindOfArity(1)),
				typing.I32Type,
			),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			doc := "- name: m\n  decls:\n    - extern: {name: s, id: 1, type: " + tc.input + "}\n"
			res, err := NewDecoder().Decode(strings.NewReader(doc))
			require.NoError(t, err)
			require.Len(t, res, 1)
			require.Len(t, res[0].Decls, 1)
			extern, ok := res[0].Decls[0].(*xir.ExternDecl)
			require.True(t, ok)
			assert.True(t, typing.Equal(tc.expected, extern.Symbol.Type), "expected %v, got %v", tc.expected, extern.Symbol.Type)
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		messages []string
	}{
		{
			name:     "not yaml",
			input:    "- name: [",
			messages: []string{"could not parse fixture"},
		},
		{
			name:     "empty declaration",
			input:    "- name: m\n  decls:\n    - {}\n",
			messages: []string{`module 0 ("m")`, "decl 0", "must be extern or let"},
		},
		{
			name:     "type with two variants",
			input:    "- name: m\n  decls:\n    - extern: {name: s, id: 1, type: {con: i32, var: 1}}\n",
			messages: []string{"extern", "type of s_1", "found 2"},
		},
		{
			name:     "bad kind",
			input:    "- name: m\n  decls:\n    - extern: {name: s, id: 1, type: {con: T, kind: '* ->'}}\n",
			messages: []string{"con T", "invalid kind"},
		},
		{
			name:     "nameless symbol",
			input:    "- name: m\n  decls:\n    - extern: {id: 7, type: {con: i32}}\n",
			messages: []string{"symbol 7 has no name"},
		},
		{
			name: "expression without variant",
			input: `- name: m
  decls:
    - let:
        symbol: {name: v, id: 1, type: {con: i32}}
        expr: {}
`,
			messages: []string{"bound to v_1", "found 0"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := NewDecoder().Decode(strings.NewReader(tc.input))
			assert.Nil(t, res)
			require.Error(t, err)
			for _, msg := range tc.messages {
				assert.Contains(t, err.Error(), msg)
			}
		})
	}
}

func TestDecodeEmpty(t *testing.T) {
	res, err := NewDecoder().Decode(strings.NewReader(""))
	assert.NoError(t, err)
	assert.Empty(t, res)
}

func TestDecoderObservesTypeVariables(t *testing.T) {
	fresher := typing.NewFresher()
	doc := `- name: m
  decls:
    - let:
        symbol: {name: f, id: 1, type: {var: 3}}
        expr:
          tylam:
            params: [{var: 41}]
            body: {unit: true}
`
	res, err := NewDecoder(WithFresher(fresher)).Decode(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, res, 1)

	assert.Equal(t, typing.TyVar(42), fresher.Fresh())
}

func TestParseKind(t *testing.T) {
	testCases := []struct {
		input    string
		expected typing.Kind
	}{
		{input: "", expected: typing.Star},
		{input: "*", expected: typing.Star},
		{input: "* -> *", expected: typing.KindOfArity(1)},
		{input: "(* -> *)", expected: typing.KindOfArity(1)},
		{input: "* -> * -> *", expected: typing.KindOfArity(2)},
		{input: "(* -> *) -> *", expected: typing.KFun{Param: typing.KindOfArity(1), Result: typing.Star}},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			res, err := ParseKind(tc.input)
			require.NoError(t, err)
			assert.True(t, tc.expected.Equal(res), "expected %v, got %v", tc.expected, res)
		})
	}

	for _, bad := range []string{"->", "(*", "**", "* -> (* -> *"} {
		_, err := ParseKind(bad)
		assert.Error(t, err, bad)
	}
}
