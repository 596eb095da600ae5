package exprast_test

import (
	"errors"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/alecthomas/repr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exprast/exprast"
	"github.com/exprast/exprast/ast"
	"github.com/exprast/exprast/lexer"
)

func num(v int64) *ast.Number         { return &ast.Number{Value: v} }
func add(l, r ast.Node) *ast.Add      { return &ast.Add{Left: l, Right: r} }
func sub(l, r ast.Node) *ast.Subtract { return &ast.Subtract{Left: l, Right: r} }
func neg(body ast.Node) *ast.Negative { return &ast.Negative{Body: body} }

func mustParse(t *testing.T, text string) ast.Node {
	t.Helper()
	node, err := exprast.Parse(text)
	require.NoError(t, err, text)
	return node
}

func TestParseLiteral(t *testing.T) {
	for _, n := range []int64{0, 7, 42, 1234567, 9223372036854775807} {
		text := strconv.FormatInt(n, 10)
		require.Equal(t, num(n), mustParse(t, text))
		require.Equal(t, num(-n), mustParse(t, "-"+text))
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		expected ast.Node
		rendered string
	}{
		{"1 + 2", add(num(1), num(2)), "(1 + 2)"},
		{"1 - 2", sub(num(1), num(2)), "(1 - 2)"},
		{"1 + 2 - 3", sub(add(num(1), num(2)), num(3)), "((1 + 2) - 3)"},
		{"1 - 2 - 3 - 4", sub(sub(sub(num(1), num(2)), num(3)), num(4)), "(((1 - 2) - 3) - 4)"},
		{"-1 + -2", add(num(-1), num(-2)), "(-1 + -2)"},
		{"- 5", neg(num(5)), "(-5)"},
		{"- -5", neg(num(-5)), "(--5)"},
		{"1 + - 5", add(num(1), neg(num(5))), "(1 + (-5))"},
		{"- (1 + 2)", neg(add(num(1), num(2))), "(-(1 + 2))"},
		{"- (1 + 2) - 3", sub(neg(add(num(1), num(2))), num(3)), "((-(1 + 2)) - 3)"},
		{"1 - - (2 - - 3)", sub(num(1), neg(sub(num(2), neg(num(3))))), "(1 - (-(2 - (-3))))"},
		{"- (- (1))", neg(neg(num(1))), "(-(-1))"},
		{"(1 + 2)", add(num(1), num(2)), "(1 + 2)"},
		{"((1 + 2))", add(num(1), num(2)), "(1 + 2)"},
		{"(1 + 2) + 3", add(add(num(1), num(2)), num(3)), "((1 + 2) + 3)"},
		{"(7)", num(7), "7"},
		{" 10\t+\n20 ", add(num(10), num(20)), "(10 + 20)"},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			actual := mustParse(t, test.input)
			require.Equal(t, test.expected, actual, repr.String(actual))
			require.Equal(t, test.rendered, ast.Render(actual))
		})
	}
}

func TestRenderMain(t *testing.T) {
	node := mustParse(t, "1 + 2")
	require.Equal(t, "main() = (1 + 2)", ast.Render(&ast.Main{Body: node}))
}

// A "-" directly before "(" lexes as the literal 0, which then has no operator.
func TestMinusParenQuirk(t *testing.T) {
	_, err := exprast.Parse("-(1 + 2)")
	var uerr *exprast.UnexpectedTokenError
	require.True(t, errors.As(err, &uerr), "%v", err)
	require.Equal(t, lexer.NumberToken(0), uerr.Unexpected)
	require.Equal(t, 0, uerr.Index)
	require.EqualError(t, err, `token 0: unexpected token "0" (expected operator)`)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input string
		err   string
	}{
		{"(1 + 2", `token 0: unbalanced "(" (no matching ")")`},
		{"1 + 2)", `token 3: unbalanced ")" (no matching "(")`},
		{"- (1 + 2", `token 1: unbalanced "(" (no matching ")")`},
		{"(- (1 + 2)", `token 0: unbalanced "(" (no matching ")")`},
		{"1 & 2", `1:3: character '&' not supported`},
		{"2 * 3", `token 1: unexpected token "*" (expected "+" or "-")`},
		{"1 + 6 / 3", `token 3: unexpected token "/" (expected "+" or "-")`},
		{"1 + + 2", `token 2: unexpected token "+" (expected number or sub-expression)`},
		{"- + 1", `token 1: unexpected token "+" (expected number or "(")`},
		{"1 + - ", `token 2: unexpected token "-" (expected number or "(" after "-")`},
		{"1 -5", `token 1: unexpected token "-5" (expected end of expression)`},
		{"+ 1", `token 0: unexpected token "+" (expected number or sub-expression)`},
		{"1 + 2 3", `token 3: unexpected token "3" (expected operator)`},
		{"1 + (2 + 3)", `token 2: unexpected token "(" (expected number or sub-expression)`},
		{"", "empty expression"},
		{"()", "empty expression"},
		{"- ()", "empty expression"},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			node, err := exprast.Parse(test.input)
			require.Nil(t, node)
			require.EqualError(t, err, test.err)
		})
	}
}

func TestDestroyReleasesParsedTree(t *testing.T) {
	counter := &ast.Counter{}
	node, err := exprast.Parse("- (1 + 2) - 3 + - 4", exprast.Allocator(counter))
	require.NoError(t, err)
	require.Equal(t, "(((-(1 + 2)) - 3) + (-4))", node.String())
	require.Equal(t, 9, ast.Count(node))
	require.Equal(t, 9, counter.Live())
	require.Equal(t, 9, counter.Allocs())

	ast.Destroy(node, counter)
	require.Equal(t, 0, counter.Live())
	require.Equal(t, 9, counter.Releases())
	require.Equal(t, 0, counter.Unknown())
}

func TestFailedParseReleasesNodes(t *testing.T) {
	for _, input := range []string{
		"- 5 + 1 2",
		"- 5 - (1",
		"- (- 5 3)",
		"- (1 + 2) - - 3 * 4",
		"1 + - 2 +",
		"- 1 - - 2 - - (3 + +)",
	} {
		t.Run(input, func(t *testing.T) {
			counter := &ast.Counter{}
			node, err := exprast.Parse(input, exprast.Allocator(counter))
			require.Error(t, err)
			require.Nil(t, node)
			require.NotZero(t, counter.Allocs())
			require.Equal(t, 0, counter.Live())
			require.Equal(t, 0, counter.Unknown())
		})
	}
}

func TestTrace(t *testing.T) {
	w := &strings.Builder{}
	_, err := exprast.Parse("- (1 + 2) - 3", exprast.Trace(w))
	require.NoError(t, err)
	require.Equal(t, strings.TrimLeft(`
tokens - ( 1 + 2 ) - 3
reduce [0:8] - ( 1 + 2 ) - 3
  reduce [2:5] 1 + 2
  fold 1 + 2
  fold 1 (1 + 2)
fold <(-(1 + 2))> - 3
fold 1 ((-(1 + 2)) - 3)
`, "\n"), w.String())
}

func TestParseTokens(t *testing.T) {
	parser := exprast.MustNew()
	node, err := parser.ParseTokens([]lexer.Token{
		lexer.NumberToken(1), {Type: lexer.Minus}, {Type: lexer.Minus}, lexer.NumberToken(2),
	})
	require.NoError(t, err)
	require.Equal(t, sub(num(1), neg(num(2))), node)

	_, err = parser.ParseTokens([]lexer.Token{lexer.NumberToken(1), lexer.EOFToken()})
	require.EqualError(t, err, `token 1: unexpected token "<EOF>"`)
}

func TestParserIsSafeForConcurrentUse(t *testing.T) {
	parser := exprast.MustNew()
	wg := sync.WaitGroup{}
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			text := strconv.Itoa(i) + " + - (" + strconv.Itoa(i) + " - 1)"
			node, err := parser.ParseString(text)
			assert.NoError(t, err)
			assert.Equal(t, add(num(int64(i)), neg(sub(num(int64(i)), num(1)))), node)
		}(i)
	}
	wg.Wait()
}

func BenchmarkParse(b *testing.B) {
	input := strings.Repeat("1 + - (2 - 3) - -4 + ", 100) + "5"
	parser := exprast.MustNew()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = parser.ParseString(input)
	}
}
