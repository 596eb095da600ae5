package ast

import (
	"strconv"
	"strings"

	"github.com/alecthomas/repr"
)

// Render a tree in fully parenthesised form.
//
// Binary operators render as "(<left> <op> <right>)", negation as "(-<body>)" and Main as
// "main() = <body>". Negation keeps its own parentheses so that Negative{5} and the literal
// -5 render differently.
func Render(n Node) string {
	w := &strings.Builder{}
	render(w, n)
	return w.String()
}

func render(w *strings.Builder, n Node) {
	switch n := n.(type) {
	case *Main:
		w.WriteString("main() = ")
		render(w, n.Body)

	case *Negative:
		w.WriteString("(-")
		render(w, n.Body)
		w.WriteString(")")

	case *Number:
		w.WriteString(strconv.FormatInt(n.Value, 10))

	case *Add:
		binary(w, n.Left, "+", n.Right)

	case *Subtract:
		binary(w, n.Left, "-", n.Right)

	case *Multiply:
		binary(w, n.Left, "*", n.Right)

	case *Divide:
		binary(w, n.Left, "/", n.Right)

	default:
		w.WriteString("?")
	}
}

func binary(w *strings.Builder, left Node, op string, right Node) {
	w.WriteString("(")
	render(w, left)
	w.WriteString(" " + op + " ")
	render(w, right)
	w.WriteString(")")
}

// Dump a tree as Go syntax.
func Dump(n Node) string {
	return repr.String(n, repr.Indent("  "), repr.OmitEmpty(false))
}
