// Package ast defines the expression tree produced by the parser.
//
// Every non-leaf node exclusively owns its children. There is no sharing and there are no parent
// links, so a tree is released with a single post-order Destroy.
package ast

// Node is implemented by every tree node. The set of nodes is closed.
type Node interface {
	String() string
	node()
}

// Main wraps a whole expression for rendering as "main() = <body>".
//
// The parser never produces it.
type Main struct {
	Body Node
}

// Negative is the unary negation of Body.
type Negative struct {
	Body Node
}

// Number is an integer literal.
type Number struct {
	Value int64
}

type Add struct {
	Left  Node
	Right Node
}

type Subtract struct {
	Left  Node
	Right Node
}

// Multiply is reserved; the parser does not fold "*".
type Multiply struct {
	Left  Node
	Right Node
}

// Divide is reserved; the parser does not fold "/".
type Divide struct {
	Left  Node
	Right Node
}

func (*Main) node()     {}
func (*Negative) node() {}
func (*Number) node()   {}
func (*Add) node()      {}
func (*Subtract) node() {}
func (*Multiply) node() {}
func (*Divide) node()   {}

func (n *Main) String() string     { return Render(n) }
func (n *Negative) String() string { return Render(n) }
func (n *Number) String() string   { return Render(n) }
func (n *Add) String() string      { return Render(n) }
func (n *Subtract) String() string { return Render(n) }
func (n *Multiply) String() string { return Render(n) }
func (n *Divide) String() string   { return Render(n) }

// Children of a node, left to right.
func Children(n Node) []Node {
	switch n := n.(type) {
	case *Main:
		return []Node{n.Body}
	case *Negative:
		return []Node{n.Body}
	case *Add:
		return []Node{n.Left, n.Right}
	case *Subtract:
		return []Node{n.Left, n.Right}
	case *Multiply:
		return []Node{n.Left, n.Right}
	case *Divide:
		return []Node{n.Left, n.Right}
	}
	return nil
}

// Count the nodes in a tree.
func Count(n Node) int {
	count := 0
	_ = Visit(n, func(n Node, next func() error) error {
		count++
		return next()
	})
	return count
}
