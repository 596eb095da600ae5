package exprast

import (
	"io"

	"github.com/exprast/exprast/ast"
)

// An Option to modify the behaviour of the Parser.
type Option func(p *Parser) error

// Trace the parse to "w".
func Trace(w io.Writer) Option {
	return func(p *Parser) error {
		p.trace = w
		return nil
	}
}

// Allocator routes node construction, and the release of nodes built by a failed parse, through
// alloc.
//
// ast.Counter can be used to check that a tree is fully released by ast.Destroy.
func Allocator(alloc ast.Allocator) Option {
	return func(p *Parser) error {
		p.alloc = alloc
		return nil
	}
}
