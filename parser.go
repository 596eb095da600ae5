package exprast

import (
	"io"

	"github.com/exprast/exprast/ast"
	"github.com/exprast/exprast/lexer"
)

// A Parser turns expression text into an AST.
//
// A Parser is immutable once built and may be shared between goroutines.
type Parser struct {
	trace io.Writer
	alloc ast.Allocator
}

// New builds a Parser.
func New(options ...Option) (*Parser, error) {
	p := &Parser{alloc: ast.Heap}
	for _, option := range options {
		if err := option(p); err != nil {
			return nil, err
		}
	}
	if p.alloc == nil {
		p.alloc = ast.Heap
	}
	return p, nil
}

// MustNew builds a Parser or panics.
func MustNew(options ...Option) *Parser {
	p, err := New(options...)
	if err != nil {
		panic(err)
	}
	return p
}

// Parse text into an AST using a Parser built from options.
func Parse(text string, options ...Option) (ast.Node, error) {
	p, err := New(options...)
	if err != nil {
		return nil, err
	}
	return p.ParseString(text)
}

// ParseString lexes and parses text.
//
// On error no tree is returned.
func (p *Parser) ParseString(text string) (ast.Node, error) {
	tokens, err := lexer.Tokenize(text)
	if err != nil {
		return nil, err
	}
	return p.ParseTokens(tokens)
}

// ParseTokens parses an already lexed token sequence.
//
// The sequence must not contain ASTRef or EOF tokens.
func (p *Parser) ParseTokens(tokens []lexer.Token) (ast.Node, error) {
	ctx := &parseContext{Parser: p}
	ctx.tracef("tokens %s", lexer.Format(tokens))
	return ctx.parseRange(tokens, 0, len(tokens))
}

// Context for a single parse.
type parseContext struct {
	*Parser
	depth int
}

// parseRange reduces then folds tokens[start:end].
func (c *parseContext) parseRange(tokens []lexer.Token, start, end int) (ast.Node, error) {
	reduced, err := c.reduce(tokens, start, end)
	if err != nil {
		return nil, err
	}
	return c.fold(reduced)
}

func (c *parseContext) number(value int64) ast.Node {
	return ast.New(c.alloc, &ast.Number{Value: value})
}

// release the nodes of any ASTRef tokens still holding one.
func (c *parseContext) release(tokens []lexer.Token) {
	for _, t := range tokens {
		if t.Type == lexer.ASTRef && t.Node != nil {
			ast.Destroy(t.Node, c.alloc)
		}
	}
}
