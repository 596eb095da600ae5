package exprast

import (
	"github.com/exprast/exprast/ast"
	"github.com/exprast/exprast/lexer"
)

const expectedOperand = "number or sub-expression"

// folder holds the state of pass 1 over a reduced token sequence.
type folder struct {
	*parseContext
	tokens []lexer.Token
	// used marks operand tokens whose value has been moved into the tree.
	used []bool
}

// fold is pass 1. It left-folds "+" and "-" over tokens into a binary tree.
//
// Only interior tokens, 1 through len-2, are examined for operators, so a sequence wrapped in a
// single pair of parentheses folds as if the parentheses were absent. If no operator is found the
// sequence must hold a single operand, optionally wrapped in parentheses.
func (c *parseContext) fold(tokens []lexer.Token) (ast.Node, error) {
	c.tracef("fold %s", lexer.Format(tokens))
	f := &folder{parseContext: c, tokens: tokens, used: make([]bool, len(tokens))}
	if len(tokens) == 0 {
		return nil, ErrEmptyExpression
	}
	var root ast.Node
	for i := 1; i < len(tokens)-1; i++ {
		token := tokens[i]
		switch token.Type {
		case lexer.Plus, lexer.Minus:

		case lexer.Asterisk, lexer.Slash:
			return f.fail(root, &UnexpectedTokenError{Unexpected: token, Index: i, Expected: `"+" or "-"`})

		default:
			continue
		}
		left := root
		if left == nil {
			operand, err := f.operand(i - 1)
			if err != nil {
				return f.fail(nil, err)
			}
			left = operand
		}
		right, err := f.operand(i + 1)
		if err != nil {
			return f.fail(left, err)
		}
		if token.Type == lexer.Plus {
			root = ast.New(c.alloc, &ast.Add{Left: left, Right: right})
		} else {
			root = ast.New(c.alloc, &ast.Subtract{Left: left, Right: right})
		}
		c.tracef("fold %d %s", i, root)
	}
	if root == nil {
		return f.single()
	}
	// Tokens the fold never examined must not carry meaning.
	for i, token := range tokens {
		switch {
		case token.Operand() && !f.used[i]:
			return f.fail(root, &UnexpectedTokenError{Unexpected: token, Index: i, Expected: "operator"})
		case (i == 0 || i == len(tokens)-1) && operator(token):
			return f.fail(root, &UnexpectedTokenError{Unexpected: token, Index: i, Expected: expectedOperand})
		}
	}
	return root, nil
}

func operator(token lexer.Token) bool {
	switch token.Type {
	case lexer.Plus, lexer.Minus, lexer.Asterisk, lexer.Slash:
		return true
	}
	return false
}

// single handles a sequence without operators: one operand inside any number of enclosing
// parenthesis pairs.
func (f *folder) single() (ast.Node, error) {
	lo, hi := 0, len(f.tokens)
	for hi-lo >= 2 && f.tokens[lo].Type == lexer.LParen {
		closing, ok := findMatchingClose(f.tokens[:hi], lo)
		if !ok || closing != hi-1 {
			break
		}
		lo, hi = lo+1, hi-1
	}
	switch {
	case hi == lo:
		return f.fail(nil, ErrEmptyExpression)
	case hi-lo == 1:
		node, err := f.operand(lo)
		if err != nil {
			return f.fail(nil, err)
		}
		return node, nil
	case !f.tokens[lo].Operand():
		return f.fail(nil, &UnexpectedTokenError{Unexpected: f.tokens[lo], Index: lo, Expected: expectedOperand})
	default:
		return f.fail(nil, &UnexpectedTokenError{Unexpected: f.tokens[lo+1], Index: lo + 1, Expected: "end of expression"})
	}
}

// operand converts the token at i into a node, taking ownership of any sub-tree it carries.
func (f *folder) operand(i int) (ast.Node, error) {
	token := f.tokens[i]
	switch token.Type {
	case lexer.Number:
		f.used[i] = true
		return f.number(token.Value), nil
	case lexer.ASTRef:
		f.used[i] = true
		return token.Node, nil
	}
	return nil, &UnexpectedTokenError{Unexpected: token, Index: i, Expected: expectedOperand}
}

// fail releases the partial tree and every sub-tree not yet moved into it.
func (f *folder) fail(partial ast.Node, err error) (ast.Node, error) {
	if partial != nil {
		ast.Destroy(partial, f.alloc)
	}
	for i, token := range f.tokens {
		if token.Type == lexer.ASTRef && !f.used[i] {
			ast.Destroy(token.Node, f.alloc)
		}
	}
	return nil, err
}
