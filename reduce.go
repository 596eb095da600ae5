package exprast

import (
	"github.com/exprast/exprast/ast"
	"github.com/exprast/exprast/lexer"
)

// reduce is pass 0. It copies tokens[start:end], collapsing each prefix "-" and its operand (a
// number or a parenthesised group) into a single ASTRef token holding a Negative node.
//
// Bare parenthesised groups are copied unchanged, but must balance within the range.
func (c *parseContext) reduce(tokens []lexer.Token, start, end int) (reduced []lexer.Token, err error) {
	c.tracef("reduce [%d:%d] %s", start, end, lexer.Format(tokens[start:end]))
	out := make([]lexer.Token, 0, end-start)
	defer func() {
		if err != nil {
			c.release(out)
		}
	}()
	depth := 0
	for i := start; i < end; i++ {
		token := tokens[i]
		switch token.Type {
		case lexer.Minus:
			if !prefix(tokens, start, i) {
				out = append(out, token)
				continue
			}
			if i+1 >= end {
				return nil, &UnexpectedTokenError{Unexpected: token, Index: i, Expected: `number or "(" after "-"`}
			}
			next := tokens[i+1]
			switch next.Type {
			case lexer.Number:
				body := c.number(next.Value)
				out = append(out, lexer.RefToken(ast.New(c.alloc, &ast.Negative{Body: body})))
				i++

			case lexer.LParen:
				closing, ok := findMatchingClose(tokens, i+1)
				if !ok || closing >= end {
					return nil, &UnbalancedParenError{Paren: next, Index: i + 1}
				}
				c.depth++
				body, err := c.parseRange(tokens, i+2, closing)
				c.depth--
				if err != nil {
					return nil, err
				}
				out = append(out, lexer.RefToken(ast.New(c.alloc, &ast.Negative{Body: body})))
				i = closing

			default:
				return nil, &UnexpectedTokenError{Unexpected: next, Index: i + 1, Expected: `number or "("`}
			}

		case lexer.LParen:
			if closing, ok := findMatchingClose(tokens, i); !ok || closing >= end {
				return nil, &UnbalancedParenError{Paren: token, Index: i}
			}
			depth++
			out = append(out, token)

		case lexer.RParen:
			depth--
			if depth < 0 {
				return nil, &UnbalancedParenError{Paren: token, Index: i}
			}
			out = append(out, token)

		case lexer.Number, lexer.Plus, lexer.Asterisk, lexer.Slash:
			out = append(out, token)

		default:
			return nil, &UnexpectedTokenError{Unexpected: token, Index: i}
		}
	}
	return out, nil
}

// prefix reports whether the "-" at i is in prefix position: first in the range, or following an
// operator or "(".
func prefix(tokens []lexer.Token, start, i int) bool {
	if i == start {
		return true
	}
	switch tokens[i-1].Type {
	case lexer.Plus, lexer.Minus, lexer.Asterisk, lexer.Slash, lexer.LParen:
		return true
	}
	return false
}
