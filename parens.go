package exprast

import "github.com/exprast/exprast/lexer"

// findMatchingClose returns the index of the ")" matching the "(" at open.
//
// Nesting is tracked by depth, so "((1) + 2)" matches the outermost pair.
func findMatchingClose(tokens []lexer.Token, open int) (int, bool) {
	depth := 1
	for i := open + 1; i < len(tokens); i++ {
		switch tokens[i].Type {
		case lexer.LParen:
			depth++
		case lexer.RParen:
			depth--
		}
		if depth == 0 {
			return i, true
		}
	}
	return -1, false
}
