// Package exprast parses integer arithmetic expressions into an abstract syntax tree.
//
// Parsing runs in three steps:
//
//   - The lexer turns text into a flat token sequence.
//   - Pass 0 collapses negated numbers and negated parenthesised groups into single tokens
//     that carry an already built sub-tree.
//   - Pass 1 left-folds "+" and "-" over what remains.
//
// For example:
//
//	node, err := exprast.Parse("1 + 2 - 3")
//	fmt.Println(node) // ((1 + 2) - 3)
//
// A "-" followed by a space is a binary operator; otherwise it starts a negative literal.
// "*" and "/" are tokenised but are not part of the grammar yet.
package exprast
