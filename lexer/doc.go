// Package lexer turns arithmetic expression text into a flat sequence of tokens.
//
// The primary interface is Lexer; Tokenize is the convenience entry point used by the parser.
package lexer
