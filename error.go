package exprast

import (
	"fmt"

	"github.com/exprast/exprast/lexer"
)

// Error represents an error while parsing a token sequence.
//
// Lexing failures are returned unmodified as *lexer.Error.
type Error interface {
	error
	// Unadorned message.
	Message() string
}

// ErrEmptyExpression is returned when there is nothing to parse.
var ErrEmptyExpression Error = &parseError{Msg: "empty expression"}

// UnexpectedTokenError is returned when a token appears where the parser cannot use it.
type UnexpectedTokenError struct {
	Unexpected lexer.Token
	// Index of the token in the sequence being parsed.
	Index    int
	Expected string
}

func (u *UnexpectedTokenError) Error() string {
	return formatError(u.Index, u.Message())
}

func (u *UnexpectedTokenError) Message() string { // nolint: golint
	var expected string
	if u.Expected != "" {
		expected = fmt.Sprintf(" (expected %s)", u.Expected)
	}
	return fmt.Sprintf("unexpected token %q%s", u.Unexpected, expected)
}

// UnbalancedParenError is returned when a parenthesis has no partner within the range being parsed.
type UnbalancedParenError struct {
	Paren lexer.Token
	Index int
}

func (u *UnbalancedParenError) Error() string {
	return formatError(u.Index, u.Message())
}

func (u *UnbalancedParenError) Message() string { // nolint: golint
	if u.Paren.Type == lexer.RParen {
		return `unbalanced ")" (no matching "(")`
	}
	return `unbalanced "(" (no matching ")")`
}

type parseError struct {
	Msg string
}

func (p *parseError) Error() string   { return p.Msg }
func (p *parseError) Message() string { return p.Msg }

func formatError(index int, message string) string {
	return fmt.Sprintf("token %d: %s", index, message)
}
