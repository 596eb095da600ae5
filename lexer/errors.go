package lexer

import "fmt"

// Error represents an error while lexing.
type Error struct {
	Message string
	Pos     Position
	// Char is the offending character, if any.
	Char rune
}

// Errorf creats a new Error at the given position.
func Errorf(pos Position, format string, args ...interface{}) *Error {
	return &Error{
		Message: fmt.Sprintf(format, args...),
		Pos:     pos,
	}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}
