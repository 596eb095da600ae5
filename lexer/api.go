package lexer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/exprast/exprast/ast"
)

// TokenType identifies the kind of a Token.
type TokenType int

const (
	// EOF represents the end of the input.
	EOF TokenType = iota - 1
	// Number is an integer literal. Its value is in Token.Value.
	Number
	LParen
	RParen
	Plus
	Minus
	Asterisk
	Slash
	// ASTRef carries an already built sub-tree in Token.Node. The lexer never produces it.
	ASTRef
)

var symbols = map[TokenType]string{
	EOF:      "EOF",
	Number:   "Number",
	LParen:   "(",
	RParen:   ")",
	Plus:     "+",
	Minus:    "-",
	Asterisk: "*",
	Slash:    "/",
	ASTRef:   "AST",
}

func (t TokenType) String() string {
	if s, ok := symbols[t]; ok {
		return s
	}
	return "TokenType(" + strconv.Itoa(int(t)) + ")"
}

// A Token returned by a Lexer.
type Token struct {
	Type TokenType
	// Value of a Number token.
	Value int64
	// Node owned by an ASTRef token.
	Node ast.Node
}

// EOFToken creates a new EOF token.
func EOFToken() Token {
	return Token{Type: EOF}
}

// NumberToken creates a Number token with the given value.
func NumberToken(value int64) Token {
	return Token{Type: Number, Value: value}
}

// RefToken wraps an AST node in an ASTRef token.
func RefToken(node ast.Node) Token {
	return Token{Type: ASTRef, Node: node}
}

// EOF returns true if this Token is an EOF token.
func (t Token) EOF() bool {
	return t.Type == EOF
}

// Operand returns true if the token can stand as the operand of a binary operator.
func (t Token) Operand() bool {
	return t.Type == Number || t.Type == ASTRef
}

func (t Token) String() string {
	switch t.Type {
	case EOF:
		return "<EOF>"
	case Number:
		return strconv.FormatInt(t.Value, 10)
	case ASTRef:
		if t.Node == nil {
			return "<ast>"
		}
		return "<" + t.Node.String() + ">"
	}
	return t.Type.String()
}

func (t Token) GoString() string {
	switch t.Type {
	case Number:
		return fmt.Sprintf("Token{Number, %d}", t.Value)
	case ASTRef:
		return fmt.Sprintf("Token{AST, %s}", t.Node)
	}
	return fmt.Sprintf("Token{%s}", t.Type)
}

// Format renders a token sequence as space separated tokens.
func Format(tokens []Token) string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.String()
	}
	return strings.Join(out, " ")
}

// A Lexer returns tokens from a source.
type Lexer interface {
	// Next consumes and returns the next token.
	Next() (Token, error)
}

// ConsumeAll reads all tokens from a Lexer, including the trailing EOF token.
func ConsumeAll(lexer Lexer) ([]Token, error) {
	tokens := make([]Token, 0, 16)
	for {
		token, err := lexer.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
		if token.Type == EOF {
			return tokens, nil
		}
	}
}

// Tokenize scans text into a token sequence, without the trailing EOF token.
//
// The scan stops at the first unsupported character, in which case no tokens are returned.
func Tokenize(text string) ([]Token, error) {
	tokens, err := ConsumeAll(Lex(text))
	if err != nil {
		return nil, err
	}
	return tokens[:len(tokens)-1], nil
}

// Position of a character in the input.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
