package lexer

import (
	"errors"
	"strconv"
	"unicode/utf8"

	plexer "github.com/alecthomas/participle/v2/lexer"
)

// Rules are tried in order. A "-" is binary only when a literal space follows it; any other "-"
// starts a negative literal, even with no digits after it.
var definition = plexer.MustSimple([]plexer.SimpleRule{
	{Name: "Minus", Pattern: `- `},
	{Name: "Number", Pattern: `\d+|-\d*`},
	{Name: "Punct", Pattern: `[+*/()]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var (
	rules          = definition.Symbols()
	minusRule      = rules["Minus"]
	numberRule     = rules["Number"]
	punctRule      = rules["Punct"]
	whitespaceRule = rules["Whitespace"]
)

var punct = map[string]TokenType{
	"+": Plus,
	"*": Asterisk,
	"/": Slash,
	"(": LParen,
	")": RParen,
}

type textLexer struct {
	input string
	lex   plexer.Lexer
	err   error
}

var _ Lexer = &textLexer{}

// Lex returns a Lexer over an arithmetic expression.
//
// Errors are sticky: once Next fails every subsequent call returns the same error.
func Lex(text string) Lexer {
	l := &textLexer{input: text}
	lex, err := definition.LexString("", text)
	if err != nil {
		l.err = err
	}
	l.lex = lex
	return l
}

func (l *textLexer) Next() (Token, error) {
	if l.err != nil {
		return Token{}, l.err
	}
	for {
		t, err := l.lex.Next()
		if err != nil {
			l.err = l.unsupported(err)
			return Token{}, l.err
		}
		switch t.Type {
		case plexer.EOF:
			return EOFToken(), nil

		case whitespaceRule:
			continue

		case minusRule:
			return Token{Type: Minus}, nil

		case numberRule:
			text := t.Value
			if text == "-" {
				text = "-0"
			}
			value, err := strconv.ParseInt(text, 10, 64)
			if err != nil {
				l.err = Errorf(position(t.Pos), "integer literal out of range")
				return Token{}, l.err
			}
			return NumberToken(value), nil

		case punctRule:
			return Token{Type: punct[t.Value]}, nil
		}
		l.err = Errorf(position(t.Pos), "unexpected token %q", t.Value)
		return Token{}, l.err
	}
}

// unsupported converts a scan failure into an Error naming the character that no rule matched.
func (l *textLexer) unsupported(err error) error {
	var perr *plexer.Error
	if !errors.As(err, &perr) || perr.Pos.Offset >= len(l.input) {
		return err
	}
	r, _ := utf8.DecodeRuneInString(l.input[perr.Pos.Offset:])
	lerr := Errorf(position(perr.Pos), "character %q not supported", r)
	lerr.Char = r
	return lerr
}

func position(pos plexer.Position) Position {
	return Position{Offset: pos.Offset, Line: pos.Line, Column: pos.Column}
}
