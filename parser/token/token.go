package token

import "fmt"

// Token is a lexical unit produced by the reader.  Kinds parse atoms from
// the Text of a token.
type Token struct {
	Type   Type
	Text   string
	Source *Location
}

// New returns a token with no source location.
func New(typ Type, text string) *Token {
	return &Token{Type: typ, Text: text}
}

func (tok *Token) String() string {
	if tok.Source == nil {
		return fmt.Sprintf("%s %q", tok.Type, tok.Text)
	}
	return fmt.Sprintf("%s: %s %q", tok.Source, tok.Type, tok.Text)
}

type Type uint

// Type constants used by the reader.
const (
	INVALID Type = iota

	// Atomic expressions & literals
	ATOM
	STRING

	// Operators
	QUOTE

	// Delimiters
	PAREN_L
	PAREN_R

	numTokenTypes
)

func (typ Type) String() string {
	typeStrings := [numTokenTypes]string{
		INVALID: "invalid",
		ATOM:    "atom",
		STRING:  "string",
		QUOTE:   "'",
		PAREN_L: "(",
		PAREN_R: ")",
	}
	if typ >= numTokenTypes {
		return typeStrings[INVALID]
	}
	return typeStrings[typ]
}

type Location struct {
	File string
	Pos  int
	Line int // line number (starting at 1 when tracked)
	Col  int // line column number (starting at 1 when tracked)
}

// Locate returns the Location of byte offset pos in src.
func Locate(file string, src []byte, pos int) *Location {
	loc := &Location{File: file, Pos: pos, Line: 1, Col: 1}
	if pos > len(src) {
		pos = len(src)
	}
	for _, c := range src[:pos] {
		if c == '\n' {
			loc.Line++
			loc.Col = 1
			continue
		}
		loc.Col++
	}
	return loc
}

func (loc *Location) String() string {
	switch {
	case loc.Line == 0:
		return fmt.Sprintf("%s[%d]", loc.File, loc.Pos)
	case loc.Col == 0:
		return fmt.Sprintf("%s:%d", loc.File, loc.Line)
	default:
		return fmt.Sprintf("%s:%d:%d", loc.File, loc.Line, loc.Col)
	}
}
