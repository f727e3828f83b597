package lisp

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrMaxDepth is returned when evaluation nests deeper than Runtime.MaxDepth.
var ErrMaxDepth = errors.New("maximum evaluation depth exceeded")

// ArityError is returned when a function receives the wrong number of
// arguments.
type ArityError struct {
	Func string
	Want int
	Got  int
}

func (e *ArityError) Error() string {
	name := capitalize(e.Func)
	switch e.Want {
	case 0:
		return name + " needs no arguments"
	case 1:
		return name + " needs a single argument"
	default:
		return fmt.Sprintf("%s needs %d arguments", name, e.Want)
	}
}

// TypeError is returned when an argument is not of the kind a function
// requires.
type TypeError struct {
	Func  string
	Pos   int // 1-based argument position
	Arity int
	Want  string
	Got   string
}

func (e *TypeError) Error() string {
	if e.Arity == 1 {
		return fmt.Sprintf("Argument to %s must be %s", e.Func, article(e.Want))
	}
	return fmt.Sprintf("Argument %d to %s must be %s", e.Pos, e.Func, article(e.Want))
}

// UnboundError is returned when a symbol has no binding.
type UnboundError struct {
	Name string
}

func (e *UnboundError) Error() string {
	return "unbound symbol: " + e.Name
}

func capitalize(s string) string {
	c, n := utf8.DecodeRuneInString(s)
	if n == 0 {
		return s
	}
	return string(unicode.ToUpper(c)) + s[n:]
}

func article(noun string) string {
	if noun != "" && strings.ContainsRune("aeiou", rune(noun[0])) {
		return "an " + noun
	}
	return "a " + noun
}
