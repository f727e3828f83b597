package lisp

import (
	"fmt"
	"reflect"

	"github.com/fuzzyforest/shallot-strings/parser/token"
)

// Atom is the instance side of the contract every value kind satisfies.  The
// type side, a kind's name and its token parser, lives in a Kind.
type Atom interface {
	// Name returns the display name of the atom's kind.  It is normally the
	// same as the name of the Kind that produced it but wrapper atoms may
	// report something more specific.
	Name() string

	// String renders the atom for the REPL.  Any styling it applies is
	// cosmetic and has no bearing on equality or conversion.
	String() string
}

// Equaler may be implemented by atoms that need something other than deep
// equality when compared with Equal.
type Equaler interface {
	Equal(other Atom) bool
}

// ParseFunc attempts to construct an atom from a token.  A false second value
// means the token is not of the kind; it is never an error.
type ParseFunc[T Atom] func(tok *token.Token) (T, bool)

// Variant is the type-erased view of a Kind used when composing a Universe.
// Values of Variant are always *Kind[T] for some T.
type Variant interface {
	// Name returns the type-level display name of the kind.
	Name() string

	// Fallback reports whether the kind parses every token.
	Fallback() bool

	parseAtom(tok *token.Token) (Value, bool)
	atomType() reflect.Type
}

// Kind describes a concrete atom type T.  A Kind is the tag of every Value
// produced by its Widen method and the only way to get a T back out of a
// Value.
type Kind[T Atom] struct {
	name     string
	parse    ParseFunc[T]
	fallback bool
}

var _ Variant = (*Kind[Symbol])(nil)

// NewKind returns a Kind named name whose atoms are read from tokens using
// parse.  A nil parse behaves like NoParse.
func NewKind[T Atom](name string, parse ParseFunc[T]) *Kind[T] {
	if parse == nil {
		parse = NoParse[T]
	}
	return &Kind[T]{name: name, parse: parse}
}

// NewFallbackKind returns a Kind whose parse function must accept every
// token.  A Universe requires exactly one fallback kind, declared last.
func NewFallbackKind[T Atom](name string, parse func(tok *token.Token) T) *Kind[T] {
	return &Kind[T]{
		name:     name,
		parse:    func(tok *token.Token) (T, bool) { return parse(tok), true },
		fallback: true,
	}
}

// NoParse is a ParseFunc for kinds that never appear as a single token, like
// lists and functions.
func NoParse[T Atom](*token.Token) (T, bool) {
	var zero T
	return zero, false
}

// Name implements Variant.
func (k *Kind[T]) Name() string {
	return k.name
}

// Fallback implements Variant.
func (k *Kind[T]) Fallback() bool {
	return k.fallback
}

// Parse runs the kind's parse function on tok.
func (k *Kind[T]) Parse(tok *token.Token) (T, bool) {
	return k.parse(tok)
}

// Widen returns a Value tagged with k that holds x.
func (k *Kind[T]) Widen(x T) Value {
	return Value{kind: k, atom: x}
}

// Narrow returns the T held by v if, and only if, v is tagged with k.  The
// payload is returned as stored, without copying.
func (k *Kind[T]) Narrow(v Value) (T, bool) {
	if v.kind != Variant(k) {
		var zero T
		return zero, false
	}
	x, ok := v.atom.(T)
	return x, ok
}

// MustNarrow is like Narrow but panics if v is not tagged with k.  It is only
// meant for tests and for values whose kind has already been checked.
func (k *Kind[T]) MustNarrow(v Value) T {
	x, ok := k.Narrow(v)
	if !ok {
		panic(fmt.Sprintf("value of kind %s is not a %s", v.Kind(), k.name))
	}
	return x
}

func (k *Kind[T]) parseAtom(tok *token.Token) (Value, bool) {
	x, ok := k.parse(tok)
	if !ok {
		return Value{}, false
	}
	return k.Widen(x), true
}

func (k *Kind[T]) atomType() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
