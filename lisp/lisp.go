package lisp

import (
	"reflect"
)

// Value is any datum the interpreter can hold.  Exactly one kind is active
// per Value and that kind determines the concrete type of the payload.
// Values are immutable and may be copied freely.
//
// The zero Value is invalid.  Values are only constructed through
// Kind.Widen or Universe.Parse.
type Value struct {
	kind Variant
	atom Atom
}

// IsValid returns false for the zero Value.
func (v Value) IsValid() bool {
	return v.kind != nil
}

// Kind returns the type-level name of the value's kind.
func (v Value) Kind() string {
	if v.kind == nil {
		return "invalid"
	}
	return v.kind.Name()
}

// Atom returns the payload of v through the Atom interface, whatever its
// kind.  Atom returns nil for the zero Value.
func (v Value) Atom() Atom {
	return v.atom
}

// Name returns the instance-level display name of the payload.
func (v Value) Name() string {
	if v.atom == nil {
		return "invalid"
	}
	return v.atom.Name()
}

func (v Value) String() string {
	if v.atom == nil {
		return "<invalid>"
	}
	return v.atom.String()
}

// Equal reports whether a and b have the same kind and equal payloads.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	if a.atom == nil || b.atom == nil {
		return a.atom == nil && b.atom == nil
	}
	if eq, ok := a.atom.(Equaler); ok {
		return eq.Equal(b.atom)
	}
	return reflect.DeepEqual(a.atom, b.atom)
}
