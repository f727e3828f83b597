package lisp

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/fuzzyforest/shallot-strings/parser/token"
)

// Errors returned by Compose.
var (
	ErrNoKinds           = errors.New("no kinds declared")
	ErrNoFallback        = errors.New("no fallback kind declared")
	ErrMultipleFallbacks = errors.New("more than one fallback kind declared")
	ErrFallbackNotLast   = errors.New("fallback kind must be declared last")
)

// Universe is the closed set of kinds a Value may have, in the order their
// parsers are tried.  A Universe is fixed once composed.
type Universe struct {
	kinds []Variant
	index map[Variant]int
}

// Compose declares the kinds of a Universe.  Token parsers are tried in the
// order given, so specific kinds must come before general ones.  The last
// kind must be the one fallback kind, which guarantees Parse always produces
// a Value.
func Compose(kinds ...Variant) (*Universe, error) {
	if len(kinds) == 0 {
		return nil, ErrNoKinds
	}
	u := &Universe{
		kinds: make([]Variant, 0, len(kinds)),
		index: make(map[Variant]int, len(kinds)),
	}
	names := make(map[string]bool, len(kinds))
	types := make(map[reflect.Type]string, len(kinds))
	var fallbacks []int
	for i, k := range kinds {
		if k == nil {
			return nil, fmt.Errorf("kind %d is nil", i)
		}
		name := k.Name()
		if name == "" {
			return nil, fmt.Errorf("kind %d has no name", i)
		}
		if names[name] {
			return nil, fmt.Errorf("kind declared twice: %s", name)
		}
		names[name] = true
		typ := k.atomType()
		if typ.Kind() == reflect.Interface {
			return nil, fmt.Errorf("kind %s: atom type %v is an interface", name, typ)
		}
		if other, ok := types[typ]; ok {
			return nil, fmt.Errorf("kinds %s and %s share atom type %v", other, name, typ)
		}
		types[typ] = name
		if k.Fallback() {
			fallbacks = append(fallbacks, i)
		}
		u.index[k] = i
		u.kinds = append(u.kinds, k)
	}
	switch {
	case len(fallbacks) == 0:
		return nil, ErrNoFallback
	case len(fallbacks) > 1:
		return nil, fmt.Errorf("%w: %s and %s", ErrMultipleFallbacks, kinds[fallbacks[0]].Name(), kinds[fallbacks[1]].Name())
	case fallbacks[0] != len(kinds)-1:
		i := fallbacks[0]
		return nil, fmt.Errorf("%w: %s is declared at position %d of %d", ErrFallbackNotLast, kinds[i].Name(), i+1, len(kinds))
	}
	return u, nil
}

// MustCompose is like Compose but panics if the declaration is invalid.
func MustCompose(kinds ...Variant) *Universe {
	u, err := Compose(kinds...)
	if err != nil {
		panic(err)
	}
	return u
}

// Parse tries each kind's parser against tok in declaration order and returns
// the first match.  Parse never fails because the last kind is a fallback.
func (u *Universe) Parse(tok *token.Token) Value {
	for _, k := range u.kinds {
		if v, ok := k.parseAtom(tok); ok {
			return v
		}
	}
	// unreachable for a Universe built by Compose
	panic("no kind accepted token " + tok.Text)
}

// Kinds returns the declared kinds in order.
func (u *Universe) Kinds() []Variant {
	kinds := make([]Variant, len(u.kinds))
	copy(kinds, u.kinds)
	return kinds
}

// Contains reports whether v is tagged with a kind declared in u.
func (u *Universe) Contains(v Value) bool {
	if v.kind == nil {
		return false
	}
	_, ok := u.index[v.kind]
	return ok
}

// Declares reports whether k is one of the kinds of u.
func (u *Universe) Declares(k Variant) bool {
	_, ok := u.index[k]
	return ok
}

// Tag returns the position of v's kind in the declaration, or -1 when v is
// not a member of u.
func (u *Universe) Tag(v Value) int {
	if v.kind == nil {
		return -1
	}
	i, ok := u.index[v.kind]
	if !ok {
		return -1
	}
	return i
}
