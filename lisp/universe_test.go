package lisp

import (
	"errors"
	"strings"
	"testing"

	"github.com/fuzzyforest/shallot-strings/parser/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// keyword is an extension kind used to test composition.
type keyword string

func (keyword) Name() string { return "keyword" }

func (k keyword) String() string { return ":" + string(k) }

var keywordKind = NewKind[keyword]("keyword", func(tok *token.Token) (keyword, bool) {
	if len(tok.Text) < 2 || !strings.HasPrefix(tok.Text, ":") {
		return "", false
	}
	return keyword(tok.Text[1:]), true
})

// colon claims the same tokens as keyword.
type colon string

func (colon) Name() string { return "colon" }

func (c colon) String() string { return string(c) }

var colonKind = NewKind[colon]("colon", func(tok *token.Token) (colon, bool) {
	if !strings.HasPrefix(tok.Text, ":") {
		return "", false
	}
	return colon(tok.Text), true
})

func testUniverse(t *testing.T) *Universe {
	u, err := Compose(NumberKind, keywordKind, ListKind, BuiltinKind, LambdaKind, SymbolKind)
	require.NoError(t, err)
	return u
}

func atom(text string) *token.Token {
	return token.New(token.ATOM, text)
}

func TestComposeValidation(t *testing.T) {
	_, err := Compose()
	assert.Equal(t, ErrNoKinds, err)

	_, err = Compose(NumberKind, ListKind)
	assert.Equal(t, ErrNoFallback, err)

	_, err = Compose(SymbolKind, NumberKind)
	assert.True(t, errors.Is(err, ErrFallbackNotLast), "%v", err)

	other := NewFallbackKind[colon]("other-symbol", func(tok *token.Token) colon { return colon(tok.Text) })
	_, err = Compose(NumberKind, other, SymbolKind)
	assert.True(t, errors.Is(err, ErrMultipleFallbacks), "%v", err)

	_, err = Compose(NumberKind, NumberKind, SymbolKind)
	assert.EqualError(t, err, "kind declared twice: number")

	dup := NewKind[Number]("number2", nil)
	_, err = Compose(NumberKind, dup, SymbolKind)
	assert.Error(t, err)

	_, err = Compose(NewKind[Number]("", nil), SymbolKind)
	assert.Error(t, err)

	_, err = Compose(NewKind[Atom]("any", nil), SymbolKind)
	assert.Error(t, err)

	assert.Panics(t, func() { MustCompose(SymbolKind, NumberKind) })
}

func TestUniverseKinds(t *testing.T) {
	u := testUniverse(t)
	var names []string
	for _, k := range u.Kinds() {
		names = append(names, k.Name())
	}
	assert.Equal(t, []string{"number", "keyword", "list", "builtin", "lambda", "symbol"}, names)
	assert.True(t, u.Declares(keywordKind))
	assert.False(t, u.Declares(colonKind))
	assert.True(t, u.Contains(Int(1)))
	assert.False(t, u.Contains(colonKind.Widen(":x")))
	assert.False(t, u.Contains(Value{}))
	assert.Equal(t, 0, u.Tag(Int(1)))
	assert.Equal(t, 5, u.Tag(Sym("x")))
	assert.Equal(t, -1, u.Tag(colonKind.Widen(":x")))
}

func TestParseDispatch(t *testing.T) {
	u := testUniverse(t)
	for _, test := range []struct {
		text string
		kind string
		str  string
	}{
		{"42", "number", "42"},
		{"-7", "number", "-7"},
		{"3.25", "number", "3.25"},
		{"1e3", "number", "1000"},
		{":key", "keyword", ":key"},
		{":", "symbol", ":"},
		{"foo", "symbol", "foo"},
		{"inf", "symbol", "inf"},
		{"NaN", "symbol", "NaN"},
		{"0x10", "symbol", "0x10"},
		{"1_000", "symbol", "1_000"},
		{"-", "symbol", "-"},
		{"(", "symbol", "("},
		{"", "symbol", ""},
	} {
		v := u.Parse(atom(test.text))
		require.True(t, v.IsValid(), test.text)
		assert.Equal(t, test.kind, v.Kind(), test.text)
		assert.Equal(t, test.str, v.String(), test.text)
	}
}

func TestParsePrecedence(t *testing.T) {
	// the earlier declared kind wins when two kinds accept a token
	u, err := Compose(keywordKind, colonKind, SymbolKind)
	require.NoError(t, err)
	assert.Equal(t, "keyword", u.Parse(atom(":a")).Kind())

	u, err = Compose(colonKind, keywordKind, SymbolKind)
	require.NoError(t, err)
	assert.Equal(t, "colon", u.Parse(atom(":a")).Kind())
}

func TestParseDeterministic(t *testing.T) {
	u := testUniverse(t)
	for _, text := range []string{"1", ":x", "y"} {
		assert.True(t, Equal(u.Parse(atom(text)), u.Parse(atom(text))), text)
	}
}
