package libstring

import (
	"errors"
	"testing"

	"github.com/fuzzyforest/shallot-strings/lisp"
	"github.com/fuzzyforest/shallot-strings/parser/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEnv(t *testing.T) *lisp.Env {
	env := lisp.NewEnv(nil)
	require.NoError(t, LoadPackage(env))
	return env
}

func call(t *testing.T, env *lisp.Env, name string, args ...lisp.Value) (lisp.Value, error) {
	fun, err := env.Get(name)
	require.NoError(t, err)
	return env.Apply(fun, args)
}

func stringCells(t *testing.T, v lisp.Value) []string {
	lis, ok := lisp.ListKind.Narrow(v)
	require.True(t, ok, "not a list: %v", v.Kind())
	var s []string
	for _, c := range lis.Cells() {
		x, ok := StringKind.Narrow(c)
		require.True(t, ok, "not a string: %v", c.Kind())
		s = append(s, string(x))
	}
	return s
}

func TestParseString(t *testing.T) {
	for _, test := range []struct {
		text string
		ok   bool
		want String
	}{
		{`"abc"`, true, "abc"},
		{`""`, true, ""},
		{`"a\"b"`, true, `a"b`},
		{`"tab\there"`, true, "tab\there"},
		{`"bad \q escape"`, true, `bad \q escape`},
		{`"a\nb"`, true, "a\nb"},
		{`"a\nb\q"`, true, "a\nb\\q"},
		{`"\q\t\\"`, true, "\\q\t\\"},
		{`"\x41\u00e9"`, true, `\x41\u00e9`},
		{`"back\\slash"`, true, `back\slash`},
		{`"trailing\"`, true, `trailing\`},
		{`"`, false, ""},
		{`abc`, false, ""},
		{`"abc`, false, ""},
		{`123`, false, ""},
	} {
		s, ok := StringKind.Parse(token.New(token.STRING, test.text))
		if assert.Equal(t, test.ok, ok, test.text) && ok {
			assert.Equal(t, test.want, s, test.text)
		}
	}
}

func TestStringRender(t *testing.T) {
	assert.Equal(t, "\x1b[3;31m\"hi there\"\x1b[0m", New("hi there").String())
	assert.Equal(t, "string", New("x").Name())
	assert.Equal(t, "string", StringKind.Name())
}

func TestStringConversion(t *testing.T) {
	for _, s := range []String{"", "abc", "ünïcödé", "two words"} {
		x, ok := StringKind.Narrow(StringKind.Widen(s))
		if assert.True(t, ok) {
			assert.Equal(t, s, x)
		}
	}
	for _, v := range []lisp.Value{lisp.Int(1), lisp.Sym("abc"), lisp.Nil()} {
		_, ok := StringKind.Narrow(v)
		assert.False(t, ok, v.Kind())
	}
}

func TestSplit(t *testing.T) {
	env := testEnv(t)
	for _, test := range []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"   \t\n ", nil},
		{"a b  c", []string{"a", "b", "c"}},
		{"  lead and trail  ", []string{"lead", "and", "trail"}},
		{"no break em", []string{"no", "break", "em"}},
		{"one", []string{"one"}},
	} {
		v, err := call(t, env, "split", New(test.in))
		require.NoError(t, err, test.in)
		assert.Equal(t, test.want, stringCells(t, v), test.in)
	}
}

func TestSplitErrors(t *testing.T) {
	env := testEnv(t)

	_, err := call(t, env, "split")
	var arity *lisp.ArityError
	if assert.True(t, errors.As(err, &arity)) {
		assert.Equal(t, "split", arity.Func)
	}
	assert.EqualError(t, err, "Split needs a single argument")

	_, err = call(t, env, "split", New("a"), New("b"))
	assert.EqualError(t, err, "Split needs a single argument")

	_, err = call(t, env, "split", lisp.Int(3))
	var typ *lisp.TypeError
	if assert.True(t, errors.As(err, &typ)) {
		assert.Equal(t, "string", typ.Want)
		assert.Equal(t, "number", typ.Got)
	}
	assert.EqualError(t, err, "Argument to split must be a string")
}

func TestUpper(t *testing.T) {
	env := testEnv(t)
	for _, test := range []struct {
		in   string
		want string
	}{
		{"MixedCase", "MIXEDCASE"},
		{"", ""},
		{"straße", "STRASSE"},
		{"ǆ", "Ǆ"},
		{"already UP", "ALREADY UP"},
	} {
		v, err := call(t, env, "upper", New(test.in))
		require.NoError(t, err)
		s, ok := StringKind.Narrow(v)
		require.True(t, ok)
		assert.Equal(t, String(test.want), s, test.in)

		again, err := call(t, env, "upper", v)
		require.NoError(t, err)
		assert.True(t, lisp.Equal(v, again), "upper is not idempotent for %q", test.in)
	}
}

func TestUpperErrors(t *testing.T) {
	env := testEnv(t)

	_, err := call(t, env, "upper")
	assert.EqualError(t, err, "Upper needs a single argument")

	_, err = call(t, env, "upper", lisp.Int(12))
	var typ *lisp.TypeError
	if assert.True(t, errors.As(err, &typ)) {
		assert.Equal(t, "upper", typ.Func)
		assert.Equal(t, "string", typ.Want)
	}
	assert.EqualError(t, err, "Argument to upper must be a string")
}

func TestLowerConcat(t *testing.T) {
	env := testEnv(t)

	v, err := call(t, env, "lower", New("MixedCase"))
	require.NoError(t, err)
	assert.True(t, lisp.Equal(New("mixedcase"), v))

	v, err = call(t, env, "concat", New("foo"), New("bar"))
	require.NoError(t, err)
	assert.True(t, lisp.Equal(New("foobar"), v))

	_, err = call(t, env, "concat", New("foo"))
	assert.EqualError(t, err, "Concat needs 2 arguments")

	_, err = call(t, env, "concat", New("foo"), lisp.Sym("bar"))
	assert.EqualError(t, err, "Argument 2 to concat must be a string")
}

func TestLoadPackageTwice(t *testing.T) {
	env := testEnv(t)
	assert.Error(t, LoadPackage(env))
}
