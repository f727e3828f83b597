// Package libstring adds a string kind to the value universe along with the
// builtins that operate on strings.
package libstring

import (
	"strings"

	"github.com/fuzzyforest/shallot-strings/lisp"
	"github.com/fuzzyforest/shallot-strings/parser/token"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultPackageName is the layer name used by LoadPackage.
const DefaultPackageName = "string"

// String is a string of unicode text.
type String string

// StringKind reads double quoted tokens.  It must be declared before the
// fallback symbol kind in a universe.
var StringKind = lisp.NewKind[String]("string", parseString)

// New returns a Value for the string s.
func New(s string) lisp.Value {
	return StringKind.Widen(String(s))
}

func parseString(tok *token.Token) (String, bool) {
	text := tok.Text
	if len(text) < 2 || text[0] != '"' || text[len(text)-1] != '"' {
		return "", false
	}
	return String(unescape(text[1 : len(text)-1])), true
}

// unescape decodes the escapes \", \\, \n and \t.  Any other backslash is
// kept as written.
func unescape(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var buf strings.Builder
	buf.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 == len(s) {
			buf.WriteByte(c)
			continue
		}
		switch s[i+1] {
		case '"', '\\':
			buf.WriteByte(s[i+1])
		case 'n':
			buf.WriteByte('\n')
		case 't':
			buf.WriteByte('\t')
		default:
			buf.WriteByte(c)
			continue
		}
		i++
	}
	return buf.String()
}

// Name implements lisp.Atom.
func (String) Name() string {
	return "string"
}

func (s String) String() string {
	return "\x1b[3;31m\"" + string(s) + "\"\x1b[0m"
}

// Layer holds the string kind and the string builtins.
var Layer = &lisp.Layer{
	Name:  DefaultPackageName,
	Kinds: []lisp.Variant{StringKind},
	Builtins: []lisp.Value{
		lisp.NewBuiltin("split", builtinSplit),
		lisp.Wrap1("upper", StringKind, StringKind, upper),
		lisp.Wrap1("lower", StringKind, StringKind, lower),
		lisp.Wrap2("concat", StringKind, StringKind, StringKind, concat),
	},
}

// LoadPackage adds the string builtins to env.
func LoadPackage(env *lisp.Env) error {
	return Layer.Load(env)
}

// builtinSplit returns a list of the whitespace separated fields of its
// argument.
func builtinSplit(env *lisp.Env, args []lisp.Value) (lisp.Value, error) {
	if err := lisp.CheckArity("split", args, 1); err != nil {
		return lisp.Value{}, err
	}
	s, err := lisp.Arg("split", StringKind, args, 0)
	if err != nil {
		return lisp.Value{}, err
	}
	fields := strings.Fields(string(s))
	cells := make([]lisp.Value, len(fields))
	for i, f := range fields {
		cells[i] = New(f)
	}
	return lisp.NewList(cells...), nil
}

// upper and lower use the root locale so results never depend on the
// environment.  A cases.Caser is stateful and cannot be shared.
func upper(s String) (String, error) {
	return String(cases.Upper(language.Und).String(string(s))), nil
}

func lower(s String) (String, error) {
	return String(cases.Lower(language.Und).String(string(s))), nil
}

func concat(a, b String) (String, error) {
	return a + b, nil
}
