// Package lisplib is used to conveniently compose the value universe and load
// the standard library into an environment.
package lisplib

import (
	"github.com/fuzzyforest/shallot-strings/lisp"
	"github.com/fuzzyforest/shallot-strings/lisp/lisplib/libstring"
	"github.com/fuzzyforest/shallot-strings/parser"
)

// Layers returns every layer of the standard library in load order.
func Layers() []*lisp.Layer {
	return []*lisp.Layer{
		lisp.LangLayer,
		libstring.Layer,
	}
}

// Universe declares the kinds of the standard value universe.  Parsers are
// tried in this order; symbol is the fallback and must remain last.
func Universe() (*lisp.Universe, error) {
	return lisp.Compose(
		lisp.NumberKind,
		libstring.StringKind,
		lisp.ListKind,
		lisp.BuiltinKind,
		lisp.LambdaKind,
		lisp.SymbolKind,
	)
}

// NewEnv returns a root environment using the standard universe and reader
// with the standard library loaded.  Additional config is applied before the
// library is loaded.
func NewEnv(config ...lisp.Config) (*lisp.Env, error) {
	u, err := Universe()
	if err != nil {
		return nil, err
	}
	env := lisp.NewEnv(nil)
	err = env.Configure(
		lisp.WithUniverse(u),
		lisp.WithReader(parser.NewReader(u)),
	)
	if err != nil {
		return nil, err
	}
	if err := env.Configure(config...); err != nil {
		return nil, err
	}
	if err := LoadLibrary(env); err != nil {
		return nil, err
	}
	return env, nil
}

// LoadLibrary loads every standard layer into env.
func LoadLibrary(env *lisp.Env) error {
	return env.Configure(lisp.WithLayers(Layers()...))
}
