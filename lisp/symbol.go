package lisp

import "github.com/fuzzyforest/shallot-strings/parser/token"

// Symbol is a name.  Any token not claimed by a more specific kind reads as a
// symbol.
type Symbol string

// SymbolKind is the fallback kind.  It must be the last kind declared in a
// Universe.
var SymbolKind = NewFallbackKind[Symbol]("symbol", func(tok *token.Token) Symbol {
	return Symbol(tok.Text)
})

// Sym returns a Value for the symbol s.
func Sym(s string) Value {
	return SymbolKind.Widen(Symbol(s))
}

// Name implements Atom.
func (Symbol) Name() string {
	return "symbol"
}

func (s Symbol) String() string {
	return string(s)
}

// True is the value returned by predicates that hold.
func True() Value {
	return Sym("t")
}
