package lisp

// LangLayer holds the host language kinds and builtins.
var LangLayer = &Layer{
	Name: "lang",
	Kinds: []Variant{
		NumberKind,
		ListKind,
		BuiltinKind,
		LambdaKind,
		SymbolKind,
	},
	Builtins: []Value{
		NewBuiltin("type-of", builtinTypeOf),
		NewBuiltin("equal?", builtinEqual),
	},
}

func builtinTypeOf(env *Env, args []Value) (Value, error) {
	if err := CheckArity("type-of", args, 1); err != nil {
		return Value{}, err
	}
	return Sym(args[0].Name()), nil
}

func builtinEqual(env *Env, args []Value) (Value, error) {
	if err := CheckArity("equal?", args, 2); err != nil {
		return Value{}, err
	}
	if Equal(args[0], args[1]) {
		return True(), nil
	}
	return Nil(), nil
}
