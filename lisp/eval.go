package lisp

import "fmt"

// Eval evaluates v in the context (scope) of env.  Symbols evaluate to their
// bindings and non-empty lists are function applications.  All other values
// evaluate to themselves.
func (env *Env) Eval(v Value) (Value, error) {
	rt := env.Runtime
	if rt.MaxDepth > 0 && rt.depth >= rt.MaxDepth {
		return Value{}, ErrMaxDepth
	}
	rt.depth++
	defer func() { rt.depth-- }()

	if sym, ok := SymbolKind.Narrow(v); ok {
		return env.Get(string(sym))
	}
	lis, ok := ListKind.Narrow(v)
	if !ok || lis.Len() == 0 {
		return v, nil
	}
	if sym, ok := SymbolKind.Narrow(lis.cells[0]); ok {
		if op := lookupSpecialOp(string(sym)); op != nil {
			return op(env, lis.cells[1:])
		}
	}
	fun, err := env.Eval(lis.cells[0])
	if err != nil {
		return Value{}, err
	}
	args := make([]Value, len(lis.cells)-1)
	for i, c := range lis.cells[1:] {
		args[i], err = env.Eval(c)
		if err != nil {
			return Value{}, err
		}
	}
	return env.Apply(fun, args)
}

// Apply calls fun with already evaluated arguments.
func (env *Env) Apply(fun Value, args []Value) (Value, error) {
	if b, ok := BuiltinKind.Narrow(fun); ok {
		return b.Call(env, args)
	}
	fn, ok := LambdaKind.Narrow(fun)
	if !ok {
		return Value{}, fmt.Errorf("not a function: %v", fun)
	}
	if err := CheckArity("lambda", args, len(fn.formals)); err != nil {
		return Value{}, err
	}
	scope := NewEnv(fn.env)
	for i, name := range fn.formals {
		scope.Put(string(name), args[i])
	}
	return opDo(scope, fn.body)
}
