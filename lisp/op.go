package lisp

import (
	"errors"
	"fmt"
)

type specialOp func(env *Env, args []Value) (Value, error)

func lookupSpecialOp(name string) specialOp {
	switch name {
	case "quote":
		return opQuote
	case "def":
		return opDef
	case "lambda":
		return opLambda
	case "if":
		return opIf
	case "do":
		return opDo
	default:
		return nil
	}
}

func opQuote(env *Env, args []Value) (Value, error) {
	if err := CheckArity("quote", args, 1); err != nil {
		return Value{}, err
	}
	return args[0], nil
}

func opDef(env *Env, args []Value) (Value, error) {
	if err := CheckArity("def", args, 2); err != nil {
		return Value{}, err
	}
	name, err := Arg("def", SymbolKind, args, 0)
	if err != nil {
		return Value{}, err
	}
	v, err := env.Eval(args[1])
	if err != nil {
		return Value{}, err
	}
	env.PutGlobal(string(name), v)
	return v, nil
}

func opLambda(env *Env, args []Value) (Value, error) {
	if len(args) == 0 {
		return Value{}, errors.New("Lambda needs a list of formal arguments")
	}
	formals, err := Arg("lambda", ListKind, args[:1], 0)
	if err != nil {
		return Value{}, err
	}
	names := make([]Symbol, formals.Len())
	for i := range names {
		sym, ok := SymbolKind.Narrow(formals.At(i))
		if !ok {
			return Value{}, fmt.Errorf("formal argument %d to lambda is not a symbol: %v", i+1, formals.At(i))
		}
		names[i] = sym
	}
	return NewLambda(names, args[1:], env), nil
}

func opIf(env *Env, args []Value) (Value, error) {
	if len(args) != 2 && len(args) != 3 {
		return Value{}, errors.New("If needs 2 or 3 arguments")
	}
	cond, err := env.Eval(args[0])
	if err != nil {
		return Value{}, err
	}
	if !IsNil(cond) {
		return env.Eval(args[1])
	}
	if len(args) == 3 {
		return env.Eval(args[2])
	}
	return Nil(), nil
}

func opDo(env *Env, args []Value) (Value, error) {
	res := Nil()
	for _, expr := range args {
		var err error
		res, err = env.Eval(expr)
		if err != nil {
			return Value{}, err
		}
	}
	return res, nil
}
