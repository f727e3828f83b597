package lisp

// Builtin is the uniform calling convention of native functions.  It receives
// evaluated arguments and the calling environment.
type Builtin func(env *Env, args []Value) (Value, error)

// CheckArity returns an ArityError unless len(args) is n.
func CheckArity(fun string, args []Value, n int) error {
	if len(args) != n {
		return &ArityError{Func: fun, Want: n, Got: len(args)}
	}
	return nil
}

// Arg narrows args[i] to the kind k on behalf of the function fun.  Arg
// assumes that the arity of fun has already been checked.
func Arg[T Atom](fun string, k *Kind[T], args []Value, i int) (T, error) {
	x, ok := k.Narrow(args[i])
	if !ok {
		return x, &TypeError{
			Func:  fun,
			Pos:   i + 1,
			Arity: len(args),
			Want:  k.Name(),
			Got:   args[i].Kind(),
		}
	}
	return x, nil
}

// NewBuiltin returns a function Value which passes its arguments to fn
// unconverted.  Functions taking a variable number of arguments, or needing
// the environment, use NewBuiltin and perform their own checks with
// CheckArity and Arg.
func NewBuiltin(name string, fn Builtin) Value {
	return BuiltinKind.Widen(&BuiltinFunc{name: name, fn: fn})
}

// Wrap1 returns a function Value taking a single argument of kind a and
// returning a value of kind r.  Arguments are narrowed, and results widened,
// by the adapter.  Errors returned by fn are passed through unchanged.
func Wrap1[A, R Atom](name string, a *Kind[A], r *Kind[R], fn func(A) (R, error)) Value {
	return NewBuiltin(name, func(_ *Env, args []Value) (Value, error) {
		if err := CheckArity(name, args, 1); err != nil {
			return Value{}, err
		}
		x, err := Arg(name, a, args, 0)
		if err != nil {
			return Value{}, err
		}
		res, err := fn(x)
		if err != nil {
			return Value{}, err
		}
		return r.Widen(res), nil
	})
}

// Wrap2 is like Wrap1 for functions of two arguments.
func Wrap2[A, B, R Atom](name string, a *Kind[A], b *Kind[B], r *Kind[R], fn func(A, B) (R, error)) Value {
	return NewBuiltin(name, func(_ *Env, args []Value) (Value, error) {
		if err := CheckArity(name, args, 2); err != nil {
			return Value{}, err
		}
		x, err := Arg(name, a, args, 0)
		if err != nil {
			return Value{}, err
		}
		y, err := Arg(name, b, args, 1)
		if err != nil {
			return Value{}, err
		}
		res, err := fn(x, y)
		if err != nil {
			return Value{}, err
		}
		return r.Widen(res), nil
	})
}
