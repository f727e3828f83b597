package lisp

import (
	"fmt"
	"strings"
)

// BuiltinFunc is a named native function under the uniform calling
// convention.
type BuiltinFunc struct {
	name string
	fn   Builtin
}

// BuiltinKind holds native functions.
var BuiltinKind = NewKind[*BuiltinFunc]("builtin", nil)

// FuncName returns the name the function was registered with.
func (fun *BuiltinFunc) FuncName() string {
	return fun.name
}

// Call invokes the function.
func (fun *BuiltinFunc) Call(env *Env, args []Value) (Value, error) {
	return fun.fn(env, args)
}

// Name implements Atom.
func (*BuiltinFunc) Name() string {
	return "builtin"
}

// Equal implements Equaler.  Functions are only equal to themselves.
func (fun *BuiltinFunc) Equal(other Atom) bool {
	return Atom(fun) == other
}

func (fun *BuiltinFunc) String() string {
	return fmt.Sprintf("<builtin %s>", fun.name)
}

// Lambda is a user defined function closing over the environment it was
// created in.
type Lambda struct {
	formals []Symbol
	body    []Value
	env     *Env
}

// NewLambda returns a function Value taking the given formal arguments.  The
// formals and body are copied.
func NewLambda(formals []Symbol, body []Value, env *Env) Value {
	return LambdaKind.Widen(&Lambda{
		formals: append([]Symbol(nil), formals...),
		body:    append([]Value(nil), body...),
		env:     env,
	})
}

// Formals returns a copy of the formal argument names of fn.
func (fn *Lambda) Formals() []Symbol {
	return append([]Symbol(nil), fn.formals...)
}

// Body returns a copy of the expressions evaluated when fn is applied.
func (fn *Lambda) Body() []Value {
	return append([]Value(nil), fn.body...)
}

// LambdaKind holds user defined functions.
var LambdaKind = NewKind[*Lambda]("lambda", nil)

// Name implements Atom.
func (*Lambda) Name() string {
	return "lambda"
}

// Equal implements Equaler.  Functions are only equal to themselves.
func (fn *Lambda) Equal(other Atom) bool {
	return Atom(fn) == other
}

func (fn *Lambda) String() string {
	var buf strings.Builder
	buf.WriteString("(lambda (")
	for i, f := range fn.formals {
		if i > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(string(f))
	}
	buf.WriteString(")")
	for _, v := range fn.body {
		buf.WriteString(" ")
		buf.WriteString(v.String())
	}
	buf.WriteString(")")
	return buf.String()
}
