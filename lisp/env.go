package lisp

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync/atomic"
)

var envCount uint64

func getEnvID() uint {
	return uint(atomic.AddUint64(&envCount, 1))
}

// Runtime is state shared by an environment and all of its children.
type Runtime struct {
	Universe *Universe
	Reader   Reader
	Stderr   io.Writer
	Logger   *slog.Logger

	// MaxDepth limits the nesting of Eval calls.  Zero means no limit.
	MaxDepth int
	depth    int
}

// Env is a lexical scope binding names to values.
type Env struct {
	ID      uint
	Scope   map[string]Value
	Parent  *Env
	Runtime *Runtime
}

// NewEnv returns initializes and returns a new Env.  A nil parent creates a
// root environment with a fresh Runtime.
func NewEnv(parent *Env) *Env {
	var rt *Runtime
	if parent != nil {
		rt = parent.Runtime
	} else {
		rt = &Runtime{
			Stderr: os.Stderr,
			Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		}
	}
	return &Env{
		ID:      getEnvID(),
		Scope:   make(map[string]Value),
		Parent:  parent,
		Runtime: rt,
	}
}

// Configure applies each Config to env, stopping at the first error.
func (env *Env) Configure(config ...Config) error {
	for _, fn := range config {
		if err := fn(env); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the value bound to name in env or one of its ancestors.
func (env *Env) Get(name string) (Value, error) {
	for e := env; e != nil; e = e.Parent {
		if v, ok := e.Scope[name]; ok {
			return v, nil
		}
	}
	return Value{}, &UnboundError{Name: name}
}

// Put binds name to v in env.
func (env *Env) Put(name string, v Value) {
	env.Scope[name] = v
}

// GetGlobal returns the value bound to name in the root environment.
func (env *Env) GetGlobal(name string) (Value, error) {
	return env.root().Get(name)
}

// PutGlobal binds name to v in the root environment (global scope).
func (env *Env) PutGlobal(name string, v Value) {
	env.root().Put(name, v)
}

func (env *Env) root() *Env {
	for env.Parent != nil {
		env = env.Parent
	}
	return env
}

// AddBuiltins binds each function value to the name it was created with.
// It is an error to bind a name twice.
func (env *Env) AddBuiltins(funs ...Value) error {
	for _, v := range funs {
		fun, ok := BuiltinKind.Narrow(v)
		if !ok {
			return fmt.Errorf("not a builtin: %v", v.Kind())
		}
		if _, ok := env.Scope[fun.FuncName()]; ok {
			return fmt.Errorf("symbol already defined: %s", fun.FuncName())
		}
		env.Put(fun.FuncName(), v)
		env.Runtime.Logger.Debug("builtin registered", "name", fun.FuncName())
	}
	return nil
}

// LoadString reads source using the runtime's Reader and evaluates each
// expression in env.  The value of the last expression is returned.
func (env *Env) LoadString(name, source string) (Value, error) {
	return env.Load(name, bytes.NewBufferString(source))
}

// Load reads r using the runtime's Reader and evaluates each expression in
// env.  The value of the last expression is returned.
func (env *Env) Load(name string, r io.Reader) (Value, error) {
	if env.Runtime.Reader == nil {
		return Value{}, fmt.Errorf("no reader configured")
	}
	exprs, err := env.Runtime.Reader.Read(name, r)
	if err != nil {
		return Value{}, err
	}
	res := Nil()
	for _, expr := range exprs {
		res, err = env.Eval(expr)
		if err != nil {
			return Value{}, err
		}
	}
	return res, nil
}
