package lisp

import "fmt"

// Layer is a unit of extension: the kinds a package contributes to the value
// universe along with the builtins that operate on them.  The kinds are
// declared in a Universe by whoever composes it; loading a layer only binds
// its builtins.
type Layer struct {
	Name     string
	Kinds    []Variant
	Builtins []Value
}

// Load binds the layer's builtins in env.  Every kind of the layer must be
// declared in the runtime's universe, if one is configured.
func (l *Layer) Load(env *Env) error {
	if u := env.Runtime.Universe; u != nil {
		for _, k := range l.Kinds {
			if !u.Declares(k) {
				return fmt.Errorf("layer %s: kind %s is not declared in the universe", l.Name, k.Name())
			}
		}
	}
	env.Runtime.Logger.Debug("loading layer", "layer", l.Name, "builtins", len(l.Builtins))
	if err := env.AddBuiltins(l.Builtins...); err != nil {
		return fmt.Errorf("layer %s: %w", l.Name, err)
	}
	return nil
}
