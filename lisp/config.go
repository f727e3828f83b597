package lisp

import (
	"fmt"
	"io"
	"log/slog"
)

// Config is a function that configures a root environment or its runtime.
type Config func(env *Env) error

// WithUniverse returns a Config that sets the kinds values read by the
// environment may have.
func WithUniverse(u *Universe) Config {
	return func(env *Env) error {
		env.Runtime.Universe = u
		return nil
	}
}

// WithReader returns a Config that makes environments use r to parse source
// streams.  There is no default Reader for an environment.
func WithReader(r Reader) Config {
	return func(env *Env) error {
		env.Runtime.Reader = r
		return nil
	}
}

// WithStderr returns a Config that makes environments write debugging output
// to w instead of the default, os.Stderr.
func WithStderr(w io.Writer) Config {
	return func(env *Env) error {
		env.Runtime.Stderr = w
		return nil
	}
}

// WithLogger returns a Config that sends runtime diagnostics to logger.  By
// default they are discarded.
func WithLogger(logger *slog.Logger) Config {
	return func(env *Env) error {
		if logger == nil {
			return fmt.Errorf("nil logger")
		}
		env.Runtime.Logger = logger
		return nil
	}
}

// WithMaximumDepth returns a Config that will prevent an environment from
// nesting evaluation more than n levels deep.
func WithMaximumDepth(n int) Config {
	return func(env *Env) error {
		if n < 0 {
			return fmt.Errorf("negative maximum depth: %d", n)
		}
		env.Runtime.MaxDepth = n
		return nil
	}
}

// WithLayers returns a Config that loads each layer into the environment.
func WithLayers(layers ...*Layer) Config {
	return func(env *Env) error {
		for _, l := range layers {
			if err := l.Load(env); err != nil {
				return err
			}
		}
		return nil
	}
}
