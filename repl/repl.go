package repl

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fuzzyforest/shallot-strings/lisp"
	"github.com/fuzzyforest/shallot-strings/lisp/lisplib"
)

// RunRepl runs a simple repl
func RunRepl(prompt string, config ...lisp.Config) error {
	env, err := lisplib.NewEnv(config...)
	if err != nil {
		return err
	}

	rl, err := readline.New(prompt)
	if err != nil {
		return err
	}
	defer rl.Close()
	contPrompt := strings.Repeat(" ", len(prompt)) // prompt had better be ascii...

	s := NewSession(env, os.Stdout)
	for {
		var line []byte
		line, err = rl.ReadSlice()
		if err != nil && err != readline.ErrInterrupt {
			break
		}
		if err == readline.ErrInterrupt {
			s.Reset()
			rl.SetPrompt(prompt)
			continue
		}
		if s.Input(line) {
			rl.SetPrompt(prompt)
		} else {
			rl.SetPrompt(contPrompt)
		}
	}
	if err != io.EOF {
		return err
	}
	errln(env, "done")
	return nil
}

// Session evaluates input a line at a time, buffering lines until they form
// complete expressions.
type Session struct {
	env *lisp.Env
	out io.Writer
	buf []byte
}

// NewSession returns a Session evaluating in env and echoing values to out.
// Errors are written to the runtime's Stderr.
func NewSession(env *lisp.Env, out io.Writer) *Session {
	return &Session{env: env, out: out}
}

// Input adds a line to the session.  Input returns false when the buffered
// text ends inside an expression and more input is needed.
func (s *Session) Input(line []byte) bool {
	if len(s.buf) != 0 {
		s.buf = append(s.buf, '\n')
	}
	s.buf = append(s.buf, line...)
	if len(bytes.TrimSpace(s.buf)) == 0 {
		s.buf = nil
		return true
	}
	exprs, err := s.env.Runtime.Reader.Read("repl", bytes.NewReader(s.buf))
	if errors.Is(err, io.ErrUnexpectedEOF) {
		return false
	}
	s.buf = nil
	if err != nil {
		errln(s.env, err)
		return true
	}
	for _, expr := range exprs {
		v, err := s.env.Eval(expr)
		if err != nil {
			errln(s.env, err)
			return true
		}
		fmt.Fprintln(s.out, v)
	}
	return true
}

// Reset discards any buffered input.
func (s *Session) Reset() {
	s.buf = nil
}

func errln(env *lisp.Env, v ...interface{}) {
	fmt.Fprintln(env.Runtime.Stderr, v...)
}
