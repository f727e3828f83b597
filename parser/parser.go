// Package parser provides a lisp reader.
//
//	expr    := <comment> | <string> | <atom> | '(' <expr>* ')' | '\'' <expr>
//	comment := /;[^\n]*/
//	string  := '"' /([^"\\]|\\.)*/ '"'
//	atom    := /[^[:space:]()';"]+/
//
// Strings and atoms are handed to a lisp.Universe as tokens; the universe decides
// which kind of value each one is.
package parser

import (
	"bytes"
	"fmt"
	"io"

	"github.com/fuzzyforest/shallot-strings/lisp"
	"github.com/fuzzyforest/shallot-strings/parser/token"
	parsec "github.com/prataprc/goparsec"
)

type reader struct {
	universe *lisp.Universe
}

// NewReader returns a lisp.Reader that produces values of the kinds in u.
func NewReader(u *lisp.Universe) lisp.Reader {
	return &reader{universe: u}
}

// Read implements lisp.Reader.  If the source ends inside an expression the
// returned error wraps io.ErrUnexpectedEOF.
func (r *reader) Read(name string, src io.Reader) ([]lisp.Value, error) {
	text, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}
	return Parse(r.universe, name, text)
}

// Parse reads every expression in text.
func Parse(u *lisp.Universe, name string, text []byte) ([]lisp.Value, error) {
	var exprs []lisp.Value
	p := &parser{universe: u, file: name, text: text}
	expr := p.grammar()
	s := parsec.NewScanner(text)
	root, s := expr(s)
	for root != nil {
		exprs = append(exprs, values(root)...)
		root, s = expr(s)
	}
	pos := s.GetCursor()
	rest := bytes.TrimLeft(text[pos:], " \t\r\n")
	if len(rest) == 0 {
		return exprs, nil
	}
	pos = len(text) - len(rest)
	loc := token.Locate(name, text, pos)
	switch rest[0] {
	case ')':
		return nil, fmt.Errorf("%s: unexpected %s", loc, token.PAREN_R)
	case '(':
		return nil, fmt.Errorf("%s: unmatched %s: %w", loc, token.PAREN_L, io.ErrUnexpectedEOF)
	case '\'':
		return nil, fmt.Errorf("%s: nothing follows %s: %w", loc, token.QUOTE, io.ErrUnexpectedEOF)
	case '"':
		return nil, fmt.Errorf("%s: unterminated %s: %w", loc, token.STRING, io.ErrUnexpectedEOF)
	}
	return nil, fmt.Errorf("%s: unterminated expression: %w", loc, io.ErrUnexpectedEOF)
}

type parser struct {
	universe *lisp.Universe
	file     string
	text     []byte
}

func (p *parser) grammar() parsec.Parser {
	openP := parsec.Atom("(", "PAREN_L")
	closeP := parsec.Atom(")", "PAREN_R")
	q := parsec.Atom("'", "QUOTE")
	comment := parsec.Token(`;[^\n]*`, "COMMENT")
	str := parsec.And(p.termNode(token.STRING), parsec.Token(`"(?:[^"\\]|\\.)*"`, "STRING"))
	atom := parsec.And(p.termNode(token.ATOM), parsec.Token(`[^\s()';"]+`, "ATOM"))
	var expr parsec.Parser // forward declaration allows for recursive parsing
	exprList := parsec.Kleene(nil, &expr)
	list := parsec.And(listNode, openP, exprList, closeP)
	quoted := parsec.And(quoteNode, q, &expr)
	expr = parsec.OrdChoice(nil, comment, str, atom, list, quoted)
	return expr
}

// termNode returns a callback that converts a terminal into a token and
// reads it as a value.
func (p *parser) termNode(typ token.Type) parsec.Nodify {
	return func(nodes []parsec.ParsecNode) parsec.ParsecNode {
		for _, n := range flatten(nodes) {
			term, ok := n.(*parsec.Terminal)
			if !ok {
				continue
			}
			tok := &token.Token{
				Type:   typ,
				Text:   term.GetValue(),
				Source: token.Locate(p.file, p.text, term.Position),
			}
			return p.universe.Parse(tok)
		}
		return nil
	}
}

func listNode(nodes []parsec.ParsecNode) parsec.ParsecNode {
	// delimiters and comments are dropped
	return lisp.NewList(values(nodes)...)
}

func quoteNode(nodes []parsec.ParsecNode) parsec.ParsecNode {
	vals := values(nodes)
	if len(vals) != 1 {
		return nil
	}
	return lisp.NewList(lisp.Sym("quote"), vals[0])
}

func values(node parsec.ParsecNode) []lisp.Value {
	var vals []lisp.Value
	for _, n := range flatten([]parsec.ParsecNode{node}) {
		if v, ok := n.(lisp.Value); ok {
			vals = append(vals, v)
		}
	}
	return vals
}

func flatten(lis []parsec.ParsecNode) []parsec.ParsecNode {
	var nodes []parsec.ParsecNode
	for _, n := range lis {
		switch node := n.(type) {
		case []parsec.ParsecNode:
			nodes = append(nodes, flatten(node)...)
		default:
			nodes = append(nodes, node)
		}
	}
	return nodes
}
