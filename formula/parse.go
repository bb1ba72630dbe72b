// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package formula

import (
	"fmt"

	"github.com/samo538/mata/state"
)

// Parse reads a positive Boolean formula over state names, as used in
// a transition line's formula tokens: `&` (conjunction, binds tighter
// than `|`), `|` (disjunction) and parentheses, e.g. "(1 & 2) | 3".
// name resolves a state-name token to its State id, returning ok=false
// to reject an unknown name.
func Parse(b *Builder, tokens []string, name func(string) (state.State, bool)) (Lit, error) {
	p := &parser{b: b, toks: tokens, name: name}
	l, err := p.parseOr()
	if err != nil {
		return 0, err
	}
	if p.pos != len(p.toks) {
		return 0, fmt.Errorf("formula: unexpected token %q", p.toks[p.pos])
	}
	return l, nil
}

type parser struct {
	b    *Builder
	toks []string
	pos  int
	name func(string) (state.State, bool)
}

func (p *parser) peek() string {
	if p.pos >= len(p.toks) {
		return ""
	}
	return p.toks[p.pos]
}

func (p *parser) parseOr() (Lit, error) {
	l, err := p.parseAnd()
	if err != nil {
		return 0, err
	}
	for p.peek() == "|" {
		p.pos++
		r, err := p.parseAnd()
		if err != nil {
			return 0, err
		}
		l = p.b.Or(l, r)
	}
	return l, nil
}

func (p *parser) parseAnd() (Lit, error) {
	l, err := p.parseAtom()
	if err != nil {
		return 0, err
	}
	for p.peek() == "&" {
		p.pos++
		r, err := p.parseAtom()
		if err != nil {
			return 0, err
		}
		l = p.b.And(l, r)
	}
	return l, nil
}

func (p *parser) parseAtom() (Lit, error) {
	tok := p.peek()
	if tok == "(" {
		p.pos++
		l, err := p.parseOr()
		if err != nil {
			return 0, err
		}
		if p.peek() != ")" {
			return 0, fmt.Errorf("formula: expected ')', got %q", p.peek())
		}
		p.pos++
		return l, nil
	}
	if tok == "" || tok == "&" || tok == "|" || tok == ")" {
		return 0, fmt.Errorf("formula: expected a state name, got %q", tok)
	}
	p.pos++
	s, ok := p.name(tok)
	if !ok {
		return 0, fmt.Errorf("formula: unknown state name %q", tok)
	}
	return p.b.Leaf(s), nil
}
