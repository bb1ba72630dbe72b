// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package textfmt

import (
	"github.com/samo538/mata/formula"
	"github.com/samo538/mata/parsec"
	"github.com/samo538/mata/state"
)

// DNFParser implements parsec.FormulaParser over the "symb formula"
// token grammar: tokens[0] is the transition symbol's surface name,
// tokens[1:] is a positive Boolean formula over state names (& binds
// tighter than |, parens group), flattened to DNF by formula.Builder.
type DNFParser struct {
	B *formula.Builder
}

var _ parsec.FormulaParser = (*DNFParser)(nil)

// NewDNFParser returns a DNFParser sharing b's hash-consing table, so
// repeated sub-formulas across transition lines of the same automaton
// are built once.
func NewDNFParser(b *formula.Builder) *DNFParser {
	return &DNFParser{B: b}
}

// Parse implements parsec.FormulaParser.
func (p *DNFParser) Parse(tokens []string, states *parsec.StateMap) (string, state.Nodes, error) {
	if len(tokens) < 2 {
		return "", state.Nodes{}, parsec.ErrInvalidTransitionLine
	}
	symbolName := tokens[0]

	name := func(tok string) (state.State, bool) {
		return states.ID(tok), true
	}
	l, err := formula.Parse(p.B, tokens[1:], name)
	if err != nil {
		return "", state.Nodes{}, err
	}

	hi := state.State(0)
	if n := states.Count(); n > 0 {
		hi = state.State(n - 1)
	}
	ns, err := p.B.ToDNF(l, hi)
	if err != nil {
		return "", state.Nodes{}, err
	}
	return symbolName, ns, nil
}
