// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package parsec

import (
	"fmt"

	"github.com/samo538/mata/afa"
)

// Construct validates sec.Type == "AFA", assigns dense ids via states
// for every name in Dict["Initial"]/Dict["Final"] and registers them,
// then processes each body line: the first token is the source-state
// name, the remainder is delegated to fp, which resolves a symbol name
// (looked up against alphabet) and a DNF destination. Both the forward
// and the inverse transition are added for every parsed line.
func Construct(aut *afa.Afa, sec Section, alphabet Alphabet, fp FormulaParser, states *StateMap) error {
	if sec.Type != "AFA" {
		return fmt.Errorf("%w: got %q", ErrTypeMismatch, sec.Type)
	}

	for _, name := range sec.Dict["Initial"] {
		s := states.ID(name)
		aut.Grow(states.Count())
		aut.AddInitial(s)
	}
	for _, name := range sec.Dict["Final"] {
		s := states.ID(name)
		aut.Grow(states.Count())
		aut.AddFinal(s)
	}

	for _, line := range sec.Body {
		if len(line) < 2 {
			return fmt.Errorf("%w: %v", ErrInvalidTransitionLine, line)
		}
		src := states.ID(line[0])
		aut.Grow(states.Count())

		symbolName, dst, err := fp.Parse(line[1:], states)
		if err != nil {
			return err
		}
		aut.Grow(states.Count())

		symb, ok := alphabet.Symbol(symbolName)
		if !ok {
			return fmt.Errorf("%w: symbol %q", ErrTranslationFailure, symbolName)
		}

		t := afa.Trans{Src: src, Symb: symb, Dst: dst}
		if err := aut.AddTrans(t); err != nil {
			return err
		}
		if err := aut.AddInverseTrans(t); err != nil {
			return err
		}
	}
	return nil
}

// ConstructWithSymbolMap wraps Construct with an on-the-fly alphabet
// derived from symbols: unknown symbol names are assigned fresh ids
// rather than rejected.
func ConstructWithSymbolMap(aut *afa.Afa, sec Section, symbols *SymbolMap, fp FormulaParser, states *StateMap) error {
	return Construct(aut, sec, symbols, fp, states)
}
