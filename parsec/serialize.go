// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package parsec

import (
	"fmt"

	"github.com/samo538/mata/afa"
	"github.com/samo538/mata/state"
)

// Serialize produces a Section from aut's initial/final sets and the
// forward transition relation, translating states and symbols through
// stateName/symbolName. A nil stateName names state n "q<n>"; a nil
// symbolName names symbol n "a<n>". Body line formula rendering is the
// concrete surface syntax's job (see textfmt.Format): each body line is
// the source name, the symbol name, then the state names of every
// destination clause in clause order, with no separator between
// clauses, so clause boundaries are not recoverable from the Section.
func Serialize(aut *afa.Afa, stateName NameMapper[state.State], symbolName NameMapper[state.Symbol]) (Section, error) {
	if stateName == nil {
		stateName = func(s state.State) (string, bool) { return fmt.Sprintf("q%d", uint32(s)), true }
	}
	if symbolName == nil {
		symbolName = func(a state.Symbol) (string, bool) { return fmt.Sprintf("a%d", uint32(a)), true }
	}
	sec := Section{
		Type: "AFA",
		Dict: map[string][]string{},
	}

	for s := state.State(0); int(s) < aut.NumStates(); s++ {
		if aut.IsInitial(s) {
			name, ok := stateName(s)
			if !ok {
				return Section{}, fmt.Errorf("%w: state %d", ErrTranslationFailure, s)
			}
			sec.Dict["Initial"] = append(sec.Dict["Initial"], name)
		}
		if aut.IsFinal(s) {
			name, ok := stateName(s)
			if !ok {
				return Section{}, fmt.Errorf("%w: state %d", ErrTranslationFailure, s)
			}
			sec.Dict["Final"] = append(sec.Dict["Final"], name)
		}
	}

	for s := state.State(0); int(s) < aut.NumStates(); s++ {
		srcName, ok := stateName(s)
		if !ok {
			return Section{}, fmt.Errorf("%w: state %d", ErrTranslationFailure, s)
		}
		for _, tr := range aut.TransOf(s) {
			symName, ok := symbolName(tr.Symb)
			if !ok {
				return Section{}, fmt.Errorf("%w: symbol %d", ErrTranslationFailure, tr.Symb)
			}
			line := []string{srcName, symName}
			for _, clause := range tr.Dst.Slice() {
				for _, dstState := range clause.Slice() {
					name, ok := stateName(dstState)
					if !ok {
						return Section{}, fmt.Errorf("%w: state %d", ErrTranslationFailure, dstState)
					}
					line = append(line, name)
				}
			}
			sec.Body = append(sec.Body, line)
		}
	}

	return sec, nil
}
