// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package textfmt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/samo538/mata/afa"
	"github.com/samo538/mata/parsec"
	"github.com/samo538/mata/state"
)

// Format writes aut to w in textfmt's surface syntax. Each forward
// transition's destination antichain is printed as one clause-list
// formula: clauses are separated by '|', and a multi-state clause's
// states are joined by '&'; a single-state clause is printed bare, the
// way spec.md's example formulas drop a unary "(1)" to just "1".
func Format(w io.Writer, aut *afa.Afa, stateName parsec.NameMapper[state.State], symbolName parsec.NameMapper[state.Symbol]) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "@AFA")

	var initNames, finalNames []string
	for s := state.State(0); int(s) < aut.NumStates(); s++ {
		if aut.IsInitial(s) {
			name, ok := stateName(s)
			if !ok {
				return fmt.Errorf("%w: state %d", parsec.ErrTranslationFailure, s)
			}
			initNames = append(initNames, name)
		}
		if aut.IsFinal(s) {
			name, ok := stateName(s)
			if !ok {
				return fmt.Errorf("%w: state %d", parsec.ErrTranslationFailure, s)
			}
			finalNames = append(finalNames, name)
		}
	}
	fmt.Fprintf(bw, "%%Initial: %s\n", strings.Join(initNames, " "))
	fmt.Fprintf(bw, "%%Final: %s\n", strings.Join(finalNames, " "))

	for s := state.State(0); int(s) < aut.NumStates(); s++ {
		srcName, ok := stateName(s)
		if !ok {
			return fmt.Errorf("%w: state %d", parsec.ErrTranslationFailure, s)
		}
		for _, tr := range aut.TransOf(s) {
			symName, ok := symbolName(tr.Symb)
			if !ok {
				return fmt.Errorf("%w: symbol %d", parsec.ErrTranslationFailure, tr.Symb)
			}
			formula, err := formatDst(tr.Dst, stateName)
			if err != nil {
				return err
			}
			fmt.Fprintf(bw, "%s %s %s\n", srcName, symName, formula)
		}
	}
	return bw.Flush()
}

func formatDst(ns state.Nodes, stateName parsec.NameMapper[state.State]) (string, error) {
	clauses := ns.Slice()
	parts := make([]string, 0, len(clauses))
	for _, clause := range clauses {
		states := clause.Slice()
		names := make([]string, 0, len(states))
		for _, s := range states {
			name, ok := stateName(s)
			if !ok {
				return "", fmt.Errorf("%w: state %d", parsec.ErrTranslationFailure, s)
			}
			names = append(names, name)
		}
		parts = append(parts, strings.Join(names, " & "))
	}
	return strings.Join(parts, " | "), nil
}
