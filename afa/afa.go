// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package afa

import (
	"fmt"

	"github.com/samo538/mata/closed"
	"github.com/samo538/mata/state"
)

// Afa is an alternating finite automaton: a dense, contiguous state
// space together with a forward transition relation, an inverse
// transition relation keyed by representative state, and initial/final
// state sets.
type Afa struct {
	trans [][]Trans
	inv   [][]InverseTrans

	initial state.States
	final   state.States
}

// New returns an Afa with numStates states and no transitions.
func New(numStates int) *Afa {
	a := &Afa{}
	a.Grow(numStates)
	return a
}

// Grow extends the automaton's state space to numStates, if it is not
// already at least that large. Construction code (package parsec) uses
// this to grow the automaton as it discovers new state names; AddTrans
// and AddInverseTrans, by contrast, reject out-of-range states rather
// than growing into them, per NoSuchSourceState.
func (a *Afa) Grow(numStates int) {
	for len(a.trans) < numStates {
		a.trans = append(a.trans, nil)
		a.inv = append(a.inv, nil)
	}
}

// NumStates returns the size of the declared state space.
func (a *Afa) NumStates() int { return len(a.trans) }

// AddInitial marks s as an initial state.
func (a *Afa) AddInitial(s state.State) { a.initial.Insert(s) }

// AddFinal marks s as a final state.
func (a *Afa) AddFinal(s state.State) { a.final.Insert(s) }

// IsInitial reports whether s is an initial state.
func (a *Afa) IsInitial(s state.State) bool { return a.initial.Contains(s) }

// IsFinal reports whether s is a final state.
func (a *Afa) IsFinal(s state.State) bool { return a.final.Contains(s) }

// AcceptsEpsilon reports whether Initial and Final intersect.
func (a *Afa) AcceptsEpsilon() bool {
	return !a.initial.Intersection(a.final).Empty()
}

// Clone returns an independent value-copy of a: both relations and both
// state sets, so that adding transitions to the copy leaves a unchanged.
func (a *Afa) Clone() *Afa {
	out := &Afa{
		trans:   make([][]Trans, len(a.trans)),
		inv:     make([][]InverseTrans, len(a.inv)),
		initial: a.initial.Clone(),
		final:   a.final.Clone(),
	}
	for i, ts := range a.trans {
		out.trans[i] = append([]Trans(nil), ts...)
	}
	for i, its := range a.inv {
		out.inv[i] = make([]InverseTrans, len(its))
		for j, it := range its {
			rs := make([]*InverseResult, len(it.Results))
			for k, r := range it.Results {
				rs[k] = &InverseResult{ResultNodes: r.ResultNodes.Clone(), SharingList: r.SharingList}
			}
			out.inv[i][j] = InverseTrans{Symb: it.Symb, Results: rs}
		}
	}
	return out
}

func (a *Afa) inRange(s state.State) bool {
	return int(s) < a.NumStates()
}

func (a *Afa) transEntryIndex(src state.State, symb state.Symbol) int {
	for i, t := range a.trans[src] {
		if t.Symb == symb {
			return i
		}
	}
	return -1
}

// AddTrans implements add_trans: look up any existing forward entry for
// (trans.Src, trans.Symb); if none exists, append trans; otherwise
// re-normalize the existing destination by inserting every clause of
// trans.Dst into an upward-closed set seeded with the current
// destination, and replace it with the resulting antichain.
func (a *Afa) AddTrans(t Trans) error {
	if !a.inRange(t.Src) {
		return fmt.Errorf("%w: src %s (numStates=%d)", ErrNoSuchSourceState, t.Src, a.NumStates())
	}
	i := a.transEntryIndex(t.Src, t.Symb)
	if i < 0 {
		a.trans[t.Src] = append(a.trans[t.Src], t)
		return nil
	}
	cur := a.trans[t.Src][i].Dst
	cs, err := closed.NewUpward(0, state.State(a.NumStates()-1), cur.Slice()...)
	if err != nil {
		return err
	}
	if err := cs.InsertAll(t.Dst); err != nil {
		return err
	}
	a.trans[t.Src][i].Dst = cs.Antichain()
	return nil
}

func (a *Afa) invEntryIndex(rep state.State, symb state.Symbol) int {
	for i, it := range a.inv[rep] {
		if it.Symb == symb {
			return i
		}
	}
	return -1
}

func findSharingList(results []*InverseResult, node state.Node) *InverseResult {
	for _, r := range results {
		if r.SharingList.Equal(node) {
			return r
		}
	}
	return nil
}

// AddInverseTrans implements add_inverse_trans: for each clause of
// trans.Dst, locate (or create) the inverse entry keyed by the clause's
// minimum state and trans.Symb, then locate (or create) the tuple
// sharing that exact clause, and record trans.Src in its result_nodes.
//
// A clause with no states has no representative and is silently
// skipped: it can never be shared with another source state, so it
// contributes nothing a pre() lookup could ever find.
func (a *Afa) AddInverseTrans(t Trans) error {
	if !a.inRange(t.Src) {
		return fmt.Errorf("%w: src %s (numStates=%d)", ErrNoSuchSourceState, t.Src, a.NumStates())
	}
	for _, node := range t.Dst.Slice() {
		if node.Empty() {
			continue
		}
		rep := node.Min()
		if !a.inRange(rep) {
			return fmt.Errorf("%w: clause state %s (numStates=%d)", ErrNoSuchSourceState, rep, a.NumStates())
		}
		i := a.invEntryIndex(rep, t.Symb)
		if i < 0 {
			a.inv[rep] = append(a.inv[rep], InverseTrans{
				Symb:    t.Symb,
				Results: []*InverseResult{{ResultNodes: state.NewStates(t.Src), SharingList: node}},
			})
			continue
		}
		entry := &a.inv[rep][i]
		if r := findSharingList(entry.Results, node); r != nil {
			r.ResultNodes.Insert(t.Src)
			continue
		}
		entry.Results = append(entry.Results, &InverseResult{
			ResultNodes: state.NewStates(t.Src),
			SharingList: node,
		})
	}
	return nil
}
