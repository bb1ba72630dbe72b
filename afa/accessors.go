// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package afa

import (
	"github.com/samo538/mata/closed"
	"github.com/samo538/mata/state"
)

// HasTrans reports whether t is a (possibly redundant) subset of the
// stored destination for (t.Src, t.Symb): true iff post(t.Src, t.Symb)
// has a non-empty antichain that is element-wise contained in t.Dst.
func (a *Afa) HasTrans(t Trans) bool {
	d, err := a.PostState(t.Src, t.Symb)
	if err != nil || d.Antichain().Empty() {
		return false
	}
	return d.Antichain().IsSubsetOf(t.Dst)
}

// TransOf returns the forward transition entries stored for src, in
// the order they were added. The returned slice is owned by a; callers
// must not mutate it.
func (a *Afa) TransOf(src state.State) []Trans {
	if !a.inRange(src) {
		return nil
	}
	return a.trans[src]
}

// TransSize returns the total number of forward transition entries
// across all source states.
func (a *Afa) TransSize() int {
	n := 0
	for _, ts := range a.trans {
		n += len(ts)
	}
	return n
}

// GetInitialNodes returns the upward-closed set whose antichain is
// { {s} : s in Initial }.
func (a *Afa) GetInitialNodes() (*closed.Set, error) {
	return singletonUpward(a.initial, a.hi())
}

// GetNonFinalNodes returns the upward-closed set whose antichain is
// { {s} : s not in Final }.
func (a *Afa) GetNonFinalNodes() (*closed.Set, error) {
	return singletonUpward(a.complement(a.final), a.hi())
}

// GetFinalNodes returns the downward-closed set whose antichain is the
// single maximal node holding every final state.
func (a *Afa) GetFinalNodes() (*closed.Set, error) {
	return maximalDownward(a.final, a.hi())
}

// GetNonInitialNodes returns the downward-closed set whose antichain is
// the single maximal node holding every non-initial state.
func (a *Afa) GetNonInitialNodes() (*closed.Set, error) {
	return maximalDownward(a.complement(a.initial), a.hi())
}

func singletonUpward(states state.States, hi state.State) (*closed.Set, error) {
	seed := make([]state.Node, 0, states.Len())
	for _, s := range states.Slice() {
		seed = append(seed, state.NewStates(s))
	}
	return closed.NewUpward(0, hi, seed...)
}

func maximalDownward(states state.States, hi state.State) (*closed.Set, error) {
	return closed.NewDownward(0, hi, states)
}

func (a *Afa) hi() state.State {
	if a.NumStates() == 0 {
		return 0
	}
	return state.State(a.NumStates() - 1)
}

func (a *Afa) complement(of state.States) state.States {
	out := state.NewStates()
	for s := 0; s < a.NumStates(); s++ {
		st := state.State(s)
		if !of.Contains(st) {
			out.Insert(st)
		}
	}
	return out
}
