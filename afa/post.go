// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package afa

import (
	"fmt"

	"github.com/samo538/mata/closed"
	"github.com/samo538/mata/state"
)

// PostState computes post(s, a): the stored destination for (s, a), or
// the empty upward-closed family if no such entry exists.
func (a *Afa) PostState(s state.State, symb state.Symbol) (*closed.Set, error) {
	if !a.inRange(s) {
		return closed.NewUpward(0, a.hi())
	}
	i := a.transEntryIndex(s, symb)
	if i < 0 {
		return closed.NewUpward(0, a.hi())
	}
	return closed.NewUpward(0, a.hi(), a.trans[s][i].Dst.Slice()...)
}

// PostNode computes post(n, a): the intersection of post(s, a) over
// every state s of n. An empty node maps to the upward-closed universe
// {emptyset}, the source's documented edge case.
func (a *Afa) PostNode(n state.Node, symb state.Symbol) (*closed.Set, error) {
	if n.Empty() {
		return closed.NewUpward(0, a.hi(), state.NewStates())
	}
	states := n.Slice()
	out, err := a.PostState(states[0], symb)
	if err != nil {
		return nil, err
	}
	for _, s := range states[1:] {
		next, err := a.PostState(s, symb)
		if err != nil {
			return nil, err
		}
		out, err = out.Intersection(next)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// PostNodes computes post(N, a): the union over n in N of post(n, a).
func (a *Afa) PostNodes(ns state.Nodes, symb state.Symbol) (*closed.Set, error) {
	out, err := closed.NewUpward(0, a.hi())
	if err != nil {
		return nil, err
	}
	for _, n := range ns.Slice() {
		next, err := a.PostNode(n, symb)
		if err != nil {
			return nil, err
		}
		out, err = out.Union(next)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// PostClosed computes post(C, a). C must be upward-closed.
func (a *Afa) PostClosed(c *closed.Set, symb state.Symbol) (*closed.Set, error) {
	if c.Kind() != closed.Upward {
		return nil, fmt.Errorf("%w: post requires an upward-closed set", closed.ErrWrongClosureKind)
	}
	return a.PostNodes(c.Antichain(), symb)
}

// PostClosedAllSymbols computes post(C): PostClosed summed over every
// symbol relevant to C's antichain, per PostNodesAllSymbols. C must be
// upward-closed.
func (a *Afa) PostClosedAllSymbols(c *closed.Set) (*closed.Set, error) {
	if c.Kind() != closed.Upward {
		return nil, fmt.Errorf("%w: post requires an upward-closed set", closed.ErrWrongClosureKind)
	}
	return a.PostNodesAllSymbols(c.Antichain())
}

// symbolsOf returns the symbols with a forward entry at s.
func (a *Afa) symbolsOf(s state.State) []state.Symbol {
	if !a.inRange(s) {
		return nil
	}
	out := make([]state.Symbol, 0, len(a.trans[s]))
	for _, t := range a.trans[s] {
		out = append(out, t.Symb)
	}
	return out
}

// PostNodeAllSymbols computes post(n): the union of post(n, a) over
// every symbol that appears in a forward entry for n's first state.
// This intentionally preserves the source's choice to consult only the
// first state of n rather than every state: since post(n, a) is an
// intersection over every state of n, a symbol absent at the first
// state contributes nothing regardless, so the narrower scan never
// misses a non-empty result. It is preserved as-is rather than widened.
func (a *Afa) PostNodeAllSymbols(n state.Node) (*closed.Set, error) {
	if n.Empty() {
		return closed.NewUpward(0, a.hi(), state.NewStates())
	}
	out, err := closed.NewUpward(0, a.hi())
	if err != nil {
		return nil, err
	}
	for _, symb := range a.symbolsOf(n.Min()) {
		next, err := a.PostNode(n, symb)
		if err != nil {
			return nil, err
		}
		out, err = out.Union(next)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// PostNodesAllSymbols computes post(N): the union over n in N of
// post(n).
func (a *Afa) PostNodesAllSymbols(ns state.Nodes) (*closed.Set, error) {
	out, err := closed.NewUpward(0, a.hi())
	if err != nil {
		return nil, err
	}
	for _, n := range ns.Slice() {
		next, err := a.PostNodeAllSymbols(n)
		if err != nil {
			return nil, err
		}
		out, err = out.Union(next)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
