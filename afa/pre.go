// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package afa

import (
	"fmt"

	"github.com/samo538/mata/closed"
	"github.com/samo538/mata/state"
)

// candidatesFor collects every stored InverseResult reachable from the
// states of n under symb: one state of n can be the representative of
// a clause even if another state of n is not, so every state is
// consulted (the inverse relation's "partial lookup" property).
func (a *Afa) candidatesFor(n state.Node, symb state.Symbol) []*InverseResult {
	var out []*InverseResult
	for _, s := range n.Slice() {
		if !a.inRange(s) {
			continue
		}
		i := a.invEntryIndex(s, symb)
		if i < 0 {
			continue
		}
		out = append(out, a.inv[s][i].Results...)
	}
	return out
}

// PreNode computes pre(n, a): the downward-closure of the union of
// result_nodes over every candidate whose sharing_list is a subset of
// n. A node with no matching inverse entry maps to the empty
// downward-closed set (not the singleton family {emptyset}).
func (a *Afa) PreNode(n state.Node, symb state.Symbol) (*closed.Set, error) {
	result := state.NewStates()
	for _, c := range a.candidatesFor(n, symb) {
		if c.SharingList.IsSubsetOf(n) {
			result = result.Union(c.ResultNodes)
		}
	}
	if result.Empty() {
		return closed.NewDownward(0, a.hi())
	}
	return closed.NewDownward(0, a.hi(), result)
}

// PreNodes computes pre(N, a): the downward-closed union over n in N of
// pre(n, a).
func (a *Afa) PreNodes(ns state.Nodes, symb state.Symbol) (*closed.Set, error) {
	out, err := closed.NewDownward(0, a.hi())
	if err != nil {
		return nil, err
	}
	for _, n := range ns.Slice() {
		next, err := a.PreNode(n, symb)
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

// PreClosed computes pre(C, a). C must be downward-closed.
func (a *Afa) PreClosed(c *closed.Set, symb state.Symbol) (*closed.Set, error) {
	if c.Kind() != closed.Downward {
		return nil, fmt.Errorf("%w: pre requires a downward-closed set", closed.ErrWrongClosureKind)
	}
	return a.PreNodes(c.Antichain(), symb)
}

// PreClosedAllSymbols computes pre(C): PreClosed summed over every
// symbol relevant to C's antichain, per PreNodesAllSymbols. C must be
// downward-closed.
func (a *Afa) PreClosedAllSymbols(c *closed.Set) (*closed.Set, error) {
	if c.Kind() != closed.Downward {
		return nil, fmt.Errorf("%w: pre requires a downward-closed set", closed.ErrWrongClosureKind)
	}
	return a.PreNodesAllSymbols(c.Antichain())
}

// inverseSymbolsOf returns the symbols with an inverse entry at s.
func (a *Afa) inverseSymbolsOf(s state.State) []state.Symbol {
	if !a.inRange(s) {
		return nil
	}
	out := make([]state.Symbol, 0, len(a.inv[s]))
	for _, it := range a.inv[s] {
		out = append(out, it.Symb)
	}
	return out
}

// PreNodeAllSymbols computes pre(n): the union of pre(n, a) over every
// symbol that appears in an inverse entry for n's first state. An empty
// query node is a documented special case: it yields the family
// {emptyset}, the dual of post's empty-node edge case, not the empty
// family that PreNode(n, a) produces for a non-matching non-empty
// query.
func (a *Afa) PreNodeAllSymbols(n state.Node) (*closed.Set, error) {
	if n.Empty() {
		return closed.NewDownward(0, a.hi(), state.NewStates())
	}
	out, err := closed.NewDownward(0, a.hi())
	if err != nil {
		return nil, err
	}
	for _, symb := range a.inverseSymbolsOf(n.Min()) {
		next, err := a.PreNode(n, symb)
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

// PreNodesAllSymbols computes pre(N): the union over n in N of pre(n).
func (a *Afa) PreNodesAllSymbols(ns state.Nodes) (*closed.Set, error) {
	out, err := closed.NewDownward(0, a.hi())
	if err != nil {
		return nil, err
	}
	for _, n := range ns.Slice() {
		next, err := a.PreNodeAllSymbols(n)
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
