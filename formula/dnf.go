// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package formula

import (
	"github.com/samo538/mata/closed"
	"github.com/samo538/mata/state"
)

// ToDNF flattens l into an antichain-normalized state.Nodes: each
// disjunct is one conjunctive clause, distributing & over | the usual
// way (DNF(a & b) = { x union y : x in DNF(a), y in DNF(b) },
// DNF(a | b) = DNF(a) union DNF(b), DNF(leaf s) = { {s} }), then
// minimized through an upward-closed set exactly as add_trans
// re-normalizes a transition's destination.
func (b *Builder) ToDNF(l Lit, universeHi state.State) (state.Nodes, error) {
	clauses := b.flatten(l)
	cs, err := closed.NewUpward(0, universeHi, clauses...)
	if err != nil {
		return state.Nodes{}, err
	}
	return cs.Antichain(), nil
}

func (b *Builder) flatten(l Lit) []state.Node {
	n := &b.nodes[l]
	switch n.kind {
	case leafKind:
		return []state.Node{state.NewStates(n.s)}
	case orKind:
		return append(b.flatten(n.a), b.flatten(n.b)...)
	default: // andKind
		left := b.flatten(n.a)
		right := b.flatten(n.b)
		out := make([]state.Node, 0, len(left)*len(right))
		for _, x := range left {
			for _, y := range right {
				out = append(out, x.Union(y))
			}
		}
		return out
	}
}
