// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package afa

import "github.com/samo538/mata/state"

// Trans is a forward transition: from Src, on Symb, the automaton moves
// to any one clause of Dst.
type Trans struct {
	Src  state.State
	Symb state.Symbol
	Dst  state.Nodes
}

// InverseResult is one shared-clause record: every state in ResultNodes
// has, on the symbol of its enclosing InverseTrans, a transition whose
// destination contains the clause SharingList.
type InverseResult struct {
	ResultNodes state.States
	SharingList state.Node
}

// InverseTrans is the inverse transition entry for one symbol, stored
// under a representative state (the minimum state of each SharingList
// it holds).
type InverseTrans struct {
	Symb    state.Symbol
	Results []*InverseResult
}
