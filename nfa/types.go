// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package nfa

import (
	"math"

	"github.com/samo538/mata/state"
)

// EPSILON is the reserved epsilon symbol: the largest possible Symbol
// value. Per convention, if a state has an epsilon transition it is
// stored last in that state's symbol-ordered transition list.
const EPSILON = state.Symbol(math.MaxUint32)

// SymbolMove is one entry of a state's transition list: on Symbol, move
// to any state of To.
type SymbolMove struct {
	Symbol state.Symbol
	To     state.States
}

// StatePair identifies one pair of original states visited while
// building a product automaton.
type StatePair struct {
	Lhs, Rhs state.State
}
