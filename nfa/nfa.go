// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package nfa

import (
	"sort"

	"github.com/samo538/mata/state"
)

// Nfa is a nondeterministic finite automaton: a dense state space, a
// per-state list of SymbolMove kept sorted by Symbol, and initial/final
// state sets.
type Nfa struct {
	transitions [][]SymbolMove
	initial     state.States
	final       state.States
}

// New returns an Nfa with numStates states and no transitions.
func New(numStates int) *Nfa {
	return &Nfa{transitions: make([][]SymbolMove, numStates)}
}

// NumStates returns the size of the declared state space.
func (n *Nfa) NumStates() int { return len(n.transitions) }

// AddState grows the state space by one and returns the new state's id,
// mirroring Nfa::add_state used by the product construction to
// allocate fresh product states on demand.
func (n *Nfa) AddState() state.State {
	n.transitions = append(n.transitions, nil)
	return state.State(len(n.transitions) - 1)
}

// AddInitial marks s as an initial state.
func (n *Nfa) AddInitial(s state.State) { n.initial.Insert(s) }

// AddFinal marks s as a final state.
func (n *Nfa) AddFinal(s state.State) { n.final.Insert(s) }

// HasFinal reports whether s is a final state.
func (n *Nfa) HasFinal(s state.State) bool { return n.final.Contains(s) }

// HasInitial reports whether s is an initial state.
func (n *Nfa) HasInitial(s state.State) bool { return n.initial.Contains(s) }

// Initial returns the initial state set.
func (n *Nfa) Initial() state.States { return n.initial }

// Final returns the final state set.
func (n *Nfa) Final() state.States { return n.final }

// Transitions returns the symbol-ordered move list for src.
func (n *Nfa) Transitions(src state.State) []SymbolMove { return n.transitions[src] }

// AddTrans adds a transition from src on symb to dst, merging into the
// existing SymbolMove for symb if one is present, and otherwise
// inserting a fresh entry while keeping the list sorted by Symbol.
func (n *Nfa) AddTrans(src state.State, symb state.Symbol, dst state.State) {
	moves := n.transitions[src]
	i := sort.Search(len(moves), func(i int) bool { return moves[i].Symbol >= symb })
	if i < len(moves) && moves[i].Symbol == symb {
		moves[i].To.Insert(dst)
		return
	}
	to := state.NewStates()
	to.Insert(dst)
	moves = append(moves, SymbolMove{})
	copy(moves[i+1:], moves[i:])
	moves[i] = SymbolMove{Symbol: symb, To: to}
	n.transitions[src] = moves
}

// Accepts simulates word over n by subset construction and reports
// whether some run reaches a final state. Not claimed to be efficient;
// it exists so property tests can check concrete words against both an
// automaton and its product with another.
func (n *Nfa) Accepts(word []state.Symbol) bool {
	current := n.initial.Clone()
	for _, symb := range word {
		next := state.NewStates()
		for _, s := range current.Slice() {
			for _, mv := range n.transitions[s] {
				if mv.Symbol == symb {
					next = next.Union(mv.To)
				}
			}
		}
		current = next
		if current.Empty() {
			return false
		}
	}
	for _, s := range current.Slice() {
		if n.HasFinal(s) {
			return true
		}
	}
	return false
}
