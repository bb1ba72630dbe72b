// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen

import (
	"math/rand"
	"sync"

	"github.com/samo538/mata/afa"
	"github.com/samo538/mata/nfa"
	"github.com/samo538/mata/state"
)

// make the rng seedable, exactly as the teacher's package-level rng.
var rng = rand.New(rand.NewSource(33))
var mu sync.Mutex

// Seed replaces the package's random source, for reproducing a failing
// generated case.
func Seed(s int64) {
	mu.Lock()
	defer mu.Unlock()
	rng = rand.New(rand.NewSource(s))
}

// RandomAfa builds an Afa with numStates states and numSymbols symbols:
// each state gets, for each symbol, a transition with probability p to
// a destination of between 1 and 3 randomly chosen DNF clauses, each
// clause a random nonempty set of at most maxClauseSize states.
// Roughly 1/4 of states are marked initial and 1/4 final.
func RandomAfa(numStates, numSymbols int, p float64, maxClauseSize int) *afa.Afa {
	mu.Lock()
	defer mu.Unlock()

	a := afa.New(numStates)
	for s := 0; s < numStates; s++ {
		if rng.Float64() < 0.25 {
			a.AddInitial(state.State(s))
		}
		if rng.Float64() < 0.25 {
			a.AddFinal(state.State(s))
		}
		for sym := 0; sym < numSymbols; sym++ {
			if rng.Float64() >= p {
				continue
			}
			dst := randomNodes(numStates, maxClauseSize)
			t := afa.Trans{Src: state.State(s), Symb: state.Symbol(sym), Dst: dst}
			a.AddTrans(t)
			a.AddInverseTrans(t)
		}
	}
	return a
}

func randomNodes(numStates, maxClauseSize int) state.Nodes {
	numClauses := 1 + rng.Intn(3)
	ns := state.NewNodes()
	for i := 0; i < numClauses; i++ {
		ns.Insert(randomNode(numStates, maxClauseSize))
	}
	return ns
}

func randomNode(numStates, maxClauseSize int) state.Node {
	size := 1 + rng.Intn(maxClauseSize)
	n := state.NewStates()
	for i := 0; i < size; i++ {
		n.Insert(state.State(rng.Intn(numStates)))
	}
	return n
}

// RandomNfa builds an Nfa with numStates states and numSymbols symbols
// (the reserved epsilon symbol is never used): each (state, symbol) pair
// gets a transition to a random nonempty subset of the state space with
// probability p. Roughly 1/4 of states are marked initial and 1/4
// final, matching RandomAfa's proportions so the two generators produce
// comparably dense automata.
func RandomNfa(numStates, numSymbols int, p float64) *nfa.Nfa {
	mu.Lock()
	defer mu.Unlock()

	n := nfa.New(numStates)
	for s := 0; s < numStates; s++ {
		if rng.Float64() < 0.25 {
			n.AddInitial(state.State(s))
		}
		if rng.Float64() < 0.25 {
			n.AddFinal(state.State(s))
		}
		for sym := 0; sym < numSymbols; sym++ {
			if rng.Float64() >= p {
				continue
			}
			for _, dst := range randomStates(numStates).Slice() {
				n.AddTrans(state.State(s), state.Symbol(sym), dst)
			}
		}
	}
	return n
}

func randomStates(numStates int) state.States {
	size := 1 + rng.Intn(numStates)
	out := state.NewStates()
	for i := 0; i < size; i++ {
		out.Insert(state.State(rng.Intn(numStates)))
	}
	return out
}
