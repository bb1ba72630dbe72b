// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package nfa

import "github.com/samo538/mata/state"

// Intersect computes the synchronous product of lhs and rhs: an
// on-the-fly pair worklist, each pair's transitions computed by a
// synchronized scan of the two symbol-ordered move lists (advancing
// whichever side has the smaller symbol, emitting only where both
// agree). If preserveEpsilon, the last transition entry of each side
// (by the reserved-largest-value convention, EPSILON sorts last when
// present) additionally contributes an asymmetric epsilon move that
// leaves the other side's state unchanged.
//
// Intersect is a total function: there is no error path.
func Intersect(lhs, rhs *Nfa, preserveEpsilon bool) (*Nfa, map[StatePair]state.State) {
	product := New(0)
	productMap := map[StatePair]state.State{}
	pending := map[StatePair]bool{}

	ensure := func(p, q state.State) state.State {
		key := StatePair{p, q}
		if s, ok := productMap[key]; ok {
			return s
		}
		s := product.AddState()
		productMap[key] = s
		pending[key] = true
		if lhs.HasFinal(p) && rhs.HasFinal(q) {
			product.AddFinal(s)
		}
		return s
	}

	emit := func(from state.State, symb state.Symbol, to state.States) {
		for _, d := range to.Slice() {
			product.AddTrans(from, symb, d)
		}
	}

	for _, p := range lhs.initial.Slice() {
		for _, q := range rhs.initial.Slice() {
			s := ensure(p, q)
			product.AddInitial(s)
		}
	}

	for len(pending) > 0 {
		var pair StatePair
		for k := range pending {
			pair = k
			break
		}
		delete(pending, pair)
		from := productMap[pair]

		lm := lhs.Transitions(pair.Lhs)
		rm := rhs.Transitions(pair.Rhs)
		i, j := 0, 0
		for i < len(lm) && j < len(rm) {
			switch {
			case lm[i].Symbol < rm[j].Symbol:
				i++
			case lm[i].Symbol > rm[j].Symbol:
				j++
			default:
				to := state.NewStates()
				for _, pTo := range lm[i].To.Slice() {
					for _, qTo := range rm[j].To.Slice() {
						to.Insert(ensure(pTo, qTo))
					}
				}
				emit(from, lm[i].Symbol, to)
				i++
				j++
			}
		}

		if preserveEpsilon {
			if n := len(lm); n > 0 && lm[n-1].Symbol == EPSILON {
				to := state.NewStates()
				for _, pTo := range lm[n-1].To.Slice() {
					to.Insert(ensure(pTo, pair.Rhs))
				}
				emit(from, EPSILON, to)
			}
			if n := len(rm); n > 0 && rm[n-1].Symbol == EPSILON {
				to := state.NewStates()
				for _, qTo := range rm[n-1].To.Slice() {
					to.Insert(ensure(pair.Lhs, qTo))
				}
				emit(from, EPSILON, to)
			}
		}
	}

	return product, productMap
}
