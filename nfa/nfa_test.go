// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package nfa

import (
	"testing"

	"github.com/samo538/mata/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddTransKeepsMoveListSortedBySymbol(t *testing.T) {
	n := New(3)
	n.AddTrans(0, 5, 1)
	n.AddTrans(0, 1, 2)
	n.AddTrans(0, 5, 2)

	moves := n.Transitions(0)
	require.Len(t, moves, 2)
	assert.Equal(t, state.Symbol(1), moves[0].Symbol)
	assert.Equal(t, state.Symbol(5), moves[1].Symbol)
	assert.True(t, moves[1].To.Contains(1))
	assert.True(t, moves[1].To.Contains(2))
}

func TestAccepts(t *testing.T) {
	n := New(2)
	n.AddInitial(0)
	n.AddFinal(1)
	n.AddTrans(0, 7, 1)

	assert.True(t, n.Accepts([]state.Symbol{7}))
	assert.False(t, n.Accepts([]state.Symbol{8}))
	assert.False(t, n.Accepts(nil))
}

// Scenario 5: single-transition NFAs, classic intersection.
func TestScenarioClassicIntersection(t *testing.T) {
	lhs := New(2)
	lhs.AddInitial(0)
	lhs.AddFinal(1)
	lhs.AddTrans(0, 1, 1)

	rhs := New(2)
	rhs.AddInitial(0)
	rhs.AddFinal(1)
	rhs.AddTrans(0, 1, 1)

	product, _ := Intersect(lhs, rhs, false)

	assert.True(t, product.Accepts([]state.Symbol{1}))
	assert.False(t, product.Accepts([]state.Symbol{2}))

	var numInitial, numFinal int
	for s := 0; s < product.NumStates(); s++ {
		if product.HasInitial(state.State(s)) {
			numInitial++
		}
		if product.HasFinal(state.State(s)) {
			numFinal++
		}
	}
	assert.Equal(t, 1, numInitial)
	assert.Equal(t, 1, numFinal)
}

// Scenario 6: epsilon-preserving intersection.
func TestScenarioEpsilonPreservingIntersection(t *testing.T) {
	lhs := New(1)
	lhs.AddInitial(0)
	lhs.AddTrans(0, EPSILON, 0)

	rhs := New(2)
	rhs.AddInitial(0)
	rhs.AddInitial(1)

	product, productMap := Intersect(lhs, rhs, true)

	for _, q := range rhs.Initial().Slice() {
		pair := StatePair{Lhs: 0, Rhs: q}
		s, ok := productMap[pair]
		require.True(t, ok)
		moves := product.Transitions(s)
		require.Len(t, moves, 1)
		assert.Equal(t, EPSILON, moves[0].Symbol)
		assert.True(t, moves[0].To.Contains(s))
	}
}

func TestIntersectionLanguageAgreesWithBothOperands(t *testing.T) {
	lhs := New(3)
	lhs.AddInitial(0)
	lhs.AddFinal(2)
	lhs.AddTrans(0, 1, 1)
	lhs.AddTrans(1, 2, 2)

	rhs := New(2)
	rhs.AddInitial(0)
	rhs.AddFinal(1)
	rhs.AddTrans(0, 1, 1)
	rhs.AddTrans(1, 1, 1)

	product, _ := Intersect(lhs, rhs, false)

	words := [][]state.Symbol{{1, 2}, {1, 1}, {2}, {1, 1, 2}}
	for _, w := range words {
		assert.Equal(t, lhs.Accepts(w) && rhs.Accepts(w), product.Accepts(w), "word %v", w)
	}
}
