// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package afa

import (
	"testing"

	"github.com/samo538/mata/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func node(xs ...state.State) state.Node { return state.NewStates(xs...) }

func TestAddTransCreatesEntry(t *testing.T) {
	a := New(3)
	require.NoError(t, a.AddTrans(Trans{Src: 0, Symb: 0, Dst: state.NewNodes(node(1, 2))}))
	d, err := a.PostState(0, 0)
	require.NoError(t, err)
	assert.True(t, d.Antichain().Contains(node(1, 2)))
}

func TestAddTransReNormalizesDominatedClause(t *testing.T) {
	a := New(3)
	require.NoError(t, a.AddTrans(Trans{Src: 0, Symb: 0, Dst: state.NewNodes(node(1))}))
	require.NoError(t, a.AddTrans(Trans{Src: 0, Symb: 0, Dst: state.NewNodes(node(1, 2))}))
	d, err := a.PostState(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, d.Antichain().Len())
	assert.True(t, d.Antichain().Contains(node(1)))
}

func TestAddTransOutOfRangeSource(t *testing.T) {
	a := New(2)
	err := a.AddTrans(Trans{Src: 5, Symb: 0, Dst: state.NewNodes(node(1))})
	assert.ErrorIs(t, err, ErrNoSuchSourceState)
}

func TestAddInverseTransSharesClauseUnderRepresentative(t *testing.T) {
	a := New(3)
	require.NoError(t, a.AddInverseTrans(Trans{Src: 0, Symb: 0, Dst: state.NewNodes(node(1, 2))}))
	require.NoError(t, a.AddInverseTrans(Trans{Src: 2, Symb: 0, Dst: state.NewNodes(node(1, 2))}))

	d, err := a.PreNode(node(1, 2), 0)
	require.NoError(t, err)
	assert.True(t, d.Contains(node(0, 2)))
}

func TestHasTrans(t *testing.T) {
	a := New(3)
	require.NoError(t, a.AddTrans(Trans{Src: 0, Symb: 0, Dst: state.NewNodes(node(1, 2))}))
	assert.True(t, a.HasTrans(Trans{Src: 0, Symb: 0, Dst: state.NewNodes(node(1, 2))}))
	assert.False(t, a.HasTrans(Trans{Src: 0, Symb: 0, Dst: state.NewNodes(node(1))}))
	assert.False(t, a.HasTrans(Trans{Src: 0, Symb: 1, Dst: state.NewNodes(node(1, 2))}))
}

func TestGetInitialAndFinalNodes(t *testing.T) {
	a := New(3)
	a.AddInitial(0)
	a.AddInitial(1)
	a.AddFinal(2)

	ini, err := a.GetInitialNodes()
	require.NoError(t, err)
	assert.True(t, ini.Antichain().Contains(node(0)))
	assert.True(t, ini.Antichain().Contains(node(1)))

	fin, err := a.GetFinalNodes()
	require.NoError(t, err)
	assert.True(t, fin.Antichain().Contains(node(2)))

	nonFinal, err := a.GetNonFinalNodes()
	require.NoError(t, err)
	assert.True(t, nonFinal.Antichain().Contains(node(0)))
	assert.True(t, nonFinal.Antichain().Contains(node(1)))

	nonInitial, err := a.GetNonInitialNodes()
	require.NoError(t, err)
	assert.True(t, nonInitial.Antichain().Contains(node(2)))
}

func TestAcceptsEpsilon(t *testing.T) {
	a := New(2)
	a.AddInitial(0)
	a.AddFinal(1)
	assert.False(t, a.AcceptsEpsilon())
	a.AddFinal(0)
	assert.True(t, a.AcceptsEpsilon())
}

func TestPostEmptyNodeIsUniversalUpwardFamily(t *testing.T) {
	a := New(2)
	d, err := a.PostNode(node(), 0)
	require.NoError(t, err)
	assert.True(t, d.Contains(node(0, 1)))
}

func TestPreNoMatchIsEmptyDownwardFamily(t *testing.T) {
	a := New(3)
	d, err := a.PreNode(node(1), 0)
	require.NoError(t, err)
	assert.Equal(t, 0, d.Antichain().Len())
}

// Scenario 1: singleton AFA, no transitions, initial == final.
func TestScenarioSingletonAFA(t *testing.T) {
	a := New(1)
	a.AddInitial(0)
	a.AddFinal(0)

	empty, err := a.EmptyForwardFixpoint()
	require.NoError(t, err)
	assert.False(t, empty)

	for _, fn := range []func() (bool, error){a.EmptyForwardWorklist, a.EmptyBackwardFixpoint, a.EmptyBackwardWorklist} {
		got, err := fn()
		require.NoError(t, err)
		assert.False(t, got)
	}
}

// Scenario 2: dead AFA, no transitions, disjoint initial/final.
func TestScenarioDeadAFA(t *testing.T) {
	a := New(2)
	a.AddInitial(0)
	a.AddFinal(1)

	for _, fn := range []func() (bool, error){
		a.EmptyForwardFixpoint, a.EmptyForwardWorklist,
		a.EmptyBackwardFixpoint, a.EmptyBackwardWorklist,
	} {
		got, err := fn()
		require.NoError(t, err)
		assert.True(t, got)
	}
}

// Scenario 3: conjunctive step.
func TestScenarioConjunctiveStep(t *testing.T) {
	a := New(3)
	a.AddInitial(0)
	a.AddFinal(2)
	trans := Trans{Src: 0, Symb: 0, Dst: state.NewNodes(node(1, 2))}
	require.NoError(t, a.AddTrans(trans))
	require.NoError(t, a.AddInverseTrans(trans))

	post, err := a.PostState(0, 0)
	require.NoError(t, err)
	assert.True(t, post.Antichain().Contains(node(1, 2)))

	pre12, err := a.PreNode(node(1, 2), 0)
	require.NoError(t, err)
	assert.True(t, pre12.Contains(node(0)))

	pre1, err := a.PreNode(node(1), 0)
	require.NoError(t, err)
	assert.Equal(t, 0, pre1.Antichain().Len())
}

// Scenario 4: antichain minimization on AddTrans.
func TestScenarioAntichainMinimization(t *testing.T) {
	a := New(3)
	require.NoError(t, a.AddTrans(Trans{Src: 0, Symb: 0, Dst: state.NewNodes(node(1))}))
	require.NoError(t, a.AddTrans(Trans{Src: 0, Symb: 0, Dst: state.NewNodes(node(1, 2))}))

	d, err := a.PostState(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, d.Antichain().Len())
	assert.True(t, d.Antichain().Contains(node(1)))
}

func TestFourEmptinessTestsAgree(t *testing.T) {
	build := func() *Afa {
		a := New(4)
		a.AddInitial(0)
		a.AddFinal(3)
		t1 := Trans{Src: 0, Symb: 0, Dst: state.NewNodes(node(1))}
		t2 := Trans{Src: 1, Symb: 0, Dst: state.NewNodes(node(2))}
		t3 := Trans{Src: 2, Symb: 0, Dst: state.NewNodes(node(3))}
		for _, tr := range []Trans{t1, t2, t3} {
			require.NoError(t, a.AddTrans(tr))
			require.NoError(t, a.AddInverseTrans(tr))
		}
		return a
	}
	a := build()
	results := make([]bool, 0, 4)
	for _, fn := range []func() (bool, error){
		a.EmptyForwardFixpoint, a.EmptyForwardWorklist,
		a.EmptyBackwardFixpoint, a.EmptyBackwardWorklist,
	} {
		got, err := fn()
		require.NoError(t, err)
		results = append(results, got)
	}
	for _, r := range results[1:] {
		assert.Equal(t, results[0], r)
	}
	assert.False(t, results[0])
}
