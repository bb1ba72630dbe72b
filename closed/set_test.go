// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package closed

import (
	"testing"

	"github.com/samo538/mata/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func node(xs ...state.State) state.Node { return state.NewStates(xs...) }

func TestInsertDominatedDiscarded(t *testing.T) {
	s, err := NewUpward(0, 5, node(1))
	require.NoError(t, err)
	require.NoError(t, s.Insert(node(1, 2)))
	assert.Equal(t, 1, s.Antichain().Len())
	assert.True(t, s.Antichain().Contains(node(1)))
}

func TestInsertRemovesDominatedSupersets(t *testing.T) {
	s, err := NewUpward(0, 5, node(1, 2))
	require.NoError(t, err)
	require.NoError(t, s.Insert(node(1)))
	assert.Equal(t, 1, s.Antichain().Len())
	assert.True(t, s.Antichain().Contains(node(1)))
}

func TestInsertOutOfUniverse(t *testing.T) {
	s, err := NewUpward(0, 2)
	require.NoError(t, err)
	err = s.Insert(node(5))
	assert.ErrorIs(t, err, ErrOutOfUniverse)
}

func TestDownwardDual(t *testing.T) {
	s, err := NewDownward(0, 5, node(1, 2))
	require.NoError(t, err)
	require.NoError(t, s.Insert(node(1)))
	assert.Equal(t, 1, s.Antichain().Len())
	assert.True(t, s.Antichain().Contains(node(1, 2)))
}

func TestContainsUpward(t *testing.T) {
	s, err := NewUpward(0, 5, node(1))
	require.NoError(t, err)
	assert.True(t, s.Contains(node(1, 2)))
	assert.False(t, s.Contains(node(2)))
}

func TestContainsDownward(t *testing.T) {
	s, err := NewDownward(0, 5, node(1, 2))
	require.NoError(t, err)
	assert.True(t, s.Contains(node(1)))
	assert.False(t, s.Contains(node(1, 2, 3)))
}

func TestUnionIdempotentAndCommutative(t *testing.T) {
	a, _ := NewUpward(0, 5, node(1))
	b, _ := NewUpward(0, 5, node(2))
	ab, err := a.Union(b)
	require.NoError(t, err)
	ba, err := b.Union(a)
	require.NoError(t, err)
	assert.True(t, ab.Equals(ba))

	aa, err := a.Union(a)
	require.NoError(t, err)
	assert.True(t, aa.Equals(a))
}

func TestIntersectionUpward(t *testing.T) {
	a, _ := NewUpward(0, 5, node(1))
	b, _ := NewUpward(0, 5, node(2))
	inter, err := a.Intersection(b)
	require.NoError(t, err)
	assert.True(t, inter.Antichain().Contains(node(1, 2)))
}

func TestIntersectionDownward(t *testing.T) {
	a, _ := NewDownward(0, 5, node(1, 2))
	b, _ := NewDownward(0, 5, node(2, 3))
	inter, err := a.Intersection(b)
	require.NoError(t, err)
	assert.True(t, inter.Antichain().Contains(node(2)))
}

func TestEmptyAntichainVsUniversalFamily(t *testing.T) {
	empty, _ := NewUpward(0, 5)
	assert.Equal(t, 0, empty.Antichain().Len())
	assert.False(t, empty.Contains(node(1)))

	universal, err := NewUpward(0, 5, node())
	require.NoError(t, err)
	assert.Equal(t, 1, universal.Antichain().Len())
	assert.True(t, universal.Contains(node(1, 2, 3)))
}

func TestIsSubsetOfAndEquals(t *testing.T) {
	a, _ := NewUpward(0, 5, node(1))
	b, _ := NewUpward(0, 5, node(1), node(2))
	assert.True(t, a.IsSubsetOf(b))
	assert.False(t, b.IsSubsetOf(a))
	assert.False(t, a.Equals(b))
}
