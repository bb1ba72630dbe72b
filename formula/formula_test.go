// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package formula

import (
	"testing"

	"github.com/samo538/mata/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeafHashConsing(t *testing.T) {
	b := NewBuilder()
	l1 := b.Leaf(3)
	l2 := b.Leaf(3)
	assert.Equal(t, l1, l2)
}

func TestAndCommutativeHashConsing(t *testing.T) {
	b := NewBuilder()
	x, y := b.Leaf(0), b.Leaf(1)
	assert.Equal(t, b.And(x, y), b.And(y, x))
	assert.Equal(t, x, b.And(x, x))
}

func TestToDNFDistributesAndOverOr(t *testing.T) {
	b := NewBuilder()
	x, y, z := b.Leaf(0), b.Leaf(1), b.Leaf(2)
	// x & (y | z)  ==  (x&y) | (x&z)
	l := b.And(x, b.Or(y, z))
	ns, err := b.ToDNF(l, 2)
	require.NoError(t, err)
	assert.True(t, ns.Contains(state.NewStates(0, 1)))
	assert.True(t, ns.Contains(state.NewStates(0, 2)))
	assert.Equal(t, 2, ns.Len())
}

func TestParseFormula(t *testing.T) {
	names := map[string]state.State{"0": 0, "1": 1, "2": 2}
	name := func(s string) (state.State, bool) {
		st, ok := names[s]
		return st, ok
	}

	b := NewBuilder()
	l, err := Parse(b, []string{"1", "&", "(", "0", "|", "2", ")"}, name)
	require.NoError(t, err)

	ns, err := b.ToDNF(l, 2)
	require.NoError(t, err)
	assert.True(t, ns.Contains(state.NewStates(0, 1)))
	assert.True(t, ns.Contains(state.NewStates(1, 2)))
}

func TestParseRejectsUnknownName(t *testing.T) {
	name := func(string) (state.State, bool) { return 0, false }
	b := NewBuilder()
	_, err := Parse(b, []string{"q7"}, name)
	assert.Error(t, err)
}
