// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package textfmt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/samo538/mata/afa"
	"github.com/samo538/mata/parsec"
	"github.com/samo538/mata/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `@AFA
%Initial: q0
%Final: q2
q0 a (q1 & q2) | q3
`

func TestReadAfaParsesTransitionFormula(t *testing.T) {
	aut := afa.New(0)
	states := parsec.NewStateMap()
	symbols := parsec.NewSymbolMap()

	err := ReadAfa(strings.NewReader(sample), aut, states, symbols)
	require.NoError(t, err)

	q0 := states.ID("q0")
	q1 := states.ID("q1")
	q2 := states.ID("q2")
	q3 := states.ID("q3")
	assert.True(t, aut.IsInitial(q0))
	assert.True(t, aut.IsFinal(q2))

	a, ok := symbols.Symbol("a")
	require.True(t, ok)
	want := state.NewNodes(state.NewStates(q1, q2), state.NewStates(q3))
	assert.True(t, aut.HasTrans(afa.Trans{Src: q0, Symb: a, Dst: want}))
}

func TestFormatRoundTripsThroughReadAfa(t *testing.T) {
	aut := afa.New(0)
	states := parsec.NewStateMap()
	symbols := parsec.NewSymbolMap()
	require.NoError(t, ReadAfa(strings.NewReader(sample), aut, states, symbols))

	stateName := func(s state.State) (string, bool) {
		n, ok := states.Name(s)
		return n, ok
	}
	symbolName := func(sym state.Symbol) (string, bool) {
		return symbols.Name(sym)
	}

	var buf bytes.Buffer
	err := Format(&buf, aut, stateName, symbolName)
	require.NoError(t, err)

	aut2 := afa.New(0)
	states2 := parsec.NewStateMap()
	require.NoError(t, ReadAfa(bytes.NewReader(buf.Bytes()), aut2, states2, parsec.NewSymbolMap()))
	assert.Equal(t, aut.NumStates(), aut2.NumStates())
}
