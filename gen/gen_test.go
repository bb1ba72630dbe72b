// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomAfaFourEmptinessTestsAgree(t *testing.T) {
	Seed(7)
	for i := 0; i < 20; i++ {
		a := RandomAfa(6, 2, 0.35, 2)
		ff, err := a.EmptyForwardFixpoint()
		assert.NoError(t, err)
		fw, err := a.EmptyForwardWorklist()
		assert.NoError(t, err)
		bf, err := a.EmptyBackwardFixpoint()
		assert.NoError(t, err)
		bw, err := a.EmptyBackwardWorklist()
		assert.NoError(t, err)
		assert.Equal(t, ff, fw)
		assert.Equal(t, ff, bf)
		assert.Equal(t, ff, bw)
	}
}

func TestRandomNfaAcceptsDoesNotPanicOnEmptyWord(t *testing.T) {
	Seed(11)
	n := RandomNfa(5, 2, 0.4)
	assert.NotPanics(t, func() {
		n.Accepts(nil)
	})
}
