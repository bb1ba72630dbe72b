// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bench

import (
	"testing"

	"github.com/samo538/mata/gen"
	"github.com/samo538/mata/nfa"
)

func BenchmarkPostState(b *testing.B) {
	gen.Seed(33)
	a := gen.RandomAfa(64, 4, 0.3, 3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.PostState(0, 0)
	}
}

func BenchmarkPreNode(b *testing.B) {
	gen.Seed(33)
	a := gen.RandomAfa(64, 4, 0.3, 3)
	nodes, err := a.GetFinalNodes()
	if err != nil {
		b.Fatal(err)
	}
	antichain := nodes.Antichain()
	if antichain.Empty() {
		b.Skip("no final nodes in generated automaton")
	}
	n := antichain.Slice()[0]
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.PreNode(n, 0)
	}
}

func BenchmarkEmptyForwardFixpoint(b *testing.B) {
	gen.Seed(33)
	a := gen.RandomAfa(64, 4, 0.3, 3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.EmptyForwardFixpoint()
	}
}

func BenchmarkEmptyForwardWorklist(b *testing.B) {
	gen.Seed(33)
	a := gen.RandomAfa(64, 4, 0.3, 3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.EmptyForwardWorklist()
	}
}

func BenchmarkEmptyBackwardFixpoint(b *testing.B) {
	gen.Seed(33)
	a := gen.RandomAfa(64, 4, 0.3, 3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.EmptyBackwardFixpoint()
	}
}

func BenchmarkEmptyBackwardWorklist(b *testing.B) {
	gen.Seed(33)
	a := gen.RandomAfa(64, 4, 0.3, 3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.EmptyBackwardWorklist()
	}
}

func BenchmarkNfaIntersect(b *testing.B) {
	gen.Seed(33)
	lhs := gen.RandomNfa(24, 3, 0.3)
	rhs := gen.RandomNfa(24, 3, 0.3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		nfa.Intersect(lhs, rhs, false)
	}
}
