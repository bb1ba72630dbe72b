// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package state

// Node is one conjunctive clause of a DNF successor formula: an ordered
// set of states which must all be reached simultaneously. Node is just
// States under a domain-specific name.
type Node = States

// NodeCompare orders two Nodes lexicographically by their ascending
// element sequence, with shorter nodes preceding longer ones that share
// a common prefix. It gives Nodes (the set of Node) a total order, which
// is what makes antichain iteration and worklist processing order
// reproducible.
func NodeCompare(a, b Node) int {
	as, bs := a.Slice(), b.Slice()
	for i := 0; i < len(as) && i < len(bs); i++ {
		if as[i] != bs[i] {
			if as[i] < bs[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(as) < len(bs):
		return -1
	case len(as) > len(bs):
		return 1
	default:
		return 0
	}
}

// IsSubClause reports whether a is a subset of b, as sets of states.
// Exposed as a free function (rather than only the States method) to
// read naturally at antichain-comparability call sites: IsSubClause(a, b).
func IsSubClause(a, b Node) bool { return a.IsSubsetOf(b) }
