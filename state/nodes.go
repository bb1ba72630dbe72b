// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package state

import (
	"strings"

	"github.com/hashicorp/go-set/v2"
)

// Nodes is a sorted, deduplicated set of Node: a disjunction of
// conjunctions, i.e. the successor set of one AFA transition (or the
// antichain of a closed set, before any closure semantics are applied).
//
// The zero value is an empty, usable set.
type Nodes struct {
	t *set.TreeSet[Node]
}

// NewNodes builds a Nodes set from the given elements.
func NewNodes(ns ...Node) Nodes {
	return Nodes{t: set.TreeSetFrom[Node](ns, NodeCompare)}
}

func (ns *Nodes) lazyInit() {
	if ns.t == nil {
		ns.t = set.NewTreeSet[Node](NodeCompare)
	}
}

// Insert adds n to the set. Plain set insertion: no antichain
// minimization is performed here, that is the closed-set engine's job.
func (ns *Nodes) Insert(n Node) {
	ns.lazyInit()
	ns.t.Insert(n)
}

// Len returns the number of elements.
func (ns Nodes) Len() int {
	if ns.t == nil {
		return 0
	}
	return ns.t.Size()
}

// Empty reports whether the set has no elements.
func (ns Nodes) Empty() bool { return ns.Len() == 0 }

// Slice returns the elements in ascending (NodeCompare) order.
func (ns Nodes) Slice() []Node {
	if ns.t == nil {
		return nil
	}
	return ns.t.Slice()
}

// Contains reports whether n is an element of ns (exact membership, not
// closure containment -- see package closed for closure semantics).
func (ns Nodes) Contains(n Node) bool {
	if ns.t == nil {
		return false
	}
	return ns.t.Contains(n)
}

// IsSubsetOf reports whether every element of ns is also an element of
// other, by exact membership (not antichain-dominance containment; see
// package closed for that).
func (ns Nodes) IsSubsetOf(other Nodes) bool {
	for _, n := range ns.Slice() {
		if !other.Contains(n) {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of ns.
func (ns Nodes) Clone() Nodes {
	out := Nodes{}
	if ns.t != nil {
		out.t = ns.t.Copy()
	}
	return out
}

func (ns Nodes) String() string {
	parts := make([]string, 0, ns.Len())
	for _, n := range ns.Slice() {
		parts = append(parts, n.String())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
