// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package closed

import (
	"fmt"

	"github.com/samo538/mata/state"
)

// Kind distinguishes an upward-closed family (characterized by its
// minimal elements) from a downward-closed one (characterized by its
// maximal elements).
type Kind int

const (
	Upward Kind = iota
	Downward
)

func (k Kind) String() string {
	if k == Upward {
		return "upward"
	}
	return "downward"
}

// Set is a closed family of Nodes over the universe [lo, hi], recorded
// only by its antichain. Set is a value type: Union, Intersection and
// the constructors all return fresh Sets rather than mutating in place,
// except Insert, which mutates its receiver's antichain (mirroring the
// source's in-place StateClosedSet::insert).
type Set struct {
	kind  Kind
	lo    state.State
	hi    state.State
	chain state.Nodes
}

// New builds an empty closed set of the given kind over [lo, hi], then
// inserts each of seed, in order. An error from a bad seed element is
// returned immediately; the set is left with whatever prefix of seed
// was successfully inserted, mirroring the "violations are fatal to the
// current operation" policy -- callers that need atomicity should not
// share a partially-seeded Set.
func New(kind Kind, lo, hi state.State, seed ...state.Node) (*Set, error) {
	s := &Set{kind: kind, lo: lo, hi: hi}
	for _, n := range seed {
		if err := s.Insert(n); err != nil {
			return s, err
		}
	}
	return s, nil
}

// NewUpward is a convenience constructor for New(Upward, lo, hi, seed...).
func NewUpward(lo, hi state.State, seed ...state.Node) (*Set, error) {
	return New(Upward, lo, hi, seed...)
}

// NewDownward is a convenience constructor for New(Downward, lo, hi, seed...).
func NewDownward(lo, hi state.State, seed ...state.Node) (*Set, error) {
	return New(Downward, lo, hi, seed...)
}

// Kind returns the closure direction.
func (s *Set) Kind() Kind { return s.kind }

// Antichain returns the stored antichain. The caller must treat the
// result as read-only; Set retains no aliasing guarantees once Insert
// is called again.
func (s *Set) Antichain() state.Nodes { return s.chain }

func (s *Set) inUniverse(n state.Node) bool {
	for _, x := range n.Slice() {
		if x < s.lo || x > s.hi {
			return false
		}
	}
	return true
}

// Insert adds node to the family, re-establishing the antichain
// invariant: for an upward-closed set, node is discarded if some
// existing element already dominates it (is a subset of it); otherwise
// every existing element node dominates (is a superset of it) is
// removed before node is added. Downward-closed insertion is the dual.
func (s *Set) Insert(node state.Node) error {
	if !s.inUniverse(node) {
		return fmt.Errorf("%w: node %s not within [%d,%d]", ErrOutOfUniverse, node, s.lo, s.hi)
	}
	cur := s.chain.Slice()
	kept := make([]state.Node, 0, len(cur)+1)
	for _, a := range cur {
		if s.kind == Upward {
			if a.IsSubsetOf(node) {
				// a already dominates node; node is redundant.
				s.chain = state.NewNodes(cur...)
				return nil
			}
			if !node.IsSubsetOf(a) {
				kept = append(kept, a)
			}
			// else: a is a superset of node, dominated by the incoming
			// node, and dropped.
		} else {
			if node.IsSubsetOf(a) {
				s.chain = state.NewNodes(cur...)
				return nil
			}
			if !a.IsSubsetOf(node) {
				kept = append(kept, a)
			}
		}
	}
	kept = append(kept, node)
	s.chain = state.NewNodes(kept...)
	return nil
}

// InsertAll inserts every node of nodes, in order. The resulting
// antichain does not depend on the order because antichain
// minimization is confluent.
func (s *Set) InsertAll(nodes state.Nodes) error {
	for _, n := range nodes.Slice() {
		if err := s.Insert(n); err != nil {
			return err
		}
	}
	return nil
}

// Contains reports whether node is a member of the closed family: for
// an upward-closed set, some antichain element is a subset of node; for
// a downward-closed set, some antichain element is a superset of node.
func (s *Set) Contains(node state.Node) bool {
	for _, a := range s.chain.Slice() {
		if s.kind == Upward {
			if a.IsSubsetOf(node) {
				return true
			}
		} else {
			if node.IsSubsetOf(a) {
				return true
			}
		}
	}
	return false
}

// IsSubsetOf reports whether every element of s's antichain is
// contained in other, i.e. s denotes a subfamily of other. Both sets
// must have the same Kind.
func (s *Set) IsSubsetOf(other *Set) bool {
	for _, a := range s.chain.Slice() {
		if !other.Contains(a) {
			return false
		}
	}
	return true
}

// Equals reports mutual subset containment.
func (s *Set) Equals(other *Set) bool {
	return s.IsSubsetOf(other) && other.IsSubsetOf(s)
}

// Union combines the antichains of s and other by insertion: the
// result is the minimal antichain representing the union of the two
// families. Both sets must have the same Kind and universe.
func (s *Set) Union(other *Set) (*Set, error) {
	out := &Set{kind: s.kind, lo: s.lo, hi: s.hi}
	if err := out.InsertAll(s.chain); err != nil {
		return out, err
	}
	if err := out.InsertAll(other.chain); err != nil {
		return out, err
	}
	return out, nil
}

// Intersection computes the closed-set intersection. For an
// upward-closed set the result's antichain is the re-minimized set of
// pairwise unions of an element of s's antichain with an element of
// other's; for a downward-closed set it is the re-maximized set of
// pairwise intersections.
func (s *Set) Intersection(other *Set) (*Set, error) {
	if s.kind != other.kind {
		return nil, fmt.Errorf("%w: cannot intersect %s with %s", ErrWrongClosureKind, s.kind, other.kind)
	}
	out := &Set{kind: s.kind, lo: s.lo, hi: s.hi}
	for _, a := range s.chain.Slice() {
		for _, b := range other.chain.Slice() {
			var combined state.Node
			if s.kind == Upward {
				combined = a.Union(b)
			} else {
				combined = a.Intersection(b)
			}
			if err := out.Insert(combined); err != nil {
				return out, err
			}
		}
	}
	return out, nil
}
