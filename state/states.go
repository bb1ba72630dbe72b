// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package state

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/hashicorp/go-set/v2"
)

// States is a sorted, deduplicated set of State. It is the ordered-set
// primitive that a Node (one DNF conjunct) is built from, and is also
// used standalone wherever an ordered set of states is needed (Initial,
// Final, the universe of a closed set, ...).
//
// The zero value is an empty, usable set.
type States struct {
	t *set.TreeSet[State]
}

func stateCmp(a, b State) int { return cmp.Compare(a, b) }

// NewStates builds a States from the given elements, deduplicated and
// sorted ascending.
func NewStates(xs ...State) States {
	return States{t: set.TreeSetFrom[State](xs, stateCmp)}
}

func (s *States) lazyInit() {
	if s.t == nil {
		s.t = set.NewTreeSet[State](stateCmp)
	}
}

// Insert adds x to the set. Idempotent; preserves ascending order.
func (s *States) Insert(x State) {
	s.lazyInit()
	s.t.Insert(x)
}

// Len returns the number of elements.
func (s States) Len() int {
	if s.t == nil {
		return 0
	}
	return s.t.Size()
}

// Empty reports whether the set has no elements.
func (s States) Empty() bool {
	return s.Len() == 0
}

// Slice returns the elements in ascending order. The caller must not
// mutate the result's sharing with s.
func (s States) Slice() []State {
	if s.t == nil {
		return nil
	}
	return s.t.Slice()
}

// Min returns the smallest element. Panics if the set is empty; callers
// that can receive an empty node must check Empty() first, mirroring the
// source's use of *node.begin() only after emptiness has been ruled out.
func (s States) Min() State {
	xs := s.Slice()
	if len(xs) == 0 {
		panic("state: Min of empty States")
	}
	return xs[0]
}

// Contains reports whether x is an element of s.
func (s States) Contains(x State) bool {
	if s.t == nil {
		return false
	}
	return s.t.Contains(x)
}

// Union returns a new set containing every element of s or other.
func (s States) Union(other States) States {
	out := NewStates()
	out.lazyInit()
	if s.t != nil {
		out.t.InsertSet(s.t)
	}
	if other.t != nil {
		out.t.InsertSet(other.t)
	}
	return out
}

// Intersection returns a new set containing every element common to s
// and other.
func (s States) Intersection(other States) States {
	out := NewStates()
	if s.t == nil || other.t == nil {
		return out
	}
	out.t = s.t.Intersect(other.t).(*set.TreeSet[State])
	return out
}

// IsSubsetOf reports whether every element of s is also in other. A
// merge-based linear test via the underlying sorted representation.
func (s States) IsSubsetOf(other States) bool {
	if s.t == nil {
		return true
	}
	if other.t == nil {
		return s.Empty()
	}
	return other.t.Subset(s.t)
}

// Equal reports whether s and other contain exactly the same elements.
func (s States) Equal(other States) bool {
	return s.IsSubsetOf(other) && other.IsSubsetOf(s)
}

// Clone returns an independent copy of s.
func (s States) Clone() States {
	out := NewStates()
	if s.t != nil {
		out.t = s.t.Copy()
	}
	return out
}

// Key returns a canonical string encoding of s, suitable for use as a
// Go map key where sets must be compared by value (e.g. the "processed"
// set in the worklist emptiness tests).
func (s States) Key() string {
	xs := s.Slice()
	var b strings.Builder
	for i, x := range xs {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%d", uint32(x))
	}
	return b.String()
}

func (s States) String() string {
	xs := s.Slice()
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = x.String()
	}
	return "{" + strings.Join(parts, ",") + "}"
}
