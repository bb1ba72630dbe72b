// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package formula

import "github.com/samo538/mata/state"

// Lit identifies a node of a Builder's formula DAG. The zero Lit is
// never returned by Leaf/And/Or and is not a valid argument to them.
type Lit uint32

type kind uint8

const (
	leafKind kind = iota
	andKind
	orKind
)

type node struct {
	kind kind
	a, b Lit        // children, for andKind/orKind
	s    state.State // leaf state, for leafKind
	n    uint32      // next node in this strash bucket
}

// Builder hash-conses a positive Boolean formula over states: equal
// sub-formulas (same kind, same children, same leaf state) are built
// exactly once, exactly as logic.C shares AND-nodes through its own
// strash table.
type Builder struct {
	nodes  []node
	strash []uint32
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return NewBuilderCap(128)
}

// NewBuilderCap returns an empty Builder with an initial table size
// hint of capHint.
func NewBuilderCap(capHint int) *Builder {
	if capHint < 2 {
		capHint = 2
	}
	return &Builder{
		nodes:  make([]node, 1, capHint),
		strash: make([]uint32, capHint),
	}
}

func strashCode(k kind, a, b Lit, s state.State) uint32 {
	switch k {
	case leafKind:
		return uint32(s)*2654435761 + 1
	default:
		return (uint32(a)<<13)*uint32(b+1) + uint32(k)
	}
}

func (b *Builder) find(k kind, a, bb Lit, s state.State) (Lit, uint32) {
	code := strashCode(k, a, bb, s)
	bucket := code % uint32(cap(b.nodes))
	i := b.strash[bucket]
	for i != 0 {
		n := &b.nodes[i]
		if n.kind == k && n.a == a && n.b == bb && n.s == s {
			return Lit(i), bucket
		}
		i = n.n
	}
	return 0, bucket
}

func (b *Builder) insert(k kind, a, bb Lit, s state.State, bucket uint32) Lit {
	if len(b.nodes) == cap(b.nodes) {
		b.grow()
		bucket = strashCode(k, a, bb, s) % uint32(cap(b.nodes))
	}
	id := uint32(len(b.nodes))
	b.nodes = append(b.nodes, node{kind: k, a: a, b: bb, s: s, n: b.strash[bucket]})
	b.strash[bucket] = id
	return Lit(id)
}

func (b *Builder) grow() {
	newCap := cap(b.nodes) * 2
	nodes := make([]node, len(b.nodes), newCap)
	copy(nodes, b.nodes)
	strash := make([]uint32, newCap)
	for i := 1; i < len(nodes); i++ {
		n := &nodes[i]
		bucket := strashCode(n.kind, n.a, n.b, n.s) % uint32(newCap)
		n.n = strash[bucket]
		strash[bucket] = uint32(i)
	}
	b.nodes = nodes
	b.strash = strash
}

// Leaf returns the Lit for state s, building it if this is the first
// occurrence.
func (b *Builder) Leaf(s state.State) Lit {
	if l, bucket := b.find(leafKind, 0, 0, s); l != 0 {
		return l
	} else {
		return b.insert(leafKind, 0, 0, s, bucket)
	}
}

// And returns the Lit for the conjunction of a and b.
func (b *Builder) And(a, bb Lit) Lit {
	if a == bb {
		return a
	}
	if a > bb {
		a, bb = bb, a
	}
	if l, bucket := b.find(andKind, a, bb, 0); l != 0 {
		return l
	} else {
		return b.insert(andKind, a, bb, 0, bucket)
	}
}

// Or returns the Lit for the disjunction of a and b.
func (b *Builder) Or(a, bb Lit) Lit {
	if a == bb {
		return a
	}
	if a > bb {
		a, bb = bb, a
	}
	if l, bucket := b.find(orKind, a, bb, 0); l != 0 {
		return l
	} else {
		return b.insert(orKind, a, bb, 0, bucket)
	}
}

// Ands folds And over ms. Ands() with no arguments is an error for
// callers to avoid: there is no identity Lit in a leaf-only formula
// DAG, so the empty case is left to the caller (see Parse).
func (b *Builder) Ands(ms ...Lit) Lit {
	a := ms[0]
	for _, m := range ms[1:] {
		a = b.And(a, m)
	}
	return a
}

// Ors folds Or over ms.
func (b *Builder) Ors(ms ...Lit) Lit {
	d := ms[0]
	for _, m := range ms[1:] {
		d = b.Or(d, m)
	}
	return d
}
