// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package inter collects small, composable capability interfaces
// shared across the mata packages, mirroring the way the teacher
// decomposes its solver surface (Adder, Model, Assumable, ...) into
// narrow interfaces rather than one large one. Most callers only need
// one or two of these, not a concrete *afa.Afa.
package inter

import (
	"github.com/samo538/mata/afa"
	"github.com/samo538/mata/closed"
	"github.com/samo538/mata/state"
)

// ClosedSetView is the read side of a closed.Set: enough to inspect a
// closed set's kind, antichain and membership without depending on
// whether the value came from post/pre or from a fresh constructor.
type ClosedSetView interface {
	Kind() closed.Kind
	Antichain() state.Nodes
	Contains(n state.Node) bool
}

// Transformer is the post/pre predicate-transformer capability of an
// AFA, taken over closed sets. *afa.Afa satisfies this via its
// PostClosed/PreClosed methods.
type Transformer interface {
	PostClosed(c *closed.Set, symb state.Symbol) (*closed.Set, error)
	PreClosed(c *closed.Set, symb state.Symbol) (*closed.Set, error)
}

// Recognizer is the emptiness-testing capability of an AFA: the four
// antichain-based tests that must agree on every automaton.
// *afa.Afa satisfies this directly.
type Recognizer interface {
	EmptyForwardFixpoint() (bool, error)
	EmptyForwardWorklist() (bool, error)
	EmptyBackwardFixpoint() (bool, error)
	EmptyBackwardWorklist() (bool, error)
}

// Builder is the incremental-construction capability shared by parsec
// and matad: accumulate forward and inverse transitions one at a time.
// *afa.Afa satisfies this directly.
type Builder interface {
	AddTrans(t afa.Trans) error
	AddInverseTrans(t afa.Trans) error
	AddInitial(s state.State)
	AddFinal(s state.State)
}

var (
	_ ClosedSetView = (*closed.Set)(nil)
	_ Transformer   = (*afa.Afa)(nil)
	_ Recognizer    = (*afa.Afa)(nil)
	_ Builder       = (*afa.Afa)(nil)
)
