// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package afa implements the alternating finite automaton core: forward
// and inverse transition relations, the post/pre predicate transformers
// over the concrete antichain domain (package closed), and the four
// antichain-based emptiness tests.
//
// An Afa is built incrementally by AddTrans/AddInverseTrans calls (the
// two are never mirrored automatically, matching the source this
// package is ported from) and is read-only once analysis begins.
package afa
