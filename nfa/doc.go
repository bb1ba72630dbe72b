// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package nfa implements a minimal nondeterministic finite automaton
// type and the synchronous product-construction kernel: on-the-fly
// pair enumeration driven by a synchronized scan of two
// symbol-ordered transition lists, in both a classic and an
// epsilon-preserving variant.
package nfa
