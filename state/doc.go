// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package state provides the primitive identifiers and ordered-set
// machinery that the rest of mata is built on: State and Symbol
// identifiers, States (a sorted, deduplicated set of State used both as
// a Node -- one DNF conjunct -- and as a generic ordered-set primitive),
// and Nodes (a sorted, deduplicated set of Node, i.e. a DNF).
//
// States and Nodes are thin, ordering-aware wrappers around
// github.com/hashicorp/go-set/v2's TreeSet. All set algebra used
// elsewhere in mata (closed-set antichains, transition destinations,
// inverse-transition sharing lists) reduces to the primitives here.
package state
