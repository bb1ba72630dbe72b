// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package closed implements the closed-set engine: a representation of
// an upward- or downward-closed family of Nodes by its antichain (the
// family's minimal, resp. maximal, elements).
//
// A Set is the concrete domain that the AFA predicate transformers
// post and pre (package afa) operate over, and the substrate of the
// four antichain-based emptiness tests.
package closed
