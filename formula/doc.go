// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package formula implements a hash-consed builder for positive
// Boolean formulas over states: leaves, conjunction and disjunction,
// structurally shared the way package logic's combinational circuit
// type C shares AND-nodes through a strash table. A built formula
// flattens to an antichain-normalized state.Nodes (one DNF disjunct
// per clause) via ToDNF.
package formula
