// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package parsec defines the I/O boundary between an already-parsed
// automaton description (Section) and an afa.Afa: Construct populates
// an Afa from a Section, Serialize produces one from an Afa. Neither
// function parses or prints any concrete text; that is package
// textfmt's job, injected here only through the FormulaParser and
// NameMapper contracts.
package parsec
