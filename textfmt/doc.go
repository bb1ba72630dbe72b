// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package textfmt is one concrete, line-oriented surface syntax for an
// AFA description, in the spirit of the teacher's dimacs readers: a
// header line names the section type, dict lines declare the initial
// and final state sets, and the remaining lines are transitions of the
// form "src symb formula", where formula is a positive Boolean formula
// over state names parsed by package formula.
//
// textfmt is additive. The core packages (state, closed, afa, nfa)
// never import it, and parsec.Construct/Serialize take their grammar as
// an injected FormulaParser/NameMapper, so a caller is free to ignore
// textfmt entirely and supply a different concrete syntax.
package textfmt
