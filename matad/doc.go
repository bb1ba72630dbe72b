// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package matad is a small varint-coded wire protocol, modeled on
// the teacher's CRISP, for streaming add_trans/add_inverse_trans calls
// to a server holding one afa.Afa and querying its emptiness over the
// wire: useful for a fuzzer or external driver exercising many
// automata without paying process-startup cost per automaton. It is
// explicitly outer tooling, not part of the reasoning core: afa, closed
// and nfa never import it.
package matad
