// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package bench times post/pre and the four antichain emptiness kernels
// over automata from package gen, the in-process equivalent of the
// teacher's instrumented-subprocess run harness: there is no external
// solver binary here to spawn and time, so timing happens through
// testing.B rather than a disk-backed InstRun.
package bench
