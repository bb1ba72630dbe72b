// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package gen generates random AFAs and NFAs for property-based and
// differential testing: cross-checking the four antichain emptiness
// tests against each other, and checking that NFA product construction
// agrees with simulating both operands directly.
package gen
