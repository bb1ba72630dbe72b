// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package state

import "fmt"

// State is a non-negative state identifier, dense in [0, |States|).
type State uint32

// String gives a short human readable form, "s<n>".
func (s State) String() string {
	return fmt.Sprintf("s%d", uint32(s))
}

// Symbol is a non-negative alphabet symbol identifier.
type Symbol uint32

// String gives a short human readable form, "a<n>".
func (a Symbol) String() string {
	return fmt.Sprintf("a%d", uint32(a))
}
