// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package afa

import (
	"github.com/samo538/mata/closed"
	"github.com/samo538/mata/state"
)

// EmptyForwardFixpoint decides language emptiness by forward Kleene
// iteration in the concrete antichain domain: starting from the
// initial nodes, repeatedly union in post(current) until a fixed
// point, rejecting early the moment the running set escapes the
// non-final nodes.
func (a *Afa) EmptyForwardFixpoint() (bool, error) {
	goal, err := a.GetNonFinalNodes()
	if err != nil {
		return false, err
	}
	next, err := a.GetInitialNodes()
	if err != nil {
		return false, err
	}
	current, err := closed.NewUpward(0, a.hi())
	if err != nil {
		return false, err
	}
	for !current.Equals(next) {
		current = next
		post, err := a.PostClosedAllSymbols(current)
		if err != nil {
			return false, err
		}
		next, err = current.Union(post)
		if err != nil {
			return false, err
		}
		if !next.IsSubsetOf(goal) {
			return false, nil
		}
	}
	return true, nil
}

// EmptyForwardWorklist decides the same property as
// EmptyForwardFixpoint, but avoids recomputing post of already-
// processed nodes by driving a worklist instead of full set unions.
func (a *Afa) EmptyForwardWorklist() (bool, error) {
	goal, err := a.GetNonFinalNodes()
	if err != nil {
		return false, err
	}
	initial, err := a.GetInitialNodes()
	if err != nil {
		return false, err
	}

	if !initial.IsSubsetOf(goal) {
		return false, nil
	}

	worklist := append([]state.Node(nil), initial.Antichain().Slice()...)
	processed := map[string]bool{}
	for len(worklist) > 0 {
		n := worklist[0]
		worklist = worklist[1:]
		key := n.Key()
		if processed[key] {
			continue
		}
		processed[key] = true
		post, err := a.PostNodeAllSymbols(n)
		if err != nil {
			return false, err
		}
		for _, elem := range post.Antichain().Slice() {
			if !goal.Contains(elem) {
				return false, nil
			}
			if !processed[elem.Key()] {
				worklist = append(worklist, elem)
			}
		}
	}
	return true, nil
}

// EmptyBackwardFixpoint is the backward dual of EmptyForwardFixpoint:
// post/pre, initial/final and upward/downward are exchanged.
func (a *Afa) EmptyBackwardFixpoint() (bool, error) {
	goal, err := a.GetNonInitialNodes()
	if err != nil {
		return false, err
	}
	next, err := a.GetFinalNodes()
	if err != nil {
		return false, err
	}
	current, err := closed.NewDownward(0, a.hi())
	if err != nil {
		return false, err
	}
	for !current.Equals(next) {
		current = next
		pre, err := a.PreClosedAllSymbols(current)
		if err != nil {
			return false, err
		}
		next, err = current.Union(pre)
		if err != nil {
			return false, err
		}
		if !next.IsSubsetOf(goal) {
			return false, nil
		}
	}
	return true, nil
}

// EmptyBackwardWorklist is the backward dual of EmptyForwardWorklist.
func (a *Afa) EmptyBackwardWorklist() (bool, error) {
	goal, err := a.GetNonInitialNodes()
	if err != nil {
		return false, err
	}
	final, err := a.GetFinalNodes()
	if err != nil {
		return false, err
	}

	if !final.IsSubsetOf(goal) {
		return false, nil
	}

	worklist := append([]state.Node(nil), final.Antichain().Slice()...)
	processed := map[string]bool{}
	for len(worklist) > 0 {
		n := worklist[0]
		worklist = worklist[1:]
		key := n.Key()
		if processed[key] {
			continue
		}
		processed[key] = true
		pre, err := a.PreNodeAllSymbols(n)
		if err != nil {
			return false, err
		}
		for _, elem := range pre.Antichain().Slice() {
			if !goal.Contains(elem) {
				return false, nil
			}
			if !processed[elem.Key()] {
				worklist = append(worklist, elem)
			}
		}
	}
	return true, nil
}
