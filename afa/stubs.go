// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package afa

import "github.com/samo538/mata/state"

// These operations are declared but never implemented; each returns
// ErrNotImplemented so a caller that reflectively probes the package
// surface gets a structured answer instead of a missing symbol. They
// are not part of the antichain-based core.

func AreStateDisjoint(lhs, rhs *Afa) (bool, error) {
	return false, ErrNotImplemented
}

func UnionNorename(result, lhs, rhs *Afa) error {
	return ErrNotImplemented
}

func UnionRename(lhs, rhs *Afa) (*Afa, error) {
	return nil, ErrNotImplemented
}

func IsLangEmpty(a *Afa) (bool, []state.Node, error) {
	return false, nil, ErrNotImplemented
}

func IsLangEmptyCex(a *Afa) (bool, []state.Symbol, error) {
	return false, nil, ErrNotImplemented
}

func Revert(a *Afa) (*Afa, error) {
	return nil, ErrNotImplemented
}

func RemoveEpsilon(a *Afa, epsilon state.Symbol) (*Afa, error) {
	return nil, ErrNotImplemented
}

func Minimize(a *Afa) (*Afa, error) {
	return nil, ErrNotImplemented
}

func MakeComplete(a *Afa, sink state.State) error {
	return ErrNotImplemented
}

func IsInLang(a *Afa, word []state.Symbol) (bool, error) {
	return false, ErrNotImplemented
}

func IsPrfxInLang(a *Afa, word []state.Symbol) (bool, error) {
	return false, ErrNotImplemented
}

func IsDeterministic(a *Afa) (bool, error) {
	return false, ErrNotImplemented
}

func IsComplete(a *Afa) (bool, error) {
	return false, ErrNotImplemented
}
