// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package parsec

import "github.com/samo538/mata/state"

// Section is an already-parsed automaton description: the concrete
// surface syntax is an external collaborator's responsibility (see
// package textfmt for one concrete answer).
type Section struct {
	Type string
	Dict map[string][]string
	Body [][]string
}

// NameMapper translates a value of T to its surface name, or reports
// ok=false to refuse the translation.
type NameMapper[T any] func(T) (string, bool)

// Alphabet resolves a symbol's surface name to its Symbol id. Symbol
// returns ok=false for a name the alphabet does not recognize.
type Alphabet interface {
	Symbol(name string) (state.Symbol, bool)
}

// FormulaParser interprets the tokens of one transition's body line
// (after the source-state name has been consumed) into a symbol name
// and a DNF destination. The surface grammar is entirely the parser's
// concern; parsec only calls it and wires the result into the Afa.
type FormulaParser interface {
	Parse(tokens []string, states *StateMap) (symbolName string, dst state.Nodes, err error)
}

// StateMap assigns dense state ids to names on first sight, exactly
// like the source's get_state_name lambda.
type StateMap struct {
	byName map[string]state.State
	names  []string
}

// NewStateMap returns an empty StateMap.
func NewStateMap() *StateMap {
	return &StateMap{byName: map[string]state.State{}}
}

// ID returns the id for name, assigning and registering a fresh one if
// name has not been seen before.
func (m *StateMap) ID(name string) state.State {
	if id, ok := m.byName[name]; ok {
		return id
	}
	id := state.State(len(m.byName))
	m.byName[name] = id
	m.names = append(m.names, name)
	return id
}

// Count returns the number of distinct names registered so far.
func (m *StateMap) Count() int { return len(m.byName) }

// Name returns the name registered for id, if any.
func (m *StateMap) Name(id state.State) (string, bool) {
	if int(id) >= len(m.names) {
		return "", false
	}
	return m.names[id], true
}

// SymbolMap is an on-the-fly Alphabet: it assigns a fresh Symbol id to
// any name it has not seen before, and so Symbol always succeeds.
type SymbolMap struct {
	byName map[string]state.Symbol
}

// NewSymbolMap returns an empty SymbolMap.
func NewSymbolMap() *SymbolMap {
	return &SymbolMap{byName: map[string]state.Symbol{}}
}

// Symbol implements Alphabet: it assigns a fresh Symbol id to an
// unseen name rather than refusing it.
func (m *SymbolMap) Symbol(name string) (state.Symbol, bool) {
	if id, ok := m.byName[name]; ok {
		return id, true
	}
	id := state.Symbol(len(m.byName))
	m.byName[name] = id
	return id, true
}

// Name returns the surface name registered for id, if any. Useful as
// the reverse direction of Symbol when serializing.
func (m *SymbolMap) Name(id state.Symbol) (string, bool) {
	for name, sid := range m.byName {
		if sid == id {
			return name, true
		}
	}
	return "", false
}

// FixedAlphabet is an Alphabet over a pre-populated, closed symbol
// namespace: an unknown name is refused rather than grown into.
type FixedAlphabet map[string]state.Symbol

// Symbol implements Alphabet.
func (a FixedAlphabet) Symbol(name string) (state.Symbol, bool) {
	s, ok := a[name]
	return s, ok
}
