// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package ast

import "github.com/mdhender/icumf/internal/icu/position"

// PluralOrSelectOption is the body of one plural/select selector: the
// parsed message and the span of its enclosing "{ ... }".
type PluralOrSelectOption struct {
	Value Message
	Span  position.Span
}

// SelectorEntry is one (name, option) pair in a SelectorMap.
type SelectorEntry struct {
	Name   string
	Option PluralOrSelectOption
}

// SelectorMap is an ordered, duplicate-free sequence of named selectors.
// Order of first occurrence is preserved; it is a slice rather than a Go
// map so serialization order matches insertion order.
type SelectorMap struct {
	entries []SelectorEntry
	seen    map[string]struct{}
}

// NewSelectorMap returns an empty SelectorMap ready for Add.
func NewSelectorMap() SelectorMap {
	return SelectorMap{seen: make(map[string]struct{})}
}

// Has reports whether name was already added.
func (m SelectorMap) Has(name string) bool {
	_, ok := m.seen[name]
	return ok
}

// Add appends (name, option). The caller must check Has first; Add does not
// itself reject duplicates so the parser can choose which ErrorKind to
// report (DuplicatePluralArgumentSelector vs DuplicateSelectArgumentSelector).
func (m *SelectorMap) Add(name string, option PluralOrSelectOption) {
	if m.seen == nil {
		m.seen = make(map[string]struct{})
	}
	m.entries = append(m.entries, SelectorEntry{Name: name, Option: option})
	m.seen[name] = struct{}{}
}

// Entries returns the selectors in insertion order.
func (m SelectorMap) Entries() []SelectorEntry { return m.entries }

// Len returns the number of selectors.
func (m SelectorMap) Len() int { return len(m.entries) }
