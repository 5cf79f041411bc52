// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package ast_test

import (
	"testing"

	"github.com/mdhender/icumf/internal/icu/ast"
)

func TestSelectorMapPreservesInsertionOrder(t *testing.T) {
	m := ast.NewSelectorMap()
	m.Add("one", ast.PluralOrSelectOption{})
	m.Add("other", ast.PluralOrSelectOption{})
	m.Add("few", ast.PluralOrSelectOption{})

	entries := m.Entries()
	if len(entries) != 3 {
		t.Fatalf("len(entries) = %d, want 3", len(entries))
	}
	wantOrder := []string{"one", "other", "few"}
	for i, name := range wantOrder {
		if entries[i].Name != name {
			t.Errorf("entries[%d].Name = %q, want %q", i, entries[i].Name, name)
		}
	}
}

func TestSelectorMapHasDetectsDuplicates(t *testing.T) {
	m := ast.NewSelectorMap()
	if m.Has("other") {
		t.Fatalf("Has(\"other\") = true before Add")
	}
	m.Add("other", ast.PluralOrSelectOption{})
	if !m.Has("other") {
		t.Fatalf("Has(\"other\") = false after Add")
	}
	if m.Len() != 1 {
		t.Errorf("Len() = %d, want 1", m.Len())
	}
}
