// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package datetimeskeleton_test

import (
	"testing"

	"github.com/go-test/deep"

	"github.com/mdhender/icumf/internal/icu/ast"
	"github.com/mdhender/icumf/internal/icu/datetimeskeleton"
	"github.com/mdhender/icumf/internal/icu/position"
)

func TestParseRetainsRawPattern(t *testing.T) {
	span := position.Span{Start: position.Position{Offset: 3}, End: position.Position{Offset: 11}}
	sk := datetimeskeleton.Parse("yyyyMMdd", span, true)
	if sk.Pattern != "yyyyMMdd" {
		t.Errorf("Pattern = %q, want %q", sk.Pattern, "yyyyMMdd")
	}
	if sk.Span != span {
		t.Errorf("Span = %+v, want %+v", sk.Span, span)
	}
}

func TestParseOptionsStayZeroValueRegardlessOfShouldParseSkeleton(t *testing.T) {
	for _, shouldParse := range []bool{true, false} {
		sk := datetimeskeleton.Parse("jmsMMM", position.Span{}, shouldParse)
		if diff := deep.Equal(sk.ParsedOptions, ast.DateTimeFormatOptions{}); diff != nil {
			t.Errorf("shouldParseSkeleton=%v: %v", shouldParse, diff)
		}
	}
}
