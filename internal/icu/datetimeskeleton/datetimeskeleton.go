// Copyright (c) 2026 Michael D Henderson. All rights reserved.

// Package datetimeskeleton holds a parsed "::"-prefixed date/time argument
// style. The reference implementation's date/time skeleton interpreter
// (letter-by-letter pattern decoding into Intl.DateTimeFormatOptions) is left
// unimplemented upstream (parse_date_time_skeleton always returns the
// default options record); this port carries that forward rather than
// inventing field-by-field semantics that aren't grounded in either source.
package datetimeskeleton

import (
	"github.com/mdhender/icumf/internal/icu/ast"
	"github.com/mdhender/icumf/internal/icu/position"
)

// Parse returns a DateTimeSkeleton retaining the raw pattern text. ParsedOptions
// stays the zero value regardless of shouldParseSkeleton, matching the
// reference's stubbed-out parse_date_time_skeleton.
func Parse(pattern string, span position.Span, shouldParseSkeleton bool) *ast.DateTimeSkeleton {
	return &ast.DateTimeSkeleton{Pattern: pattern, Span: span}
}
