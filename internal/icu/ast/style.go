// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package ast

import "github.com/mdhender/icumf/internal/icu/position"

// NumberArgStyle is either a raw style string (e.g. "percent") or a parsed
// NumberSkeleton. It is implemented by StyleString and *NumberSkeleton.
type NumberArgStyle interface {
	numberArgStyle()
}

// DateTimeArgStyle is either a raw style string or a parsed DateTimeSkeleton.
// It is implemented by StyleString and *DateTimeSkeleton.
type DateTimeArgStyle interface {
	dateTimeArgStyle()
}

// StyleString is a plain (non-skeleton) argument style, e.g. "::percent"-free
// text such as "short" or "percent". The same type satisfies both style
// interfaces since a raw style string means the same thing for either kind
// of argument.
type StyleString string

func (StyleString) numberArgStyle()   {}
func (StyleString) dateTimeArgStyle() {}

// SkeletonToken is one "/"-delimited piece of a number skeleton: a stem
// plus its options, e.g. "precision-integer" or "integer-width/*00".
type SkeletonToken struct {
	Stem    string
	Options []string
}

// NumberSkeleton is the parsed form of a "::..." number argument style.
type NumberSkeleton struct {
	Tokens        []SkeletonToken
	Span          position.Span
	ParsedOptions NumberFormatOptions
}

func (*NumberSkeleton) numberArgStyle() {}

// DateTimeSkeleton is the parsed form of a "::..." date/time argument style.
// ParsedOptions is left at the zero value; Pattern retains the raw skeleton
// text.
type DateTimeSkeleton struct {
	Pattern       string
	Span          position.Span
	ParsedOptions DateTimeFormatOptions
}

func (*DateTimeSkeleton) dateTimeArgStyle() {}
