// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package parser

// Options configures a single Parse call. Unrecognized configuration (there
// is none, since this is a typed struct rather than a loosely-typed map) is
// simply a zero value and behaves like the documented default.
type Options struct {
	// IgnoreTag treats '<' as an ordinary literal character and never
	// produces Tag nodes. Default false.
	IgnoreTag bool

	// RequiresOtherClause fails a plural/select lacking an "other" selector
	// with MissingOtherClause. Default false.
	RequiresOtherClause bool

	// ShouldParseSkeletons interprets "::"-prefixed argument styles into
	// ParsedOptions; otherwise ParsedOptions stays the zero value. Default
	// false.
	ShouldParseSkeletons bool

	// CaptureLocation is informational only: locations are always produced
	// regardless of this flag's value.
	CaptureLocation bool

	// Locale is reserved for locale-sensitive skeleton interpretation; the
	// core does not currently consult it.
	Locale string
}
