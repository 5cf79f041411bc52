// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package parser

import (
	"fmt"

	"github.com/mdhender/icumf/internal/icu/position"
)

// ErrorKind is the closed set of parse-failure reasons. Codes are stable
// across versions; do not renumber existing members.
type ErrorKind int

const (
	ExpectArgumentClosingBrace           ErrorKind = 1
	EmptyArgument                        ErrorKind = 2
	MalformedArgument                    ErrorKind = 3
	ExpectArgumentType                   ErrorKind = 4
	InvalidArgumentType                  ErrorKind = 5
	ExpectArgumentStyle                  ErrorKind = 6
	InvalidNumberSkeleton                ErrorKind = 7
	InvalidDateTimeSkeleton               ErrorKind = 8
	ExpectNumberSkeleton                 ErrorKind = 9
	ExpectDateTimeSkeleton                ErrorKind = 10
	UnclosedQuoteInArgumentStyle          ErrorKind = 11
	ExpectSelectArgumentOptions           ErrorKind = 12
	ExpectPluralArgumentOffsetValue       ErrorKind = 13
	InvalidPluralArgumentOffsetValue      ErrorKind = 14
	ExpectSelectArgumentSelector          ErrorKind = 15
	ExpectPluralArgumentSelector          ErrorKind = 16
	ExpectSelectArgumentSelectorFragment  ErrorKind = 17
	ExpectPluralArgumentSelectorFragment  ErrorKind = 18
	InvalidPluralArgumentSelector         ErrorKind = 19
	DuplicatePluralArgumentSelector       ErrorKind = 20
	DuplicateSelectArgumentSelector       ErrorKind = 21
	MissingOtherClause                   ErrorKind = 22
	InvalidTag                            ErrorKind = 23
	UnmatchedClosingTag                   ErrorKind = 24
	UnclosedTag                           ErrorKind = 25
)

var errorKindNames = map[ErrorKind]string{
	ExpectArgumentClosingBrace:          "ExpectArgumentClosingBrace",
	EmptyArgument:                       "EmptyArgument",
	MalformedArgument:                   "MalformedArgument",
	ExpectArgumentType:                  "ExpectArgumentType",
	InvalidArgumentType:                 "InvalidArgumentType",
	ExpectArgumentStyle:                 "ExpectArgumentStyle",
	InvalidNumberSkeleton:               "InvalidNumberSkeleton",
	InvalidDateTimeSkeleton:             "InvalidDateTimeSkeleton",
	ExpectNumberSkeleton:                "ExpectNumberSkeleton",
	ExpectDateTimeSkeleton:              "ExpectDateTimeSkeleton",
	UnclosedQuoteInArgumentStyle:        "UnclosedQuoteInArgumentStyle",
	ExpectSelectArgumentOptions:         "ExpectSelectArgumentOptions",
	ExpectPluralArgumentOffsetValue:     "ExpectPluralArgumentOffsetValue",
	InvalidPluralArgumentOffsetValue:    "InvalidPluralArgumentOffsetValue",
	ExpectSelectArgumentSelector:        "ExpectSelectArgumentSelector",
	ExpectPluralArgumentSelector:        "ExpectPluralArgumentSelector",
	ExpectSelectArgumentSelectorFragment: "ExpectSelectArgumentSelectorFragment",
	ExpectPluralArgumentSelectorFragment: "ExpectPluralArgumentSelectorFragment",
	InvalidPluralArgumentSelector:       "InvalidPluralArgumentSelector",
	DuplicatePluralArgumentSelector:     "DuplicatePluralArgumentSelector",
	DuplicateSelectArgumentSelector:     "DuplicateSelectArgumentSelector",
	MissingOtherClause:                  "MissingOtherClause",
	InvalidTag:                          "InvalidTag",
	UnmatchedClosingTag:                 "UnmatchedClosingTag",
	UnclosedTag:                         "UnclosedTag",
}

func (k ErrorKind) String() string {
	if name, ok := errorKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is the parser's sole failure value: the error kind, the full
// original source (so the error is self-contained), and the span the
// diagnostic points at. There is no recovery — the first Error returned by
// Parse is final.
type Error struct {
	Kind    ErrorKind
	Message string
	Span    position.Span
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %s: %s", e.Kind, e.Span.Start, e.Message)
}

func newError(kind ErrorKind, source string, span position.Span) *Error {
	return &Error{Kind: kind, Message: source, Span: span}
}
