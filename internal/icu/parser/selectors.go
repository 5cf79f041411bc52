// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package parser

import (
	"strconv"
	"strings"

	"github.com/mdhender/icumf/internal/icu/ast"
	"github.com/mdhender/icumf/internal/icu/position"
)

// tryParsePluralOrSelectOptions parses the "{selector {message} ...}" tail of
// a plural/selectordinal/select argument. firstIdent/firstSpan is the
// selector identifier already consumed by the caller (either the plain first
// selector, or the one re-parsed after an "offset:N" clause).
func (p *Parser) tryParsePluralOrSelectOptions(nestingLevel int, parentArgType argType, expectingCloseTag bool, firstIdent string, firstSpan position.Span) (ast.SelectorMap, *Error) {
	options := ast.NewSelectorMap()
	hasOtherClause := false

	selector, selectorSpan := firstIdent, firstSpan
	for {
		if selector == "" {
			startPos := p.cur.position()
			if parentArgType != argSelect && p.cur.bumpIf("=") {
				if _, err := p.tryParseDecimalInteger(ExpectPluralArgumentSelector, InvalidPluralArgumentSelector); err != nil {
					return options, err
				}
				selectorSpan = position.Span{Start: startPos, End: p.cur.position()}
				selector = p.src[startPos.Offset:p.cur.position().Offset]
			} else {
				break
			}
		}

		if options.Has(selector) {
			kind := DuplicatePluralArgumentSelector
			if parentArgType == argSelect {
				kind = DuplicateSelectArgumentSelector
			}
			return options, p.errorSpan(kind, selectorSpan)
		}

		if selector == "other" {
			hasOtherClause = true
		}

		p.cur.bumpSpace()
		openingBrace := p.cur.position()
		if !p.cur.bumpIf("{") {
			kind := ExpectPluralArgumentSelectorFragment
			if parentArgType == argSelect {
				kind = ExpectSelectArgumentSelectorFragment
			}
			pos := p.cur.position()
			return options, p.errorSpan(kind, position.Span{Start: pos, End: pos})
		}

		fragment, err := p.parseMessage(nestingLevel+1, parentArgType, expectingCloseTag)
		if err != nil {
			return options, err
		}
		if err := p.tryParseArgumentClose(openingBrace); err != nil {
			return options, err
		}

		options.Add(selector, ast.PluralOrSelectOption{Value: fragment, Span: position.Span{Start: openingBrace, End: p.cur.position()}})

		p.cur.bumpSpace()
		selector, selectorSpan = p.parseIdentifier()
	}

	if options.Len() == 0 {
		kind := ExpectPluralArgumentSelector
		if parentArgType == argSelect {
			kind = ExpectSelectArgumentSelector
		}
		pos := p.cur.position()
		return options, p.errorSpan(kind, position.Span{Start: pos, End: pos})
	}

	if p.opts.RequiresOtherClause && !hasOtherClause {
		pos := p.cur.position()
		return options, p.errorSpan(MissingOtherClause, position.Span{Start: pos, End: pos})
	}

	return options, nil
}

// tryParseDecimalInteger parses an optionally-signed run of ASCII digits,
// reporting expectKind if the cursor is at EOF after the digit run, and
// invalidKind if the digit run is empty or doesn't fit an int64.
func (p *Parser) tryParseDecimalInteger(expectKind, invalidKind ErrorKind) (int, *Error) {
	sign := 1
	start := p.cur.position()

	if p.cur.bumpIf("+") {
	} else if p.cur.bumpIf("-") {
		sign = -1
	}

	var digits strings.Builder
	for !p.cur.isEOF() && p.cur.char() >= '0' && p.cur.char() <= '9' {
		digits.WriteRune(p.cur.char())
		p.cur.bump()
	}

	span := position.Span{Start: start, End: p.cur.position()}

	if p.cur.isEOF() {
		return 0, p.errorSpan(expectKind, span)
	}

	n, err := strconv.ParseInt(digits.String(), 10, 64)
	if err != nil {
		return 0, p.errorSpan(invalidKind, span)
	}
	return int(n) * sign, nil
}

// parseSimpleArgStyle scans a raw (non-skeleton) argument style, tracking
// '{'/'}' nesting depth, with apostrophes opening a quoted run that is
// copied verbatim (including the apostrophes) up to the next apostrophe.
// A '}' only decrements the nesting counter; it is not consumed until the
// counter reaches zero, matching the reference parser's own
// parse_simple_arg_style_if_possible (nested closers don't need a matching
// opener to be bumped). Stops at that unbalanced '}' without consuming it.
// The caller trims trailing whitespace from the result.
func (p *Parser) parseSimpleArgStyle() (string, *Error) {
	nestedBraces := 0
	start := p.cur.position()

	for !p.cur.isEOF() {
		switch p.cur.char() {
		case '\'':
			p.cur.bump()
			apostrophePos := p.cur.position()
			if !p.cur.bumpUntil('\'') {
				return "", p.errorSpan(UnclosedQuoteInArgumentStyle, position.Span{Start: apostrophePos, End: p.cur.position()})
			}
			p.cur.bump()
		case '{':
			nestedBraces++
			p.cur.bump()
		case '}':
			if nestedBraces > 0 {
				nestedBraces--
			} else {
				return p.src[start.Offset:p.cur.position().Offset], nil
			}
		default:
			p.cur.bump()
		}
	}

	return p.src[start.Offset:p.cur.position().Offset], nil
}

// tryParseArgumentClose requires and consumes the '}' closing an argument
// opened at openingBrace, reporting ExpectArgumentClosingBrace (spanning the
// whole argument) if EOF or any other character is found instead.
func (p *Parser) tryParseArgumentClose(openingBrace position.Position) *Error {
	if p.cur.isEOF() || p.cur.char() != '}' {
		return p.errorSpan(ExpectArgumentClosingBrace, position.Span{Start: openingBrace, End: p.cur.position()})
	}
	p.cur.bump()
	return nil
}
