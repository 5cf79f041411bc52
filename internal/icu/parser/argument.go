// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package parser

import (
	"strings"
	"unicode"

	"github.com/mdhender/icumf/internal/icu/ast"
	"github.com/mdhender/icumf/internal/icu/datetimeskeleton"
	"github.com/mdhender/icumf/internal/icu/numberskeleton"
	"github.com/mdhender/icumf/internal/icu/position"
)

// parseArgument parses everything after an opening '{': the argument name,
// and either an immediate '}' (a bare Argument) or ", <type>, ..." (a typed
// placeholder handled by parseArgumentOptions).
func (p *Parser) parseArgument(nestingLevel int, expectingCloseTag bool) (ast.Element, *Error) {
	openingBrace := p.cur.position()
	p.cur.bump() // '{'

	p.cur.bumpSpace()
	if p.cur.isEOF() {
		return nil, p.errorSpan(ExpectArgumentClosingBrace, position.Span{Start: openingBrace, End: p.cur.position()})
	}
	if p.cur.char() == '}' {
		p.cur.bump()
		return nil, p.errorSpan(EmptyArgument, position.Span{Start: openingBrace, End: p.cur.position()})
	}

	value, _ := p.parseIdentifier()
	if value == "" {
		return nil, p.errorSpan(MalformedArgument, position.Span{Start: openingBrace, End: p.cur.position()})
	}

	p.cur.bumpSpace()
	if p.cur.isEOF() {
		return nil, p.errorSpan(ExpectArgumentClosingBrace, position.Span{Start: openingBrace, End: p.cur.position()})
	}

	switch p.cur.char() {
	case '}':
		p.cur.bump()
		return &ast.Argument{Value: value, Span: position.Span{Start: openingBrace, End: p.cur.position()}}, nil
	case ',':
		p.cur.bump()
		p.cur.bumpSpace()
		if p.cur.isEOF() {
			return nil, p.errorSpan(ExpectArgumentClosingBrace, position.Span{Start: openingBrace, End: p.cur.position()})
		}
		return p.parseArgumentOptions(nestingLevel, expectingCloseTag, value, openingBrace)
	default:
		return nil, p.errorSpan(MalformedArgument, position.Span{Start: openingBrace, End: p.cur.position()})
	}
}

// parseArgumentOptions parses the "<type>, ..." tail of a typed placeholder:
// number/date/time (with optional style or "::"-skeleton), or
// plural/selectordinal/select (with an offset and a selector map).
func (p *Parser) parseArgumentOptions(nestingLevel int, expectingCloseTag bool, value string, openingBrace position.Position) (ast.Element, *Error) {
	typeStart := p.cur.position()
	argTypeName, _ := p.parseIdentifier()
	typeEnd := p.cur.position()

	switch argTypeName {
	case "":
		return nil, p.errorSpan(ExpectArgumentType, position.Span{Start: typeStart, End: typeEnd})

	case "number", "date", "time":
		p.cur.bumpSpace()

		var style string
		var styleSpan position.Span
		haveStyle := false
		if p.cur.bumpIf(",") {
			p.cur.bumpSpace()
			styleStart := p.cur.position()
			raw, serr := p.parseSimpleArgStyle()
			if serr != nil {
				return nil, serr
			}
			style = strings.TrimRightFunc(raw, unicode.IsSpace)
			if style == "" {
				pos := p.cur.position()
				return nil, p.errorSpan(ExpectArgumentStyle, position.Span{Start: pos, End: pos})
			}
			styleSpan = position.Span{Start: styleStart, End: p.cur.position()}
			haveStyle = true
		}

		if err := p.tryParseArgumentClose(openingBrace); err != nil {
			return nil, err
		}
		span := position.Span{Start: openingBrace, End: p.cur.position()}

		if !haveStyle {
			switch argTypeName {
			case "number":
				return &ast.Number{Value: value, Span: span}, nil
			case "date":
				return &ast.Date{Value: value, Span: span}, nil
			default:
				return &ast.Time{Value: value, Span: span}, nil
			}
		}

		if strings.HasPrefix(style, "::") {
			skeleton := strings.TrimLeftFunc(style[2:], unicode.IsSpace)
			switch argTypeName {
			case "number":
				sk, kind := numberskeleton.Parse(skeleton, styleSpan, p.opts.ShouldParseSkeletons)
				switch kind {
				case numberskeleton.ErrExpectSkeleton:
					return nil, p.errorSpan(ExpectNumberSkeleton, styleSpan)
				case numberskeleton.ErrInvalidSkeleton:
					return nil, p.errorSpan(InvalidNumberSkeleton, styleSpan)
				}
				return &ast.Number{Value: value, Span: span, Style: sk}, nil
			default:
				if skeleton == "" {
					return nil, p.errorSpan(ExpectDateTimeSkeleton, span)
				}
				dsk := datetimeskeleton.Parse(skeleton, styleSpan, p.opts.ShouldParseSkeletons)
				if argTypeName == "date" {
					return &ast.Date{Value: value, Span: span, Style: dsk}, nil
				}
				return &ast.Time{Value: value, Span: span, Style: dsk}, nil
			}
		}

		switch argTypeName {
		case "number":
			return &ast.Number{Value: value, Span: span, Style: ast.StyleString(style)}, nil
		case "date":
			return &ast.Date{Value: value, Span: span, Style: ast.StyleString(style)}, nil
		default:
			return &ast.Time{Value: value, Span: span, Style: ast.StyleString(style)}, nil
		}

	case "plural", "selectordinal", "select":
		typeEnd = p.cur.position()
		p.cur.bumpSpace()
		if !p.cur.bumpIf(",") {
			return nil, p.errorSpan(ExpectSelectArgumentOptions, position.Span{Start: typeEnd, End: typeEnd})
		}
		p.cur.bumpSpace()

		firstIdent, firstSpan := p.parseIdentifier()

		var atype argType
		switch argTypeName {
		case "plural":
			atype = argPlural
		case "selectordinal":
			atype = argSelectOrdinal
		default:
			atype = argSelect
		}

		pluralOffset := 0
		if argTypeName != "select" && firstIdent == "offset" {
			if !p.cur.bumpIf(":") {
				pos := p.cur.position()
				return nil, p.errorSpan(ExpectPluralArgumentOffsetValue, position.Span{Start: pos, End: pos})
			}
			p.cur.bumpSpace()
			offset, err := p.tryParseDecimalInteger(ExpectPluralArgumentOffsetValue, InvalidPluralArgumentOffsetValue)
			if err != nil {
				return nil, err
			}
			p.cur.bumpSpace()
			firstIdent, firstSpan = p.parseIdentifier()
			pluralOffset = offset
		}

		options, err := p.tryParsePluralOrSelectOptions(nestingLevel, atype, expectingCloseTag, firstIdent, firstSpan)
		if err != nil {
			return nil, err
		}
		if err := p.tryParseArgumentClose(openingBrace); err != nil {
			return nil, err
		}

		span := position.Span{Start: openingBrace, End: p.cur.position()}
		if argTypeName == "select" {
			return &ast.Select{Value: value, Span: span, Options: options}, nil
		}
		pt := ast.PluralCardinal
		if argTypeName == "selectordinal" {
			pt = ast.PluralOrdinal
		}
		return &ast.Plural{Value: value, Span: span, Options: options, Offset: pluralOffset, PluralType: pt}, nil

	default:
		return nil, p.errorSpan(InvalidArgumentType, position.Span{Start: typeStart, End: typeEnd})
	}
}
