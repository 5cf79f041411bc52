// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package parser

import (
	"github.com/mdhender/icumf/internal/icu/ast"
	"github.com/mdhender/icumf/internal/icu/position"
)

// parseTag parses a self-closing "<name/>" or paired "<name>...</name>" tag.
// The opening '<' has already been confirmed to be followed by a lowercase
// ASCII letter. The opening half fails with InvalidTag if the name is not
// followed by "/>" or ">"; the closing half can fail as unclosed, invalid, or
// mismatched.
//
// tag ::= "<" tagName (whitespace)* "/>" | "<" tagName (whitespace)* ">" message "</" tagName (whitespace)* ">"
// tagName ::= [a-z] (PENChar)*
func (p *Parser) parseTag(nestingLevel int, parentArgType argType) (*ast.Tag, *Error) {
	start := p.cur.position()
	p.cur.bump() // '<'

	tagName := p.parseTagName()
	p.cur.bumpSpace()

	if p.cur.bumpIf("/>") {
		return &ast.Tag{Value: tagName, Span: position.Span{Start: start, End: p.cur.position()}, Children: nil}, nil
	}

	if !p.cur.bumpIf(">") {
		return nil, p.errorSpan(InvalidTag, position.Span{Start: start, End: p.cur.position()})
	}

	children, err := p.parseMessage(nestingLevel+1, parentArgType, true)
	if err != nil {
		return nil, err
	}

	endTagStart := p.cur.position()
	if !p.cur.bumpIf("</") {
		return nil, p.errorSpan(UnclosedTag, position.Span{Start: start, End: p.cur.position()})
	}

	if p.cur.isEOF() || !isTagNameStart(p.cur.char()) {
		return nil, p.errorSpan(InvalidTag, position.Span{Start: endTagStart, End: p.cur.position()})
	}

	closingNameStart := p.cur.position()
	closingName := p.parseTagName()
	if closingName != tagName {
		return nil, p.errorSpan(UnmatchedClosingTag, position.Span{Start: closingNameStart, End: p.cur.position()})
	}

	p.cur.bumpSpace()
	if !p.cur.bumpIf(">") {
		return nil, p.errorSpan(InvalidTag, position.Span{Start: endTagStart, End: p.cur.position()})
	}

	return &ast.Tag{Value: tagName, Span: position.Span{Start: start, End: p.cur.position()}, Children: children}, nil
}

// parseTagName consumes a tag or closing-tag name: one character (already
// known to be a lowercase ASCII letter) followed by any run of
// isPotentialElementNameChar.
func (p *Parser) parseTagName() string {
	startOffset := p.cur.position().Offset
	p.cur.bump() // first character
	for !p.cur.isEOF() && isPotentialElementNameChar(p.cur.char()) {
		p.cur.bump()
	}
	return p.src[startOffset:p.cur.position().Offset]
}

// elementNameRanges are the PENChar ranges from the custom-element-name
// grammar (HTML spec), minus '-' '.' '_' and ASCII alnum which are checked
// directly.
var elementNameRanges = [][2]rune{
	{0x00B7, 0x00B7},
	{0x00C0, 0x00D6},
	{0x00D8, 0x00F6},
	{0x00F8, 0x037D},
	{0x037F, 0x1FFF},
	{0x200C, 0x200D},
	{0x203F, 0x2040},
	{0x2070, 0x218F},
	{0x2C00, 0x2FEF},
	{0x3001, 0xD7FF},
	{0xF900, 0xFDCF},
	{0xFDF0, 0xFFFD},
	{0x10000, 0xEFFFF},
}

// isPotentialElementNameChar mirrors the HTML custom-element-name grammar
// used for tag names, minus the mandatory dash and case restriction.
func isPotentialElementNameChar(ch rune) bool {
	switch {
	case ch == '-' || ch == '.' || ch == '_':
		return true
	case ch >= '0' && ch <= '9':
		return true
	case ch >= 'a' && ch <= 'z':
		return true
	case ch >= 'A' && ch <= 'Z':
		return true
	}
	lo, hi := 0, len(elementNameRanges)-1
	for lo <= hi {
		mid := (lo + hi) / 2
		r := elementNameRanges[mid]
		switch {
		case ch < r[0]:
			hi = mid - 1
		case ch > r[1]:
			lo = mid + 1
		default:
			return true
		}
	}
	return false
}
