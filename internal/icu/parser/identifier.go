// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package parser

import (
	"unicode"

	"github.com/mdhender/icumf/internal/icu/patsyntax"
	"github.com/mdhender/icumf/internal/icu/position"
)

// parseIdentifier consumes scalars that are neither whitespace nor
// pattern-syntax, returning the slice and its span. The slice may be empty
// if the cursor is already sitting on a stop character.
func (p *Parser) parseIdentifier() (string, position.Span) {
	start := p.cur.position()
	startOffset := start.Offset
	for !p.cur.isEOF() {
		ch := p.cur.char()
		if unicode.IsSpace(ch) || patsyntax.IsPatternSyntax(ch) {
			break
		}
		p.cur.bump()
	}
	end := p.cur.position()
	return p.src[startOffset:end.Offset], position.Span{Start: start, End: end}
}
