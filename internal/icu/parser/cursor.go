// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package parser

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mdhender/icumf/internal/icu/position"
)

// Cursor walks a source string one Unicode scalar at a time, tracking an
// absolute byte offset plus 1-based line and column. It adapts the
// position-tracking core of internal/parsers/lexers.Lexer.advance/current:
// same utf8.DecodeRune-based stepping and the same newline/column
// bookkeeping, but driven directly by the recursive-descent grammar instead
// of producing a token stream, since ICU MessageFormat's quoting rules need
// scalar-level lookahead that a pre-tokenized stream can't express cleanly.
type Cursor struct {
	src string
	pos position.Position
}

func newCursor(src string) *Cursor {
	return &Cursor{src: src, pos: position.Position{Offset: 0, Line: 1, Column: 1}}
}

// position returns the cursor's current Position.
func (c *Cursor) position() position.Position { return c.pos }

// isEOF reports whether the cursor has consumed the entire source.
func (c *Cursor) isEOF() bool { return c.pos.Offset >= len(c.src) }

// char returns the current scalar. It panics at EOF; callers must guard
// with isEOF first.
func (c *Cursor) char() rune {
	r, sz := utf8.DecodeRuneInString(c.src[c.pos.Offset:])
	if sz == 0 {
		panic("icu/parser: char() called at or past EOF")
	}
	return r
}

// peek returns the scalar after the current one, or utf8.RuneError if there
// isn't one.
func (c *Cursor) peek() rune {
	if c.isEOF() {
		return utf8.RuneError
	}
	_, w := utf8.DecodeRuneInString(c.src[c.pos.Offset:])
	rest := c.src[c.pos.Offset+w:]
	if rest == "" {
		return utf8.RuneError
	}
	r, _ := utf8.DecodeRuneInString(rest)
	return r
}

// bump advances the cursor by one scalar, updating line/column bookkeeping
// exactly as the teacher's Lexer.advance does.
func (c *Cursor) bump() {
	if c.isEOF() {
		return
	}
	r, w := utf8.DecodeRuneInString(c.src[c.pos.Offset:])
	c.pos.Offset += w
	if r == '\n' {
		c.pos.Line++
		c.pos.Column = 1
	} else {
		c.pos.Column++
	}
}

// bumpIf advances past prefix (by scalar count) iff the remaining source
// starts with prefix, and reports whether it did.
func (c *Cursor) bumpIf(prefix string) bool {
	if !strings.HasPrefix(c.src[c.pos.Offset:], prefix) {
		return false
	}
	for range prefix {
		c.bump()
	}
	return true
}

// bumpUntil advances to the next occurrence of target, or EOF, and reports
// whether target was found.
func (c *Cursor) bumpUntil(target rune) bool {
	for !c.isEOF() {
		if c.char() == target {
			return true
		}
		c.bump()
	}
	return false
}

// bumpSpace advances over a run of Unicode whitespace.
func (c *Cursor) bumpSpace() {
	for !c.isEOF() && unicode.IsSpace(c.char()) {
		c.bump()
	}
}

// bumpTo advances to the exact byte offset target, which must land on a
// scalar boundary (callers only ever pass offsets derived from this same
// cursor, so this always holds).
func (c *Cursor) bumpTo(target int) {
	for c.pos.Offset < target && !c.isEOF() {
		c.bump()
	}
}

