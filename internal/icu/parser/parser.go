// Copyright (c) 2026 Michael D Henderson. All rights reserved.

// Package parser implements the hand-written, position-tracking,
// recursive-descent ICU MessageFormat parser: Parse turns a source string
// into an ast.Message or returns the first Error encountered. There is no
// error recovery; the caller gets one AST or one Error, never both.
package parser

import (
	"strings"

	"github.com/mdhender/icumf/internal/icu/ast"
	"github.com/mdhender/icumf/internal/icu/position"
)

// argType identifies the enclosing plural/select argument, if any, so
// nested productions can apply context-sensitive rules ('#' only valid
// inside plural/selectordinal bodies, 'offset:' only valid outside select).
type argType int

const (
	argNone          argType = iota
	argPlural                // "plural"
	argSelectOrdinal         // "selectordinal"
	argSelect                // "select"
)

// Parser drives a single parse of one source string. It is single-use: call
// Parse to construct and run one; do not reuse a Parser across sources.
type Parser struct {
	src  string
	cur  *Cursor
	opts Options
}

// Parse parses source into an ast.Message under opts, or returns the first
// Error encountered. Re-parsing with a second call on the same Parser value
// is not supported; always call the package-level Parse.
func Parse(source string, opts Options) (ast.Message, error) {
	p := &Parser{src: source, cur: newCursor(source), opts: opts}
	msg, err := p.parseMessage(0, argNone, false)
	if err != nil {
		return nil, err
	}
	return msg, nil
}

// parseMessage consumes AST elements until EOF, an unescaped '}' at
// nestingLevel > 0, or the start of a closing "</" when expectingCloseTag.
func (p *Parser) parseMessage(nestingLevel int, parentArgType argType, expectingCloseTag bool) (ast.Message, *Error) {
	var msg ast.Message
	for {
		if p.cur.isEOF() {
			break
		}
		ch := p.cur.char()

		if ch == '{' {
			el, err := p.parseArgument(nestingLevel, expectingCloseTag)
			if err != nil {
				return nil, err
			}
			msg = append(msg, el)
			continue
		}

		if ch == '}' && nestingLevel > 0 {
			break
		}

		if ch == '#' && (parentArgType == argPlural || parentArgType == argSelectOrdinal) {
			start := p.cur.position()
			p.cur.bump()
			msg = append(msg, &ast.Pound{Span: position.Span{Start: start, End: p.cur.position()}})
			continue
		}

		if ch == '<' && !p.opts.IgnoreTag && p.cur.peek() == '/' {
			if expectingCloseTag {
				break
			}
			pos := p.cur.position()
			return nil, p.errorAt(UnmatchedClosingTag, pos)
		}

		if ch == '<' && !p.opts.IgnoreTag && isTagNameStart(p.cur.peek()) {
			el, err := p.parseTag(nestingLevel, parentArgType)
			if err != nil {
				return nil, err
			}
			msg = append(msg, el)
			continue
		}

		lit, err := p.parseLiteral(nestingLevel, parentArgType)
		if err != nil {
			return nil, err
		}
		msg = append(msg, lit)
	}
	return msg, nil
}

// parseLiteral accumulates a de-escaped literal string by repeatedly trying,
// in order: a doubled apostrophe, a quoted run, a single unquoted character,
// and a bare '<' that can't open a tag. The literal ends when none of these
// productions matches.
func (p *Parser) parseLiteral(nestingLevel int, parentArgType argType) (*ast.Literal, *Error) {
	start := p.cur.position()
	var sb strings.Builder

	for {
		if p.cur.bumpIf("''") {
			sb.WriteRune('\'')
			continue
		}
		if s, ok := p.tryParseQuote(parentArgType); ok {
			sb.WriteString(s)
			continue
		}
		if r, ok := p.tryParseUnquoted(nestingLevel, parentArgType); ok {
			sb.WriteRune(r)
			continue
		}
		if r, ok := p.tryParseLeftAngleBracket(); ok {
			sb.WriteRune(r)
			continue
		}
		break
	}

	return &ast.Literal{Value: sb.String(), Span: position.Span{Start: start, End: p.cur.position()}}, nil
}

// tryParseQuote implements the ICU 4.8+ "quote only where needed" rule: a
// bare apostrophe is literal unless immediately followed by a character that
// requires quoting in this context, in which case it opens a run that
// swallows the following character verbatim and continues until an unpaired
// closing apostrophe or EOF, treating an embedded "''" as one literal
// apostrophe rather than a close/reopen.
func (p *Parser) tryParseQuote(parentArgType argType) (string, bool) {
	if p.cur.isEOF() || p.cur.char() != '\'' {
		return "", false
	}
	switch p.cur.peek() {
	case '{', '<', '>', '}':
	case '#':
		if parentArgType != argPlural && parentArgType != argSelectOrdinal {
			return "", false
		}
	default:
		return "", false
	}

	p.cur.bump() // opening apostrophe
	var sb strings.Builder
	sb.WriteRune(p.cur.char()) // escaped char, verbatim
	p.cur.bump()

	for !p.cur.isEOF() {
		ch := p.cur.char()
		if ch == '\'' && p.cur.peek() == '\'' {
			sb.WriteRune('\'')
			p.cur.bump() // consume the doubled apostrophe's first rune
		} else if ch == '\'' {
			p.cur.bump() // optional closing apostrophe
			break
		} else {
			sb.WriteRune(ch)
		}
		p.cur.bump()
	}
	return sb.String(), true
}

// tryParseUnquoted consumes and returns a single character that isn't a stop
// character for the current context.
func (p *Parser) tryParseUnquoted(nestingLevel int, parentArgType argType) (rune, bool) {
	if p.cur.isEOF() {
		return 0, false
	}
	ch := p.cur.char()
	switch ch {
	case '<', '{':
		return 0, false
	case '#':
		if parentArgType == argPlural || parentArgType == argSelectOrdinal {
			return 0, false
		}
	case '}':
		if nestingLevel > 0 {
			return 0, false
		}
	}
	p.cur.bump()
	return ch, true
}

// tryParseLeftAngleBracket consumes a bare '<' as a literal character when it
// can't open a tag: either tags are disabled, or the next character isn't a
// lowercase ASCII letter or '/'.
func (p *Parser) tryParseLeftAngleBracket() (rune, bool) {
	if p.cur.isEOF() || p.cur.char() != '<' {
		return 0, false
	}
	next := p.cur.peek()
	if p.opts.IgnoreTag || !((next >= 'a' && next <= 'z') || next == '/') {
		p.cur.bump()
		return '<', true
	}
	return 0, false
}

func isTagNameStart(r rune) bool {
	return r >= 'a' && r <= 'z'
}

// errorAt builds an Error whose Message carries the full original source,
// with a degenerate (zero-width) span at pos.
func (p *Parser) errorAt(kind ErrorKind, pos position.Position) *Error {
	return newError(kind, p.src, position.Span{Start: pos, End: pos})
}

// errorSpan builds an Error with an explicit span.
func (p *Parser) errorSpan(kind ErrorKind, span position.Span) *Error {
	return newError(kind, p.src, span)
}
