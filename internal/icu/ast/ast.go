// Copyright (c) 2026 Michael D Henderson. All rights reserved.

// Package ast defines the abstract syntax tree produced by the parser
// package: a tagged union of message elements (literals, placeholders,
// number/date/time formats, select/plural selectors, tag elements, and the
// plural "#" placeholder), plus the number- and date/time-skeleton records
// those placeholders may carry.
//
// Every node is a small struct implementing Element, in the same style the
// teacher uses one concrete type per node kind rather than a single
// discriminated struct (internal/parsers/cst/parser.go, internal/parsers/ast/parser.go).
package ast

import "github.com/mdhender/icumf/internal/icu/position"

// Kind is the node's discriminant, serialized as the numeric "type" tag.
type Kind int

const (
	KindLiteral  Kind = 0
	KindArgument Kind = 1
	KindNumber   Kind = 2
	KindDate     Kind = 3
	KindTime     Kind = 4
	KindSelect   Kind = 5
	KindPlural   Kind = 6
	KindPound    Kind = 7
	KindTag      Kind = 8
)

// Element is implemented by every AST node.
type Element interface {
	Kind() Kind
	Location() position.Span
}

// Message is an ordered sequence of elements: the parse result, and the
// body of every tag/plural/select option.
type Message []Element

// Literal is plain de-escaped text.
type Literal struct {
	Value string
	Span  position.Span
}

func (n *Literal) Kind() Kind                { return KindLiteral }
func (n *Literal) Location() position.Span   { return n.Span }

// Argument is a bare placeholder, e.g. "{name}".
type Argument struct {
	Value string
	Span  position.Span
}

func (n *Argument) Kind() Kind              { return KindArgument }
func (n *Argument) Location() position.Span { return n.Span }

// Number is a "{value, number[, style]}" placeholder.
type Number struct {
	Value string
	Span  position.Span
	Style NumberArgStyle // nil if no style was given
}

func (n *Number) Kind() Kind              { return KindNumber }
func (n *Number) Location() position.Span { return n.Span }

// Date is a "{value, date[, style]}" placeholder.
type Date struct {
	Value string
	Span  position.Span
	Style DateTimeArgStyle
}

func (n *Date) Kind() Kind              { return KindDate }
func (n *Date) Location() position.Span { return n.Span }

// Time is a "{value, time[, style]}" placeholder.
type Time struct {
	Value string
	Span  position.Span
	Style DateTimeArgStyle
}

func (n *Time) Kind() Kind              { return KindTime }
func (n *Time) Location() position.Span { return n.Span }

// Select is a "{value, select, ...}" placeholder.
type Select struct {
	Value   string
	Span    position.Span
	Options SelectorMap
}

func (n *Select) Kind() Kind              { return KindSelect }
func (n *Select) Location() position.Span { return n.Span }

// PluralType distinguishes cardinal ("plural") from ordinal ("selectordinal").
type PluralType string

const (
	PluralCardinal PluralType = "cardinal"
	PluralOrdinal  PluralType = "ordinal"
)

// Plural is a "{value, plural|selectordinal, ...}" placeholder.
type Plural struct {
	Value      string
	Span       position.Span
	Options    SelectorMap
	Offset     int
	PluralType PluralType
}

func (n *Plural) Kind() Kind              { return KindPlural }
func (n *Plural) Location() position.Span { return n.Span }

// Pound is the "#" placeholder, valid only inside a plural/selectordinal body.
type Pound struct {
	Span position.Span
}

func (n *Pound) Kind() Kind              { return KindPound }
func (n *Pound) Location() position.Span { return n.Span }

// Tag is an XML-like inline element, e.g. "<b>...</b>" or "<br/>".
type Tag struct {
	Value    string
	Span     position.Span
	Children Message
}

func (n *Tag) Kind() Kind              { return KindTag }
func (n *Tag) Location() position.Span { return n.Span }
