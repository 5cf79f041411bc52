// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package parser_test

import (
	"testing"

	"github.com/go-test/deep"

	"github.com/mdhender/icumf/internal/icu/ast"
	"github.com/mdhender/icumf/internal/icu/parser"
)

func mustParse(t *testing.T, source string, opts parser.Options) ast.Message {
	t.Helper()
	msg, err := parser.Parse(source, opts)
	if err != nil {
		t.Fatalf("Parse(%q) returned unexpected error: %v", source, err)
	}
	return msg
}

func mustError(t *testing.T, source string, opts parser.Options) *parser.Error {
	t.Helper()
	msg, err := parser.Parse(source, opts)
	if err == nil {
		t.Fatalf("Parse(%q) = %#v, want an error", source, msg)
	}
	perr, ok := err.(*parser.Error)
	if !ok {
		t.Fatalf("Parse(%q) returned error of type %T, want *parser.Error", source, err)
	}
	return perr
}

// scenario 1: plain literal.
func TestParsePlainLiteral(t *testing.T) {
	msg := mustParse(t, "hello", parser.Options{})
	if len(msg) != 1 {
		t.Fatalf("len(msg) = %d, want 1", len(msg))
	}
	lit, ok := msg[0].(*ast.Literal)
	if !ok {
		t.Fatalf("msg[0] is %T, want *ast.Literal", msg[0])
	}
	if lit.Value != "hello" {
		t.Errorf("lit.Value = %q, want %q", lit.Value, "hello")
	}
	if lit.Span.Start.Offset != 0 || lit.Span.End.Offset != 5 {
		t.Errorf("lit.Span = %+v, want offsets 0->5", lit.Span)
	}
}

// scenario 2: simple argument.
func TestParseSimpleArgument(t *testing.T) {
	msg := mustParse(t, "Hello, {name}!", parser.Options{})
	if len(msg) != 3 {
		t.Fatalf("len(msg) = %d, want 3", len(msg))
	}
	lit1, ok := msg[0].(*ast.Literal)
	if !ok || lit1.Value != "Hello, " {
		t.Fatalf("msg[0] = %#v, want Literal(\"Hello, \")", msg[0])
	}
	arg, ok := msg[1].(*ast.Argument)
	if !ok {
		t.Fatalf("msg[1] is %T, want *ast.Argument", msg[1])
	}
	if arg.Value != "name" {
		t.Errorf("arg.Value = %q, want %q", arg.Value, "name")
	}
	if arg.Span.Start.Offset != 7 || arg.Span.End.Offset != 13 {
		t.Errorf("arg.Span = %+v, want offsets 7->13", arg.Span)
	}
	lit2, ok := msg[2].(*ast.Literal)
	if !ok || lit2.Value != "!" {
		t.Fatalf("msg[2] = %#v, want Literal(\"!\")", msg[2])
	}
}

// scenario 3: doubled apostrophe.
func TestParseDoubledApostrophe(t *testing.T) {
	msg := mustParse(t, "It''s {count}", parser.Options{})
	lit, ok := msg[0].(*ast.Literal)
	if !ok {
		t.Fatalf("msg[0] is %T, want *ast.Literal", msg[0])
	}
	if lit.Value != "It's " {
		t.Errorf("lit.Value = %q, want %q", lit.Value, "It's ")
	}
}

// scenario 4: plural with pound and offset.
func TestParsePluralWithPoundAndOffset(t *testing.T) {
	msg := mustParse(t, "{c, plural, offset:1 one {# item} other {# items}}", parser.Options{})
	if len(msg) != 1 {
		t.Fatalf("len(msg) = %d, want 1", len(msg))
	}
	pl, ok := msg[0].(*ast.Plural)
	if !ok {
		t.Fatalf("msg[0] is %T, want *ast.Plural", msg[0])
	}
	if pl.Value != "c" {
		t.Errorf("pl.Value = %q, want %q", pl.Value, "c")
	}
	if pl.PluralType != ast.PluralCardinal {
		t.Errorf("pl.PluralType = %q, want cardinal", pl.PluralType)
	}
	if pl.Offset != 1 {
		t.Errorf("pl.Offset = %d, want 1", pl.Offset)
	}
	if pl.Options.Len() != 2 {
		t.Fatalf("pl.Options.Len() = %d, want 2", pl.Options.Len())
	}
	entries := pl.Options.Entries()
	if entries[0].Name != "one" || entries[1].Name != "other" {
		t.Errorf("selector order = %q, %q; want one, other", entries[0].Name, entries[1].Name)
	}

	oneBody := entries[0].Option.Value
	if len(oneBody) != 2 {
		t.Fatalf("len(oneBody) = %d, want 2 (Pound, Literal)", len(oneBody))
	}
	if _, ok := oneBody[0].(*ast.Pound); !ok {
		t.Errorf("oneBody[0] is %T, want *ast.Pound", oneBody[0])
	}
	if lit, ok := oneBody[1].(*ast.Literal); !ok || lit.Value != " item" {
		t.Errorf("oneBody[1] = %#v, want Literal(\" item\")", oneBody[1])
	}

	otherBody := entries[1].Option.Value
	if lit, ok := otherBody[1].(*ast.Literal); !ok || lit.Value != " items" {
		t.Errorf("otherBody[1] = %#v, want Literal(\" items\")", otherBody[1])
	}
}

// scenario 5: duplicate plural selector.
func TestParseDuplicatePluralSelector(t *testing.T) {
	perr := mustError(t, "{c, plural, one {#} one {#}}", parser.Options{})
	if perr.Kind != parser.DuplicatePluralArgumentSelector {
		t.Errorf("Kind = %v, want DuplicatePluralArgumentSelector (20)", perr.Kind)
	}
	if int(perr.Kind) != 20 {
		t.Errorf("Kind code = %d, want 20", int(perr.Kind))
	}
}

func TestParseDuplicateSelectSelector(t *testing.T) {
	perr := mustError(t, "{c, select, a {x} a {y} other {z}}", parser.Options{})
	if perr.Kind != parser.DuplicateSelectArgumentSelector {
		t.Errorf("Kind = %v, want DuplicateSelectArgumentSelector", perr.Kind)
	}
}

// scenario 6: number skeleton.
func TestParseNumberSkeleton(t *testing.T) {
	msg := mustParse(t, "{v, number, ::percent .00}", parser.Options{ShouldParseSkeletons: true})
	num, ok := msg[0].(*ast.Number)
	if !ok {
		t.Fatalf("msg[0] is %T, want *ast.Number", msg[0])
	}
	sk, ok := num.Style.(*ast.NumberSkeleton)
	if !ok {
		t.Fatalf("num.Style is %T, want *ast.NumberSkeleton", num.Style)
	}
	wantTokens := []ast.SkeletonToken{{Stem: "percent"}, {Stem: ".00"}}
	if diff := deep.Equal(sk.Tokens, wantTokens); diff != nil {
		t.Error(diff)
	}
	if sk.ParsedOptions.Style == nil || *sk.ParsedOptions.Style != ast.NumberStylePercent {
		t.Errorf("ParsedOptions.Style = %v, want percent", sk.ParsedOptions.Style)
	}
	if sk.ParsedOptions.MinimumFractionDigits == nil || *sk.ParsedOptions.MinimumFractionDigits != 2 {
		t.Errorf("ParsedOptions.MinimumFractionDigits = %v, want 2", sk.ParsedOptions.MinimumFractionDigits)
	}
	if sk.ParsedOptions.MaximumFractionDigits == nil || *sk.ParsedOptions.MaximumFractionDigits != 2 {
		t.Errorf("ParsedOptions.MaximumFractionDigits = %v, want 2", sk.ParsedOptions.MaximumFractionDigits)
	}
}

// scenario 7: unmatched closing tag.
func TestParseUnmatchedClosingTag(t *testing.T) {
	perr := mustError(t, "<b>hi</i>", parser.Options{})
	if perr.Kind != parser.UnmatchedClosingTag {
		t.Errorf("Kind = %v, want UnmatchedClosingTag (24)", perr.Kind)
	}
}

// scenario 8: unclosed argument.
func TestParseUnclosedArgument(t *testing.T) {
	perr := mustError(t, "{foo", parser.Options{})
	if perr.Kind != parser.ExpectArgumentClosingBrace {
		t.Errorf("Kind = %v, want ExpectArgumentClosingBrace (1)", perr.Kind)
	}
	if perr.Span.Start.Offset != 0 || perr.Span.End.Offset != len("{foo") {
		t.Errorf("Span = %+v, want offsets 0->%d", perr.Span, len("{foo"))
	}
}

func TestParseSelfClosingTag(t *testing.T) {
	msg := mustParse(t, "line1<br/>line2", parser.Options{})
	if len(msg) != 3 {
		t.Fatalf("len(msg) = %d, want 3", len(msg))
	}
	tag, ok := msg[1].(*ast.Tag)
	if !ok {
		t.Fatalf("msg[1] is %T, want *ast.Tag", msg[1])
	}
	if tag.Value != "br" || tag.Children != nil {
		t.Errorf("tag = %#v, want self-closing <br/> with no children", tag)
	}
}

func TestParseNestedTagWithArgument(t *testing.T) {
	msg := mustParse(t, "<b>Hello, {name}!</b>", parser.Options{})
	tag, ok := msg[0].(*ast.Tag)
	if !ok {
		t.Fatalf("msg[0] is %T, want *ast.Tag", msg[0])
	}
	if tag.Value != "b" {
		t.Errorf("tag.Value = %q, want %q", tag.Value, "b")
	}
	if len(tag.Children) != 3 {
		t.Fatalf("len(tag.Children) = %d, want 3", len(tag.Children))
	}
	if _, ok := tag.Children[1].(*ast.Argument); !ok {
		t.Errorf("tag.Children[1] is %T, want *ast.Argument", tag.Children[1])
	}
}

func TestParseIgnoreTagTreatsAngleBracketAsLiteral(t *testing.T) {
	msg := mustParse(t, "<b>hi</b>", parser.Options{IgnoreTag: true})
	if len(msg) != 1 {
		t.Fatalf("len(msg) = %d, want 1", len(msg))
	}
	lit, ok := msg[0].(*ast.Literal)
	if !ok {
		t.Fatalf("msg[0] is %T, want *ast.Literal", msg[0])
	}
	if lit.Value != "<b>hi</b>" {
		t.Errorf("lit.Value = %q, want %q", lit.Value, "<b>hi</b>")
	}
}

func TestParseMissingOtherClauseWhenRequired(t *testing.T) {
	perr := mustError(t, "{c, plural, one {#}}", parser.Options{RequiresOtherClause: true})
	if perr.Kind != parser.MissingOtherClause {
		t.Errorf("Kind = %v, want MissingOtherClause", perr.Kind)
	}
}

func TestParseMissingOtherClauseAllowedByDefault(t *testing.T) {
	msg := mustParse(t, "{c, plural, one {#}}", parser.Options{})
	if len(msg) != 1 {
		t.Fatalf("len(msg) = %d, want 1", len(msg))
	}
}

func TestParseSelectArgument(t *testing.T) {
	msg := mustParse(t, "{gender, select, male {He} female {She} other {They}}", parser.Options{})
	sel, ok := msg[0].(*ast.Select)
	if !ok {
		t.Fatalf("msg[0] is %T, want *ast.Select", msg[0])
	}
	if sel.Options.Len() != 3 {
		t.Fatalf("sel.Options.Len() = %d, want 3", sel.Options.Len())
	}
}

func TestParseEmptyArgument(t *testing.T) {
	perr := mustError(t, "{}", parser.Options{})
	if perr.Kind != parser.EmptyArgument {
		t.Errorf("Kind = %v, want EmptyArgument", perr.Kind)
	}
}

func TestParseInvalidArgumentType(t *testing.T) {
	perr := mustError(t, "{foo, bogus}", parser.Options{})
	if perr.Kind != parser.InvalidArgumentType {
		t.Errorf("Kind = %v, want InvalidArgumentType", perr.Kind)
	}
}

func TestParseDateTimeSkeleton(t *testing.T) {
	msg := mustParse(t, "{d, date, ::yyyyMMdd}", parser.Options{ShouldParseSkeletons: true})
	d, ok := msg[0].(*ast.Date)
	if !ok {
		t.Fatalf("msg[0] is %T, want *ast.Date", msg[0])
	}
	dsk, ok := d.Style.(*ast.DateTimeSkeleton)
	if !ok {
		t.Fatalf("d.Style is %T, want *ast.DateTimeSkeleton", d.Style)
	}
	if dsk.Pattern != "yyyyMMdd" {
		t.Errorf("dsk.Pattern = %q, want %q", dsk.Pattern, "yyyyMMdd")
	}
}

func TestParsePlainStyleString(t *testing.T) {
	msg := mustParse(t, "{n, number, percent}", parser.Options{})
	num, ok := msg[0].(*ast.Number)
	if !ok {
		t.Fatalf("msg[0] is %T, want *ast.Number", msg[0])
	}
	style, ok := num.Style.(ast.StyleString)
	if !ok || string(style) != "percent" {
		t.Errorf("num.Style = %#v, want StyleString(\"percent\")", num.Style)
	}
}

func TestSpanContainment(t *testing.T) {
	sources := []string{
		"hello",
		"Hello, {name}!",
		"{c, plural, offset:1 one {# item} other {# items}}",
		"<b>Hello, {name}!</b>",
		"{gender, select, male {He} female {She} other {They}}",
	}
	for _, src := range sources {
		msg := mustParse(t, src, parser.Options{})
		var walk func(els ast.Message)
		walk = func(els ast.Message) {
			for _, el := range els {
				span := el.Location()
				if span.Start.Offset < 0 || span.Start.Offset > span.End.Offset || span.End.Offset > len(src) {
					t.Errorf("%q: element %T has invalid span %+v", src, el, span)
				}
				switch n := el.(type) {
				case *ast.Tag:
					walk(n.Children)
				case *ast.Select:
					for _, e := range n.Options.Entries() {
						walk(e.Option.Value)
					}
				case *ast.Plural:
					for _, e := range n.Options.Entries() {
						walk(e.Option.Value)
					}
				}
			}
		}
		walk(msg)
	}
}
