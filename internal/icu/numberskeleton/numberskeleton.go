// Copyright (c) 2026 Michael D Henderson. All rights reserved.

// Package numberskeleton tokenizes and, optionally, interprets ICU number
// skeleton text ("::"-prefixed number argument styles) into
// ast.NumberFormatOptions, following the stem/option grammar described at
// https://unicode-org.github.io/icu/userguide/format_parse/numbers/skeletons.html.
package numberskeleton

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/mdhender/icumf/internal/icu/ast"
	"github.com/mdhender/icumf/internal/icu/position"
)

// ErrorKind reports why Parse could not tokenize a skeleton. The parser
// package maps these onto its own ExpectNumberSkeleton/InvalidNumberSkeleton
// codes; this package stays independent of parser so it can be tested and
// reused on its own.
type ErrorKind int

const (
	ErrNone ErrorKind = iota
	ErrExpectSkeleton
	ErrInvalidSkeleton
)

var (
	fractionPrecisionRegex    = regexp.MustCompile(`^\.(?:(0+)(\*)?|(#+)|(0+)(#+))$`)
	significantPrecisionRegex = regexp.MustCompile(`^(@+)?(\+|#+)?[rs]?$`)
	integerWidthRegex         = regexp.MustCompile(`(\*)(0+)|(#+)(0+)|(0+)`)
	conciseIntegerWidthRegex  = regexp.MustCompile(`^(0+)$`)
)

// Parse tokenizes skeleton (the text following "::", already trimmed) into a
// NumberSkeleton, and — when shouldParseSkeleton is true — interprets the
// tokens into ParsedOptions. Parse never panics: every condition the
// reference implementation treats as a hard panic becomes ErrInvalidSkeleton.
func Parse(skeleton string, span position.Span, shouldParseSkeleton bool) (*ast.NumberSkeleton, ErrorKind) {
	if skeleton == "" {
		return nil, ErrExpectSkeleton
	}

	var tokens []ast.SkeletonToken
	for _, word := range strings.FieldsFunc(skeleton, unicode.IsSpace) {
		parts := strings.Split(word, "/")
		stem := parts[0]
		var options []string
		for _, opt := range parts[1:] {
			if opt == "" {
				return nil, ErrInvalidSkeleton
			}
			options = append(options, opt)
		}
		tokens = append(tokens, ast.SkeletonToken{Stem: stem, Options: options})
	}

	var parsedOptions ast.NumberFormatOptions
	if shouldParseSkeleton {
		var kind ErrorKind
		parsedOptions, kind = parseTokens(tokens)
		if kind != ErrNone {
			return nil, kind
		}
	}

	return &ast.NumberSkeleton{Tokens: tokens, Span: span, ParsedOptions: parsedOptions}, ErrNone
}

func ptr[T any](v T) *T { return &v }

// parseTokens interprets each token's stem (and its options) into
// NumberFormatOptions fields, following the reference implementation's stem
// dispatch table, then its fallback precision/sign/scientific-notation
// pattern matches for stems that aren't recognized by name.
func parseTokens(tokens []ast.SkeletonToken) (ast.NumberFormatOptions, ErrorKind) {
	var ret ast.NumberFormatOptions

	for _, tok := range tokens {
		switch tok.Stem {
		case "percent", "%":
			ret.Style = ptr(ast.NumberStylePercent)
			continue
		case "%x100":
			ret.Style = ptr(ast.NumberStylePercent)
			ret.Scale = ptr(100.0)
			continue
		case "currency":
			ret.Style = ptr(ast.NumberStyleCurrency)
			if len(tok.Options) > 0 {
				ret.Currency = ptr(tok.Options[0])
			}
			continue
		case "group-off", ",_":
			ret.UseGrouping = ptr(false)
			continue
		case "precision-integer", ".":
			ret.MaximumFractionDigits = ptr(0)
			continue
		case "measure-unit", "unit":
			ret.Style = ptr(ast.NumberStyleUnit)
			if len(tok.Options) > 0 {
				ret.Unit = icuUnitToECMA(tok.Options[0])
			}
			continue
		case "compact-short", "K":
			ret.Notation = ptr(ast.NotationCompact)
			ret.CompactDisplay = ptr(ast.CompactDisplayShort)
			continue
		case "compact-long", "KK":
			ret.Notation = ptr(ast.NotationCompact)
			ret.CompactDisplay = ptr(ast.CompactDisplayLong)
			continue
		case "scientific":
			ret.Notation = ptr(ast.NotationScientific)
			for _, opt := range tok.Options {
				parseSign(&ret, opt)
			}
			continue
		case "engineering":
			ret.Notation = ptr(ast.NotationEngineering)
			for _, opt := range tok.Options {
				parseSign(&ret, opt)
			}
			continue
		case "notation-simple":
			ret.Notation = ptr(ast.NotationStandard)
			continue
		case "unit-width-narrow":
			ret.CurrencyDisplay = ptr(ast.CurrencyDisplayNarrowSymbol)
			ret.UnitDisplay = ptr(ast.UnitDisplayNarrow)
			continue
		case "unit-width-short":
			ret.CurrencyDisplay = ptr(ast.CurrencyDisplayCode)
			ret.UnitDisplay = ptr(ast.UnitDisplayShort)
			continue
		case "unit-width-full-name":
			ret.CurrencyDisplay = ptr(ast.CurrencyDisplayName)
			ret.UnitDisplay = ptr(ast.UnitDisplayLong)
			continue
		case "unit-width-iso-code":
			ret.CurrencyDisplay = ptr(ast.CurrencyDisplaySymbol)
			continue
		case "scale":
			if len(tok.Options) > 0 {
				if v, err := strconv.ParseFloat(tok.Options[0], 64); err == nil {
					ret.Scale = ptr(v)
				}
			}
			continue
		case "integer-width":
			if len(tok.Options) > 0 {
				if cap := integerWidthRegex.FindStringSubmatch(tok.Options[0]); cap != nil {
					switch {
					case cap[1] != "":
						ret.MinimumIntegerDigits = ptr(len(cap[2]))
					case cap[3] != "" && cap[4] != "":
						return ret, ErrInvalidSkeleton // maximum integer digits: unsupported
					case cap[5] != "":
						return ret, ErrInvalidSkeleton // exact integer digits: unsupported
					}
				}
			}
			continue
		}

		if conciseIntegerWidthRegex.MatchString(tok.Stem) {
			ret.MinimumIntegerDigits = ptr(len(tok.Stem))
			continue
		}

		if cap := fractionPrecisionRegex.FindStringSubmatch(tok.Stem); cap != nil {
			g1, g2, g3, g4, g5 := cap[1], cap[2], cap[3], cap[4], cap[5]
			switch {
			case g2 == "*":
				ret.MinimumFractionDigits = ptr(len(g1))
			case strings.HasPrefix(g3, "#"):
				ret.MaximumFractionDigits = ptr(len(g3))
			case g4 != "" && g5 != "":
				ret.MinimumFractionDigits = ptr(len(g4))
				ret.MaximumFractionDigits = ptr(len(g4) + len(g5))
			default:
				ret.MinimumFractionDigits = ptr(len(g1))
				ret.MaximumFractionDigits = ptr(len(g1))
			}

			if len(tok.Options) > 0 {
				if tok.Options[0] == "w" {
					ret.TrailingZeroDisplay = ptr(ast.TrailingZeroDisplayStripIfInteger)
				} else {
					parseSignificantPrecision(&ret, tok.Options[0])
				}
			}
			continue
		}

		if significantPrecisionRegex.MatchString(tok.Stem) {
			parseSignificantPrecision(&ret, tok.Stem)
			continue
		}

		parseSign(&ret, tok.Stem)
		if kind := parseConciseScientificAndEngineeringStem(&ret, tok.Stem); kind != ErrNone {
			return ret, kind
		}
	}

	return ret, ErrNone
}

func parseSignificantPrecision(ret *ast.NumberFormatOptions, value string) {
	if value != "" {
		switch value[len(value)-1] {
		case 'r':
			ret.RoundingPriority = ptr(ast.RoundingPriorityMorePrecision)
		case 's':
			ret.RoundingPriority = ptr(ast.RoundingPriorityLessPrecision)
		}
	}

	cap := significantPrecisionRegex.FindStringSubmatch(value)
	if cap == nil {
		return
	}
	g1, g2 := cap[1], cap[2]
	if g1 == "" {
		// group 1 ("@+") didn't participate: the reference's cap.get(1) is
		// None here, and None.map(...) leaves both fields unset rather than
		// falling through to a zero-length default.
		return
	}
	g1Len := len(g1)
	// g2 only ever matches "+" or a run of "#", so it is never itself a
	// number; "g2 non-quantity" reduces to "g2 absent" in practice, same as
	// the reference's parse::<u32>().is_ok() check on that same alternation.
	isG2NonQuantity := g2 == ""

	switch {
	case isG2NonQuantity:
		// "@@@" case
		ret.MinimumSignificantDigits = ptr(g1Len)
		ret.MaximumSignificantDigits = ptr(g1Len)
	case g2 == "+":
		// "@@@+" case
		ret.MinimumSignificantDigits = ptr(g1Len)
	case strings.HasPrefix(g1, "#"):
		// ".###" case
		ret.MaximumSignificantDigits = ptr(g1Len)
	default:
		// ".@@##" or ".@@@" case
		ret.MinimumSignificantDigits = ptr(g1Len)
		ret.MaximumSignificantDigits = ptr(g1Len + len(g2))
	}
}

func parseSign(ret *ast.NumberFormatOptions, value string) {
	switch value {
	case "sign-auto":
		ret.SignDisplay = ptr(ast.SignDisplayAuto)
	case "sign-accounting", "()":
		ret.CurrencySign = ptr(ast.CurrencySignAccounting)
	case "sign-always", "+!":
		ret.SignDisplay = ptr(ast.SignDisplayAlways)
	case "sign-accounting-always", "()!":
		ret.SignDisplay = ptr(ast.SignDisplayAlways)
		ret.CurrencySign = ptr(ast.CurrencySignAccounting)
	case "sign-except-zero", "+?":
		ret.SignDisplay = ptr(ast.SignDisplayExceptZero)
	case "sign-accounting-except-zero", "()?":
		ret.SignDisplay = ptr(ast.SignDisplayExceptZero)
		ret.CurrencySign = ptr(ast.CurrencySignAccounting)
	case "sign-never", "+_":
		ret.SignDisplay = ptr(ast.SignDisplayNever)
	}
}

// parseConciseScientificAndEngineeringStem handles the "EE..."/"E..." stems
// that fold a notation, an optional sign, and a minimum-integer-digit count
// into a single stem. The reference panics on a malformed width run; this
// reports ErrInvalidSkeleton instead.
func parseConciseScientificAndEngineeringStem(ret *ast.NumberFormatOptions, stem string) ErrorKind {
	hasSign := false
	switch {
	case strings.HasPrefix(stem, "EE"):
		ret.Notation = ptr(ast.NotationEngineering)
		stem = stem[2:]
		hasSign = true
	case strings.HasPrefix(stem, "E"):
		ret.Notation = ptr(ast.NotationScientific)
		stem = stem[1:]
		hasSign = true
	default:
		return ErrNone
	}

	if !hasSign {
		return ErrNone
	}

	if len(stem) >= 2 {
		switch stem[0:2] {
		case "+!":
			ret.SignDisplay = ptr(ast.SignDisplayAlways)
			stem = stem[2:]
		case "+?":
			ret.SignDisplay = ptr(ast.SignDisplayExceptZero)
			stem = stem[2:]
		}
	}

	if !conciseIntegerWidthRegex.MatchString(stem) {
		return ErrInvalidSkeleton
	}
	ret.MinimumIntegerDigits = ptr(len(stem))
	return ErrNone
}

// icuUnitToECMA resolves an ICU measurement-unit identifier to its ECMA-402
// equivalent. The reference implementation leaves this unimplemented (always
// None); this port carries that forward rather than inventing a mapping
// table that isn't grounded in either.
func icuUnitToECMA(string) *string {
	return nil
}
