// Copyright (c) 2026 Michael D Henderson. All rights reserved.

// Package patsyntax classifies Unicode code points as "pattern syntax"
// characters, the Unicode Pattern_Syntax property used by MessageFormat to
// terminate bare identifiers. It is a pure function of the code point, in
// the same spirit as the teacher's lexer character classifiers
// (internal/parsers/lexers.Lexer.isAlpha/isDigit/isWhitespace), generalized
// from "is this ASCII punctuation" to the full Unicode range table.
package patsyntax

// asciiRanges and suppRanges partition the code points the Unicode standard
// marks Pattern_Syntax into the ASCII punctuation MessageFormat actually
// relies on (braces, angle brackets, comma, colon, equals, hash, and the
// rest of ASCII punctuation/symbols) and the supplementary block ranges.
// Ranges are [lo,hi] inclusive.
var asciiRanges = [][2]rune{
	{0x0021, 0x0023}, // ! " #
	{0x0024, 0x0027}, // $ % & '
	{0x0028, 0x0029}, // ( )
	{0x002A, 0x002A}, // *
	{0x002B, 0x002B}, // +
	{0x002C, 0x002C}, // ,
	{0x002D, 0x002D}, // -
	{0x002E, 0x002F}, // . /
	{0x003A, 0x003B}, // : ;
	{0x003C, 0x003E}, // < = >
	{0x003F, 0x0040}, // ? @
	{0x005B, 0x005E}, // [ \ ] ^
	{0x0060, 0x0060}, // `
	{0x007B, 0x007E}, // { | } ~
}

// suppRanges lists the supplementary Pattern_Syntax blocks outside ASCII.
var suppRanges = [][2]rune{
	{0x00A1, 0x00A7},
	{0x00A9, 0x00A9},
	{0x00AB, 0x00AC},
	{0x00AE, 0x00AE},
	{0x00B0, 0x00B1},
	{0x00B6, 0x00B6},
	{0x00BB, 0x00BB},
	{0x00BF, 0x00BF},
	{0x00D7, 0x00D7},
	{0x00F7, 0x00F7},
	{0x2010, 0x2027},
	{0x2030, 0x203E},
	{0x2041, 0x2053},
	{0x2055, 0x205E},
	{0x2190, 0x245F},
	{0x2500, 0x2775},
	{0x2794, 0x2BFF},
	{0x2E00, 0x2E7F},
	{0x3001, 0x3003},
	{0x3008, 0x3020},
	{0x3030, 0x3030},
	{0xFD3E, 0xFD3F},
	{0xFE45, 0xFE46},
}

// IsPatternSyntax reports whether r is a Unicode Pattern_Syntax code point.
// Bare identifiers run until whitespace or a Pattern_Syntax character.
func IsPatternSyntax(r rune) bool {
	if inRanges(r, asciiRanges) {
		return true
	}
	return inRanges(r, suppRanges)
}

func inRanges(r rune, ranges [][2]rune) bool {
	lo, hi := 0, len(ranges)-1
	for lo <= hi {
		mid := (lo + hi) / 2
		rg := ranges[mid]
		switch {
		case r < rg[0]:
			hi = mid - 1
		case r > rg[1]:
			lo = mid + 1
		default:
			return true
		}
	}
	return false
}
