package efjson

import (
	"unicode"

	"github.com/klauspost/cpuid/v2"
)

// useASCIIFastPath selects how testASCIIMask reads a bit of the ASCII masks:
// a single shift-and-mask when true, a per-bit shift loop otherwise. It is
// decided once, the way simdjson-go probes the CPU once to pick between
// codepaths, rather than on every call.
var useASCIIFastPath = cpuid.CPU.Supports(cpuid.BMI1)

// asciiWhitespaceMask and the two asciiIdentifier*Mask values are bitmasks
// over the 128 ASCII code points, built once, so the hot path on 7-bit input is a shift-and-mask
// instead of entering the binary search at all.
var asciiWhitespaceMask, asciiIdentifierStartMask, asciiIdentifierContinueMask [2]uint64

func init() {
	setASCII := func(mask *[2]uint64, r rune) {
		mask[r/64] |= 1 << uint(r%64)
	}
	for _, r := range []rune{'\t', '\n', '\r', ' '} {
		setASCII(&asciiWhitespaceMask, r)
	}
	for r := rune('A'); r <= 'Z'; r++ {
		setASCII(&asciiIdentifierStartMask, r)
		setASCII(&asciiIdentifierContinueMask, r)
	}
	for r := rune('a'); r <= 'z'; r++ {
		setASCII(&asciiIdentifierStartMask, r)
		setASCII(&asciiIdentifierContinueMask, r)
	}
	setASCII(&asciiIdentifierStartMask, '$')
	setASCII(&asciiIdentifierStartMask, '_')
	setASCII(&asciiIdentifierContinueMask, '$')
	setASCII(&asciiIdentifierContinueMask, '_')
	for r := rune('0'); r <= '9'; r++ {
		setASCII(&asciiIdentifierContinueMask, r)
	}
}

func testASCIIMask(mask [2]uint64, r rune) bool {
	if useASCIIFastPath {
		return mask[r/64]&(1<<uint(r%64)) != 0
	}
	// Without BMI1 the shift-and-mask above is no cheaper than a direct
	// per-bit test; fall back to it explicitly rather than pretend there
	// is a meaningful fast path on this CPU.
	bit := uint(r) & 63
	word := mask[r/64]
	for i := uint(0); i < bit; i++ {
		word >>= 1
	}
	return word&1 != 0
}

// json5ExtraWhitespace lists the JSON5 whitespace code points beyond the
// four ASCII ones, sorted for the binary search in inSortedRunes. No single
// unicode.RangeTable matches this set, so it is hand-rolled; everything
// else rides on the standard library's own range tables.
var json5ExtraWhitespace = []rune{
	0x000B, 0x000C, 0x00A0, 0x1680,
	0x2000, 0x2001, 0x2002, 0x2003, 0x2004, 0x2005, 0x2006, 0x2007,
	0x2008, 0x2009, 0x200A,
	0x2028, 0x2029, 0x202F, 0x205F, 0x3000, 0xFEFF,
}

func inSortedRunes(set []rune, r rune) bool {
	lo, hi := 0, len(set)
	for lo < hi {
		mid := (lo + hi) / 2
		if set[mid] < r {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo < len(set) && set[lo] == r
}

// isWhitespace reports whether r is whitespace. In strict JSON mode only
// the four ASCII whitespace characters count; json5 additionally admits
// the Unicode space separators and the line separators U+2028/U+2029.
func isWhitespace(r rune, json5 bool) bool {
	if r < 128 && testASCIIMask(asciiWhitespaceMask, r) {
		return true
	}
	if !json5 {
		return false
	}
	return inSortedRunes(json5ExtraWhitespace, r)
}

// isIdentifierStart reports whether r may begin a JSON5 bare identifier:
// Unicode ID_Start plus '$' and '_'.
func isIdentifierStart(r rune) bool {
	if r < 128 {
		return testASCIIMask(asciiIdentifierStartMask, r)
	}
	return unicode.In(r, unicode.L, unicode.Nl, unicode.Other_ID_Start) &&
		!unicode.In(r, unicode.Pattern_Syntax, unicode.Pattern_White_Space)
}

// isIdentifierContinue reports whether r may continue a JSON5 bare
// identifier after its first character: Unicode ID_Continue plus '$', '_',
// the zero-width non-joiner U+200C and zero-width joiner U+200D.
func isIdentifierContinue(r rune) bool {
	if r < 128 {
		return testASCIIMask(asciiIdentifierContinueMask, r)
	}
	if r == 0x200C || r == 0x200D {
		return true
	}
	return unicode.In(r, unicode.L, unicode.Nl, unicode.Other_ID_Start,
		unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc, unicode.Other_ID_Continue) &&
		!unicode.In(r, unicode.Pattern_Syntax, unicode.Pattern_White_Space)
}

// isLineTerminator reports whether r is one of the four code points that
// end a line: LF, CR, U+2028 (Line Separator), U+2029 (Paragraph Separator).
func isLineTerminator(r rune) bool {
	return r == '\n' || r == '\r' || r == 0x2028 || r == 0x2029
}
