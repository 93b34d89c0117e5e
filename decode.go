package efjson

import (
	"fmt"
	"io"
	"unicode/utf8"
)

// UTF8Decoder is a thin, allocation-free adapter that turns a byte stream
// into the code points a StreamParser consumes. It carries no state of its
// own between calls and is independent of StreamParser; a multi-byte
// sequence split across two calls is reported as invalid.
type UTF8Decoder struct{}

// Step decodes the rune at the front of b, returning how many bytes it
// consumed.
func (UTF8Decoder) Step(b []byte) (consumed int, r rune, err error) {
	if len(b) == 0 {
		return 0, 0, io.ErrUnexpectedEOF
	}
	r, size := utf8.DecodeRune(b)
	if r == utf8.RuneError && size <= 1 {
		return size, 0, fmt.Errorf("%w: invalid UTF-8 byte sequence", ErrSyntax)
	}
	return size, r, nil
}

// UTF16Decoder is the UTF-16 analogue of UTF8Decoder: it recombines
// surrogate pairs into a single code point.
type UTF16Decoder struct{}

// Step decodes the code point at the front of units, returning how many
// uint16 units it consumed (1, or 2 for a surrogate pair).
func (UTF16Decoder) Step(units []uint16) (consumed int, r rune, err error) {
	if len(units) == 0 {
		return 0, 0, io.ErrUnexpectedEOF
	}
	u := units[0]
	switch {
	case isHighSurrogate(uint32(u)):
		if len(units) < 2 {
			return 1, 0, io.ErrUnexpectedEOF
		}
		low := units[1]
		if !isLowSurrogate(uint32(low)) {
			return 1, 0, fmt.Errorf("%w: unpaired UTF-16 surrogate", ErrSyntax)
		}
		return 2, combineSurrogatePair(uint32(u), uint32(low)), nil
	case isLowSurrogate(uint32(u)):
		return 1, 0, fmt.Errorf("%w: unpaired UTF-16 surrogate", ErrSyntax)
	default:
		return 1, rune(u), nil
	}
}
