package utf16le

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/illusory0x0/illu-string-of-bytes/internal/buf"
)

// Decode decodes byteLength bytes of UTF-16LE text starting at byteOffset
// into a new string. The buffer is read-only to this call: it is returned
// to the caller unchanged and remains fully usable.
//
// byteOffset and byteLength must be even, non-negative, and describe a span
// within b; violations return an error wrapping ErrOddOffset, ErrOddLength,
// or ErrOutOfRange. Unpaired surrogates decode to U+FFFD.
func Decode(b []byte, byteOffset, byteLength int) (string, error) {
	span, err := checkSpan(b, byteOffset, byteLength)
	if err != nil {
		return "", err
	}
	return decodeUnits(span, byteOffset, false)
}

// DecodeStrict is Decode with a hard malformed-input policy: any lone or
// truncated surrogate fails with an error wrapping ErrUnpairedSurrogate
// instead of decoding to U+FFFD.
func DecodeStrict(b []byte, byteOffset, byteLength int) (string, error) {
	span, err := checkSpan(b, byteOffset, byteLength)
	if err != nil {
		return "", err
	}
	return decodeUnits(span, byteOffset, true)
}

// checkSpan validates the offset/length pair against b and returns the
// requested sub-slice.
func checkSpan(b []byte, off, n int) ([]byte, error) {
	if off < 0 || n < 0 {
		return nil, fmt.Errorf("%w: offset=%d length=%d", ErrOutOfRange, off, n)
	}
	if off&1 != 0 {
		return nil, fmt.Errorf("%w: offset=%d", ErrOddOffset, off)
	}
	if n&1 != 0 {
		return nil, fmt.Errorf("%w: length=%d", ErrOddLength, n)
	}
	if _, err := buf.CheckRange(len(b), off, n); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOutOfRange, err)
	}
	return b[off : off+n], nil
}

// decodeUnits decodes an even-length run of UTF-16LE code units. base is
// the span's byte offset within the original buffer, used only for error
// reporting in strict mode.
func decodeUnits(span []byte, base int, strict bool) (string, error) {
	if len(span) == 0 {
		return "", nil
	}

	// Fast path: pure ASCII content is [byte, 0x00] pairs.
	if isASCII(span) {
		var sb strings.Builder
		sb.Grow(len(span) / CodeUnitSize)
		for i := 0; i < len(span); i += CodeUnitSize {
			sb.WriteByte(span[i])
		}
		return sb.String(), nil
	}

	var sb strings.Builder
	// UTF-8 output is at most 1.5x the UTF-16 byte count (3 bytes from a
	// 2-byte BMP unit); len(span) covers the common case without a regrow.
	sb.Grow(len(span))

	for i := 0; i < len(span); i += CodeUnitSize {
		u := rune(span[i]) | rune(span[i+1])<<8

		if u < HighSurrogateStart || u > LowSurrogateEnd {
			sb.WriteRune(u)
			continue
		}

		if u <= HighSurrogateEnd && i+3 < len(span) {
			u2 := rune(span[i+2]) | rune(span[i+3])<<8
			if u2 >= LowSurrogateStart && u2 <= LowSurrogateEnd {
				sb.WriteRune(SurrogateBase + (u-HighSurrogateStart)<<10 + (u2 - LowSurrogateStart))
				i += CodeUnitSize
				continue
			}
		}

		// Lone high, lone low, or pair truncated at end of span.
		if strict {
			return "", fmt.Errorf("%w: unit=0x%04X at byte %d", ErrUnpairedSurrogate, u, base+i)
		}
		sb.WriteRune(utf8.RuneError)
	}
	return sb.String(), nil
}

// isASCII reports whether every code unit in the even-length span is below
// 0x80.
func isASCII(span []byte) bool {
	for i := 0; i < len(span); i += CodeUnitSize {
		if span[i+1] != 0 || span[i] >= asciiThreshold {
			return false
		}
	}
	return true
}
