package utf16le

import (
	"fmt"

	"github.com/illusory0x0/illu-string-of-bytes/internal/bytesconv"
)

// Consume decodes an entire UTF-16LE buffer, taking ownership of its
// storage. The result equals Decode(*b, 0, len(*b)), but when the content
// is pure ASCII the code units are compacted into the low half of the
// original allocation and the returned string aliases that storage with no
// new allocation.
//
// The caller's slice is set to nil on entry and the underlying bytes may be
// rewritten; the buffer must not be read or written through any retained
// alias after Consume is called, whether or not it returns an error. The
// buffer's length must be even.
func Consume(b *[]byte) (string, error) {
	src := *b
	*b = nil // the caller's handle is dead from here on

	if len(src)&1 != 0 {
		return "", fmt.Errorf("%w: length=%d", ErrOddLength, len(src))
	}
	if len(src) == 0 {
		return "", nil
	}

	if isASCII(src) {
		// In-place transcode-and-shrink: each [byte, 0x00] pair collapses
		// to one byte, so the write cursor never overtakes the read cursor.
		n := len(src) / CodeUnitSize
		for i := 0; i < n; i++ {
			src[i] = src[i*CodeUnitSize]
		}
		return bytesconv.String(src[:n]), nil
	}

	// Non-ASCII output can be larger than the input (a 2-byte BMP unit may
	// need 3 UTF-8 bytes), so reuse is not possible; decode into a fresh
	// string.
	return decodeUnits(src, 0, false)
}
