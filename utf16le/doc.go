// Package utf16le decodes UTF-16LE byte buffers into Go strings.
//
// # Overview
//
// Two access patterns are supported:
//
//   - Decode reads a validated offset/length span out of a caller-owned
//     buffer into a fresh string. The buffer is never touched and stays
//     fully usable after the call.
//   - Consume takes ownership of an entire buffer and decodes it from byte
//     0 to its full length. When the content is pure ASCII the original
//     allocation is compacted in place and reused as the string's backing
//     storage; otherwise a fresh string is allocated. Either way the
//     caller's slice is nil'd out and must not be used again.
//
// # Malformed input
//
// Lone high surrogates, lone low surrogates, and pairs truncated at the end
// of the span all decode to U+FFFD, the Unicode replacement character. This
// matches the stdlib's utf16.Decode. DecodeStrict returns
// ErrUnpairedSurrogate instead, with the byte offset of the offending unit.
//
// # Validation
//
// Byte offsets and lengths must be even and describe a span inside the
// buffer. Violations return errors wrapping ErrOddOffset, ErrOddLength, or
// ErrOutOfRange; a span is never silently truncated or rounded.
package utf16le
