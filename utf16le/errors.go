package utf16le

import "errors"

var (
	// ErrOddOffset indicates the requested byte offset splits a code unit.
	ErrOddOffset = errors.New("utf16le: byte offset is odd")

	// ErrOddLength indicates the requested byte length splits a code unit.
	ErrOddLength = errors.New("utf16le: byte length is odd")

	// ErrOutOfRange indicates the requested range is negative or extends
	// past the end of the buffer.
	ErrOutOfRange = errors.New("utf16le: range out of buffer bounds")

	// ErrUnpairedSurrogate indicates a lone or truncated surrogate code
	// unit. Only returned by the strict decoders.
	ErrUnpairedSurrogate = errors.New("utf16le: unpaired surrogate code unit")
)
