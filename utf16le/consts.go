package utf16le

// UTF-16 code unit classification boundaries.
const (
	// HighSurrogateStart is the first code unit of the high surrogate range.
	HighSurrogateStart = 0xD800
	// HighSurrogateEnd is the last code unit of the high surrogate range.
	HighSurrogateEnd = 0xDBFF
	// LowSurrogateStart is the first code unit of the low surrogate range.
	LowSurrogateStart = 0xDC00
	// LowSurrogateEnd is the last code unit of the low surrogate range.
	LowSurrogateEnd = 0xDFFF
	// SurrogateBase is the base value for surrogate pair calculations.
	SurrogateBase = 0x10000

	// CodeUnitSize is the byte width of one UTF-16 code unit.
	CodeUnitSize = 2

	// asciiThreshold bounds the code units the ASCII fast path accepts.
	asciiThreshold = 0x80
)
