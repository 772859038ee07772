package utfx

import "fmt"

// CodePoint is a Unicode scalar value, or one of the decode sentinels.
type CodePoint uint32

// Decode sentinels. Both lie above MaxCodePoint, so no valid code point can
// ever compare equal to them.
const (
	// Illegal reports a malformed sequence: a bad lead or trail unit, a
	// surrogate or out-of-range value, or an overlong UTF-8 encoding.
	Illegal CodePoint = 0xFFFFFFFF

	// Incomplete reports input that ended in the middle of a sequence.
	Incomplete CodePoint = 0xFFFFFFFE
)

const (
	// MaxCodePoint is the largest valid code point.
	MaxCodePoint = 0x10FFFF

	SurrogateMin     = 0xD800
	SurrogateMax     = 0xDFFF
	HighSurrogateMax = 0xDBFF
	LowSurrogateMin  = 0xDC00
)

// IsValid reports whether v is in [0, 0x10FFFF] and not a surrogate.
func IsValid(v uint32) bool {
	if v > MaxCodePoint {
		return false
	}
	return v < SurrogateMin || v > SurrogateMax
}

// IsSurrogate reports whether v is in [0xD800, 0xDFFF].
func IsSurrogate(v uint32) bool {
	return SurrogateMin <= v && v <= SurrogateMax
}

// IsHighSurrogate reports whether v is a leading surrogate [0xD800, 0xDBFF].
func IsHighSurrogate(v uint32) bool {
	return SurrogateMin <= v && v <= HighSurrogateMax
}

// IsLowSurrogate reports whether v is a trailing surrogate [0xDC00, 0xDFFF].
func IsLowSurrogate(v uint32) bool {
	return LowSurrogateMin <= v && v <= SurrogateMax
}

// IsValid reports whether c is a valid code point.
func (c CodePoint) IsValid() bool { return IsValid(uint32(c)) }

// IsSentinel reports whether c is Illegal or Incomplete.
func (c CodePoint) IsSentinel() bool { return c == Illegal || c == Incomplete }

func (c CodePoint) String() string {
	switch c {
	case Illegal:
		return "ILLEGAL"
	case Incomplete:
		return "INCOMPLETE"
	}
	return fmt.Sprintf("U+%04X", uint32(c))
}
