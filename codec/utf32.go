package codec

import "github.com/wippyai/utfx"

// UTF32 is the codec for 32-bit code units.
type UTF32[U utfx.Unit] struct{}

func (UTF32[U]) Form() utfx.Form { return utfx.UTF32 }

func (UTF32[U]) MaxWidth() int { return 1 }

// TrailLength returns 0 for a scalar value and -1 otherwise.
func (UTF32[U]) TrailLength(u U) int {
	if utfx.IsValid(uint32(u)) {
		return 0
	}
	return -1
}

// Width is always 1. See Codec for the remaining methods.
func (UTF32[U]) Width(utfx.CodePoint) int { return 1 }

func (UTF32[U]) IsTrail(U) bool { return false }

func (UTF32[U]) IsLead(U) bool { return true }

// Decode returns the first unit as a code point, or Illegal when it is a
// surrogate or above U+10FFFF.
func (UTF32[U]) Decode(src []U) (utfx.CodePoint, int) {
	if len(src) == 0 {
		return utfx.Incomplete, 0
	}
	v := uint32(src[0])
	if !utfx.IsValid(v) {
		return utfx.Illegal, 1
	}
	return utfx.CodePoint(v), 1
}

// DecodeValid returns the first unit unchecked.
func (UTF32[U]) DecodeValid(src []U) (utfx.CodePoint, int) {
	return utfx.CodePoint(src[0]), 1
}

// Encode returns c as a single unit.
func (UTF32[U]) Encode(c utfx.CodePoint) Chars[U] {
	if !c.IsValid() {
		return Chars[U]{}
	}
	return chars1(U(c))
}

// Append appends c to dst, dropping invalid code points.
func (d UTF32[U]) Append(dst []U, c utfx.CodePoint) []U {
	if !c.IsValid() {
		return dst
	}
	return append(dst, U(c))
}
