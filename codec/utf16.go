package codec

import "github.com/wippyai/utfx"

const surrSelf = 0x10000

// UTF16 is the codec for 16-bit code units. Units above 0xFFFF, possible
// when instantiated with uint32, decode as Illegal.
type UTF16[U utfx.Unit] struct{}

func (UTF16[U]) Form() utfx.Form { return utfx.UTF16 }

func (UTF16[U]) MaxWidth() int { return 2 }

// TrailLength returns 1 for a high surrogate, -1 for a low surrogate and 0
// for any other unit. Units above 0xFFFF also return -1.
func (UTF16[U]) TrailLength(u U) int {
	v := uint32(u)
	switch {
	case v > 0xFFFF:
		return -1
	case utfx.IsHighSurrogate(v):
		return 1
	case utfx.IsLowSurrogate(v):
		return -1
	default:
		return 0
	}
}

// Width returns 2 for supplementary code points and 1 otherwise.
func (UTF16[U]) Width(c utfx.CodePoint) int {
	if c >= surrSelf {
		return 2
	}
	return 1
}

// IsTrail reports whether u is a low surrogate.
func (UTF16[U]) IsTrail(u U) bool { return utfx.IsLowSurrogate(uint32(u)) }

// IsLead reports whether u is not a low surrogate.
func (d UTF16[U]) IsLead(u U) bool { return !d.IsTrail(u) }

func combineSurrogates(w1, w2 uint32) utfx.CodePoint {
	return utfx.CodePoint((w1&0x3FF)<<10|(w2&0x3FF)) + surrSelf
}

// Decode reads a single unit or a surrogate pair. When the unit after a high
// surrogate is not a low surrogate both units count as examined.
func (UTF16[U]) Decode(src []U) (utfx.CodePoint, int) {
	if len(src) == 0 {
		return utfx.Incomplete, 0
	}
	w1 := uint32(src[0])
	if w1 > 0xFFFF {
		return utfx.Illegal, 1
	}
	if !utfx.IsSurrogate(w1) {
		return utfx.CodePoint(w1), 1
	}
	if w1 > utfx.HighSurrogateMax {
		return utfx.Illegal, 1
	}
	if len(src) == 1 {
		return utfx.Incomplete, 1
	}
	w2 := uint32(src[1])
	if !utfx.IsLowSurrogate(w2) {
		return utfx.Illegal, 2
	}
	return combineSurrogates(w1, w2), 2
}

// DecodeValid decodes the front of src without checks.
func (UTF16[U]) DecodeValid(src []U) (utfx.CodePoint, int) {
	w1 := uint32(uint16(src[0]))
	if !utfx.IsSurrogate(w1) {
		return utfx.CodePoint(w1), 1
	}
	return combineSurrogates(w1, uint32(uint16(src[1]))), 2
}

// Encode returns c as one unit or a surrogate pair. Invalid code points
// produce no units.
func (UTF16[U]) Encode(c utfx.CodePoint) Chars[U] {
	v := uint32(c)
	if !utfx.IsValid(v) {
		return Chars[U]{}
	}
	if v < surrSelf {
		return chars1(U(v))
	}
	v -= surrSelf
	return chars2(U(utfx.SurrogateMin|v>>10), U(utfx.LowSurrogateMin|v&0x3FF))
}

// Append appends the encoding of c to dst.
func (d UTF16[U]) Append(dst []U, c utfx.CodePoint) []U {
	return d.Encode(c).AppendTo(dst)
}
