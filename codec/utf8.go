package codec

import "github.com/wippyai/utfx"

const (
	tx = 0b10000000
	t2 = 0b11000000
	t3 = 0b11100000
	t4 = 0b11110000

	maskx = 0b00111111

	rune1Max = 1<<7 - 1
	rune2Max = 1<<11 - 1
	rune3Max = 1<<16 - 1
)

// UTF8 is the codec for 8-bit code units. It may be instantiated with a
// wider unit type; units above 0xFF are never valid bytes and decode as
// Illegal.
type UTF8[U utfx.Unit] struct{}

// Form returns utfx.UTF8.
func (UTF8[U]) Form() utfx.Form { return utfx.UTF8 }

// MaxWidth returns 4.
func (UTF8[U]) MaxWidth() int { return 4 }

// TrailLength classifies a lead byte. Continuation bytes, 0xC0, 0xC1 and
// bytes above 0xF4 can never lead and return -1.
func (UTF8[U]) TrailLength(u U) int {
	if uint32(u) > 0xFF {
		return -1
	}
	c := uint8(u)
	switch {
	case c < 0x80:
		return 0
	case c < 0xC2:
		return -1
	case c < 0xE0:
		return 1
	case c < 0xF0:
		return 2
	case c <= 0xF4:
		return 3
	default:
		return -1
	}
}

// Width returns the number of bytes Encode produces for a valid c.
func (UTF8[U]) Width(c utfx.CodePoint) int {
	switch {
	case c <= rune1Max:
		return 1
	case c <= rune2Max:
		return 2
	case c <= rune3Max:
		return 3
	default:
		return 4
	}
}

// IsTrail reports whether u is a continuation byte.
func (UTF8[U]) IsTrail(u U) bool { return uint32(u) <= 0xFF && uint8(u)&0xC0 == tx }

// IsLead reports whether u can start a sequence position, that is, whether it
// is not a continuation byte.
func (d UTF8[U]) IsLead(u U) bool { return !d.IsTrail(u) }

// Decode reads one code point from the front of src. It returns the code
// point or a sentinel, and the number of units examined. Overlong forms,
// surrogates and values above U+10FFFF are Illegal.
func (d UTF8[U]) Decode(src []U) (utfx.CodePoint, int) {
	if len(src) == 0 {
		return utfx.Incomplete, 0
	}

	lead := uint8(src[0])
	trail := d.TrailLength(src[0])
	if trail < 0 {
		return utfx.Illegal, 1
	}
	if trail == 0 {
		return utfx.CodePoint(lead), 1
	}

	c := uint32(lead) & (1<<(6-trail) - 1)
	n := 1
	for ; n <= trail; n++ {
		if n == len(src) {
			return utfx.Incomplete, n
		}
		if !d.IsTrail(src[n]) {
			return utfx.Illegal, n + 1
		}
		c = c<<6 | uint32(uint8(src[n])&maskx)
	}

	if !utfx.IsValid(c) {
		return utfx.Illegal, n
	}
	// overlong
	if d.Width(utfx.CodePoint(c)) != n {
		return utfx.Illegal, n
	}
	return utfx.CodePoint(c), n
}

// DecodeValid decodes the front of src without checks. src must start with
// a complete well-formed sequence.
func (UTF8[U]) DecodeValid(src []U) (utfx.CodePoint, int) {
	lead := uint8(src[0])
	if lead < t2 {
		return utfx.CodePoint(lead), 1
	}

	var trail int
	switch {
	case lead < t3:
		trail = 1
	case lead < t4:
		trail = 2
	default:
		trail = 3
	}

	c := uint32(lead) & (1<<(6-trail) - 1)
	for i := 1; i <= trail; i++ {
		c = c<<6 | uint32(uint8(src[i])&maskx)
	}
	return utfx.CodePoint(c), trail + 1
}

// Encode returns the bytes of c, or no units if c is not a scalar value.
func (UTF8[U]) Encode(c utfx.CodePoint) Chars[U] {
	switch v := uint32(c); {
	case v <= rune1Max:
		return chars1(U(v))
	case v <= rune2Max:
		return chars2(U(t2|v>>6), U(tx|v&maskx))
	case !utfx.IsValid(v):
		return Chars[U]{}
	case v <= rune3Max:
		return chars3(U(t3|v>>12), U(tx|v>>6&maskx), U(tx|v&maskx))
	default:
		return chars4(U(t4|v>>18), U(tx|v>>12&maskx), U(tx|v>>6&maskx), U(tx|v&maskx))
	}
}

// Append appends the encoding of c to dst.
func (d UTF8[U]) Append(dst []U, c utfx.CodePoint) []U {
	if c <= rune1Max {
		return append(dst, U(c))
	}
	return d.Encode(c).AppendTo(dst)
}
