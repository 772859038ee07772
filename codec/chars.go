package codec

import "github.com/wippyai/utfx"

// Chars holds the units produced by encoding a single code point.
type Chars[U utfx.Unit] struct {
	units [4]U
	n     uint8
}

func chars1[U utfx.Unit](a U) Chars[U] {
	return Chars[U]{units: [4]U{a}, n: 1}
}

func chars2[U utfx.Unit](a, b U) Chars[U] {
	return Chars[U]{units: [4]U{a, b}, n: 2}
}

func chars3[U utfx.Unit](a, b, c U) Chars[U] {
	return Chars[U]{units: [4]U{a, b, c}, n: 3}
}

func chars4[U utfx.Unit](a, b, c, d U) Chars[U] {
	return Chars[U]{units: [4]U{a, b, c, d}, n: 4}
}

// Len returns the number of units held.
func (c Chars[U]) Len() int { return int(c.n) }

// At returns the i-th unit. It panics if i is out of range.
func (c Chars[U]) At(i int) U {
	return c.units[:c.n][i]
}

// Equal reports whether both buffers hold the same units.
func (c Chars[U]) Equal(o Chars[U]) bool {
	if c.n != o.n {
		return false
	}
	for i := 0; i < int(c.n); i++ {
		if c.units[i] != o.units[i] {
			return false
		}
	}
	return true
}

// AppendTo appends the held units to dst.
func (c Chars[U]) AppendTo(dst []U) []U {
	return append(dst, c.units[:c.n]...)
}
