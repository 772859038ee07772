package transcoder

import (
	"iter"

	"github.com/wippyai/utfx"
	"github.com/wippyai/utfx/codec"
	"github.com/wippyai/utfx/errors"
)

// Append transcodes src and appends the result to dst. It stops at the first
// malformed or truncated sequence, returning what was appended so far and an
// error carrying the source offset.
func Append[S, D utfx.Unit](dst []D, src []S) ([]D, error) {
	dec, enc := codec.For[S](), codec.For[D]()
	for pos := 0; pos < len(src); {
		c, n := dec.Decode(src[pos:])
		if c.IsSentinel() {
			return dst, sequenceError(errors.PhaseConvert, dec.Form(), c, pos, src[pos:pos+n])
		}
		dst = enc.Append(dst, c)
		pos += n
	}
	return dst, nil
}

// AppendSeq is Append for a single-pass source.
func AppendSeq[S, D utfx.Unit](dst []D, src iter.Seq[S]) ([]D, error) {
	s := NewStream[S, D](src)
	for u := range s.All() {
		dst = append(dst, u)
	}
	return dst, s.Err()
}

// Convert transcodes src into a new slice of D units.
func Convert[D, S utfx.Unit](src []S) ([]D, error) {
	return Append(make([]D, 0, len(src)), src)
}

// ToUTF8 transcodes src to UTF-8.
func ToUTF8[S utfx.Unit](src []S) ([]byte, error) { return Convert[byte](src) }

// ToUTF16 transcodes src to UTF-16.
func ToUTF16[S utfx.Unit](src []S) ([]uint16, error) { return Convert[uint16](src) }

// ToUTF32 transcodes src to UTF-32.
func ToUTF32[S utfx.Unit](src []S) ([]uint32, error) { return Convert[uint32](src) }

// ToWide transcodes src to the platform wide form.
func ToWide[S utfx.Unit](src []S) ([]utfx.Wide, error) { return Convert[utfx.Wide](src) }

// ToString transcodes src to a Go string.
func ToString[S utfx.Unit](src []S) (string, error) {
	b, err := ToUTF8(src)
	return string(b), err
}

// Validate reports the first malformed or truncated sequence in src.
func Validate[S utfx.Unit](src []S) error {
	dec := codec.For[S]()
	for pos := 0; pos < len(src); {
		c, n := dec.Decode(src[pos:])
		if c.IsSentinel() {
			return sequenceError(errors.PhaseValidate, dec.Form(), c, pos, src[pos:pos+n])
		}
		pos += n
	}
	return nil
}

// Count returns the number of code points in src.
func Count[S utfx.Unit](src []S) (int, error) {
	dec := codec.For[S]()
	count := 0
	for pos := 0; pos < len(src); count++ {
		c, n := dec.Decode(src[pos:])
		if c.IsSentinel() {
			return count, sequenceError(errors.PhaseValidate, dec.Form(), c, pos, src[pos:pos+n])
		}
		pos += n
	}
	return count, nil
}

// CodePoints yields the offset and decoded value of every sequence in src.
// Malformed sequences are yielded as utfx.Illegal or utfx.Incomplete and
// decoding resumes after the units they consumed.
func CodePoints[S utfx.Unit](src []S) iter.Seq2[int, utfx.CodePoint] {
	return func(yield func(int, utfx.CodePoint) bool) {
		dec := codec.For[S]()
		for pos := 0; pos < len(src); {
			c, n := dec.Decode(src[pos:])
			if !yield(pos, c) {
				return
			}
			pos += n
		}
	}
}
