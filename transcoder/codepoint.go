package transcoder

import (
	"github.com/wippyai/utfx"
	"github.com/wippyai/utfx/codec"
	"github.com/wippyai/utfx/errors"
)

// DecodeCodePoint decodes the code point at the front of src and returns it
// with the number of units it occupies. A malformed or truncated sequence is
// reported in the decode phase at offset 0.
func DecodeCodePoint[S utfx.Unit](src []S) (utfx.CodePoint, int, error) {
	dec := codec.For[S]()
	c, n := dec.Decode(src)
	if c.IsSentinel() {
		return c, n, sequenceError(errors.PhaseDecode, dec.Form(), c, 0, src[:n])
	}
	return c, n, nil
}

// AppendCodePoint appends the encoding of c to dst. Surrogates, sentinels and
// values above U+10FFFF are rejected in the encode phase.
func AppendCodePoint[D utfx.Unit](dst []D, c utfx.CodePoint) ([]D, error) {
	if !c.IsValid() {
		return dst, errors.InvalidCodePoint(errors.PhaseEncode, uint32(c))
	}
	return codec.For[D]().Append(dst, c), nil
}
