// Package codec implements decoding and encoding for the three UTF forms.
//
// Each codec is a stateless value type parameterized by its unit type:
//
//	UTF8[U]   - 1 to 4 byte sequences
//	UTF16[U]  - single units and surrogate pairs
//	UTF32[U]  - one unit per code point
//
// For selects the codec matching the width of a unit type. Selection happens
// once, where a view or converter is built, never inside a decode loop.
//
// # Decoding
//
// Decode consumes one code point from the front of a slice and returns it
// together with the number of units examined. Malformed input returns
// utfx.Illegal, input ending mid-sequence returns utfx.Incomplete. The unit
// count always covers every unit looked at, including a bad trail unit, so a
// caller can resume decoding after the returned count.
//
//	c, n := codec.Bytes.Decode(src)
//	switch c {
//	case utfx.Illegal:
//	    // malformed
//	case utfx.Incomplete:
//	    // need more input
//	}
//	src = src[n:]
//
// DecodeValid skips validation and must only be given well-formed input.
//
// # Encoding
//
// Encode returns the minimal sequence in a Chars buffer, an inline array that
// never allocates. Invalid code points, sentinels included, encode to an
// empty buffer.
package codec
