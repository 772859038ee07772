package codec

import (
	"github.com/wippyai/utfx"
)

// Codec decodes and encodes one UTF form with units of type U.
type Codec[U utfx.Unit] interface {
	// Form returns the encoding form handled by the codec.
	Form() utfx.Form

	// MaxWidth returns the maximum number of units per code point.
	MaxWidth() int

	// Width returns the number of units Encode produces for c.
	Width(c utfx.CodePoint) int

	// TrailLength returns how many trail units follow u when u leads a
	// sequence, or -1 if u can never lead one.
	TrailLength(u U) int

	IsLead(u U) bool
	IsTrail(u U) bool

	// Decode reads one code point from the front of src.
	Decode(src []U) (utfx.CodePoint, int)

	// DecodeValid reads one code point from well-formed input.
	DecodeValid(src []U) (utfx.CodePoint, int)

	// Encode returns the minimal encoding of c, empty if c is invalid.
	Encode(c utfx.CodePoint) Chars[U]

	// Append appends the encoding of c to dst.
	Append(dst []U, c utfx.CodePoint) []U
}

var (
	_ Codec[uint8]  = UTF8[uint8]{}
	_ Codec[uint16] = UTF16[uint16]{}
	_ Codec[uint32] = UTF32[uint32]{}
)

// Codecs for the canonical unit types.
var (
	Bytes  Codec[uint8]  = UTF8[uint8]{}
	Words  Codec[uint16] = UTF16[uint16]{}
	Dwords Codec[uint32] = UTF32[uint32]{}
)

// For returns the codec selected by the width of U.
func For[U utfx.Unit]() Codec[U] {
	switch utfx.FormOf[U]() {
	case utfx.UTF8:
		return UTF8[U]{}
	case utfx.UTF16:
		return UTF16[U]{}
	default:
		return UTF32[U]{}
	}
}
