// Package canon lifts and lowers Component Model strings and chars.
//
// Strings cross the canonical ABI as a (pointer, length) pair into guest
// linear memory. The string-encoding canon option selects the layout:
//
//	Encoding       Align  Length counts            Data
//	──────────────────────────────────────────────────────────────
//	utf8           1      bytes                    UTF-8
//	utf16          2      UTF-16 code units        UTF-16LE
//	latin1+utf16   2      bytes, or units|1<<31    Latin-1 or UTF-16LE
//
// # Lifting
//
// LiftString reads guest memory, checks alignment and bounds, and validates
// the data through the transcoder. Malformed data is reported as an
// *errors.Error in the lift phase, which a host should treat as a trap:
//
//	s, err := canon.LiftString(ctx, opts, ptr, length)
//
// # Lowering
//
// LowerString allocates with realloc(0, 0, align, size), writes the encoded
// bytes and returns the pair to hand back to the guest. For latin1+utf16 the
// compact form is used whenever every code point fits in one byte.
//
// # Chars
//
// LiftChar and LowerChar accept Unicode scalar values only. Surrogates and
// values above U+10FFFF are rejected.
//
// Lift and Lower dispatch on a WIT type, following aliases, for callers that
// work from component type information.
package canon
