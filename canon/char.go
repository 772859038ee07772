package canon

import (
	"github.com/wippyai/utfx"
	"github.com/wippyai/utfx/errors"
)

// LiftChar converts a core i32 into a char, rejecting surrogates and values
// above the Unicode range.
func LiftChar(v uint32) (rune, error) {
	if !utfx.IsValid(v) {
		return 0, errors.InvalidCodePoint(errors.PhaseLift, v)
	}
	return rune(v), nil
}

// LowerChar converts a char into its core i32 representation.
func LowerChar(r rune) (uint32, error) {
	if r < 0 || !utfx.IsValid(uint32(r)) {
		return 0, errors.InvalidCodePoint(errors.PhaseLower, uint32(r))
	}
	return uint32(r), nil
}
