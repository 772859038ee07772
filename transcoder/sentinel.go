package transcoder

import (
	"github.com/wippyai/utfx"
	"github.com/wippyai/utfx/errors"
)

// sequenceError turns a decode sentinel into a structured error. offset is
// the position of units within the whole source.
func sequenceError[U utfx.Unit](phase errors.Phase, form utfx.Form, c utfx.CodePoint, offset int, units []U) *errors.Error {
	wide := make([]uint32, len(units))
	for i, u := range units {
		wide[i] = uint32(u)
	}
	if c == utfx.Incomplete {
		return errors.IncompleteSequence(phase, form.String(), offset, wide)
	}
	return errors.IllegalSequence(phase, form.String(), offset, wide)
}
