// Package errors provides structured error types for the utfx library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: encoding form, unit offset, field path and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindIllegalSequence).
//		Form("UTF-16").
//		Offset(12).
//		Detail("unpaired high surrogate").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.IllegalSequence(errors.PhaseConvert, "UTF-8", 3, []uint32{0xc0, 0x81})
//	err := errors.OutOfBounds(errors.PhaseLift, ptr, length, memSize)
//
// All errors implement the standard error interface and support errors.Is/As.
// Is matches on Phase and Kind:
//
//	target := &errors.Error{Phase: errors.PhaseConvert, Kind: errors.KindIncompleteSequence}
//	if errors.Is(err, target) { ... }
package errors
