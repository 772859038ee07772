package canon

import (
	"context"
	"encoding/binary"
	"unsafe"

	"go.uber.org/zap"
	"golang.org/x/text/encoding/charmap"

	"github.com/wippyai/utfx/errors"
	"github.com/wippyai/utfx/transcoder"
)

// LiftString reads a string of the given tagged length from guest memory.
// Malformed data is an error; the caller traps.
func LiftString(ctx context.Context, opts Options, ptr, length uint32) (string, error) {
	if err := opts.check(errors.PhaseLift, false); err != nil {
		return "", err
	}

	switch opts.Encoding {
	case UTF8:
		return liftUTF8(opts, ptr, length)
	case UTF16:
		return liftUTF16(opts, ptr, length)
	default:
		if length&UTF16Tag != 0 {
			return liftUTF16(opts, ptr, length^UTF16Tag)
		}
		return liftLatin1(opts, ptr, length)
	}
}

func liftUTF8(opts Options, ptr, length uint32) (string, error) {
	if length > MaxStringByteLength {
		return "", errors.Overflow(errors.PhaseLift, length, "max string byte length")
	}
	data, err := opts.read(ptr, length, 1)
	if err != nil {
		return "", err
	}
	if err := transcoder.Validate(data); err != nil {
		return "", liftError(err, ptr)
	}
	return string(data), nil
}

func liftUTF16(opts Options, ptr, units uint32) (string, error) {
	if units > MaxStringByteLength/2 {
		return "", errors.Overflow(errors.PhaseLift, units, "max string byte length")
	}
	data, err := opts.read(ptr, 2*units, 2)
	if err != nil {
		return "", err
	}
	out, err := transcoder.Transcode(data, transcoder.UTF16LE, transcoder.UTF8)
	if err != nil {
		return "", liftError(err, ptr)
	}
	return string(out), nil
}

func liftLatin1(opts Options, ptr, length uint32) (string, error) {
	if length > MaxStringByteLength {
		return "", errors.Overflow(errors.PhaseLift, length, "max string byte length")
	}
	data, err := opts.read(ptr, length, 2)
	if err != nil {
		return "", err
	}
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return "", errors.Wrap(errors.PhaseLift, errors.KindIllegalSequence, err, "latin1 string")
	}
	return string(out), nil
}

// liftError re-tags a decoding error with the lift phase.
func liftError(err error, ptr uint32) error {
	b := errors.New(errors.PhaseLift, errors.KindIllegalSequence)
	if e, ok := err.(*errors.Error); ok {
		b = errors.New(errors.PhaseLift, e.Kind).Form(e.Form).Offset(e.Offset)
	}
	Logger().Debug("lift string failed", zap.Uint32("ptr", ptr), zap.Error(err))
	return b.Cause(err).
		Detail("string at ptr=%d", ptr).
		Build()
}

// LowerString copies s into guest memory allocated through realloc and
// returns its pointer and tagged length.
func LowerString(ctx context.Context, opts Options, s string) (ptr, length uint32, err error) {
	if err := opts.check(errors.PhaseLower, true); err != nil {
		return 0, 0, err
	}
	if uint64(len(s)) > uint64(MaxStringByteLength) {
		return 0, 0, errors.Overflow(errors.PhaseLower, len(s), "max string byte length")
	}

	src := unsafe.Slice(unsafe.StringData(s), len(s))
	if err := transcoder.Validate(src); err != nil {
		return 0, 0, errors.New(errors.PhaseLower, errors.KindIllegalSequence).
			Cause(err).
			Detail("string is not valid UTF-8").
			Build()
	}

	switch opts.Encoding {
	case UTF8:
		ptr, err = opts.store(ctx, src, 1)
		return ptr, uint32(len(src)), err
	case UTF16:
		return lowerUTF16(ctx, opts, src, 0)
	default:
		buf := getScratch()
		defer putScratch(buf)
		if latin1, ok := appendLatin1((*buf)[:0], src); ok {
			*buf = latin1
			ptr, err = opts.store(ctx, latin1, 2)
			return ptr, uint32(len(latin1)), err
		}
		return lowerUTF16(ctx, opts, src, UTF16Tag)
	}
}

func lowerUTF16(ctx context.Context, opts Options, src []byte, tag uint32) (uint32, uint32, error) {
	buf := getScratch()
	defer putScratch(buf)

	data := appendUTF16LE((*buf)[:0], src)
	*buf = data
	if uint64(len(data)) > uint64(MaxStringByteLength) {
		return 0, 0, errors.Overflow(errors.PhaseLower, len(data), "max string byte length")
	}

	ptr, err := opts.store(ctx, data, 2)
	if err != nil {
		return 0, 0, err
	}
	return ptr, uint32(len(data)/2) | tag, nil
}

// appendUTF16LE appends the little endian UTF-16 encoding of valid UTF-8 src.
func appendUTF16LE(dst, src []byte) []byte {
	for u := range transcoder.AsUTF16(src).All() {
		dst = binary.LittleEndian.AppendUint16(dst, u)
	}
	return dst
}

// appendLatin1 appends src as latin1 bytes, reporting false if some code
// point does not fit.
func appendLatin1(dst, src []byte) ([]byte, bool) {
	for u := range transcoder.AsUTF32(src).All() {
		if u > 0xFF {
			return dst, false
		}
		dst = append(dst, byte(u))
	}
	return dst, true
}
