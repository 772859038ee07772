package canon

import (
	"context"
	"fmt"

	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/wippyai/utfx/errors"
)

const (
	// UTF16Tag marks a latin1+utf16 string length as counting UTF-16 units.
	UTF16Tag uint32 = 1 << 31

	// MaxStringByteLength bounds the byte size of any string in guest memory.
	MaxStringByteLength uint32 = 1<<31 - 1
)

// Canon option bytes for the string-encoding immediate.
const (
	OptUTF8         byte = 0x00
	OptUTF16        byte = 0x01
	OptCompactUTF16 byte = 0x02
)

// StringEncoding represents the string encoding for canonical ABI
type StringEncoding byte

const (
	UTF8 StringEncoding = iota
	UTF16
	Latin1UTF16
)

func (e StringEncoding) String() string {
	switch e {
	case UTF8:
		return "utf8"
	case UTF16:
		return "utf16"
	case Latin1UTF16:
		return "latin1+utf16"
	default:
		return fmt.Sprintf("encoding(%d)", byte(e))
	}
}

// Alignment returns the required alignment of string data in memory.
func (e StringEncoding) Alignment() uint32 {
	if e == UTF8 {
		return 1
	}
	return 2
}

// EncodingFromOption maps a canon string-encoding option byte.
func EncodingFromOption(opt byte) (StringEncoding, error) {
	switch opt {
	case OptUTF8:
		return UTF8, nil
	case OptUTF16:
		return UTF16, nil
	case OptCompactUTF16:
		return Latin1UTF16, nil
	default:
		return 0, errors.New(errors.PhaseLift, errors.KindUnsupported).
			Value(opt).
			Cause(ErrUnsupportedEncoding).
			Detail("string encoding option 0x%02x", opt).
			Build()
	}
}

// Options holds the canonical options used for string operations.
type Options struct {
	Memory   api.Memory
	Realloc  api.Function
	Encoding StringEncoding
}

func (o Options) check(phase errors.Phase, alloc bool) error {
	var err *errors.Error
	switch {
	case o.Encoding > Latin1UTF16:
		err = errors.Unsupported(phase, o.Encoding.String())
		err.Value = o.Encoding
		err.Cause = ErrUnsupportedEncoding
	case o.Memory == nil:
		err = errors.NilPointer(phase, "memory")
		err.Cause = ErrNilMemory
	case alloc && o.Realloc == nil:
		err = errors.NilPointer(phase, "realloc")
		err.Cause = ErrNilRealloc
	default:
		return nil
	}
	return err
}

// read returns n bytes at ptr after checking alignment and bounds.
func (o Options) read(ptr, n, align uint32) ([]byte, error) {
	if ptr%align != 0 {
		return nil, errors.Misaligned(errors.PhaseLift, ptr, align)
	}
	size := o.Memory.Size()
	if uint64(ptr)+uint64(n) > uint64(size) {
		return nil, errors.New(errors.PhaseLift, errors.KindOutOfBounds).
			Cause(ErrMemoryRead).
			Detail("ptr=%d len=%d exceeds memory size %d", ptr, n, size).
			Build()
	}
	data, ok := o.Memory.Read(ptr, n)
	if !ok {
		return nil, errors.New(errors.PhaseLift, errors.KindOutOfBounds).
			Cause(ErrMemoryRead).
			Detail("ptr=%d len=%d", ptr, n).
			Build()
	}
	return data, nil
}

// store allocates len(data) bytes through realloc and copies data there.
func (o Options) store(ctx context.Context, data []byte, align uint32) (uint32, error) {
	size := uint32(len(data))
	results, err := o.Realloc.Call(ctx, 0, 0, uint64(align), uint64(size))
	if err != nil {
		return 0, errors.Wrap(errors.PhaseLower, errors.KindAllocation, err, "realloc trapped")
	}
	if len(results) == 0 {
		return 0, errors.AllocationFailed(errors.PhaseLower, size, align)
	}

	ptr := uint32(results[0])
	if ptr%align != 0 {
		return 0, errors.Misaligned(errors.PhaseLower, ptr, align)
	}
	if uint64(ptr)+uint64(size) > uint64(o.Memory.Size()) {
		return 0, errors.OutOfBounds(errors.PhaseLower, uint64(ptr), uint64(size), uint64(o.Memory.Size()))
	}
	if !o.Memory.Write(ptr, data) {
		return 0, errors.New(errors.PhaseLower, errors.KindOutOfBounds).
			Cause(ErrMemoryWrite).
			Detail("ptr=%d len=%d", ptr, size).
			Build()
	}

	Logger().Debug("stored string data",
		zap.Uint32("ptr", ptr),
		zap.Uint32("size", size),
		zap.Uint32("align", align))
	return ptr, nil
}
