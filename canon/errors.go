package canon

import "errors"

var (
	// ErrNilMemory is returned when memory operations are attempted without memory
	ErrNilMemory = errors.New("nil memory")

	// ErrNilRealloc is returned when allocation is needed but realloc is nil
	ErrNilRealloc = errors.New("nil realloc function")

	// ErrMemoryRead is returned when memory read fails
	ErrMemoryRead = errors.New("memory read failed")

	// ErrMemoryWrite is returned when memory write fails
	ErrMemoryWrite = errors.New("memory write failed")

	// ErrUnsupportedEncoding is returned for unknown string encodings
	ErrUnsupportedEncoding = errors.New("unsupported string encoding")
)
