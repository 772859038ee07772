package transcoder

import (
	"iter"
	"unsafe"

	"github.com/wippyai/utfx"
	"github.com/wippyai/utfx/codec"
	"github.com/wippyai/utfx/errors"
)

// View presents a slice of S units as a lazily transcoded sequence of D
// units. It does not own or copy the source; the source must outlive the
// view and every iterator obtained from it.
type View[S, D utfx.Unit] struct {
	src []S
	dec codec.Codec[S]
	enc codec.Codec[D]
}

// NewView returns a view of src transcoded to the form selected by D.
func NewView[S, D utfx.Unit](src []S) View[S, D] {
	return View[S, D]{src: src, dec: codec.For[S](), enc: codec.For[D]()}
}

// AsUTF8 views src as UTF-8 bytes.
func AsUTF8[S utfx.Unit](src []S) View[S, uint8] { return NewView[S, uint8](src) }

// AsUTF16 views src as UTF-16 units.
func AsUTF16[S utfx.Unit](src []S) View[S, uint16] { return NewView[S, uint16](src) }

// AsUTF32 views src as code points.
func AsUTF32[S utfx.Unit](src []S) View[S, uint32] { return NewView[S, uint32](src) }

// AsWide views src in the platform wide form.
func AsWide[S utfx.Unit](src []S) View[S, utfx.Wide] { return NewView[S, utfx.Wide](src) }

// Source returns the underlying source slice.
func (v View[S, D]) Source() []S { return v.src }

// Begin returns an iterator at the first output unit. For an empty source
// it equals End.
func (v View[S, D]) Begin() Iterator[S, D] {
	it := Iterator[S, D]{rest: v.src, size: len(v.src), dec: v.dec, enc: v.enc}
	if len(it.rest) > 0 {
		it.fill()
	}
	return it
}

// End returns the past-the-end iterator.
func (v View[S, D]) End() Iterator[S, D] {
	return Iterator[S, D]{rest: v.src[len(v.src):], size: len(v.src), dec: v.dec, enc: v.enc}
}

// All returns the output units. The sequence may be ranged any number of
// times; each range starts from Begin. Ranging stops silently at the first
// malformed sequence, use Collect or AppendTo to observe the error.
func (v View[S, D]) All() iter.Seq[D] {
	return func(yield func(D) bool) {
		for it := v.Begin(); !it.Done(); it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// AppendTo materializes the view onto dst. On malformed input it returns the
// units produced before the offending sequence and the error.
func (v View[S, D]) AppendTo(dst []D) ([]D, error) {
	it := v.Begin()
	for ; !it.Done(); it.Next() {
		dst = append(dst, it.Value())
	}
	return dst, it.Err()
}

// Collect materializes the view into a new slice.
func (v View[S, D]) Collect() ([]D, error) {
	return v.AppendTo(make([]D, 0, len(v.src)))
}

// Iterator is a cursor into a View. Iterators are values: a copy advances
// independently of the original.
type Iterator[S, D utfx.Unit] struct {
	dec   codec.Codec[S]
	enc   codec.Codec[D]
	err   error
	rest  []S
	size  int
	chars codec.Chars[D]
	idx   uint8
}

// fill decodes the next code point from rest into the buffer. A sentinel
// moves the iterator to the end state and records the error.
func (it *Iterator[S, D]) fill() {
	c, n := it.dec.Decode(it.rest)
	it.idx = 0
	if c.IsSentinel() {
		it.err = sequenceError(errors.PhaseConvert, it.dec.Form(), c, it.Pos(), it.rest[:n])
		it.rest = it.rest[len(it.rest):]
		it.chars = codec.Chars[D]{}
		return
	}
	it.chars = it.enc.Encode(c)
	it.rest = it.rest[n:]
}

// Value returns the current output unit. It panics at the end.
func (it Iterator[S, D]) Value() D {
	return it.chars.At(int(it.idx))
}

// Next advances to the following output unit. It is a no-op at the end.
func (it *Iterator[S, D]) Next() {
	if it.Done() {
		return
	}
	it.idx++
	if int(it.idx) == it.chars.Len() && len(it.rest) > 0 {
		it.fill()
	}
}

// Done reports whether the iterator is at the end.
func (it Iterator[S, D]) Done() bool {
	return len(it.rest) == 0 && int(it.idx) >= it.chars.Len()
}

// Equal reports whether both iterators denote the same position.
func (it Iterator[S, D]) Equal(o Iterator[S, D]) bool {
	if it.Done() && o.Done() {
		return true
	}
	return unsafe.SliceData(it.rest) == unsafe.SliceData(o.rest) &&
		len(it.rest) == len(o.rest) &&
		it.idx == o.idx &&
		it.chars.Equal(o.chars)
}

// Pos returns the offset in source units of the first undecoded unit.
func (it Iterator[S, D]) Pos() int {
	return it.size - len(it.rest)
}

// Err returns the error that ended iteration early, or nil.
func (it Iterator[S, D]) Err() error {
	return it.err
}
