package transcoder

import (
	"bufio"
	"encoding/binary"
	"io"
	"iter"

	"github.com/wippyai/utfx"
	"github.com/wippyai/utfx/codec"
	"github.com/wippyai/utfx/errors"
)

// Stream transcodes a single-pass source of S units into D units. It pulls
// from the source as it is ranged, holding at most MaxWidth source units
// of lookahead. A Stream is not safe for concurrent use.
type Stream[S, D utfx.Unit] struct {
	src  iter.Seq[S]
	dec  codec.Codec[S]
	enc  codec.Codec[D]
	err  error
	pos  int
	used bool
}

// NewStream returns a stream over src transcoded to the form selected by D.
func NewStream[S, D utfx.Unit](src iter.Seq[S]) *Stream[S, D] {
	return &Stream[S, D]{src: src, dec: codec.For[S](), enc: codec.For[D]()}
}

// StreamUTF8 streams src as UTF-8 bytes.
func StreamUTF8[S utfx.Unit](src iter.Seq[S]) *Stream[S, uint8] { return NewStream[S, uint8](src) }

// StreamUTF16 streams src as UTF-16 units.
func StreamUTF16[S utfx.Unit](src iter.Seq[S]) *Stream[S, uint16] { return NewStream[S, uint16](src) }

// StreamUTF32 streams src as code points.
func StreamUTF32[S utfx.Unit](src iter.Seq[S]) *Stream[S, uint32] { return NewStream[S, uint32](src) }

// All returns the output units. The sequence can be ranged once; later
// ranges yield nothing. After ranging, Err reports a malformed or truncated
// source.
func (s *Stream[S, D]) All() iter.Seq[D] {
	return func(yield func(D) bool) {
		if s.used {
			return
		}
		s.used = true

		var pend [4]S
		width := s.dec.MaxWidth()
		k := 0

		// emit decodes from pend while it holds a full lookahead window,
		// or until it is empty when final is set.
		emit := func(final bool) bool {
			for k > 0 && (final || k == width) {
				c, n := s.dec.Decode(pend[:k])
				if c.IsSentinel() {
					s.err = sequenceError(errors.PhaseConvert, s.dec.Form(), c, s.pos, pend[:n])
					return false
				}
				s.pos += n
				k = copy(pend[:], pend[n:k])
				chars := s.enc.Encode(c)
				for i := range chars.Len() {
					if !yield(chars.At(i)) {
						return false
					}
				}
			}
			return true
		}

		for u := range s.src {
			pend[k] = u
			k++
			if k == width && !emit(false) {
				return
			}
		}
		emit(true)
	}
}

// Err returns the error that ended the stream early, or nil.
func (s *Stream[S, D]) Err() error { return s.err }

// Pos returns the number of source units consumed so far.
func (s *Stream[S, D]) Pos() int { return s.pos }

// Collect ranges the stream into a new slice.
func (s *Stream[S, D]) Collect() ([]D, error) {
	var out []D
	for u := range s.All() {
		out = append(out, u)
	}
	return out, s.err
}

// Units reads code units of type U from r in the given byte order. order is
// ignored for 8-bit units and may be nil. The sequence is single-pass; the
// returned function reports the read error that ended it, with a trailing
// partial unit reported as io.ErrUnexpectedEOF.
func Units[U utfx.Unit](r io.Reader, order binary.ByteOrder) (iter.Seq[U], func() error) {
	br := bufio.NewReader(r)
	size := utfx.FormOf[U]().UnitSize()
	var err error
	seq := func(yield func(U) bool) {
		var buf [4]byte
		for {
			if _, rerr := io.ReadFull(br, buf[:size]); rerr != nil {
				if rerr != io.EOF {
					err = rerr
				}
				return
			}
			if !yield(unpack[U](buf[:size], order)) {
				return
			}
		}
	}
	return seq, func() error { return err }
}

// unpack reads one unit of type U from the front of p.
func unpack[U utfx.Unit](p []byte, order binary.ByteOrder) U {
	switch utfx.FormOf[U]() {
	case utfx.UTF8:
		return U(p[0])
	case utfx.UTF16:
		return U(order.Uint16(p))
	default:
		return U(order.Uint32(p))
	}
}

// pack writes u to the front of p.
func pack[U utfx.Unit](p []byte, u U, order binary.ByteOrder) {
	switch utfx.FormOf[U]() {
	case utfx.UTF8:
		p[0] = byte(u)
	case utfx.UTF16:
		order.PutUint16(p, uint16(u))
	default:
		order.PutUint32(p, uint32(u))
	}
}
