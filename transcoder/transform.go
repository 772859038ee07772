package transcoder

import (
	"io"

	"go.uber.org/zap"
	"golang.org/x/text/transform"

	"github.com/wippyai/utfx"
	"github.com/wippyai/utfx/codec"
	"github.com/wippyai/utfx/errors"
)

// NewTransformer returns a transformer that transcodes bytes in encoding
// from into bytes in encoding to. Error offsets count source code units
// since the last Reset. The transformer is not safe for concurrent use.
func NewTransformer(from, to Encoding) transform.Transformer {
	switch from.Form {
	case utfx.UTF8:
		return newTransformer[uint8](from, to)
	case utfx.UTF16:
		return newTransformer[uint16](from, to)
	default:
		return newTransformer[uint32](from, to)
	}
}

func newTransformer[S utfx.Unit](from, to Encoding) transform.Transformer {
	switch to.Form {
	case utfx.UTF8:
		return newTypedTransformer[S, uint8](from, to)
	case utfx.UTF16:
		return newTypedTransformer[S, uint16](from, to)
	default:
		return newTypedTransformer[S, uint32](from, to)
	}
}

func newTypedTransformer[S, D utfx.Unit](from, to Encoding) *transformer[S, D] {
	return &transformer[S, D]{from: from, to: to, dec: codec.For[S](), enc: codec.For[D]()}
}

// NewReader wraps r so that reads return its content transcoded.
func NewReader(r io.Reader, from, to Encoding) io.Reader {
	return transform.NewReader(r, NewTransformer(from, to))
}

// NewWriter wraps w so that writes are transcoded before reaching it.
// Close flushes and reports a truncated tail.
func NewWriter(w io.Writer, from, to Encoding) io.WriteCloser {
	return transform.NewWriter(w, NewTransformer(from, to))
}

// Transcode converts a byte buffer between encodings.
func Transcode(src []byte, from, to Encoding) ([]byte, error) {
	out, _, err := transform.Bytes(NewTransformer(from, to), src)
	return out, err
}

type transformer[S, D utfx.Unit] struct {
	dec  codec.Codec[S]
	enc  codec.Codec[D]
	from Encoding
	to   Encoding
	pos  int
}

func (t *transformer[S, D]) Reset() { t.pos = 0 }

func (t *transformer[S, D]) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	sw, dw := t.from.UnitSize(), t.to.UnitSize()
	width := t.dec.MaxWidth()
	var units [4]S

	for nSrc < len(src) {
		k := 0
		for p := nSrc; k < width && len(src)-p >= sw; p += sw {
			units[k] = unpack[S](src[p:], t.from.Order)
			k++
		}
		if k == 0 {
			if !atEOF {
				return nDst, nSrc, transform.ErrShortSrc
			}
			return nDst, nSrc, t.fail(utfx.Incomplete, nil, src[nSrc:])
		}

		c, n := t.dec.Decode(units[:k])
		switch c {
		case utfx.Incomplete:
			if !atEOF {
				return nDst, nSrc, transform.ErrShortSrc
			}
			return nDst, nSrc, t.fail(c, units[:n], src[nSrc+n*sw:])
		case utfx.Illegal:
			return nDst, nSrc, t.fail(c, units[:n], nil)
		}

		chars := t.enc.Encode(c)
		if len(dst)-nDst < chars.Len()*dw {
			return nDst, nSrc, transform.ErrShortDst
		}
		for i := range chars.Len() {
			pack(dst[nDst:], chars.At(i), t.to.Order)
			nDst += dw
		}
		nSrc += n * sw
		t.pos += n
	}
	return nDst, nSrc, nil
}

// fail builds the error for a sentinel. partial holds trailing bytes that do
// not form a whole unit.
func (t *transformer[S, D]) fail(c utfx.CodePoint, units []S, partial []byte) error {
	err := sequenceError(errors.PhaseTransform, t.from.Form, c, t.pos, units)
	if len(partial) > 0 {
		err.Detail += ", trailing partial unit"
	}
	Logger().Debug("transform failed",
		zap.Stringer("from", t.from),
		zap.Stringer("to", t.to),
		zap.Int("offset", t.pos),
		zap.Error(err))
	return err
}
