package transcoder

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/wippyai/utfx"
	"github.com/wippyai/utfx/errors"
)

// Encoding is a Unicode form serialized to bytes in a given byte order.
type Encoding struct {
	Order binary.ByteOrder // nil for UTF-8
	Form  utfx.Form
}

// Byte-level encodings.
var (
	UTF8    = Encoding{Form: utfx.UTF8}
	UTF16LE = Encoding{Form: utfx.UTF16, Order: binary.LittleEndian}
	UTF16BE = Encoding{Form: utfx.UTF16, Order: binary.BigEndian}
	UTF32LE = Encoding{Form: utfx.UTF32, Order: binary.LittleEndian}
	UTF32BE = Encoding{Form: utfx.UTF32, Order: binary.BigEndian}
)

var encodings = map[string]Encoding{
	"utf-8":    UTF8,
	"utf8":     UTF8,
	"utf-16":   UTF16LE,
	"utf-16le": UTF16LE,
	"utf-16be": UTF16BE,
	"utf-32":   UTF32LE,
	"utf-32le": UTF32LE,
	"utf-32be": UTF32BE,
}

// ParseEncoding resolves an encoding name. Names are case insensitive;
// "utf-16" and "utf-32" without a suffix mean little endian.
func ParseEncoding(name string) (Encoding, error) {
	e, ok := encodings[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Encoding{}, errors.InvalidInput(errors.PhaseTransform, fmt.Sprintf("unknown encoding %q", name))
	}
	return e, nil
}

func (e Encoding) String() string {
	switch e.Form {
	case utfx.UTF8:
		return "utf-8"
	case utfx.UTF16, utfx.UTF32:
		suffix := "le"
		if e.Order == binary.BigEndian {
			suffix = "be"
		}
		return strings.ToLower(e.Form.String()) + suffix
	default:
		return "unknown"
	}
}

// UnitSize returns the number of bytes per code unit.
func (e Encoding) UnitSize() int { return e.Form.UnitSize() }
