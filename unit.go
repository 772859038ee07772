package utfx

import "unsafe"

// Unit is a code unit of one of the UTF encoding forms.
type Unit interface {
	~uint8 | ~uint16 | ~uint32
}

// Form identifies a UTF encoding form by its code unit width.
type Form uint8

const (
	UTF8 Form = iota
	UTF16
	UTF32
)

func (f Form) String() string {
	switch f {
	case UTF8:
		return "UTF-8"
	case UTF16:
		return "UTF-16"
	case UTF32:
		return "UTF-32"
	default:
		return "unknown"
	}
}

// UnitSize returns the size of one code unit in bytes.
func (f Form) UnitSize() int {
	switch f {
	case UTF8:
		return 1
	case UTF16:
		return 2
	default:
		return 4
	}
}

// MaxWidth returns the maximum number of code units per code point.
func (f Form) MaxWidth() int {
	switch f {
	case UTF8:
		return 4
	case UTF16:
		return 2
	default:
		return 1
	}
}

// FormOf returns the encoding form selected by the width of U.
func FormOf[U Unit]() Form {
	var zero U
	switch unsafe.Sizeof(zero) {
	case 1:
		return UTF8
	case 2:
		return UTF16
	default:
		return UTF32
	}
}
