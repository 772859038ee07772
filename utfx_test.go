package utfx

import (
	"runtime"
	"testing"
)

func TestIsValid(t *testing.T) {
	tests := []struct {
		v    uint32
		want bool
	}{
		{0, true},
		{0x41, true},
		{0xD7FF, true},
		{0xD800, false},
		{0xDBFF, false},
		{0xDC00, false},
		{0xDFFF, false},
		{0xE000, true},
		{0xFFFF, true},
		{0x10FFFF, true},
		{0x110000, false},
		{uint32(Illegal), false},
		{uint32(Incomplete), false},
	}
	for _, tt := range tests {
		if got := IsValid(tt.v); got != tt.want {
			t.Errorf("IsValid(%#x) = %v, want %v", tt.v, got, tt.want)
		}
		if got := CodePoint(tt.v).IsValid(); got != tt.want {
			t.Errorf("CodePoint(%#x).IsValid() = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestSurrogateClasses(t *testing.T) {
	if !IsHighSurrogate(0xD800) || !IsHighSurrogate(0xDBFF) || IsHighSurrogate(0xDC00) {
		t.Error("high surrogate range is [0xD800, 0xDBFF]")
	}
	if !IsLowSurrogate(0xDC00) || !IsLowSurrogate(0xDFFF) || IsLowSurrogate(0xDBFF) {
		t.Error("low surrogate range is [0xDC00, 0xDFFF]")
	}
	if IsSurrogate(0xD7FF) || IsSurrogate(0xE000) {
		t.Error("surrogate range is [0xD800, 0xDFFF]")
	}
}

func TestSentinels(t *testing.T) {
	if Illegal == Incomplete {
		t.Fatal("sentinels must differ")
	}
	for _, s := range []CodePoint{Illegal, Incomplete} {
		if s <= MaxCodePoint {
			t.Errorf("%v lies inside the code space", s)
		}
		if !s.IsSentinel() {
			t.Errorf("%v.IsSentinel() = false", s)
		}
	}
	if CodePoint(0x10FFFF).IsSentinel() {
		t.Error("max code point is not a sentinel")
	}
}

func TestCodePoint_String(t *testing.T) {
	tests := []struct {
		c    CodePoint
		want string
	}{
		{0x41, "U+0041"},
		{0x1F60E, "U+1F60E"},
		{Illegal, "ILLEGAL"},
		{Incomplete, "INCOMPLETE"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestFormOf(t *testing.T) {
	if FormOf[uint8]() != UTF8 || FormOf[uint16]() != UTF16 || FormOf[uint32]() != UTF32 {
		t.Error("FormOf must follow the unit width")
	}

	want := UTF32
	if runtime.GOOS == "windows" {
		want = UTF16
	}
	if got := FormOf[Wide](); got != want {
		t.Errorf("FormOf[Wide]() = %v, want %v", got, want)
	}

	tests := []struct {
		f        Form
		name     string
		size     int
		maxWidth int
	}{
		{UTF8, "UTF-8", 1, 4},
		{UTF16, "UTF-16", 2, 2},
		{UTF32, "UTF-32", 4, 1},
	}
	for _, tt := range tests {
		if tt.f.String() != tt.name || tt.f.UnitSize() != tt.size || tt.f.MaxWidth() != tt.maxWidth {
			t.Errorf("%v: size %d, max width %d", tt.f, tt.f.UnitSize(), tt.f.MaxWidth())
		}
	}
	if Form(9).String() != "unknown" {
		t.Error("unknown form name")
	}
}
