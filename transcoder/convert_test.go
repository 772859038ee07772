package transcoder

import (
	"slices"
	"strings"
	"testing"
	"unicode/utf16"

	"github.com/wippyai/utfx"
	"github.com/wippyai/utfx/errors"
)

const sample = "aé€\U0001F60E \x00\uFFFF\U0010FFFF世界"

// forms returns s in all three encoding forms.
func forms(s string) ([]byte, []uint16, []uint32) {
	rs := []rune(s)
	u32 := make([]uint32, len(rs))
	for i, r := range rs {
		u32[i] = uint32(r)
	}
	return []byte(s), utf16.Encode(rs), u32
}

// checkConvert verifies that every conversion path from src yields want.
func checkConvert[S, D utfx.Unit](t *testing.T, src []S, want []D) {
	t.Helper()

	got, err := Convert[D](src)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if !slices.Equal(got, want) {
		t.Errorf("Convert = %x, want %x", got, want)
	}

	viewed, err := NewView[S, D](src).Collect()
	if err != nil {
		t.Fatalf("View.Collect: %v", err)
	}
	if !slices.Equal(viewed, want) {
		t.Errorf("View = %x, want %x", viewed, want)
	}

	streamed, err := NewStream[S, D](slices.Values(src)).Collect()
	if err != nil {
		t.Fatalf("Stream.Collect: %v", err)
	}
	if !slices.Equal(streamed, want) {
		t.Errorf("Stream = %x, want %x", streamed, want)
	}
}

func TestConvert_AllPairs(t *testing.T) {
	u8, u16, u32 := forms(sample)

	t.Run("utf8 to utf8", func(t *testing.T) { checkConvert(t, u8, u8) })
	t.Run("utf8 to utf16", func(t *testing.T) { checkConvert(t, u8, u16) })
	t.Run("utf8 to utf32", func(t *testing.T) { checkConvert(t, u8, u32) })
	t.Run("utf16 to utf8", func(t *testing.T) { checkConvert(t, u16, u8) })
	t.Run("utf16 to utf16", func(t *testing.T) { checkConvert(t, u16, u16) })
	t.Run("utf16 to utf32", func(t *testing.T) { checkConvert(t, u16, u32) })
	t.Run("utf32 to utf8", func(t *testing.T) { checkConvert(t, u32, u8) })
	t.Run("utf32 to utf16", func(t *testing.T) { checkConvert(t, u32, u16) })
	t.Run("utf32 to utf32", func(t *testing.T) { checkConvert(t, u32, u32) })
}

func TestConvert_Empty(t *testing.T) {
	got, err := ToUTF16([]byte(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %x, want empty", got)
	}
}

func TestConvert_NamedTargets(t *testing.T) {
	u8, u16, u32 := forms(sample)

	s, err := ToString(u16)
	if err != nil {
		t.Fatalf("ToString: %v", err)
	}
	if s != sample {
		t.Errorf("ToString = %q, want %q", s, sample)
	}

	b, err := ToUTF8(u32)
	if err != nil || !slices.Equal(b, u8) {
		t.Errorf("ToUTF8 = %x, %v", b, err)
	}

	w16, err := ToUTF16(u32)
	if err != nil || !slices.Equal(w16, u16) {
		t.Errorf("ToUTF16 = %x, %v", w16, err)
	}

	w32, err := ToUTF32(u8)
	if err != nil || !slices.Equal(w32, u32) {
		t.Errorf("ToUTF32 = %x, %v", w32, err)
	}

	wide, err := ToWide(u8)
	if err != nil {
		t.Fatalf("ToWide: %v", err)
	}
	back, err := ToString(wide)
	if err != nil || back != sample {
		t.Errorf("ToWide round trip = %q, %v", back, err)
	}
}

func TestAppend_KeepsPrefix(t *testing.T) {
	dst := []uint16{0xFEFF}
	got, err := Append(dst, []byte("hi"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []uint16{0xFEFF, 'h', 'i'}
	if !slices.Equal(got, want) {
		t.Errorf("got %x, want %x", got, want)
	}
}

func TestAppendSeq(t *testing.T) {
	got, err := AppendSeq([]byte("> "), slices.Values([]uint32{0x1F60E, '!'}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != "> \U0001F60E!" {
		t.Errorf("got %q", got)
	}

	_, err = AppendSeq([]byte(nil), slices.Values([]uint16{'a', 0xD800}))
	if err == nil {
		t.Fatal("expected error for dangling surrogate")
	}
}

func TestConvert_MalformedUTF8(t *testing.T) {
	tests := []struct {
		name    string
		src     []byte
		want    []uint16
		kind    errors.Kind
		offset  int
		content string
	}{
		{"bad lead", []byte{'a', 0xFF, 'b'}, []uint16{'a'}, errors.KindIllegalSequence, 1, "[ff]"},
		{"stray trail", []byte{0x80}, nil, errors.KindIllegalSequence, 0, "[80]"},
		{"bad trail", []byte{'a', 'b', 0xE2, 0x28, 0xA1}, []uint16{'a', 'b'}, errors.KindIllegalSequence, 2, "[e2 28]"},
		{"overlong", []byte{0xE0, 0x80, 0xAF}, nil, errors.KindIllegalSequence, 0, "illegal"},
		{"surrogate", []byte{0xED, 0xA0, 0x80}, nil, errors.KindIllegalSequence, 0, "illegal"},
		{"above max", []byte{0xF4, 0x90, 0x80, 0x80}, nil, errors.KindIllegalSequence, 0, "illegal"},
		{"truncated", []byte{'a', 0xF0, 0x9F, 0x98}, []uint16{'a'}, errors.KindIncompleteSequence, 1, "[f0 9f 98]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToUTF16(tt.src)
			if !slices.Equal(got, tt.want) {
				t.Errorf("output = %x, want %x", got, tt.want)
			}
			e, ok := err.(*errors.Error)
			if !ok {
				t.Fatalf("error = %v (%T), want *errors.Error", err, err)
			}
			if e.Kind != tt.kind {
				t.Errorf("Kind = %s, want %s", e.Kind, tt.kind)
			}
			if e.Phase != errors.PhaseConvert {
				t.Errorf("Phase = %s, want convert", e.Phase)
			}
			if e.Form != "UTF-8" {
				t.Errorf("Form = %q, want UTF-8", e.Form)
			}
			if e.Offset != tt.offset {
				t.Errorf("Offset = %d, want %d", e.Offset, tt.offset)
			}
			if !strings.Contains(e.Error(), tt.content) {
				t.Errorf("Error() = %q, missing %q", e.Error(), tt.content)
			}
		})
	}
}

func TestConvert_MalformedUTF16(t *testing.T) {
	tests := []struct {
		name   string
		src    []uint16
		kind   errors.Kind
		offset int
	}{
		{"lone low", []uint16{'a', 0xDC00}, errors.KindIllegalSequence, 1},
		{"high then bmp", []uint16{'a', 0xD800, 'b'}, errors.KindIllegalSequence, 1},
		{"high then high", []uint16{0xD800, 0xD800}, errors.KindIllegalSequence, 0},
		{"dangling high", []uint16{'a', 'b', 0xDBFF}, errors.KindIncompleteSequence, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ToUTF8(tt.src)
			e, ok := err.(*errors.Error)
			if !ok {
				t.Fatalf("error = %v, want *errors.Error", err)
			}
			if e.Kind != tt.kind || e.Offset != tt.offset || e.Form != "UTF-16" {
				t.Errorf("got %s at %d in %s, want %s at %d in UTF-16", e.Kind, e.Offset, e.Form, tt.kind, tt.offset)
			}
		})
	}
}

func TestConvert_MalformedUTF32(t *testing.T) {
	for _, v := range []uint32{0xD800, 0xDFFF, 0x110000, uint32(utfx.Illegal), uint32(utfx.Incomplete)} {
		_, err := ToUTF8([]uint32{'x', v})
		e, ok := err.(*errors.Error)
		if !ok {
			t.Fatalf("%#x: error = %v, want *errors.Error", v, err)
		}
		if e.Kind != errors.KindIllegalSequence || e.Offset != 1 {
			t.Errorf("%#x: got %s at %d", v, e.Kind, e.Offset)
		}
	}
}

func TestValidate(t *testing.T) {
	u8, u16, u32 := forms(sample)
	if err := Validate(u8); err != nil {
		t.Errorf("utf8: %v", err)
	}
	if err := Validate(u16); err != nil {
		t.Errorf("utf16: %v", err)
	}
	if err := Validate(u32); err != nil {
		t.Errorf("utf32: %v", err)
	}

	err := Validate([]byte("ok\xC3"))
	e, ok := err.(*errors.Error)
	if !ok {
		t.Fatalf("error = %v, want *errors.Error", err)
	}
	if e.Phase != errors.PhaseValidate || e.Kind != errors.KindIncompleteSequence || e.Offset != 2 {
		t.Errorf("got %v", e)
	}
}

func TestCount(t *testing.T) {
	n, err := Count([]byte("a€\U0001F60E"))
	if err != nil || n != 3 {
		t.Errorf("Count = %d, %v; want 3", n, err)
	}

	n, err = Count([]uint16{'a', 'b', 0xDC00})
	if err == nil {
		t.Fatal("expected error")
	}
	if n != 2 {
		t.Errorf("Count before error = %d, want 2", n)
	}
}

func TestCodePoints(t *testing.T) {
	type pair struct {
		off int
		c   utfx.CodePoint
	}
	var got []pair
	for off, c := range CodePoints([]byte{'a', 0xFF, 'b', 0xE2, 0x82}) {
		got = append(got, pair{off, c})
	}
	want := []pair{{0, 'a'}, {1, utfx.Illegal}, {2, 'b'}, {3, utfx.Incomplete}}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	count := 0
	for range CodePoints([]uint16{'a', 'b', 'c'}) {
		count++
		break
	}
	if count != 1 {
		t.Errorf("break not honoured, count = %d", count)
	}
}

func BenchmarkConvert_UTF8ToUTF16(b *testing.B) {
	src := []byte(strings.Repeat(sample, 64))
	b.SetBytes(int64(len(src)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ToUTF16(src); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkConvert_UTF16ToUTF8(b *testing.B) {
	_, src, _ := forms(strings.Repeat(sample, 64))
	b.SetBytes(int64(2 * len(src)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ToUTF8(src); err != nil {
			b.Fatal(err)
		}
	}
}
