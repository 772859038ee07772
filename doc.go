// Package utfx provides a Go implementation of Unicode transcoding between the
// UTF-8, UTF-16 and UTF-32 encoding forms.
//
// The library converts sequences of code units in one form into the
// equivalent sequence in another, either lazily through views or eagerly into
// owned slices. Decoding validates input and reports malformed or truncated
// sequences; encoding always produces the minimal sequence for the target form.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	utfx/                Root package with code points, sentinels and unit types
//	├── codec/           Per-form decode and encode (UTF-8, UTF-16, UTF-32)
//	├── transcoder/      Lazy views, streams, eager conversion, x/text transformer
//	├── canon/           Component Model canonical ABI string and char lifting
//	├── errors/          Structured error types for debugging
//	└── cmd/utfx/        Command line converter and interactive inspector
//
// # Quick Start
//
// Convert eagerly:
//
//	units, err := transcoder.ToUTF16([]byte("héllo"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Or walk a lazy view without materializing the output:
//
//	v := transcoder.AsUTF32([]uint16{0xD83D, 0xDE0E})
//	for u := range v.All() {
//	    fmt.Printf("%#x\n", u) // 0x1f60e
//	}
//
// # Error Channel
//
// Decoding never fails with an error value. A decoder returns either a valid
// code point or one of two sentinels, [Illegal] or [Incomplete], which lie
// outside the Unicode code space and can be compared directly. Views and
// converters turn sentinels into structured errors from the errors package.
//
// # Unit Width
//
// The codec is chosen by the width of the unit type: 1-byte units are UTF-8,
// 2-byte units UTF-16 and 4-byte units UTF-32. [Wide] is the platform wide
// unit (UTF-16 on Windows, UTF-32 elsewhere), fixed at compile time.
//
// # Thread Safety
//
// Codecs and views are stateless values and safe for concurrent use.
// Iterators, streams and transformers carry state and are NOT thread-safe.
package utfx
