// Package transcoder converts text between UTF-8, UTF-16 and UTF-32.
//
// The source and target forms are chosen by code unit type. Conversion is
// available in three shapes:
//
//	┌──────────────┬──────────────────────────────┬────────────────────┐
//	│ Shape        │ Entry points                 │ Source             │
//	├──────────────┼──────────────────────────────┼────────────────────┤
//	│ lazy, multi  │ NewView, AsUTF8 .. AsWide    │ []S                │
//	│ lazy, single │ NewStream, StreamUTF8 ..     │ iter.Seq[S]        │
//	│ eager        │ Append, Convert, ToUTF8 ..   │ []S or iter.Seq[S] │
//	│ bytes        │ NewTransformer, NewReader    │ io.Reader, []byte  │
//	└──────────────┴──────────────────────────────┴────────────────────┘
//
// # Views
//
// A View decodes one code point at a time and re-encodes it into a small
// inline buffer, so iterating never allocates:
//
//	v := transcoder.AsUTF16([]byte("h€llo"))
//	for it := v.Begin(); !it.Done(); it.Next() {
//	    fmt.Printf("%04X ", it.Value())
//	}
//
// Iterators are values. Copying one yields an independent cursor, and two
// iterators compare Equal when they denote the same position.
//
// # Malformed Input
//
// Decoding classifies malformed and truncated sequences as utfx.Illegal and
// utfx.Incomplete. Views, streams and conversions stop at the first such
// sequence and report an *errors.Error with the form and the source offset:
//
//	_, err := transcoder.ToUTF16([]byte{0x61, 0xFF})
//	// [convert] illegal_sequence in UTF-8 at unit 1: illegal sequence [ff]
//
// CodePoints exposes the raw classification instead, resuming after each
// malformed sequence.
//
// # Byte Streams
//
// Encoding pairs a form with a byte order. NewTransformer adapts a pair of
// encodings to golang.org/x/text/transform, so the usual readers, writers
// and chains apply:
//
//	r := transcoder.NewReader(f, transcoder.UTF16LE, transcoder.UTF8)
//
// # Thread Safety
//
// Views and iterators are values over read-only input and may be shared.
// Streams and transformers hold state and must not be used concurrently.
package transcoder
