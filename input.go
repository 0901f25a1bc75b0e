package wary

import (
	"fmt"
	"unicode/utf8"

	"github.com/dhamidi/wary/scan"
)

// Input is an immutable, zero-copy view over caller-owned bytes. Every
// operation that produces a sub-Input returns a contiguous subset of
// the original bytes; nothing ever mutates or copies the underlying
// data. An Input remembers its offset within the buffer it was cut
// from, so spans reported by sub-Inputs stay relative to the original
// input handed to the top-level parse.
//
// A text-flavored Input additionally guarantees its bytes are valid
// UTF-8, and every sub-Input cut from it is independently valid UTF-8.
type Input struct {
	data []byte
	base int
	text bool
}

// Bytes wraps raw bytes in a byte-flavored Input. The caller must not
// mutate b while the Input or anything derived from it is in use.
func Bytes(b []byte) Input {
	return Input{data: b}
}

// TextBytes wraps b in a text-flavored Input after validating that it
// is well-formed UTF-8. The returned error is fatal: appending bytes
// cannot repair an invalid sequence that is already present.
func TextBytes(b []byte) (Input, error) {
	if i := firstInvalidUTF8(b); i >= 0 {
		end := min(i+1, len(b))
		return Input{}, NewInvalid(Span{Start: i, End: end}, "invalid utf-8 sequence")
	}
	return Input{data: b, text: true}, nil
}

// MustText wraps a string literal in a text-flavored Input, panicking
// if the string is not valid UTF-8. Intended for constants and tests;
// use TextBytes for untrusted data.
func MustText(s string) Input {
	in, err := TextBytes([]byte(s))
	if err != nil {
		panic(fmt.Sprintf("wary.MustText: %v", err))
	}
	return in
}

// Len returns the length of the view in bytes.
func (in Input) Len() int {
	return len(in.data)
}

// IsEmpty reports whether the view has zero length.
func (in Input) IsEmpty() bool {
	return len(in.data) == 0
}

// IsText reports whether the Input carries the valid-UTF-8 guarantee.
func (in Input) IsText() bool {
	return in.text
}

// RawBytes returns the underlying bytes. The slice is a read-only
// view; callers must not modify it.
func (in Input) RawBytes() []byte {
	return in.data
}

// Span returns the range this view covers, relative to the original
// buffer it was cut from.
func (in Input) Span() Span {
	return Span{Start: in.base, End: in.base + len(in.data)}
}

// SplitAt cuts the view into [0, i) and [i, len). The index must
// satisfy 0 <= i <= Len; anything else is a caller bug and fails with
// a fatal error rather than a retryable one. For text Inputs the cut
// must land on a UTF-8 boundary, otherwise the sub-views would violate
// the validity guarantee.
func (in Input) SplitAt(i int) (Input, Input, error) {
	if i < 0 || i > len(in.data) {
		return Input{}, Input{}, NewInvalid(in.Span(), "split index out of range")
	}
	if in.text && !in.isBoundary(i) {
		at := in.base + i
		return Input{}, Input{}, NewInvalid(Span{Start: at, End: at + 1}, "split inside utf-8 sequence")
	}
	return in.slice(0, i), in.slice(i, len(in.data)), nil
}

// SplitPrefix cuts the view after the longest prefix whose bytes all
// satisfy pred. It cannot fail; an empty prefix is a valid result. For
// text Inputs the cut is pulled back to the nearest UTF-8 boundary so
// both halves remain valid text.
func (in Input) SplitPrefix(pred func(byte) bool) (Input, Input) {
	cut := scan.IndexFunc(in.data, func(b byte) bool { return !pred(b) })
	if cut < 0 {
		cut = len(in.data)
	}
	if in.text {
		for cut > 0 && !in.isBoundary(cut) {
			cut--
		}
	}
	return in.slice(0, cut), in.slice(cut, len(in.data))
}

// Find returns the offset of the first occurrence of needle within the
// view, or -1 if absent. An empty needle matches at offset 0.
func (in Input) Find(needle []byte) int {
	return scan.Index(in.data, needle)
}

// FindByte returns the offset of the first occurrence of b, or -1.
func (in Input) FindByte(b byte) int {
	return scan.IndexByte(in.data, b)
}

func (in Input) String() string {
	flavor := "bytes"
	if in.text {
		flavor = "text"
	}
	return fmt.Sprintf("Input(%s %s)", flavor, in.Span())
}

// slice returns the sub-view [lo, hi) without boundary checks; callers
// are responsible for validated indices.
func (in Input) slice(lo, hi int) Input {
	return Input{data: in.data[lo:hi], base: in.base + lo, text: in.text}
}

// isBoundary reports whether i is a valid UTF-8 split point.
func (in Input) isBoundary(i int) bool {
	return i == 0 || i == len(in.data) || utf8.RuneStart(in.data[i])
}

// firstInvalidUTF8 returns the offset of the first invalid byte, or -1
// if the whole slice is well-formed. DecodeRune reports RuneError with
// size 1 for malformed sequences; a literal U+FFFD decodes with size 3.
func firstInvalidUTF8(b []byte) int {
	if utf8.Valid(b) {
		return -1
	}
	off := 0
	for off < len(b) {
		r, size := utf8.DecodeRune(b[off:])
		if r == utf8.RuneError && size == 1 {
			return off
		}
		off += size
	}
	return -1
}
