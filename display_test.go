package wary

import (
	"strings"
	"testing"
)

func TestReportBasic(t *testing.T) {
	in := MustText("ab\n12x45")
	e := NewExpected(Span{Start: 5, End: 6}, "decimal digit")
	got := Report(e, in)
	want := "error: expected decimal digit\n" +
		" --> 2:3\n" +
		"  |\n" +
		"2 | 12x45\n" +
		"  |   ^\n"
	if got != want {
		t.Errorf("Report:\n%s\nwant:\n%s", got, want)
	}
}

func TestReportWideGlyphAlignment(t *testing.T) {
	// 日 renders two cells wide; the caret for the byte after it must
	// sit at display column 3, not at byte column 4.
	in := MustText("日x")
	e := NewExpected(Span{Start: 3, End: 4}, "decimal digit")
	got := Report(e, in)
	if !strings.Contains(got, " --> 1:3\n") {
		t.Errorf("expected display-width column 3, got:\n%s", got)
	}
	lines := strings.Split(got, "\n")
	var excerpt, caret string
	for i, l := range lines {
		if strings.HasPrefix(l, "1 | ") {
			excerpt = l
			caret = lines[i+1]
		}
	}
	if excerpt == "" {
		t.Fatalf("no excerpt line in:\n%s", got)
	}
	if want := "  |   ^"; caret != want {
		t.Errorf("caret line = %q, want %q", caret, want)
	}
}

func TestReportSpanCaretWidth(t *testing.T) {
	in := MustText("abcdef")
	e := NewInvalid(Span{Start: 1, End: 4}, "bad run")
	got := Report(e, in)
	if !strings.Contains(got, "^^^") {
		t.Errorf("expected three carets for a three-byte span, got:\n%s", got)
	}
}

func TestReportBinaryInputDegradesToByteOffsets(t *testing.T) {
	data := []byte{0xff, 0x01, 'a', 0x02}
	e := NewInvalid(Span{Start: 1, End: 2}, "bad tag")
	got := Report(e, Bytes(data))
	if !strings.Contains(got, " --> byte 1 of 4\n") {
		t.Errorf("expected byte-offset degradation, got:\n%s", got)
	}
	if strings.Contains(got, "^") {
		t.Errorf("no caret line expected for binary input, got:\n%s", got)
	}
}

func TestReportBacktrace(t *testing.T) {
	in := MustText("12x")
	err := ReadAll(in, func(r *Reader) error {
		return r.Context("number", func(r *Reader) error {
			if _, err := r.ReadUintDecimal(); err != nil {
				return err
			}
			_, err := r.ReadDigits(1)
			return err
		})
	})
	if err == nil {
		t.Fatal("expected failure")
	}
	got := Report(err, in)
	if !strings.Contains(got, "context backtrace:\n") {
		t.Fatalf("missing backtrace in:\n%s", got)
	}
	if !strings.Contains(got, "1. read all") {
		t.Errorf("missing outermost frame in:\n%s", got)
	}
	if !strings.Contains(got, "2. number") {
		t.Errorf("missing inner frame in:\n%s", got)
	}
}

func TestReportWithoutBacktrace(t *testing.T) {
	in := MustText("12x")
	err := ReadAll(in, func(r *Reader) error {
		return r.Context("number", func(r *Reader) error {
			_, err := r.ReadDigits(3)
			return err
		})
	})
	if err == nil {
		t.Fatal("expected failure")
	}
	got := Report(err, in, WithoutBacktrace())
	if strings.Contains(got, "context backtrace:") {
		t.Errorf("backtrace not suppressed:\n%s", got)
	}
	if !strings.Contains(got, "error: ") {
		t.Errorf("headline missing:\n%s", got)
	}
}

func TestReportForeignError(t *testing.T) {
	got := Report(strings.NewReader("").UnreadRune(), Bytes(nil))
	if !strings.HasPrefix(got, "error: ") {
		t.Errorf("foreign errors must still render, got %q", got)
	}
}

func TestReportClampsOutOfRangeSpans(t *testing.T) {
	// A span pointing past the input must not panic the renderer.
	in := MustText("short")
	e := NewInvalid(Span{Start: 40, End: 50}, "confused span")
	got := Report(e, in)
	if got == "" {
		t.Error("expected a rendered report")
	}
}

func TestReportLongLineClipped(t *testing.T) {
	long := strings.Repeat("a", 200) + "X" + strings.Repeat("b", 200)
	in := MustText(long)
	e := NewExpected(Span{Start: 200, End: 201}, "something else")
	got := Report(e, in)
	for _, l := range strings.Split(got, "\n") {
		if len(l) > maxExcerptWidth+16 {
			t.Errorf("line not clipped (%d chars): %q", len(l), l)
		}
	}
	if !strings.Contains(got, "X") {
		t.Errorf("caret target clipped out of excerpt:\n%s", got)
	}
}
