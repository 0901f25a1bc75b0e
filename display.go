package wary

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// maxExcerptWidth bounds the rendered excerpt line in display cells.
const maxExcerptWidth = 72

type reportOptions struct {
	backtrace bool
}

// ReportOption adjusts how a diagnostic is rendered.
type ReportOption func(*reportOptions)

// WithoutBacktrace omits the context backtrace section from the
// rendered report.
func WithoutBacktrace() ReportOption {
	return func(o *reportOptions) { o.backtrace = false }
}

// Report renders a diagnostic for err against the original input and
// returns it as a string. See WriteReport.
func Report(err error, in Input, opts ...ReportOption) string {
	var sb strings.Builder
	_ = WriteReport(&sb, err, in, opts...)
	return sb.String()
}

// WriteReport renders a human-readable diagnostic: the failure
// description, the line and column of the innermost span, an annotated
// excerpt of the surrounding input, and the context backtrace. Column
// numbers are display-width based so the caret aligns under
// variable-width glyphs; input that is not valid UTF-8 degrades to
// byte-offset reporting. Rendering itself never fails on malformed
// input, only on writer errors.
func WriteReport(w io.Writer, err error, in Input, opts ...ReportOption) error {
	o := reportOptions{backtrace: true}
	for _, opt := range opts {
		opt(&o)
	}
	e, ok := AsError(err)
	if !ok {
		_, werr := fmt.Fprintf(w, "error: %v\n", err)
		return werr
	}
	if _, werr := fmt.Fprintf(w, "error: %s\n", e.headline()); werr != nil {
		return werr
	}
	data := in.RawBytes()
	rel, relEnd := clampSpan(e.Span(), in)
	if utf8.Valid(data) {
		if werr := writeExcerpt(w, data, rel, relEnd); werr != nil {
			return werr
		}
	} else {
		if _, werr := fmt.Fprintf(w, " --> byte %d of %d\n", rel, len(data)); werr != nil {
			return werr
		}
	}
	if !o.backtrace {
		return nil
	}
	return writeBacktrace(w, e)
}

// clampSpan maps the failure span onto offsets relative to in, clamped
// to its bounds so rendering stays total even over mismatched inputs.
func clampSpan(s Span, in Input) (int, int) {
	origin := in.Span().Start
	rel := min(max(s.Start-origin, 0), in.Len())
	relEnd := min(max(s.End-origin, rel), in.Len())
	return rel, relEnd
}

func writeExcerpt(w io.Writer, data []byte, rel, relEnd int) error {
	lineNo := 1 + bytes.Count(data[:rel], []byte{'\n'})
	lineStart := bytes.LastIndexByte(data[:rel], '\n') + 1
	lineEnd := len(data)
	if i := bytes.IndexByte(data[rel:], '\n'); i >= 0 {
		lineEnd = rel + i
	}
	line := string(data[lineStart:lineEnd])
	caretStart := rel - lineStart
	caretEnd := min(max(relEnd-lineStart, caretStart), len(line))

	col := displayCells(line[:caretStart]) + 1
	if _, err := fmt.Fprintf(w, " --> %d:%d\n", lineNo, col); err != nil {
		return err
	}

	clipped, cutFront := clipExcerpt(line, caretStart)
	caretStart -= cutFront
	caretEnd = min(caretEnd-cutFront, len(clipped))
	marker := ""
	if cutFront > 0 {
		marker = "…"
	}

	gutter := len(fmt.Sprintf("%d", lineNo))
	pad := displayCells(marker) + displayCells(clipped[:caretStart])
	caret := displayCells(clipped[caretStart:caretEnd])
	if caret < 1 {
		caret = 1
	}
	if _, err := fmt.Fprintf(w, "%s |\n%d | %s\n%s | %s%s\n",
		strings.Repeat(" ", gutter),
		lineNo, marker+displayForm(clipped),
		strings.Repeat(" ", gutter),
		strings.Repeat(" ", pad), strings.Repeat("^", caret),
	); err != nil {
		return err
	}
	return nil
}

func writeBacktrace(w io.Writer, e *Error) error {
	if e.FrameCount() == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, "context backtrace:"); err != nil {
		return err
	}
	i := 0
	for f := range e.Frames() {
		i++
		if _, err := fmt.Fprintf(w, "  %d. %s (bytes %d..%d)\n", i, f.Operation, f.Span.Start, f.Span.End); err != nil {
			return err
		}
	}
	return nil
}
