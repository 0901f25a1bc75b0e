package wary

import (
	"errors"
	"fmt"
)

// Kind classifies a parse failure.
type Kind int

const (
	// KindInvalid marks data that is semantically wrong and can never
	// become valid by adding bytes.
	KindInvalid Kind = iota
	// KindExpected marks a specific expectation that was not met.
	KindExpected
	// KindIncomplete marks input that is a valid prefix of something
	// potentially valid; the attached RetryRequirement says how much
	// more is needed.
	KindIncomplete
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindExpected:
		return "expected"
	case KindIncomplete:
		return "incomplete"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is the single failure value produced by this package. It
// carries a kind, the span the failure occurred over, a short
// description, a retry requirement for incomplete input, and the
// context frames accumulated while it propagated outward.
type Error struct {
	kind  Kind
	span  Span
	desc  string
	retry RetryRequirement

	frames   []Frame // inner first; only populated when fullContext
	inner    Frame
	hasInner bool
}

// NewInvalid returns a fatal error for semantically wrong data.
func NewInvalid(span Span, desc string) *Error {
	return &Error{kind: KindInvalid, span: span, desc: desc}
}

// NewExpected returns a fatal error for a specific unmet expectation.
// what names the expectation, e.g. "decimal digit".
func NewExpected(span Span, what string) *Error {
	return &Error{kind: KindExpected, span: span, desc: what}
}

// NewIncomplete returns a retryable error: the input so far is a valid
// prefix, and req says how much more is needed to decide. what names
// the thing being read. When built with the noretry tag the input is
// bound and the failure is reported as fatal instead.
func NewIncomplete(span Span, what string, req RetryRequirement) *Error {
	if !retryEnabled || req.IsNone() {
		return &Error{kind: KindExpected, span: span, desc: what}
	}
	return &Error{kind: KindIncomplete, span: span, desc: what, retry: req}
}

// Kind returns the failure classification.
func (e *Error) Kind() Kind {
	return e.kind
}

// Span returns the byte range the terminal failure occurred over,
// relative to the original input.
func (e *Error) Span() Span {
	return e.span
}

// Description returns the short description of what failed or what was
// expected.
func (e *Error) Description() string {
	return e.desc
}

// IsFatal reports whether the input can never become valid by adding
// bytes. Only incomplete errors are not fatal.
func (e *Error) IsFatal() bool {
	return e.kind != KindIncomplete
}

// Retry returns the retry requirement. It is the zero (none)
// requirement for every fatal error.
func (e *Error) Retry() RetryRequirement {
	return e.retry
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %s", e.headline(), e.span)
}

// headline is the message without the span suffix; the diagnostic
// report places the location on its own line.
func (e *Error) headline() string {
	switch e.kind {
	case KindExpected:
		return "expected " + e.desc
	case KindIncomplete:
		return fmt.Sprintf("incomplete input while reading %s (%s)", e.desc, e.retry)
	default:
		return e.desc
	}
}

// AsError unwraps err into the *Error produced by this package, if it
// is one or wraps one.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
