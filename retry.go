package wary

import "fmt"

// RetryRequirement describes how much more input a retryable failure
// needs before the parse could be attempted again. The zero value
// means no requirement, which is what every fatal error carries.
type RetryRequirement struct {
	count   int
	unknown bool
}

// Exact returns a requirement for at least n more bytes. n is clamped
// to a minimum of 1; an exact requirement of zero bytes would mean the
// parse should already have succeeded.
func Exact(n int) RetryRequirement {
	if n < 1 {
		n = 1
	}
	return RetryRequirement{count: n}
}

// Unknown returns a requirement meaning "more input is needed, but how
// much cannot be determined", as produced by an unterminated scan.
func Unknown() RetryRequirement {
	return RetryRequirement{unknown: true}
}

// IsNone reports whether there is no requirement (a fatal failure).
func (r RetryRequirement) IsNone() bool {
	return r.count == 0 && !r.unknown
}

// IsUnknown reports whether more input is needed in an unknown amount.
func (r RetryRequirement) IsUnknown() bool {
	return r.unknown
}

// IsExact reports whether an exact shortfall is known.
func (r RetryRequirement) IsExact() bool {
	return r.count > 0
}

// Count returns the exact shortfall in bytes, or 0 if the requirement
// is not exact.
func (r RetryRequirement) Count() int {
	if r.unknown {
		return 0
	}
	return r.count
}

// Combine merges the requirements of two failures that arise from one
// combined operation. It is total over all nine pairings:
//
//   - either side fatal (none): the result is fatal, since more bytes
//     cannot rescue data that is already invalid
//   - either side unknown: the result is unknown
//   - both exact: the larger, more demanding shortfall wins
func Combine(a, b RetryRequirement) RetryRequirement {
	switch {
	case a.IsNone() || b.IsNone():
		return RetryRequirement{}
	case a.unknown || b.unknown:
		return Unknown()
	default:
		return Exact(max(a.count, b.count))
	}
}

func (r RetryRequirement) String() string {
	switch {
	case r.unknown:
		return "more input needed, amount unknown"
	case r.count == 1:
		return "need at least 1 more byte"
	case r.count > 1:
		return fmt.Sprintf("need at least %d more bytes", r.count)
	default:
		return "no retry"
	}
}
