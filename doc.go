// Package wary provides primitives for consuming untrusted byte or
// text input without panics or unchecked indexing.
//
// Raw bytes are wrapped in an Input, a Reader consumes the Input, and
// failures surface as *Error values that distinguish fatal problems
// from incomplete input. A retryable error carries a RetryRequirement
// so streaming callers know how many more bytes to fetch before
// re-running the parse. Named Reader.Context scopes record the chain
// of operations that were active when a failure occurred, and
// WriteReport renders that chain against the original input as a
// human-readable diagnostic.
package wary
