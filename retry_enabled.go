//go:build !noretry

package wary

// retryEnabled selects whether end-of-input failures signal a retry
// requirement. Built without the noretry tag, they do.
const retryEnabled = true
