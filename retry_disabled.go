//go:build noretry

package wary

// Built with the noretry tag the input is treated as bound: it will
// never be extended, so running out of bytes is as fatal as any other
// mismatch.
const retryEnabled = false
