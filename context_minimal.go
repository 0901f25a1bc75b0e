//go:build minimalcontext

package wary

// Built with the minimalcontext tag only the innermost operation and
// the terminal failure are retained, keeping errors constant-size.
const fullContext = false
