//go:build !minimalcontext

package wary

// fullContext selects whether errors accumulate the whole context
// chain. Built without the minimalcontext tag, they do.
const fullContext = true
