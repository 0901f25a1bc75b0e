//go:build !purescan

package scan

import "bytes"

// IndexByte returns the offset of the first occurrence of c, or -1.
func IndexByte(haystack []byte, c byte) int {
	return bytes.IndexByte(haystack, c)
}

// Index returns the offset of the first occurrence of needle, or -1.
// An empty needle matches at offset 0.
func Index(haystack, needle []byte) int {
	return bytes.Index(haystack, needle)
}
