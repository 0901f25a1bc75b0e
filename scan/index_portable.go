//go:build purescan

package scan

// IndexByte returns the offset of the first occurrence of c, or -1.
func IndexByte(haystack []byte, c byte) int {
	for i, b := range haystack {
		if b == c {
			return i
		}
	}
	return -1
}

// Index returns the offset of the first occurrence of needle, or -1.
// An empty needle matches at offset 0.
func Index(haystack, needle []byte) int {
	if len(needle) == 0 {
		return 0
	}
	if len(needle) > len(haystack) {
		return -1
	}
	for i := 0; i+len(needle) <= len(haystack); i++ {
		j := 0
		for j < len(needle) && haystack[i+j] == needle[j] {
			j++
		}
		if j == len(needle) {
			return i
		}
	}
	return -1
}
