// Package scan provides first-occurrence search over byte slices: the
// fast-scan capability behind Input.Find and Reader.TakeUntil.
//
// Two backends exist. The default wraps the standard library's
// vectorized bytes.IndexByte and bytes.Index, which use hardware
// acceleration where the platform supports it. Building with the
// purescan tag selects explicit linear loops instead. Both backends
// return identical results for every input; the backend choice is
// invisible to callers.
package scan

// IndexFunc returns the offset of the first byte satisfying pred, or
// -1 if none does. Predicate scans are always linear.
func IndexFunc(haystack []byte, pred func(byte) bool) int {
	for i, b := range haystack {
		if pred(b) {
			return i
		}
	}
	return -1
}
