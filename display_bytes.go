//go:build bytecolumns

package wary

import "strings"

// Built with the bytecolumns tag columns are plain byte offsets and no
// width tables are consulted. Alignment is only exact for single-cell
// bytes; anything outside printable ASCII renders as a placeholder.

func displayCells(s string) int {
	return len(s)
}

func displayForm(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7e {
			sb.WriteByte('.')
			continue
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}

func clipExcerpt(line string, caretByte int) (string, int) {
	if len(line) <= maxExcerptWidth {
		return line, 0
	}
	lo := caretByte - maxExcerptWidth/2
	if lo < 0 {
		lo = 0
	}
	hi := lo + maxExcerptWidth
	if hi > len(line) {
		hi = len(line)
		lo = hi - maxExcerptWidth
	}
	return line[lo:hi], lo
}
