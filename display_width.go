//go:build !bytecolumns

package wary

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// displayCells returns the rendered width of s in terminal cells.
// Control runes count as one cell each, matching displayForm, which
// renders them as a single placeholder.
func displayCells(s string) int {
	cells := 0
	for _, r := range s {
		cells += runeCells(r)
	}
	return cells
}

func runeCells(r rune) int {
	if r == '\t' || unicode.IsControl(r) {
		return 1
	}
	return runewidth.RuneWidth(r)
}

// displayForm replaces control runes with a visible single-cell
// placeholder so the excerpt and the caret line stay aligned.
func displayForm(s string) string {
	if !strings.ContainsFunc(s, func(r rune) bool { return r == '\t' || unicode.IsControl(r) }) {
		return s
	}
	var sb strings.Builder
	for _, r := range s {
		if r == '\t' || unicode.IsControl(r) {
			sb.WriteRune('·')
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// clipExcerpt trims line to at most maxExcerptWidth cells while
// keeping the caret byte offset in view. Cuts land on grapheme cluster
// boundaries so no glyph is ever split. Returns the clipped line and
// the number of bytes removed from the front.
func clipExcerpt(line string, caretByte int) (string, int) {
	if displayCells(line) <= maxExcerptWidth {
		return line, 0
	}
	type cluster struct {
		start, end, cells int
	}
	var clusters []cluster
	g := uniseg.NewGraphemes(line)
	off := 0
	for g.Next() {
		s := g.Str()
		clusters = append(clusters, cluster{start: off, end: off + len(s), cells: displayCells(s)})
		off += len(s)
	}
	caretIdx := len(clusters) - 1
	for i, c := range clusters {
		if caretByte < c.end {
			caretIdx = i
			break
		}
	}
	// Grow a window around the caret cluster until the budget runs out.
	lo, hi := caretIdx, caretIdx
	budget := maxExcerptWidth - clusters[caretIdx].cells
	for budget > 0 && (lo > 0 || hi < len(clusters)-1) {
		if lo > 0 && clusters[lo-1].cells <= budget {
			lo--
			budget -= clusters[lo].cells
		} else if hi < len(clusters)-1 && clusters[hi+1].cells <= budget {
			hi++
			budget -= clusters[hi].cells
		} else {
			break
		}
	}
	return line[clusters[lo].start:clusters[hi].end], clusters[lo].start
}
