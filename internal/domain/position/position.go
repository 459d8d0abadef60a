// Package position translates absolute byte offsets in a source file into
// 1-based (line, column) pairs. Columns count bytes since the last newline.
package position

import "sort"

// Index holds the byte offsets of line starts for one source text. Building it
// once per file makes every subsequent lookup a binary search instead of a
// rescan from the start of the file.
type Index struct {
	lineStarts []int
	size       int
}

// NewIndex builds a line-start table for source. Line boundaries are single
// '\n' bytes; a missing final newline still resolves correctly.
func NewIndex(source []byte) *Index {
	starts := make([]int, 1, 64)
	starts[0] = 0
	for i, b := range source {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &Index{lineStarts: starts, size: len(source)}
}

// LineCol maps an absolute byte offset to a 1-based (line, column) pair.
// An offset equal to the text length lands one past the final byte of the last
// line; anything further falls back to (lineCount+1, 1). The fallback is a
// defined degenerate case, not an error.
func (ix *Index) LineCol(offset int) (line, col int) {
	if offset < 0 {
		return 1, 1
	}
	if offset > ix.size {
		return ix.lineCount() + 1, 1
	}
	// First line start strictly greater than offset, minus one.
	i := sort.SearchInts(ix.lineStarts, offset+1) - 1
	return i + 1, offset - ix.lineStarts[i] + 1
}

// lineCount counts lines the way strings.Lines would: a trailing newline does
// not open a new line.
func (ix *Index) lineCount() int {
	n := len(ix.lineStarts)
	if ix.size == 0 {
		return 0
	}
	if ix.lineStarts[n-1] == ix.size {
		return n - 1
	}
	return n
}
