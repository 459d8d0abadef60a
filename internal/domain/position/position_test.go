package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineCol_Basic(t *testing.T) {
	ix := NewIndex([]byte("abc\ndef\nghi"))

	line, col := ix.LineCol(0)
	assert.Equal(t, 1, line)
	assert.Equal(t, 1, col)

	line, col = ix.LineCol(2)
	assert.Equal(t, 1, line)
	assert.Equal(t, 3, col)

	// First byte of line 2
	line, col = ix.LineCol(4)
	assert.Equal(t, 2, line)
	assert.Equal(t, 1, col)

	line, col = ix.LineCol(9)
	assert.Equal(t, 3, line)
	assert.Equal(t, 2, col)
}

func TestLineCol_NewlineByte(t *testing.T) {
	// The '\n' itself belongs to the line it terminates.
	ix := NewIndex([]byte("ab\ncd"))
	line, col := ix.LineCol(2)
	assert.Equal(t, 1, line)
	assert.Equal(t, 3, col)
}

func TestLineCol_NoTrailingNewline(t *testing.T) {
	ix := NewIndex([]byte("ab\ncd"))

	line, col := ix.LineCol(4)
	assert.Equal(t, 2, line)
	assert.Equal(t, 2, col)

	// One past the final byte still resolves onto the last line.
	line, col = ix.LineCol(5)
	assert.Equal(t, 2, line)
	assert.Equal(t, 3, col)
}

func TestLineCol_BeyondEnd(t *testing.T) {
	ix := NewIndex([]byte("ab\ncd"))
	line, col := ix.LineCol(99)
	assert.Equal(t, 3, line) // 2 lines + 1
	assert.Equal(t, 1, col)

	ix = NewIndex([]byte("ab\ncd\n"))
	line, col = ix.LineCol(99)
	assert.Equal(t, 3, line)
	assert.Equal(t, 1, col)
}

func TestLineCol_Empty(t *testing.T) {
	ix := NewIndex(nil)
	line, col := ix.LineCol(0)
	assert.Equal(t, 1, line)
	assert.Equal(t, 1, col)
}

func TestLineCol_MultibyteColumnsAreBytes(t *testing.T) {
	// Columns count bytes, not runes: each ideograph is 3 bytes.
	ix := NewIndex([]byte("中文x"))
	line, col := ix.LineCol(6)
	assert.Equal(t, 1, line)
	assert.Equal(t, 7, col)
}
