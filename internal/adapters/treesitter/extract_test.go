package treesitter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEscape_Simple(t *testing.T) {
	cases := map[string]rune{
		`\n`:  '\n',
		`\t`:  '\t',
		`\r`:  '\r',
		`\b`:  '\b',
		`\f`:  '\f',
		`\v`:  '\v',
		`\\`:  '\\',
		`\"`:  '"',
		`\'`:  '\'',
		"\\`": '`',
		`\a`:  'a',
		`\x41`:      'A',
		`\中`:        '中',
		`\u{1F600}`: 0x1F600,
		`\0`:        0,
		`\101`:      'A', // octal
	}
	for seq, want := range cases {
		r, present, ok := decodeEscape(seq)
		require.True(t, ok, "sequence %q", seq)
		require.True(t, present, "sequence %q", seq)
		assert.Equal(t, want, r, "sequence %q", seq)
	}
}

func TestDecodeEscape_LineContinuation(t *testing.T) {
	for _, seq := range []string{"\\\n", "\\\r", "\\\r\n"} {
		_, present, ok := decodeEscape(seq)
		require.True(t, ok, "sequence %q", seq)
		assert.False(t, present, "sequence %q", seq)
	}
}

func TestDecodeEscape_Invalid(t *testing.T) {
	cases := []string{
		`\xZZ`,       // bad hex
		`\x4`,        // short hex
		`\u12`,       // short unicode
		`\u{}`,       // empty braces
		`\u{110000}`, // beyond U+10FFFF
		`\u{zz}`,     // bad hex in braces
		`\`,          // bare backslash
	}
	for _, seq := range cases {
		_, _, ok := decodeEscape(seq)
		assert.False(t, ok, "sequence %q", seq)
	}
}

func TestDecodeEscape_NonASCIIIdentity(t *testing.T) {
	r, present, ok := decodeEscape(`\©`)
	require.True(t, ok)
	require.True(t, present)
	assert.Equal(t, '©', r)
}
