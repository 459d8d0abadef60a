package script

import (
	"sort"
	"strings"
)

// DefaultName is the block used when no script is configured.
const DefaultName = "han"

// namedRanges maps block names to code-point ranges. "han" deliberately stops
// at U+9FA5 rather than the full block: the tail of CJK Unified Ideographs is
// unassigned in the fonts this tool's users care about and only adds noise.
var namedRanges = map[string]Range{
	"han":      {Lo: 0x4E00, Hi: 0x9FA5},
	"hiragana": {Lo: 0x3040, Hi: 0x309F},
	"katakana": {Lo: 0x30A0, Hi: 0x30FF},
	"hangul":   {Lo: 0xAC00, Hi: 0xD7A3},
	"kana":     {Lo: 0x3040, Hi: 0x30FF},
	"cyrillic": {Lo: 0x0400, Hi: 0x04FF},
	"arabic":   {Lo: 0x0600, Hi: 0x06FF},
	"hebrew":   {Lo: 0x0590, Hi: 0x05FF},
	"thai":     {Lo: 0x0E00, Hi: 0x0E7F},
}

// Named resolves a block name (case-insensitive) to its range.
func Named(name string) (Range, bool) {
	rng, ok := namedRanges[strings.ToLower(strings.TrimSpace(name))]
	return rng, ok
}

// Names returns all named blocks in sorted order.
func Names() []string {
	names := make([]string, 0, len(namedRanges))
	for n := range namedRanges {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
