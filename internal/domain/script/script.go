// Package script implements code-point range matching for literal text.
// A Matcher is built once per scan from a range expression (hex bounds) or a
// named Unicode block, and every decoded candidate value is tested against it.
package script

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Range is an inclusive span of Unicode code points.
type Range struct {
	Lo rune
	Hi rune
}

// Contains reports whether r falls inside the range.
func (rg Range) Contains(r rune) bool {
	return r >= rg.Lo && r <= rg.Hi
}

// Matcher tests decoded text values against a single code-point range.
// Safe for concurrent use; it holds no mutable state.
type Matcher struct {
	rng Range
}

// New builds a Matcher from a range expression. The expression is either a
// named block ("han", "hiragana", ...) or a pair of hex code points such as
// "4E00-9FA5" or "U+4E00..U+9FA5". An unparseable expression or an inverted
// range is a configuration error and aborts the whole scan.
func New(expr string) (*Matcher, error) {
	rng, err := ParseRange(expr)
	if err != nil {
		return nil, err
	}
	return &Matcher{rng: rng}, nil
}

// FirstMatch returns the byte offset of the first code point in value that
// falls inside the configured range. A candidate with several matching code
// points still yields a single offset.
func (m *Matcher) FirstMatch(value string) (int, bool) {
	for i, r := range value {
		if m.rng.Contains(r) {
			return i, true
		}
	}
	return 0, false
}

// ParseRange parses a range expression into a Range. Named blocks are resolved
// through the table in ranges.go; otherwise the expression must be two hex
// code points separated by "-" or "..", each optionally prefixed with "U+".
func ParseRange(expr string) (Range, error) {
	trimmed := strings.TrimSpace(expr)
	if trimmed == "" {
		return Range{}, fmt.Errorf("script range: empty expression")
	}

	if rng, ok := Named(trimmed); ok {
		return rng, nil
	}

	sep := "-"
	if strings.Contains(trimmed, "..") {
		sep = ".."
	}
	parts := strings.SplitN(trimmed, sep, 2)
	if len(parts) != 2 {
		return Range{}, fmt.Errorf("script range %q: expected LO-HI or a named block", expr)
	}

	lo, err := parseCodePoint(parts[0])
	if err != nil {
		return Range{}, fmt.Errorf("script range %q: %w", expr, err)
	}
	hi, err := parseCodePoint(parts[1])
	if err != nil {
		return Range{}, fmt.Errorf("script range %q: %w", expr, err)
	}

	rng := Range{Lo: lo, Hi: hi}
	if err := validate(rng); err != nil {
		return Range{}, fmt.Errorf("script range %q: %w", expr, err)
	}
	return rng, nil
}

func parseCodePoint(s string) (rune, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "U+")
	s = strings.TrimPrefix(s, "u+")
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("bad code point %q", s)
	}
	if v > uint64(unicode.MaxRune) {
		return 0, fmt.Errorf("code point %q beyond U+10FFFF", s)
	}
	return rune(v), nil
}

func validate(rng Range) error {
	if rng.Lo < 0 || rng.Hi > unicode.MaxRune {
		return fmt.Errorf("bounds outside Unicode space")
	}
	if rng.Lo > rng.Hi {
		return fmt.Errorf("inverted bounds %04X-%04X", rng.Lo, rng.Hi)
	}
	return nil
}
