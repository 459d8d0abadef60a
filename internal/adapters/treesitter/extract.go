package treesitter

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/corey/hanscan/internal/ports"
)

// collect walks the tree at every nesting depth and appends one candidate per
// string literal, template static segment, and JSX text run. There is no
// early termination: a file with many literals yields them all.
func collect(n *tree_sitter.Node, source []byte, out *[]ports.Candidate) {
	switch n.Kind() {
	case "string":
		// The anonymous "string" keyword of a TypeScript type annotation
		// shares this kind; only the named literal node carries text.
		if !n.IsNamed() {
			return
		}
		if value, ok := cookChildren(n, source); ok {
			*out = append(*out, ports.Candidate{
				Kind:      ports.StringLiteral,
				Value:     value,
				StartByte: int(n.StartByte()),
				EndByte:   int(n.EndByte()),
			})
		}
		// Children are fragments and escape tokens; nothing left to visit.
		return

	case "template_string":
		collectTemplate(n, source, out)
		return

	case "jsx_text":
		*out = append(*out, ports.Candidate{
			Kind:      ports.MarkupText,
			Value:     string(source[n.StartByte():n.EndByte()]),
			StartByte: int(n.StartByte()),
			EndByte:   int(n.EndByte()),
		})
		return
	}

	for i := uint(0); i < uint(n.ChildCount()); i++ {
		collect(n.Child(i), source, out)
	}
}

// collectTemplate yields one candidate per static run of a template literal
// and recurses into each interpolation for nested literals. A static run is a
// maximal sequence of fragment/escape tokens between interpolations; its span
// excludes the backticks and the ${ } delimiters, so no quote adjustment
// applies when mapping a match back to source.
func collectTemplate(n *tree_sitter.Node, source []byte, out *[]ports.Candidate) {
	var run []*tree_sitter.Node

	flush := func() {
		if len(run) == 0 {
			return
		}
		start := int(run[0].StartByte())
		end := int(run[len(run)-1].EndByte())
		if value, ok := cookRun(run, source); ok {
			*out = append(*out, ports.Candidate{
				Kind:      ports.TemplateSegment,
				Value:     value,
				StartByte: start,
				EndByte:   end,
			})
		}
		run = run[:0]
	}

	for i := uint(0); i < uint(n.ChildCount()); i++ {
		child := n.Child(i)
		switch child.Kind() {
		case "string_fragment", "escape_sequence":
			run = append(run, child)
		case "template_substitution":
			flush()
			collect(child, source, out)
		default: // backtick tokens
			flush()
		}
	}
	flush()
}

// cookChildren decodes a string literal's value from its fragment and escape
// children, skipping the delimiter tokens.
func cookChildren(n *tree_sitter.Node, source []byte) (string, bool) {
	var parts []*tree_sitter.Node
	for i := uint(0); i < uint(n.ChildCount()); i++ {
		child := n.Child(i)
		switch child.Kind() {
		case "string_fragment", "escape_sequence":
			parts = append(parts, child)
		}
	}
	return cookRun(parts, source)
}

// cookRun concatenates fragments and decoded escapes into the "cooked" value.
// Returns ok=false when any escape fails to decode; such candidates are
// skipped rather than matched against raw text. Surrogate pairs split across
// two \u escapes are recombined; a lone surrogate cooks to U+FFFD, which can
// never fall in a configured script range.
func cookRun(nodes []*tree_sitter.Node, source []byte) (string, bool) {
	var sb strings.Builder
	var pendingHigh rune

	flushPending := func() {
		if pendingHigh != 0 {
			sb.WriteRune(utf8.RuneError)
			pendingHigh = 0
		}
	}

	emit := func(r rune) {
		if pendingHigh != 0 {
			if combined := utf16.DecodeRune(pendingHigh, r); combined != utf8.RuneError {
				pendingHigh = 0
				sb.WriteRune(combined)
				return
			}
			flushPending()
		}
		if utf16.IsSurrogate(r) {
			if r < 0xDC00 {
				pendingHigh = r
				return
			}
			sb.WriteRune(utf8.RuneError)
			return
		}
		sb.WriteRune(r)
	}

	for _, node := range nodes {
		raw := source[node.StartByte():node.EndByte()]
		if node.Kind() == "string_fragment" {
			flushPending()
			sb.Write(raw)
			continue
		}
		r, present, ok := decodeEscape(string(raw))
		if !ok {
			return "", false
		}
		if present {
			emit(r)
		}
	}
	flushPending()
	return sb.String(), true
}

// decodeEscape decodes a single escape sequence (backslash included).
// present=false for line continuations, which contribute nothing. ok=false
// for sequences with no cooked value (malformed hex, out-of-range code
// points).
func decodeEscape(seq string) (r rune, present, ok bool) {
	if len(seq) < 2 || seq[0] != '\\' {
		return 0, false, false
	}
	body := seq[1:]

	switch body[0] {
	case 'n':
		return '\n', true, true
	case 't':
		return '\t', true, true
	case 'r':
		return '\r', true, true
	case 'b':
		return '\b', true, true
	case 'f':
		return '\f', true, true
	case 'v':
		return '\v', true, true
	case '\n':
		return 0, false, true
	case '\r':
		// \CR or \CRLF, both line continuations
		return 0, false, true
	case 'x':
		if len(body) != 3 {
			return 0, false, false
		}
		v, err := strconv.ParseUint(body[1:], 16, 16)
		if err != nil {
			return 0, false, false
		}
		return rune(v), true, true
	case 'u':
		return decodeUnicodeEscape(body)
	case '0', '1', '2', '3', '4', '5', '6', '7':
		// Legacy octal, up to three digits, max \377.
		v, err := strconv.ParseUint(body, 8, 16)
		if err != nil || v > 0xFF {
			return 0, false, false
		}
		return rune(v), true, true
	default:
		// Identity escape: \" \' \` \\ and any other escaped character.
		decoded, size := utf8.DecodeRuneInString(body)
		if decoded == utf8.RuneError && size <= 1 {
			return 0, false, false
		}
		return decoded, true, true
	}
}

func decodeUnicodeEscape(body string) (rune, bool, bool) {
	if len(body) >= 2 && body[1] == '{' {
		if !strings.HasSuffix(body, "}") || len(body) < 4 {
			return 0, false, false
		}
		v, err := strconv.ParseUint(body[2:len(body)-1], 16, 32)
		if err != nil || v > uint64(unicode.MaxRune) {
			return 0, false, false
		}
		return rune(v), true, true
	}
	if len(body) != 5 {
		return 0, false, false
	}
	v, err := strconv.ParseUint(body[1:], 16, 32)
	if err != nil {
		return 0, false, false
	}
	return rune(v), true, true
}
