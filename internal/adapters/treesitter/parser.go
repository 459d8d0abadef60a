// Package treesitter implements literal extraction using tree-sitter
// grammars. It parses JavaScript/TypeScript-family source files and yields
// every string literal, template-literal static segment, and JSX text run as
// a ports.Candidate with its decoded value and byte span.
//
// Three grammars compiled-in via CGo from the official tree-sitter repos:
// javascript (covers .js/.jsx), typescript, and tsx.
package treesitter

import (
	"path/filepath"
	"unsafe"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	ts_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
	ts_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"

	"github.com/corey/hanscan/internal/ports"
)

// langPtr wraps a Language() call that returns unsafe.Pointer.
func langPtr(p unsafe.Pointer) *tree_sitter.Language {
	return tree_sitter.NewLanguage(p)
}

// Extractor implements ports.Extractor on top of tree-sitter. Safe for
// concurrent use: each Extract call creates its own parser instance.
type Extractor struct {
	languages map[string]*tree_sitter.Language // grammar name -> language
}

// NewExtractor creates an extractor with all three grammars registered.
func NewExtractor() *Extractor {
	return &Extractor{
		languages: map[string]*tree_sitter.Language{
			"javascript": langPtr(ts_javascript.Language()),
			"typescript": langPtr(ts_typescript.LanguageTypescript()),
			"tsx":        langPtr(ts_typescript.LanguageTSX()),
		},
	}
}

// Supports returns true for the four recognized extensions, case-sensitively.
func (e *Extractor) Supports(ext string) bool {
	_, ok := DialectForExt(ext)
	return ok
}

// Extract parses source according to the dialect selected by path's extension
// and returns all text-bearing candidates. ok is false for unsupported
// extensions and for files that do not parse cleanly; a partial tree is never
// used.
func (e *Extractor) Extract(path string, source []byte) ([]ports.Candidate, bool) {
	dialect, supported := DialectForExt(filepath.Ext(path))
	if !supported {
		return nil, false
	}
	lang, known := e.languages[dialect.Grammar]
	if !known {
		return nil, false
	}

	parser := tree_sitter.NewParser()
	defer parser.Close()
	if err := parser.SetLanguage(lang); err != nil {
		return nil, false
	}

	tree := parser.Parse(source, nil)
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, false
	}

	var candidates []ports.Candidate
	collect(root, source, &candidates)
	return candidates, true
}
