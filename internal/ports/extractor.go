package ports

// CandidateKind discriminates the three text-bearing node categories the
// extractor visits.
type CandidateKind uint8

const (
	// StringLiteral is a quoted string; its span includes the delimiters.
	StringLiteral CandidateKind = iota
	// TemplateSegment is one static (non-interpolated) run of a template
	// literal, escape-decoded ("cooked").
	TemplateSegment
	// MarkupText is a raw JSX text run between tags.
	MarkupText
)

// Candidate is a decoded text value plus its byte span in the original source.
// Candidates are ephemeral: produced during one file's traversal and matched
// immediately, never persisted.
type Candidate struct {
	Kind      CandidateKind
	Value     string
	StartByte int
	EndByte   int
}

// Extractor parses a source file and yields every text-bearing candidate in
// it. The concrete implementation (tree-sitter) lives in
// internal/adapters/treesitter; the engine must not assume anything about the
// underlying tree beyond what Candidate carries.
type Extractor interface {
	// Supports returns true for file extensions that map to a known dialect.
	// Extensions are matched case-sensitively and include the leading dot.
	Supports(ext string) bool

	// Extract parses source and returns all candidates at every nesting
	// depth. ok is false when the file does not parse cleanly; such files
	// contribute nothing to the scan and are not an error.
	Extract(path string, source []byte) (candidates []Candidate, ok bool)
}
