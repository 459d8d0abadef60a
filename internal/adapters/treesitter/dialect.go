package treesitter

// Dialect is the parsing configuration selected by a file extension: which
// grammar to load and which syntax capabilities the file carries.
type Dialect struct {
	Grammar    string // tree-sitter grammar name
	Module     bool   // module syntax (import/export)
	JSX        bool   // markup runs
	TypeScript bool   // type-annotation syntax
}

// dialects maps the four recognized extensions, case-sensitively, to their
// dialect. ".JS" and friends are unsupported on purpose.
var dialects = map[string]Dialect{
	".js":  {Grammar: "javascript"},
	".jsx": {Grammar: "javascript", Module: true, JSX: true},
	".ts":  {Grammar: "typescript", Module: true, TypeScript: true},
	".tsx": {Grammar: "tsx", Module: true, TypeScript: true, JSX: true},
}

// DialectForExt returns the dialect for a file extension (leading dot
// included), or ok=false for unsupported extensions.
func DialectForExt(ext string) (Dialect, bool) {
	d, ok := dialects[ext]
	return d, ok
}
