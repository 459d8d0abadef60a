package ports

// Walker produces the file entries under a root directory, applying
// version-control ignore rules plus caller-supplied exclude patterns. The
// concrete implementation lives in internal/adapters/gitignore.
type Walker interface {
	// Walk calls fn with the absolute path of every regular file under root
	// that no ignore rule filters out. Hidden files are included unless a
	// rule excludes them. Unreadable entries are skipped silently. The only
	// error condition is a root that is not a directory.
	Walk(root string, excludes []string, fn func(path string)) error
}
