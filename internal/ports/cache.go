package ports

// Cache stores per-file scan results keyed by the file's identity (size and
// mtime) so unchanged files can skip the parse on a rescan. Implementations
// must be safe for concurrent use. A nil Cache disables caching entirely;
// results are identical either way.
type Cache interface {
	// Get returns the cached results for path if the stored size and mtime
	// both still match.
	Get(path string, size int64, mtime int64) ([]ScanResult, bool)

	// Put records the results for path at the given size and mtime,
	// replacing any previous entry.
	Put(path string, size int64, mtime int64, results []ScanResult) error

	// Close releases the underlying store.
	Close() error
}
