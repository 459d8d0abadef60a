// Package gitignore implements ports.Walker with git-style ignore semantics.
// Nested .gitignore and .ignore files apply to their own subtree, caller
// exclude patterns apply everywhere, and hidden files are walked unless a rule
// filters them. Pattern matching is delegated to sabhiram/go-gitignore.
package gitignore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
)

// ignoreFiles are the per-directory rule files honored during the walk, in
// precedence order (later wins within a directory).
var ignoreFiles = []string{".gitignore", ".ignore"}

// Walker walks a directory tree applying ignore rules. The zero value is
// ready to use.
type Walker struct{}

// NewWalker returns a Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// scope is one directory's compiled rule set; its patterns only apply to
// paths below dir.
type scope struct {
	dir   string
	rules *ignore.GitIgnore
}

// Walk calls fn with the absolute path of every regular file under root that
// survives the ignore rules. excludes are extra patterns with the same syntax
// as ignore-file lines, matched against root-relative paths. The only fatal
// condition is a root that is not a directory; everything else is skipped
// silently.
func (w *Walker) Walk(root string, excludes []string, fn func(path string)) error {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("path is not a directory: %s", root)
	}
	info, err := os.Stat(absRoot)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", root)
	}

	var caller *ignore.GitIgnore
	if len(excludes) > 0 {
		caller = ignore.CompileIgnoreLines(excludes...)
	}

	w.walkDir(absRoot, absRoot, nil, caller, fn)
	return nil
}

func (w *Walker) walkDir(root, dir string, scopes []scope, caller *ignore.GitIgnore, fn func(string)) {
	if rules := loadDirRules(dir); rules != nil {
		scopes = append(scopes, scope{dir: dir, rules: rules})
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return // unreadable directory contributes nothing
	}

	for _, entry := range entries {
		full := filepath.Join(dir, entry.Name())

		isDir := entry.IsDir()
		isFile := entry.Type().IsRegular()
		if entry.Type()&os.ModeSymlink != 0 {
			// Stat through the link: file targets are scanned, directory
			// targets are not descended into.
			target, statErr := os.Stat(full)
			if statErr != nil {
				continue
			}
			isFile = target.Mode().IsRegular()
		}

		if ignored(full, isDir, root, scopes, caller) {
			continue
		}

		switch {
		case isDir:
			w.walkDir(root, full, scopes, caller, fn)
		case isFile:
			fn(full)
		}
	}
}

// ignored applies caller patterns first, then directory scopes from deepest
// to shallowest; the nearest rule set with an opinion wins, matching git's
// precedence.
func ignored(path string, isDir bool, root string, scopes []scope, caller *ignore.GitIgnore) bool {
	if caller != nil {
		if caller.MatchesPath(relTo(root, path, isDir)) {
			return true
		}
	}
	for i := len(scopes) - 1; i >= 0; i-- {
		matched, how := scopes[i].rules.MatchesPathHow(relTo(scopes[i].dir, path, isDir))
		if how != nil {
			return matched
		}
	}
	return false
}

// relTo returns path relative to base in slash form, with a trailing slash
// for directories so directory patterns ("build/") match.
func relTo(base, path string, isDir bool) string {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return path
	}
	rel = filepath.ToSlash(rel)
	if isDir && !strings.HasSuffix(rel, "/") {
		rel += "/"
	}
	return rel
}

// loadDirRules compiles the ignore files present in dir, or nil when there
// are none readable.
func loadDirRules(dir string) *ignore.GitIgnore {
	var lines []string
	for _, name := range ignoreFiles {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		lines = append(lines, strings.Split(string(data), "\n")...)
	}
	if len(lines) == 0 {
		return nil
	}
	return ignore.CompileIgnoreLines(lines...)
}
