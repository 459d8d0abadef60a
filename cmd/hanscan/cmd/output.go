package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"sort"

	"github.com/corey/hanscan/internal/ports"
)

// ANSI color codes for terminal output.
const (
	colorReset = "\033[0m"
	colorBold  = "\033[1m"
	colorCyan  = "\033[36m"
	colorGray  = "\033[90m"
)

// renderResults writes the result list in the requested format. The engine
// returns results unordered; text output sorts them by file/line/column for
// readability, the JSON formats preserve whatever order the scan produced.
func renderResults(w io.Writer, root string, results []ports.ScanResult, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case "ndjson":
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		for _, r := range results {
			if err := enc.Encode(r); err != nil {
				return err
			}
		}
		return nil
	default:
		return renderText(w, root, results)
	}
}

func renderText(w io.Writer, root string, results []ports.ScanResult) error {
	sorted := append([]ports.ScanResult(nil), results...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].FilePath != sorted[j].FilePath {
			return sorted[i].FilePath < sorted[j].FilePath
		}
		if sorted[i].Line != sorted[j].Line {
			return sorted[i].Line < sorted[j].Line
		}
		return sorted[i].Column < sorted[j].Column
	})

	files := make(map[string]struct{}, len(sorted))
	for _, r := range sorted {
		files[r.FilePath] = struct{}{}
	}

	fmt.Fprintf(w, "%s⚡ %d matches%s │ %d files\n", colorBold, len(sorted), colorReset, len(files))
	for _, r := range sorted {
		path := r.FilePath
		if rel, err := filepath.Rel(root, path); err == nil {
			path = rel
		}
		fmt.Fprintf(w, "  %s%s%s%s:%d:%d%s  %s\n",
			colorCyan, path, colorReset,
			colorGray, r.Line, r.Column, colorReset,
			r.Text)
	}
	return nil
}
