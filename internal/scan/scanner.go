// Package scan wires the scanning pipeline: walk the tree, classify each
// file's dialect, parse, extract text-bearing literals, match them against
// the configured script range, and translate byte offsets into line/column
// positions. Files are scanned in parallel; only the aggregated result list
// is observable.
package scan

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/corey/hanscan/internal/adapters/gitignore"
	"github.com/corey/hanscan/internal/adapters/treesitter"
	"github.com/corey/hanscan/internal/domain/position"
	"github.com/corey/hanscan/internal/domain/script"
	"github.com/corey/hanscan/internal/pkg/logger"
	"github.com/corey/hanscan/internal/pkg/worker"
	"github.com/corey/hanscan/internal/ports"
)

// DefaultMaxFileBytes is the per-file size cap; larger files are skipped.
const DefaultMaxFileBytes = 1 << 20

// Options configures a Scanner.
type Options struct {
	// Script is a range expression or named block; empty means "han".
	Script string
	// Jobs bounds parallel file scans; <= 0 means one per CPU.
	Jobs int
	// Cache, when non-nil, lets unchanged files skip the parse on rescans.
	Cache ports.Cache
	// MaxFileBytes caps per-file size; <= 0 means DefaultMaxFileBytes.
	MaxFileBytes int64
}

// Scanner audits a source tree for literals containing code points in a
// configured script range. Safe for repeated Scan calls.
type Scanner struct {
	walker    ports.Walker
	extractor ports.Extractor
	matcher   *script.Matcher
	cache     ports.Cache
	jobs      int
	maxBytes  int64
}

// New builds a Scanner. The only construction failure is an invalid script
// range expression; that is a configuration error, not a data error.
func New(opts Options) (*Scanner, error) {
	expr := opts.Script
	if strings.TrimSpace(expr) == "" {
		expr = script.DefaultName
	}
	matcher, err := script.New(expr)
	if err != nil {
		return nil, err
	}

	maxBytes := opts.MaxFileBytes
	if maxBytes <= 0 {
		maxBytes = DefaultMaxFileBytes
	}

	return &Scanner{
		walker:    gitignore.NewWalker(),
		extractor: treesitter.NewExtractor(),
		matcher:   matcher,
		cache:     opts.Cache,
		jobs:      opts.Jobs,
		maxBytes:  maxBytes,
	}, nil
}

// SplitExcludes parses a comma-separated exclude list, trimming whitespace
// and dropping empty segments.
func SplitExcludes(exclude string) []string {
	var patterns []string
	for _, part := range strings.Split(exclude, ",") {
		if p := strings.TrimSpace(part); p != "" {
			patterns = append(patterns, p)
		}
	}
	return patterns
}

// Scan walks root and returns every literal whose decoded text contains a
// matching code point. The result list is unordered; run-to-run ordering must
// not be relied upon. The scan either completes over the full file set or
// fails as a whole (bad root); per-file problems contribute nothing.
func (s *Scanner) Scan(root string, exclude string) ([]ports.ScanResult, error) {
	pool, err := worker.New(s.jobs)
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	acc := &accumulator{}
	var wg sync.WaitGroup

	walkErr := s.walker.Walk(root, SplitExcludes(exclude), func(path string) {
		ext := filepath.Ext(path)
		if !s.extractor.Supports(ext) {
			return
		}
		wg.Add(1)
		if submitErr := pool.Submit(func() {
			defer wg.Done()
			s.scanFile(path, acc)
		}); submitErr != nil {
			wg.Done()
		}
	})
	wg.Wait()
	if walkErr != nil {
		return nil, walkErr
	}

	return acc.snapshot(), nil
}

// scanFile runs the per-file pipeline to completion on its worker. Every
// failure mode here is recoverable: the file simply contributes no results.
func (s *Scanner) scanFile(path string, acc *accumulator) {
	info, err := os.Stat(path)
	if err != nil {
		return
	}
	if info.Size() > s.maxBytes {
		logger.Debug("skipping oversized file", zap.String("path", path), zap.Int64("size", info.Size()))
		return
	}

	size, mtime := info.Size(), info.ModTime().UnixNano()
	if s.cache != nil {
		if cached, hit := s.cache.Get(path, size, mtime); hit {
			acc.add(cached...)
			return
		}
	}

	source, err := os.ReadFile(path)
	if err != nil {
		logger.Debug("skipping unreadable file", zap.String("path", path), zap.Error(err))
		return
	}

	candidates, ok := s.extractor.Extract(path, source)
	if !ok {
		logger.Debug("skipping unparseable file", zap.String("path", path))
		return
	}

	results := s.matchCandidates(path, source, candidates)
	if s.cache != nil {
		if putErr := s.cache.Put(path, size, mtime, results); putErr != nil {
			logger.Debug("cache write failed", zap.String("path", path), zap.Error(putErr))
		}
	}
	acc.add(results...)
}

// matchCandidates tests each candidate against the script range and maps the
// first matching code point back to a source position. One result per
// candidate at most.
func (s *Scanner) matchCandidates(path string, source []byte, candidates []ports.Candidate) []ports.ScanResult {
	var index *position.Index // built lazily; most files have no matches

	var results []ports.ScanResult
	for _, c := range candidates {
		offset, found := s.matcher.FirstMatch(c.Value)
		if !found {
			continue
		}

		absolute := c.StartByte + offset
		text := c.Value
		switch c.Kind {
		case ports.StringLiteral:
			// Skip the opening quote when mapping back to source.
			absolute++
		case ports.MarkupText:
			text = strings.TrimSpace(c.Value)
			if text == "" {
				continue
			}
		}

		if index == nil {
			index = position.NewIndex(source)
		}
		line, col := index.LineCol(absolute)
		results = append(results, ports.ScanResult{
			FilePath: path,
			Line:     line,
			Column:   col,
			Text:     text,
		})
	}
	return results
}
