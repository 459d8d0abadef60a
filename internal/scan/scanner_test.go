package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corey/hanscan/internal/adapters/boltcache"
)

func writeFile(t *testing.T, root, rel, content string) string {
	t.Helper()
	full := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
	return full
}

func newScanner(t *testing.T) *Scanner {
	t.Helper()
	s, err := New(Options{})
	require.NoError(t, err)
	return s
}

func TestSplitExcludes(t *testing.T) {
	assert.Nil(t, SplitExcludes(""))
	assert.Nil(t, SplitExcludes(" , ,, "))
	assert.Equal(t, []string{"dist", "*.min.js"}, SplitExcludes(" dist , *.min.js ,"))
}

func TestNew_InvalidScriptRangeIsFatal(t *testing.T) {
	_, err := New(Options{Script: "9FA5-4E00"})
	assert.Error(t, err)

	_, err = New(Options{Script: "no-such-block"})
	assert.Error(t, err)
}

func TestScan_StringLiteralPosition(t *testing.T) {
	// Column = opening quote column + match offset in the value + 1.
	dir := t.TempDir()
	path := writeFile(t, dir, "a.ts", "const x = \"你好\";\n")

	results, err := newScanner(t).Scan(dir, "")
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Equal(t, path, results[0].FilePath)
	assert.Equal(t, 1, results[0].Line)
	assert.Equal(t, 12, results[0].Column)
	assert.Equal(t, "你好", results[0].Text)
}

func TestScan_MarkupTextTrimmed(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.tsx", "export const C = () => <div>   混合 text  </div>;\n")

	results, err := newScanner(t).Scan(dir, "")
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Equal(t, "混合 text", results[0].Text)
	assert.Equal(t, 1, results[0].Line)
	// First ideograph of the raw run: after "export const C = () => <div>"
	// (28 bytes) and three spaces.
	assert.Equal(t, 32, results[0].Column)
}

func TestScan_TemplateSegmentCookedValue(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "t.ts", "const t = `\\u4E2D文`;\n")

	results, err := newScanner(t).Scan(dir, "")
	require.NoError(t, err)
	require.Len(t, results, 1)

	// Escapes resolved: the reported text is the cooked segment value.
	assert.Equal(t, "中文", results[0].Text)
	assert.Equal(t, 1, results[0].Line)
	// Segment starts right after the backtick at byte 11.
	assert.Equal(t, 12, results[0].Column)
}

func TestScan_SyntaxErrorFileSkipped(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bad.ts", "const x = ;\nconst y = \"中\";\n")
	writeFile(t, dir, "good.ts", "const z = \"文\";\n")

	results, err := newScanner(t).Scan(dir, "")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "文", results[0].Text)
}

func TestScan_RootNotDirectory(t *testing.T) {
	dir := t.TempDir()

	_, err := newScanner(t).Scan(filepath.Join(dir, "missing"), "")
	assert.Error(t, err)

	file := writeFile(t, dir, "f.ts", "")
	_, err = newScanner(t).Scan(file, "")
	assert.Error(t, err)
}

func TestScan_UnrecognizedExtensionsIgnored(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "notes.md", "# 中文标题\n")
	writeFile(t, dir, "data.json", "{\"k\": \"中\"}\n")
	writeFile(t, dir, "upper.TS", "const x = \"中\";\n")

	results, err := newScanner(t).Scan(dir, "")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestScan_ExcludePatternsAdditive(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".gitignore", "dist/\n")
	writeFile(t, dir, "dist/gen.ts", "const a = \"一\";\n")
	writeFile(t, dir, "vendor/lib.ts", "const b = \"二\";\n")
	writeFile(t, dir, "src/app.ts", "const c = \"三\";\n")

	results, err := newScanner(t).Scan(dir, "vendor")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "三", results[0].Text)
}

func TestScan_Idempotent(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 8; i++ {
		writeFile(t, dir, fmt.Sprintf("f%d.ts", i), fmt.Sprintf("const x%d = \"第%d个\";\n", i, i))
	}
	writeFile(t, dir, "deep/nested/page.tsx", "const E = () => <p>页面</p>;\n")

	s := newScanner(t)
	first, err := s.Scan(dir, "")
	require.NoError(t, err)
	second, err := s.Scan(dir, "")
	require.NoError(t, err)

	// Ordering is unspecified: compare as sets.
	assert.ElementsMatch(t, first, second)
	assert.Len(t, first, 9)
}

func TestScan_OneResultPerCandidate(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "multi.ts", "const s = \"很多中文字符\";\n")

	results, err := newScanner(t).Scan(dir, "")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "很多中文字符", results[0].Text)
}

func TestScan_CustomScriptRange(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "k.ts", "const a = \"カタカナ\";\nconst b = \"中文\";\n")

	s, err := New(Options{Script: "katakana"})
	require.NoError(t, err)
	results, err := s.Scan(dir, "")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "カタカナ", results[0].Text)
}

func TestScan_ResultsFromConcurrentWorkersComplete(t *testing.T) {
	dir := t.TempDir()
	const n = 40
	for i := 0; i < n; i++ {
		writeFile(t, dir, fmt.Sprintf("sub%d/f.ts", i), fmt.Sprintf("const v = \"值%d\";\n", i))
	}

	s, err := New(Options{Jobs: 4})
	require.NoError(t, err)
	results, err := s.Scan(dir, "")
	require.NoError(t, err)

	texts := make(map[string]bool, len(results))
	for _, r := range results {
		texts[r.Text] = true
	}
	assert.Len(t, results, n)
	assert.Len(t, texts, n)
}

func TestScan_CacheDoesNotChangeResults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.ts", "const x = \"你好\";\n")
	writeFile(t, dir, "b.tsx", "const C = () => <i>好的</i>;\n")

	cache, err := boltcache.Open(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	defer cache.Close()

	plain, err := newScanner(t).Scan(dir, "")
	require.NoError(t, err)

	cached, err := New(Options{Cache: cache})
	require.NoError(t, err)

	cold, err := cached.Scan(dir, "")
	require.NoError(t, err)
	assert.ElementsMatch(t, plain, cold)

	// Second pass serves every file from the cache.
	warm, err := cached.Scan(dir, "")
	require.NoError(t, err)
	assert.ElementsMatch(t, plain, warm)
}

func TestScan_EmptyTreeEmptyResult(t *testing.T) {
	results, err := newScanner(t).Scan(t.TempDir(), "")
	require.NoError(t, err)
	assert.Empty(t, results)
}
