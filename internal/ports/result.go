package ports

// ScanResult is the only externally visible entity of a scan: one literal
// whose decoded text contains a matching code point. Line and Column are
// 1-based; Column counts bytes since the last line boundary. Ordering across
// files and within a file is unspecified.
type ScanResult struct {
	FilePath string `json:"filePath"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Text     string `json:"text"`
}
