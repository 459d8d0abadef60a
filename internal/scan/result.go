package scan

import (
	"sync"

	"github.com/corey/hanscan/internal/ports"
)

// accumulator is the shared collector for concurrent per-file scans. Each
// append holds the lock only for the copy; nothing reads the slice until all
// workers have finished.
type accumulator struct {
	mu      sync.Mutex
	results []ports.ScanResult
}

func (a *accumulator) add(results ...ports.ScanResult) {
	if len(results) == 0 {
		return
	}
	a.mu.Lock()
	a.results = append(a.results, results...)
	a.mu.Unlock()
}

// snapshot drains the accumulator. Callers must not invoke it while scans are
// still running.
func (a *accumulator) snapshot() []ports.ScanResult {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := a.results
	a.results = nil
	return out
}
