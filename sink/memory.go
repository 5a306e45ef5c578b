package sink

import (
	"sync"

	"github.com/jtpeller/wordclique/report"
)

// MemorySink collects results in memory, keyed by word length. Handy for
// tests and for callers that post-process cliques themselves.
type MemorySink struct {
	mu      sync.Mutex
	results map[int][]report.Report
}

func NewMemorySink() *MemorySink {
	return &MemorySink{results: make(map[int][]report.Report)}
}

func (m *MemorySink) WriteCliques(length int, fuzzy bool, reports []report.Report) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results[length] = append(m.results[length], reports...)
	return nil
}

// Cliques returns the reports collected for one word length.
func (m *MemorySink) Cliques(length int) []report.Report {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.results[length]
}
