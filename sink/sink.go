// Package sink persists discovered cliques. The search itself never does
// I/O; it hands annotated cliques to one or more sinks.
package sink

import "github.com/jtpeller/wordclique/report"

// A Sink accepts the annotated cliques discovered for one word length.
// A sink may be called once per length within a run.
type Sink interface {
	WriteCliques(length int, fuzzy bool, reports []report.Report) error
}
