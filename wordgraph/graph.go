// Package wordgraph builds the adjacency graph for the clique search: two
// words are neighbors when they may appear together in one clique.
package wordgraph

import (
	"context"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/jtpeller/wordclique/letterset"
)

const (
	// MaxAlphabet is the number of letters available to a clique.
	MaxAlphabet = 26
	// maxFuzzy caps how many vowel overlaps a single node may spend.
	maxFuzzy = 3
)

// A Graph holds the filtered candidate words for one length and, once
// Build has run, each word's neighbor set. Nodes are immutable after
// Build; the clique search only reads them.
type Graph struct {
	Nodes   []*Node
	Length  int
	Fuzzy   bool
	workers int
}

type GraphOption func(*Graph)

// WithFuzzy allows budgeted single-vowel overlaps between neighbors.
func WithFuzzy() GraphOption {
	return func(g *Graph) { g.Fuzzy = true }
}

// WithWorkers sets how many goroutines Build shards its outer loop over.
// Zero or negative means one per CPU.
func WithWorkers(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.workers = n
		}
	}
}

// NewGraph filters words down to the candidates of the given length. The
// word list must be non-empty; zero survivors is fine (there is simply
// nothing to search).
func NewGraph(words []string, length int, opts ...GraphOption) (*Graph, error) {
	if len(words) == 0 {
		return nil, ErrNoWords
	}
	nodes, err := Filter(words, length)
	if err != nil {
		return nil, err
	}
	g := &Graph{Nodes: nodes, Length: length, workers: runtime.NumCPU()}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Build computes every node's neighbor set. Two words are neighbors when
// their letter sets are disjoint; in fuzzy mode a single shared vowel is
// also accepted, at most maxFuzzy times per node and never spending the
// same vowel twice. The budget and vowel pool are scoped to the outer
// node, so the fuzzy relation is directed: j being a neighbor of i says
// nothing about i being a neighbor of j.
func (g *Graph) Build(ctx context.Context) error {
	start := time.Now()
	grp, ctx := errgroup.WithContext(ctx)
	workers := g.workers
	// Each worker owns a disjoint stripe of nodes, so the neighbor sets
	// need no locking.
	for w := 0; w < workers; w++ {
		w := w
		grp.Go(func() error {
			for i := w; i < len(g.Nodes); i += workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				g.buildNeighbors(g.Nodes[i])
			}
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return err
	}
	zerolog.Ctx(ctx).Debug().
		Int("length", g.Length).
		Int("nodes", len(g.Nodes)).
		Bool("fuzzy", g.Fuzzy).
		Dur("elapsed", time.Since(start)).
		Msg("graph built")
	return nil
}

func (g *Graph) buildNeighbors(n *Node) {
	fuzzyUsed := 0
	pool := letterset.Vowels
	for _, cand := range g.Nodes {
		// A node always overlaps itself fully, so it can never be its
		// own neighbor.
		overlap := n.Letters.Intersect(cand.Letters)
		switch {
		case overlap == 0:
			n.Neighbors[cand.Index] = struct{}{}
		case g.Fuzzy && overlap.Count() == 1 && overlap.Intersect(pool) != 0 && fuzzyUsed < maxFuzzy:
			n.Neighbors[cand.Index] = struct{}{}
			pool &^= overlap
			fuzzyUsed++
		}
	}
}
