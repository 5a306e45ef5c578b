// Package cliquer enumerates all k-word cliques in a word graph, where
// k = floor(26 / word length): sets of k words that together use each
// letter of the alphabet at most once (or nearly so, when the graph was
// built in fuzzy mode).
package cliquer

import (
	"context"
	"runtime"
	"slices"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/jtpeller/wordclique/wordgraph"
)

// A Solver searches a built graph for cliques. The graph is read-only
// during the search, so workers share it freely.
type Solver struct {
	graph   *wordgraph.Graph
	adj     [][]int
	workers int
}

type SolverOption func(*Solver)

// WithWorkers sets how many goroutines Solve shards the starting indices
// over. Zero or negative means one per CPU.
func WithWorkers(n int) SolverOption {
	return func(s *Solver) {
		if n > 0 {
			s.workers = n
		}
	}
}

func NewSolver(g *wordgraph.Graph, opts ...SolverOption) *Solver {
	s := &Solver{graph: g, workers: runtime.NumCPU()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CliqueSize returns how many words a clique must contain for the given
// word length: one word per floor(26/length) letters.
func CliqueSize(length int) int {
	return wordgraph.MaxAlphabet / length
}

// Solve finds every clique in the graph, each as a strictly increasing
// tuple of node indices. The increasing order is what keeps every clique
// from appearing once per permutation. Results are sorted lexicographically
// so the output is identical no matter how many workers ran.
func (s *Solver) Solve(ctx context.Context) ([][]int, error) {
	k := CliqueSize(s.graph.Length)
	if k < 2 {
		return nil, ErrCliqueTooSmall
	}
	start := time.Now()

	// Sorted neighbor slices; the recursion wants ordered candidate lists.
	s.adj = lo.Map(s.graph.Nodes, func(n *wordgraph.Node, _ int) []int {
		idxs := lo.Keys(n.Neighbors)
		sort.Ints(idxs)
		return idxs
	})

	// Shard the starting indices. Each worker appends to its own slice,
	// so no locking; the slices are merged after Wait.
	found := make([][][]int, s.workers)
	grp, ctx := errgroup.WithContext(ctx)
	workers := s.workers
	for w := 0; w < workers; w++ {
		w := w
		grp.Go(func() error {
			for i := w; i < len(s.graph.Nodes); i += workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				s.extend(k-1, []int{i}, s.adj[i], &found[w])
			}
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	cliques := lo.Flatten(found)
	slices.SortFunc(cliques, slices.Compare)

	zerolog.Ctx(ctx).Debug().
		Int("length", s.graph.Length).
		Int("cliqueSize", k).
		Int("found", len(cliques)).
		Dur("elapsed", time.Since(start)).
		Msg("clique search done")
	return cliques, nil
}

// extend grows an increasing index chain. candidates holds, in ascending
// order, the indices that neighbor every word already in the chain;
// remaining is how many words the chain still needs.
func (s *Solver) extend(remaining int, chain []int, candidates []int, out *[][]int) {
	last := chain[len(chain)-1]
	if remaining == 1 {
		// Close out the branch: any forward candidate completes a clique.
		for _, r := range candidates {
			if r < last {
				continue
			}
			*out = append(*out, append(slices.Clone(chain), r))
		}
		return
	}
	for _, c := range candidates {
		if c < last {
			continue
		}
		next := forwardIntersect(candidates, s.graph.Nodes[c].Neighbors)
		// Not enough candidates left to ever finish the clique through c.
		if len(next) < remaining-1 {
			continue
		}
		s.extend(remaining-1, append(slices.Clone(chain), c), next, out)
	}
}

// forwardIntersect filters the ascending candidate list down to the
// indices that are also neighbors of the node just added.
func forwardIntersect(candidates []int, neighbors map[int]struct{}) []int {
	next := make([]int, 0, len(candidates))
	for _, idx := range candidates {
		if _, ok := neighbors[idx]; ok {
			next = append(next, idx)
		}
	}
	return next
}
