// Package runner drives the whole pipeline over a set of word lengths:
// filter, graph build, clique search, annotation, and the sinks.
package runner

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/jtpeller/wordclique/cliquer"
	"github.com/jtpeller/wordclique/report"
	"github.com/jtpeller/wordclique/sink"
	"github.com/jtpeller/wordclique/wordgraph"
)

type Options struct {
	Lengths []int
	Fuzzy   bool
	Workers int
}

type Runner struct {
	words []string
	sinks []sink.Sink
	opts  Options
}

func New(words []string, sinks []sink.Sink, opts Options) *Runner {
	return &Runner{words: words, sinks: sinks, opts: opts}
}

// A LengthResult records what one word length produced.
type LengthResult struct {
	Length     int
	Candidates int
	Cliques    int
	GraphBuild time.Duration
	Search     time.Duration
}

// Run processes every requested length in order. Argument problems (a
// length outside [1,26], or one whose clique size would be below 2) fail
// fast before any graph work; a length that simply yields no candidate
// words or no cliques is a normal outcome and the run moves on.
func (r *Runner) Run(ctx context.Context) ([]LengthResult, error) {
	if len(r.words) == 0 {
		return nil, wordgraph.ErrNoWords
	}
	for _, length := range r.opts.Lengths {
		if length < 1 || length > wordgraph.MaxAlphabet {
			return nil, wordgraph.ErrBadLength
		}
		if cliquer.CliqueSize(length) < 2 {
			return nil, cliquer.ErrCliqueTooSmall
		}
	}

	results := make([]LengthResult, 0, len(r.opts.Lengths))
	for _, length := range r.opts.Lengths {
		res, err := r.runLength(ctx, length)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

func (r *Runner) runLength(ctx context.Context, length int) (LengthResult, error) {
	res := LengthResult{Length: length}

	gopts := []wordgraph.GraphOption{wordgraph.WithWorkers(r.opts.Workers)}
	if r.opts.Fuzzy {
		gopts = append(gopts, wordgraph.WithFuzzy())
	}
	g, err := wordgraph.NewGraph(r.words, length, gopts...)
	if err != nil {
		return res, err
	}
	res.Candidates = len(g.Nodes)
	if len(g.Nodes) == 0 {
		log.Info().Int("length", length).Msg("no qualifying words; none found")
		return res, nil
	}

	start := time.Now()
	if err := g.Build(ctx); err != nil {
		return res, err
	}
	res.GraphBuild = time.Since(start)

	start = time.Now()
	solver := cliquer.NewSolver(g, cliquer.WithWorkers(r.opts.Workers))
	cliques, err := solver.Solve(ctx)
	if err != nil {
		return res, err
	}
	res.Search = time.Since(start)
	res.Cliques = len(cliques)

	if len(cliques) == 0 {
		log.Info().Int("length", length).Msg("no cliques found")
		return res, nil
	}

	reports := lo.Map(cliques, func(cl []int, _ int) report.Report {
		return report.FromIndices(g, cl)
	})
	for _, s := range r.sinks {
		if err := s.WriteCliques(length, r.opts.Fuzzy, reports); err != nil {
			return res, err
		}
	}

	log.Info().
		Int("length", length).
		Int("candidates", res.Candidates).
		Int("cliques", res.Cliques).
		Dur("graphBuild", res.GraphBuild).
		Dur("search", res.Search).
		Msg("length done")
	return res, nil
}
