package main

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jtpeller/wordclique/config"
	"github.com/jtpeller/wordclique/runner"
	"github.com/jtpeller/wordclique/sink"
	"github.com/jtpeller/wordclique/wordfile"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("bad configuration")
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	words, err := wordfile.ReadLines(cfg.WordFile)
	if err != nil {
		log.Fatal().Err(err).Str("wordfile", cfg.WordFile).Msg("could not read word list")
	}
	if err := wordfile.EnsureDir(cfg.OutputDir); err != nil {
		log.Fatal().Err(err).Msg("could not prepare output directory")
	}

	sinks := []sink.Sink{&sink.CSVSink{Dir: cfg.OutputDir}}
	if cfg.SQLitePath != "" {
		sq, err := sink.NewSQLiteSink(cfg.SQLitePath)
		if err != nil {
			log.Fatal().Err(err).Msg("could not open sqlite sink")
		}
		defer sq.Close()
		sinks = append(sinks, sq)
	}

	start := time.Now()
	r := runner.New(words, sinks, runner.Options{
		Lengths: cfg.Lengths,
		Fuzzy:   cfg.Fuzzy,
		Workers: cfg.Workers,
	})
	// Attach the logger so the graph build and search report their
	// timings; they stay silent (but compute identically) without it.
	ctx := log.Logger.WithContext(context.Background())
	results, err := r.Run(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("run failed")
	}

	total := 0
	for _, res := range results {
		total += res.Cliques
	}
	log.Info().
		Int("lengths", len(results)).
		Int("totalCliques", total).
		Dur("elapsed", time.Since(start)).
		Msg("all lengths done")
}
