package sink

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/jtpeller/wordclique/report"
)

// CSVSink writes one file per word length into Dir: cliques-<L>.csv, or
// cliques-fuzzy-<L>.csv for fuzzy runs. Each row is the clique's words,
// whether any letter repeated, the repeated letters, and the missing
// letters. A length with no cliques produces no file.
type CSVSink struct {
	Dir   string
	Delim rune // zero means comma
}

func (s *CSVSink) WriteCliques(length int, fuzzy bool, reports []report.Report) error {
	if len(reports) == 0 {
		log.Debug().Int("length", length).Msg("no cliques; skipping file")
		return nil
	}
	name := fmt.Sprintf("cliques-%d.csv", length)
	if fuzzy {
		name = fmt.Sprintf("cliques-fuzzy-%d.csv", length)
	}
	path := filepath.Join(s.Dir, name)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("sink: creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if s.Delim != 0 {
		w.Comma = s.Delim
	}
	for _, r := range reports {
		rec := []string{
			strings.Join(r.Words, " "),
			strconv.FormatBool(r.Repeats != 0),
			r.Repeats.String(),
			r.Missing.String(),
		}
		if err := w.Write(rec); err != nil {
			return fmt.Errorf("sink: writing %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("sink: flushing %s: %w", path, err)
	}
	log.Info().Str("path", path).Int("cliques", len(reports)).Msg("wrote clique file")
	return nil
}
