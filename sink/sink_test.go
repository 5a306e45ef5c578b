package sink

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/jtpeller/wordclique/report"
)

func sampleReports() []report.Report {
	return []report.Report{
		report.Annotate([]string{"fjord", "vibex", "waltz", "nymph", "gucks"}),
		report.Annotate([]string{"fjord", "vibex", "waltz", "nymph", "treck"}),
	}
}

func TestCSVSink(t *testing.T) {
	is := is.New(t)

	dir := t.TempDir()
	s := &CSVSink{Dir: dir}
	is.NoErr(s.WriteCliques(5, false, sampleReports()))

	f, err := os.Open(filepath.Join(dir, "cliques-5.csv"))
	is.NoErr(err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	is.NoErr(err)
	is.Equal(len(rows), 2)
	is.Equal(rows[0], []string{"fjord vibex waltz nymph gucks", "false", "", "q"})
	// "treck" overlaps fjord, vibex and waltz, so the repeat flag is set.
	is.Equal(rows[1][1], "true")
	is.Equal(rows[1][2], "ert")
}

func TestCSVSinkFuzzyFileName(t *testing.T) {
	dir := t.TempDir()
	s := &CSVSink{Dir: dir}
	assert.NoError(t, s.WriteCliques(6, true, sampleReports()[:1]))

	_, err := os.Stat(filepath.Join(dir, "cliques-fuzzy-6.csv"))
	assert.NoError(t, err)
}

func TestCSVSinkNoCliquesNoFile(t *testing.T) {
	dir := t.TempDir()
	s := &CSVSink{Dir: dir}
	assert.NoError(t, s.WriteCliques(9, false, nil))

	entries, err := os.ReadDir(dir)
	assert.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCSVSinkCustomDelim(t *testing.T) {
	is := is.New(t)

	dir := t.TempDir()
	s := &CSVSink{Dir: dir, Delim: ';'}
	is.NoErr(s.WriteCliques(5, false, sampleReports()[:1]))

	f, err := os.Open(filepath.Join(dir, "cliques-5.csv"))
	is.NoErr(err)
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = ';'
	rows, err := r.ReadAll()
	is.NoErr(err)
	is.Equal(len(rows), 1)
}

func TestSQLiteSink(t *testing.T) {
	is := is.New(t)

	path := filepath.Join(t.TempDir(), "cliques.db")
	s, err := NewSQLiteSink(path)
	is.NoErr(err)
	defer s.Close()

	is.NoErr(s.WriteCliques(5, false, sampleReports()))
	is.NoErr(s.WriteCliques(12, true, sampleReports()[:1]))

	var runs, cliques int
	is.NoErr(s.db.QueryRow("SELECT COUNT(*) FROM runs").Scan(&runs))
	is.NoErr(s.db.QueryRow("SELECT COUNT(*) FROM cliques").Scan(&cliques))
	is.Equal(runs, 2)
	is.Equal(cliques, 3)

	var words, missing string
	is.NoErr(s.db.QueryRow(
		"SELECT words, missing FROM cliques ORDER BY id LIMIT 1").Scan(&words, &missing))
	is.Equal(words, "fjord vibex waltz nymph gucks")
	is.Equal(missing, "q")
}

func TestMemorySink(t *testing.T) {
	is := is.New(t)

	m := NewMemorySink()
	is.NoErr(m.WriteCliques(5, false, sampleReports()))
	is.Equal(len(m.Cliques(5)), 2)
	is.Equal(len(m.Cliques(6)), 0)
}
