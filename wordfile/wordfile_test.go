package wordfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
)

func TestReadLines(t *testing.T) {
	is := is.New(t)

	path := filepath.Join(t.TempDir(), "words.txt")
	is.NoErr(os.WriteFile(path, []byte("fjord\r\nvibex\nwaltz \n\n"), 0o644))

	lines, err := ReadLines(path)
	is.NoErr(err)
	is.Equal(lines, []string{"fjord", "vibex", "waltz", ""})
}

func TestReadLinesNotTxt(t *testing.T) {
	_, err := ReadLines("words.csv")
	if !errors.Is(err, ErrNotWordFile) {
		t.Errorf("expected ErrNotWordFile, got %v", err)
	}
}

func TestReadLinesMissingFile(t *testing.T) {
	_, err := ReadLines(filepath.Join(t.TempDir(), "nope.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestEnsureDir(t *testing.T) {
	is := is.New(t)

	dir := filepath.Join(t.TempDir(), "cliques")
	is.NoErr(EnsureDir(dir))

	info, err := os.Stat(dir)
	is.NoErr(err)
	is.True(info.IsDir())

	// Idempotent.
	is.NoErr(EnsureDir(dir))
}

func TestEnsureDirFileInTheWay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cliques")
	assert.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	assert.Error(t, EnsureDir(path))
}
