package config

import (
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	is := is.New(t)

	cfg, err := Load(nil)
	is.NoErr(err)
	is.Equal(cfg.WordFile, "./words/words.txt")
	is.Equal(cfg.OutputDir, "./cliques")
	is.Equal(cfg.Lengths, []int{7, 8, 9, 10, 11, 12})
	is.True(!cfg.Fuzzy)
	is.Equal(cfg.Workers, 0)
	is.Equal(cfg.SQLitePath, "")
}

func TestLoadFlags(t *testing.T) {
	is := is.New(t)

	cfg, err := Load([]string{
		"--wordfile", "/tmp/w.txt",
		"--lengths", "5,6",
		"--fuzzy",
		"--workers", "2",
		"--sqlite", "/tmp/c.db",
	})
	is.NoErr(err)
	is.Equal(cfg.WordFile, "/tmp/w.txt")
	is.Equal(cfg.Lengths, []int{5, 6})
	is.True(cfg.Fuzzy)
	is.Equal(cfg.Workers, 2)
	is.Equal(cfg.SQLitePath, "/tmp/c.db")
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("WORDCLIQUE_OUTPUTDIR", "/tmp/out")
	t.Setenv("WORDCLIQUE_FUZZY", "true")

	cfg, err := Load(nil)
	assert.NoError(t, err)
	assert.Equal(t, "/tmp/out", cfg.OutputDir)
	assert.True(t, cfg.Fuzzy)
}

func TestLoadBadFlag(t *testing.T) {
	_, err := Load([]string{"--nope"})
	assert.Error(t, err)
}
