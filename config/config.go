// Package config wires together the program's knobs from flags, the
// environment (WORDCLIQUE_ prefix), and defaults, in that order of
// precedence.
package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	WordFile   string
	OutputDir  string
	Lengths    []int
	Fuzzy      bool
	Workers    int
	SQLitePath string
	Debug      bool
}

func Load(args []string) (*Config, error) {
	fs := pflag.NewFlagSet("wordclique", pflag.ContinueOnError)
	fs.String("wordfile", "./words/words.txt", "path to the .txt word list")
	fs.String("outputdir", "./cliques", "directory for clique CSV files")
	fs.IntSlice("lengths", []int{7, 8, 9, 10, 11, 12}, "word lengths to search")
	fs.Bool("fuzzy", false, "allow budgeted single-vowel overlaps")
	fs.Int("workers", 0, "worker goroutines (0 = one per CPU)")
	fs.String("sqlite", "", "optional sqlite database to also record cliques in")
	fs.Bool("debug", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix("wordclique")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}

	return &Config{
		WordFile:   v.GetString("wordfile"),
		OutputDir:  v.GetString("outputdir"),
		Lengths:    v.GetIntSlice("lengths"),
		Fuzzy:      v.GetBool("fuzzy"),
		Workers:    v.GetInt("workers"),
		SQLitePath: v.GetString("sqlite"),
		Debug:      v.GetBool("debug"),
	}, nil
}
