// Package report expands a discovered clique into its letter statistics:
// which letters the clique uses more than once, and which it never uses.
package report

import (
	"strings"

	"github.com/samber/lo"

	"github.com/jtpeller/wordclique/letterset"
	"github.com/jtpeller/wordclique/wordgraph"
)

// A Report is one annotated clique. Repeats holds the letters appearing
// at least twice across all the clique's words (a fuzzy-matched vowel
// always shows up here); Missing holds the letters appearing nowhere.
type Report struct {
	Words   []string
	Repeats letterset.LetterSet
	Missing letterset.LetterSet
}

// Annotate builds the frequency table for a clique's words,
// case-insensitively, and derives the repeated and missing letter sets.
// It never filters or re-validates the clique.
func Annotate(words []string) Report {
	var counts [wordgraph.MaxAlphabet]int
	for _, w := range words {
		for _, r := range strings.ToLower(w) {
			if r >= 'a' && r <= 'z' {
				counts[r-'a']++
			}
		}
	}
	var repeats, missing letterset.LetterSet
	for i, c := range counts {
		switch {
		case c == 0:
			missing |= 1 << i
		case c > 1:
			repeats |= 1 << i
		}
	}
	return Report{Words: words, Repeats: repeats, Missing: missing}
}

// FromIndices expands an index clique into its words and annotates it.
func FromIndices(g *wordgraph.Graph, clique []int) Report {
	words := lo.Map(clique, func(idx int, _ int) string {
		return g.Nodes[idx].Word
	})
	return Annotate(words)
}
