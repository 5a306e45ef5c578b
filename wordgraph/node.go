package wordgraph

import (
	"strings"

	"github.com/jtpeller/wordclique/letterset"
)

// A Node wraps one candidate word: its index in filter order, its letter
// set, and the indices of the words it may share a clique with.
type Node struct {
	Index     int
	Word      string
	Letters   letterset.LetterSet
	Neighbors map[int]struct{}
}

// Filter keeps the words of exactly the given length whose letters are all
// distinct, assigning indices in first-seen order. That order is the
// tie-break order for everything downstream, so it must not be disturbed.
func Filter(words []string, length int) ([]*Node, error) {
	if length < 1 || length > MaxAlphabet {
		return nil, ErrBadLength
	}
	nodes := []*Node{}
	for _, w := range words {
		w = strings.TrimRight(w, "\r\n")
		if len(w) != length {
			continue
		}
		ls, distinct := letterset.MakeLetterSet(w)
		if !distinct {
			continue
		}
		nodes = append(nodes, &Node{
			Index:     len(nodes),
			Word:      w,
			Letters:   ls,
			Neighbors: map[int]struct{}{},
		})
	}
	return nodes, nil
}
