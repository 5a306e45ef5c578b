package wordgraph

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/samber/lo"
)

// WriteCSV dumps the built graph, one row per node: the word, the fuzzy
// flag, and the node's neighbor indices in ascending order. Useful for
// eyeballing the adjacency relation and for diffing strict vs fuzzy runs.
func (g *Graph) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	for _, n := range g.Nodes {
		neighbors := lo.Keys(n.Neighbors)
		sort.Ints(neighbors)
		rec := []string{n.Word, strconv.FormatBool(g.Fuzzy), fmt.Sprint(neighbors)}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("wordgraph: writing graph row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
