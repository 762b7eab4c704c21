package graph

import (
	"fmt"
	"io"
)

// Summary returns the one-line diagnostic header for the graph:
// sizes, degree extremes and read time. The name is not included.
func (g *Graph) Summary() string {
	return fmt.Sprintf("n=%d m=%d delta=%d Delta=%d readTime=%gs",
		g.N, g.M, g.MinDegree, g.MaxDegree, g.ReadTime.Seconds())
}

// WriteAdjacency dumps the full adjacency structure, one vertex per line,
// using external names. Intended for debug-level diagnostics only.
func (g *Graph) WriteAdjacency(w io.Writer) {
	for v := 0; v < g.N; v++ {
		fmt.Fprintf(w, "%d(%d):", g.Alias[v], g.Degree[v])
		for _, u := range g.Neighbors(v) {
			fmt.Fprintf(w, " %d", g.Alias[u])
		}
		fmt.Fprintln(w)
	}
}
