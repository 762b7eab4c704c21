package cli

import (
	"fmt"
	"io"

	"github.com/jwalteros/dOmega/degeneracy"
	"github.com/jwalteros/dOmega/graph"
)

// writeOrdering dumps the degeneracy ordering, per-vertex right-degrees
// and positions using external vertex names. Verbose diagnostics only;
// on large graphs this is the dominant output.
func writeOrdering(w io.Writer, g *graph.Graph, deg *degeneracy.Result) {
	fmt.Fprintf(w, "order: [")
	for _, v := range deg.Ordering {
		fmt.Fprintf(w, " %d", g.Alias[v])
	}
	fmt.Fprintln(w, " ]")

	fmt.Fprintln(w, "rightDegree:")
	for v := 0; v < g.N; v++ {
		fmt.Fprintf(w, "  %d: %d\n", g.Alias[v], deg.RightDegree[v])
	}

	fmt.Fprintln(w, "position:")
	for v := 0; v < g.N; v++ {
		fmt.Fprintf(w, "  %d: %d\n", g.Alias[v], deg.Position[v])
	}
}
