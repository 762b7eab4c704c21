package vcover

import "github.com/jwalteros/dOmega/graph"

// MatchingSize runs only the Hopcroft–Karp stage on the bipartite double
// cover of sg and returns the matching cardinality. Exported for the
// König-property tests.
func MatchingSize(sg *graph.Subgraph) int {
	n := sg.N
	nt := &ntState{sg: sg,
		matchL: make([]int, n),
		matchR: make([]int, n),
	}
	for i := 0; i < n; i++ {
		nt.matchL[i] = -1
		nt.matchR[i] = -1
	}
	nt.hopcroftKarp()

	size := 0
	for i := 0; i < n; i++ {
		if nt.matchL[i] != -1 {
			size++
		}
	}

	return size
}
