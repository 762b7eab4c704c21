package vcover_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/jwalteros/dOmega/graph"
)

// buildSubgraph assembles a Subgraph on n local positions from an edge
// slice, with sorted symmetric adjacency, the shape the kernels expect.
func buildSubgraph(n int, edges [][2]int) graph.Subgraph {
	sg := graph.Subgraph{
		N:        n,
		Created:  true,
		Vertices: make([]graph.Vertex, n),
		AdjLists: make([][]int, n),
	}
	seen := make(map[[2]int]bool)
	for _, e := range edges {
		u, v := e[0], e[1]
		if u == v {
			continue
		}
		if u > v {
			u, v = v, u
		}
		if seen[[2]int{u, v}] {
			continue
		}
		seen[[2]int{u, v}] = true
		sg.AdjLists[u] = append(sg.AdjLists[u], v)
		sg.AdjLists[v] = append(sg.AdjLists[v], u)
		sg.M++
	}
	largest := 0
	for i := 0; i < n; i++ {
		sort.Ints(sg.AdjLists[i])
		sg.Vertices[i] = graph.Vertex{ID: i, Degree: len(sg.AdjLists[i]), Pos: i}
		if len(sg.AdjLists[i]) > largest {
			largest = len(sg.AdjLists[i])
			sg.LargestDegreeVertex = i
		}
	}

	return sg
}

// randomEdges draws each pair independently with probability p.
func randomEdges(n int, p float64, rng *rand.Rand) [][2]int {
	var edges [][2]int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				edges = append(edges, [2]int{i, j})
			}
		}
	}

	return edges
}

// assertSubgraphInvariants checks sortedness, symmetry and the degree
// sum of a subgraph.
func assertSubgraphInvariants(t *testing.T, sg *graph.Subgraph) {
	t.Helper()
	degreeSum := 0
	for i := 0; i < sg.N; i++ {
		adj := sg.AdjLists[i]
		if !sort.IntsAreSorted(adj) {
			t.Fatalf("adjacency of %d not sorted: %v", i, adj)
		}
		if got := sg.Vertices[i].Degree; got != len(adj) {
			t.Fatalf("vertex %d degree %d, list length %d", i, got, len(adj))
		}
		degreeSum += len(adj)
		for _, u := range adj {
			back := sort.SearchInts(sg.AdjLists[u], i)
			if back >= len(sg.AdjLists[u]) || sg.AdjLists[u][back] != i {
				t.Fatalf("edge %d-%d not symmetric", i, u)
			}
		}
	}
	if degreeSum != 2*sg.M {
		t.Fatalf("degree sum %d, want 2m=%d", degreeSum, 2*sg.M)
	}
}

// minCoverBrute finds the minimum vertex cover size by subset
// enumeration. Only for tiny n.
func minCoverBrute(n int, edges [][2]int) int {
	best := n
	for mask := 0; mask < 1<<n; mask++ {
		covered := true
		for _, e := range edges {
			if mask&(1<<e[0]) == 0 && mask&(1<<e[1]) == 0 {
				covered = false
				break
			}
		}
		if !covered {
			continue
		}
		size := 0
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				size++
			}
		}
		if size < best {
			best = size
		}
	}

	return best
}
