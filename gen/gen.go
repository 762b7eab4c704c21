// Package gen builds small deterministic graphs: the classic families
// the test suites probe the pipeline with. Every constructor emits edges
// in a fixed order over vertices 0..n-1 and delegates deduplication to
// graph.Build, so repeated calls yield byte-identical CSR layouts.
package gen

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/jwalteros/dOmega/graph"
)

// ErrSizeMismatch is returned by Disjoint when sizes and blocks disagree.
var ErrSizeMismatch = errors.New("gen: sizes and blocks length mismatch")

// Complete returns K_n: every unordered pair {i,j}, i<j, exactly once.
func Complete(n int) (*graph.Graph, error) {
	edges := make([][2]int, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, [2]int{i, j})
		}
	}

	return graph.Build(fmt.Sprintf("K%d", n), n, edges)
}

// Cycle returns C_n with edges i—(i+1) mod n.
func Cycle(n int) (*graph.Graph, error) {
	edges := make([][2]int, 0, n)
	for i := 0; i < n; i++ {
		edges = append(edges, [2]int{i, (i + 1) % n})
	}

	return graph.Build(fmt.Sprintf("C%d", n), n, edges)
}

// Path returns P_n with edges i—(i+1).
func Path(n int) (*graph.Graph, error) {
	edges := make([][2]int, 0, n-1)
	for i := 0; i+1 < n; i++ {
		edges = append(edges, [2]int{i, i + 1})
	}

	return graph.Build(fmt.Sprintf("P%d", n), n, edges)
}

// Star returns K_{1,n}: vertex 0 joined to 1..n.
func Star(n int) (*graph.Graph, error) {
	edges := make([][2]int, 0, n)
	for i := 1; i <= n; i++ {
		edges = append(edges, [2]int{0, i})
	}

	return graph.Build(fmt.Sprintf("S%d", n), n+1, edges)
}

// Petersen returns the Petersen graph: outer 5-cycle 0..4, inner
// pentagram 5..9, spokes i—i+5. 3-regular, girth 5, ω=2.
func Petersen() (*graph.Graph, error) {
	edges := make([][2]int, 0, 15)
	for i := 0; i < 5; i++ {
		edges = append(edges,
			[2]int{i, (i + 1) % 5},
			[2]int{5 + i, 5 + (i+2)%5},
			[2]int{i, i + 5},
		)
	}

	return graph.Build("petersen", 10, edges)
}

// Disjoint returns the disjoint union of the given edge sets, each
// block shifted past the previous one. sizes[i] is block i's vertex
// count; extra isolated vertices are allowed by oversizing a block.
func Disjoint(name string, sizes []int, blocks [][][2]int) (*graph.Graph, error) {
	if len(sizes) != len(blocks) {
		return nil, fmt.Errorf("%w: %d sizes, %d blocks", ErrSizeMismatch, len(sizes), len(blocks))
	}
	var edges [][2]int
	offset := 0
	total := 0
	for b, block := range blocks {
		for _, e := range block {
			edges = append(edges, [2]int{e[0] + offset, e[1] + offset})
		}
		offset += sizes[b]
		total += sizes[b]
	}

	return graph.Build(name, total, edges)
}

// Random returns an Erdős–Rényi style graph on n vertices where each
// pair is an edge with probability p, drawn from rng. Callers seed the
// rng themselves, keeping every test run reproducible.
func Random(n int, p float64, rng *rand.Rand) (*graph.Graph, error) {
	var edges [][2]int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				edges = append(edges, [2]int{i, j})
			}
		}
	}

	return graph.Build(fmt.Sprintf("G(%d,%g)", n, p), n, edges)
}
