package graph

import (
	"fmt"
	"sort"
	"time"
)

// Build constructs a Graph from an in-memory edge slice over vertices
// 0..n-1. Self-loops and duplicate edges are dropped, matching the file
// readers. An endpoint outside [0,n) yields ErrBadEdge.
//
// Complexity: O(n + m·log d_max) for the per-vertex dedup and sort.
func Build(name string, n int, edges [][2]int) (*Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: n=%d", ErrBadHeader, n)
	}
	start := time.Now()

	adj := make([]map[int]struct{}, n)
	for i := range adj {
		adj[i] = make(map[int]struct{})
	}
	for _, e := range edges {
		u, v := e[0], e[1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return nil, fmt.Errorf("%w: edge (%d,%d) outside [0,%d)", ErrBadEdge, u, v, n)
		}
		if u == v {
			continue
		}
		adj[u][v] = struct{}{}
		adj[v][u] = struct{}{}
	}

	alias := make([]int, n)
	for i := range alias {
		alias[i] = i
	}
	g := assemble(name, adj, alias)
	g.ReadTime = time.Since(start)

	return g, nil
}

// assemble flattens per-vertex neighbour sets into the CSR arrays and
// records degree statistics. The sets guarantee no duplicates; sorting
// here establishes the ascending-adjacency invariant.
func assemble(name string, adj []map[int]struct{}, alias []int) *Graph {
	n := len(adj)
	g := &Graph{
		Name:      name,
		N:         n,
		MinDegree: n,
		MaxDegree: 0,
		EdgeBegin: make([]int, n+1),
		Degree:    make([]int, n),
		Alias:     alias,
	}

	total := 0
	for v := range adj {
		g.Degree[v] = len(adj[v])
		total += g.Degree[v]
		if g.Degree[v] < g.MinDegree {
			g.MinDegree = g.Degree[v]
		}
		if g.Degree[v] > g.MaxDegree {
			g.MaxDegree = g.Degree[v]
		}
	}
	g.M = total / 2
	g.EdgeTo = make([]int, total)

	counter := 0
	for v := range adj {
		g.EdgeBegin[v] = counter
		row := g.EdgeTo[counter : counter+g.Degree[v]]
		i := 0
		for w := range adj[v] {
			row[i] = w
			i++
		}
		sort.Ints(row)
		counter += g.Degree[v]
	}
	g.EdgeBegin[n] = counter

	return g
}

// Neighbors returns the sorted neighbour list of v as a read-only view
// into the CSR storage.
func (g *Graph) Neighbors(v int) []int {
	return g.EdgeTo[g.EdgeBegin[v]:g.EdgeBegin[v+1]]
}
