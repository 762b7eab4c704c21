// Package domega computes the exact maximum clique size ω(G) of simple
// undirected graphs.
//
// The algorithm runs in time polynomial in the graph's size but
// exponential only in the gap d−ω between the degeneracy d and the
// clique number — a gap that is tiny (usually ≤ 3) on most real-world
// graphs, which is what makes maximum clique easy in practice.
//
// Everything is organised under focused subpackages:
//
//	graph/      — immutable CSR graph store, file readers, Subgraph record
//	degeneracy/ — bucket-based degeneracy ordering, clique bounds,
//	              complement-subgraph materialisation
//	vcover/     — Buss and Nemhauser–Trotter kernels plus the
//	              branch-and-reduce k-vertex-cover solver
//	clique/     — the parallel parametric search tying it all together
//	gen/        — deterministic graph generators for tests and benchmarks
//	cmd/domega  — the command-line tool
//
// Quick start:
//
//	g, err := graph.FromEdgeList(file, "web-graph")
//	// handle err
//	res, err := clique.MaxClique(g, clique.WithThreads(8))
//	// res.Size == ω(G)
//
// Based on: J. L. Walteros and A. Buchanan, "Why is maximum clique often
// easy in practice?".
package domega
