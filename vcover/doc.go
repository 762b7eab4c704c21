// Package vcover decides the parameterised vertex-cover question "does
// this subgraph have a vertex cover of size ≤ k?" through two
// kernelisation passes and a branch-and-reduce solver.
//
// Pipeline
//
//   - Buss: strips vertices whose degree exceeds the remaining budget
//     (they are forced into any cover) and the isolated vertices that
//     strips leave behind.
//   - NemhauserTrotter: solves the half-integral LP relaxation on the
//     bipartite double cover via Hopcroft–Karp matching and a strongly-
//     connected-component sweep of the matching residual, removing every
//     vertex whose LP value is integral.
//   - KVertexCover: exhaustive search on what survives, with degree-0/1
//     elimination, triangle contraction, degree-2 vertex folding, and
//     branching on a maximum-degree vertex.
//
// The kernels never fail: they speak exclusively through the tri-valued
// Status (NoCover / Undecided / HasCover) plus out-values, and the caller
// shrinks its budget k by whatever each pass charged. All three stages
// preserve the sorted-adjacency and symmetry invariants of
// graph.Subgraph.
//
// Inputs are treated as worker-private: KVertexCover mutates the
// subgraph it is given. Buss returns a fresh rebuild, or a clone when
// nothing was removed, so its input is never touched. NemhauserTrotter
// returns a fresh rebuild when it removes anything; when it removes
// nothing it returns its input, which shares the input's adjacency.
package vcover
