// Package graph provides the immutable CSR graph store used by the
// dOmega maximum-clique pipeline, plus the Subgraph record consumed by
// the vertex-cover kernels.
//
// What
//
//   - Graph: a simple undirected graph held as compressed sparse rows
//     (EdgeBegin/EdgeTo), with per-vertex degree, min/max degree and an
//     alias slice mapping internal indices back to external names.
//   - Subgraph: a self-contained induced (or complement) subgraph with
//     position-indexed vertex records and sorted adjacency lists.
//   - Construction from an edge-list reader, an adjacency-list reader,
//     or an in-memory edge slice. All three deduplicate edges, drop
//     self-loops, and emit sorted neighbour lists.
//
// Invariants
//
//	Every adjacency list is sorted ascending; adj(u) contains v iff
//	adj(v) contains u; the sum of degrees equals 2·M. Construction
//	enforces these; everything downstream relies on them.
//
// A Graph is read-only after construction. Subgraphs are cheap value
// records: kernels clone or rebuild them rather than sharing mutable
// state across goroutines.
package graph
