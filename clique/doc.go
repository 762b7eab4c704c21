// Package clique computes the exact clique number ω(G) of a simple
// undirected graph.
//
// The search is parameterised by the gap between the graph's degeneracy
// d and ω: polynomial in the graph size, exponential only in d−ω. A
// degeneracy ordering bounds ω within [L, d+1]; a binary search over
// candidate sizes c then asks, for each candidate, whether some vertex v
// closes a clique of size c with its right neighbours. That question is
// flipped into "does the complement of v's closed right-neighbourhood
// have a vertex cover of size rightDegree(v)+1−c?", which the vcover
// kernels and solver decide.
//
// Concurrency
//
//	Each candidate round fans the pivot list out over W goroutines in
//	stride-W order; the first worker to prove the candidate sets an
//	atomic flag that the others poll between pivots (soft cancellation
//	only: a worker finishes its current pivot). The coordinator joins
//	all workers between rounds, so bounds are only ever touched by one
//	goroutine. Complement subgraphs are materialised at most once, by
//	whichever worker reaches the pivot first, behind a per-slot lock.
//
// The answer is deterministic: worker interleaving decides who proves a
// candidate, never what ω is.
//
// Reference: J. L. Walteros and A. Buchanan, "Why is maximum clique
// often easy in practice?".
package clique
