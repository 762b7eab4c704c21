// Package degeneracy computes degeneracy orderings of a graph.Graph and
// the clique bounds they imply.
//
// What
//
//   - Order: the bucket-based Matula–Beck scan in O(n+m). It emits the
//     ordering, each vertex's right-degree (residual degree at removal
//     time), the degeneracy d, a clique lower bound, a clique upper
//     bound, and the vertex set of every right-neighbour subgraph.
//   - OrderOnly: the same scan without subgraph population or upper-bound
//     work, for callers that only want the ordering and d.
//   - (*Result).MaterializeComplement: builds the complement adjacency of
//     a pivot's closed right-neighbourhood, the instance handed to the
//     vertex-cover kernels.
//
// Bounds
//
//	If at any point the vertex being removed has residual degree equal to
//	the number of vertices remaining, those vertices induce a clique and
//	its size becomes the lower bound. The upper bound is d+1, tightened
//	to d when the residual graph is already d-regular at the first
//	position whose right-degree is d (the d-core is d-regular), that
//	position is not the first one, and no connected component of that
//	residual has exactly d+1 vertices (no K_{d+1} can fit).
//
// The pair-scan behind MaterializeComplement follows G. Manoussakis,
// "New algorithms for cliques and related structures in k-degenerate
// graphs", arXiv:1501.01819.
package degeneracy
