package degeneracy

import "github.com/jwalteros/dOmega/graph"

// MaterializeComplement fills in the adjacency of Subgraphs[v]: the
// complement of the subgraph of G induced by v and its right neighbours.
// Two vertices of the set are connected here iff they are NOT adjacent in
// G. The pivot v, adjacent in G to every other member, ends up isolated
// at position 0 and plays no part in the cover computations downstream.
//
// Adjacency in G is decided without touching G at all: for u in the set
// with position[u] < position[w], u~w in G iff w appears in u's
// right-neighbour vertex set. A merge walk over the two sorted vertex
// sets surfaces exactly the members of Subgraphs[v] missing from
// Subgraphs[u], which are the complement edges.
//
// The method writes only Subgraphs[v] (other slots are read), so distinct
// pivots may be materialised concurrently; a single pivot must be
// materialised by one goroutine, which the caller enforces.
//
// Complexity: O(d²) per pair-scan plus O(n_v²) for the incidence matrix,
// with n_v = rightDegree(v)+1 ≤ d+1.
func (r *Result) MaterializeComplement(v int) {
	sg := &r.Subgraphs[v]
	sg.AdjLists = make([][]int, sg.N)

	inc := make([][]bool, sg.N)
	for i := range inc {
		inc[i] = make([]bool, sg.N)
	}

	largestDegree := 0
	verts := sg.Vertices

	for ii := 1; ii < sg.N; ii++ {
		u := verts[ii].ID
		other := r.Subgraphs[u].Vertices

		// Merge walk: verts[c1:] vs the right-neighbour set of u. A member
		// of verts absent from other (and later than u in the ordering) is
		// non-adjacent to u in G.
		c1, c2 := 1, 1
		for c1 < len(verts) && c2 < len(other) {
			switch {
			case other[c2].ID < verts[c1].ID:
				c2++
			case verts[c1].ID == other[c2].ID:
				c1++
				c2++
			case verts[c1].ID == u:
				c1++
			default: // verts[c1].ID < other[c2].ID: not a right neighbour of u
				if r.Position[u] < r.Position[verts[c1].ID] {
					addComplementEdge(sg, inc, ii, c1)
				}
				c1++
			}
		}
		for ; c1 < len(verts); c1++ {
			if r.Position[u] < r.Position[verts[c1].ID] {
				addComplementEdge(sg, inc, ii, c1)
			}
		}

	}

	for ii := 1; ii < sg.N; ii++ {
		if verts[ii].Degree > largestDegree {
			largestDegree = verts[ii].Degree
			sg.LargestDegreeVertex = ii
		}
		row := make([]int, 0, verts[ii].Degree)
		for j := 1; j < sg.N; j++ {
			if inc[ii][j] {
				row = append(row, j)
			}
		}
		sg.AdjLists[ii] = row
	}

	sg.Created = true
}

// addComplementEdge records the symmetric pair (local positions i, j) in
// the incidence matrix and updates degrees and the edge count.
func addComplementEdge(sg *graph.Subgraph, inc [][]bool, i, j int) {
	inc[i][j] = true
	inc[j][i] = true
	sg.Vertices[i].Degree++
	sg.Vertices[j].Degree++
	sg.M++
}
