package vcover

import (
	"sort"

	"github.com/jwalteros/dOmega/graph"
)

// KVertexCover reports whether sg admits a vertex cover of size ≤ k.
// The subgraph is consumed: reductions rewrite its adjacency in place.
func KVertexCover(sg *graph.Subgraph, k int) bool {
	return kVertexCover(sg.N, k, sg.Vertices, sg.AdjLists)
}

// kVertexCover is the branch-and-reduce recursion. Each level reduces the
// instance to minimum degree ≥ 3, then branches on a maximum-degree
// vertex a: either a joins the cover, or its whole neighbourhood does.
// Depth is bounded by k since every branch spends budget.
func kVertexCover(n, k int, vertices []graph.Vertex, adjLists [][]int) bool {
	newK, kernel, st := degreePreprocessing(n, k, vertices, adjLists)
	if st == NoCover {
		return false
	}
	if st == HasCover {
		return true
	}

	a := kernel.LargestDegreeVertex

	// Branch 1: a in the cover. Drop a, shift later positions down one.
	verticesUp := make([]graph.Vertex, kernel.N-1)
	adjUp := make([][]int, kernel.N-1)
	count := 0
	for i := 0; i < kernel.N; i++ {
		if i == a {
			continue
		}
		v := kernel.Vertices[i]
		nv := graph.Vertex{ID: v.ID, Pos: count}
		row := make([]int, 0, v.Degree)
		for _, w := range kernel.AdjLists[i] {
			if w == a {
				continue
			}
			if w > a {
				w--
			}
			row = append(row, w)
			nv.Degree++
		}
		verticesUp[count] = nv
		adjUp[count] = row
		count++
	}
	if kVertexCover(kernel.N-1, newK-1, verticesUp, adjUp) {
		return true
	}

	// Branch 2: N(a) in the cover. Drop the closed neighbourhood of a.
	degA := kernel.Vertices[a].Degree
	removed := make([]bool, kernel.N)
	removed[a] = true
	for _, w := range kernel.AdjLists[a] {
		removed[w] = true
	}
	down := rebuildSubgraph(kernel.N, 1+degA, kernel.Vertices, kernel.AdjLists, removed)

	return kVertexCover(down.N, newK-degA, down.Vertices, down.AdjLists)
}

// degreePreprocessing runs the reduction loop until stable: forced
// high-degree vertices, degree-0/1 elimination, triangle contraction and
// degree-2 folding. Degrees are maintained lazily through degDecrease;
// Vertex.Degree keeps the value the instance arrived with.
//
// On Undecided the surviving vertices are compacted into kernel and the
// caller branches with budget newK.
func degreePreprocessing(n, k int, vertices []graph.Vertex, adjLists [][]int) (newK int, kernel graph.Subgraph, st Status) {
	newK = k
	numRemoved := 0
	degDecrease := make([]int, n)
	removed := make([]bool, n)

	change := true
	for change && n-numRemoved > newK && newK >= 0 {
		change = false

		for i := 0; i < n && newK >= 0; i++ {
			pos := vertices[i].Pos
			if removed[pos] {
				continue
			}
			deg := vertices[i].Degree - degDecrease[pos]

			// Forced: more incident edges than budget.
			if deg > newK {
				removed[pos] = true
				numRemoved++
				newK--
				change = true
				for _, u := range adjLists[pos] {
					if !removed[u] {
						degDecrease[u]++
					}
				}
				continue
			}

			// Degree 0 or 1: never needed; a degree-1 vertex is dominated
			// by its neighbour, which joins the cover instead.
			if deg <= 1 {
				removed[pos] = true
				numRemoved++
				if deg == 1 {
					newK--
					change = true
					nb := firstSurvivor(adjLists[pos], removed)
					removed[nb] = true
					numRemoved++
					for _, u := range adjLists[nb] {
						if !removed[u] {
							degDecrease[u]++
						}
					}
				}
				continue
			}

			if deg == 2 {
				n1 := firstSurvivor(adjLists[pos], removed)
				n2 := nextSurvivor(adjLists[pos], removed, n1)

				// Probe the smaller neighbourhood for the triangle edge.
				var adjacent bool
				if vertices[n1].Degree-degDecrease[n1] <= vertices[n2].Degree-degDecrease[n2] {
					adjacent = containsSorted(adjLists[n1], n2)
				} else {
					adjacent = containsSorted(adjLists[n2], n1)
				}

				removed[n1] = true
				removed[n2] = true
				change = true

				if adjacent {
					// Triangle {v,n1,n2}: two of the three must be in any
					// cover, and the two neighbours dominate v.
					removed[pos] = true
					newK -= 2
					numRemoved += 3
					for _, u := range adjLists[n1] {
						if !removed[u] {
							degDecrease[u]++
						}
					}
					for _, u := range adjLists[n2] {
						if !removed[u] {
							degDecrease[u]++
						}
					}
				} else {
					// Fold: v absorbs N(n1) ∪ N(n2); a (k+1)-cover of the
					// original exists iff a k-cover of the folded graph does.
					newK--
					numRemoved += 2
					fold(pos, n1, n2, vertices, adjLists, removed, degDecrease)
				}
			}
		}
	}

	if n-numRemoved <= newK {
		return newK, graph.Subgraph{}, HasCover
	}
	if newK <= 0 {
		return newK, graph.Subgraph{}, NoCover
	}

	kernel = rebuildSubgraph(n, numRemoved, vertices, adjLists, removed)

	if kernel.M > k*newK {
		return newK, kernel, NoCover
	}

	return newK, kernel, Undecided
}

// fold rewires the degree-2 vertex at pos: its removed neighbours' lists
// are merged (minus the dead and pos itself) into a fresh sorted list for
// pos, and pos is spliced into each gained neighbour's list. A neighbour
// common to both lists loses two edges and gains one, hence the extra
// decrement.
func fold(pos, n1, n2 int, vertices []graph.Vertex, adjLists [][]int, removed []bool, degDecrease []int) {
	degDecrease[pos] += 2

	adjA, adjB := adjLists[n1], adjLists[n2]
	merged := make([]int, 0, len(adjA)+len(adjB))

	attach := func(w int) {
		at := sort.SearchInts(adjLists[w], pos)
		adjLists[w] = append(adjLists[w], 0)
		copy(adjLists[w][at+1:], adjLists[w][at:])
		adjLists[w][at] = pos
		merged = append(merged, w)
		degDecrease[pos]--
	}

	c1, c2 := 0, 0
	for c1 < len(adjA) && c2 < len(adjB) {
		if removed[adjA[c1]] || adjA[c1] == pos {
			c1++
			continue
		}
		if removed[adjB[c2]] || adjB[c2] == pos {
			c2++
			continue
		}
		switch {
		case adjA[c1] < adjB[c2]:
			attach(adjA[c1])
			c1++
		case adjB[c2] < adjA[c1]:
			attach(adjB[c2])
			c2++
		default:
			attach(adjA[c1])
			degDecrease[adjA[c1]]++
			c1++
			c2++
		}
	}
	for ; c1 < len(adjA); c1++ {
		if !removed[adjA[c1]] && adjA[c1] != pos {
			attach(adjA[c1])
		}
	}
	for ; c2 < len(adjB); c2++ {
		if !removed[adjB[c2]] && adjB[c2] != pos {
			attach(adjB[c2])
		}
	}

	adjLists[pos] = merged
}

// firstSurvivor returns the first entry of adj not marked removed.
func firstSurvivor(adj []int, removed []bool) int {
	for _, u := range adj {
		if !removed[u] {
			return u
		}
	}

	panic("vcover: adjacency exhausted while degree says otherwise")
}

// nextSurvivor returns the first surviving entry strictly after the slot
// holding prev.
func nextSurvivor(adj []int, removed []bool, prev int) int {
	seen := false
	for _, u := range adj {
		if !seen {
			if u == prev {
				seen = true
			}
			continue
		}
		if !removed[u] {
			return u
		}
	}

	panic("vcover: adjacency exhausted while degree says otherwise")
}

// containsSorted reports membership via binary search; lists stay sorted
// through every reduction, including folding.
func containsSorted(adj []int, w int) bool {
	i := sort.SearchInts(adj, w)

	return i < len(adj) && adj[i] == w
}
