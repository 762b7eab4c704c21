package vcover

import "github.com/jwalteros/dOmega/graph"

// Buss applies the high-degree kernelisation for k-vertex-cover to sg.
//
// Any surviving vertex whose residual degree exceeds the remaining budget
// k−h must belong to every cover of size ≤ k, so it is charged to the
// cover and removed; the pass repeats until no such vertex remains.
// Vertices left without surviving neighbours cannot usefully join a
// minimum cover and are dropped uncharged.
//
// Returns the kernel, the number h of charged vertices, and a Status:
// NoCover when h exceeds k or the kernel keeps more than k·(k−h) edges
// (a budget-k cover spans at most that many), HasCover when the whole
// kernel fits in the remaining budget, Undecided otherwise. The caller
// continues with budget k−h.
//
// sg itself is never mutated; the returned kernel is private to the
// caller even on the nothing-removed path.
func Buss(sg *graph.Subgraph, k int) (graph.Subgraph, int, Status) {
	n := sg.N
	removed := make([]bool, n)
	degDecrease := make([]int, n)
	highDeg := 0
	numRemoved := 0

	change := true
	for change && highDeg <= k {
		change = false
		for i := 0; i < n && highDeg <= k; i++ {
			v := &sg.Vertices[i]
			if removed[v.Pos] || v.Degree-degDecrease[v.Pos] <= k-highDeg {
				continue
			}
			removed[v.Pos] = true
			highDeg++
			numRemoved++
			change = true
			for _, u := range sg.AdjLists[v.Pos] {
				if !removed[u] {
					degDecrease[u]++
				}
			}
		}
	}

	if highDeg > k {
		return graph.Subgraph{}, highDeg, NoCover
	}

	if highDeg == 0 {
		kernel := sg.Clone()
		if kernel.N <= k {
			return kernel, 0, HasCover
		}
		if kernel.M > k*k {
			return kernel, 0, NoCover
		}

		return kernel, 0, Undecided
	}

	// Strip vertices whose neighbours were all charged away.
	for i := 0; i < n; i++ {
		v := &sg.Vertices[i]
		if removed[v.Pos] {
			continue
		}
		isolated := true
		for _, u := range sg.AdjLists[v.Pos] {
			if !removed[u] {
				isolated = false
				break
			}
		}
		if isolated {
			removed[v.Pos] = true
			numRemoved++
		}
	}

	kernel := rebuildSubgraph(n, numRemoved, sg.Vertices, sg.AdjLists, removed)

	if kernel.N <= k-highDeg {
		return kernel, highDeg, HasCover
	}
	if kernel.M > k*(k-highDeg) {
		return kernel, highDeg, NoCover
	}

	return kernel, highDeg, Undecided
}
