package vcover

import "github.com/jwalteros/dOmega/graph"

// ntState carries the scratch arrays of one NemhauserTrotter run:
// matching, Tarjan output and the condensation. One instance per call;
// nothing is shared between workers.
type ntState struct {
	sg *graph.Subgraph
	k  int

	// matchL[u] is the right copy matched to left u, matchR[v] the left
	// vertex matched to right copy v; -1 when exposed.
	matchL, matchR []int

	// Tarjan output.
	componentMap  []int   // node → component id
	components    [][]int // component id → member nodes
	vertexMap     []int   // subgraph vertex → last component holding a copy
	toBeRemoved   []bool  // component is pure (no vertex has both copies inside)
	numComponents int
}

// NemhauserTrotter applies the LP-half-integrality kernel to sg with
// budget k. It matches the bipartite double cover, decomposes the
// matching residual into strongly connected components, and peels pure
// sink components: left-copy sinks leave the cover, right-copy sinks
// enter it. Vertices whose two copies share a component stay undecided
// and form the kernel.
//
// Returns the kernel, the number of vertices removed from sg, the number
// charged to the cover, and the usual tri-valued Status. The caller
// continues with budget k−numInVC.
func NemhauserTrotter(sg *graph.Subgraph, k int) (graph.Subgraph, int, int, Status) {
	n := sg.N
	nt := &ntState{sg: sg, k: k,
		matchL: make([]int, n),
		matchR: make([]int, n),
	}
	for i := 0; i < n; i++ {
		nt.matchL[i] = -1
		nt.matchR[i] = -1
	}

	nt.hopcroftKarp()
	nt.tarjan()

	return nt.getKernel()
}

func (nt *ntState) getKernel() (graph.Subgraph, int, int, Status) {
	sg, n := nt.sg, nt.sg.N
	numRemoved, numInVC := 0, 0

	// Condensation, stored as predecessor lists: predecessors[c] holds,
	// with multiplicity, the components that have an arc into c. The
	// lastPred marker suppresses immediate repeats only; duplicates are
	// harmless because out-degrees are counted and decremented with the
	// same multiplicity.
	predecessors := make([][]int, nt.numComponents)
	outDegree := make([]int, nt.numComponents)
	lastPred := make([]int, nt.numComponents)
	for i := range lastPred {
		lastPred[i] = -1
	}

	for t := 0; t < nt.numComponents; t++ {
		for _, v := range nt.components[t] {
			if v < n {
				for _, u := range sg.AdjLists[v] {
					head := nt.componentMap[u+n]
					if head == nt.componentMap[v] || lastPred[head] == nt.componentMap[v] {
						continue
					}
					predecessors[head] = append(predecessors[head], nt.componentMap[v])
					outDegree[nt.componentMap[v]]++
					lastPred[head] = nt.componentMap[v]
				}
			} else if w := nt.matchR[v-n]; w >= 0 && nt.componentMap[v] != nt.componentMap[w] {
				head := nt.componentMap[w]
				if lastPred[head] != nt.componentMap[v] {
					predecessors[head] = append(predecessors[head], nt.componentMap[v])
					outDegree[nt.componentMap[v]]++
					lastPred[head] = nt.componentMap[v]
				}
			}
		}
	}

	// Peel pure sink components until none is left. Removing a sink may
	// turn a predecessor into one, except through the single-member fast
	// path, which deliberately leaves predecessors blocked: an exposed
	// right copy is an out-decision and must not unlock its neighbours.
	removed := make([]bool, n)
	compRemoved := make([]bool, nt.numComponents)

	update := true
	for update {
		update = false
		for p := 0; p < nt.numComponents; p++ {
			if compRemoved[p] || outDegree[p] != 0 || !nt.toBeRemoved[p] {
				continue
			}
			compRemoved[p] = true

			if members := nt.components[p]; len(members) == 1 && !removed[members[0]%n] {
				removed[members[0]%n] = true
				numRemoved++
				continue
			}

			for _, v := range nt.components[p] {
				if removed[v%n] {
					continue
				}
				removed[v%n] = true
				numRemoved++
				if v >= n {
					numInVC++
				}
			}
			for _, c := range predecessors[p] {
				outDegree[c]--
			}
			update = true
		}
	}

	if numInVC > nt.k {
		return graph.Subgraph{}, numRemoved, numInVC, NoCover
	}
	if numRemoved == 0 {
		return *sg, 0, 0, Undecided
	}
	if n-numRemoved <= nt.k-numInVC {
		return graph.Subgraph{}, numRemoved, numInVC, HasCover
	}

	kernel := rebuildSubgraph(n, numRemoved, sg.Vertices, sg.AdjLists, removed)

	if kernel.M > nt.k*(nt.k-numInVC) {
		return kernel, numRemoved, numInVC, NoCover
	}

	return kernel, numRemoved, numInVC, Undecided
}
