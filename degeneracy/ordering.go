package degeneracy

import (
	"github.com/jwalteros/dOmega/graph"
)

// Result holds everything the degeneracy scan derives from a graph. All
// fields are written once by Order/OrderOnly and read-only afterwards,
// except Subgraphs, whose adjacency slots are lazily materialised (the
// caller serialises that; see clique's slot election).
type Result struct {
	// Ordering[i] is the vertex placed at position i; Position is its
	// inverse. RightDegree[v] is v's residual degree at removal time.
	Ordering    []int
	Position    []int
	RightDegree []int

	// Degeneracy is max over RightDegree.
	Degeneracy int

	// CliqueLB and CliqueUB bound the clique number: LB ≤ ω ≤ UB.
	CliqueLB int
	CliqueUB int

	// Subgraphs[v] holds the vertex set of v's closed right-neighbourhood
	// (v first, then its right neighbours ascending by index). Adjacency
	// lists are absent until MaterializeComplement runs for v. Nil when
	// produced by OrderOnly.
	Subgraphs []graph.Subgraph
}

// Order runs the full degeneracy scan: ordering, right-degrees, clique
// bounds, and the vertex sets of all right-neighbour subgraphs.
//
// Complexity: O(n+m) for the scan; the upper-bound tightening adds one
// BFS over the d-core.
func Order(g *graph.Graph) (*Result, error) {
	return run(g, true)
}

// OrderOnly runs the scan without populating subgraph vertex sets and
// without the upper-bound tightening pass. CliqueUB is still set to d+1.
func OrderOnly(g *graph.Graph) (*Result, error) {
	return run(g, false)
}

func run(g *graph.Graph, withSubgraphs bool) (*Result, error) {
	if g == nil {
		return nil, graph.ErrNilGraph
	}
	n := g.N
	r := &Result{
		Ordering:    make([]int, n),
		Position:    make([]int, n),
		RightDegree: make([]int, n),
	}
	if withSubgraphs {
		r.Subgraphs = make([]graph.Subgraph, n)
	}

	// Counting sort of the vertices by degree. buckets[k] walks through
	// three meanings: class size, class start offset, then next free slot.
	buckets := make([]int, g.MaxDegree+1)
	for v := 0; v < n; v++ {
		r.RightDegree[v] = g.Degree[v]
		buckets[r.RightDegree[v]]++
	}
	count := 0
	for k := 0; k <= g.MaxDegree; k++ {
		size := buckets[k]
		buckets[k] = count
		count += size
	}
	for v := 0; v < n; v++ {
		r.Position[v] = buckets[r.RightDegree[v]]
		r.Ordering[r.Position[v]] = v
		buckets[r.RightDegree[v]]++
	}
	// Reset buckets to class starts.
	for k := g.MaxDegree; k > 0; k-- {
		buckets[k] = buckets[k-1]
	}
	buckets[0] = 0

	// dRegular records the position at which the scan first meets
	// right-degree d, provided the residual graph there is d-regular (min
	// and max residual degree both d), i.e. the start of a d-regular
	// d-core. -1 otherwise; a residual graph that only turns d-regular at
	// a later position is not recorded.
	dRegular := -1

	for i := 0; i < n; i++ {
		minV := r.Ordering[i]

		if withSubgraphs {
			sg := &r.Subgraphs[minV]
			sg.N = r.RightDegree[minV] + 1
			sg.Vertices = make([]graph.Vertex, 1, sg.N)
			sg.Vertices[0] = graph.Vertex{ID: minV, Degree: 0, Pos: 0}
		}

		buckets[r.RightDegree[minV]]++

		if r.RightDegree[minV] > r.Degeneracy {
			r.Degeneracy = r.RightDegree[minV]
			// The vertex in the last position sits in the highest bucket;
			// if its residual degree is also d, the whole residual graph
			// is d-regular.
			if r.RightDegree[r.Ordering[n-1]] == r.Degeneracy {
				dRegular = i
			}
		}

		// Residual degree equal to the remaining vertex count means the
		// rest is a clique; only the first such event matters.
		if r.CliqueLB == 0 && r.RightDegree[minV] == n-i-1 {
			r.CliqueLB = r.RightDegree[minV] + 1
		}

		// Decrement the residual degree of every still-unplaced neighbour,
		// moving each one bucket down via the swap-with-bucket-head trick.
		for _, w := range g.Neighbors(minV) {
			if r.Position[w] <= r.Position[minV] {
				continue // already placed
			}
			if withSubgraphs {
				sg := &r.Subgraphs[minV]
				sg.Vertices = append(sg.Vertices, graph.Vertex{
					ID:     w,
					Degree: 0,
					Pos:    len(sg.Vertices),
				})
			}

			if r.RightDegree[w] == r.RightDegree[minV] {
				// w shares minV's bucket; its class head is the slot just
				// after minV once minV is consumed.
				head := buckets[r.RightDegree[minV]]
				if w != r.Ordering[head] {
					swap(r, w, head)
				}
				buckets[r.RightDegree[minV]-1] = r.Position[minV] + 1
				buckets[r.RightDegree[w]]++
				r.RightDegree[w]--
			} else {
				head := buckets[r.RightDegree[w]]
				if w != r.Ordering[head] {
					swap(r, w, head)
				}
				buckets[r.RightDegree[w]]++
				r.RightDegree[w]--
			}
		}
	}

	r.CliqueUB = r.Degeneracy + 1

	if withSubgraphs && dRegular > 0 && r.CliqueLB < r.CliqueUB {
		r.tightenUpperBound(g, dRegular)
	}

	return r, nil
}

// swap exchanges w with the vertex at ordering position head, keeping
// Ordering and Position consistent.
func swap(r *Result, w, head int) {
	u := r.Ordering[head]
	r.Ordering[head] = w
	r.Ordering[r.Position[w]] = u
	r.Position[u] = r.Position[w]
	r.Position[w] = head
}

// tightenUpperBound drops CliqueUB from d+1 to d when the d-regular core
// starting at ordering position first has no connected component of
// exactly d+1 vertices: a K_{d+1} inside a d-regular graph is a whole
// component, so its absence rules out cliques of size d+1.
//
// BFS restricted to positions ≥ first, in the style of component
// collection; each root's newly discovered count is its component size.
func (r *Result) tightenUpperBound(g *graph.Graph, first int) {
	n := g.N
	queue := make([]int, 0, n-first)
	discovered := make([]bool, n)

	for i := first; i < n; i++ {
		root := r.Ordering[i]
		if discovered[root] {
			continue
		}
		queue = queue[:0]
		queue = append(queue, root)
		discovered[root] = true
		size := 1

		for qi := 0; qi < len(queue); qi++ {
			v := queue[qi]
			for _, w := range g.Neighbors(v) {
				if r.Position[w] >= first && !discovered[w] {
					discovered[w] = true
					queue = append(queue, w)
					size++
				}
			}
		}

		if size == r.Degeneracy+1 {
			return // a candidate K_{d+1} component exists; keep d+1
		}
	}

	r.CliqueUB = r.Degeneracy
}
