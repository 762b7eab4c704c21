package clique

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/jwalteros/dOmega/degeneracy"
	"github.com/jwalteros/dOmega/graph"
	"github.com/jwalteros/dOmega/vcover"
)

// MaxClique computes ω(g) exactly.
//
// It runs the degeneracy scan, and while the bounds it produced disagree,
// binary-searches candidate sizes: candidate c is proven as soon as one
// pivot's complement subgraph admits a vertex cover of size
// rightDegree+1−c, which certifies a clique of size c through that pivot.
//
// Returns graph.ErrNilGraph on nil input, or the context's error if the
// run is cancelled between candidate rounds.
func MaxClique(g *graph.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, graph.ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Threads < 1 {
		o.Threads = DefaultOptions().Threads
	}

	start := time.Now()
	deg, err := degeneracy.Order(g)
	if err != nil {
		return nil, err
	}
	res := &Result{
		Degeneracy:     deg.Degeneracy,
		LowerBound:     deg.CliqueLB,
		Threads:        o.Threads,
		DegeneracyTime: time.Since(start),
	}

	lb, ub := deg.CliqueLB, deg.CliqueUB
	if lb < ub {
		s := &search{
			g:      g,
			deg:    deg,
			sorted: pivotsByRightDegree(deg, g.N),
			slots:  make([]slot, g.N),
		}

		for lb < ub {
			if err := o.Ctx.Err(); err != nil {
				return nil, err
			}
			c := (lb + ub + 1) / 2
			o.OnCandidate(lb, ub, c)

			s.found.Store(false)
			var wg sync.WaitGroup
			for t := 0; t < o.Threads; t++ {
				wg.Add(1)
				go func(worker int) {
					defer wg.Done()
					s.scan(worker, o.Threads, c)
				}(t)
			}
			wg.Wait()

			if s.found.Load() {
				lb = c
			} else {
				ub = c - 1
			}
		}
	}

	res.Size = ub
	res.TotalTime = time.Since(start)

	return res, nil
}

// slot guards the at-most-once materialisation of one complement
// subgraph. ready is the publication flag; the mutex elects the builder.
type slot struct {
	mu    sync.Mutex
	ready atomic.Bool
}

// search is the shared state of one MaxClique run. Everything except
// found and the slots is read-only during the parallel phase.
type search struct {
	g      *graph.Graph
	deg    *degeneracy.Result
	sorted []int
	slots  []slot
	found  atomic.Bool
}

// scan processes the pivots at sorted indices worker, worker+stride, …
// for candidate size c, stopping early once any worker has proven the
// candidate. Pivots too small to host a c-clique end the walk: the list
// is sorted by right-degree descending, so no later pivot qualifies.
func (s *search) scan(worker, stride, c int) {
	for i := worker; i < s.g.N; i += stride {
		if s.found.Load() {
			return
		}
		v := s.sorted[i]
		k := s.deg.RightDegree[v] + 1 - c
		if k < 0 {
			return
		}

		sg := s.materialize(v)

		kernel, highDeg, st := vcover.Buss(sg, k)
		if st == vcover.NoCover {
			continue
		}
		if st == vcover.HasCover {
			s.found.Store(true)

			return
		}
		k -= highDeg

		kernel2, _, numInVC, st := vcover.NemhauserTrotter(&kernel, k)
		if st == vcover.NoCover {
			continue
		}
		if st == vcover.HasCover {
			s.found.Store(true)

			return
		}
		k -= numInVC

		if vcover.KVertexCover(&kernel2, k) {
			s.found.Store(true)

			return
		}
	}
}

// materialize returns the complement subgraph of pivot v, building it
// under the slot lock if this worker gets there first. The atomic load
// on the fast path pairs with the store after construction, so readers
// that skip the lock still observe a fully built subgraph.
func (s *search) materialize(v int) *graph.Subgraph {
	sl := &s.slots[v]
	if !sl.ready.Load() {
		sl.mu.Lock()
		if !sl.ready.Load() {
			s.deg.MaterializeComplement(v)
			sl.ready.Store(true)
		}
		sl.mu.Unlock()
	}

	return &s.deg.Subgraphs[v]
}

// pivotsByRightDegree counting-sorts the vertices by right-degree
// descending, the order workers consume pivots in.
func pivotsByRightDegree(deg *degeneracy.Result, n int) []int {
	buckets := make([]int, deg.Degeneracy+1)
	for v := 0; v < n; v++ {
		buckets[deg.RightDegree[v]]++
	}
	count := 0
	for k := deg.Degeneracy; k >= 0; k-- {
		size := buckets[k]
		buckets[k] = count
		count += size
	}
	sorted := make([]int, n)
	for v := 0; v < n; v++ {
		sorted[buckets[deg.RightDegree[v]]] = v
		buckets[deg.RightDegree[v]]++
	}

	return sorted
}
