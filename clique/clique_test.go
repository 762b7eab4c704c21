package clique_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalteros/dOmega/clique"
	"github.com/jwalteros/dOmega/gen"
	"github.com/jwalteros/dOmega/graph"
)

// bruteClique computes ω by recursive extension over adjacency bitmasks.
// Fine for the ≤20-vertex graphs the tests use.
func bruteClique(g *graph.Graph) int {
	adj := make([]uint32, g.N)
	for v := 0; v < g.N; v++ {
		for _, u := range g.Neighbors(v) {
			adj[v] |= 1 << u
		}
	}
	best := 0
	var extend func(next int, members uint32, size int)
	extend = func(next int, members uint32, size int) {
		if size > best {
			best = size
		}
		for v := next; v < g.N; v++ {
			if members&^adj[v] == 0 {
				extend(v+1, members|1<<v, size+1)
			}
		}
	}
	extend(0, 0, 0)

	return best
}

func TestMaxClique_NilGraph(t *testing.T) {
	_, err := clique.MaxClique(nil)
	assert.ErrorIs(t, err, graph.ErrNilGraph)
}

// TestMaxClique_Scenarios runs the canonical end-to-end cases.
func TestMaxClique_Scenarios(t *testing.T) {
	k4MinusEdge, err := graph.Build("K4-e", 4, [][2]int{{0, 1}, {0, 2}, {1, 2}, {1, 3}, {2, 3}})
	require.NoError(t, err)
	twoTriangles, err := gen.Disjoint("2K3+v", []int{3, 3, 1}, [][][2]int{
		{{0, 1}, {1, 2}, {0, 2}},
		{{0, 1}, {1, 2}, {0, 2}},
		{},
	})
	require.NoError(t, err)

	build := func(fn func() (*graph.Graph, error)) *graph.Graph {
		g, err := fn()
		require.NoError(t, err)

		return g
	}

	tests := []struct {
		g    *graph.Graph
		want int
	}{
		{build(func() (*graph.Graph, error) { return gen.Complete(3) }), 3},
		{build(func() (*graph.Graph, error) { return gen.Path(4) }), 2},
		{build(func() (*graph.Graph, error) { return gen.Cycle(5) }), 2},
		{k4MinusEdge, 3},
		{build(gen.Petersen), 2},
		{twoTriangles, 3},
		{build(func() (*graph.Graph, error) { return gen.Complete(7) }), 7},
		{build(func() (*graph.Graph, error) { return gen.Star(6) }), 2},
		{build(func() (*graph.Graph, error) { return graph.Build("empty", 4, nil) }), 1},
	}

	for _, tc := range tests {
		t.Run(tc.g.Name, func(t *testing.T) {
			res, err := clique.MaxClique(tc.g, clique.WithThreads(2))
			require.NoError(t, err)
			assert.Equal(t, tc.want, res.Size)
			assert.LessOrEqual(t, res.LowerBound, res.Size)
			assert.LessOrEqual(t, res.Size, res.Degeneracy+1)
		})
	}
}

// TestMaxClique_NoSearchWhenBoundsMeet: on K4 minus an edge the bounds
// coincide after the ordering, so no candidate round may run.
func TestMaxClique_NoSearchWhenBoundsMeet(t *testing.T) {
	g, err := graph.Build("K4-e", 4, [][2]int{{0, 1}, {0, 2}, {1, 2}, {1, 3}, {2, 3}})
	require.NoError(t, err)

	rounds := 0
	res, err := clique.MaxClique(g, clique.WithCandidateHook(func(lb, ub, c int) { rounds++ }))
	require.NoError(t, err)
	assert.Equal(t, 3, res.Size)
	assert.Zero(t, rounds, "bounds met, no branching phase should run")
}

// TestMaxClique_TightenedBoundSkipsSearch: the d-regular-core rule
// closes the gap before any worker starts.
func TestMaxClique_TightenedBoundSkipsSearch(t *testing.T) {
	g, err := graph.Build("tighten", 10, [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{0, 4},
		{5, 6}, {6, 7}, {7, 8}, {8, 9}, {9, 5},
	})
	require.NoError(t, err)

	rounds := 0
	res, err := clique.MaxClique(g, clique.WithCandidateHook(func(lb, ub, c int) { rounds++ }))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Size)
	assert.Zero(t, rounds)
}

// TestMaxClique_BoundsInvariant: before every candidate round the
// bounds must bracket the true ω and narrow monotonically.
func TestMaxClique_BoundsInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for trial := 0; trial < 20; trial++ {
		g, err := gen.Random(16, 0.5, rng)
		require.NoError(t, err)
		omega := bruteClique(g)

		prevLB, prevUB := 0, g.N+1
		res, err := clique.MaxClique(g, clique.WithThreads(3),
			clique.WithCandidateHook(func(lb, ub, c int) {
				assert.LessOrEqual(t, lb, omega)
				assert.GreaterOrEqual(t, ub, omega)
				assert.GreaterOrEqual(t, lb, prevLB)
				assert.LessOrEqual(t, ub, prevUB)
				assert.LessOrEqual(t, lb, c)
				assert.LessOrEqual(t, c, ub)
				prevLB, prevUB = lb, ub
			}))
		require.NoError(t, err)
		assert.Equal(t, omega, res.Size)
	}
}

// TestMaxClique_MatchesBruteForce sweeps random graphs over a range of
// sizes and densities with several worker counts.
func TestMaxClique_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(29))
	densities := []float64{0.1, 0.3, 0.5, 0.7, 0.9}

	for trial := 0; trial < 60; trial++ {
		n := 1 + rng.Intn(18)
		p := densities[trial%len(densities)]
		g, err := gen.Random(n, p, rng)
		require.NoError(t, err)
		want := bruteClique(g)
		threads := 1 + trial%4
		res, err := clique.MaxClique(g, clique.WithThreads(threads))
		require.NoError(t, err)
		assert.Equal(t, want, res.Size, "n=%d p=%g threads=%d name=%s", n, p, threads, g.Name)
	}
}

// TestMaxClique_Deterministic: two runs with different worker counts
// agree; scheduling never leaks into the answer.
func TestMaxClique_Deterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(31))
	g, err := gen.Random(18, 0.6, rng)
	require.NoError(t, err)

	first, err := clique.MaxClique(g, clique.WithThreads(1))
	require.NoError(t, err)
	for _, threads := range []int{2, 4, 8} {
		res, err := clique.MaxClique(g, clique.WithThreads(threads))
		require.NoError(t, err)
		assert.Equal(t, first.Size, res.Size)
	}
}

// TestMaxClique_LabelPermutationInvariant: relabelling vertices must not
// change ω.
func TestMaxClique_LabelPermutationInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(37))
	for trial := 0; trial < 10; trial++ {
		n := 8 + rng.Intn(8)
		g, err := gen.Random(n, 0.5, rng)
		require.NoError(t, err)

		perm := rng.Perm(n)
		var permuted [][2]int
		for v := 0; v < n; v++ {
			for _, u := range g.Neighbors(v) {
				if v < u {
					permuted = append(permuted, [2]int{perm[v], perm[u]})
				}
			}
		}
		pg, err := graph.Build("permuted", n, permuted)
		require.NoError(t, err)

		a, err := clique.MaxClique(g)
		require.NoError(t, err)
		b, err := clique.MaxClique(pg)
		require.NoError(t, err)
		assert.Equal(t, a.Size, b.Size)
	}
}

func TestMaxClique_CancelledContext(t *testing.T) {
	rng := rand.New(rand.NewSource(43))
	g, err := gen.Random(16, 0.5, rng)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = clique.MaxClique(g, clique.WithContext(ctx))
	// Either the bounds met without a search (no error possible on tiny
	// inputs is not guaranteed), or the cancellation surfaced.
	if err != nil {
		assert.ErrorIs(t, err, context.Canceled)
	}
}
