package vcover_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalteros/dOmega/vcover"
)

// TestNT_SingleEdge: one edge forces exactly one endpoint into the
// cover; both copies are decided and the kernel vanishes.
func TestNT_SingleEdge(t *testing.T) {
	sg := buildSubgraph(2, [][2]int{{0, 1}})

	kernel, numRemoved, numInVC, st := vcover.NemhauserTrotter(&sg, 1)
	assert.Equal(t, vcover.HasCover, st)
	assert.Equal(t, 2, numRemoved)
	assert.Equal(t, 1, numInVC)
	assert.Equal(t, 0, kernel.N)
}

// TestNT_Star: the hub is the integral 1 of the LP; every leaf is 0.
func TestNT_Star(t *testing.T) {
	sg := buildSubgraph(4, [][2]int{{0, 1}, {0, 2}, {0, 3}})

	_, numRemoved, numInVC, st := vcover.NemhauserTrotter(&sg, 1)
	assert.Equal(t, vcover.HasCover, st)
	assert.Equal(t, 4, numRemoved)
	assert.Equal(t, 1, numInVC)
}

// TestNT_BudgetExceeded: a big star forest needing more hubs than k.
func TestNT_BudgetExceeded(t *testing.T) {
	// Three disjoint edges: LP decides all of them, cover needs 3 > k=2.
	sg := buildSubgraph(6, [][2]int{{0, 1}, {2, 3}, {4, 5}})

	_, _, numInVC, st := vcover.NemhauserTrotter(&sg, 2)
	assert.Equal(t, vcover.NoCover, st)
	assert.Equal(t, 3, numInVC)
}

// TestNT_OddCycleUndecided: on C5 the LP optimum is all-halves; nothing
// is removed and the kernel aliases the input.
func TestNT_OddCycleUndecided(t *testing.T) {
	sg := buildSubgraph(5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {0, 4}})

	kernel, numRemoved, numInVC, st := vcover.NemhauserTrotter(&sg, 3)
	assert.Equal(t, vcover.Undecided, st)
	assert.Zero(t, numRemoved)
	assert.Zero(t, numInVC)
	assert.Equal(t, 5, kernel.N)
	assert.Equal(t, 5, kernel.M)
}

// TestNT_PreservesAnswer: the kernel plus the charged vertices answer
// the same k-cover question as the original, checked by brute force.
func TestNT_PreservesAnswer(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	for trial := 0; trial < 300; trial++ {
		n := 2 + rng.Intn(9)
		edges := randomEdges(n, 0.35, rng)
		sg := buildSubgraph(n, edges)
		k := rng.Intn(n + 1)

		kernel, _, numInVC, st := vcover.NemhauserTrotter(&sg, k)
		opt := minCoverBrute(n, edges)
		want := opt <= k

		switch st {
		case vcover.NoCover:
			assert.False(t, want, "n=%d k=%d opt=%d edges=%v", n, k, opt, edges)
		case vcover.HasCover:
			assert.True(t, want, "n=%d k=%d opt=%d edges=%v", n, k, opt, edges)
		case vcover.Undecided:
			// The residual question must be equivalent under budget k-numInVC.
			var kernelEdges [][2]int
			for u := 0; u < kernel.N; u++ {
				for _, v := range kernel.AdjLists[u] {
					if u < v {
						kernelEdges = append(kernelEdges, [2]int{u, v})
					}
				}
			}
			kernelOpt := minCoverBrute(kernel.N, kernelEdges)
			assert.Equal(t, want, kernelOpt <= k-numInVC,
				"n=%d k=%d opt=%d kernelOpt=%d numInVC=%d edges=%v",
				n, k, opt, kernelOpt, numInVC, edges)
			assertSubgraphInvariants(t, &kernel)
		}
	}
}

// TestNT_KoenigMatching: the Hopcroft–Karp matching on the bipartite
// double cover is maximum, i.e. equal to the double cover's minimum
// vertex cover size (König), which equals twice the LP optimum of the
// original instance.
func TestNT_KoenigMatching(t *testing.T) {
	rng := rand.New(rand.NewSource(41))
	for trial := 0; trial < 100; trial++ {
		n := 2 + rng.Intn(6)
		edges := randomEdges(n, 0.5, rng)
		sg := buildSubgraph(n, edges)

		got := vcover.MatchingSize(&sg)

		// Brute-force minimum cover of the double cover: vertices
		// 0..n-1 are left copies, n..2n-1 right copies.
		var double [][2]int
		for _, e := range edges {
			double = append(double, [2]int{e[0], n + e[1]}, [2]int{e[1], n + e[0]})
		}
		require.Equal(t, minCoverBrute(2*n, double), got,
			"n=%d edges=%v", n, edges)
	}
}
