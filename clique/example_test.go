package clique_test

import (
	"fmt"

	"github.com/jwalteros/dOmega/clique"
	"github.com/jwalteros/dOmega/graph"
)

// ExampleMaxClique finds the largest clique of a triangle with a tail.
func ExampleMaxClique() {
	g, err := graph.Build("triangle-with-tail", 4, [][2]int{
		{0, 1}, {1, 2}, {0, 2}, // triangle
		{2, 3}, // tail
	})
	if err != nil {
		panic(err)
	}

	res, err := clique.MaxClique(g, clique.WithThreads(2))
	if err != nil {
		panic(err)
	}
	fmt.Println(res.Size)
	// Output: 3
}
