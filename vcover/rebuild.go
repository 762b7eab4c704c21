package vcover

import "github.com/jwalteros/dOmega/graph"

// rebuildSubgraph compacts the survivors of a removal pass into a fresh
// subgraph. Vertices keep their parent IDs, get new consecutive local
// positions, and degrees are recounted from the surviving adjacency, so
// any lazy degree bookkeeping in the source is irrelevant here. Sorted
// adjacency survives compaction because the position remap is monotone.
func rebuildSubgraph(n, numRemoved int, vertices []graph.Vertex, adjLists [][]int, removed []bool) graph.Subgraph {
	kept := n - numRemoved
	sg := graph.Subgraph{
		N:        kept,
		Created:  true,
		Vertices: make([]graph.Vertex, kept),
		AdjLists: make([][]int, kept),
	}

	mask := make([]int, n)
	count := 0
	for i := 0; i < n; i++ {
		if removed[vertices[i].Pos] {
			continue
		}
		sg.Vertices[count] = graph.Vertex{ID: vertices[i].ID, Degree: 0, Pos: count}
		sg.AdjLists[count] = make([]int, 0, vertices[i].Degree)
		mask[vertices[i].Pos] = count
		count++
	}

	largestDegree := 0
	for i := 0; i < n; i++ {
		pos := vertices[i].Pos
		if removed[pos] {
			continue
		}
		to := mask[pos]
		for _, u := range adjLists[pos] {
			if removed[u] {
				continue
			}
			sg.AdjLists[to] = append(sg.AdjLists[to], mask[u])
			sg.Vertices[to].Degree++
		}
		sg.M += sg.Vertices[to].Degree
		if sg.Vertices[to].Degree > largestDegree {
			largestDegree = sg.Vertices[to].Degree
			sg.LargestDegreeVertex = to
		}
	}
	sg.M /= 2

	return sg
}
