// Package graph type declarations and sentinel errors.
package graph

import (
	"errors"
	"time"
)

// Sentinel errors for graph construction.
var (
	// ErrBadHeader is returned when the first line of an input file does not
	// hold two positive integers n and m.
	ErrBadHeader = errors.New("graph: malformed header, want positive n and m")

	// ErrBadEdge is returned when an edge line cannot be parsed, or when the
	// input names more distinct vertices than the header promised.
	ErrBadEdge = errors.New("graph: malformed edge entry")

	// ErrNilGraph is returned by algorithms that receive a nil *Graph.
	ErrNilGraph = errors.New("graph: graph is nil")
)

// Graph is a simple undirected graph in CSR form. It is immutable once
// built: every field is written exactly once during construction and only
// read thereafter, so a Graph may be shared freely across goroutines.
type Graph struct {
	// Name identifies the graph, typically the input filename.
	Name string

	// N and M are the vertex and edge counts after deduplication.
	N, M int

	// MinDegree and MaxDegree are δ and Δ over all vertices.
	MinDegree, MaxDegree int

	// EdgeBegin has length N+1; the neighbours of v occupy
	// EdgeTo[EdgeBegin[v]:EdgeBegin[v+1]], sorted ascending.
	EdgeBegin []int

	// EdgeTo holds all 2·M directed arcs of the symmetric adjacency.
	EdgeTo []int

	// Degree[v] is the number of neighbours of v.
	Degree []int

	// Alias[v] is the external name of internal vertex v.
	Alias []int

	// ReadTime is how long parsing and CSR assembly took.
	ReadTime time.Duration
}

// Vertex is a vertex record inside a Subgraph. ID is the vertex's index in
// the parent graph, Pos its local position within the subgraph; Degree is
// scoped to the subgraph and recomputed whenever a kernel rebuilds it.
type Vertex struct {
	ID     int
	Degree int
	Pos    int
}

// Subgraph is the record handed between the degeneracy engine and the
// vertex-cover kernels. In a subgraph built by the degeneracy engine,
// Vertices[0] is the pivot vertex it was derived from; kernels rebuilt
// from it may have dropped the pivot. AdjLists hold local positions,
// sorted ascending.
//
// Created reports whether AdjLists have been materialised: the degeneracy
// engine populates only the vertex sets, and the complement adjacency is
// filled in lazily on first use.
type Subgraph struct {
	N, M    int
	Created bool

	Vertices []Vertex
	AdjLists [][]int

	// LargestDegreeVertex is the local position of a maximum-degree vertex,
	// used as the branching pivot by the cover solver.
	LargestDegreeVertex int
}

// Clone returns a deep copy of s. Kernels call it before handing a shared
// subgraph to code that mutates adjacency in place.
func (s *Subgraph) Clone() Subgraph {
	c := Subgraph{
		N:                   s.N,
		M:                   s.M,
		Created:             s.Created,
		LargestDegreeVertex: s.LargestDegreeVertex,
		Vertices:            make([]Vertex, len(s.Vertices)),
		AdjLists:            make([][]int, len(s.AdjLists)),
	}
	copy(c.Vertices, s.Vertices)
	for i, adj := range s.AdjLists {
		if adj != nil {
			c.AdjLists[i] = make([]int, len(adj))
			copy(c.AdjLists[i], adj)
		}
	}

	return c
}
