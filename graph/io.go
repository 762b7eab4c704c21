package graph

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// FromEdgeList reads the edge-list format: a header line "n m" followed by
// m lines of two integers. Vertex labels are arbitrary integers mapped to
// internal indices on first sighting; self-loops and duplicate edges are
// silently dropped, so the resulting M may be smaller than the header's m.
func FromEdgeList(r io.Reader, name string) (*Graph, error) {
	start := time.Now()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1<<24)
	sc.Split(bufio.ScanWords)

	n, m, err := readHeader(sc)
	if err != nil {
		return nil, err
	}

	adj := make([]map[int]struct{}, n)
	for i := range adj {
		adj[i] = make(map[int]struct{})
	}
	alias := make([]int, n)
	nameMap := make(map[int]int, n)
	counter := 0

	// Resolves an external label to an internal index, assigning the next
	// free index on first sighting.
	intern := func(label int) (int, error) {
		if idx, ok := nameMap[label]; ok {
			return idx, nil
		}
		if counter >= n {
			return 0, fmt.Errorf("%w: more than %d distinct vertex labels", ErrBadEdge, n)
		}
		nameMap[label] = counter
		alias[counter] = label
		counter++

		return counter - 1, nil
	}

	for e := 0; e < m; e++ {
		i, err := readInt(sc)
		if err != nil {
			return nil, err
		}
		j, err := readInt(sc)
		if err != nil {
			return nil, err
		}
		u, err := intern(i)
		if err != nil {
			return nil, err
		}
		v, err := intern(j)
		if err != nil {
			return nil, err
		}
		if u == v {
			continue
		}
		adj[u][v] = struct{}{}
		adj[v][u] = struct{}{}
	}

	// Labels never seen keep a zero alias; give trailing isolated vertices
	// their index as a name so the alias slice stays injective enough for
	// diagnostics.
	for ; counter < n; counter++ {
		alias[counter] = counter
	}

	g := assemble(name, adj, alias)
	g.ReadTime = time.Since(start)

	return g, nil
}

// FromAdjacency reads the adjacency-list format: a header line "n m", then
// n lines where line i lists the 1-based neighbours of vertex i.
// Duplicates within a list are dropped; the graph is assumed undirected
// and both directions are recorded, so asymmetric input is symmetrised.
func FromAdjacency(r io.Reader, name string) (*Graph, error) {
	start := time.Now()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1<<24)

	if !sc.Scan() {
		return nil, fmt.Errorf("%w: missing header line", ErrBadHeader)
	}
	header := strings.Fields(sc.Text())
	if len(header) != 2 {
		return nil, fmt.Errorf("%w: got %q", ErrBadHeader, sc.Text())
	}
	n, err1 := strconv.Atoi(header[0])
	m, err2 := strconv.Atoi(header[1])
	if err1 != nil || err2 != nil || n*m == 0 || n < 0 || m < 0 {
		return nil, fmt.Errorf("%w: got %q", ErrBadHeader, sc.Text())
	}

	adj := make([]map[int]struct{}, n)
	alias := make([]int, n)
	for i := range adj {
		adj[i] = make(map[int]struct{})
		alias[i] = i + 1
	}

	for i := 0; i < n && sc.Scan(); i++ {
		for _, field := range strings.Fields(sc.Text()) {
			j, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("%w: vertex %d neighbour %q", ErrBadEdge, i+1, field)
			}
			if j < 1 || j > n {
				return nil, fmt.Errorf("%w: vertex %d neighbour %d outside [1,%d]", ErrBadEdge, i+1, j, n)
			}
			if j-1 == i {
				continue
			}
			adj[i][j-1] = struct{}{}
			adj[j-1][i] = struct{}{}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("graph: reading %s: %w", name, err)
	}

	g := assemble(name, adj, alias)
	g.ReadTime = time.Since(start)

	return g, nil
}

// readHeader scans "n m" in word mode and validates n·m > 0.
func readHeader(sc *bufio.Scanner) (n, m int, err error) {
	n, err = readInt(sc)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: missing n", ErrBadHeader)
	}
	m, err = readInt(sc)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: missing m", ErrBadHeader)
	}
	if n <= 0 || m <= 0 {
		return 0, 0, fmt.Errorf("%w: n=%d m=%d", ErrBadHeader, n, m)
	}

	return n, m, nil
}

// readInt scans the next whitespace-separated token as an integer.
func readInt(sc *bufio.Scanner) (int, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, fmt.Errorf("graph: %w", err)
		}

		return 0, fmt.Errorf("%w: unexpected end of input", ErrBadEdge)
	}
	v, err := strconv.Atoi(sc.Text())
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadEdge, sc.Text())
	}

	return v, nil
}
