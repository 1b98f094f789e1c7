// Package graph implements the undirected multigraph model the tree
// decomposition is built over: fixed vertex indices 0..N-1, stable edge
// indices, self-loops and parallel edges accepted as ordinary edges, and
// the vertex-elimination primitive the four ordering heuristics share.
//
// Grounded on the teacher's core package: Clone/CloneEmpty's "operate on
// a copy, never the original" convention (core/methods_clone.go) is used
// here for heuristic simulation and decomposition building, and the
// connectivity check (IsConnected) reuses bfs/bfs.go's walker-struct
// traversal idiom, adapted from string vertex IDs to integer indices.
//
// Errors:
//
//	ErrDisconnected - the graph has more than one connected component.
package graph

import "errors"

// ErrDisconnected indicates the graph is not a single connected component,
// which spec.md §1 requires as a precondition for the whole engine.
var ErrDisconnected = errors.New("graph: not connected")

// Edge is one genuine or fill-in edge between two (possibly equal, for a
// self-loop) vertex indices.
type Edge struct {
	ID     int
	U, V   int
	FillIn bool
}

// Graph is a working multigraph: vertices may be eliminated (removed)
// during heuristic simulation and decomposition building, but indices of
// surviving vertices never change, and edge indices are stable for the
// lifetime of the Graph they were added to.
type Graph struct {
	alive []bool
	adj   [][]int // adj[v] = indices into edges, incident to v, not yet pruned stale
	edges []Edge
}

// New returns a Graph over n vertices (0..n-1), all alive, with no edges.
func New(n int) *Graph {
	alive := make([]bool, n)
	for i := range alive {
		alive[i] = true
	}
	return &Graph{
		alive: alive,
		adj:   make([][]int, n),
	}
}

// NewFromPairs builds a Graph over n vertices with one genuine edge per
// (u,v) pair, in the order given (so parallel edges and self-loops from
// the input are preserved verbatim, per spec.md §1's "multi-edges
// accepted, self-loops behave as ordinary edges").
func NewFromPairs(n int, pairs [][2]int) *Graph {
	g := New(n)
	for _, p := range pairs {
		g.AddEdge(p[0], p[1], false)
	}
	return g
}

// N returns the number of vertices the Graph was constructed with
// (alive or not).
func (g *Graph) N() int { return len(g.alive) }

// Alive reports whether vertex v has not yet been eliminated.
func (g *Graph) Alive(v int) bool { return g.alive[v] }

// NumAlive returns the count of vertices not yet eliminated.
func (g *Graph) NumAlive() int {
	n := 0
	for _, a := range g.alive {
		if a {
			n++
		}
	}
	return n
}

// edgeActive reports whether e still connects two live vertices.
func (g *Graph) edgeActive(e Edge) bool { return g.alive[e.U] && g.alive[e.V] }

// AddEdge appends a fresh edge (u,v) and returns its stable index. fillIn
// marks it as an elimination-introduced edge, excluded from bag.edges.
func (g *Graph) AddEdge(u, v int, fillIn bool) int {
	id := len(g.edges)
	g.edges = append(g.edges, Edge{ID: id, U: u, V: v, FillIn: fillIn})
	g.adj[u] = append(g.adj[u], id)
	if u != v {
		g.adj[v] = append(g.adj[v], id)
	}
	return id
}

// EdgesAt returns every active edge incident to v, one entry per edge
// (parallel edges and the one self-loop entry each appear once per edge,
// matching spec.md §3's "ordered multiset" semantics for bag.edges).
func (g *Graph) EdgesAt(v int) []Edge {
	out := make([]Edge, 0, len(g.adj[v]))
	for _, id := range g.adj[v] {
		e := g.edges[id]
		if g.edgeActive(e) {
			out = append(out, e)
		}
	}
	return out
}

// NumEdges returns the number of active (non-fill-in or fill-in alike)
// edges in the graph, each counted once regardless of its two adjacency
// list entries.
func (g *Graph) NumEdges() int {
	n := 0
	for _, e := range g.edges {
		if g.edgeActive(e) {
			n++
		}
	}
	return n
}

// Degree returns the number of active incident edges of v, counting
// parallel edges with multiplicity (a self-loop contributes one, matching
// this package's single adjacency-list entry per self-loop).
func (g *Graph) Degree(v int) int { return len(g.EdgesAt(v)) }

// NeighborSet returns the distinct vertex indices adjacent to v via an
// active edge, excluding v itself (a self-loop is not its own neighbor).
func (g *Graph) NeighborSet(v int) []int {
	seen := make(map[int]struct{})
	var out []int
	for _, id := range g.adj[v] {
		e := g.edges[id]
		if !g.edgeActive(e) {
			continue
		}
		other := e.U
		if other == v {
			other = e.V
		}
		if other == v {
			continue // self-loop
		}
		if _, ok := seen[other]; !ok {
			seen[other] = struct{}{}
			out = append(out, other)
		}
	}
	return out
}

// HasEdge reports whether any active edge directly connects u and v.
func (g *Graph) HasEdge(u, v int) bool {
	for _, id := range g.adj[u] {
		e := g.edges[id]
		if !g.edgeActive(e) {
			continue
		}
		if (e.U == u && e.V == v) || (e.U == v && e.V == u) {
			return true
		}
	}
	return false
}

// EliminateVertex adds a fill-in edge between every pair of v's distinct
// neighbors not already adjacent (spec.md §4.E), then marks v dead. The
// returned edge ids are the fresh fill-in edges, in the order added.
func (g *Graph) EliminateVertex(v int) []int {
	neighbors := g.NeighborSet(v)
	var filled []int
	for _, a := range neighbors {
		for _, b := range neighbors {
			if a == b || g.HasEdge(a, b) {
				continue
			}
			filled = append(filled, g.AddEdge(a, b, true))
		}
	}
	g.alive[v] = false
	return filled
}

// Clone returns an independent deep copy: edges, aliveness and adjacency
// are all copied, so mutating the clone (e.g. during heuristic
// simulation) never touches g. Mirrors core/methods_clone.go's Clone.
func (g *Graph) Clone() *Graph {
	out := &Graph{
		alive: make([]bool, len(g.alive)),
		adj:   make([][]int, len(g.adj)),
		edges: make([]Edge, len(g.edges)),
	}
	copy(out.alive, g.alive)
	copy(out.edges, g.edges)
	for v, ids := range g.adj {
		out.adj[v] = make([]int, len(ids))
		copy(out.adj[v], ids)
	}
	return out
}

// IsConnected reports whether every alive vertex is reachable from any
// one alive vertex via active edges. An empty graph is trivially connected.
func (g *Graph) IsConnected() bool {
	start := -1
	for v, a := range g.alive {
		if a {
			start = v
			break
		}
	}
	if start == -1 {
		return true
	}
	w := &walker{g: g, visited: make([]bool, len(g.alive))}
	w.visit(start)
	for v, a := range g.alive {
		if a && !w.visited[v] {
			return false
		}
	}
	return true
}

// walker carries BFS traversal state for the connectivity check, mirroring
// bfs/bfs.go's walker struct adapted from string vertex IDs to indices.
type walker struct {
	g       *Graph
	visited []bool
	queue   []int
}

func (w *walker) visit(start int) {
	w.visited[start] = true
	w.queue = append(w.queue, start)
	for len(w.queue) > 0 {
		v := w.queue[0]
		w.queue = w.queue[1:]
		for _, u := range w.g.NeighborSet(v) {
			if !w.visited[u] {
				w.visited[u] = true
				w.queue = append(w.queue, u)
			}
		}
	}
}
