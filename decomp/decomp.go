// Package decomp builds the rooted tree decomposition the transfer
// recursion walks: one Bag per eliminated vertex, grouping it with its
// still-alive neighbors at the moment of elimination.
//
// Grounded on original_source/include/tree_decomposition/tree_decomposition.hpp's
// build_tree_decomposition: same per-vertex bag construction, same
// find-earliest-remaining-neighbor parent rule, same reverse-order child
// attachment. Sentinel-error and wrap-with-method-context conventions are
// grounded on builder/errors.go.
//
// Errors:
//
//	ErrNotAPermutation - the supplied elimination order omits or repeats a vertex.
package decomp

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tuttengine/tuttengine/graph"
)

// ErrNotAPermutation indicates an elimination order is not a permutation
// of 0..N-1 (missing id, repeated id, or out-of-range id), matching
// spec.md §6's "elimination-order not a permutation" exit condition.
var ErrNotAPermutation = fmt.Errorf("decomp: elimination order is not a permutation")

// Bag is one node of the tree decomposition.
type Bag struct {
	// Vertices is the bag's boundary, kept sorted ascending and unique.
	Vertices []int
	// Edges is the ordered multiset of genuine (non-fill-in) graph edges
	// whose both endpoints lie in this bag, each attributed to exactly
	// one bag across the whole tree.
	Edges []Pair
	// Children are this bag's subtrees, in elimination-order-reverse
	// attachment order.
	Children []*Bag
}

// Pair is an ordered endpoint pair (v, other) for one genuine edge,
// recorded in the direction it was discovered during bag construction.
type Pair struct{ U, V int }

// validatePermutation checks order is a permutation of 0..n-1.
func validatePermutation(order []int, n int) error {
	if len(order) != n {
		return ErrNotAPermutation
	}
	seen := make([]bool, n)
	for _, v := range order {
		if v < 0 || v >= n || seen[v] {
			return ErrNotAPermutation
		}
		seen[v] = true
	}
	return nil
}

// NewFromOrder builds the tree decomposition of g by eliminating vertices
// in the given order, and returns its root bag. g is not mutated (the
// elimination runs against a clone, per spec.md §4.E).
func NewFromOrder(g *graph.Graph, order []int) (*Bag, error) {
	if err := validatePermutation(order, g.N()); err != nil {
		return nil, err
	}

	work := g.Clone()
	n := g.N()
	bags := make([]*Bag, n)
	parent := make([]int, n)
	for i := range parent {
		parent[i] = -1
	}

	for _, v := range order {
		bag := &Bag{}
		insertSorted(&bag.Vertices, v)
		for _, e := range work.EdgesAt(v) {
			other := e.U
			if other == v {
				other = e.V
			}
			insertSorted(&bag.Vertices, other)
			if !e.FillIn {
				bag.Edges = append(bag.Edges, Pair{U: v, V: other})
			}
		}
		bags[v] = bag

		if neighbors := work.NeighborSet(v); len(neighbors) > 0 {
			parent[v] = earliestInOrder(order, neighbors)
		}
		work.EliminateVertex(v)
	}

	root := bags[order[len(order)-1]]
	for i := len(order) - 2; i >= 0; i-- {
		v := order[i]
		p := bags[parent[v]]
		p.Children = append(p.Children, bags[v])
	}
	return root, nil
}

// earliestInOrder returns the first vertex in order that also appears in
// neighbors, mirroring boost::find_first_of(vertices, adjacent_vertices(v,g)).
func earliestInOrder(order []int, neighbors []int) int {
	set := make(map[int]struct{}, len(neighbors))
	for _, u := range neighbors {
		set[u] = struct{}{}
	}
	for _, v := range order {
		if _, ok := set[v]; ok {
			return v
		}
	}
	panic("decomp: neighbor not found in elimination order")
}

// insertSorted inserts v into *vertices, keeping it sorted ascending and
// unique (a no-op if v is already present).
func insertSorted(vertices *[]int, v int) {
	vs := *vertices
	idx := sort.SearchInts(vs, v)
	if idx < len(vs) && vs[idx] == v {
		return
	}
	vs = append(vs, 0)
	copy(vs[idx+1:], vs[idx:])
	vs[idx] = v
	*vertices = vs
}

// Treewidth returns the width of the decomposition rooted at b: the
// largest bag size minus one.
func (b *Bag) Treewidth() int {
	maxSize := 0
	var walk func(*Bag)
	walk = func(n *Bag) {
		if len(n.Vertices) > maxSize {
			maxSize = len(n.Vertices)
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(b)
	return maxSize - 1
}

// String renders b and its subtree as
// "( v1 v2 ... | u-w u-w ... ) { child child ... }", matching
// original_source/include/tree_decomposition/tree_decomposition.hpp's
// print_tree (children subsection omitted when empty, per spec.md §6).
func (b *Bag) String() string {
	var sb strings.Builder
	b.writeTo(&sb)
	return sb.String()
}

func (b *Bag) writeTo(sb *strings.Builder) {
	sb.WriteString("( ")
	for _, v := range b.Vertices {
		fmt.Fprintf(sb, "%d ", v)
	}
	if len(b.Edges) > 0 {
		sb.WriteString("| ")
		for _, p := range b.Edges {
			fmt.Fprintf(sb, "%d-%d ", p.U, p.V)
		}
	}
	sb.WriteString(") ")
	if len(b.Children) > 0 {
		sb.WriteString("{ ")
		for _, c := range b.Children {
			c.writeTo(sb)
		}
		sb.WriteString("} ")
	}
}
