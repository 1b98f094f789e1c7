// Package transfer walks a tree decomposition bottom-up, driving the
// tutte.Operators set over each bag to fold child tables into parent
// tables and finally collapse the root bag's table into a single weight.
//
// Grounded on original_source/include/transfer.hpp's recurse/transfer
// pair: same vertex-not-in-parent deletion step before fusing a child's
// table, same per-edge join pass after fusion, same final whole-root
// deletion and one-entry assertion.
package transfer

import (
	"sort"

	"github.com/tuttengine/tuttengine/decomp"
	"github.com/tuttengine/tuttengine/ring"
	"github.com/tuttengine/tuttengine/tutte"
)

// indexOf returns the position of v within the sorted slice vertices.
// Panics if v is absent — a caller bug, since decomp.Bag guarantees every
// edge endpoint and every child vertex it references is present.
func indexOf(vertices []int, v int) int {
	idx := sort.SearchInts(vertices, v)
	if idx >= len(vertices) || vertices[idx] != v {
		panic("transfer: vertex not present in bag")
	}
	return idx
}

// setDifference returns the elements of a (sorted) absent from b (sorted),
// in ascending order, matching boost::range::set_difference.
func setDifference(a, b []int) []int {
	var out []int
	i, j := 0, 0
	for i < len(a) {
		for j < len(b) && b[j] < a[i] {
			j++
		}
		if j >= len(b) || b[j] != a[i] {
			out = append(out, a[i])
		} else {
			j++
		}
		i++
	}
	return out
}

// recurse computes b's transfer table: the empty state over b's own
// boundary, fused with every child's table (each first stripped of the
// positions b does not share), then joined across every genuine edge
// b.Edges records.
func recurse[W ring.Scalar[W]](op tutte.Operators[W], b *decomp.Bag) tutte.Table[W] {
	table := op.EmptyState(len(b.Vertices))

	for _, child := range b.Children {
		childTable := recurse(op, child)

		current := append([]int(nil), child.Vertices...)
		for _, v := range setDifference(child.Vertices, b.Vertices) {
			pos := indexOf(current, v)
			childTable = op.DeleteOperator(pos, childTable)
			current = append(current[:pos], current[pos+1:]...)
		}

		aToB := make([]int, len(current))
		for i, v := range current {
			aToB[i] = indexOf(b.Vertices, v)
		}
		table = op.TableFusion(aToB, childTable, table)
	}

	for _, e := range b.Edges {
		table = op.JoinOperator(indexOf(b.Vertices, e.U), indexOf(b.Vertices, e.V), table)
	}
	return table
}

// Transfer computes the overall weight of the tree decomposition rooted
// at root: recurse's table collapsed by deleting every position of the
// root bag, one at a time. The resulting table must have exactly one
// entry (the identity connectivity of size 0) — Table.Only panics
// otherwise, which spec.md §7 treats as an InternalInvariant bug, not a
// user-facing error.
func Transfer[W ring.Scalar[W]](op tutte.Operators[W], root *decomp.Bag) W {
	table := recurse(op, root)

	current := append([]int(nil), root.Vertices...)
	for _, v := range root.Vertices {
		pos := indexOf(current, v)
		table = op.DeleteOperator(pos, table)
		current = append(current[:pos], current[pos+1:]...)
	}

	_, w := table.Only()
	return w
}
