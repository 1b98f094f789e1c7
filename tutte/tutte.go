// Package tutte implements the operator set that evolves transfer tables
// across bags of a tree decomposition: empty_state, join_operator,
// delete_operator and table_fusion, grounded on
// original_source/include/transfer.hpp and include/tutte.hpp.
//
// Operators are parameterized over a weight ring W (ring.Scalar[W]) so
// the same code drives both the direct big-integer-polynomial
// computation and each Chinese-remainder pass over Zp-polynomials,
// matching spec.md §9's "achieve polymorphism over the ring with generic
// parameters rather than virtual dispatch" design note.
//
// Every operator returns a fresh Table; none mutate their input, matching
// spec.md §4.D.
package tutte

import "github.com/tuttengine/tuttengine/connset"
import "github.com/tuttengine/tuttengine/ring"

// Table maps a canonical connectivity state to its accumulated weight.
// Absent keys denote a zero weight; no zero-valued entry is ever stored.
type Table[W ring.Scalar[W]] struct {
	entries map[string]entry[W]
}

type entry[W ring.Scalar[W]] struct {
	state  connset.State
	weight W
}

func newTable[W ring.Scalar[W]]() Table[W] {
	return Table[W]{entries: make(map[string]entry[W])}
}

// Len returns the number of non-zero entries.
func (t Table[W]) Len() int { return len(t.entries) }

// ForEach invokes fn for every (state, weight) entry, in unspecified order.
func (t Table[W]) ForEach(fn func(c connset.State, w W)) {
	for _, e := range t.entries {
		fn(e.state, e.weight)
	}
}

// Only returns the sole entry of a single-entry table, for the top-level
// transfer assertion (spec.md §4.F: "assert |table| == 1"). Panics if the
// table does not have exactly one entry — an InternalInvariant violation
// per spec.md §7, indicating a bug in the recursion, not bad user input.
func (t Table[W]) Only() (connset.State, W) {
	if len(t.entries) != 1 {
		panic("tutte: table does not have exactly one entry")
	}
	for _, e := range t.entries {
		return e.state, e.weight
	}
	panic("unreachable")
}

// accumulate adds w to the table's entry for c (inserting one if absent),
// purging the entry if the result becomes zero.
func (t Table[W]) accumulate(c connset.State, w W) {
	key := c.Key()
	if existing, ok := t.entries[key]; ok {
		sum := existing.weight.Add(w)
		if sum.IsZero() {
			delete(t.entries, key)
		} else {
			t.entries[key] = entry[W]{state: existing.state, weight: sum}
		}
		return
	}
	if !w.IsZero() {
		t.entries[key] = entry[W]{state: c, weight: w}
	}
}

// Operators bundles the ring constants every operator needs: the
// multiplicative identity (One), and the two Tutte-polynomial
// indeterminates (Q, V). ring.Scalar deliberately has no "one" or "zero"
// constructor of its own (see the ring package doc), so these are
// supplied explicitly by the caller that built W in the first place
// (cmd/tuttengine for the direct path, crt for each modular pass).
type Operators[W ring.Scalar[W]] struct {
	One W
	Q   W
	V   W
}

// New returns an Operators instance for ring W, given its multiplicative
// identity and the Q, V indeterminates as values of that ring.
func New[W ring.Scalar[W]](one, q, v W) Operators[W] {
	return Operators[W]{One: one, Q: q, V: v}
}

// EmptyState returns a table with a single key — the identity
// connectivity of size n — and value One.
func (op Operators[W]) EmptyState(n int) Table[W] {
	t := newTable[W]()
	t.accumulate(connset.New(n), op.One)
	return t
}

// JoinOperator applies the effect of adding an edge between bag-positions
// i and j to every configuration in t: for each (c,w), the edge-absent
// case carries w through unchanged, and the edge-present case merges i
// and j's components and carries w*V.
func (op Operators[W]) JoinOperator(i, j int, t Table[W]) Table[W] {
	out := newTable[W]()
	t.ForEach(func(c connset.State, w W) {
		out.accumulate(c, w)

		merged := c.Clone()
		merged.Connect(i, j)
		merged.Canonicalize()
		out.accumulate(merged, w.Mul(op.V))
	})
	return out
}

// DeleteOperator removes position i from every key. A position leaving
// the boundary alone (singleton) closes a component and contributes a
// factor Q; a position that was already joined to another contributes 1.
func (op Operators[W]) DeleteOperator(i int, t Table[W]) Table[W] {
	out := newTable[W]()
	t.ForEach(func(c connset.State, w W) {
		weight := w
		if c.Singleton(i) {
			weight = w.Mul(op.Q)
		}
		reduced := c.Clone()
		reduced.DeleteNode(i)
		reduced.Canonicalize()
		out.accumulate(reduced, weight)
	})
	return out
}

// TableFusion merges child table a into parent table b after a's boundary
// has been permuted into b's positions: aToB[i] gives the position in b
// corresponding to a-position i. For every pair of entries (one from a,
// one from b), a's partition is replayed onto a copy of b's connectivity
// via connset.State.Decompose, and the weights multiply.
func (op Operators[W]) TableFusion(aToB []int, a, b Table[W]) Table[W] {
	out := newTable[W]()
	a.ForEach(func(ca connset.State, wa W) {
		b.ForEach(func(cb connset.State, wb W) {
			merged := cb.Clone()
			ca.Decompose(func(p, q int) {
				merged.Connect(aToB[p], aToB[q])
			})
			merged.Canonicalize()
			out.accumulate(merged, wa.Mul(wb))
		})
	})
	return out
}
