// Package connset implements the connectivity-state abstraction: a
// canonicalized partition of a bag's boundary vertices, used as the hash
// key of every transfer table the tutte/transfer packages build.
//
// A State is a tiny byte-label array — clarity over asymptotics, per
// spec.md §4.C; real treewidths in practice stay well under maxLabels,
// so a plain slice (grounded on the teacher's small-ordered-set helpers
// in builder/sequence_primitives.go) beats a specialized inline array for
// readability without costing anything observable.
//
// Errors: none. Every operation here is a pure value-type primitive with
// no failure mode; out-of-range positions are a caller bug (the graph and
// decomp packages never produce one), so they panic via slice indexing
// rather than returning an error.
package connset

import "hash/fnv"

// maxLabels bounds the boundary width a State can represent: labels are
// stored as bytes, so a bag's vertex count must not exceed this. spec.md
// §9 flags the reference tool's hardcoded table of size 50 as an implicit
// treewidth ceiling; this engine keeps the same ceiling but as a named,
// documented constant rather than a silent magic number, and State itself
// never allocates a table of this size — it only ever sizes itself to the
// boundary it is actually given.
const maxLabels = 50

// detachedLabel marks a position severed from every other position: a
// "completed" boundary vertex that must never be merged again. Distinct
// detached positions sharing this one sentinel value is intentional —
// canonicalize folds them into the same fresh label, which is harmless
// because nothing in this engine's operator set (tutte.Operators) ever
// reconnects a detached position to anything else.
const detachedLabel byte = 0xFF

// State is a canonical partition of boundary-vertex positions 0..n-1 into
// connected components, represented as one label per position. Two
// positions share a label iff they are in the same component. The zero
// value is the empty (size-0) state.
type State struct {
	labels []byte
}

// New returns the identity partition of size n: every position its own
// singleton component, labeled 1..n.
func New(n int) State {
	if n > maxLabels {
		panic("connset: boundary width exceeds maxLabels")
	}
	labels := make([]byte, n)
	for i := range labels {
		labels[i] = byte(i + 1)
	}
	return State{labels: labels}
}

// Len returns the number of positions in the state.
func (s State) Len() int { return len(s.labels) }

// Label returns the raw label at position i.
func (s State) Label(i int) byte { return s.labels[i] }

// Connected reports whether positions i and j are in the same component.
func (s State) Connected(i, j int) bool { return s.labels[i] == s.labels[j] }

// Singleton reports whether position i's label occurs exactly once.
func (s State) Singleton(i int) bool {
	label := s.labels[i]
	count := 0
	for _, l := range s.labels {
		if l == label {
			count++
		}
	}
	return count == 1
}

// Connect merges the components of i and j by replacing every occurrence
// of labels[j] with labels[i]. A no-op if i and j are already connected.
func (s *State) Connect(i, j int) {
	from, to := s.labels[j], s.labels[i]
	if from == to {
		return
	}
	for k, l := range s.labels {
		if l == from {
			s.labels[k] = to
		}
	}
}

// Detach severs position i from every position that is not itself
// detached: a Connected check between i and such a position is false. All
// detached positions share one sentinel label, so two detached positions
// report Connected. Does not shrink the state.
func (s *State) Detach(i int) {
	s.labels[i] = detachedLabel
}

// DeleteNode removes position i, shifting every later position down by
// one. Shrinks the state by one.
func (s *State) DeleteNode(i int) {
	s.labels = append(s.labels[:i], s.labels[i+1:]...)
}

// Canonicalize renumbers labels 1,2,... in order of first appearance
// scanning left to right, so that two partitions equal as set-partitions
// compare byte-equal afterward. Must be called before inserting a State
// as a transfer-table key.
func (s *State) Canonicalize() {
	next := byte(1)
	seen := make(map[byte]byte, len(s.labels))
	for i, l := range s.labels {
		canon, ok := seen[l]
		if !ok {
			canon = next
			seen[l] = canon
			next++
		}
		s.labels[i] = canon
	}
}

// Decompose walks left to right; for each position whose label has
// already appeared earlier at position p, it calls f(p, i). This replays
// one state's partition onto another state's positions, the core step of
// table_fusion (tutte.Operators.TableFusion).
func (s State) Decompose(f func(p, i int)) {
	first := make(map[byte]int, len(s.labels))
	for i, l := range s.labels {
		if p, ok := first[l]; ok {
			f(p, i)
		} else {
			first[l] = i
		}
	}
}

// Hash returns an FNV-1a hash of the canonical label sequence, suitable
// for use as a map key alongside Equal. tutte.Table keys its map by Key
// instead.
func (s State) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write(s.labels)
	return h.Sum64()
}

// Equal reports byte-wise equality of two (already canonical) states.
func (s State) Equal(o State) bool {
	if len(s.labels) != len(o.labels) {
		return false
	}
	for i, l := range s.labels {
		if l != o.labels[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of s.
func (s State) Clone() State {
	out := make([]byte, len(s.labels))
	copy(out, s.labels)
	return State{labels: out}
}

// Key returns a comparable representation of the canonical state suitable
// as a Go map key: the label bytes copied into a string.
func (s State) Key() string { return string(s.labels) }
