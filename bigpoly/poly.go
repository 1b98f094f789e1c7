// Package bigpoly implements the sparse bivariate polynomial ring used as
// the Tutte engine's weight type: elements of the form Σ c_ij Q^i v^j over
// a generic coefficient ring C (either bigint.Int for direct computation
// or zp.Element for a single Chinese-remainder pass).
//
// A Poly is a sorted slice of non-zero monomials, lexicographically ordered
// by (i, j); zero coefficients are purged after every mutating operation,
// so two polynomials representing the same value always compare equal
// element-wise. This mirrors the reference tool's polynomial_two<T>.
//
// Errors: none — Poly is a pure value type with no fallible constructors;
// malformed generic instantiations are caught at compile time by the
// ring.Scalar constraint.
package bigpoly

import (
	"sort"
	"strings"

	"github.com/tuttengine/tuttengine/ring"
)

// monomial is one non-zero term c * Q^i * v^j.
type monomial[C ring.Scalar[C]] struct {
	i, j uint16
	c    C
}

// Poly is a sparse bivariate polynomial over ring C. The zero value is the
// zero polynomial (no terms) and is ready to use without initialization.
type Poly[C ring.Scalar[C]] struct {
	terms []monomial[C]
}

// search returns the index of (i,j) in p.terms and whether it was found,
// using the same lexicographic order the slice is maintained in.
func (p *Poly[C]) search(i, j uint16) (int, bool) {
	n := len(p.terms)
	idx := sort.Search(n, func(k int) bool {
		t := p.terms[k]
		return t.i > i || (t.i == i && t.j >= j)
	})
	if idx < n && p.terms[idx].i == i && p.terms[idx].j == j {
		return idx, true
	}
	return idx, false
}

// combine merges delta into the coefficient at (i,j) via the supplied
// combine function, inserting delta as a fresh term if absent, and removing
// the term again if the result becomes zero.
func (p *Poly[C]) combine(i, j uint16, delta C, combine func(existing, delta C) C) {
	idx, found := p.search(i, j)
	if found {
		sum := combine(p.terms[idx].c, delta)
		if sum.IsZero() {
			p.terms = append(p.terms[:idx], p.terms[idx+1:]...)
		} else {
			p.terms[idx].c = sum
		}
		return
	}
	if delta.IsZero() {
		return
	}
	p.terms = append(p.terms, monomial[C]{})
	copy(p.terms[idx+1:], p.terms[idx:])
	p.terms[idx] = monomial[C]{i: i, j: j, c: delta}
}

// Len returns the number of non-zero monomials.
func (p *Poly[C]) Len() int { return len(p.terms) }

// Clone returns a deep copy; coefficients are copied by value.
func (p *Poly[C]) Clone() *Poly[C] {
	out := &Poly[C]{terms: make([]monomial[C], len(p.terms))}
	copy(out.terms, p.terms)
	return out
}

// Terms invokes fn for every non-zero monomial in lexicographic (i,j) order.
func (p *Poly[C]) Terms(fn func(i, j uint16, c C)) {
	for _, t := range p.terms {
		fn(t.i, t.j, t.c)
	}
}

// FromConst returns the constant polynomial c.
func FromConst[C ring.Scalar[C]](c C) Poly[C] {
	if c.IsZero() {
		return Poly[C]{}
	}
	return Poly[C]{terms: []monomial[C]{{i: 0, j: 0, c: c}}}
}

// Q returns the monomial Q^1 (coefficient one, supplied by the caller since
// a coefficient's "one" is context-dependent for modular rings).
func Q[C ring.Scalar[C]](one C) Poly[C] {
	return Poly[C]{terms: []monomial[C]{{i: 1, j: 0, c: one}}}
}

// V returns the monomial v^1 (coefficient one, supplied by the caller).
func V[C ring.Scalar[C]](one C) Poly[C] {
	return Poly[C]{terms: []monomial[C]{{i: 0, j: 1, c: one}}}
}

// Add returns x+y as a new polynomial.
func Add[C ring.Scalar[C]](x, y *Poly[C]) *Poly[C] {
	result := x.Clone()
	for _, t := range y.terms {
		result.combine(t.i, t.j, t.c, func(a, b C) C { return a.Add(b) })
	}
	return result
}

// Sub returns x-y as a new polynomial.
func Sub[C ring.Scalar[C]](x, y *Poly[C]) *Poly[C] {
	result := x.Clone()
	for _, t := range y.terms {
		neg := t.c.Neg()
		result.combine(t.i, t.j, neg, func(a, b C) C { return a.Add(b) })
	}
	return result
}

// Mul returns x*y (full convolution) as a new polynomial.
func Mul[C ring.Scalar[C]](x, y *Poly[C]) *Poly[C] {
	result := &Poly[C]{}
	for _, tx := range x.terms {
		for _, ty := range y.terms {
			prod := tx.c.Mul(ty.c)
			result.combine(tx.i+ty.i, tx.j+ty.j, prod, func(a, b C) C { return a.Add(b) })
		}
	}
	return result
}

// Neg returns -x as a new polynomial.
func Neg[C ring.Scalar[C]](x *Poly[C]) *Poly[C] {
	out := &Poly[C]{terms: make([]monomial[C], len(x.terms))}
	for k, t := range x.terms {
		out.terms[k] = monomial[C]{i: t.i, j: t.j, c: t.c.Neg()}
	}
	return out
}

// AddScalar returns p with c added to its constant (0,0) term.
func (p Poly[C]) AddScalar(c C) Poly[C] {
	result := p.Clone()
	result.combine(0, 0, c, func(a, b C) C { return a.Add(b) })
	return *result
}

// MulScalar returns p with every coefficient multiplied by c.
func (p Poly[C]) MulScalar(c C) Poly[C] {
	if c.IsZero() {
		return Poly[C]{}
	}
	out := &Poly[C]{terms: make([]monomial[C], 0, len(p.terms))}
	for _, t := range p.terms {
		scaled := t.c.Mul(c)
		if !scaled.IsZero() {
			out.terms = append(out.terms, monomial[C]{i: t.i, j: t.j, c: scaled})
		}
	}
	return *out
}

// Equal reports whether p and q have identical non-zero monomials. Value
// receiver, not pointer: Poly[C] itself satisfies ring.Scalar[Poly[C]]
// (see the ring.Scalar wrapper methods below), and that interface's
// methods take T, not *T.
func (p Poly[C]) Equal(q Poly[C]) bool {
	if len(p.terms) != len(q.terms) {
		return false
	}
	for k := range p.terms {
		a, b := p.terms[k], q.terms[k]
		if a.i != b.i || a.j != b.j || !a.c.Equal(b.c) {
			return false
		}
	}
	return true
}

// String renders p as "c0*Q^i0*v^j0 + c1*Q^i1*v^j1 + ...", or "0" for the
// zero polynomial, matching the reference tool's polynomial_two printer.
func (p Poly[C]) String() string {
	if len(p.terms) == 0 {
		return "0"
	}
	var b strings.Builder
	for k, t := range p.terms {
		if k > 0 {
			b.WriteString(" + ")
		}
		b.WriteString(t.c.String())
		if t.i > 0 {
			b.WriteString("*Q")
			if t.i > 1 {
				b.WriteByte('^')
				b.WriteString(uitoa(t.i))
			}
		}
		if t.j > 0 {
			b.WriteString("*v")
			if t.j > 1 {
				b.WriteByte('^')
				b.WriteString(uitoa(t.j))
			}
		}
	}
	return b.String()
}

func uitoa(n uint16) string {
	if n == 0 {
		return "0"
	}
	var buf [5]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

// Poly[C] satisfies ring.Scalar[Poly[C]]: a polynomial ring over ring C is
// itself a ring, which is what lets crt lift a Poly[zp.Element] table
// through exactly the same generic tutte.Operators/transfer code used for
// a bare scalar weight type, and what lets bigpoly.Poly itself be nested
// (a polynomial of polynomials) if a future ring ever needed that.
//
// These are thin value-receiver wrappers around the pointer-based
// top-level functions above, which do the actual work; see the ring
// package doc for why the wrapper shape (value in, value out) is
// necessary rather than exposing Add/Sub/Mul/Neg as the primary API.

// Add returns p+y.
func (p Poly[C]) Add(y Poly[C]) Poly[C] { return *Add(&p, &y) }

// Sub returns p-y.
func (p Poly[C]) Sub(y Poly[C]) Poly[C] { return *Sub(&p, &y) }

// Mul returns p*y.
func (p Poly[C]) Mul(y Poly[C]) Poly[C] { return *Mul(&p, &y) }

// Neg returns -p.
func (p Poly[C]) Neg() Poly[C] { return *Neg(&p) }

// IsZero reports whether p is the zero polynomial.
func (p Poly[C]) IsZero() bool { return len(p.terms) == 0 }

// MapCoeffs converts every coefficient of p via conv, producing a polynomial
// over a (possibly different) ring C2. This is the generic form of spec.md
// §4.B's "conversion from polynomial over scalar S to polynomial over
// scalar T applies the scalar conversion coefficientwise" — used by crt to
// lift a Poly[zp.Element] result into a Poly[bigint.Int].
func MapCoeffs[C1 ring.Scalar[C1], C2 ring.Scalar[C2]](p Poly[C1], conv func(c C1) C2) Poly[C2] {
	out := Poly[C2]{terms: make([]monomial[C2], 0, len(p.terms))}
	for _, t := range p.terms {
		c2 := conv(t.c)
		if !c2.IsZero() {
			out.terms = append(out.terms, monomial[C2]{i: t.i, j: t.j, c: c2})
		}
	}
	return out
}
