// Package ring declares the minimal method set a coefficient type must
// expose so that bigpoly, tutte, transfer and crt can be written once,
// generically, instead of once per scalar ring.
//
// Scalar is deliberately an immutable, value-semantics contract (every
// operation returns a new T rather than mutating a receiver through a
// pointer parameter). This sidesteps a real Go-generics trap: a
// constraint written against pointer-receiver methods (the math/big.Int
// "z.Add(x, y)" shape) is only satisfied by the pointer type *T, which
// then forces every generic container (bigpoly.Poly's monomial slice, in
// particular) to store pointers instead of plain values — and a pointer
// field's zero value is nil, not a usable zero ring element. Value
// semantics keep a zero T always valid and let bigpoly store coefficients
// inline, at the cost of an allocation per big.Int operation; see
// bigint.Int for how *big.Int is adapted to this shape.
package ring

// Scalar is satisfied by any ring element usable as a Tutte-engine weight
// or polynomial coefficient: bigint.Int (direct big-integer mode) and
// zp.Element (modular mode) both implement it.
type Scalar[T any] interface {
	// Add returns x+y.
	Add(y T) T
	// Sub returns x-y.
	Sub(y T) T
	// Mul returns x*y.
	Mul(y T) T
	// Neg returns -x.
	Neg() T
	// IsZero reports whether x is the additive identity of its ring.
	IsZero() bool
	// Equal reports whether x and y represent the same ring element.
	Equal(y T) bool
	// String renders a human-readable decimal form.
	String() string
}
