// Package bigint adapts math/big.Int to the engine's value-semantics
// ring.Scalar contract, so the unbounded-precision "direct" Tutte
// computation (spec.md §4.G's non-modular path) can share the same
// generic bigpoly.Poly and transfer-matrix code as zp.Element's modular
// arithmetic.
//
// math/big.Int already gives the standard library's own zero value a
// well-defined meaning ("the zero value for an Int represents the value
// 0"), but its methods are pointer-receiver and mutate-in-place, which is
// the wrong shape for ring.Scalar (see the ring package doc for why).
// Int wraps a *big.Int and exposes an immutable, value-receiver API
// instead; every operation allocates a fresh big.Int, which is the
// accepted cost of making the type fit cleanly into generic, allocation-
// light code elsewhere in the engine.
package bigint

import "math/big"

// Int is an arbitrary-precision integer with value semantics: every
// arithmetic method returns a new Int, and the zero value is valid (0).
type Int struct {
	v *big.Int
}

// FromInt64 returns the Int representing n.
func FromInt64(n int64) Int {
	return Int{v: big.NewInt(n)}
}

// FromBigInt wraps an existing *big.Int. The argument is copied; the
// caller's big.Int is never aliased or mutated.
func FromBigInt(v *big.Int) Int {
	return Int{v: new(big.Int).Set(v)}
}

// ref returns a non-nil *big.Int for x, treating a zero-valued Int (v==nil)
// as big.Int's own zero.
func (x Int) ref() *big.Int {
	if x.v == nil {
		return new(big.Int)
	}
	return x.v
}

// BigInt returns the underlying value as a *big.Int the caller may read
// but must not mutate.
func (x Int) BigInt() *big.Int { return x.ref() }

// Add returns x+y.
func (x Int) Add(y Int) Int { return Int{v: new(big.Int).Add(x.ref(), y.ref())} }

// Sub returns x-y.
func (x Int) Sub(y Int) Int { return Int{v: new(big.Int).Sub(x.ref(), y.ref())} }

// Mul returns x*y.
func (x Int) Mul(y Int) Int { return Int{v: new(big.Int).Mul(x.ref(), y.ref())} }

// Neg returns -x.
func (x Int) Neg() Int { return Int{v: new(big.Int).Neg(x.ref())} }

// IsZero reports whether x is 0.
func (x Int) IsZero() bool { return x.ref().Sign() == 0 }

// Equal reports whether x and y represent the same integer.
func (x Int) Equal(y Int) bool { return x.ref().Cmp(y.ref()) == 0 }

// String renders x in decimal, matching big.Int's own default format.
func (x Int) String() string { return x.ref().String() }
