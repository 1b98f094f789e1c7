// Package zp implements the modular scalar ring Z/pZ used by the
// Chinese-remainder driver (crt) to carry out the transfer-matrix
// recursion modulo a sequence of distinct 32-bit primes.
//
// Unlike the reference tool this engine learns from, the modulus is never
// global: every Element carries its own modulus, so two operator sets built
// against different primes can run side by side (or, in a future rewrite,
// concurrently) without any shared mutable state. This is the redesign
// spec.md explicitly asks for in its "Global modulus" design note.
//
// Element is an immutable value type: every arithmetic method returns a
// fresh Element rather than mutating the receiver, matching the rest of
// the engine's "operators never mutate their inputs" convention (spec.md
// §4.D) and keeping Element a plain, comparable, allocation-free value
// usable as a generic ring.Scalar without pointer-receiver gymnastics.
//
// Errors:
//
//	ErrModulusZero    - an Element was asked to operate with modulus 0.
//	ErrModulusMismatch - two Elements with distinct, non-zero moduli were combined.
package zp

import (
	"errors"
	"fmt"
	"math/bits"
)

// Sentinel errors for modular-scalar construction and arithmetic.
var (
	// ErrModulusZero indicates a modulus of zero was supplied, which is
	// undefined for modular arithmetic (division by zero downstream).
	ErrModulusZero = errors.New("zp: modulus must be non-zero")

	// ErrModulusMismatch indicates two Elements carrying different non-zero
	// moduli were combined in an arithmetic operation.
	ErrModulusMismatch = errors.New("zp: operands carry different moduli")
)

// Element is an unsigned residue in [0, p) together with its modulus p.
// The zero value has rep 0 and mod 0; it behaves as a context-free zero
// (see resolveModulus) so a freshly zeroed polynomial coefficient slot can
// be combined with a properly constructed Element without panicking.
//
// p must be < 2^32 so that Mul's 128-bit reduction never has a high word
// greater than the modulus (Div64 requires this to avoid a wraparound
// panic). The Chinese-remainder driver's fixed prime table satisfies this.
type Element struct {
	rep uint64
	mod uint64
}

// New returns the zero Element of Z/pZ. Panics if p is 0: this is a
// programmer error (picking a modulus), not a data error, so it is caught
// immediately rather than propagated as a sentinel through arithmetic.
func New(p uint64) Element {
	if p == 0 {
		panic(fmt.Sprintf("zp.New: %v", ErrModulusZero))
	}
	return Element{rep: 0, mod: p}
}

// FromInt64 builds the Element representing n mod p, taking the sign of n
// into account (n<0 maps to p-((-n) mod p), matching spec.md §4.A).
func FromInt64(n int64, p uint64) Element {
	if p == 0 {
		panic(fmt.Sprintf("zp.FromInt64: %v", ErrModulusZero))
	}
	if n >= 0 {
		return Element{rep: uint64(n) % p, mod: p}
	}
	neg := uint64(-n) % p
	if neg == 0 {
		return Element{rep: 0, mod: p}
	}
	return Element{rep: p - neg, mod: p}
}

// Modulus returns the element's modulus (0 for a never-assigned zero value).
func (x Element) Modulus() uint64 { return x.mod }

// Uint64 returns the residue as an unsigned integer in [0, mod).
func (x Element) Uint64() uint64 { return x.rep }

// resolveModulus picks the modulus two operands should operate under: a
// true zero value (mod==0, e.g. a never-written map slot) defers to
// whichever side actually carries one. Combining two elements that both
// carry distinct non-zero moduli is a caller bug, not user input, so it
// panics rather than threading an error through every ring operation.
func resolveModulus(a, b uint64) uint64 {
	switch {
	case a == 0:
		return b
	case b == 0:
		return a
	case a == b:
		return a
	default:
		panic(fmt.Sprintf("zp: %v (%d vs %d)", ErrModulusMismatch, a, b))
	}
}

// Add returns x+y mod p. Overflow is avoided by comparing x.rep against
// p-y.rep instead of computing the sum first, per spec.md §4.A.
func (x Element) Add(y Element) Element {
	p := resolveModulus(x.mod, y.mod)
	if x.rep >= p-y.rep {
		return Element{rep: x.rep - (p - y.rep), mod: p}
	}
	return Element{rep: x.rep + y.rep, mod: p}
}

// Sub returns x-y mod p.
func (x Element) Sub(y Element) Element {
	p := resolveModulus(x.mod, y.mod)
	if x.rep >= y.rep {
		return Element{rep: x.rep - y.rep, mod: p}
	}
	return Element{rep: p - y.rep + x.rep, mod: p}
}

// Mul returns x*y mod p.
//
// The reference implementation computes this with a long-double (80-bit
// extended precision) estimate of floor(a*b/p); Go has no such float type,
// so this uses the idiomatic replacement: a 128-bit product via
// math/bits.Mul64 followed by an exact 128-by-64 division via
// math/bits.Div64. This is both branch-free and exact for the engine's
// full p < 2^32 range (the reference technique was only claimed valid up
// to p < 2^62, and relies on floating-point rounding behavior that does
// not translate across C++ implementations).
func (x Element) Mul(y Element) Element {
	p := resolveModulus(x.mod, y.mod)
	hi, lo := bits.Mul64(x.rep, y.rep)
	_, r := bits.Div64(hi, lo, p)
	return Element{rep: r, mod: p}
}

// Neg returns -x mod p.
func (x Element) Neg() Element {
	if x.rep == 0 {
		return Element{rep: 0, mod: x.mod}
	}
	return Element{rep: x.mod - x.rep, mod: x.mod}
}

// IsZero reports whether the residue is zero.
func (x Element) IsZero() bool { return x.rep == 0 }

// Equal reports whether x and y carry the same residue. A context-free
// zero value (mod==0) compares equal to any zero residue regardless of
// modulus, matching Add/Sub/Mul's deferral behavior.
func (x Element) Equal(y Element) bool { return x.rep == y.rep }

// String renders "rep (mod p)", mirroring the reference Zp::operator<<.
func (x Element) String() string {
	return fmt.Sprintf("%d (mod %d)", x.rep, x.mod)
}
