// Package crt implements the Chinese-remainder driver: it repeats the
// transfer-matrix recursion once per prime in a fixed table of 18
// near-2^32 primes, over the ring of sparse bivariate polynomials with
// Zp coefficients, and lifts the growing set of modular results into a
// single big-integer-coefficient polynomial via CRT reconstruction,
// redone from scratch over the growing prime set at every iteration, with
// symmetric-representative rounding.
//
// Grounded on original_source/include/chinese_compute.hpp: same prime
// table, same qs[i] = (pp/p_i)*modinv(pp/p_i, p_i) reconstruction
// coefficients recomputed in full every iteration, same pp>>1 symmetric
// cutoff, same "stop when the reduced result stops changing" convergence
// test. Unlike the reference, the modulus never lives in global state:
// each iteration builds a fresh zp.Element/tutte.Operators pair for its
// own prime (spec.md §5's preferred redesign).
package crt

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/tuttengine/tuttengine/bigint"
	"github.com/tuttengine/tuttengine/bigpoly"
	"github.com/tuttengine/tuttengine/decomp"
	"github.com/tuttengine/tuttengine/transfer"
	"github.com/tuttengine/tuttengine/tutte"
	"github.com/tuttengine/tuttengine/zp"
)

// Primes is the fixed table of 18 primes just below 2^32 the reference
// tool hardcodes, in descending order.
var Primes = []uint64{
	4294967291, 4294967279, 4294967231, 4294967197,
	4294967189, 4294967161, 4294967143, 4294967111,
	4294967087, 4294967029, 4294966997, 4294966981,
	4294966943, 4294966927, 4294966909, 4294966877,
	4294966829, 4294966813,
}

// ErrModulusExhausted indicates the reconstructed polynomial had not
// stabilized after every prime in Primes was used, matching spec.md §7's
// ModulusExhausted condition.
var ErrModulusExhausted = errors.New("crt: reconstruction did not converge within the fixed prime table")

// Compute runs the Chinese-remainder driver over the tree decomposition
// rooted at root, returning the reconstructed Tutte polynomial with
// bigint.Int coefficients.
//
// vValue builds the ring value substituted for the v indeterminate in
// every prime's operator set, given that prime's multiplicative identity;
// pass nil for the plain Tutte polynomial (v stays the indeterminate
// bigpoly.V(one)), or a builder returning bigpoly.Q(one).Neg() / a
// constant -1 polynomial for the --flow / --chromatic substitutions
// (spec.md §6) — the same substitution cmd/tuttengine applies to the
// direct big-integer path, just built fresh per prime.
//
// onIteration, if non-nil, is invoked after every prime's modular partial
// result is computed (and lifted to bigint.Int coefficients) — the
// driver's hook for the CLI's per-prime stderr logging.
func Compute(root *decomp.Bag, vValue func(one zp.Element) bigpoly.Poly[zp.Element], onIteration func(prime uint64, partial bigpoly.Poly[bigint.Int])) (bigpoly.Poly[bigint.Int], error) {
	pp := big.NewInt(1)
	var result, resultLast bigpoly.Poly[bigint.Int]
	partials := make([]bigpoly.Poly[bigint.Int], 0, len(Primes))

	for k, prime := range Primes {
		oneZp := zp.FromInt64(1, prime)
		v := bigpoly.V(oneZp)
		if vValue != nil {
			v = vValue(oneZp)
		}
		op := tutte.New(bigpoly.FromConst(oneZp), bigpoly.Q(oneZp), v)

		partialZp := transfer.Transfer(op, root)
		partial := bigpoly.MapCoeffs(partialZp, func(c zp.Element) bigint.Int {
			return bigint.FromInt64(int64(c.Uint64()))
		})
		partials = append(partials, partial)
		if onIteration != nil {
			onIteration(prime, partial)
		}

		pp.Mul(pp, new(big.Int).SetUint64(prime))

		qs := make([]*big.Int, k+1)
		for i := 0; i <= k; i++ {
			pi := new(big.Int).SetUint64(Primes[i])
			cofactor := new(big.Int).Div(pp, pi)
			inv := new(big.Int).ModInverse(cofactor, pi)
			if inv == nil {
				return bigpoly.Poly[bigint.Int]{}, fmt.Errorf("crt: prime %d is not invertible modulo %d", Primes[i], Primes[i])
			}
			qs[i] = new(big.Int).Mul(cofactor, inv)
		}

		sum := bigpoly.Poly[bigint.Int]{}
		for i := 0; i <= k; i++ {
			sum = sum.Add(partials[i].MulScalar(bigint.FromBigInt(qs[i])))
		}

		resultLast = result
		result = reduceSymmetric(sum, pp)
		if result.Equal(resultLast) {
			return result, nil
		}
	}
	return bigpoly.Poly[bigint.Int]{}, ErrModulusExhausted
}

// reduceSymmetric maps every coefficient of p into the symmetric range
// (-pp/2, pp/2], matching the reference's "e.c %= pp; if e.c > pp/2 then
// e.c -= pp".
func reduceSymmetric(p bigpoly.Poly[bigint.Int], pp *big.Int) bigpoly.Poly[bigint.Int] {
	half := new(big.Int).Rsh(pp, 1)
	return bigpoly.MapCoeffs(p, func(c bigint.Int) bigint.Int {
		v := new(big.Int).Mod(c.BigInt(), pp)
		if v.Cmp(half) > 0 {
			v.Sub(v, pp)
		}
		return bigint.FromBigInt(v)
	})
}
