package main

import (
	"math/big"
	"strings"

	"github.com/tuttengine/tuttengine/bigint"
	"github.com/tuttengine/tuttengine/bigpoly"
)

// formatPolynomial renders p in the official print form spec.md §6
// mandates: each nonzero monomial as "+ c Q^i v^j " or "- c Q^i v^j ",
// omitting c when |c|=1 and (i,j) isn't the constant term, and omitting
// the Q/v factor entirely when its exponent is 0. This is distinct from
// bigpoly.Poly.String, which always prints every coefficient and exists
// only for debug logging.
func formatPolynomial(p bigpoly.Poly[bigint.Int]) string {
	var b strings.Builder
	empty := true
	p.Terms(func(i, j uint16, c bigint.Int) {
		empty = false
		v := c.BigInt()
		if v.Sign() < 0 {
			b.WriteString("- ")
		} else {
			b.WriteString("+ ")
		}
		abs := new(big.Int).Abs(v)
		if abs.Cmp(one) != 0 || (i == 0 && j == 0) {
			b.WriteString(abs.String())
			b.WriteByte(' ')
		}
		writeFactor(&b, "Q", i)
		writeFactor(&b, "v", j)
	})
	if empty {
		return "0"
	}
	return strings.TrimSpace(b.String()) + " "
}

var one = big.NewInt(1)

// writeFactor appends "name " for exponent 1, "name^exp " for exponent >1,
// and nothing for exponent 0.
func writeFactor(b *strings.Builder, name string, exp uint16) {
	switch {
	case exp == 1:
		b.WriteString(name)
		b.WriteByte(' ')
	case exp > 1:
		b.WriteString(name)
		b.WriteByte('^')
		b.WriteString(uitoa(exp))
		b.WriteByte(' ')
	}
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
