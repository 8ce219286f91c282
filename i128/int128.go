// Package i128 implements a 128-bit signed integer type.
//
// Arithmetic wraps modulo 2^128 the same way the built-in integer types
// wrap, except for division, which panics on a zero divisor.
package i128

import (
	"math/big"
	"math/bits"
)

// Int128 represents a 128-bit two's complement integer.
// The zero value is 0.
type Int128 struct {
	lo uint64
	hi int64
}

// FromInt64 returns n as an Int128.
func FromInt64(n int64) Int128 {
	return Int128{lo: uint64(n), hi: n >> 63}
}

// Int64 returns the low 64 bits of i as an int64.
func (i Int128) Int64() int64 { return int64(i.lo) }

// IsInt64 reports whether i can be represented as an int64.
func (i Int128) IsInt64() bool {
	return i.hi == int64(i.lo)>>63
}

// And computes i & j.
func (i Int128) And(j Int128) Int128 {
	return Int128{lo: i.lo & j.lo, hi: i.hi & j.hi}
}

// Or computes i | j.
func (i Int128) Or(j Int128) Int128 {
	return Int128{lo: i.lo | j.lo, hi: i.hi | j.hi}
}

// Xor computes i ^ j.
func (i Int128) Xor(j Int128) Int128 {
	return Int128{lo: i.lo ^ j.lo, hi: i.hi ^ j.hi}
}

// AndNot computes i &^ j.
func (i Int128) AndNot(j Int128) Int128 {
	return Int128{lo: i.lo &^ j.lo, hi: i.hi &^ j.hi}
}

// Comp computes ^i.
func (i Int128) Comp() Int128 {
	return Int128{lo: ^i.lo, hi: ^i.hi}
}

// Add computes i + j.
func (i Int128) Add(j Int128) Int128 {
	lo, carry := bits.Add64(i.lo, j.lo, 0)
	hi, _ := bits.Add64(uint64(i.hi), uint64(j.hi), carry)
	return Int128{lo: lo, hi: int64(hi)}
}

// Sub computes i - j.
func (i Int128) Sub(j Int128) Int128 {
	lo, borrow := bits.Sub64(i.lo, j.lo, 0)
	hi, _ := bits.Sub64(uint64(i.hi), uint64(j.hi), borrow)
	return Int128{lo: lo, hi: int64(hi)}
}

// Neg computes -i.
func (i Int128) Neg() Int128 {
	return Int128{}.Sub(i)
}

// Mul computes i * j.
func (i Int128) Mul(j Int128) Int128 {
	hi, lo := bits.Mul64(i.lo, j.lo)
	hi += uint64(i.hi)*j.lo + i.lo*uint64(j.hi)
	return Int128{lo: lo, hi: int64(hi)}
}

// Sign returns -1, 0, or 1 according to the sign of i.
func (i Int128) Sign() int {
	switch {
	case i.hi < 0:
		return -1
	case i.hi == 0 && i.lo == 0:
		return 0
	}
	return 1
}

func (i Int128) abs() (hi, lo uint64) {
	if i.hi < 0 {
		i = i.Neg()
	}
	return uint64(i.hi), i.lo
}

// quoRem divides unsigned 128-bit values by shifting and subtracting.
func quoRem(nhi, nlo, dhi, dlo uint64) (qhi, qlo, rhi, rlo uint64) {
	if dhi == 0 && nhi < dlo {
		q, r := bits.Div64(nhi, nlo, dlo)
		return 0, q, 0, r
	}
	for k := 127; k >= 0; k-- {
		// r = r<<1 | bit k of n
		rhi = rhi<<1 | rlo>>63
		rlo <<= 1
		if k >= 64 {
			rlo |= nhi >> (k - 64) & 1
		} else {
			rlo |= nlo >> k & 1
		}
		if rhi > dhi || (rhi == dhi && rlo >= dlo) {
			var borrow uint64
			rlo, borrow = bits.Sub64(rlo, dlo, 0)
			rhi, _ = bits.Sub64(rhi, dhi, borrow)
			if k >= 64 {
				qhi |= 1 << (k - 64)
			} else {
				qlo |= 1 << k
			}
		}
	}
	return qhi, qlo, rhi, rlo
}

// QuoRem computes the quotient i / j and remainder i % j, truncating toward
// zero like Go's / and % operators. It panics if j is zero.
func (i Int128) QuoRem(j Int128) (q, r Int128) {
	if j.Sign() == 0 {
		panic("i128: division by zero")
	}
	nhi, nlo := i.abs()
	dhi, dlo := j.abs()
	qhi, qlo, rhi, rlo := quoRem(nhi, nlo, dhi, dlo)
	q = Int128{lo: qlo, hi: int64(qhi)}
	r = Int128{lo: rlo, hi: int64(rhi)}
	if (i.hi < 0) != (j.hi < 0) {
		q = q.Neg()
	}
	if i.hi < 0 {
		r = r.Neg()
	}
	return q, r
}

// Div computes i / j.
func (i Int128) Div(j Int128) Int128 {
	q, _ := i.QuoRem(j)
	return q
}

// Rem computes i % j.
func (i Int128) Rem(j Int128) Int128 {
	_, r := i.QuoRem(j)
	return r
}

// Mod64 returns i modulo m as a value in [0, m). It panics if m <= 0.
func (i Int128) Mod64(m int64) int64 {
	if m <= 0 {
		panic("i128: non-positive modulus")
	}
	hi, lo := i.abs()
	r := int64(bits.Rem64(hi, lo, uint64(m)))
	if i.hi < 0 && r != 0 {
		r = m - r
	}
	return r
}

// MulMod computes a*b mod m in [0, m) without overflowing.
func MulMod(a, b, m int64) int64 {
	return FromInt64(a).Mul(FromInt64(b)).Mod64(m)
}

// Lsh computes i << n.
func (i Int128) Lsh(n uint) Int128 {
	switch {
	case n >= 128:
		return Int128{}
	case n >= 64:
		return Int128{hi: int64(i.lo << (n - 64))}
	case n == 0:
		return i
	}
	return Int128{lo: i.lo << n, hi: i.hi<<n | int64(i.lo>>(64-n))}
}

// Rsh computes i >> n. The shift is arithmetic.
func (i Int128) Rsh(n uint) Int128 {
	switch {
	case n >= 128:
		return Int128{lo: uint64(i.hi >> 63), hi: i.hi >> 63}
	case n >= 64:
		return Int128{lo: uint64(i.hi >> (n - 64)), hi: i.hi >> 63}
	case n == 0:
		return i
	}
	return Int128{lo: i.lo>>n | uint64(i.hi)<<(64-n), hi: i.hi >> n}
}

// Cmp returns -1, 0, or 1 as i is less than, equal to, or greater than j.
func (i Int128) Cmp(j Int128) int {
	switch {
	case i.hi < j.hi:
		return -1
	case i.hi > j.hi:
		return 1
	case i.lo < j.lo:
		return -1
	case i.lo > j.lo:
		return 1
	}
	return 0
}

// Gt computes i > j.
func (i Int128) Gt(j Int128) bool { return i.Cmp(j) > 0 }

// Lt computes i < j.
func (i Int128) Lt(j Int128) bool { return i.Cmp(j) < 0 }

// Geq computes i >= j.
func (i Int128) Geq(j Int128) bool { return i.Cmp(j) >= 0 }

// Leq computes i <= j.
func (i Int128) Leq(j Int128) bool { return i.Cmp(j) <= 0 }

// Big returns i as a big.Int.
func (i Int128) Big() *big.Int {
	b := big.NewInt(i.hi)
	b.Lsh(b, 64)
	return b.Add(b, new(big.Int).SetUint64(i.lo))
}

func (i Int128) String() string { return i.Big().String() }
