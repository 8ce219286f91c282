package i128

import (
	"math"
	"math/big"
	"math/rand"
	"testing"
)

var (
	two128    = new(big.Int).Lsh(big.NewInt(1), 128)
	maxInt128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
)

// wrap reduces b to the range of a signed 128-bit integer.
func wrap(b *big.Int) *big.Int {
	b = new(big.Int).Mod(b, two128)
	if b.Cmp(maxInt128) > 0 {
		b.Sub(b, two128)
	}
	return b
}

func randInt128(rng *rand.Rand) Int128 {
	switch rng.Intn(4) {
	case 0:
		return FromInt64(rng.Int63n(1000) - 500)
	case 1:
		return FromInt64(int64(rng.Uint64()))
	}
	return Int128{lo: rng.Uint64(), hi: int64(rng.Uint64())}
}

func TestArithmeticMatchesBig(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for n := 0; n < 2000; n++ {
		i, j := randInt128(rng), randInt128(rng)
		bi, bj := i.Big(), j.Big()
		for _, tt := range []struct {
			op   string
			got  Int128
			want *big.Int
		}{
			{"+", i.Add(j), new(big.Int).Add(bi, bj)},
			{"-", i.Sub(j), new(big.Int).Sub(bi, bj)},
			{"*", i.Mul(j), new(big.Int).Mul(bi, bj)},
			{"&", i.And(j), new(big.Int).And(bi, bj)},
			{"|", i.Or(j), new(big.Int).Or(bi, bj)},
			{"^", i.Xor(j), new(big.Int).Xor(bi, bj)},
			{"&^", i.AndNot(j), new(big.Int).AndNot(bi, bj)},
		} {
			if want := wrap(tt.want); tt.got.Big().Cmp(want) != 0 {
				t.Fatalf("%s %s %s: got %s; want %s", i, tt.op, j, tt.got, want)
			}
		}
		if j.Sign() != 0 {
			q, r := i.QuoRem(j)
			wq, wr := new(big.Int).QuoRem(bi, bj, new(big.Int))
			if q.Big().Cmp(wrap(wq)) != 0 || r.Big().Cmp(wr) != 0 {
				t.Fatalf("%s QuoRem %s: got (%s, %s); want (%s, %s)", i, j, q, r, wq, wr)
			}
		}
		if got, want := i.Cmp(j), bi.Cmp(bj); got != want {
			t.Fatalf("%s Cmp %s: got %d; want %d", i, j, got, want)
		}
		s := uint(rng.Intn(130))
		if got, want := i.Lsh(s), wrap(new(big.Int).Lsh(bi, s)); got.Big().Cmp(want) != 0 {
			t.Fatalf("%s << %d: got %s; want %s", i, s, got, want)
		}
		if got, want := i.Rsh(s), new(big.Int).Rsh(bi, s); got.Big().Cmp(want) != 0 {
			t.Fatalf("%s >> %d: got %s; want %s", i, s, got, want)
		}
	}
}

func TestInt64Conversion(t *testing.T) {
	for _, n := range []int64{0, 1, -1, math.MaxInt64, math.MinInt64} {
		i := FromInt64(n)
		if !i.IsInt64() || i.Int64() != n {
			t.Errorf("FromInt64(%d) round trip: got %s", n, i)
		}
	}
	over := FromInt64(math.MaxInt64).Add(FromInt64(1))
	if over.IsInt64() {
		t.Errorf("%s reported as fitting in an int64", over)
	}
	if got := FromInt64(-5).Neg().Comp(); got.Int64() != -6 {
		t.Errorf("^(-(-5)): got %s; want -6", got)
	}
}

func TestComparisons(t *testing.T) {
	a, b := FromInt64(-3), FromInt64(2)
	if !a.Lt(b) || a.Gt(b) || !a.Leq(a) || !b.Geq(a) || b.Leq(a) {
		t.Errorf("comparisons of %s and %s are wrong", a, b)
	}
	if FromInt64(-3).Sign() != -1 || (Int128{}).Sign() != 0 || FromInt64(7).Sign() != 1 {
		t.Error("Sign is wrong")
	}
}

func TestMulMod(t *testing.T) {
	for _, tt := range []struct {
		a, b, m int64
	}{
		{3, 4, 5},
		{-3, 4, 5},
		{math.MaxInt64, math.MaxInt64, 1000000007},
		{1 << 62, 1 << 61, 999999999989},
		{-(1 << 62), 1 << 61, 999999999989},
		{0, 12, 7},
	} {
		got := MulMod(tt.a, tt.b, tt.m)
		want := new(big.Int).Mul(big.NewInt(tt.a), big.NewInt(tt.b))
		want.Mod(want, big.NewInt(tt.m))
		if got != want.Int64() {
			t.Errorf("MulMod(%d, %d, %d): got %d; want %d", tt.a, tt.b, tt.m, got, want)
		}
	}
}

func TestDivideByZero(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("no panic dividing by zero")
		}
	}()
	FromInt64(1).Div(Int128{})
}
