// SPDX-License-Identifier: MIT

package number

import (
	"math"
	"math/big"
)

// MaxExactExponent bounds |k| for exact integer powers.
const MaxExactExponent = 1 << 14

// maxRootDegree bounds q when searching an exact rational root x^(p/q).
const maxRootDegree = 64

func (n Number) with(re, im part, m Number) Number {
	return Number{re: re, im: im, prec: minPrecision(n.prec, m.prec)}
}

// Add returns n + m.
func (n Number) Add(m Number) Number {
	return n.with(n.re.add(m.re), n.im.add(m.im), m)
}

// Sub returns n − m.
func (n Number) Sub(m Number) Number {
	return n.with(n.re.sub(m.re), n.im.sub(m.im), m)
}

// Neg returns −n.
func (n Number) Neg() Number {
	return Number{re: n.re.neg(), im: n.im.neg(), prec: n.prec}
}

// Mul returns n · m.
func (n Number) Mul(m Number) Number {
	if n.im.isZero() && m.im.isZero() {
		return n.with(n.re.mul(m.re), part{}, m)
	}
	// (a+bi)(c+di) = (ac−bd) + (ad+bc)i
	re := n.re.mul(m.re).sub(n.im.mul(m.im))
	im := n.re.mul(m.im).add(n.im.mul(m.re))
	return n.with(re, im, m)
}

// Inv returns 1/n.
func (n Number) Inv() (Number, error) {
	if n.im.isZero() {
		r, err := n.re.inv()
		if err != nil {
			return Number{}, err
		}
		return Number{re: r, prec: n.prec}, nil
	}
	// 1/(a+bi) = (a−bi)/(a²+b²)
	den := n.re.mul(n.re).add(n.im.mul(n.im))
	re, err := n.re.quo(den)
	if err != nil {
		return Number{}, err
	}
	im, err := n.im.neg().quo(den)
	if err != nil {
		return Number{}, err
	}
	return Number{re: re, im: im, prec: n.prec}, nil
}

// Div returns n / m.
func (n Number) Div(m Number) (Number, error) {
	if m.im.isZero() {
		r, err := n.re.quo(m.re)
		if err != nil {
			return Number{}, err
		}
		i, err := n.im.quo(m.re)
		if err != nil {
			return Number{}, err
		}
		return n.with(r, i, m), nil
	}
	inv, err := m.Inv()
	if err != nil {
		return Number{}, err
	}
	return n.Mul(inv), nil
}

// Abs returns |n| for real n. For complex n it returns the modulus as an
// approximate value.
func (n Number) Abs() Number {
	if n.im.isZero() {
		return Number{re: n.re.abs(), prec: n.prec}
	}
	sq := n.re.mul(n.re).add(n.im.mul(n.im))
	lo, hi := sq.bounds()
	out := Number{re: intervalPart(down(math.Sqrt(math.Max(lo, 0))), up(math.Sqrt(hi))), prec: n.prec}
	if out.prec == 0 {
		out.prec = FloatPrecision
	}
	return out
}

// Pow returns n^e. Exact bases with integer exponents stay exact, as do
// rational exponents whose root exists in the rationals; everything else is
// evaluated as an interval on a non-negative real base.
func (n Number) Pow(e Number) (Number, error) {
	if !e.IsReal() {
		return Number{}, ErrNotRepresentable
	}
	if k, ok := e.Int64(); ok {
		return n.powInt(k)
	}
	if e.IsRational() && n.IsRational() {
		if r, ok := n.exactRationalPow(e.re.value()); ok {
			return r, nil
		}
	}
	if !n.IsReal() {
		return Number{}, ErrNotRepresentable
	}
	if n.IsZero() {
		if e.IsPositive() {
			return New(0), nil
		}
		return Number{}, ErrDivideByZero
	}
	blo, bhi := n.re.bounds()
	if blo < 0 {
		return Number{}, ErrNotRepresentable
	}
	elo, ehi := e.re.bounds()
	c := [4]float64{math.Pow(blo, elo), math.Pow(blo, ehi), math.Pow(bhi, elo), math.Pow(bhi, ehi)}
	lo, hi := c[0], c[0]
	for _, v := range c[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if math.IsNaN(lo) || math.IsNaN(hi) {
		return Number{}, ErrNotRepresentable
	}
	prec := minPrecision(n.prec, e.prec)
	if prec == 0 {
		prec = FloatPrecision
	}
	return Number{re: intervalPart(down(lo), up(hi)), prec: prec}, nil
}

func (n Number) powInt(k int64) (Number, error) {
	if k == 0 {
		return Number{re: exactPart(big.NewRat(1, 1)), prec: n.prec}, nil
	}
	if !n.IsApproximate() && (k > MaxExactExponent || k < -MaxExactExponent) {
		return Number{}, ErrExponentTooLarge
	}
	base := n
	neg := k < 0
	if neg {
		k = -k
	}
	result := Number{re: exactPart(big.NewRat(1, 1)), prec: n.prec}
	for k > 0 {
		if k&1 == 1 {
			result = result.Mul(base)
		}
		k >>= 1
		if k > 0 {
			base = base.Mul(base)
		}
	}
	if neg {
		return result.Inv()
	}
	return result, nil
}

// exactRationalPow evaluates n^(p/q) exactly when both numerator and
// denominator of n are perfect q-th powers.
func (n Number) exactRationalPow(e *big.Rat) (Number, bool) {
	q := e.Denom()
	if !q.IsInt64() || q.Int64() > maxRootDegree {
		return Number{}, false
	}
	deg := q.Int64()
	v := n.re.value()
	if v.Sign() < 0 {
		if deg%2 == 0 {
			return Number{}, false
		}
	}
	num := new(big.Int).Abs(v.Num())
	den := new(big.Int).Set(v.Denom())
	rn, ok := intRoot(num, deg)
	if !ok {
		return Number{}, false
	}
	rd, ok := intRoot(den, deg)
	if !ok {
		return Number{}, false
	}
	root := new(big.Rat).SetFrac(rn, rd)
	if v.Sign() < 0 {
		root.Neg(root)
	}
	p := e.Num()
	if !p.IsInt64() {
		return Number{}, false
	}
	r, err := NewRat(root).powInt(p.Int64())
	if err != nil {
		return Number{}, false
	}
	return r, true
}

// intRoot returns the exact k-th root of x ≥ 0 if it exists.
func intRoot(x *big.Int, k int64) (*big.Int, bool) {
	if x.Sign() == 0 || x.Cmp(big.NewInt(1)) == 0 {
		return new(big.Int).Set(x), true
	}
	if k == 2 {
		r := new(big.Int).Sqrt(x)
		return r, new(big.Int).Mul(r, r).Cmp(x) == 0
	}
	f, _ := new(big.Float).SetInt(x).Float64()
	if math.IsInf(f, 0) {
		return nil, false
	}
	est := math.Round(math.Pow(f, 1/float64(k)))
	kk := big.NewInt(k)
	for _, d := range []float64{0, -1, 1} {
		c := est + d
		if c < 0 {
			continue
		}
		cand, _ := big.NewFloat(c).Int(nil)
		if new(big.Int).Exp(cand, kk, nil).Cmp(x) == 0 {
			return cand, true
		}
	}
	return nil, false
}

// GCD returns the greatest common divisor of two exact rationals:
// gcd(a/b, c/d) = gcd(a, c) / lcm(b, d). The result is non-negative.
func (n Number) GCD(m Number) (Number, bool) {
	a, ok := n.Rat()
	if !ok {
		return Number{}, false
	}
	b, ok := m.Rat()
	if !ok {
		return Number{}, false
	}
	if a.Sign() == 0 {
		return NewRat(new(big.Rat).Abs(b)), true
	}
	if b.Sign() == 0 {
		return NewRat(new(big.Rat).Abs(a)), true
	}
	num := new(big.Int).GCD(nil, nil, new(big.Int).Abs(a.Num()), new(big.Int).Abs(b.Num()))
	g := new(big.Int).GCD(nil, nil, a.Denom(), b.Denom())
	lcm := new(big.Int).Mul(a.Denom(), b.Denom())
	lcm.Quo(lcm, g)
	return NewRat(new(big.Rat).SetFrac(num, lcm)), true
}

// Round rounds a real n to the nearest integer, halves away from zero. An
// interval whose bounds round differently stays approximate.
func (n Number) Round() (Number, bool) {
	if !n.IsReal() {
		return Number{}, false
	}
	if !n.re.approx {
		v := n.re.value()
		num := new(big.Int).Abs(v.Num())
		twice := new(big.Int).Lsh(num, 1)
		twice.Add(twice, v.Denom())
		den2 := new(big.Int).Lsh(v.Denom(), 1)
		q := new(big.Int).Quo(twice, den2)
		if v.Sign() < 0 {
			q.Neg(q)
		}
		return NewInt(q), true
	}
	lo, hi := math.Round(n.re.lo), math.Round(n.re.hi)
	if math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return Number{}, false
	}
	if lo == hi {
		r, _ := new(big.Float).SetFloat64(lo).Int(nil)
		return NewInt(r), true
	}
	return Number{re: intervalPart(lo, hi), prec: n.prec}, true
}

// Merge returns the smallest interval enclosing both n and m.
func (n Number) Merge(m Number) Number {
	nlo, nhi := n.re.bounds()
	mlo, mhi := m.re.bounds()
	out := Number{re: intervalPart(math.Min(nlo, mlo), math.Max(nhi, mhi)), prec: minPrecision(n.prec, m.prec)}
	if !n.im.isZero() || !m.im.isZero() {
		nilo, nihi := n.im.bounds()
		milo, mihi := m.im.bounds()
		out.im = intervalPart(math.Min(nilo, milo), math.Max(nihi, mihi))
	}
	if out.prec == 0 {
		out.prec = FloatPrecision
	}
	return out
}
