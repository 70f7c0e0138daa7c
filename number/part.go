// SPDX-License-Identifier: MIT

package number

import (
	"math"
	"math/big"
)

// part is one real component of a Number. When approx is false the value is
// rat (nil meaning zero); otherwise the value lies in [lo, hi].
type part struct {
	rat    *big.Rat
	lo, hi float64
	approx bool
}

var (
	ratZero = new(big.Rat)
	ratOne  = big.NewRat(1, 1)
)

func exactPart(r *big.Rat) part { return part{rat: r} }

func intervalPart(lo, hi float64) part {
	if lo > hi {
		lo, hi = hi, lo
	}
	return part{lo: lo, hi: hi, approx: true}
}

func (p part) value() *big.Rat {
	if p.rat == nil {
		return ratZero
	}
	return p.rat
}

func down(x float64) float64 {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return x
	}
	return math.Nextafter(x, math.Inf(-1))
}

func up(x float64) float64 {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return x
	}
	return math.Nextafter(x, math.Inf(1))
}

// bounds returns an enclosing float interval of p.
func (p part) bounds() (float64, float64) {
	if p.approx {
		return p.lo, p.hi
	}
	f, exact := p.value().Float64()
	if exact {
		return f, f
	}
	return down(f), up(f)
}

func (p part) isZero() bool {
	if p.approx {
		return p.lo == 0 && p.hi == 0
	}
	return p.value().Sign() == 0
}

// sign reports the sign of p; ok is false when an interval straddles zero.
func (p part) sign() (int, bool) {
	if !p.approx {
		return p.value().Sign(), true
	}
	switch {
	case p.lo > 0:
		return 1, true
	case p.hi < 0:
		return -1, true
	case p.lo == 0 && p.hi == 0:
		return 0, true
	}
	return 0, false
}

func (p part) neg() part {
	if !p.approx {
		return exactPart(new(big.Rat).Neg(p.value()))
	}
	return intervalPart(-p.hi, -p.lo)
}

func (p part) add(q part) part {
	if !p.approx && !q.approx {
		return exactPart(new(big.Rat).Add(p.value(), q.value()))
	}
	plo, phi := p.bounds()
	qlo, qhi := q.bounds()
	return intervalPart(down(plo+qlo), up(phi+qhi))
}

func (p part) sub(q part) part { return p.add(q.neg()) }

// mulBound multiplies two bounds treating 0·Inf as 0.
func mulBound(a, b float64) float64 {
	if a == 0 || b == 0 {
		return 0
	}
	return a * b
}

func (p part) mul(q part) part {
	if !p.approx && !q.approx {
		return exactPart(new(big.Rat).Mul(p.value(), q.value()))
	}
	// exact zero annihilates even an infinite interval
	if (!p.approx && p.isZero()) || (!q.approx && q.isZero()) {
		return exactPart(new(big.Rat))
	}
	plo, phi := p.bounds()
	qlo, qhi := q.bounds()
	c := [4]float64{mulBound(plo, qlo), mulBound(plo, qhi), mulBound(phi, qlo), mulBound(phi, qhi)}
	lo, hi := c[0], c[0]
	for _, v := range c[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return intervalPart(down(lo), up(hi))
}

func (p part) inv() (part, error) {
	if !p.approx {
		if p.value().Sign() == 0 {
			return part{}, ErrDivideByZero
		}
		return exactPart(new(big.Rat).Inv(p.value())), nil
	}
	if p.lo <= 0 && p.hi >= 0 {
		return part{}, ErrDivideByZero
	}
	return intervalPart(down(1/p.hi), up(1/p.lo)), nil
}

func (p part) quo(q part) (part, error) {
	if !p.approx && !q.approx {
		if q.value().Sign() == 0 {
			return part{}, ErrDivideByZero
		}
		return exactPart(new(big.Rat).Quo(p.value(), q.value())), nil
	}
	r, err := q.inv()
	if err != nil {
		return part{}, err
	}
	return p.mul(r), nil
}

func (p part) abs() part {
	if s, ok := p.sign(); ok && s < 0 {
		return p.neg()
	}
	if !p.approx {
		return p
	}
	if p.lo >= 0 {
		return p
	}
	return intervalPart(0, math.Max(-p.lo, p.hi))
}

// midpoint is the float64 estimate of p.
func (p part) midpoint() float64 {
	if !p.approx {
		f, _ := p.value().Float64()
		return f
	}
	if math.IsInf(p.lo, 0) || math.IsInf(p.hi, 0) {
		if p.lo == p.hi {
			return p.lo
		}
		if math.IsInf(p.hi, 1) && !math.IsInf(p.lo, 0) {
			return math.Inf(1)
		}
		if math.IsInf(p.lo, -1) && !math.IsInf(p.hi, 0) {
			return math.Inf(-1)
		}
		return math.NaN()
	}
	return p.lo + (p.hi-p.lo)/2
}

func (p part) approximate() part {
	if p.approx {
		return p
	}
	lo, hi := p.bounds()
	return intervalPart(lo, hi)
}

func (p part) overlaps(q part) bool {
	plo, phi := p.bounds()
	qlo, qhi := q.bounds()
	return plo <= qhi && qlo <= phi
}

func (p part) identical(q part) bool {
	if p.approx != q.approx {
		return false
	}
	if !p.approx {
		return p.value().Cmp(q.value()) == 0
	}
	return p.lo == q.lo && p.hi == q.hi
}

func (p part) isInfinite() bool {
	return p.approx && (math.IsInf(p.lo, 0) || math.IsInf(p.hi, 0))
}
