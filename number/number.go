// SPDX-License-Identifier: MIT

package number

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// FloatPrecision is the precision (significant decimal digits) assigned to
// values constructed from float64.
const FloatPrecision = 15

// Number is an immutable real or complex value. The zero value is exact 0.
type Number struct {
	re, im part
	prec   int // 0 = unlimited
}

// New returns the exact integer n.
func New(n int64) Number { return Number{re: exactPart(big.NewRat(n, 1))} }

// NewFrac returns the exact fraction p/q. q must be non-zero.
func NewFrac(p, q int64) Number {
	if q == 0 {
		panic("number: NewFrac: zero denominator")
	}
	return Number{re: exactPart(big.NewRat(p, q))}
}

// NewRat returns the exact rational r. r is copied.
func NewRat(r *big.Rat) Number {
	return Number{re: exactPart(new(big.Rat).Set(r))}
}

// NewInt returns the exact integer i. i is copied.
func NewInt(i *big.Int) Number {
	return Number{re: exactPart(new(big.Rat).SetInt(i))}
}

// NewFloat returns an approximate value pinned to f.
func NewFloat(f float64) Number {
	return Number{re: intervalPart(f, f), prec: FloatPrecision}
}

// NewInterval returns the approximate real interval [lo, hi].
func NewInterval(lo, hi float64) Number {
	return Number{re: intervalPart(lo, hi), prec: FloatPrecision}
}

// NewComplex returns re + im·i.
func NewComplex(re, im Number) Number {
	return Number{re: re.re, im: im.re, prec: minPrecision(re.prec, im.prec)}
}

// Infinity returns +∞ (sign ≥ 0) or −∞ (sign < 0).
func Infinity(sign int) Number {
	inf := math.Inf(1)
	if sign < 0 {
		inf = math.Inf(-1)
	}
	return Number{re: intervalPart(inf, inf)}
}

// ParseDecimal parses a decimal literal such as "0.3048" or "-1.5e3" into an
// exact rational.
func ParseDecimal(s string) (Number, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Number{}, fmt.Errorf("%w: %q: %v", ErrParse, s, err)
	}
	return Number{re: exactPart(d.Rat())}, nil
}

func minPrecision(a, b int) int {
	switch {
	case a == 0:
		return b
	case b == 0:
		return a
	}
	return min(a, b)
}

// Precision returns the number of significant digits, or −1 when unlimited.
func (n Number) Precision() int {
	if n.prec == 0 {
		return -1
	}
	return n.prec
}

// WithPrecision returns n carrying precision p (p ≤ 0 clears it).
func (n Number) WithPrecision(p int) Number {
	if p < 0 {
		p = 0
	}
	n.prec = p
	return n
}

// IsApproximate reports whether any component is an interval.
func (n Number) IsApproximate() bool { return n.re.approx || n.im.approx }

// Approximate returns n with every component turned into an interval.
func (n Number) Approximate() Number {
	out := Number{re: n.re.approximate(), im: n.im.approximate(), prec: n.prec}
	if out.im.approx && out.im.lo == 0 && out.im.hi == 0 {
		out.im = part{}
	}
	if out.prec == 0 {
		out.prec = FloatPrecision
	}
	return out
}

// Real returns the real component.
func (n Number) Real() Number { return Number{re: n.re, prec: n.prec} }

// Imag returns the imaginary component as a real Number.
func (n Number) Imag() Number { return Number{re: n.im, prec: n.prec} }

// Rat returns a copy of the exact real value; ok is false otherwise.
func (n Number) Rat() (*big.Rat, bool) {
	if !n.IsRational() {
		return nil, false
	}
	return new(big.Rat).Set(n.re.value()), true
}

// Int64 returns the exact integer value if it fits into int64.
func (n Number) Int64() (int64, bool) {
	if !n.IsInteger() {
		return 0, false
	}
	num := n.re.value().Num()
	if !num.IsInt64() {
		return 0, false
	}
	return num.Int64(), true
}

// Float64 returns the float64 estimate (interval midpoint) of the real part.
func (n Number) Float64() float64 { return n.re.midpoint() }

// Bounds returns an enclosing interval of the real part.
func (n Number) Bounds() (lo, hi float64) { return n.re.bounds() }

// IsZero reports whether n is exactly zero (degenerate [0,0] intervals count).
func (n Number) IsZero() bool { return n.re.isZero() && n.im.isZero() }

// IsOne reports whether n is exactly 1.
func (n Number) IsOne() bool {
	return !n.IsApproximate() && n.im.isZero() && n.re.value().Cmp(ratOne) == 0
}

// IsMinusOne reports whether n is exactly −1.
func (n Number) IsMinusOne() bool {
	return !n.IsApproximate() && n.im.isZero() && n.re.value().Cmp(big.NewRat(-1, 1)) == 0
}

// IsReal reports whether the imaginary part is provably zero.
func (n Number) IsReal() bool { return n.im.isZero() }

// IsRational reports whether n is an exact real rational.
func (n Number) IsRational() bool { return !n.re.approx && !n.im.approx && n.im.isZero() }

// IsInteger reports whether n is an exact real integer.
func (n Number) IsInteger() bool { return n.IsRational() && n.re.value().IsInt() }

// IsEven reports whether n is an exact even integer.
func (n Number) IsEven() bool {
	return n.IsInteger() && n.re.value().Num().Bit(0) == 0
}

// IsOdd reports whether n is an exact odd integer.
func (n Number) IsOdd() bool {
	return n.IsInteger() && n.re.value().Num().Bit(0) == 1
}

// IsInfinite reports whether any bound of n is infinite.
func (n Number) IsInfinite() bool { return n.re.isInfinite() || n.im.isInfinite() }

// Sign returns the sign of a real n; ok is false for complex values or
// intervals straddling zero.
func (n Number) Sign() (int, bool) {
	if !n.IsReal() {
		return 0, false
	}
	return n.re.sign()
}

// IsPositive reports whether n is provably real and > 0.
func (n Number) IsPositive() bool { s, ok := n.Sign(); return ok && s > 0 }

// IsNegative reports whether n is provably real and < 0.
func (n Number) IsNegative() bool { s, ok := n.Sign(); return ok && s < 0 }

// IsNonNegative reports whether n is provably real and ≥ 0.
func (n Number) IsNonNegative() bool {
	if !n.IsReal() {
		return false
	}
	lo, _ := n.re.bounds()
	return lo >= 0 || n.IsZero()
}

// IsNonPositive reports whether n is provably real and ≤ 0.
func (n Number) IsNonPositive() bool {
	if !n.IsReal() {
		return false
	}
	_, hi := n.re.bounds()
	return hi <= 0 || n.IsZero()
}

// IsNonZero reports whether n is provably different from zero.
func (n Number) IsNonZero() bool {
	if s, ok := n.re.sign(); ok && s != 0 {
		return true
	}
	s, ok := n.im.sign()
	return ok && s != 0
}

// Cmp compares two real numbers: −1 if n < m, 0 if equal, +1 if n > m.
// ok is false when either is complex or the intervals overlap.
func (n Number) Cmp(m Number) (int, bool) {
	if !n.IsReal() || !m.IsReal() {
		return 0, false
	}
	if !n.re.approx && !m.re.approx {
		return n.re.value().Cmp(m.re.value()), true
	}
	if n.re.isInfinite() || m.re.isInfinite() {
		nlo, nhi := n.re.bounds()
		mlo, mhi := m.re.bounds()
		switch {
		case nhi < mlo:
			return -1, true
		case nlo > mhi:
			return 1, true
		}
		return 0, false
	}
	return n.re.sub(m.re).sign()
}

// Equals compares n and m. Exact values compare exactly. Approximate values
// compare equal when their intervals are identical, or merely overlapping
// when allowInterval is set. Infinite values compare equal only when
// allowInfinite is set and they are the same infinity.
func (n Number) Equals(m Number, allowInterval, allowInfinite bool) bool {
	if n.IsInfinite() || m.IsInfinite() {
		if !allowInfinite || !n.IsInfinite() || !m.IsInfinite() {
			return false
		}
		return n.re.identical(m.re) && n.im.identical(m.im)
	}
	if !n.IsApproximate() && !m.IsApproximate() {
		return n.re.value().Cmp(m.re.value()) == 0 && n.im.value().Cmp(m.im.value()) == 0
	}
	if allowInterval {
		return n.re.overlaps(m.re) && n.im.overlaps(m.im)
	}
	return n.re.identical(m.re) && n.im.identical(m.im)
}

// String renders n for diagnostics.
func (n Number) String() string {
	re := partString(n.re)
	if n.im.isZero() {
		return re
	}
	im := partString(n.im)
	if n.re.isZero() {
		return im + "i"
	}
	return fmt.Sprintf("%s+%si", re, im)
}

func partString(p part) string {
	if !p.approx {
		v := p.value()
		if v.IsInt() {
			return v.Num().String()
		}
		return v.RatString()
	}
	if p.lo == p.hi {
		return fmt.Sprintf("%g", p.lo)
	}
	return fmt.Sprintf("[%g, %g]", p.lo, p.hi)
}
