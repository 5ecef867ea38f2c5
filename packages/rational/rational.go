// Package rational implements the mixed-fraction arithmetic that backs
// exact evaluation of expression trees: every immediate value is carried
// as (Int, Num, Den) meaning Int + Num/Den, reduced through a persistent
// prime factorization cache rather than a generic bignum type, so that
// gcd/lcm stay independently observable and testable.
package rational

import (
	"regexp"
	"strconv"
	"strings"
)

// Rational is a mixed fraction Int + Num/Den. A value returned by Reduce,
// Add, Sub, Mul, or Div always satisfies Den >= 1, 0 <= Num < Den, and
// gcd(Num, Den) == 1 (or Num == 0 && Den == 1).
type Rational struct {
	Int int64
	Num int64
	Den int64
}

// Zero is the canonical reduced representation of 0.
var Zero = Rational{Den: 1}

// FromInt returns the reduced representation of a plain integer.
func FromInt(i int64) Rational {
	return Rational{Int: i, Den: 1}
}

var fracLiteral = regexp.MustCompile(`^(\w*)\\frac\{(\w+)\}\{(\w+)\}$`)

// ParseFrac parses a LaTeX mixed-fraction literal of the form
// `I\frac{N}{D}` (the integer part may be empty, meaning 0) into a
// reduced Rational. It reports false if s is not shaped like a
// mixed-fraction literal, or if its number/denominator groups do not
// parse as integers.
func ParseFrac(s string) (Rational, bool) {
	m := fracLiteral.FindStringSubmatch(s)
	if m == nil {
		return Rational{}, false
	}
	var i int64
	if m[1] != "" {
		v, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return Rational{}, false
		}
		i = v
	}
	n, err := strconv.ParseInt(m[2], 10, 64)
	if err != nil {
		return Rational{}, false
	}
	d, err := strconv.ParseInt(m[3], 10, 64)
	if err != nil || d == 0 {
		return Rational{}, false
	}
	return reduceFrac(i, n, d), true
}

// ParseFloat parses a plain decimal literal ("digits '.' digits", with an
// optional leading '-') into a Rational by treating the fractional digit
// run as the numerator over a power-of-ten denominator sized to its
// length, so no rounding is ever introduced. A plain integer literal with
// no '.' is accepted too. It reports false if s is neither.
func ParseFloat(s string) (Rational, bool) {
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return Rational{}, false
		}
		return Rational{Int: v, Den: 1}, true
	}
	intPart, fracPart := s[:dot], s[dot+1:]
	if intPart == "" || fracPart == "" {
		return Rational{}, false
	}
	i, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return Rational{}, false
	}
	n, err := strconv.ParseInt(fracPart, 10, 64)
	if err != nil {
		return Rational{}, false
	}
	if strings.HasPrefix(intPart, "-") {
		n = -n
	}
	d := int64(1)
	for range fracPart {
		d *= 10
	}
	return reduceFrac(i, n, d), true
}

// StringifyFrac renders r back into formula notation: a bare decimal
// integer when the fractional part is zero, otherwise a mixed-fraction
// literal with the integer part elided when it is zero.
func (r Rational) StringifyFrac() string {
	if r.Num == 0 {
		return strconv.FormatInt(r.Int, 10)
	}
	var b strings.Builder
	if r.Int != 0 {
		b.WriteString(strconv.FormatInt(r.Int, 10))
	}
	b.WriteString(`\frac{`)
	b.WriteString(strconv.FormatInt(r.Num, 10))
	b.WriteString(`}{`)
	b.WriteString(strconv.FormatInt(r.Den, 10))
	b.WriteString(`}`)
	return b.String()
}

// Reduce renormalizes r so that Den >= 1, 0 <= Num < Den, and
// gcd(Num, Den) == 1, migrating whole multiples of the denominator (in
// either direction) into the integer part.
func (r Rational) Reduce() Rational {
	return reduceFrac(r.Int, r.Num, r.Den)
}

func reduceFrac(i, n, d int64) Rational {
	if d < 0 {
		d = -d
		n = -n
	}
	if n == 0 {
		return Rational{Int: i, Num: 0, Den: 1}
	}
	q := floorDiv(n, d)
	i += q
	n -= q * d
	if g := GCD(n, d); g > 1 {
		n /= g
		d /= g
	}
	return Rational{Int: i, Num: n, Den: d}
}

func floorDiv(n, d int64) int64 {
	q := n / d
	if (n%d != 0) && ((n < 0) != (d < 0)) {
		q--
	}
	return q
}

// ToImproper collapses the integer part into the numerator, returning an
// equivalent (0, N, D) form. It does not reduce N/D further.
func (r Rational) ToImproper() Rational {
	return Rational{Int: 0, Num: r.Num + r.Int*r.Den, Den: r.Den}
}

// CommonDenominator rewrites each of fracs to share the least common
// multiple of their denominators, scaling only the fractional part and
// leaving each integer part untouched.
func CommonDenominator(fracs ...Rational) []Rational {
	dens := make([]int64, len(fracs))
	for i, f := range fracs {
		dens[i] = f.Den
	}
	l := LCM(dens...)
	out := make([]Rational, len(fracs))
	for i, f := range fracs {
		out[i] = Rational{Int: f.Int, Num: f.Num * (l / f.Den), Den: l}
	}
	return out
}

// Add returns the reduced sum a + b.
func (a Rational) Add(b Rational) Rational {
	cs := CommonDenominator(a, b)
	x, y := cs[0], cs[1]
	return Rational{Int: x.Int + y.Int, Num: x.Num + y.Num, Den: x.Den}.Reduce()
}

// Sub returns the reduced difference a - b.
func (a Rational) Sub(b Rational) Rational {
	cs := CommonDenominator(a, b)
	x, y := cs[0].ToImproper(), cs[1].ToImproper()
	return Rational{Num: x.Num - y.Num, Den: x.Den}.Reduce()
}

// Mul returns the reduced product a * b.
func (a Rational) Mul(b Rational) Rational {
	x, y := a.ToImproper(), b.ToImproper()
	return Rational{Num: x.Num * y.Num, Den: x.Den * y.Den}.Reduce()
}

// Div returns the reduced quotient a / b. It reports false instead of
// dividing by zero.
func (a Rational) Div(b Rational) (Rational, bool) {
	x, y := a.ToImproper(), b.ToImproper()
	if y.Num == 0 {
		return Rational{}, false
	}
	return Rational{Num: x.Num * y.Den, Den: x.Den * y.Num}.Reduce(), true
}

// Equal reports whether a and b denote the same value once both are
// reduced.
func (a Rational) Equal(b Rational) bool {
	ra, rb := a.Reduce(), b.Reduce()
	return ra.Int == rb.Int && ra.Num == rb.Num && ra.Den == rb.Den
}

// Float64 returns r's value as a float64, for approximate comparisons
// only (evaluation and equivalence judging both stay in exact rationals).
func (r Rational) Float64() float64 {
	return float64(r.Int) + float64(r.Num)/float64(r.Den)
}
