package mufmt

import "math"

// RenderScientific emits the magnitude of v as d.ddd…e±dd with precision
// digits after the decimal point and returns the number of bytes emitted.
// The exponent always has a sign and at least two digits. The sign of v is
// ignored and infinities and NaN emit nothing.
func RenderScientific(s Sink, v float64, precision int) int {
	if !isFinite(v) {
		return 0
	}
	precision = max(precision, 0)
	m, exp := normalize(math.Abs(v), precision)
	n := RenderFixed(s, m, precision)
	return n + renderExponent(s, exp, false)
}

// normalize splits v into a mantissa in [1, 10) and a decimal exponent. When
// the mantissa would round up to 10 at the given precision it is scaled down
// once more, so 9.99 at precision 0 becomes 1e+01 rather than 10e+00.
func normalize(v float64, precision int) (float64, int) {
	exp := 0
	if v == 0 {
		return 0, 0
	}
	for v >= 10 {
		v /= 10
		exp++
	}
	for v < 1 {
		v *= 10
		exp--
	}
	if RenderFixed(Discard, v, precision) > mantissaWidth(precision) {
		v /= 10
		exp++
	}
	return v, exp
}

// mantissaWidth is the width of a normalized mantissa: one integer digit,
// plus the point and fraction when there is one.
func mantissaWidth(precision int) int {
	if precision > 0 {
		return precision + 2
	}
	return 1
}

// renderExponent emits e or E, the sign, and at least two digits.
func renderExponent(s Sink, exp int, upper bool) int {
	n := 0
	if upper {
		n += emit(s, 'E')
	} else {
		n += emit(s, 'e')
	}
	if exp < 0 {
		n += emit(s, '-')
		exp = -exp
	} else {
		n += emit(s, '+')
	}
	digits := RenderInteger(Discard, uint64(exp), 10, false)
	n += emitPad(s, '0', 2-digits)
	return n + RenderInteger(s, uint64(exp), 10, false)
}

// exponentWidth is the width renderExponent will produce for exp.
func exponentWidth(exp int) int {
	if exp < 0 {
		exp = -exp
	}
	return 2 + max(2, RenderInteger(Discard, uint64(exp), 10, false))
}

// renderSciDirective renders %e and %E.
func renderSciDirective(s Sink, d Directive, v float64) int {
	if !isFinite(v) {
		return renderNonFinite(s, d, v)
	}
	negative := math.Signbit(v) && v != 0
	precision := d.precisionOr(6)
	m, exp := normalize(math.Abs(v), precision)

	body := RenderFixed(Discard, m, precision) + exponentWidth(exp)
	point := precision == 0 && d.Flags.Has(FlagAlternate)
	if point {
		body++
	}

	l := newLayout(d, signPrefix(negative, d.Flags), body)
	n := l.head(s)
	n += RenderFixed(s, m, precision)
	if point {
		n += emit(s, '.')
	}
	n += renderExponent(s, exp, d.Flags.Has(FlagUpper))
	return n + l.tail(s)
}
