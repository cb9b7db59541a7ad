package mufmt

import "math"

// RenderFixed emits the magnitude of v with exactly precision digits after
// the decimal point and returns the number of bytes emitted. With a
// precision of 0 no decimal point is written. The sign of v is ignored and
// infinities and NaN emit nothing.
//
// Rounding is decided once: if the part of v below the last printed digit
// is at least one half, that digit is incremented and the carry ripples
// left through any nines, possibly adding a leading "1" (9.99 at precision
// 1 is "10.0"). Digits are derived with float64 arithmetic, so values that
// have no exact binary representation can be off in their last places.
func RenderFixed(s Sink, v float64, precision int) int {
	if !isFinite(v) {
		return 0
	}
	v = math.Abs(v)
	precision = max(precision, 0)
	scaled := v * math.Pow10(precision)
	roundUp := scaled-math.Floor(scaled) >= 0.5
	return renderFixedDigits(s, v, -precision, roundUp)
}

// renderFixedDigits emits the digits of v at positions 10^exp and above,
// higher positions first. carry is the rounding increment owed to the
// digit at exp.
func renderFixedDigits(s Sink, v float64, exp int, carry bool) int {
	q := math.Floor(scalePow10(v, -exp))
	if q == 0 && exp > 0 {
		if carry {
			return emit(s, '1')
		}
		return 0
	}
	digit := 0
	if !math.IsInf(q, 0) {
		digit = int(math.Mod(q, 10))
	}
	if carry {
		digit = (digit + 1) % 10
	}
	n := renderFixedDigits(s, v, exp+1, carry && digit == 0)
	if exp == -1 {
		n += emit(s, '.')
	}
	return n + emit(s, byte('0'+digit))
}

// scalePow10 returns v * 10^p. Negative powers divide by the exact positive
// power rather than multiplying by an inexact reciprocal.
func scalePow10(v float64, p int) float64 {
	if p < 0 {
		return v / math.Pow10(-p)
	}
	return v * math.Pow10(p)
}

// renderFixedDirective renders %f and %F.
func renderFixedDirective(s Sink, d Directive, v float64) int {
	if !isFinite(v) {
		return renderNonFinite(s, d, v)
	}
	negative := math.Signbit(v) && v != 0
	v = math.Abs(v)
	precision := d.precisionOr(6)

	body := RenderFixed(Discard, v, precision)
	point := precision == 0 && d.Flags.Has(FlagAlternate)
	if point {
		body++
	}

	l := newLayout(d, signPrefix(negative, d.Flags), body)
	n := l.head(s)
	n += RenderFixed(s, v, precision)
	if point {
		n += emit(s, '.')
	}
	return n + l.tail(s)
}

// renderNonFinite renders infinities and NaN as inf or nan, padded with
// spaces only.
func renderNonFinite(s Sink, d Directive, v float64) int {
	word := "inf"
	if math.IsNaN(v) {
		word = "nan"
	}
	if d.Flags.Has(FlagUpper) {
		word = "INF"
		if math.IsNaN(v) {
			word = "NAN"
		}
	}
	d.Flags &^= FlagZero
	l := newLayout(d, signPrefix(math.IsInf(v, -1), d.Flags), len(word))
	n := l.head(s)
	n += emitString(s, word)
	return n + l.tail(s)
}

func isFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
