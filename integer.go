package mufmt

// RenderInteger emits v in base, most significant digit first, and returns
// the number of digits emitted. Digits above 9 are letters, upper case when
// upper is set.
//
// Zero has no significant digits, so v == 0 emits nothing; the %d family
// prints its "0" through the precision padding instead. A base outside
// [2, 36] emits nothing.
func RenderInteger(s Sink, v uint64, base int, upper bool) int {
	if base < 2 || base > 36 {
		return 0
	}
	return renderDigits(s, v, uint64(base), upper)
}

func renderDigits(s Sink, v, base uint64, upper bool) int {
	if v == 0 {
		return 0
	}
	n := renderDigits(s, v/base, base, upper)
	return n + emit(s, digitChar(v%base, upper))
}

func digitChar(d uint64, upper bool) byte {
	switch {
	case d < 10:
		return byte('0' + d)
	case upper:
		return byte('A' + d - 10)
	default:
		return byte('a' + d - 10)
	}
}

// renderIntDirective renders the magnitude v of an integer directive;
// negative is the sign that was stripped from it.
func renderIntDirective(s Sink, d Directive, v uint64, negative bool, base int) int {
	upper := d.Flags.Has(FlagUpper)
	significant := RenderInteger(Discard, v, base, false)
	required := max(significant, 1)
	if d.HasPrecision {
		d.Flags &^= FlagZero
		required = max(significant, d.Precision)
	}

	var prefix string
	switch {
	case negative:
		prefix = "-"
	case required == 0:
		// "%.0d" of zero prints nothing at all.
	case d.Flags.Has(FlagPlus), d.Flags.Has(FlagSpace):
		prefix = signPrefix(false, d.Flags)
	case d.Flags.Has(FlagAlternate) && v != 0:
		prefix = basePrefix(base, upper)
	}

	l := newLayout(d, prefix, required)
	n := l.head(s)
	n += emitPad(s, '0', required-significant)
	n += RenderInteger(s, v, base, upper)
	return n + l.tail(s)
}
