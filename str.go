package mufmt

// renderString renders %s: str cut to the precision, padded with spaces.
func renderString(s Sink, d Directive, str string) int {
	if d.HasPrecision && d.Precision < len(str) {
		str = str[:d.Precision]
	}
	d.Flags &^= FlagZero
	l := newLayout(d, "", len(str))
	n := l.head(s)
	n += emitString(s, str)
	return n + l.tail(s)
}

// renderChar renders %c: one byte, padded with spaces.
func renderChar(s Sink, d Directive, c byte) int {
	d.Flags &^= FlagZero
	l := newLayout(d, "", 1)
	n := l.head(s)
	n += emit(s, c)
	return n + l.tail(s)
}
