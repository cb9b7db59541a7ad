package mufmt

// layout places a rendered field inside its minimum width.
//
// Right-justified fields are emitted as
//
//	[spaces] prefix [zeros] body
//
// and left-justified ones as
//
//	prefix body [spaces]
//
// The renderer emits the body itself between head and tail.
type layout struct {
	prefix  string
	padding int
	zero    bool
	left    bool
}

// newLayout computes the padding for a body of the given width behind
// prefix.
func newLayout(d Directive, prefix string, body int) layout {
	padding := d.Width - len(prefix) - body
	if padding < 0 {
		padding = 0
	}
	return layout{
		prefix:  prefix,
		padding: padding,
		zero:    d.Flags.Has(FlagZero),
		left:    d.Flags.Has(FlagLeft),
	}
}

// head emits everything that precedes the body.
func (l layout) head(s Sink) int {
	n := 0
	if !l.left && !l.zero {
		n += emitPad(s, ' ', l.padding)
	}
	n += emitString(s, l.prefix)
	if l.zero && !l.left {
		n += emitPad(s, '0', l.padding)
	}
	return n
}

// tail emits everything that follows the body.
func (l layout) tail(s Sink) int {
	if l.left {
		return emitPad(s, ' ', l.padding)
	}
	return 0
}

// emitPad emits c n times; n <= 0 emits nothing.
func emitPad(s Sink, c byte, n int) int {
	for i := 0; i < n; i++ {
		s.Emit(c)
	}
	return max(n, 0)
}

func emitString(s Sink, str string) int {
	for i := 0; i < len(str); i++ {
		s.Emit(str[i])
	}
	return len(str)
}

// signPrefix picks the prefix of a signed number. '+' wins over ' '.
func signPrefix(negative bool, f Flags) string {
	switch {
	case negative:
		return "-"
	case f.Has(FlagPlus):
		return "+"
	case f.Has(FlagSpace):
		return " "
	default:
		return ""
	}
}

// basePrefix is the '#' prefix for base; bases without one return "".
func basePrefix(base int, upper bool) string {
	switch base {
	case 2:
		if upper {
			return "0B"
		}
		return "0b"
	case 8:
		return "0"
	case 16:
		if upper {
			return "0X"
		}
		return "0x"
	default:
		return ""
	}
}
