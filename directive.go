package mufmt

// Caps on the decimal literals of a directive. Larger values saturate.
const (
	MaxWidth     = 255
	MaxPrecision = 255
)

// Flags is the set of switches of a directive.
type Flags uint8

const (
	FlagAlternate Flags = 1 << iota // '#'
	FlagZero                        // '0'
	FlagLeft                        // '-'
	FlagSpace                       // ' '
	FlagPlus                        // '+'
	FlagUpper                       // upper-case conversion letter
)

// Has reports whether every flag in f2 is set in f.
func (f Flags) Has(f2 Flags) bool { return f&f2 == f2 }

// String lists the flags in directive syntax, with "U" for FlagUpper.
func (f Flags) String() string {
	var buf [6]byte
	n := 0
	for _, fl := range [...]struct {
		flag Flags
		c    byte
	}{
		{FlagAlternate, '#'},
		{FlagZero, '0'},
		{FlagLeft, '-'},
		{FlagSpace, ' '},
		{FlagPlus, '+'},
		{FlagUpper, 'U'},
	} {
		if f.Has(fl.flag) {
			buf[n] = fl.c
			n++
		}
	}
	return string(buf[:n])
}

// Directive is one parsed %-directive.
type Directive struct {
	Flags        Flags
	Width        int
	Precision    int
	HasPrecision bool
	// Verb is the conversion folded to lower case; Raw is the byte as
	// written. Both are 0 when the template ended before a conversion.
	Verb byte
	Raw  byte
}

// ParseDirective parses the directive at the start of s, which must begin
// just after the '%'. It returns the directive and the text that follows
// its conversion byte.
//
// Flags may repeat and appear in any order. '-' cancels '0' and '+'
// cancels ' ', whatever order they were written in. Upper-case conversion
// letters set [FlagUpper]. The conversion byte is not checked here.
func ParseDirective(s string) (Directive, string) {
	var d Directive
	i := 0
flags:
	for ; i < len(s); i++ {
		switch s[i] {
		case '#':
			d.Flags |= FlagAlternate
		case '0':
			d.Flags |= FlagZero
		case '-':
			d.Flags |= FlagLeft
		case ' ':
			d.Flags |= FlagSpace
		case '+':
			d.Flags |= FlagPlus
		default:
			break flags
		}
	}
	if d.Flags.Has(FlagLeft) {
		d.Flags &^= FlagZero
	}
	if d.Flags.Has(FlagPlus) {
		d.Flags &^= FlagSpace
	}

	d.Width, i = parseDecimal(s, i, MaxWidth)
	if i < len(s) && s[i] == '.' {
		d.HasPrecision = true
		d.Precision, i = parseDecimal(s, i+1, MaxPrecision)
	}

	if i < len(s) {
		c := s[i]
		i++
		d.Raw = c
		if c >= 'A' && c <= 'Z' {
			d.Flags |= FlagUpper
			c += 'a' - 'A'
		}
		d.Verb = c
	}
	return d, s[i:]
}

// parseDecimal reads the digit run of s starting at i, saturating at limit.
// It returns the value and the index of the first non-digit.
func parseDecimal(s string, i, limit int) (int, int) {
	v := 0
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		v = v*10 + int(s[i]-'0')
		if v > limit {
			v = limit
		}
	}
	return v, i
}

// String renders d back to directive syntax, without the upper-case flag
// since Raw carries the case.
func (d Directive) String() string {
	var buf [16]byte
	b := append(buf[:0], '%')
	b = append(b, (d.Flags &^ FlagUpper).String()...)
	if d.Width > 0 {
		b = appendDecimal(b, d.Width)
	}
	if d.HasPrecision {
		b = append(b, '.')
		b = appendDecimal(b, d.Precision)
	}
	if d.Raw != 0 {
		b = append(b, d.Raw)
	}
	return string(b)
}

func appendDecimal(b []byte, v int) []byte {
	if v >= 10 {
		b = appendDecimal(b, v/10)
	}
	return append(b, byte('0'+v%10))
}

// precisionOr returns the written precision, or def when there is none.
func (d Directive) precisionOr(def int) int {
	if d.HasPrecision {
		return d.Precision
	}
	return def
}

// ConsumesArg reports whether d takes the next argument: true for every
// known conversion except %%.
func (d Directive) ConsumesArg() bool {
	switch d.Verb {
	case 'c', 's', 'd', 'i', 'b', 'o', 'x', 'p', 'e', 'f':
		return true
	}
	return false
}
