package mufmt

import "errors"

// Sentinel errors for programmatic error handling.
var (
	ErrUnknownVerb = errors.New("unknown conversion")
	ErrMissingArg  = errors.New("missing argument")
	ErrBadArgType  = errors.New("wrong argument type")
	ErrExtraArg    = errors.New("extra argument")
)

// Sink receives rendered output one byte at a time.
//
// The return value is the number of bytes the sink accepted. The engine
// counts every emitted byte as one regardless of what the sink reports, so a
// sink that needs to signal failure must record it itself (see [WriterSink]).
type Sink interface {
	Emit(c byte) int
}

// SinkFunc adapts an ordinary function to a [Sink].
type SinkFunc func(c byte) int

// Emit calls f(c).
func (f SinkFunc) Emit(c byte) int { return f(c) }

type discard struct{}

func (discard) Emit(byte) int { return 1 }

// Discard is a [Sink] that drops every byte and reports it as accepted. It
// turns any renderer into a width measurement.
var Discard Sink = discard{}

func emit(s Sink, c byte) int {
	s.Emit(c)
	return 1
}

// Render writes format to s, expanding each directive with the next
// argument, and returns the number of bytes emitted.
//
// Plain bytes are copied as they are. A directive whose conversion is
// unknown renders nothing and consumes no argument. A directive whose
// argument is missing, or of a kind the conversion cannot use, renders
// nothing but still consumes the argument.
func Render(s Sink, format string, args ...Arg) int {
	n := 0
	next := 0
	for i := 0; i < len(format); {
		c := format[i]
		i++
		if c != '%' {
			n += emit(s, c)
			continue
		}
		d, rest := ParseDirective(format[i:])
		i = len(format) - len(rest)
		if !d.ConsumesArg() {
			n += renderDirective(s, d, Arg{})
			continue
		}
		var arg Arg
		if next < len(args) {
			arg = args[next]
		}
		next++
		n += renderDirective(s, d, arg)
	}
	return n
}

// Printf is [Render] for ordinary Go values, converted with [ArgsOf].
func Printf(s Sink, format string, vals ...any) int {
	return Render(s, format, ArgsOf(vals...)...)
}

// renderDirective routes one parsed directive to its renderer.
func renderDirective(s Sink, d Directive, arg Arg) int {
	switch d.Verb {
	case '%':
		return emit(s, '%')
	case 'c':
		c, ok := arg.char()
		if !ok {
			return 0
		}
		return renderChar(s, d, c)
	case 's':
		if arg.kind != KindString {
			return 0
		}
		return renderString(s, d, arg.s)
	case 'd', 'i':
		v, ok := arg.signed()
		if !ok {
			return 0
		}
		d.Flags &^= FlagAlternate
		if v < 0 {
			return renderIntDirective(s, d, -uint64(v), true, 10)
		}
		return renderIntDirective(s, d, uint64(v), false, 10)
	case 'b', 'o', 'x', 'p':
		v, ok := arg.unsigned()
		if !ok {
			return 0
		}
		if d.Verb == 'p' {
			d.Flags |= FlagAlternate
		}
		return renderIntDirective(s, d, v, false, verbBase(d.Verb))
	case 'e', 'f':
		v, ok := arg.float()
		if !ok {
			return 0
		}
		if d.Verb == 'e' {
			return renderSciDirective(s, d, v)
		}
		return renderFixedDirective(s, d, v)
	default:
		return 0
	}
}

func verbBase(verb byte) int {
	switch verb {
	case 'b':
		return 2
	case 'o':
		return 8
	default:
		return 16
	}
}
