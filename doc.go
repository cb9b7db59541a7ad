// Package mufmt is a small printf engine for programs that cannot carry a
// full formatting library.
//
// A template and a list of typed arguments are turned into bytes that are
// handed, one at a time, to a [Sink]. The engine keeps no state between
// calls, never allocates on the render path, and depends on nothing but the
// standard library.
//
//	var buf [64]byte
//	b := mufmt.NewBuffer(buf[:])
//	mufmt.Render(b, "%-6s|%+08.3f|%#x", mufmt.Str("temp"), mufmt.Float(-3.14159), mufmt.Uint(255))
//	// b.String() == "temp  |-003.142|0xff"
//
// # Directives
//
// A directive has the form
//
//	% [flags] [width] [. [precision]] conversion
//
// where flags are any of '#', '0', '-', ' ' and '+', in any order. Width and
// precision are decimal literals capped at [MaxWidth] and [MaxPrecision].
// Supported conversions:
//
//   - %%        a literal percent sign
//   - %c        one byte
//   - %s        a string, truncated to precision
//   - %d, %i    signed decimal
//   - %b %o %x  unsigned binary, octal, hexadecimal (%X for upper case)
//   - %p        hexadecimal with the 0x prefix forced on
//   - %f, %F    fixed-point float, default precision 6
//   - %e, %E    scientific float, default precision 6
//
// Unknown conversions render nothing and consume no argument.
//
// # Arguments
//
// [Render] takes [Arg] values built with [Int], [Uint], [Float], [Str],
// [Char] and [Ptr]. [Printf], [Fprintf], [Sprintf] and [Snprintf] accept
// ordinary Go values and convert them with [ArgOf]. An argument whose kind
// does not suit its conversion renders nothing; use [Validate] to catch such
// mistakes ahead of time.
//
// # Floats
//
// Floats are converted with plain arithmetic rather than an exact
// decimal conversion. Digits beyond the precision of a float64 are
// approximate, and rounding is decided once, at the last printed digit, and
// then carried leftward.
//
// # Errors
//
// Rendering never fails. [Validate] reports template problems with the
// sentinel errors [ErrUnknownVerb], [ErrMissingArg], [ErrBadArgType] and
// [ErrExtraArg]. [Fprintf] returns the first error of the underlying writer.
package mufmt
