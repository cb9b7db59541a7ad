package mufmt

import "fmt"

// Validate checks format against args without rendering anything. It
// reports the first unknown conversion, missing argument, argument of the
// wrong kind, or surplus argument, wrapping the matching sentinel error.
func Validate(format string, args ...Arg) error {
	next := 0
	for i := 0; i < len(format); {
		c := format[i]
		i++
		if c != '%' {
			continue
		}
		start := i - 1
		d, rest := ParseDirective(format[i:])
		i = len(format) - len(rest)
		if d.Verb == '%' {
			continue
		}
		if !d.ConsumesArg() {
			if d.Raw == 0 {
				return fmt.Errorf("%w: %q at offset %d ends the template", ErrUnknownVerb, format[start:i], start)
			}
			return fmt.Errorf("%w: %q at offset %d", ErrUnknownVerb, format[start:i], start)
		}
		if next >= len(args) {
			return fmt.Errorf("%w: %q at offset %d has no argument", ErrMissingArg, format[start:i], start)
		}
		if arg := args[next]; !arg.accepts(d.Verb) {
			return fmt.Errorf("%w: %q at offset %d cannot render %s", ErrBadArgType, format[start:i], start, arg)
		}
		next++
	}
	if next < len(args) {
		return fmt.Errorf("%w: %d unused, first is %s", ErrExtraArg, len(args)-next, args[next])
	}
	return nil
}
