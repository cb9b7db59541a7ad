package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"fortio.org/safecast"
	"github.com/spf13/cobra"

	"github.com/bjaus/mufmt"
)

// ErrBadArgument is returned when a command-line argument cannot be
// converted for the directive that consumes it.
var ErrBadArgument = errors.New("bad argument")

func addRenderFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("strict", false, "fail on unknown conversions and missing, mismatched or extra arguments")
	cmd.Flags().BoolP("newline", "n", false, "append a newline to the output")
	// Arguments such as -5 must not be read as flags.
	cmd.Flags().SetInterspersed(false)
}

func newRenderCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [flags] FORMAT [ARG...]",
		Short: "Render FORMAT with ARGs, like printf(1)",
		Long: `Render converts each ARG for the directive that consumes it: %d and %i
read a signed integer, %b %o %x and %p an unsigned one (0x, 0o and 0b
prefixes are accepted), %e and %f a float, %c the first byte of ARG and
%s ARG itself. The result is written without a trailing newline unless
--newline is given.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.runRender(args[0], args[1:])
		},
	}
	addRenderFlags(cmd)
	return cmd
}

func (a *app) runRender(format string, raw []string) error {
	args, err := convertArgs(format, raw)
	if err != nil {
		return err
	}
	if err := mufmt.Validate(format, args...); err != nil {
		if a.opts.Strict {
			return err
		}
		a.log.Warn().Err(err).Str("format", format).Msg("template does not match arguments")
	}

	vals := make([]any, len(args))
	for i, arg := range args {
		vals[i] = arg
	}
	n, err := mufmt.Fprintf(a.stdout, format, vals...)
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if a.opts.Newline {
		if _, err := io.WriteString(a.stdout, "\n"); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	a.log.Debug().Int("bytes", n).Int("args", len(args)).Msg("rendered")
	return nil
}

// convertArgs turns the string arguments into typed ones, walking format
// to learn which conversion consumes each. Arguments beyond the last
// directive are kept as strings.
func convertArgs(format string, raw []string) ([]mufmt.Arg, error) {
	args := make([]mufmt.Arg, 0, len(raw))
	for i := 0; i < len(format) && len(args) < len(raw); {
		if format[i] != '%' {
			i++
			continue
		}
		d, rest := mufmt.ParseDirective(format[i+1:])
		i = len(format) - len(rest)
		if !d.ConsumesArg() {
			continue
		}
		s := raw[len(args)]
		arg, err := convertArg(d.Verb, s)
		if err != nil {
			return nil, fmt.Errorf("%w: %q for %s: %w", ErrBadArgument, s, d, err)
		}
		args = append(args, arg)
	}
	for _, s := range raw[len(args):] {
		args = append(args, mufmt.Str(s))
	}
	return args, nil
}

func convertArg(verb byte, s string) (mufmt.Arg, error) {
	switch verb {
	case 's':
		return mufmt.Str(s), nil
	case 'c':
		if s == "" {
			return mufmt.Arg{}, errors.New("empty character")
		}
		return mufmt.Char(s[0]), nil
	case 'd', 'i':
		if v, err := strconv.ParseInt(s, 0, 64); err == nil {
			return mufmt.Int(v), nil
		}
		v, err := strconv.ParseUint(s, 0, 64)
		if err != nil {
			return mufmt.Arg{}, err
		}
		return mufmt.Uint(v), nil
	case 'b', 'o', 'x':
		if v, err := strconv.ParseUint(s, 0, 64); err == nil {
			return mufmt.Uint(v), nil
		}
		v, err := strconv.ParseInt(s, 0, 64)
		if err != nil {
			return mufmt.Arg{}, err
		}
		return mufmt.Int(v), nil
	case 'p':
		v, err := strconv.ParseUint(s, 0, 64)
		if err != nil {
			return mufmt.Arg{}, err
		}
		p, err := safecast.Conv[uintptr](v)
		if err != nil {
			return mufmt.Arg{}, err
		}
		return mufmt.Ptr(p), nil
	case 'e', 'f':
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return mufmt.Arg{}, err
		}
		return mufmt.Float(v), nil
	default:
		return mufmt.Str(s), nil
	}
}
