package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bjaus/mufmt"
	"github.com/bjaus/mufmt/internal/report"
)

// directiveInfo is one row of "mufmt parse".
type directiveInfo struct {
	Offset    int    `json:"offset" yaml:"offset"`
	Directive string `json:"directive" yaml:"directive"`
	Flags     string `json:"flags" yaml:"flags"`
	Width     int    `json:"width" yaml:"width"`
	Precision *int   `json:"precision,omitempty" yaml:"precision,omitempty"`
	Verb      string `json:"verb" yaml:"verb"`
	Arg       int    `json:"arg" yaml:"arg"` // 1-based; 0 when none is consumed
}

func addReportFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("report", "r", string(report.Table), "report format (table|ascii|plain|markdown|csv|tsv|json|jsonl|yaml)")
}

func newParseCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [flags] FORMAT",
		Short: "List the directives of FORMAT",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.runParse(args[0])
		},
	}
	addReportFlag(cmd)
	return cmd
}

func (a *app) runParse(format string) error {
	infos := scanDirectives(format)
	a.log.Debug().Int("directives", len(infos)).Msg("parsed")

	sheet := report.Sheet{
		Header: []string{"Offset", "Directive", "Flags", "Width", "Precision", "Verb", "Arg"},
		Rows:   make([][]string, len(infos)),
		Align: []report.Alignment{
			report.AlignRight, report.AlignLeft, report.AlignLeft,
			report.AlignRight, report.AlignRight, report.AlignLeft, report.AlignRight,
		},
		Records: make([]any, len(infos)),
	}
	for i, d := range infos {
		precision, arg := "", ""
		if d.Precision != nil {
			precision = strconv.Itoa(*d.Precision)
		}
		if d.Arg > 0 {
			arg = strconv.Itoa(d.Arg)
		}
		sheet.Rows[i] = []string{
			strconv.Itoa(d.Offset), d.Directive, d.Flags,
			strconv.Itoa(d.Width), precision, d.Verb, arg,
		}
		sheet.Records[i] = d
	}
	return a.writeReport(sheet)
}

// scanDirectives lists the directives of format in order.
func scanDirectives(format string) []directiveInfo {
	var out []directiveInfo
	next := 0
	for i := 0; i < len(format); {
		if format[i] != '%' {
			i++
			continue
		}
		start := i
		d, rest := mufmt.ParseDirective(format[i+1:])
		i = len(format) - len(rest)

		info := directiveInfo{
			Offset:    start,
			Directive: format[start:i],
			Flags:     d.Flags.String(),
			Width:     d.Width,
			Verb:      verbName(d),
		}
		if d.HasPrecision {
			p := d.Precision
			info.Precision = &p
		}
		if d.ConsumesArg() {
			next++
			info.Arg = next
		}
		out = append(out, info)
	}
	return out
}

func verbName(d mufmt.Directive) string {
	switch {
	case d.Raw == 0:
		return "(end)"
	case d.Verb == '%' || d.ConsumesArg():
		return string(d.Raw)
	default:
		return string(d.Raw) + " (unknown)"
	}
}
