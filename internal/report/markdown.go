package report

import (
	"fmt"
	"io"
	"strings"
)

// writeMarkdown renders a GitHub-flavored Markdown table. Pipes inside cells
// are escaped, since directive flags never contain them but outputs may.
func writeMarkdown(w io.Writer, sheet Sheet) error {
	if len(sheet.Header) == 0 {
		return fmt.Errorf("%w: %q requires a header", ErrUnsupportedFormat, Markdown)
	}
	escaped := Sheet{
		Header: escapePipes(sheet.Header),
		Rows:   make([][]string, len(sheet.Rows)),
	}
	for i, row := range sheet.Rows {
		escaped.Rows[i] = escapePipes(row)
	}
	widths := columnWidths(escaped)[:len(sheet.Header)]
	for i := range widths {
		widths[i] = max(widths[i], 3)
	}
	aligns := sheet.alignments(len(widths))

	if sheet.Title != "" {
		if _, err := fmt.Fprintf(w, "**%s**\n\n", sheet.Title); err != nil {
			return err
		}
	}
	if err := writeMarkdownRow(w, escaped.Header, widths, aligns); err != nil {
		return err
	}
	sep := make([]string, len(widths))
	for i, width := range widths {
		switch aligns[i] {
		case AlignRight:
			sep[i] = strings.Repeat("-", width-1) + ":"
		case AlignCenter:
			sep[i] = ":" + strings.Repeat("-", width-2) + ":"
		default:
			sep[i] = strings.Repeat("-", width)
		}
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}
	for _, row := range escaped.Rows {
		if err := writeMarkdownRow(w, row, widths, aligns); err != nil {
			return err
		}
	}
	return nil
}

func writeMarkdownRow(w io.Writer, cells []string, widths []int, aligns []Alignment) error {
	padded := make([]string, len(widths))
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		padded[i] = alignCell(cell, width, aligns[i])
	}
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
	return err
}

func escapePipes(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = strings.ReplaceAll(c, "|", `\|`)
	}
	return out
}
