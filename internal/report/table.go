package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

type borderChars struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
	topTee, bottomTee, leftTee, rightTee       string
	cross                                      string
}

var (
	roundedBorder = borderChars{
		topLeft: "╭", topRight: "╮", bottomLeft: "╰", bottomRight: "╯",
		horizontal: "─", vertical: "│",
		topTee: "┬", bottomTee: "┴", leftTee: "├", rightTee: "┤",
		cross: "┼",
	}
	asciiBorder = borderChars{
		topLeft: "+", topRight: "+", bottomLeft: "+", bottomRight: "+",
		horizontal: "-", vertical: "|",
		topTee: "+", bottomTee: "+", leftTee: "+", rightTee: "+",
		cross: "+",
	}
)

// headerRow and footerRow are the row indexes passed to the cell writer for
// rows that are not data; Style is never applied to them.
const (
	headerRow = -1
	footerRow = -2
)

func writeTable(w io.Writer, sheet Sheet, bc borderChars) error {
	widths := columnWidths(sheet)
	if len(widths) == 0 {
		return nil
	}
	aligns := sheet.alignments(len(widths))

	if sheet.Title != "" {
		if err := drawHLine(w, widths, bc.topLeft, bc.horizontal, bc.horizontal, bc.topRight); err != nil {
			return err
		}
		inner := tableInnerWidth(widths) - 2
		if _, err := fmt.Fprintf(w, "%s %s %s\n", bc.vertical, alignCell(sheet.Title, inner, AlignCenter), bc.vertical); err != nil {
			return err
		}
		if err := drawHLine(w, widths, bc.leftTee, bc.horizontal, bc.topTee, bc.rightTee); err != nil {
			return err
		}
	} else if err := drawHLine(w, widths, bc.topLeft, bc.horizontal, bc.topTee, bc.topRight); err != nil {
		return err
	}

	if len(sheet.Header) > 0 {
		if err := drawRow(w, sheet, headerRow, sheet.Header, widths, aligns, bc.vertical); err != nil {
			return err
		}
		if err := drawHLine(w, widths, bc.leftTee, bc.horizontal, bc.cross, bc.rightTee); err != nil {
			return err
		}
	}
	for i, row := range sheet.Rows {
		if err := drawRow(w, sheet, i, row, widths, aligns, bc.vertical); err != nil {
			return err
		}
	}
	if len(sheet.Footer) > 0 {
		if err := drawHLine(w, widths, bc.leftTee, bc.horizontal, bc.cross, bc.rightTee); err != nil {
			return err
		}
		if err := drawRow(w, sheet, footerRow, sheet.Footer, widths, aligns, bc.vertical); err != nil {
			return err
		}
	}
	return drawHLine(w, widths, bc.bottomLeft, bc.horizontal, bc.bottomTee, bc.bottomRight)
}

// columnWidths returns the display width of every column.
func columnWidths(sheet Sheet) []int {
	n := len(sheet.Header)
	for _, row := range sheet.Rows {
		n = max(n, len(row))
	}
	n = max(n, len(sheet.Footer))
	widths := make([]int, n)
	measure := func(cells []string) {
		for i, cell := range cells {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}
	measure(sheet.Header)
	for _, row := range sheet.Rows {
		measure(row)
	}
	measure(sheet.Footer)
	return widths
}

// tableInnerWidth returns the width between the outer vertical borders:
// each cell plus one space on each side, and one border between cells.
func tableInnerWidth(widths []int) int {
	n := 0
	for _, w := range widths {
		n += w + 2
	}
	if len(widths) > 1 {
		n += len(widths) - 1
	}
	return n
}

func drawHLine(w io.Writer, widths []int, left, fill, mid, right string) error {
	var sb strings.Builder
	sb.WriteString(left)
	for i, width := range widths {
		sb.WriteString(strings.Repeat(fill, width+2))
		if i < len(widths)-1 {
			sb.WriteString(mid)
		}
	}
	sb.WriteString(right)
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func drawRow(w io.Writer, sheet Sheet, row int, cells []string, widths []int, aligns []Alignment, vert string) error {
	var sb strings.Builder
	sb.WriteString(vert)
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		sb.WriteString(" ")
		sb.WriteString(sheet.style(row, i, alignCell(cell, width, aligns[i])))
		sb.WriteString(" ")
		sb.WriteString(vert)
	}
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

// writePlain renders a borderless table with a dashed rule under the header.
func writePlain(w io.Writer, sheet Sheet) error {
	widths := columnWidths(sheet)
	if len(widths) == 0 {
		return nil
	}
	aligns := sheet.alignments(len(widths))
	line := func(row int, cells []string) error {
		parts := make([]string, len(widths))
		for i, width := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			parts[i] = sheet.style(row, i, alignCell(cell, width, aligns[i]))
		}
		_, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, "  "), " "))
		return err
	}
	rule := func() error {
		parts := make([]string, len(widths))
		for i, width := range widths {
			parts[i] = strings.Repeat("-", width)
		}
		_, err := fmt.Fprintln(w, strings.Join(parts, "  "))
		return err
	}

	if len(sheet.Header) > 0 {
		if err := line(headerRow, sheet.Header); err != nil {
			return err
		}
		if err := rule(); err != nil {
			return err
		}
	}
	for i, row := range sheet.Rows {
		if err := line(i, row); err != nil {
			return err
		}
	}
	if len(sheet.Footer) > 0 {
		if err := rule(); err != nil {
			return err
		}
		return line(footerRow, sheet.Footer)
	}
	return nil
}

func alignCell(s string, width int, align Alignment) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
	default:
		return s + strings.Repeat(" ", pad)
	}
}
