// Package report renders small tables of results in the output formats the
// mufmt command offers.
package report

import (
	"errors"
	"fmt"
	"io"
)

// ErrUnsupportedFormat is returned for unknown format names.
var ErrUnsupportedFormat = errors.New("unsupported format")

// Format is a report output format.
type Format string

const (
	Table    Format = "table"
	ASCII    Format = "ascii"
	Plain    Format = "plain"
	Markdown Format = "markdown"
	CSV      Format = "csv"
	TSV      Format = "tsv"
	JSON     Format = "json"
	JSONL    Format = "jsonl"
	YAML     Format = "yaml"
)

var formats = []Format{Table, ASCII, Plain, Markdown, CSV, TSV, JSON, JSONL, YAML}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Alignment controls column text alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Sheet is the data of one report.
type Sheet struct {
	Title  string
	Header []string
	Rows   [][]string
	Footer []string
	Align  []Alignment
	// Style, when set, wraps a data cell after it has been padded, so
	// escape sequences never count toward column widths. Only the table
	// formats apply it.
	Style func(row, col int, cell string) string
	// Records is encoded by the JSON, JSONL and YAML formats. When nil,
	// each row is encoded as a map keyed by header.
	Records []any
}

// Write renders sheet to w in format f.
func Write(w io.Writer, f Format, sheet Sheet) error {
	switch f {
	case Table:
		return writeTable(w, sheet, roundedBorder)
	case ASCII:
		return writeTable(w, sheet, asciiBorder)
	case Plain:
		return writePlain(w, sheet)
	case Markdown:
		return writeMarkdown(w, sheet)
	case CSV:
		return writeCSV(w, sheet, ',')
	case TSV:
		return writeCSV(w, sheet, '\t')
	case JSON:
		return writeJSON(w, sheet)
	case JSONL:
		return writeJSONL(w, sheet)
	case YAML:
		return writeYAML(w, sheet)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// records returns what the structured formats encode.
func (s Sheet) records() []any {
	if s.Records != nil {
		return s.Records
	}
	out := make([]any, len(s.Rows))
	for i, row := range s.Rows {
		m := make(map[string]string, len(row))
		for j, cell := range row {
			key := fmt.Sprintf("col%d", j+1)
			if j < len(s.Header) {
				key = s.Header[j]
			}
			m[key] = cell
		}
		out[i] = m
	}
	return out
}

func (s Sheet) alignments(numCols int) []Alignment {
	if len(s.Align) >= numCols {
		return s.Align[:numCols]
	}
	out := make([]Alignment, numCols)
	copy(out, s.Align)
	return out
}

func (s Sheet) style(row, col int, cell string) string {
	if s.Style == nil || row < 0 {
		return cell
	}
	return s.Style(row, col, cell)
}
