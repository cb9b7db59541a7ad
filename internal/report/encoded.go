package report

import (
	"encoding/csv"
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"
)

func writeCSV(w io.Writer, sheet Sheet, comma rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = comma
	if len(sheet.Header) > 0 {
		if err := cw.Write(sheet.Header); err != nil {
			return err
		}
	}
	for _, row := range sheet.Rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeJSON(w io.Writer, sheet Sheet) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(sheet.records())
}

func writeJSONL(w io.Writer, sheet Sheet) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, rec := range sheet.records() {
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}
	return nil
}

func writeYAML(w io.Writer, sheet Sheet) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(sheet.records()); err != nil {
		return err
	}
	return enc.Close()
}
