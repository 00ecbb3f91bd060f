package source

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dkoosis/asciitable/pkg/table"
)

// ErrUnknownFormat is returned when the input format cannot be determined.
var ErrUnknownFormat = errors.New("unrecognized input format (expected JSON, YAML or CSV)")

// Read parses data in the given format into a new table. Unknown triggers
// Sniff; if that fails too, ErrUnknownFormat is returned.
func Read(format Format, data []byte) (*table.Table, error) {
	if format == Unknown {
		format = Sniff(data)
	}
	switch format {
	case JSON:
		return readJSON(data)
	case YAML:
		return readYAML(data)
	case CSV:
		return readCSV(data)
	default:
		return nil, ErrUnknownFormat
	}
}

func readJSON(data []byte) (*table.Table, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	tbl := table.New("")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		dec := json.NewDecoder(bytes.NewReader(trimmed))
		dec.UseNumber()
		var rows []any
		if err := dec.Decode(&rows); err != nil {
			return nil, fmt.Errorf("parsing JSON rows: %w", err)
		}
		for i, r := range rows {
			cells, ok := r.([]any)
			if !ok {
				cells = []any{r}
			}
			if i == 0 {
				tbl.SetHeading(cells...)
				continue
			}
			tbl.AddRow(cells...)
		}
		return tbl, nil
	}
	if err := tbl.UnmarshalJSON(data); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}
	return tbl, nil
}

func readYAML(data []byte) (*table.Table, error) {
	var snap table.Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	return table.New("").FromJSON(snap), nil
}

func readCSV(data []byte) (*table.Table, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	tbl := table.New("")
	first := true
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parsing CSV: %w", err)
		}
		if first {
			tbl.SetHeading(toCells(record, false)...)
			first = false
			continue
		}
		tbl.AddRow(toCells(record, true)...)
	}
	return tbl, nil
}

// toCells converts CSV fields to cell values. With numbers set, fields that
// parse as a number become json.Number so they align like numbers.
func toCells(record []string, numbers bool) []any {
	cells := make([]any, len(record))
	for i, field := range record {
		field = strings.TrimSpace(field)
		if numbers && isNumeric(field) {
			cells[i] = json.Number(field)
			continue
		}
		cells[i] = field
	}
	return cells
}

// isNumeric accepts decimal and exponent forms. NaN, Inf and hex floats
// stay text.
func isNumeric(field string) bool {
	if strings.ContainsAny(strings.ToLower(field), "inxp_") {
		return false
	}
	_, err := strconv.ParseFloat(field, 64)
	return err == nil
}
