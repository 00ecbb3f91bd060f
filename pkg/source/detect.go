// Package source reads tables from JSON, YAML and CSV input.
package source

import (
	"bytes"
	"encoding/json"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format represents a recognized input format.
type Format int

const (
	Unknown Format = iota
	JSON           // snapshot object or array of rows
	YAML           // snapshot mapping with title, heading and rows keys
	CSV            // comma separated records, first record is the heading
)

func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	case CSV:
		return "csv"
	default:
		return "unknown"
	}
}

// ParseFormat maps a format name to a Format. "auto" and "" map to Unknown,
// which tells Read callers to Sniff first.
func ParseFormat(name string) (Format, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return Unknown, true
	case "json":
		return JSON, true
	case "yaml", "yml":
		return YAML, true
	case "csv":
		return CSV, true
	default:
		return Unknown, false
	}
}

// snapshotKeys are the members a YAML document needs at least one of.
var snapshotKeys = []string{"title", "heading", "rows"}

// Sniff examines input to determine its format.
func Sniff(data []byte) Format {
	data = bytes.TrimLeft(data, " \t\r\n")
	if len(data) == 0 {
		return Unknown
	}

	switch data[0] {
	case '{':
		if json.Valid(data) {
			return JSON
		}
	case '[':
		if json.Valid(data) {
			if isRowArray(data) {
				return JSON
			}
			return Unknown
		}
	}

	if isSnapshotYAML(data) {
		return YAML
	}
	if isCSV(data) {
		return CSV
	}
	return Unknown
}

func isRowArray(data []byte) bool {
	var rows []json.RawMessage
	if err := json.Unmarshal(data, &rows); err != nil {
		return false
	}
	for _, r := range rows {
		if len(r) == 0 || r[0] != '[' {
			return false
		}
	}
	return true
}

func isSnapshotYAML(data []byte) bool {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return false
	}
	for _, k := range snapshotKeys {
		if _, ok := doc[k]; ok {
			return true
		}
	}
	return false
}

// isCSV accepts a comma on the first line, or a single column spread over
// at least two non-blank lines.
func isCSV(data []byte) bool {
	first, rest, _ := bytes.Cut(data, []byte("\n"))
	if bytes.ContainsRune(first, ',') {
		return true
	}
	if data[0] == '{' || data[0] == '[' {
		return false
	}
	return len(bytes.TrimSpace(rest)) > 0
}
