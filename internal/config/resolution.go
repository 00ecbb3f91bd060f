package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Flags holds the values of command-line flags. The *Set fields record
// whether a flag was given explicitly, so an unset flag never overrides the
// file.
type Flags struct {
	Theme        string
	Border       string // up to five comma-separated glyphs
	NoBorder     bool
	Justify      bool
	RowSeparator bool
	Prefix       string
	Title        string
	TitleAlign   string
	HeadingAlign string
	HeadingCase  string
	Align        []string // idx=left|center|right
	VAlign       []string // idx=top|middle|bottom

	ThemeSet        bool
	BorderSet       bool
	NoBorderSet     bool
	JustifySet      bool
	RowSeparatorSet bool
	PrefixSet       bool
	TitleSet        bool
}

// Resolve merges flags and environment over the file configuration and
// returns the result. file is not modified.
//
// Resolution order:
//  1. Start from the file config (or defaults)
//  2. Apply ASCIITABLE_THEME
//  3. Apply CLI flags (highest priority)
func Resolve(file *Config, flags Flags) (*Config, error) {
	if file == nil {
		file = Default()
	}
	resolved := *file
	resolved.Columns = append([]ColumnConfig(nil), file.Columns...)
	if file.Border != nil {
		b := *file.Border
		resolved.Border = &b
	}

	if env := os.Getenv(EnvTheme); env != "" {
		resolved.Theme = env
	}
	if flags.ThemeSet {
		resolved.Theme = flags.Theme
	}
	if flags.BorderSet {
		border := parseBorder(flags.Border)
		resolved.Border = &border
		resolved.NoBorder = false
	}
	if flags.NoBorderSet {
		resolved.NoBorder = flags.NoBorder
	}
	if flags.JustifySet {
		resolved.Justify = flags.Justify
	}
	if flags.RowSeparatorSet {
		resolved.RowSeparator = flags.RowSeparator
	}
	if flags.PrefixSet {
		resolved.Prefix = flags.Prefix
	}
	if flags.TitleSet {
		resolved.Title = flags.Title
	}
	if flags.TitleAlign != "" {
		resolved.TitleAlign = flags.TitleAlign
	}
	if flags.HeadingAlign != "" {
		resolved.HeadingAlign = flags.HeadingAlign
	}
	if flags.HeadingCase != "" {
		resolved.HeadingCase = flags.HeadingCase
	}

	for _, spec := range flags.Align {
		idx, dir, err := ParseColumnSpec(spec)
		if err != nil {
			return nil, fmt.Errorf("--align: %w", err)
		}
		resolved.Columns = append(resolved.Columns, ColumnConfig{Index: idx, Align: dir})
	}
	for _, spec := range flags.VAlign {
		idx, dir, err := ParseColumnSpec(spec)
		if err != nil {
			return nil, fmt.Errorf("--valign: %w", err)
		}
		resolved.Columns = append(resolved.Columns, ColumnConfig{Index: idx, VAlign: dir})
	}

	if err := resolved.Validate(); err != nil {
		return nil, err
	}
	return &resolved, nil
}

// ParseColumnSpec splits "idx=direction" into its parts.
func ParseColumnSpec(spec string) (int, string, error) {
	idxPart, dir, ok := strings.Cut(spec, "=")
	if !ok {
		return 0, "", fmt.Errorf("expected idx=direction, got %q", spec)
	}
	idx, err := strconv.Atoi(strings.TrimSpace(idxPart))
	if err != nil || idx < 0 {
		return 0, "", fmt.Errorf("invalid column index in %q", spec)
	}
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return 0, "", fmt.Errorf("missing direction in %q", spec)
	}
	return idx, dir, nil
}

// parseBorder maps "edge,fill,top,bottom,row" onto a BorderConfig.
func parseBorder(s string) BorderConfig {
	var b BorderConfig
	fields := []*string{&b.Edge, &b.Fill, &b.Top, &b.Bottom, &b.Row}
	for i, part := range strings.SplitN(s, ",", len(fields)) {
		*fields[i] = part
	}
	return b
}
