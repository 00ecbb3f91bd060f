// Package config handles configuration loading and merging for asciitable.
//
// # Configuration Precedence
//
// Configuration values are resolved in the following order (highest to lowest priority):
//
//  1. CLI flags (--theme, --border, --justify, --align, etc.)
//  2. Environment variables (ASCIITABLE_THEME)
//  3. YAML config file (.asciitable.yaml in the working directory or
//     ~/.config/asciitable/.asciitable.yaml)
//  4. Hardcoded defaults
//
// When a higher-priority source sets a value, it overrides any lower-priority values.
// Column alignments are the exception: flag columns are applied after file
// columns, so a flag wins only for the columns it names.
//
// # Example
//
//	theme: orca
//	border:
//	  edge: "|"
//	  fill: "="
//	row_separator: true
//	heading_case: upper
//	columns:
//	  - index: 0
//	    align: right
//	  - index: 2
//	    valign: top
//
// # Environment Variables
//
//   - ASCIITABLE_THEME: theme name used when --theme is not given
//   - ASCIITABLE_DEBUG: set to any non-empty value to enable debug output
package config
