package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/dkoosis/asciitable/pkg/table"
)

// Constants for file lookup and default values.
const (
	FileName     = ".asciitable.yaml"
	AppDir       = "asciitable"
	DefaultTheme = "default"
	EnvTheme     = "ASCIITABLE_THEME"
	EnvDebug     = "ASCIITABLE_DEBUG"
)

// ErrUnknownCase is returned for a heading_case value other than upper,
// lower or title.
var ErrUnknownCase = errors.New("unknown heading case")

// BorderConfig holds border glyphs. Empty members keep the default glyph.
type BorderConfig struct {
	Edge   string `yaml:"edge"`
	Fill   string `yaml:"fill"`
	Top    string `yaml:"top"`
	Bottom string `yaml:"bottom"`
	Row    string `yaml:"row"`
}

// parts returns the glyphs in table.SetBorder order with trailing empty
// members dropped, so a lone edge glyph draws the whole border.
func (b BorderConfig) parts() []string {
	parts := []string{b.Edge, b.Fill, b.Top, b.Bottom, b.Row}
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}

// ColumnConfig overrides the alignment of one column. Empty values leave the
// column's current alignment untouched.
type ColumnConfig struct {
	Index  int    `yaml:"index"`
	Align  string `yaml:"align,omitempty"`
	VAlign string `yaml:"valign,omitempty"`
}

// Config represents the layout configuration from .asciitable.yaml.
type Config struct {
	Theme        string         `yaml:"theme"`
	Border       *BorderConfig  `yaml:"border,omitempty"`
	NoBorder     bool           `yaml:"no_border"`
	Justify      bool           `yaml:"justify"`
	RowSeparator bool           `yaml:"row_separator"`
	Prefix       string         `yaml:"prefix"`
	Title        string         `yaml:"title,omitempty"`
	TitleAlign   string         `yaml:"title_align"`
	HeadingAlign string         `yaml:"heading_align"`
	HeadingCase  string         `yaml:"heading_case"`
	Columns      []ColumnConfig `yaml:"columns"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	return &Config{Theme: DefaultTheme}
}

// Load reads the configuration at path. An empty path searches the working
// directory and then the user config directory; finding nothing is not an
// error and yields Default.
func Load(path string) (*Config, error) {
	if path == "" {
		path = getConfigPath()
		if path == "" {
			logrus.Debug("no config file found, using defaults")
			return Default(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config file %s: %w", path, err)
	}
	if cfg.Theme == "" {
		cfg.Theme = DefaultTheme
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	logrus.WithField("path", path).Debug("loaded config file")
	return cfg, nil
}

// getConfigPath returns the first config file that exists, or "".
func getConfigPath() string {
	// Try local path first
	if _, err := os.Stat(FileName); err == nil {
		if abs, err := filepath.Abs(FileName); err == nil {
			logrus.WithField("path", abs).Debug("using local config file")
		}
		return FileName
	}

	configHome, err := os.UserConfigDir()
	// An empty or root config dir is not usable for the XDG path.
	if err != nil || configHome == "" || configHome == "/" {
		logrus.WithError(err).Debug("user config dir unavailable")
		return ""
	}

	xdgPath := filepath.Join(configHome, AppDir, FileName)
	if _, err := os.Stat(xdgPath); err == nil {
		logrus.WithField("path", xdgPath).Debug("using XDG config file")
		return xdgPath
	}
	logrus.WithField("path", xdgPath).Debug("XDG config file not found")
	return ""
}

// Validate checks every alignment and case name.
func (c *Config) Validate() error {
	if _, err := parseHorizontal(c.TitleAlign, table.Center); err != nil {
		return fmt.Errorf("title_align: %w", err)
	}
	if _, err := parseHorizontal(c.HeadingAlign, table.Center); err != nil {
		return fmt.Errorf("heading_align: %w", err)
	}
	if _, err := headingCaser(c.HeadingCase); err != nil {
		return fmt.Errorf("heading_case: %w", err)
	}
	for _, col := range c.Columns {
		if col.Index < 0 {
			return fmt.Errorf("columns: negative index %d", col.Index)
		}
		if _, err := table.ParseHorizontal(col.Align); err != nil {
			return fmt.Errorf("columns[%d].align: %w", col.Index, err)
		}
		if _, err := table.ParseVertical(col.VAlign); err != nil {
			return fmt.Errorf("columns[%d].valign: %w", col.Index, err)
		}
	}
	return nil
}

// Apply sets the configured layout on t. Columns are applied in order, so a
// later entry for the same index wins.
func (c *Config) Apply(t *table.Table) error {
	if err := c.Validate(); err != nil {
		return err
	}

	if c.Title != "" {
		t.SetTitle(c.Title)
	}
	if c.Border != nil {
		t.SetBorder(c.Border.parts()...)
	}
	if c.NoBorder {
		t.RemoveBorder()
	}
	t.SetJustify(c.Justify)
	if c.RowSeparator {
		t.EnableRowSeparator()
	}
	if c.Prefix != "" {
		t.SetPrefix(c.Prefix)
	}

	titleAlign, _ := parseHorizontal(c.TitleAlign, t.TitleAlign())
	t.SetTitleAlign(titleAlign)
	headingAlign, _ := parseHorizontal(c.HeadingAlign, t.HeadingAlign())
	t.SetHeadingAlign(headingAlign)

	for _, col := range c.Columns {
		if col.Align != "" {
			dir, _ := table.ParseHorizontal(col.Align)
			t.SetAlignHorizontal(col.Index, dir)
		}
		if col.VAlign != "" {
			dir, _ := table.ParseVertical(col.VAlign)
			t.SetAlignVertical(col.Index, dir)
		}
	}

	caser, _ := headingCaser(c.HeadingCase)
	if caser != nil {
		applyHeadingCase(t, caser)
	}
	return nil
}

// parseHorizontal parses name, returning keep when name is empty.
func parseHorizontal(name string, keep table.Horizontal) (table.Horizontal, error) {
	if name == "" {
		return keep, nil
	}
	return table.ParseHorizontal(name)
}

// headingCaser returns nil for an empty name.
func headingCaser(name string) (*cases.Caser, error) {
	var c cases.Caser
	switch name {
	case "":
		return nil, nil
	case "upper":
		c = cases.Upper(language.Und)
	case "lower":
		c = cases.Lower(language.Und)
	case "title":
		c = cases.Title(language.Und)
	default:
		return nil, fmt.Errorf("%w %q (expected upper, lower, title)", ErrUnknownCase, name)
	}
	return &c, nil
}

// applyHeadingCase rewrites string heading cells. Other values are kept.
func applyHeadingCase(t *table.Table, caser *cases.Caser) {
	heading, err := t.Heading()
	if err != nil {
		return
	}
	for i, v := range heading {
		if s, ok := v.(string); ok {
			heading[i] = caser.String(s)
		}
	}
	t.SetHeading(heading...)
}
