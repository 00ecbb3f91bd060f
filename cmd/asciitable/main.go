// asciitable renders tabular data as a bordered ASCII table.
//
// Usage:
//
//	asciitable pets.csv
//	echo '{"title":"Pets","heading":["name","age"],"rows":[["Rex",3]]}' | asciitable
//	asciitable --align 1=right --row-separator data.yaml
//
// Accepts three input formats, from a file argument or stdin:
//   - JSON (a table snapshot object, or an array of rows whose first row is the heading)
//   - YAML (a table snapshot mapping)
//   - CSV (first record is the heading)
//
// Output modes (auto-detected):
//
//	terminal  styled output (default when TTY)
//	plain     the table text with no ANSI codes (default when piped)
//	json      the table snapshot for automation
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dkoosis/asciitable/internal/config"
	"github.com/dkoosis/asciitable/internal/version"
	"github.com/dkoosis/asciitable/internal/viewer"
	"github.com/dkoosis/asciitable/pkg/render"
	"github.com/dkoosis/asciitable/pkg/source"
	"github.com/dkoosis/asciitable/pkg/table"
)

// Exit codes.
const (
	exitOK     = 0
	exitRender = 1
	exitUsage  = 2
)

// options holds the flags that are not part of config.Flags.
type options struct {
	layout     config.Flags
	format     string
	input      string
	configPath string
	sortColumn int
	view       bool
	debug      bool
	version    bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logrus.SetOutput(stderr)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	logrus.SetLevel(logrus.WarnLevel)

	var opts options
	code := exitOK
	cmd := newRootCommand(&opts, func(cmd *cobra.Command, args []string) {
		code = execute(cmd, args, &opts, stdin, stdout)
	})
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "asciitable: %v\n", err)
		return exitUsage
	}
	return code
}

func newRootCommand(opts *options, runFn func(*cobra.Command, []string)) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "asciitable [file]",
		Short:         "Render tabular data as an ASCII table",
		Long:          `Read a table from JSON, YAML or CSV and print it as a bordered ASCII table.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		Run:           runFn,
	}

	f := cmd.Flags()
	f.StringVar(&opts.format, "format", "auto", "Output format: auto, plain, terminal, json")
	f.StringVar(&opts.input, "input", "auto", "Input format: auto, json, yaml, csv")
	f.StringVar(&opts.configPath, "config", "", "Config file (default .asciitable.yaml, then the user config dir)")
	f.IntVar(&opts.sortColumn, "sort-column", -1, "Sort rows by this column index")
	f.BoolVar(&opts.view, "view", false, "Show the table in a scrollable viewer")
	f.BoolVar(&opts.debug, "debug", false, "Log debug output to stderr")
	f.BoolVar(&opts.version, "version", false, "Print version and exit")

	l := &opts.layout
	f.StringVar(&l.Theme, "theme", config.DefaultTheme, "Theme: default, orca, mono")
	f.StringVar(&l.Title, "title", "", "Table title")
	f.StringVar(&l.Border, "border", "", "Border glyphs: edge[,fill[,top[,bottom[,row]]]]")
	f.BoolVar(&l.NoBorder, "no-border", false, "Draw no border")
	f.BoolVar(&l.Justify, "justify", false, "Give every column the same width")
	f.BoolVar(&l.RowSeparator, "row-separator", false, "Draw a line between rows")
	f.StringVar(&l.Prefix, "prefix", "", "String written before every line")
	f.StringVar(&l.TitleAlign, "title-align", "", "Title alignment: left, center, right")
	f.StringVar(&l.HeadingAlign, "heading-align", "", "Heading alignment: left, center, right, auto")
	f.StringVar(&l.HeadingCase, "heading-case", "", "Heading case: upper, lower, title")
	f.StringArrayVar(&l.Align, "align", nil, "Column alignment idx=left|center|right (repeatable)")
	f.StringArrayVar(&l.VAlign, "valign", nil, "Column vertical alignment idx=top|middle|bottom (repeatable)")

	return cmd
}

func execute(cmd *cobra.Command, args []string, opts *options, stdin io.Reader, stdout io.Writer) int {
	if opts.version {
		fmt.Fprintln(stdout, version.String("asciitable"))
		return exitOK
	}
	if opts.debug || os.Getenv(config.EnvDebug) != "" {
		logrus.SetLevel(logrus.DebugLevel)
	}
	markSetFlags(cmd, &opts.layout)

	cfg, err := loadConfig(opts.configPath, opts.layout)
	if err != nil {
		logrus.Error(err)
		return exitUsage
	}

	tbl, code := readTable(args, opts.input, stdin)
	if code != exitOK {
		return code
	}
	if err := cfg.Apply(tbl); err != nil {
		logrus.Error(err)
		return exitUsage
	}
	if opts.sortColumn >= 0 {
		tbl.SortColumn(opts.sortColumn, table.CompareValues)
	}

	mode := resolveFormat(opts.format, stdout)
	validFormats := map[string]bool{"plain": true, "terminal": true, "json": true}
	if !validFormats[mode] {
		logrus.Errorf("unknown format %q (expected auto, plain, terminal, json)", opts.format)
		return exitUsage
	}

	if opts.view {
		if isTTYWriter(stdout) {
			return runViewer(tbl, cfg.Theme)
		}
		logrus.Warn("--view needs a terminal, printing instead")
	}

	output := selectRenderer(mode, cfg.Theme).Render(tbl)
	if _, err := io.WriteString(stdout, output); err != nil {
		logrus.WithError(err).Error("writing output")
		return exitRender
	}
	return exitOK
}

// markSetFlags records which layout flags were given explicitly.
func markSetFlags(cmd *cobra.Command, l *config.Flags) {
	changed := cmd.Flags().Changed
	l.ThemeSet = changed("theme")
	l.BorderSet = changed("border")
	l.NoBorderSet = changed("no-border")
	l.JustifySet = changed("justify")
	l.RowSeparatorSet = changed("row-separator")
	l.PrefixSet = changed("prefix")
	l.TitleSet = changed("title")
}

// loadConfig reads the config file and merges the flags over it. A broken
// file found by search is reported and skipped; an explicit --config must
// load.
func loadConfig(path string, flags config.Flags) (*config.Config, error) {
	file, err := config.Load(path)
	if err != nil {
		if path != "" {
			return nil, err
		}
		logrus.WithError(err).Warn("ignoring config file")
		file = config.Default()
	}
	return config.Resolve(file, flags)
}

// readTable reads the file named in args, or stdin when there is none or it
// is "-". Returns (table, 0) on success; (nil, exitCode) on error.
func readTable(args []string, inputFlag string, stdin io.Reader) (*table.Table, int) {
	format, ok := source.ParseFormat(inputFlag)
	if !ok {
		logrus.Errorf("unknown input format %q (expected auto, json, yaml, csv)", inputFlag)
		return nil, exitUsage
	}

	var (
		data []byte
		err  error
		name = "stdin"
	)
	if len(args) == 1 && args[0] != "-" {
		name = args[0]
		data, err = os.ReadFile(name)
	} else {
		data, err = io.ReadAll(stdin)
	}
	if err != nil {
		logrus.WithError(err).Errorf("reading %s", name)
		return nil, exitUsage
	}
	if len(data) == 0 {
		logrus.Errorf("no input on %s", name)
		return nil, exitUsage
	}

	tbl, err := source.Read(format, data)
	if err != nil {
		if errors.Is(err, source.ErrUnknownFormat) {
			logrus.Errorf("%s: %v, use --input to name the format", name, err)
		} else {
			logrus.WithError(err).Errorf("parsing %s", name)
		}
		return nil, exitUsage
	}
	logrus.WithFields(logrus.Fields{
		"source":  name,
		"rows":    len(tbl.Rows()),
		"columns": tbl.ColumnCount(),
	}).Debug("read table")
	return tbl, exitOK
}

func runViewer(tbl *table.Table, themeName string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	theme := selectTheme(themeName)
	content := render.NewTerminal(theme).Render(tbl)
	if err := viewer.Run(ctx, tbl.Title(), content, theme); err != nil {
		logrus.WithError(err).Error("viewer failed")
		return exitRender
	}
	return exitOK
}

// isTTYWriter reports whether w is a terminal.
func isTTYWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func selectTheme(name string) render.Theme {
	// Honor NO_COLOR
	if os.Getenv("NO_COLOR") != "" {
		return render.MonoTheme()
	}
	return render.ThemeByName(name)
}

func selectRenderer(mode, themeName string) render.Renderer {
	switch mode {
	case "json":
		return render.NewJSON()
	case "plain":
		return render.NewPlain()
	default:
		return render.NewTerminal(selectTheme(themeName))
	}
}

func resolveFormat(format string, w io.Writer) string {
	if format != "auto" {
		return format
	}
	// Auto-detect: TTY = terminal, piped = plain
	if isTTYWriter(w) {
		return "terminal"
	}
	return "plain"
}
