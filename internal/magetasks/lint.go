package magetasks

import (
	"errors"
	"fmt"

	"github.com/magefile/mage/sh"
)

// golangciDisabled lists linters that do not fit this codebase.
const golangciDisabled = "--disable=exhaustruct,varnamelen,ireturn,wrapcheck,nlreturn,gochecknoglobals,mnd,depguard,tagalign"

// formatter captures gofmt output. Tests replace it.
var formatter = sh.Output

// LintAll runs all linters.
func LintAll() error {
	var errs []error

	PrintHeader("Lint")

	// Go format
	if err := LintFormat(); err != nil {
		errs = append(errs, err)
	}

	// Go vet
	if err := LintVet(); err != nil {
		errs = append(errs, err)
	}

	// Staticcheck (optional)
	if err := LintStaticcheck(); err != nil {
		if !IsCommandNotFound(err) {
			errs = append(errs, err)
		}
	}

	// Golangci-lint (optional)
	if err := LintGolangci(); err != nil {
		if !IsCommandNotFound(err) {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	PrintSuccess("All linters passed")
	return nil
}

// LintFormat lists files gofmt would change and fails if there are any.
func LintFormat() error {
	out, err := formatter("gofmt", "-l", "cmd", "internal", "pkg")
	if err != nil {
		return fmt.Errorf("gofmt failed: %w", err)
	}
	if out != "" {
		steps = append(steps, Step{Name: "Go Format", Status: StatusFail})
		return fmt.Errorf("files need formatting:\n%s", out)
	}
	steps = append(steps, Step{Name: "Go Format", Status: StatusPass})
	return nil
}

// LintVet runs go vet.
func LintVet() error {
	return Run("Go Vet", "go", "vet", "./...")
}

// tool is an optional linter binary with its install path.
type tool struct {
	bin     string
	install string
}

var (
	staticcheck = tool{"staticcheck", "honnef.co/go/tools/cmd/staticcheck@latest"}
	golangci    = tool{"golangci-lint", "github.com/golangci/golangci-lint/cmd/golangci-lint@latest"}
)

// run records a step for the tool. A missing binary is reported as a
// warning and returned unwrapped so IsCommandNotFound still matches.
func (tl tool) run(step string, args ...string) error {
	err := Run(step, tl.bin, args...)
	switch {
	case err == nil:
		return nil
	case IsCommandNotFound(err):
		PrintWarning(fmt.Sprintf("%s not found (install: go install %s)", tl.bin, tl.install))
		return err
	default:
		return fmt.Errorf("%s failed: %w", tl.bin, err)
	}
}

// LintStaticcheck runs staticcheck.
func LintStaticcheck() error {
	return staticcheck.run("Staticcheck", "./...")
}

// LintGolangci runs golangci-lint.
func LintGolangci() error {
	return golangciRun("Golangci-lint")
}

// LintGolangciFix runs golangci-lint with auto-fixes.
func LintGolangciFix() error {
	return golangciRun("Golangci-lint Fix", "--fix")
}

func golangciRun(step string, extra ...string) error {
	args := append([]string{"run"}, extra...)
	args = append(args, golangciDisabled, "--timeout=5m", "./...")
	return golangci.run(step, args...)
}
