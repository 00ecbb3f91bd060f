package magetasks

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/magefile/mage/sh"
)

// BuildAll builds the asciitable binary with version information linked in.
func BuildAll() error {
	PrintHeader("Build")

	if err := Run("Go Build", "go", "build", "-ldflags", ldflags(), "-o", BinPath, MainPackage); err != nil {
		PrintError("Build failed")
		return err
	}

	PrintSuccess(fmt.Sprintf("Built: %s", BinPath))
	return nil
}

// ldflags sets the variables of internal/version.
func ldflags() string {
	pkg := ModulePath + "/internal/version"
	return strings.Join([]string{
		"-s", "-w",
		fmt.Sprintf("-X '%s.Version=%s'", pkg, gitOutput("dev", "describe", "--tags", "--always", "--dirty", "--match=v*")),
		fmt.Sprintf("-X '%s.CommitHash=%s'", pkg, gitOutput("unknown", "rev-parse", "--short", "HEAD")),
		fmt.Sprintf("-X '%s.BuildDate=%s'", pkg, time.Now().UTC().Format(time.RFC3339)),
	}, " ")
}

// Clean removes build artifacts.
func Clean() error {
	PrintHeader("Clean")

	if err := sh.Rm(filepath.Dir(BinPath)); err != nil {
		return fmt.Errorf("removing %s: %w", filepath.Dir(BinPath), err)
	}
	if err := sh.Rm("coverage.out"); err != nil && !os.IsNotExist(err) {
		return err
	}

	PrintSuccess("Cleaned build artifacts")
	return nil
}

// gitOutput returns the trimmed output of git args, or fallback.
func gitOutput(fallback string, args ...string) string {
	out, err := sh.Output("git", args...)
	if err != nil || out == "" {
		return fallback
	}
	return strings.TrimSpace(out)
}
