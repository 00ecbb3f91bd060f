package magetasks

import (
	"errors"
	"io/fs"
	"os/exec"
	"strings"
)

// IsCommandNotFound reports whether err means the command is not installed.
// mage's sh package formats start errors with %v, so the message is checked
// as well as the error chain.
func IsCommandNotFound(err error) bool {
	if err == nil {
		return false
	}
	var execErr *exec.Error
	if errors.As(err, &execErr) || errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "executable file not found") ||
		strings.Contains(msg, "no such file or directory")
}
