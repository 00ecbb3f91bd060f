package source

import "strings"

func lines(l ...string) string {
	return strings.Join(l, "\n")
}

func firstLines(s string, n int) string {
	parts := strings.Split(s, "\n")
	if len(parts) > n {
		parts = parts[:n]
	}
	return strings.Join(parts, "\n")
}
