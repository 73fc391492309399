package utils

import "strings"

// FirstLine returns the text before the first newline of the trimmed input.
// Multi-line failure messages carry captured logging after the first line;
// only the leading line is meaningful as a reason.
func FirstLine(s string) string {
	trimmed := strings.TrimSpace(s)
	if idx := strings.IndexByte(trimmed, '\n'); idx >= 0 {
		return strings.TrimRight(trimmed[:idx], "\r")
	}
	return trimmed
}
