//go:build !windows

package config

import (
	"os"

	"golang.org/x/term"
)

// CleanFileName makes single path segment out of document or directory name.
func CleanFileName(in string) string {
	return cleanName(in, "", "", nil)
}

// EnableColorOutput reports whether log levels could be colored on stream.
func EnableColorOutput(stream *os.File) bool {
	return term.IsTerminal(int(stream.Fd()))
}
