//go:build windows

package config

import (
	"os"
	"strings"

	"golang.org/x/sys/windows"
	"golang.org/x/term"
)

// CleanFileName makes single path segment out of document or directory name.
// Besides characters Windows does not accept in names, trailing dots and
// spaces are removed and device names are escaped.
func CleanFileName(in string) string {
	return cleanName(in, `<>":/\|?*`, ". ", isDeviceName)
}

func isDeviceName(name string) bool {
	base, _, _ := strings.Cut(name, ".")
	base = strings.ToUpper(strings.TrimSpace(base))
	switch base {
	case "CON", "PRN", "AUX", "NUL":
		return true
	}
	if len(base) == 4 && (strings.HasPrefix(base, "COM") || strings.HasPrefix(base, "LPT")) {
		return base[3] >= '1' && base[3] <= '9'
	}
	return false
}

// EnableColorOutput reports whether log levels could be colored on stream and
// switches console into VT100 mode. Consoles before Windows 10 do not
// understand escape sequences.
func EnableColorOutput(stream *os.File) bool {
	if windows.RtlGetVersion().MajorVersion < 10 {
		return false
	}
	fd := stream.Fd()
	if !term.IsTerminal(int(fd)) {
		return false
	}
	h := windows.Handle(fd)
	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return false
	}
	return windows.SetConsoleMode(h, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING) == nil
}
