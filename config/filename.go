package config

import (
	"os"
	"strings"
	"unicode"
)

// used when nothing is left of the name after cleaning
const badFileName = "_bad_file_name_"

// cleanName drops control characters and runes from forbidden, trims
// leading dots and spaces, so output never becomes hidden file, and trailing
// runes from trailing. Names for which reserved reports true get "_" prefix.
func cleanName(in, forbidden, trailing string, reserved func(string) bool) string {
	forbidden += string(os.PathSeparator) + string(os.PathListSeparator)
	out := strings.Map(func(sym rune) rune {
		if unicode.IsControl(sym) || strings.ContainsRune(forbidden, sym) {
			return -1
		}
		return sym
	}, in)
	out = strings.TrimLeft(out, ". ")
	if trailing != "" {
		out = strings.TrimRight(out, trailing)
	}
	if len(out) == 0 {
		return badFileName
	}
	if reserved != nil && reserved(out) {
		return "_" + out
	}
	return out
}
