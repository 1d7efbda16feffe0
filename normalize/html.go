package normalize

import (
	"strings"

	"golang.org/x/net/html"
)

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// EscapeHTML replaces HTML special characters with entities. Ampersand is
// handled in the same pass so produced entities are never escaped twice.
func EscapeHTML(value string) string {
	return htmlEscaper.Replace(value)
}

// StripTags removes markup from value returning its decoded text content.
func StripTags(value string) string {
	if !strings.ContainsAny(value, "<&") {
		return value
	}
	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(value))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return b.String()
		case html.TextToken:
			b.Write(z.Text())
		}
	}
}
