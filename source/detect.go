package source

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Format is kind of source document.
type Format string

const (
	FormatUnknown  Format = ""
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// FormatFromName detects source format by file name extension.
func FormatFromName(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".txt", ".text":
		return FormatText
	case ".md", ".markdown", ".mdown":
		return FormatMarkdown
	case ".html", ".htm", ".xhtml":
		return FormatHTML
	}
	return FormatUnknown
}

// Read tokenizes source document of the specified format. When enc is nil
// text and Markdown input is treated as UTF-8 unless it starts with a BOM,
// HTML encoding is detected from the document itself.
func Read(r io.Reader, format Format, enc encoding.Encoding) ([]Token, error) {
	switch format {
	case FormatHTML:
		if enc == nil {
			return ReadHTML(r, "")
		}
		return ReadHTML(transform.NewReader(r, enc.NewDecoder()), "text/html; charset=utf-8")
	case FormatText, FormatMarkdown:
	default:
		return nil, fmt.Errorf("unsupported source format %q", format)
	}

	var fallback transform.Transformer = unicode.UTF8.NewDecoder()
	if enc != nil {
		fallback = enc.NewDecoder()
	}
	r = transform.NewReader(r, unicode.BOMOverride(fallback))

	if format == FormatText {
		return ReadText(r)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("unable to read markdown source: %w", err)
	}
	return ReadMarkdown(data), nil
}
