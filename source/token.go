// Package source defines the token stream documents are compiled from and
// adapters producing it from plain text, Markdown and HTML inputs.
package source

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Span is a run of inline text, optionally hyperlinked. Text is never escaped.
type Span struct {
	Text string
	URL  string
}

// Line is an ordered sequence of spans forming one logical line of text.
type Line []Span

// Plain makes a line from unformatted text.
func Plain(s string) Line {
	if s == "" {
		return nil
	}
	return Line{{Text: s}}
}

// String returns plain text of the line.
func (l Line) String() string {
	switch len(l) {
	case 0:
		return ""
	case 1:
		return l[0].Text
	}
	var b strings.Builder
	for _, s := range l {
		b.WriteString(s.Text)
	}
	return b.String()
}

func (l Line) IsBlank() bool {
	for _, s := range l {
		if strings.TrimSpace(s.Text) != "" {
			return false
		}
	}
	return true
}

// HasLinks reports whether any span of the line is a hyperlink.
func (l Line) HasLinks() bool {
	for _, s := range l {
		if s.URL != "" {
			return true
		}
	}
	return false
}

// Append adds a span to the line merging it with the last one when both
// share the same link target.
func (l Line) Append(s Span) Line {
	if s.Text == "" {
		return l
	}
	if n := len(l); n > 0 && l[n-1].URL == s.URL {
		l[n-1].Text += s.Text
		return l
	}
	return append(l, s)
}

// Slice returns part of the line between byte offsets start and end of its
// plain text, preserving link targets of the covered spans.
func (l Line) Slice(start, end int) Line {
	if start >= end {
		return nil
	}
	var (
		out Line
		pos int
	)
	for _, s := range l {
		next := pos + len(s.Text)
		if next > start && pos < end {
			from, to := max(start-pos, 0), min(end-pos, len(s.Text))
			out = out.Append(Span{Text: s.Text[from:to], URL: s.URL})
		}
		if next >= end {
			break
		}
		pos = next
	}
	return out
}

// TrimSpace removes leading and trailing white space from the line.
func (l Line) TrimSpace() Line {
	s := l.String()
	start := len(s) - len(strings.TrimLeftFunc(s, unicode.IsSpace))
	end := len(strings.TrimRightFunc(s, unicode.IsSpace))
	return l.Slice(start, end)
}

// Split slices the line around each occurrence of sep.
func (l Line) Split(sep string) []Line {
	s := l.String()
	var (
		out  []Line
		prev int
	)
	for {
		i := strings.Index(s[prev:], sep)
		if i < 0 {
			break
		}
		out = append(out, l.Slice(prev, prev+i))
		prev += i + len(sep)
	}
	return append(out, l.Slice(prev, len(s)))
}

// collapse replaces runs of white space inside spans with single spaces.
func (l Line) collapse() Line {
	var out Line
	for _, s := range l {
		var b strings.Builder
		space := false
		for len(s.Text) > 0 {
			r, size := utf8.DecodeRuneInString(s.Text)
			s.Text = s.Text[size:]
			if unicode.IsSpace(r) {
				space = true
				continue
			}
			if space {
				b.WriteByte(' ')
				space = false
			}
			b.WriteRune(r)
		}
		if space {
			b.WriteByte(' ')
		}
		out = out.Append(Span{Text: b.String(), URL: s.URL})
	}
	return out
}

// TokenKind distinguishes structural tokens of the source stream.
type TokenKind string

const (
	TokenHeading   TokenKind = "heading"
	TokenParagraph TokenKind = "paragraph"
	TokenList      TokenKind = "list"
)

// ListItem is a single list entry. Depth is 0 for top level items.
type ListItem struct {
	Depth   int
	Ordered bool
	Text    Line
}

// Token is a structural element of the source document. Headings carry a
// level and a single line, paragraphs one or more lines, lists their items
// in document order.
type Token struct {
	Kind  TokenKind
	Level int
	Lines []Line
	Items []ListItem
}

// Heading makes heading token.
func Heading(level int, text Line) Token {
	return Token{Kind: TokenHeading, Level: level, Lines: []Line{text}}
}

// Paragraph makes paragraph token.
func Paragraph(lines ...Line) Token {
	return Token{Kind: TokenParagraph, Lines: lines}
}

// List makes list token.
func List(items ...ListItem) Token {
	return Token{Kind: TokenList, Items: items}
}
