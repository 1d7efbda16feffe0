package source

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
)

var (
	textHeadingRx = regexp.MustCompile(`^(#{1,6})\s+(.*?)\s*#*\s*$`)
	textItemRx    = regexp.MustCompile(`^([ \t]*)(?:([-*+•·])|(\d{1,3})[.)])\s+(.*)$`)
)

// ReadText tokenizes plain text. Every non blank line is a paragraph of its
// own, lines starting with '#' are headings and runs of bulleted or numbered
// lines form lists, indentation defining nesting.
func ReadText(r io.Reader) ([]Token, error) {
	var (
		tokens []Token
		items  []ListItem
	)
	flush := func() {
		if len(items) > 0 {
			tokens = append(tokens, List(items...))
			items = nil
		}
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for sc.Scan() {
		raw := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(raw) == "" {
			flush()
			continue
		}
		if m := textItemRx.FindStringSubmatch(raw); m != nil {
			items = append(items, ListItem{
				Depth:   indentDepth(m[1]),
				Ordered: m[3] != "",
				Text:    Plain(m[4]).collapse().TrimSpace(),
			})
			continue
		}
		flush()
		if m := textHeadingRx.FindStringSubmatch(raw); m != nil {
			tokens = append(tokens, Heading(len(m[1]), Plain(m[2]).collapse().TrimSpace()))
			continue
		}
		tokens = append(tokens, Paragraph(Plain(raw).collapse().TrimSpace()))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("unable to read text source: %w", err)
	}
	flush()
	return tokens, nil
}

// indentDepth converts leading white space into list nesting depth, two
// spaces or a single tab per level.
func indentDepth(indent string) int {
	width := 0
	for _, r := range indent {
		if r == '\t' {
			width += 2
		} else {
			width++
		}
	}
	return width / 2
}
