package source

import (
	"fmt"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/net/html/charset"
)

// ReadHTML tokenizes HTML documents, such as word processor exports. Input
// encoding is detected from contentType, BOM or meta elements.
func ReadHTML(r io.Reader, contentType string) ([]Token, error) {
	rd, err := charset.NewReader(r, contentType)
	if err != nil {
		return nil, fmt.Errorf("unable to detect html encoding: %w", err)
	}
	doc, err := html.Parse(rd)
	if err != nil {
		return nil, fmt.Errorf("unable to parse html: %w", err)
	}

	w := &htmlWalker{}
	w.walk(doc, "")
	w.flush()
	return w.tokens, nil
}

type htmlWalker struct {
	tokens []Token
	lines  []Line
	cur    Line
}

func (w *htmlWalker) walk(n *html.Node, url string) {
	switch n.Type {
	case html.TextNode:
		w.cur = w.cur.Append(Span{Text: n.Data, URL: url})
		return
	case html.ElementNode:
		switch n.DataAtom {
		case atom.Head, atom.Script, atom.Style, atom.Noscript, atom.Template, atom.Title:
			return
		case atom.Br:
			w.breakLine()
			return
		case atom.A:
			url = attr(n, "href")
		case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
			w.flush()
			line := inlineText(n, "", nil).collapse().TrimSpace()
			if !line.IsBlank() {
				w.tokens = append(w.tokens, Heading(int(n.Data[1]-'0'), line))
			}
			return
		case atom.Ul, atom.Ol:
			w.flush()
			var items []ListItem
			listItems(n, 0, &items)
			if len(items) > 0 {
				w.tokens = append(w.tokens, List(items...))
			}
			return
		default:
			if isBlock(n.DataAtom) {
				w.flush()
				defer w.flush()
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.walk(c, url)
	}
}

func (w *htmlWalker) breakLine() {
	if line := w.cur.collapse().TrimSpace(); !line.IsBlank() {
		w.lines = append(w.lines, line)
	}
	w.cur = nil
}

func (w *htmlWalker) flush() {
	w.breakLine()
	if len(w.lines) > 0 {
		w.tokens = append(w.tokens, Paragraph(w.lines...))
		w.lines = nil
	}
}

func listItems(list *html.Node, depth int, items *[]ListItem) {
	ordered := list.DataAtom == atom.Ol
	for li := list.FirstChild; li != nil; li = li.NextSibling {
		if li.Type != html.ElementNode || li.DataAtom != atom.Li {
			continue
		}
		var (
			text   Line
			nested []*html.Node
		)
		for c := li.FirstChild; c != nil; c = c.NextSibling {
			if c.DataAtom == atom.Ul || c.DataAtom == atom.Ol {
				nested = append(nested, c)
				continue
			}
			text = inlineText(c, "", text)
		}
		*items = append(*items, ListItem{Depth: depth, Ordered: ordered, Text: text.collapse().TrimSpace()})
		for _, sub := range nested {
			listItems(sub, depth+1, items)
		}
	}
}

// inlineText flattens node content into a single line keeping hyperlinks.
func inlineText(n *html.Node, url string, line Line) Line {
	switch n.Type {
	case html.TextNode:
		return line.Append(Span{Text: n.Data, URL: url})
	case html.ElementNode:
		switch n.DataAtom {
		case atom.Script, atom.Style, atom.Template:
			return line
		case atom.Br:
			return line.Append(Span{Text: " ", URL: url})
		case atom.A:
			url = attr(n, "href")
		default:
			if isBlock(n.DataAtom) {
				line = line.Append(Span{Text: " ", URL: url})
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		line = inlineText(c, url, line)
	}
	return line
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val
		}
	}
	return ""
}

func isBlock(a atom.Atom) bool {
	switch a {
	case atom.P, atom.Div, atom.Blockquote, atom.Pre, atom.Section, atom.Article,
		atom.Header, atom.Footer, atom.Main, atom.Aside, atom.Nav, atom.Figure, atom.Figcaption,
		atom.Table, atom.Tr, atom.Td, atom.Th, atom.Li, atom.Dl, atom.Dt, atom.Dd, atom.Hr, atom.Body:
		return true
	}
	return false
}
