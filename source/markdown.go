package source

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// ReadMarkdown tokenizes Markdown source. Soft and hard line breaks inside a
// paragraph split it into separate lines so directive lines written one
// under another stay separate. Images are turned into IMG directive lines.
func ReadMarkdown(src []byte) []Token {
	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	r := &mdReader{src: src}
	r.blocks(doc)
	return r.tokens
}

type mdReader struct {
	src    []byte
	tokens []Token
	lines  []Line
	cur    Line
	join   bool // line breaks become spaces
}

func (r *mdReader) blocks(parent ast.Node) {
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		switch v := n.(type) {
		case *ast.Heading:
			r.join = true
			r.inline(v, "")
			r.join = false
			line := r.takeLine()
			if !line.IsBlank() {
				r.tokens = append(r.tokens, Heading(v.Level, line))
			}
		case *ast.Paragraph, *ast.TextBlock:
			r.inline(v, "")
			r.breakLine()
			r.flush()
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			lines := v.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				r.cur = r.cur.Append(Span{Text: strings.TrimRight(string(seg.Value(r.src)), "\r\n")})
				r.breakLine()
			}
			r.flush()
		case *ast.List:
			var items []ListItem
			r.list(v, 0, &items)
			if len(items) > 0 {
				r.tokens = append(r.tokens, List(items...))
			}
		case *ast.Blockquote:
			r.blocks(v)
		case *ast.ThematicBreak, *ast.HTMLBlock:
			// nothing to carry over
		default:
			r.blocks(v)
		}
	}
}

func (r *mdReader) list(l *ast.List, depth int, items *[]ListItem) {
	prev := r.join
	r.join = true
	defer func() { r.join = prev }()
	for item := l.FirstChild(); item != nil; item = item.NextSibling() {
		var nested []*ast.List
		for c := item.FirstChild(); c != nil; c = c.NextSibling() {
			if sub, ok := c.(*ast.List); ok {
				nested = append(nested, sub)
				continue
			}
			if r.cur != nil {
				r.cur = r.cur.Append(Span{Text: " "})
			}
			r.inline(c, "")
		}
		*items = append(*items, ListItem{Depth: depth, Ordered: l.IsOrdered(), Text: r.takeLine()})
		for _, sub := range nested {
			r.list(sub, depth+1, items)
		}
	}
}

func (r *mdReader) inline(parent ast.Node, url string) {
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		switch v := n.(type) {
		case *ast.Text:
			r.cur = r.cur.Append(Span{Text: string(v.Segment.Value(r.src)), URL: url})
			if v.SoftLineBreak() || v.HardLineBreak() {
				if r.join {
					r.cur = r.cur.Append(Span{Text: " ", URL: url})
				} else {
					r.breakLine()
				}
			}
		case *ast.String:
			r.cur = r.cur.Append(Span{Text: string(v.Value), URL: url})
		case *ast.Link:
			r.inline(v, string(v.Destination))
		case *ast.AutoLink:
			r.cur = r.cur.Append(Span{Text: string(v.Label(r.src)), URL: string(v.URL(r.src))})
		case *ast.Image:
			alt := plainText(v, r.src)
			r.cur = r.cur.Append(Span{Text: "[IMG:" + string(v.Destination) + "|" + strings.ReplaceAll(alt, "|", " ") + "]"})
		case *ast.RawHTML:
			// inline markup is dropped, its text content if any follows as siblings
		default:
			r.inline(v, url)
		}
	}
}

// breakLine finishes current line adding it to paragraph being collected.
func (r *mdReader) breakLine() {
	if line := r.takeLine(); !line.IsBlank() {
		r.lines = append(r.lines, line)
	}
}

func (r *mdReader) takeLine() Line {
	line := r.cur.collapse().TrimSpace()
	r.cur = nil
	return line
}

func (r *mdReader) flush() {
	if len(r.lines) > 0 {
		r.tokens = append(r.tokens, Paragraph(r.lines...))
		r.lines = nil
	}
}

func plainText(n ast.Node, src []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch v := n.(type) {
		case *ast.Text:
			b.Write(v.Segment.Value(src))
		case *ast.String:
			b.Write(v.Value)
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}
