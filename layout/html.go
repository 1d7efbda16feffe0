package layout

import (
	"io"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"dbc/document"
	"dbc/source"
)

var voidElements = map[string]bool{
	"area": true, "br": true, "col": true, "hr": true, "img": true,
	"input": true, "link": true, "meta": true, "source": true, "wbr": true,
}

// WriteHTML serializes element tree as HTML. Text and attribute values are
// escaped here and nowhere else. Empty non void elements get explicit end
// tags.
func WriteHTML(w io.Writer, el *etree.Element) error {
	doc := etree.NewDocument()
	doc.WriteSettings = etree.WriteSettings{CanonicalText: true, CanonicalAttrVal: true}
	root := el.Copy()
	closeEmpty(root)
	doc.SetRoot(root)
	_, err := doc.WriteTo(w)
	return err
}

// HTML returns serialized element tree.
func HTML(el *etree.Element) string {
	var b strings.Builder
	_ = WriteHTML(&b, el)
	return b.String()
}

func closeEmpty(e *etree.Element) {
	if len(e.Child) == 0 {
		if !voidElements[e.Tag] {
			e.CreateText("")
		}
		return
	}
	for _, c := range e.ChildElements() {
		closeEmpty(c)
	}
}

// inline appends line spans to parent as text and links.
func (r *renderer) inline(parent *etree.Element, line source.Line) {
	for _, s := range line {
		if s.URL == "" {
			parent.CreateText(s.Text)
			continue
		}
		a := parent.CreateElement("a")
		a.CreateAttr("href", safeURL(s.URL))
		a.CreateText(s.Text)
	}
}

var allowedSchemes = map[string]bool{"http": true, "https": true, "mailto": true, "tel": true}

func scheme(u string) string {
	i := strings.IndexAny(u, ":/?#")
	if i <= 0 || u[i] != ':' {
		return ""
	}
	return strings.ToLower(u[:i])
}

// safeURL keeps relative references and links with harmless schemes,
// anything else is replaced with "#".
func safeURL(u string) string {
	u = strings.TrimSpace(u)
	if u == "" {
		return "#"
	}
	if s := scheme(u); s != "" && !allowedSchemes[s] {
		return "#"
	}
	return u
}

// safeImageURL additionally allows inline images.
func safeImageURL(u string) string {
	u = strings.TrimSpace(u)
	if strings.HasPrefix(strings.ToLower(u), "data:image/") {
		return u
	}
	if s := scheme(u); s != "" && s != "http" && s != "https" {
		return ""
	}
	return u
}

func (r *renderer) button(parent *etree.Element, b *document.Button) {
	style := b.Style
	if style == "" {
		style = "primary"
	}
	a := r.el(parent, "a", "btn", "is-"+style)
	a.CreateAttr("href", safeURL(b.URL))
	text := b.Text.String()
	if strings.TrimSpace(text) == "" {
		text = "Learn more"
	}
	// links do not nest, button text is always plain
	a.CreateText(text)
}

func (r *renderer) actions(parent *etree.Element, buttons []document.Block, classes ...string) {
	if len(buttons) == 0 {
		return
	}
	box := r.div(parent, classes...)
	for _, b := range buttons {
		r.button(box, b.Button)
	}
}

func headingTag(level, lowest int) string {
	return "h" + strconv.Itoa(min(max(level, lowest), 6))
}

// content renders blocks in document order. Buttons are placed by layout
// renderers and skipped here, consecutive cards share a grid.
func (r *renderer) content(parent *etree.Element, blocks []document.Block) {
	var grid *etree.Element
	for _, b := range blocks {
		if b.Kind != document.BlockCard {
			grid = nil
		}
		switch b.Kind {
		case document.BlockImage:
			r.figure(parent, b.Image, nil, "media")
		case document.BlockCard:
			if grid == nil {
				grid = r.div(parent, "cards")
			}
			r.card(grid, b.Card)
		case document.BlockHeading:
			r.inline(r.el(parent, headingTag(b.Level, 3), "heading"), b.Text)
		case document.BlockParagraph:
			r.inline(r.el(parent, "p", "text"), b.Text)
		case document.BlockLead:
			r.inline(r.el(parent, "p", "lead"), b.Text)
		case document.BlockList:
			r.list(parent, b.Items)
		case document.BlockFAQQuestion:
			r.inline(r.el(parent, "p", "text").CreateElement("strong"), b.Text)
		case document.BlockFAQAnswer:
			r.inline(r.el(parent, "p", "text"), b.Text)
		}
	}
}

// list builds nested lists from flat items, deeper items go into the last
// item of the enclosing list.
func (r *renderer) list(parent *etree.Element, items []source.ListItem) {
	if len(items) == 0 {
		return
	}
	listTag := func(it source.ListItem) string {
		if it.Ordered {
			return "ol"
		}
		return "ul"
	}
	stack := []*etree.Element{r.el(parent, listTag(items[0]), "list")}
	var last *etree.Element
	for _, it := range items {
		for it.Depth > len(stack)-1 {
			host := last
			if host == nil {
				host = stack[len(stack)-1].CreateElement("li")
			}
			stack = append(stack, r.el(host, listTag(it), "list"))
			last = nil
		}
		for it.Depth < len(stack)-1 {
			stack = stack[:len(stack)-1]
		}
		last = stack[len(stack)-1].CreateElement("li")
		r.inline(last, it.Text)
	}
}

// figure renders image with optional caption using block element class
// names ("media" gives "media__figure", "media__img" and "media__cap").
func (r *renderer) figure(parent *etree.Element, img *document.Image, caption source.Line, block string) {
	fig := r.el(parent, "figure", block+"__figure")
	im := r.el(fig, "img", block+"__img")
	im.CreateAttr("src", safeImageURL(img.Src))
	im.CreateAttr("alt", img.Alt)
	im.CreateAttr("loading", "lazy")
	if img.Width != "" {
		im.CreateAttr("width", img.Width)
	}
	if img.Height != "" {
		im.CreateAttr("height", img.Height)
	}
	if !img.Caption.IsBlank() {
		caption = img.Caption
	}
	if !caption.IsBlank() {
		r.inline(r.el(fig, "figcaption", block+"__cap"), caption)
	}
}
