package layout

import (
	"github.com/beevik/etree"

	"dbc/css"
	"dbc/document"
)

// renderMedia places the first image of the section next to text column,
// other images stay in the text column in document order.
func renderMedia(r *renderer, s *document.Section, parent *etree.Element, vars *css.Rule) {
	r.media(s, parent, vars)
}

// renderText is media layout which gets image column only when section
// happens to hold an image.
func renderText(r *renderer, s *document.Section, parent *etree.Element, vars *css.Rule) {
	r.media(s, parent, vars)
}

func (r *renderer) media(s *document.Section, parent *etree.Element, vars *css.Rule) {
	var img *document.Image
	blocks := s.Blocks
	for i, b := range blocks {
		if b.Kind == document.BlockImage {
			img = b.Image
			blocks = append(blocks[:i:i], blocks[i+1:]...)
			break
		}
	}

	m := &s.Meta
	classes := []string{"media"}
	if m.Side == "right" {
		classes = append(classes, "is-right")
	}
	if m.Stacked {
		classes = append(classes, "is-stacked")
	}
	if img == nil {
		classes = append(classes, "is-text")
	}
	box := r.div(parent, classes...)

	vars.Set(r.v("media-ratio"), m.Ratio)
	vars.Set(r.v("media-img"), m.ImageFr)
	vars.Set(r.v("media-content"), m.ContentFr)

	if img != nil {
		r.figure(r.div(box, "media__col", "media__imgcol"), img, m.Caption, "media")
	}
	txt := r.div(box, "media__col", "media__txtcol")
	r.content(txt, blocks)
	r.actions(txt, s.BlocksOf(document.BlockButton), "actions")
}
