package layout

import (
	"github.com/beevik/etree"

	"dbc/css"
	"dbc/document"
	"dbc/source"
)

// renderBanner renders hero block. Title comes from section title or its
// first heading, first paragraph becomes description. In split mode buttons
// are moved into their own column.
func renderBanner(r *renderer, s *document.Section, parent *etree.Element, vars *css.Rule) {
	m := &s.Meta
	classes := []string{"hero"}
	if m.Split {
		classes = append(classes, "is-split")
	}
	align := m.Align
	if align == "" {
		align = "left"
	}
	classes = append(classes, "is-"+align)
	switch m.VAlign {
	case "top", "center", "bottom":
		classes = append(classes, "is-v"+m.VAlign)
	}
	vars.Set(r.v("hero-minh"), m.MinHeight)
	vars.Set(r.v("hero-maxw"), m.HeroWidth)

	hero := r.div(parent, classes...)
	inner := r.div(hero, "hero__inner")
	text := r.div(inner, "hero__text")

	blocks := s.Blocks
	title := s.Title
	if title.IsBlank() {
		for i, b := range blocks {
			if b.Kind == document.BlockHeading {
				title = b.Text
				blocks = append(blocks[:i:i], blocks[i+1:]...)
				break
			}
		}
	}
	if !s.TitleHidden && !title.IsBlank() {
		level := m.HeadingLevel
		if level <= 0 {
			level = 1
		}
		r.inline(r.el(text, headingTag(level, 1), "hero__title"), title)
	}

	var desc source.Line
	for i, b := range blocks {
		if b.Kind == document.BlockParagraph {
			desc = b.Text
			blocks = append(blocks[:i:i], blocks[i+1:]...)
			break
		}
	}
	if !desc.IsBlank() {
		r.inline(r.el(text, "p", "hero__desc"), desc)
	}
	for _, b := range s.BlocksOf(document.BlockLead) {
		r.inline(r.el(text, "p", "hero__lead"), b.Text)
	}
	r.content(text, without(blocks, document.BlockLead))

	buttons := s.BlocksOf(document.BlockButton)
	if m.Split {
		r.actions(inner, buttons, "hero__cta")
		return
	}
	r.actions(text, buttons, "hero__actions")
}
