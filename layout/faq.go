package layout

import (
	"github.com/beevik/etree"

	"dbc/css"
	"dbc/document"
	"dbc/source"
)

type faqPair struct {
	question source.Line
	answers  []source.Line
}

// faqPairs collects questions with answers following them. Question without
// an immediately following answer is dropped, answers without question are
// ignored.
func faqPairs(blocks []document.Block) []faqPair {
	var (
		pairs   []faqPair
		current *faqPair
	)
	flush := func() {
		if current != nil && len(current.answers) > 0 {
			pairs = append(pairs, *current)
		}
		current = nil
	}
	for _, b := range blocks {
		switch b.Kind {
		case document.BlockFAQQuestion:
			flush()
			current = &faqPair{question: b.Text}
		case document.BlockFAQAnswer:
			if current != nil {
				current.answers = append(current.answers, b.Text)
			}
		default:
			// any other content breaks the pairing
			flush()
		}
	}
	flush()
	return pairs
}

// renderFAQ renders question/answer pairs either as static articles or as
// collapsible details elements.
func renderFAQ(r *renderer, s *document.Section, parent *etree.Element, _ *css.Rule) {
	r.leads(parent, s)
	r.content(parent, without(s.Blocks, document.BlockLead, document.BlockFAQQuestion, document.BlockFAQAnswer))

	accordion := s.Meta.FAQMode == "accordion"
	icon := s.Meta.FAQIcon

	classes := []string{"faq"}
	if accordion {
		classes = append(classes, "is-accordion")
	}
	list := r.div(parent, classes...)
	for _, p := range faqPairs(without(s.Blocks, document.BlockLead, document.BlockButton)) {
		var item, q *etree.Element
		if accordion {
			item = r.el(list, "details", "faq__item")
			q = r.el(item, "summary", "faq__q")
		} else {
			item = r.el(list, "article", "faq__item")
			q = r.div(item, "faq__q")
		}
		if icon != "" {
			ic := r.el(q, "span", "faq__icon")
			ic.CreateAttr("aria-hidden", "true")
			ic.CreateText(icon)
		}
		r.inline(r.el(q, "h3", "faq__title"), p.question)
		if accordion {
			r.el(q, "span", "faq__chev").CreateAttr("aria-hidden", "true")
		}

		a := r.div(item, "faq__a")
		for _, ans := range p.answers {
			r.inline(r.el(a, "p", "text-muted"), ans)
		}
	}
	r.actions(parent, s.BlocksOf(document.BlockButton), "faq__actions", "center")
}
