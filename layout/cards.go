package layout

import (
	"strconv"

	"github.com/beevik/etree"

	"dbc/css"
	"dbc/document"
)

const defaultCardsCols = 3

// without returns blocks except those of listed kinds.
func without(blocks []document.Block, kinds ...document.BlockKind) []document.Block {
	var res []document.Block
next:
	for _, b := range blocks {
		for _, k := range kinds {
			if b.Kind == k {
				continue next
			}
		}
		res = append(res, b)
	}
	return res
}

func (r *renderer) leads(parent *etree.Element, s *document.Section) {
	for _, b := range s.BlocksOf(document.BlockLead) {
		r.inline(r.el(parent, "p", "lead", "center", "text-muted"), b.Text)
	}
}

// renderCards lays cards out in a grid. A card shows either an image or an
// icon glyph, image cards default to 4/3 and icon cards to 5/2 ratio unless
// section overrides it.
func renderCards(r *renderer, s *document.Section, parent *etree.Element, vars *css.Rule) {
	r.leads(parent, s)
	r.content(parent, without(s.Blocks, document.BlockLead, document.BlockCard))

	cols := s.Meta.CardsCols
	if cols <= 0 {
		cols = defaultCardsCols
	}
	vars.Set(r.v("cards-cols"), strconv.Itoa(cols))
	vars.Set(r.v("cards-gap"), s.Meta.CardsGap)
	vars.Set(r.v("card-ratio"), s.Meta.CardRatio)

	grid := r.div(parent, "cards")
	for _, b := range s.BlocksOf(document.BlockCard) {
		r.card(grid, b.Card)
	}
	r.actions(parent, s.BlocksOf(document.BlockButton), "actions", "center")
}

func (r *renderer) card(grid *etree.Element, c *document.Card) {
	src := ""
	if c.Image != "" {
		src = safeImageURL(c.Image)
	}
	modifier := "is-icon"
	if src != "" {
		modifier = "is-image"
	}
	art := r.el(grid, "article", "card", modifier)
	if src != "" {
		img := r.el(art, "img", "card__media")
		img.CreateAttr("src", src)
		img.CreateAttr("alt", c.Title.String())
		img.CreateAttr("loading", "lazy")
	} else {
		icon := r.div(art, "card__icon")
		icon.CreateAttr("aria-hidden", "true")
		glyph := c.Icon
		if glyph == "" {
			glyph = "★"
		}
		icon.CreateText(glyph)
	}

	body := r.div(art, "card__body")
	if !c.Title.IsBlank() {
		r.inline(r.el(body, "h3", "card__title"), c.Title)
	}
	if !c.Description.IsBlank() {
		r.inline(r.el(body, "p", "card__text"), c.Description)
	}
	if !c.ButtonText.IsBlank() {
		r.button(r.div(body, "card__actions"), &document.Button{Text: c.ButtonText, URL: c.ButtonURL})
	}
}
