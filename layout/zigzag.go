package layout

import (
	"github.com/beevik/etree"

	"dbc/css"
	"dbc/document"
	"dbc/source"
)

type zigzagRow struct {
	image  *document.Image
	blocks []document.Block
}

// zigzagRows splits blocks at images. Blocks before the first image are
// returned separately and do not take part in row alternation.
func zigzagRows(blocks []document.Block) (intro []document.Block, rows []zigzagRow) {
	for _, b := range blocks {
		switch b.Kind {
		case document.BlockImage:
			rows = append(rows, zigzagRow{image: b.Image})
		case document.BlockLead, document.BlockButton:
		default:
			if len(rows) == 0 {
				intro = append(intro, b)
				continue
			}
			rows[len(rows)-1].blocks = append(rows[len(rows)-1].blocks, b)
		}
	}
	return intro, rows
}

// renderZigzag alternates image side row by row. Odd rows are reversed with
// a class, markup order is the same for every row.
func renderZigzag(r *renderer, s *document.Section, parent *etree.Element, vars *css.Rule) {
	r.leads(parent, s)

	vars.Set(r.v("zig-ratio"), s.Meta.Ratio)
	vars.Set(r.v("zig-img"), s.Meta.ImageFr)
	vars.Set(r.v("zig-content"), s.Meta.ContentFr)

	intro, rows := zigzagRows(s.Blocks)
	zz := r.div(parent, "zigzag")
	if len(intro) > 0 {
		r.content(r.div(zz, "zigzag__intro"), intro)
	}
	for i, row := range rows {
		classes := []string{"zigzag__row"}
		if i%2 == 1 {
			classes = append(classes, "is-reversed")
		}
		el := r.div(zz, classes...)
		var caption source.Line
		if i == 0 {
			caption = s.Meta.Caption
		}
		r.figure(r.div(el, "zigzag__col", "zigzag__imgcol"), row.image, caption, "zigzag")
		r.content(r.div(el, "zigzag__col", "zigzag__txtcol"), row.blocks)
	}
	r.actions(parent, s.BlocksOf(document.BlockButton), "actions", "center")
}
