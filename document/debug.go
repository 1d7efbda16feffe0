package document

import (
	"strconv"
	"strings"

	"dbc/source"
	"dbc/utils/debug"
)

// String returns readable tree of the segmented document. It exists solely
// for debug reports and manual inspection.
func (d *Document) String() string {
	if d == nil {
		return "<nil Document>"
	}
	tw := debug.NewTreeWriter()

	tw.Line(0, "Document[%s] sections[%d]", d.ID, len(d.Sections))
	sc := &d.Scope
	tw.Fields(1, "scope",
		"container_maxw", sc.ContainerMaxWidth,
		"container_pct", sc.ContainerPct,
		"section_maxw", sc.SectionMaxWidth,
	)
	tw.Fields(1, "seo",
		"title", sc.SEOTitle,
		"description", sc.SEODescription.String(),
		"keywords", strings.Join(sc.SEOKeywords, ", "),
	)

	for i := range d.Sections {
		dumpSection(tw, &d.Sections[i])
	}
	return tw.String()
}

func dumpSection(tw *debug.TreeWriter, s *Section) {
	tw.Line(1, "Section[%d] id[%s] type[%s] blocks[%d]", s.Index, s.ID, s.Type, len(s.Blocks))
	if s.TitleHidden {
		tw.Line(2, "title: hidden")
	} else if !s.Title.IsBlank() {
		tw.TextBlock(2, "title", s.Title.String())
	}

	m := &s.Meta
	tw.Fields(2, "layout",
		"side", m.Side,
		"stacked", flag(m.Stacked),
		"ratio", m.Ratio,
		"image_fr", m.ImageFr,
		"content_fr", m.ContentFr,
		"split", flag(m.Split),
		"align", m.Align,
		"valign", m.VAlign,
		"heading", number(m.HeadingLevel),
		"min_height", m.MinHeight,
		"hero_width", m.HeroWidth,
		"cols", number(m.CardsCols),
		"card_ratio", m.CardRatio,
		"faq_mode", m.FAQMode,
		"faq_icon", m.FAQIcon,
	)
	dumpSurface(tw, "section", &m.Section)
	dumpSurface(tw, "container", &m.Container)
	tw.Fields(2, "colors",
		"title", m.TitleColor,
		"text", m.TextColor,
		"button", m.ButtonColor,
		"link", m.LinkColor,
		"card", m.CardColor,
		"card_title", m.CardTitleColor,
		"card_bg", m.CardBgColor,
		"button_bg", m.ButtonBg,
	)
	for _, l := range m.DescTop {
		tw.TextBlock(2, "desc_top", l.String())
	}

	for _, b := range s.Blocks {
		dumpBlock(tw, &b)
	}

	for _, l := range m.DescBottom {
		tw.TextBlock(2, "desc_bottom", l.String())
	}
}

func dumpSurface(tw *debug.TreeWriter, label string, sf *Surface) {
	tw.Fields(2, label,
		"bg", sf.BgColor,
		"bg_image", sf.BgImage,
		"overlay", sf.Overlay,
		"margin", sf.Margin,
		"padding", sf.Padding,
		"radius", sf.Radius,
		"border", sf.Border,
	)
}

func dumpBlock(tw *debug.TreeWriter, b *Block) {
	switch b.Kind {
	case BlockHeading:
		tw.TextBlock(2, "h"+strconv.Itoa(b.Level), b.Text.String())
	case BlockList:
		tw.Line(2, "list: %d", len(b.Items))
		for _, it := range b.Items {
			tw.TextBlock(3+it.Depth, "item", it.Text.String())
		}
	case BlockImage:
		tw.Fields(2, "image", "src", b.Image.Src, "alt", b.Image.Alt, "caption", b.Image.Caption.String())
	case BlockButton:
		tw.Fields(2, "button", "text", b.Button.Text.String(), "url", b.Button.URL, "style", b.Button.Style)
	case BlockCard:
		tw.Fields(2, "card",
			"image", b.Card.Image,
			"icon", b.Card.Icon,
			"title", b.Card.Title.String(),
			"description", b.Card.Description.String(),
			"button", b.Card.ButtonText.String(),
			"url", b.Card.ButtonURL,
		)
	default:
		tw.TextBlock(2, string(b.Kind), linkedText(b.Text))
	}
}

// linkedText marks linked spans so dump shows where links are.
func linkedText(l source.Line) string {
	var sb strings.Builder
	for _, s := range l {
		if s.URL == "" {
			sb.WriteString(s.Text)
			continue
		}
		sb.WriteString("[" + s.Text + "](" + s.URL + ")")
	}
	return sb.String()
}

func flag(v bool) string {
	if v {
		return "yes"
	}
	return ""
}

func number(v int) string {
	if v == 0 {
		return ""
	}
	return strconv.Itoa(v)
}
