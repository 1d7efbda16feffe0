package document

import (
	"math"
	"strconv"
	"strings"

	"dbc/directive"
)

type reducer func(s *Section, d directive.Directive)

var reducers map[directive.Kind]reducer

func init() {
	reducers = map[directive.Kind]reducer{
		directive.KindContainerAlign: containerAlign,
		directive.KindContainerWidth: func(s *Section, d directive.Directive) {
			setIf(&s.Meta.ContainerMaxWidth, d.Field("max_width"))
			setIf(&s.Meta.ContainerPct, d.Field("pct"))
		},
		directive.KindSectionWidth: field("max_width", func(s *Section) *string { return &s.Meta.SectionMaxWidth }),
		directive.KindHeroWidth:    field("max_width", func(s *Section) *string { return &s.Meta.HeroWidth }),

		directive.KindBgSection:   background(func(s *Section) (*string, *string) { return &s.Meta.Section.BgColor, &s.Meta.Section.BgImage }),
		directive.KindBg:          background(func(s *Section) (*string, *string) { return &s.Meta.Section.BgColor, &s.Meta.Section.BgImage }),
		directive.KindBgContainer: background(func(s *Section) (*string, *string) { return &s.Meta.Container.BgColor, &s.Meta.Container.BgImage }),
		directive.KindCardBg:      background(func(s *Section) (*string, *string) { return &s.Meta.CardBgColor, &s.Meta.CardBgImage }),
		directive.KindBtnBg:       value(func(s *Section) *string { return &s.Meta.ButtonBg }),

		directive.KindOverlayContainer: value(func(s *Section) *string { return &s.Meta.Container.Overlay }),
		directive.KindOverlay:          value(func(s *Section) *string { return &s.Meta.Section.Overlay }),

		directive.KindMarginSection:    value(func(s *Section) *string { return &s.Meta.Section.Margin }),
		directive.KindMargin:           value(func(s *Section) *string { return &s.Meta.Section.Margin }),
		directive.KindMarginContainer:  value(func(s *Section) *string { return &s.Meta.Container.Margin }),
		directive.KindPaddingSection:   value(func(s *Section) *string { return &s.Meta.Section.Padding }),
		directive.KindPadding:          value(func(s *Section) *string { return &s.Meta.Section.Padding }),
		directive.KindPaddingContainer: value(func(s *Section) *string { return &s.Meta.Container.Padding }),
		directive.KindMarginTop:        value(func(s *Section) *string { return &s.Meta.MarginTop }),
		directive.KindMarginBottom:     value(func(s *Section) *string { return &s.Meta.MarginBottom }),

		directive.KindRadiusSection:   value(func(s *Section) *string { return &s.Meta.Section.Radius }),
		directive.KindRadius:          value(func(s *Section) *string { return &s.Meta.Section.Radius }),
		directive.KindRadiusContainer: value(func(s *Section) *string { return &s.Meta.Container.Radius }),
		directive.KindRadiusImg:       value(func(s *Section) *string { return &s.Meta.ImageRadius }),
		directive.KindRadiusCard:      value(func(s *Section) *string { return &s.Meta.CardRadius }),
		directive.KindRadiusBtn:       value(func(s *Section) *string { return &s.Meta.ButtonRadius }),

		directive.KindBorderSection:   value(func(s *Section) *string { return &s.Meta.Section.Border }),
		directive.KindBorder:          value(func(s *Section) *string { return &s.Meta.Section.Border }),
		directive.KindBorderContainer: value(func(s *Section) *string { return &s.Meta.Container.Border }),
		directive.KindBorderCard:      value(func(s *Section) *string { return &s.Meta.CardBorder }),
		directive.KindBorderBtn:       value(func(s *Section) *string { return &s.Meta.ButtonBorder }),
		directive.KindBorderFaqItem:   value(func(s *Section) *string { return &s.Meta.FAQItemBorder }),

		directive.KindCardTitleColor: value(func(s *Section) *string { return &s.Meta.CardTitleColor }),
		directive.KindCardColor:      value(func(s *Section) *string { return &s.Meta.CardColor }),
		directive.KindTitleColor:     value(func(s *Section) *string { return &s.Meta.TitleColor }),
		directive.KindTextColor:      value(func(s *Section) *string { return &s.Meta.TextColor }),
		directive.KindBtnColor:       value(func(s *Section) *string { return &s.Meta.ButtonColor }),
		directive.KindLinkColor:      value(func(s *Section) *string { return &s.Meta.LinkColor }),
		directive.KindLinkWeight:     value(func(s *Section) *string { return &s.Meta.LinkWeight }),
		directive.KindLinkUnderline:  value(func(s *Section) *string { return &s.Meta.LinkUnderline }),
		directive.KindColor: func(s *Section, d directive.Directive) {
			setIf(&s.Meta.TitleColor, d.Field("value"))
			setIf(&s.Meta.TextColor, d.Field("value"))
		},

		directive.KindHeading: func(s *Section, d directive.Directive) {
			if n := atoi(d.Field("value")); n > 0 {
				s.Meta.HeadingLevel = n
			}
		},
		directive.KindMinHeight: value(func(s *Section) *string { return &s.Meta.MinHeight }),
		directive.KindValign:    value(func(s *Section) *string { return &s.Meta.VAlign }),
		directive.KindAlign:     value(func(s *Section) *string { return &s.Meta.Align }),
		directive.KindFaqMode:   value(func(s *Section) *string { return &s.Meta.FAQMode }),
		directive.KindFaqIcon:   value(func(s *Section) *string { return &s.Meta.FAQIcon }),
		directive.KindImageSize: func(s *Section, d directive.Directive) {
			if s.Type == LayoutCards {
				setIf(&s.Meta.CardRatio, d.Field("value"))
				return
			}
			setIf(&s.Meta.Ratio, d.Field("value"))
		},

		directive.KindDescTop: func(s *Section, d directive.Directive) {
			if !d.Text.IsBlank() {
				s.Meta.DescTop = append(s.Meta.DescTop, d.Text)
			}
		},
		directive.KindDescBottom: func(s *Section, d directive.Directive) {
			if !d.Text.IsBlank() {
				s.Meta.DescBottom = append(s.Meta.DescBottom, d.Text)
			}
		},
		directive.KindTitle: func(s *Section, d directive.Directive) {
			if d.Field("hidden") != "" {
				s.Title, s.TitleHidden = nil, true
				return
			}
			s.Title, s.TitleHidden = d.Text, false
		},
		directive.KindLead: textBlock(BlockLead),
		directive.KindQ:    textBlock(BlockFAQQuestion),
		directive.KindA:    textBlock(BlockFAQAnswer),
		directive.KindCap:  caption,
		directive.KindCols: columns,
		directive.KindCta:  button,
		directive.KindBtn:  button,
		directive.KindImg:  image,
		directive.KindIcon: icon,
	}
}

func setIf(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func atoi(v string) int {
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}

func field(name string, target func(*Section) *string) reducer {
	return func(s *Section, d directive.Directive) {
		setIf(target(s), d.Field(name))
	}
}

func value(target func(*Section) *string) reducer {
	return field("value", target)
}

func background(target func(*Section) (*string, *string)) reducer {
	return func(s *Section, d directive.Directive) {
		c, img := target(s)
		setIf(c, d.Field("color"))
		setIf(img, d.Field("image"))
	}
}

func textBlock(kind BlockKind) reducer {
	return func(s *Section, d directive.Directive) {
		if d.Text.IsBlank() {
			return
		}
		s.Blocks = append(s.Blocks, Block{Kind: kind, Text: d.Text})
	}
}

func containerAlign(s *Section, d directive.Directive) {
	switch d.Field("value") {
	case "center":
		s.Meta.Container.Margin = "0px auto 0px auto"
	case "right":
		s.Meta.Container.Margin = "0px 0px 0px auto"
	case "left":
		s.Meta.Container.Margin = "0px"
	}
}

// caption in zigzag sections belongs to the most recent image, otherwise it
// captions the section figure.
func caption(s *Section, d directive.Directive) {
	if d.Text.IsBlank() {
		return
	}
	if s.Type == LayoutZigzag {
		for i := len(s.Blocks) - 1; i >= 0; i-- {
			if s.Blocks[i].Kind == BlockImage {
				s.Blocks[i].Image.Caption = d.Text
				return
			}
		}
	}
	s.Meta.Caption = d.Text
}

// columns sets grid column count for cards and image/content fraction pair
// for the rest, fractions summing to at most 1 are rescaled to percents.
func columns(s *Section, d directive.Directive) {
	if s.Type == LayoutCards {
		if n := atoi(d.Field("count")); n > 0 {
			s.Meta.CardsCols = n
		}
		setIf(&s.Meta.CardsGap, d.Field("gap"))
		return
	}
	nums := strings.Fields(d.Field("numbers"))
	if len(nums) < 2 {
		return
	}
	a, errA := strconv.ParseFloat(nums[0], 64)
	b, errB := strconv.ParseFloat(nums[1], 64)
	if errA != nil || errB != nil || a+b <= 0 {
		return
	}
	if a+b <= 1 {
		a, b = a*100, b*100
	}
	s.Meta.ImageFr = fraction(a)
	s.Meta.ContentFr = fraction(b)
}

func fraction(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64) + "fr"
}

func button(s *Section, d directive.Directive) {
	s.Blocks = append(s.Blocks, Block{Kind: BlockButton, Button: &Button{
		Text:  d.Part(0),
		URL:   d.Field("href"),
		Style: d.Field("style"),
	}})
}

// image makes card of "src|title|description|buttonText|buttonUrl" in cards
// sections and plain image of "src|alt|width|height" elsewhere.
func image(s *Section, d directive.Directive) {
	src := d.Field("src")
	if src == "" {
		return
	}
	if s.Type == LayoutCards {
		s.Blocks = append(s.Blocks, Block{Kind: BlockCard, Card: cardOf(d, src, "")})
		return
	}
	s.Blocks = append(s.Blocks, Block{Kind: BlockImage, Image: &Image{
		Src:    src,
		Alt:    d.Field("alt"),
		Width:  d.Field("width"),
		Height: d.Field("height"),
	}})
}

func icon(s *Section, d directive.Directive) {
	s.Blocks = append(s.Blocks, Block{Kind: BlockCard, Card: cardOf(d, "", d.Field("glyph"))})
}

func cardOf(d directive.Directive, img, glyph string) *Card {
	c := &Card{
		Image:       img,
		Icon:        glyph,
		Title:       d.Part(1),
		Description: d.Part(2),
		ButtonText:  d.Part(3),
		ButtonURL:   d.Part(4).String(),
	}
	if !c.ButtonText.IsBlank() && c.ButtonURL == "" {
		c.ButtonURL = "#"
	}
	return c
}
