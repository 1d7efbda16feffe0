// Package document folds source token stream into ordered typed sections
// with accumulated style metadata.
package document

import (
	"dbc/source"
)

// LayoutType selects renderer for a section.
type LayoutType string

const (
	LayoutMedia  LayoutType = "media"
	LayoutBanner LayoutType = "banner"
	LayoutCards  LayoutType = "cards"
	LayoutFAQ    LayoutType = "faq"
	LayoutZigzag LayoutType = "zigzag"
	LayoutText   LayoutType = "text"
)

// BlockKind distinguishes content blocks.
type BlockKind string

const (
	BlockHeading     BlockKind = "heading"
	BlockParagraph   BlockKind = "paragraph"
	BlockList        BlockKind = "list"
	BlockImage       BlockKind = "image"
	BlockButton      BlockKind = "button"
	BlockCard        BlockKind = "card"
	BlockFAQQuestion BlockKind = "faq_question"
	BlockFAQAnswer   BlockKind = "faq_answer"
	BlockLead        BlockKind = "lead"
)

type Image struct {
	Src     string
	Alt     string
	Width   string
	Height  string
	Caption source.Line
}

type Button struct {
	Text  source.Line
	URL   string
	Style string
}

// Card carries either Image or Icon, never both.
type Card struct {
	Image       string
	Icon        string
	Title       source.Line
	Description source.Line
	ButtonText  source.Line
	ButtonURL   string
}

// Block is a single piece of section content. Which fields are set depends
// on Kind: headings have Level and Text, paragraphs, leads and FAQ entries
// have Text, lists have Items, images, buttons and cards their records.
type Block struct {
	Kind   BlockKind
	Level  int
	Text   source.Line
	Items  []source.ListItem
	Image  *Image
	Button *Button
	Card   *Card
}

// Surface describes box of either section or its container.
type Surface struct {
	BgColor string
	BgImage string
	Overlay string
	Margin  string
	Padding string
	Radius  string
	Border  string
}

// Meta is resolved style facts of a section. Empty values mean "not set" and
// leave the stylesheet defaults in effect.
type Meta struct {
	// media and zigzag
	Side      string // left or right
	Stacked   bool
	Ratio     string
	Caption   source.Line
	ImageFr   string
	ContentFr string

	// banner
	Split        bool
	Align        string // left, center or right
	VAlign       string // top, center or bottom
	HeadingLevel int
	MinHeight    string
	HeroWidth    string

	// cards
	CardsCols int
	CardRatio string
	CardsGap  string

	TitleColor    string
	TextColor     string
	ButtonColor   string
	LinkColor     string
	LinkWeight    string
	LinkUnderline string // on, off or hover

	Section   Surface
	Container Surface

	ImageRadius  string
	CardRadius   string
	ButtonRadius string

	CardColor      string
	CardTitleColor string
	CardBgColor    string
	CardBgImage    string
	CardBorder     string

	ButtonBg     string
	ButtonBorder string

	FAQItemBorder string
	FAQMode       string // static or accordion
	FAQIcon       string

	MarginTop    string
	MarginBottom string

	ContainerMaxWidth string
	ContainerPct      string
	SectionMaxWidth   string

	DescTop    []source.Line
	DescBottom []source.Line
}

// Section is a contiguous run of content sharing one layout.
type Section struct {
	ID          string
	Index       int
	Type        LayoutType
	Title       source.Line
	TitleHidden bool
	Blocks      []Block
	Meta        Meta
}

// BlocksOf returns section blocks of the specified kinds in document order.
func (s *Section) BlocksOf(kinds ...BlockKind) []Block {
	var res []Block
	for _, b := range s.Blocks {
		for _, k := range kinds {
			if b.Kind == k {
				res = append(res, b)
				break
			}
		}
	}
	return res
}

// Scope holds document wide settings.
type Scope struct {
	ContainerMaxWidth string
	ContainerPct      string
	SectionMaxWidth   string

	SEOTitle       string
	SEODescription source.Line
	SEOKeywords    []string
}

// HasSEO reports whether any SEO field is set.
func (s *Scope) HasSEO() bool {
	return s.SEOTitle != "" || !s.SEODescription.IsBlank() || len(s.SEOKeywords) > 0
}

// Document is the result of segmentation.
type Document struct {
	ID       string
	Scope    Scope
	Sections []Section
}
