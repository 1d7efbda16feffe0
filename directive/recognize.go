// Package directive recognizes and decodes layout and style directives
// embedded in source text.
package directive

import (
	"regexp"
	"strings"

	"dbc/source"
)

// Directive is a single decoded instruction. Raw is argument text following
// keyword separator, Fields holds decoded values (absent when argument could
// not be normalized), Text keeps argument with its hyperlinks for text
// bearing kinds and Parts holds pipe separated fields of it.
type Directive struct {
	Kind   Kind
	Raw    string
	Fields map[string]string
	Text   source.Line
	Parts  []source.Line
}

// Field returns decoded field value or empty string.
func (d Directive) Field(name string) string {
	return d.Fields[name]
}

// Part returns i-th pipe separated field of the argument, empty if missing.
func (d Directive) Part(i int) source.Line {
	if i < len(d.Parts) {
		return d.Parts[i]
	}
	return nil
}

type pattern struct {
	kind Kind
	rx   *regexp.Regexp
}

// keyword separator: ':' '.' '-' en dash, em dash, ')' or ']'
const separator = `\s*[:.\-\x{2013}\x{2014})\]]\s*`

// Keywords in priority order, '_' inside keyword stands for optional white
// space, underscore or dash between words.
var keywords = []struct {
	kind Kind
	expr string
}{
	{KindLayout, `LAYOUT`},
	{KindScope, `SCOPE|GLOBAL`},
	{KindSeoTitle, `(?:META|SEO)_TITLE`},
	{KindSeoDesc, `(?:META|SEO)_(?:DESCRIPTION|DESC)`},
	{KindSeoKeys, `(?:META|SEO)_KEYS|(?:META_|SEO_)?KEYWORDS?`},
	{KindContainerAlign, `CONTAINER_ALIGN|ALIGN_CONTAINER`},
	{KindContainerWidth, `CONTAINER_WIDTH`},
	{KindSectionWidth, `SECTION_WIDTH`},
	{KindHeroWidth, `(?:HERO|BANNER)_WIDTH`},
	{KindBgSection, `(?:BG|BACKGROUND)_SECTION`},
	{KindBgContainer, `(?:BG|BACKGROUND)_CONTAINER`},
	{KindOverlayContainer, `(?:BG_)?OVERLAY_CONTAINER`},
	{KindOverlay, `(?:BG_)?OVERLAY(?:_SECTION)?`},
	{KindCardBg, `CARDS?_(?:BG|BACKGROUND)`},
	{KindBtnBg, `(?:BTN|BUTTON)_(?:BG|BACKGROUND|FILL)`},
	{KindBg, `(?:BG|BACKGROUND)(?:_(?:IMG|IMAGE))?`},
	{KindMarginSection, `MARGIN_SECTION`},
	{KindMarginContainer, `MARGIN_CONTAINER`},
	{KindPaddingSection, `(?:PADDING|PAD)_SECTION`},
	{KindPaddingContainer, `(?:PADDING|PAD)_CONTAINER`},
	{KindMarginTop, `MARGIN_TOP|MT`},
	{KindMarginBottom, `MARGIN_BOTTOM|MB`},
	{KindMargin, `MARGIN`},
	{KindPadding, `PADDING|PAD`},
	{KindRadiusSection, `(?:BORDER_)?RADIUS_SECTION`},
	{KindRadiusContainer, `(?:BORDER_)?RADIUS_CONTAINER`},
	{KindRadiusImg, `(?:IMG|IMAGE)_(?:RADIUS|ROUND|BORDER_RADIUS)|(?:BORDER_)?RADIUS_(?:IMG|IMAGE)`},
	{KindRadiusCard, `CARDS?_(?:RADIUS|ROUND)|(?:BORDER_)?RADIUS_CARDS?`},
	{KindRadiusBtn, `(?:BTN|BUTTON)_(?:RADIUS|ROUND)|(?:BORDER_)?RADIUS_(?:BTN|BUTTON)`},
	{KindRadius, `(?:BORDER_)?RADIUS`},
	{KindBorderSection, `(?:BORDER|OUTLINE)_SECTION`},
	{KindBorderContainer, `(?:BORDER|OUTLINE)_CONTAINER`},
	{KindBorderCard, `CARDS?_(?:BORDER|OUTLINE)|(?:BORDER|OUTLINE)_CARDS?`},
	{KindBorderBtn, `(?:BTN|BUTTON)_(?:BORDER|OUTLINE)|(?:BORDER|OUTLINE)_(?:BTN|BUTTON)`},
	{KindBorderFaqItem, `FAQ_ITEM_BORDER|FAQ_BORDER|BORDER_FAQ(?:_ITEM)?`},
	{KindBorder, `BORDER|OUTLINE`},
	{KindCardTitleColor, `CARDS?_(?:TITLE|HEADING)_COLOR`},
	{KindCardColor, `CARDS?_(?:TEXT_)?COLOR`},
	{KindTitleColor, `(?:TITLE|HEADING)_COLOR`},
	{KindTextColor, `(?:TEXT|BODY)_COLOR`},
	{KindBtnColor, `(?:BTN|BUTTON)_(?:TEXT_)?COLOR`},
	{KindLinkColor, `LINK_COLOR`},
	{KindLinkWeight, `LINK_(?:FONT_)?WEIGHT`},
	{KindLinkUnderline, `LINK_UNDERLINE`},
	{KindColor, `COLOR`},
	{KindHeading, `HEADING|TITLE_LEVEL|H_?LEVEL`},
	{KindMinHeight, `MIN_HEIGHT|HEIGHT`},
	{KindValign, `VALIGN|VERTICAL_ALIGN`},
	{KindAlign, `ALIGN|TEXT_ALIGN`},
	{KindFaqMode, `FAQ_MODE|ACCORDION|TOGGLE`},
	{KindFaqIcon, `FAQ_ICON|Q_ICON`},
	{KindImageSize, `IMAGE_SIZE(?:\s*\(\s*RATIO\s*\))?|ASPECT(?:_RATIO)?|RATIO`},
	{KindDescBottom, `(?:DESCRIPTION|DESC|NOTE|SUMMARY)_(?:BOTTOM|DOWN|BELOW)`},
	{KindDescTop, `(?:DESCRIPTION|DESC|NOTE|SUMMARY)(?:_(?:TOP|UP|ABOVE))?`},
	{KindTitle, `TITLE`},
	{KindLead, `LEAD|LEDE|INTRO`},
	{KindCap, `CAPTION|CAP`},
	{KindCols, `COLS|WIDTHS|GRID`},
	{KindCta, `CTA`},
	{KindBtn, `BTN|BUTTON`},
	{KindImg, `IMG|IMAGE|PHOTO`},
	{KindIcon, `ICON`},
	{KindQ, `Q|QUESTION|ВОПРОС`},
	{KindA, `A|ANSWER|ОТВЕТ`},
}

var patterns = compilePatterns()

func compilePatterns() []pattern {
	res := make([]pattern, 0, len(keywords))
	for _, kw := range keywords {
		expr := strings.ReplaceAll(kw.expr, "_", `[\s_-]*`)
		res = append(res, pattern{
			kind: kw.kind,
			rx:   regexp.MustCompile(`(?i)^\s*(?:` + expr + `)` + separator),
		})
	}
	return res
}

// Recognize matches prose directive line such as "TITLE: Our services" or
// "RADIUS CONTAINER - 12". Patterns are tried in priority order and the first
// match wins. Returns false when line is not a directive.
func Recognize(line source.Line) (Directive, bool) {
	plain := line.String()
	for _, p := range patterns {
		loc := p.rx.FindStringIndex(plain)
		if loc == nil {
			continue
		}
		arg := line.Slice(loc[1], len(plain)).TrimSpace()
		d := Directive{
			Kind:   p.kind,
			Raw:    arg.String(),
			Fields: make(map[string]string),
		}
		if p.kind.CarriesText() {
			d.Text = arg
		}
		if dec, ok := decoders[p.kind]; ok {
			dec(&d, arg)
		}
		return d, true
	}
	return Directive{}, false
}

var bracketRx = regexp.MustCompile(`\[([A-Z][A-Z0-9_]*)(?::([^\]]*))?\]`)

// Scan extracts all directives from line. Bracket tokens "[NAME]" and
// "[NAME:value]" are decoded exactly like prose directives of the same name,
// unknown names are dropped. Text left after removing bracket tokens is
// either a prose directive or returned as content. When line holds no
// bracket tokens at all it is recognized as a prose directive.
func Scan(line source.Line) ([]Directive, source.Line) {
	plain := line.String()
	matches := bracketRx.FindAllStringSubmatchIndex(plain, -1)
	if len(matches) == 0 {
		if d, ok := Recognize(line); ok {
			return []Directive{d}, nil
		}
		return nil, line
	}

	var (
		found []Directive
		rest  source.Line
		prev  int
	)
	for _, m := range matches {
		for _, s := range line.Slice(prev, m[0]) {
			rest = rest.Append(s)
		}
		prev = m[1]

		token := source.Plain(plain[m[2]:m[3]] + ":")
		if m[4] >= 0 {
			for _, s := range line.Slice(m[4], m[5]) {
				token = token.Append(s)
			}
		}
		if d, ok := Recognize(token); ok {
			found = append(found, d)
		}
	}
	for _, s := range line.Slice(prev, len(plain)) {
		rest = rest.Append(s)
	}

	rest = rest.TrimSpace()
	if rest.IsBlank() {
		return found, nil
	}
	if d, ok := Recognize(rest); ok {
		return append(found, d), nil
	}
	return found, rest
}
