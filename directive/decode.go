package directive

import (
	"regexp"
	"strconv"
	"strings"

	"dbc/normalize"
	"dbc/source"
)

type decoder func(d *Directive, arg source.Line)

var decoders = map[Kind]decoder{
	KindLayout:         decodeLayout,
	KindScope:          decodeScope,
	KindSeoTitle:       decodeValue(strings.TrimSpace),
	KindSeoDesc:        decodeValue(strings.TrimSpace),
	KindSeoKeys:        decodeKeywords,
	KindContainerAlign: decodeValue(oneOf("left", "center", "right")),
	KindContainerWidth: decodeWidths,
	KindSectionWidth:   decodeWidths,
	KindHeroWidth:      decodeWidths,

	KindBgSection:        decodeBackground,
	KindBgContainer:      decodeBackground,
	KindBg:               decodeBackground,
	KindCardBg:           decodeBackground,
	KindBtnBg:            decodeValue(colorOrGradient),
	KindOverlayContainer: decodeValue(normalize.Overlay),
	KindOverlay:          decodeValue(normalize.Overlay),

	KindMarginSection:    decodeValue(margin),
	KindMarginContainer:  decodeValue(margin),
	KindMargin:           decodeValue(margin),
	KindPaddingSection:   decodeValue(padding),
	KindPaddingContainer: decodeValue(padding),
	KindPadding:          decodeValue(padding),
	KindMarginTop:        decodeValue(normalize.PixelLength),
	KindMarginBottom:     decodeValue(normalize.PixelLength),

	KindRadiusSection:   decodeValue(normalize.RadiusShorthand),
	KindRadiusContainer: decodeValue(normalize.RadiusShorthand),
	KindRadiusImg:       decodeValue(normalize.RadiusShorthand),
	KindRadiusCard:      decodeValue(normalize.RadiusShorthand),
	KindRadiusBtn:       decodeValue(normalize.RadiusShorthand),
	KindRadius:          decodeValue(normalize.RadiusShorthand),

	KindBorderSection:   decodeValue(border),
	KindBorderContainer: decodeValue(border),
	KindBorderCard:      decodeValue(border),
	KindBorderBtn:       decodeValue(border),
	KindBorderFaqItem:   decodeValue(border),
	KindBorder:          decodeValue(border),

	KindCardTitleColor: decodeValue(color),
	KindCardColor:      decodeValue(color),
	KindTitleColor:     decodeValue(color),
	KindTextColor:      decodeValue(color),
	KindBtnColor:       decodeValue(color),
	KindLinkColor:      decodeValue(color),
	KindColor:          decodeValue(color),
	KindLinkWeight:     decodeValue(normalize.FontWeight),
	KindLinkUnderline:  decodeValue(underline),

	KindHeading:   decodeValue(headingLevel),
	KindMinHeight: decodeValue(minHeight),
	KindValign:    decodeValue(verticalAlign),
	KindAlign:     decodeValue(oneOf("left", "center", "right")),
	KindFaqMode:   decodeValue(faqMode),
	KindFaqIcon:   decodeValue(withDefault("❓")),
	KindImageSize: decodeValue(normalize.Ratio),

	KindTitle: decodeTitle,
	KindCols:  decodeCols,
	KindCta:   decodeButton,
	KindBtn:   decodeButton,
	KindImg:   decodeImage,
	KindIcon:  decodeIcon,
}

// decodeValue stores normalized argument under "value" key, nothing is stored
// when argument could not be normalized.
func decodeValue(norm func(string) string) decoder {
	return func(d *Directive, _ source.Line) {
		if v := norm(d.Raw); v != "" {
			d.Fields["value"] = v
		}
	}
}

func oneOf(values ...string) func(string) string {
	return func(v string) string {
		v = strings.ToLower(strings.TrimSpace(v))
		for _, allowed := range values {
			if v == allowed {
				return v
			}
		}
		return ""
	}
}

func withDefault(def string) func(string) string {
	return func(v string) string {
		if v = strings.TrimSpace(v); v == "" {
			return def
		}
		return v
	}
}

func color(v string) string {
	if v = strings.TrimSpace(v); normalize.IsColorLike(v) {
		return v
	}
	return ""
}

func colorOrGradient(v string) string {
	v = strings.TrimSpace(v)
	if normalize.IsColorLike(v) || (normalize.IsGradient(v) && normalize.SafeCSSValue(v)) {
		return v
	}
	return ""
}

func margin(v string) string  { return normalize.BoxShorthand(v, true) }
func padding(v string) string { return normalize.BoxShorthand(v, false) }

var digitsRx = regexp.MustCompile(`^\d+$`)

// border accepts "none", plain width in pixels or any safe CSS border
// shorthand.
func border(v string) string {
	v = strings.TrimSpace(v)
	switch strings.ToLower(v) {
	case "":
		return ""
	case "none", "off", "0":
		return "none"
	}
	if digitsRx.MatchString(v) {
		return v + "px solid currentColor"
	}
	if normalize.SafeCSSValue(v) {
		return v
	}
	return ""
}

func underline(v string) string {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "on", "yes", "true", "underline":
		return "on"
	case "off", "no", "false", "none":
		return "off"
	case "hover":
		return "hover"
	}
	return ""
}

func headingLevel(v string) string {
	for _, r := range v {
		if r >= '1' && r <= '6' {
			return string(r)
		}
	}
	return ""
}

var firstIntRx = regexp.MustCompile(`\d+`)

func minHeight(v string) string {
	if l := normalize.PixelLength(v); l != "" {
		return l
	}
	if n := firstIntRx.FindString(v); n != "" {
		return n + "px"
	}
	return ""
}

func verticalAlign(v string) string {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "top":
		return "top"
	case "center", "middle":
		return "center"
	case "bottom":
		return "bottom"
	}
	return ""
}

func faqMode(v string) string {
	v = strings.ToLower(strings.TrimSpace(v))
	switch {
	case strings.Contains(v, "accordion"), v == "on", v == "true", v == "yes":
		return "accordion"
	case strings.Contains(v, "static"), v == "off", v == "false", v == "no":
		return "static"
	}
	return ""
}

// decodeKeywords stores comma separated keyword list under "keys".
func decodeKeywords(d *Directive, _ source.Line) {
	var keys []string
	for k := range strings.SplitSeq(d.Raw, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	if len(keys) > 0 {
		d.Fields["keys"] = strings.Join(keys, ", ")
	}
}

// decodeBackground classifies argument into "color" and "image" fields. Pipe
// form "color|image" sets both, otherwise urls, gradients and colors are
// checked in that order.
func decodeBackground(d *Directive, _ source.Line) {
	v := strings.TrimSpace(d.Raw)
	if c, img, ok := strings.Cut(v, "|"); ok {
		if c = color(c); c != "" {
			d.Fields["color"] = c
		}
		if img = backgroundImage(img); img != "" {
			d.Fields["image"] = img
		}
		return
	}
	if img := backgroundImage(v); img != "" {
		d.Fields["image"] = img
		return
	}
	if c := color(v); c != "" {
		d.Fields["color"] = c
	}
}

func backgroundImage(v string) string {
	v = strings.TrimSpace(v)
	var img string
	switch {
	case normalize.IsURL(v):
		img = normalize.CSSURL(v)
	case normalize.IsGradient(v):
		img = v
	default:
		return ""
	}
	if !normalize.SafeCSSValue(img) {
		return ""
	}
	return img
}

// decodeTitle marks title hidden when argument is "-" or "none".
func decodeTitle(d *Directive, _ source.Line) {
	switch strings.ToLower(d.Raw) {
	case "-", "none":
		d.Fields["hidden"] = "true"
		d.Text = nil
	}
}

var numberRx = regexp.MustCompile(`\d+(?:\.\d+)?`)

// decodeCols extracts all numbers of the argument into "numbers", column
// count into "count" (first number, at least 1) and optional grid gap given
// after a pipe into "gap".
func decodeCols(d *Directive, _ source.Line) {
	spec, gap, _ := strings.Cut(d.Raw, "|")
	nums := numberRx.FindAllString(spec, -1)

	count := 1
	if len(nums) > 0 {
		whole, _, _ := strings.Cut(nums[0], ".")
		if n, err := strconv.Atoi(whole); err == nil && n > 0 {
			count = n
		}
	}
	d.Fields["count"] = strconv.Itoa(count)
	if len(nums) > 0 {
		d.Fields["numbers"] = strings.Join(nums, " ")
	}
	if g := normalize.PixelLength(gap); g != "" {
		d.Fields["gap"] = g
	}
}

func splitParts(d *Directive, arg source.Line) {
	for _, p := range arg.Split("|") {
		d.Parts = append(d.Parts, p.TrimSpace())
	}
}

// decodeButton handles "text|href|style", href defaults to "#" and style to
// "primary".
func decodeButton(d *Directive, arg source.Line) {
	splitParts(d, arg)
	d.Fields["text"] = d.Part(0).String()
	d.Fields["href"] = withDefault("#")(d.Part(1).String())
	style := oneOf("primary", "secondary", "outline")(d.Part(2).String())
	d.Fields["style"] = withDefault("primary")(style)
}

// decodeImage handles "src|alt|width|height".
func decodeImage(d *Directive, arg source.Line) {
	splitParts(d, arg)
	d.Fields["src"] = d.Part(0).String()
	d.Fields["alt"] = d.Part(1).String()
	d.Fields["width"] = dimension(d.Part(2).String())
	d.Fields["height"] = dimension(d.Part(3).String())
}

// decodeIcon handles "glyph|title|description|buttonText|buttonUrl", glyph
// defaults to a star.
func decodeIcon(d *Directive, arg source.Line) {
	splitParts(d, arg)
	d.Fields["glyph"] = withDefault("★")(d.Part(0).String())
}

func dimension(v string) string {
	v = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(v)), "px")
	if digitsRx.MatchString(v) {
		return v
	}
	return ""
}
