package directive

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"dbc/normalize"
	"dbc/source"
)

// LAYOUT and SCOPE arguments are free word lists ("Cards 3col 4/5", "container
// width 1200 | 92%"), tokenized by a small grammar and interpreted word by
// word.
var (
	argsLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `\s+`},
		{Name: "Ratio", Pattern: `\d+(?:\.\d+)?\s*[/:]\s*\d+(?:\.\d+)?`},
		{Name: "Cols", Pattern: `\d+\s*-?\s*col(?:umn)?s?`},
		{Name: "Length", Pattern: `\d+(?:\.\d+)?(?:px|rem|em|%|vh|vw|ch|ex)?`},
		{Name: "Word", Pattern: `[\p{L}_][\p{L}\d_-]*`},
		{Name: "Punct", Pattern: `[^\s\p{L}\d]`},
	})

	argsParser = participle.MustBuild[argList](
		participle.Lexer(argsLexer),
		participle.Elide("Whitespace"),
	)
)

type argList struct {
	Items []*argItem `parser:"@@*"`
}

type argItem struct {
	Ratio  *string `parser:"  @Ratio"`
	Cols   *string `parser:"| @Cols"`
	Length *string `parser:"| @Length"`
	Word   *string `parser:"| @Word"`
	Punct  *string `parser:"| @Punct"`
}

func parseArgs(s string) []*argItem {
	args, err := argsParser.ParseString("", strings.ToLower(s))
	if err != nil {
		return nil
	}
	return args.Items
}

var layoutWords = map[string]string{
	"zigzag":      "zigzag",
	"alternate":   "zigzag",
	"alternating": "zigzag",
	"faq":         "faq",
	"banner":      "banner",
	"hero":        "banner",
	"media":       "media",
	"cards":       "cards",
	"card":        "cards",
	"grid":        "cards",
	"text":        "text",
}

// decodeLayout fills "type" with the first recognized layout word and
// records modifiers: "side" (left, center, right), "split", "stacked",
// "faq_mode", "cols" and "ratio".
func decodeLayout(d *Directive, _ source.Line) {
	for _, it := range parseArgs(d.Raw) {
		switch {
		case it.Word != nil:
			w := *it.Word
			if t, ok := layoutWords[w]; ok {
				if d.Fields["type"] == "" {
					d.Fields["type"] = t
				}
				continue
			}
			switch w {
			case "left", "right", "center":
				d.Fields["side"] = w
			case "split":
				d.Fields["split"] = "true"
			case "stacked", "stack":
				d.Fields["stacked"] = "true"
			case "accordion", "static":
				d.Fields["faq_mode"] = w
			}
		case it.Cols != nil:
			d.Fields["cols"] = strings.TrimLeft(firstIntRx.FindString(*it.Cols), "0")
		case it.Ratio != nil:
			if r := normalize.Ratio(*it.Ratio); r != "" {
				d.Fields["ratio"] = r
			}
		case it.Length != nil:
			if d.Fields["cols"] == "" && digitsRx.MatchString(*it.Length) {
				d.Fields["cols"] = strings.TrimLeft(*it.Length, "0")
			}
		}
	}
}

// decodeScope recognizes "container width <len>|<pct>" and "section width
// <len>", setting "target" and "max_width" or "pct" fields.
func decodeScope(d *Directive, _ source.Line) {
	var target string
	items := parseArgs(d.Raw)
	for _, it := range items {
		if it.Word == nil {
			continue
		}
		if *it.Word == "container" || *it.Word == "section" {
			target = *it.Word
			break
		}
	}
	if target == "" {
		return
	}
	d.Fields["target"] = target
	widths(d, items, target == "container")
}

// decodeWidths handles CONTAINER_WIDTH, SECTION_WIDTH and HERO_WIDTH
// arguments, percentages are only meaningful for containers.
func decodeWidths(d *Directive, _ source.Line) {
	widths(d, parseArgs(d.Raw), d.Kind == KindContainerWidth)
}

func widths(d *Directive, items []*argItem, allowPct bool) {
	for _, it := range items {
		if it.Length == nil {
			continue
		}
		l := normalize.PixelLength(*it.Length)
		switch {
		case l == "":
		case strings.HasSuffix(l, "%"):
			if allowPct {
				d.Fields["pct"] = l
			}
		default:
			d.Fields["max_width"] = l
		}
	}
}
