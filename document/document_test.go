package document

import (
	"reflect"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"dbc/source"
)

func segmentText(t *testing.T, text string) Document {
	t.Helper()
	tokens, err := source.ReadText(strings.NewReader(text))
	if err != nil {
		t.Fatalf("ReadText() error = %v", err)
	}
	return Segment(tokens, Options{Name: "test", Log: zaptest.NewLogger(t)})
}

func TestSegmentCards(t *testing.T) {
	doc := segmentText(t, "[LAYOUT:cards]\n[COLS:3]\n[BG:#f0f0f0]\n")
	if len(doc.Sections) != 1 {
		t.Fatalf("got %d sections, want 1", len(doc.Sections))
	}
	s := doc.Sections[0]
	if s.Type != LayoutCards {
		t.Errorf("Type = %q, want cards", s.Type)
	}
	if s.Meta.CardsCols != 3 {
		t.Errorf("CardsCols = %d, want 3", s.Meta.CardsCols)
	}
	if s.Meta.Section.BgColor != "#f0f0f0" {
		t.Errorf("BgColor = %q, want #f0f0f0", s.Meta.Section.BgColor)
	}
	if len(s.Blocks) != 0 {
		t.Errorf("Blocks = %+v, want none", s.Blocks)
	}
}

func TestSegmentProseKept(t *testing.T) {
	const prose = "We build modern websites for small businesses."
	doc := segmentText(t, prose+"\n")
	if len(doc.Sections) != 1 {
		t.Fatalf("got %d sections, want 1", len(doc.Sections))
	}
	s := doc.Sections[0]
	if s.Type != LayoutText {
		t.Errorf("Type = %q, want text", s.Type)
	}
	if len(s.Blocks) != 1 || s.Blocks[0].Kind != BlockParagraph || s.Blocks[0].Text.String() != prose {
		t.Errorf("Blocks = %+v", s.Blocks)
	}
}

func TestSegmentInference(t *testing.T) {
	tests := []struct {
		name   string
		tokens []source.Token
		want   LayoutType
	}{
		{"faq mode", []source.Token{source.Paragraph(source.Plain("FAQ MODE: accordion"))}, LayoutFAQ},
		{"cols", []source.Token{source.Paragraph(source.Plain("[COLS:2]"))}, LayoutCards},
		{"image", []source.Token{source.Paragraph(source.Plain("[IMG:a.png]"))}, LayoutMedia},
		{"h1", []source.Token{source.Heading(1, source.Plain("Hi")), source.Paragraph(source.Plain("Welcome"))}, LayoutBanner},
		{"h1 with cue", []source.Token{source.Heading(1, source.Plain("Hi")), source.Paragraph(source.Plain("[COLS:2]"))}, LayoutCards},
		{"h2", []source.Token{source.Heading(2, source.Plain("Hi")), source.Paragraph(source.Plain("Welcome"))}, LayoutText},
		{"list", []source.Token{source.List(source.ListItem{Text: source.Plain("Why?")})}, LayoutFAQ},
		{"color", []source.Token{source.Paragraph(source.Plain("TEXT COLOR: #333"))}, LayoutText},
		{"unknown layout", []source.Token{source.Paragraph(source.Plain("LAYOUT: sideways"))}, LayoutMedia},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Segment(tt.tokens, Options{Log: zaptest.NewLogger(t)})
			if len(doc.Sections) != 1 {
				t.Fatalf("got %d sections, want 1", len(doc.Sections))
			}
			if got := doc.Sections[0].Type; got != tt.want {
				t.Errorf("Type = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSegmentHeadingTitle(t *testing.T) {
	doc := segmentText(t, "# Welcome\nWe build sites.\n")
	s := doc.Sections[0]
	if s.Type != LayoutBanner || s.Title.String() != "Welcome" {
		t.Errorf("section = %q %q, want banner Welcome", s.Type, s.Title.String())
	}
	if len(s.Blocks) != 1 || s.Blocks[0].Kind != BlockParagraph {
		t.Errorf("Blocks = %+v", s.Blocks)
	}
}

func TestSegmentLayoutCloses(t *testing.T) {
	doc := segmentText(t, "[LAYOUT:media]\nOne\n## Inside\n[LAYOUT:faq]\nQ: Why?\nA: Because.\n")
	if len(doc.Sections) != 2 {
		t.Fatalf("got %d sections, want 2", len(doc.Sections))
	}
	first, second := doc.Sections[0], doc.Sections[1]
	if kinds := blockKinds(first); !reflect.DeepEqual(kinds, []BlockKind{BlockParagraph, BlockHeading}) {
		t.Errorf("first section blocks = %v", kinds)
	}
	if kinds := blockKinds(second); !reflect.DeepEqual(kinds, []BlockKind{BlockFAQQuestion, BlockFAQAnswer}) {
		t.Errorf("second section blocks = %v", kinds)
	}
	if second.Index != 1 {
		t.Errorf("Index = %d, want 1", second.Index)
	}
}

func blockKinds(s Section) []BlockKind {
	var res []BlockKind
	for _, b := range s.Blocks {
		res = append(res, b.Kind)
	}
	return res
}

func TestSegmentFAQList(t *testing.T) {
	nested := source.List(
		source.ListItem{Text: source.Plain("Why?")},
		source.ListItem{Depth: 1, Text: source.Plain("Because.")},
		source.ListItem{Text: source.Plain("Orphan?")},
	)
	flat := source.List(
		source.ListItem{Text: source.Plain("Why?")},
		source.ListItem{Text: source.Plain("Because.")},
	)
	for name, tc := range map[string]struct {
		tok  source.Token
		want []BlockKind
	}{
		"nested": {nested, []BlockKind{BlockFAQQuestion, BlockFAQAnswer, BlockFAQQuestion}},
		"flat":   {flat, []BlockKind{BlockFAQQuestion, BlockFAQAnswer}},
	} {
		doc := Segment([]source.Token{source.Paragraph(source.Plain("LAYOUT: faq")), tc.tok}, Options{})
		if got := blockKinds(doc.Sections[0]); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("%s: blocks = %v, want %v", name, got, tc.want)
		}
	}

	doc := Segment([]source.Token{source.Paragraph(source.Plain("LAYOUT: media")), flat}, Options{})
	if got := blockKinds(doc.Sections[0]); !reflect.DeepEqual(got, []BlockKind{BlockList}) {
		t.Errorf("media list blocks = %v", got)
	}
}

func TestSegmentScope(t *testing.T) {
	doc := segmentText(t, strings.Join([]string{
		"[SCOPE:container width 1200 | 92%]",
		"SECTION WIDTH: 1400",
		"[SEO_TITLE:Hello]",
		"SEO KEYS: a, b",
		"[LAYOUT:text]",
		"[SEO_TITLE:Ignored]",
		"CONTAINER WIDTH: 800",
	}, "\n"))
	sc := doc.Scope
	if sc.ContainerMaxWidth != "1200px" || sc.ContainerPct != "92%" || sc.SectionMaxWidth != "1400px" {
		t.Errorf("scope widths = %+v", sc)
	}
	if sc.SEOTitle != "Hello" || !reflect.DeepEqual(sc.SEOKeywords, []string{"a", "b"}) {
		t.Errorf("scope SEO = %q %q", sc.SEOTitle, sc.SEOKeywords)
	}
	if got := doc.Sections[0].Meta.ContainerMaxWidth; got != "800px" {
		t.Errorf("section ContainerMaxWidth = %q, want 800px", got)
	}
}

func TestSegmentMeta(t *testing.T) {
	doc := segmentText(t, strings.Join([]string{
		"[LAYOUT:media right 16/9]",
		"COLS: 0.4 0.6",
		"COLOR: #111",
		"TITLE COLOR: #222",
		"CONTAINER ALIGN: center",
		"RADIUS: 8",
		"BORDER: 2",
		"BG: #fff",
		"BG: https://x.io/bg.png",
		"TITLE: Our Services",
		"DESC: one",
		"DESC: two",
		"DESC BOTTOM: fine print",
	}, "\n"))
	s := doc.Sections[0]
	m := s.Meta
	checks := []struct{ name, got, want string }{
		{"Side", m.Side, "right"},
		{"Ratio", m.Ratio, "16/9"},
		{"ImageFr", m.ImageFr, "40fr"},
		{"ContentFr", m.ContentFr, "60fr"},
		{"TitleColor", m.TitleColor, "#222"},
		{"TextColor", m.TextColor, "#111"},
		{"Container.Margin", m.Container.Margin, "0px auto 0px auto"},
		{"Section.Radius", m.Section.Radius, "8px"},
		{"Section.Border", m.Section.Border, "2px solid currentColor"},
		{"Section.BgColor", m.Section.BgColor, "#fff"},
		{"Section.BgImage", m.Section.BgImage, `url("https://x.io/bg.png")`},
		{"Title", s.Title.String(), "Our Services"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %q, want %q", c.name, c.got, c.want)
		}
	}
	if len(m.DescTop) != 2 || len(m.DescBottom) != 1 {
		t.Errorf("DescTop = %v, DescBottom = %v", m.DescTop, m.DescBottom)
	}
	want := "dbc-" + DocumentID("test") + "-s1-our-services"
	if s.ID != want {
		t.Errorf("ID = %q, want %q", s.ID, want)
	}
}

func TestSegmentZigzagCaptions(t *testing.T) {
	doc := segmentText(t, "[LAYOUT:zigzag]\nIntro\n[IMG:a.png|A]\n[CAP:first]\nText\n[IMG:b.png]\nCAPTION: second\n")
	imgs := doc.Sections[0].BlocksOf(BlockImage)
	if len(imgs) != 2 {
		t.Fatalf("got %d images, want 2", len(imgs))
	}
	if imgs[0].Image.Caption.String() != "first" || imgs[1].Image.Caption.String() != "second" {
		t.Errorf("captions = %q, %q", imgs[0].Image.Caption.String(), imgs[1].Image.Caption.String())
	}
	if imgs[0].Image.Alt != "A" {
		t.Errorf("Alt = %q, want A", imgs[0].Image.Alt)
	}
}

func TestSegmentCardBlocks(t *testing.T) {
	doc := segmentText(t, "[LAYOUT:cards]\n[IMG:a.png|Fast|Ships quickly|More|/more]\n[ICON:🚀|Rocket]\n[CTA:Go]\n")
	cards := doc.Sections[0].BlocksOf(BlockCard)
	if len(cards) != 2 {
		t.Fatalf("got %d cards, want 2", len(cards))
	}
	if c := cards[0].Card; c.Image != "a.png" || c.Icon != "" || c.Title.String() != "Fast" || c.ButtonURL != "/more" {
		t.Errorf("image card = %+v", c)
	}
	if c := cards[1].Card; c.Image != "" || c.Icon != "🚀" || c.Title.String() != "Rocket" || c.ButtonURL != "" {
		t.Errorf("icon card = %+v", c)
	}
	btns := doc.Sections[0].BlocksOf(BlockButton)
	if len(btns) != 1 || btns[0].Button.URL != "#" || btns[0].Button.Style != "primary" {
		t.Errorf("buttons = %+v", btns)
	}
}

func TestSegmentHiddenTitle(t *testing.T) {
	doc := segmentText(t, "[LAYOUT:text]\nTITLE: Visible\nTITLE: -\n")
	s := doc.Sections[0]
	if !s.TitleHidden || s.Title != nil {
		t.Errorf("title = %q hidden %v", s.Title.String(), s.TitleHidden)
	}
	if strings.Count(s.ID, "-") != 2 {
		t.Errorf("ID = %q, want no title slug", s.ID)
	}
}

func TestSegmentDeterministic(t *testing.T) {
	const text = "# Hello\nWorld\n[LAYOUT:cards]\n[ICON:x|y]\n"
	a, b := segmentText(t, text), segmentText(t, text)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("Segment() is not deterministic:\n%+v\n%+v", a, b)
	}
	if DocumentID("a") == DocumentID("b") {
		t.Errorf("DocumentID() collides")
	}
}

func TestAutoDescription(t *testing.T) {
	tokens := []source.Token{
		source.Paragraph(source.Plain("LAYOUT: text")),
		source.Paragraph(source.Plain("We build fast websites. They load quickly.")),
	}
	doc := Segment(tokens, Options{AutoDescription: true, Log: zaptest.NewLogger(t)})
	if got := doc.Scope.SEODescription.String(); got != "We build fast websites." {
		t.Errorf("SEODescription = %q", got)
	}

	doc = Segment(append([]source.Token{source.Paragraph(source.Plain("SEO DESC: Given"))}, tokens...),
		Options{AutoDescription: true})
	if got := doc.Scope.SEODescription.String(); got != "Given" {
		t.Errorf("SEODescription = %q, want Given", got)
	}
}

func TestSplitterLimit(t *testing.T) {
	var s *splitter
	if got := s.first("one two three four", 9); got != "one two…" {
		t.Errorf("first() = %q", got)
	}
	if got := s.first("  short ", 0); got != "short" {
		t.Errorf("first() = %q", got)
	}
}

func TestDocumentString(t *testing.T) {
	doc := segmentText(t, "[SEO_TITLE:Acme]\n[LAYOUT:media right]\n[BG:#f0f0f0]\nTITLE: Services\n[IMG:https://example.com/a.png|Team]\nWe build.\n")
	out := doc.String()
	for _, want := range []string{
		"Document[" + doc.ID + "] sections[1]",
		`  seo: title="Acme"`,
		"  Section[0] id[" + doc.Sections[0].ID + "] type[media]",
		`    title: "Services"`,
		`side="right"`,
		`    section: bg="#f0f0f0"`,
		`    image: src="https://example.com/a.png" alt="Team"`,
		`    paragraph: "We build."`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dump lacks %q:\n%s", want, out)
		}
	}

	var nilDoc *Document
	if nilDoc.String() != "<nil Document>" {
		t.Error("nil document dump")
	}
}
