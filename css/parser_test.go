package css

import (
	"reflect"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"
)

func TestParseRules(t *testing.T) {
	p := NewParser(zaptest.NewLogger(t))
	sheet := p.Parse([]byte(`
/* base */
.dbc-card, .dbc-faq__item {
  border-radius: var(--dbc-card-radius, 16px);
  COLOR: #333;
  color: #444;
}
.dbc-scope   .dbc-section > .dbc-container { margin: 0 auto }
`), "test")

	rules := sheet.Rules()
	if len(rules) != 2 {
		t.Fatalf("got %d rules, want 2", len(rules))
	}
	if rules[0].Selector != ".dbc-card, .dbc-faq__item" {
		t.Errorf("Selector = %q", rules[0].Selector)
	}
	want := []Declaration{
		{"border-radius", "var(--dbc-card-radius,16px)"},
		{"color", "#444"},
	}
	if !reflect.DeepEqual(rules[0].Declarations, want) {
		t.Errorf("Declarations = %+v, want %+v", rules[0].Declarations, want)
	}
	if rules[1].Selector != ".dbc-scope .dbc-section>.dbc-container" && rules[1].Selector != ".dbc-scope .dbc-section > .dbc-container" {
		t.Errorf("Selector = %q", rules[1].Selector)
	}
	if v, _ := rules[1].Get("margin"); v != "0 auto" {
		t.Errorf("margin = %q, want %q", v, "0 auto")
	}
}

func TestParseCustomProperties(t *testing.T) {
	sheet := NewParser(nil).Parse([]byte(`:root { --dbc-gap:  24px ; --dbc-Mixed: a  b }`))
	rules := sheet.Rules()
	if len(rules) != 1 {
		t.Fatalf("got %d rules, want 1", len(rules))
	}
	if v, ok := rules[0].Get("--dbc-gap"); !ok || v != "24px" {
		t.Errorf("--dbc-gap = %q, %v", v, ok)
	}
	if v, ok := rules[0].Get("--dbc-Mixed"); !ok || v != "a b" {
		t.Errorf("--dbc-Mixed = %q, %v", v, ok)
	}
}

func TestParseMediaAndSkipped(t *testing.T) {
	sheet := NewParser(nil).Parse([]byte(`
@import url("x.css");
@font-face { font-family: X; src: url(x.woff); }
@media (max-width: 720px) {
  .dbc-media { grid-template-columns: 1fr; }
}
.dbc-btn { padding: 10px; }
`))
	if len(sheet.Items) != 2 {
		t.Fatalf("got %d items, want 2: %+v", len(sheet.Items), sheet.Items)
	}
	mb := sheet.Items[0].MediaBlock
	if mb == nil {
		t.Fatalf("first item is not @media")
	}
	if !strings.Contains(mb.Query, "max-width") || len(mb.Rules) != 1 || mb.Rules[0].Selector != ".dbc-media" {
		t.Errorf("MediaBlock = %+v", mb)
	}
	if len(sheet.Warnings) != 2 {
		t.Errorf("Warnings = %v, want 2", sheet.Warnings)
	}
}

func TestRuleSet(t *testing.T) {
	r := NewRule("#s1")
	r.Set("--dbc-a", "1")
	r.Set("--dbc-b", "")
	r.Set("--dbc-a", "2")
	if len(r.Declarations) != 1 || r.Declarations[0].Value != "2" {
		t.Errorf("Declarations = %+v", r.Declarations)
	}
	if NewRule("x").IsEmpty() != true {
		t.Errorf("new rule is not empty")
	}
}

func TestRewriteAndWrite(t *testing.T) {
	sheet := NewParser(nil).Parse([]byte(`
.dbc-card .dbc-card__title { color: var(--dbc-card-title-color); --dbc-x: 1px; }
@media (max-width: 720px) { .dbc-hero.is-split { display: block } }
.other-dbc-thing { color: red }
`))
	sheet.Rewrite("dbc", "acme")
	var extra Stylesheet
	extra.AddRules(Rule{Selector: "#acme-s1", Declarations: []Declaration{{"--acme-cards-cols", "3"}}}, NewRule("#empty"))
	sheet.Append(&extra)

	want := `.acme-card .acme-card__title {
  color: var(--acme-card-title-color);
  --acme-x: 1px;
}

@media (max-width:720px) {
  .acme-hero.is-split {
    display: block;
  }
}

.other-dbc-thing {
  color: red;
}

#acme-s1 {
  --acme-cards-cols: 3;
}
`
	got := sheet.String()
	// media query white space depends on tokenizer, compare normalized form
	got = strings.Replace(got, "(max-width: 720px)", "(max-width:720px)", 1)
	if got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}
