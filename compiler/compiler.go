// Package compiler assembles rendered sections into a single output: scope
// wrapper, SEO preview, section markup, stylesheet and optional scripts.
package compiler

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"dbc/css"
	"dbc/document"
	"dbc/layout"
	"dbc/normalize"
	"dbc/source"
)

//go:embed style.css
var baseStylesheet []byte

// prefix base stylesheet and scripts are authored with
const basePrefix = "dbc"

// accordionScript keeps at most one item of an accordion list open.
const accordionScript = `(function(){document.querySelectorAll('.dbc-faq.is-accordion').forEach(function(list){` +
	`list.addEventListener('toggle',function(e){var d=e.target;if(!d.open){return;}` +
	`list.querySelectorAll('details[open]').forEach(function(o){if(o!==d){o.open=false;}});},true);});})();`

// Options controls compilation.
type Options struct {
	// Name identifies compiled document, it seeds document and section ids.
	Name string
	// Prefix starts class names, custom properties and ids, defaults to "dbc".
	Prefix string

	AutoDescription  bool
	DescriptionLimit int
	Language         language.Tag

	// Stylesheet is optional user CSS appended after generated rules.
	Stylesheet []byte
	// NoBaseStylesheet leaves shared stylesheet out of the result.
	NoBaseStylesheet bool

	Log *zap.Logger
}

// SectionOutput is rendered markup and rules of a single section.
type SectionOutput struct {
	ID   string
	Type document.LayoutType
	HTML string
	CSS  string
}

// Result is the compiled document.
type Result struct {
	HTML     string
	CSS      string
	Document document.Document
	Sections []SectionOutput
	// Warnings collected while parsing stylesheets.
	Warnings []string
}

// Compile segments tokens and renders the resulting document. Compilation
// itself never fails, the only error returned is context cancellation.
func Compile(ctx context.Context, tokens []source.Token, opts Options) (*Result, error) {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	prefix := opts.Prefix
	if prefix == "" {
		prefix = basePrefix
	}

	doc := document.Segment(tokens, document.Options{
		Name:             opts.Name,
		IDPrefix:         prefix,
		AutoDescription:  opts.AutoDescription,
		DescriptionLimit: opts.DescriptionLimit,
		Language:         opts.Language,
		Log:              log,
	})
	log = log.Named("compiler")

	res := &Result{Document: doc}
	parser := css.NewParser(log)

	sheet := &css.Stylesheet{}
	if !opts.NoBaseStylesheet {
		sheet = parser.Parse(baseStylesheet, "base")
		sheet.Rewrite(basePrefix, prefix)
	}

	scopeID := prefix + "-" + doc.ID
	scope := etree.NewElement("div")
	scope.CreateAttr("id", scopeID)
	scope.CreateAttr("class", prefix+"-scope")
	sheet.AddRules(scopeVars(scopeID, prefix, &doc.Scope))

	if doc.Scope.HasSEO() {
		scope.CreateComment(seoComment(&doc.Scope))
		seoBlock(scope, prefix, &doc.Scope)
	}

	accordion := false
	for i := range doc.Sections {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("compile interrupted at section %d: %w", i+1, err)
		}
		s := &doc.Sections[i]
		f := layout.Render(s, layout.Options{Prefix: prefix, Log: log})

		out := SectionOutput{ID: s.ID, Type: s.Type, HTML: layout.HTML(f.Element)}
		if len(f.Rules) > 0 {
			rules := &css.Stylesheet{}
			rules.AddRules(f.Rules...)
			out.CSS = rules.String()
			sheet.AddRules(f.Rules...)
		}
		res.Sections = append(res.Sections, out)
		scope.AddChild(f.Element)

		if s.Type == document.LayoutFAQ && s.Meta.FAQMode == "accordion" {
			accordion = true
		}
	}

	if len(opts.Stylesheet) > 0 {
		sheet.Append(parser.Parse(opts.Stylesheet, "user"))
	}

	var b strings.Builder
	if err := layout.WriteHTML(&b, scope); err != nil {
		return nil, fmt.Errorf("unable to serialize document: %w", err)
	}
	if accordion {
		b.WriteString("\n<script>")
		b.WriteString(strings.ReplaceAll(accordionScript, "."+basePrefix+"-", "."+prefix+"-"))
		b.WriteString("</script>")
	}
	b.WriteByte('\n')

	res.HTML = b.String()
	res.CSS = sheet.String()
	res.Warnings = sheet.Warnings
	for _, w := range res.Warnings {
		log.Warn("Stylesheet", zap.String("warning", w))
	}

	log.Debug("Document compiled",
		zap.String("name", opts.Name),
		zap.String("id", doc.ID),
		zap.Int("sections", len(res.Sections)),
		zap.Bool("accordion", accordion),
	)
	return res, nil
}

func scopeVars(id, prefix string, s *document.Scope) css.Rule {
	r := css.NewRule("#" + id)
	r.Set("--"+prefix+"-container-maxw", s.ContainerMaxWidth)
	r.Set("--"+prefix+"-container-pct", s.ContainerPct)
	r.Set("--"+prefix+"-section-maxw", s.SectionMaxWidth)
	return r
}

// seoComment builds ready to copy head elements. Comment content is written
// verbatim, so it is escaped here.
func seoComment(s *document.Scope) string {
	var b strings.Builder
	b.WriteString(" SEO: put into <head>\n")
	if t := seoTitle(s); t != "" {
		b.WriteString("  <title>" + normalize.EscapeHTML(t) + "</title>\n")
	}
	if d := seoDescription(s); d != "" {
		b.WriteString(`  <meta name="description" content="` + normalize.EscapeHTML(d) + "\">\n")
	}
	if len(s.SEOKeywords) > 0 {
		b.WriteString(`  <meta name="keywords" content="` + normalize.EscapeHTML(strings.Join(s.SEOKeywords, ", ")) + "\">\n")
	}
	// "--" may not appear inside comment
	return strings.ReplaceAll(b.String(), "--", "- -")
}

func seoBlock(parent *etree.Element, prefix string, s *document.Scope) {
	box := parent.CreateElement("div")
	box.CreateAttr("class", prefix+"-seo")
	row := func(label string) *etree.Element {
		d := box.CreateElement("div")
		d.CreateElement("b").CreateText(label + ":")
		d.CreateText(" ")
		return d
	}
	if t := seoTitle(s); t != "" {
		row("Title").CreateText(t)
	}
	if d := seoDescription(s); d != "" {
		row("Description").CreateText(d)
	}
	if len(s.SEOKeywords) > 0 {
		row("Keywords").CreateText(strings.Join(s.SEOKeywords, ", "))
	}
}

// meta values are plain text, markup pasted by authors is dropped
func seoTitle(s *document.Scope) string {
	return strings.TrimSpace(normalize.StripTags(s.SEOTitle))
}

func seoDescription(s *document.Scope) string {
	return strings.TrimSpace(normalize.StripTags(s.SEODescription.String()))
}
