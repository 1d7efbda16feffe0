package document

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"dbc/directive"
	"dbc/source"
)

// Options controls segmentation.
type Options struct {
	// Name seeds document id, usually source file name.
	Name string
	// IDPrefix starts every section id, defaults to "dbc".
	IDPrefix string
	// AutoDescription fills missing SEO description from the first sentence
	// of the first paragraph.
	AutoDescription  bool
	DescriptionLimit int
	Language         language.Tag
	Log              *zap.Logger
}

// folder is the segmentation accumulator.
type folder struct {
	log      *zap.Logger
	prefix   string
	docID    string
	finished []Section
	current  *Section
	scope    Scope
	// last pre-section heading, used to infer type and title of implicitly
	// opened section
	cueLevel int
	cueText  source.Line
}

// Segment folds token stream into document. It never fails: unrecognized
// input becomes content, invalid directive values are ignored.
func Segment(tokens []source.Token, opts Options) Document {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	f := &folder{
		log:    log.Named("segmenter"),
		prefix: opts.IDPrefix,
		docID:  DocumentID(opts.Name),
	}
	if f.prefix == "" {
		f.prefix = "dbc"
	}

	for _, t := range tokens {
		switch t.Kind {
		case source.TokenHeading:
			f.heading(t)
		case source.TokenParagraph:
			for _, line := range t.Lines {
				f.line(line)
			}
		case source.TokenList:
			f.list(t.Items)
		}
	}
	f.close()

	doc := Document{ID: f.docID, Scope: f.scope, Sections: f.finished}
	if opts.AutoDescription && doc.Scope.SEODescription.IsBlank() {
		describe(&doc, opts, f.log)
	}
	return doc
}

// DocumentID returns short name based id used to make section ids unique
// across documents.
func DocumentID(name string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(name)).String()[:8]
}

func (f *folder) heading(t source.Token) {
	var text source.Line
	if len(t.Lines) > 0 {
		text = t.Lines[0]
	}
	if f.current == nil {
		f.cueLevel, f.cueText = t.Level, text
		return
	}
	f.add(Block{Kind: BlockHeading, Level: t.Level, Text: text})
}

func (f *folder) line(line source.Line) {
	found, rest := directive.Scan(line)
	for _, d := range found {
		f.apply(d)
	}
	if rest == nil {
		return
	}
	if f.current == nil {
		f.open(f.infer(nil, false), true)
	}
	f.add(Block{Kind: BlockParagraph, Text: rest})
}

func (f *folder) list(items []source.ListItem) {
	if len(items) == 0 {
		return
	}
	if f.current == nil {
		f.open(f.infer(nil, true), true)
	}
	if f.current.Type != LayoutFAQ {
		f.add(Block{Kind: BlockList, Items: items})
		return
	}
	for _, b := range faqBlocks(items) {
		f.add(b)
	}
}

// faqBlocks turns list into question and answer blocks. When list is nested
// top level items are questions and nested items their answers, flat list
// alternates questions and answers.
func faqBlocks(items []source.ListItem) []Block {
	nested := false
	for _, it := range items {
		if it.Depth > 0 {
			nested = true
			break
		}
	}
	res := make([]Block, 0, len(items))
	for i, it := range items {
		kind := BlockFAQQuestion
		if (nested && it.Depth > 0) || (!nested && i%2 == 1) {
			kind = BlockFAQAnswer
		}
		res = append(res, Block{Kind: kind, Text: it.Text})
	}
	return res
}

func (f *folder) apply(d directive.Directive) {
	if d.Kind == directive.KindLayout {
		f.close()
		t := LayoutType(d.Field("type"))
		if t == "" {
			t = LayoutMedia
		}
		f.open(t, false)
		applyLayout(f.current, d)
		return
	}

	if f.current == nil {
		switch d.Kind {
		case directive.KindScope, directive.KindSeoTitle, directive.KindSeoDesc, directive.KindSeoKeys,
			directive.KindContainerWidth, directive.KindSectionWidth:
			f.applyScope(d)
			return
		}
		f.open(f.infer(&d, false), true)
	} else if d.Kind.ScopeOnly() {
		f.log.Debug("Document level directive inside section ignored", zap.Stringer("kind", d.Kind), zap.String("section", f.current.ID))
		return
	}

	if r, ok := reducers[d.Kind]; ok {
		r(f.current, d)
	}
}

func (f *folder) applyScope(d directive.Directive) {
	switch d.Kind {
	case directive.KindScope:
		switch d.Field("target") {
		case "container":
			setIf(&f.scope.ContainerMaxWidth, d.Field("max_width"))
			setIf(&f.scope.ContainerPct, d.Field("pct"))
		case "section":
			setIf(&f.scope.SectionMaxWidth, d.Field("max_width"))
		}
	case directive.KindContainerWidth:
		setIf(&f.scope.ContainerMaxWidth, d.Field("max_width"))
		setIf(&f.scope.ContainerPct, d.Field("pct"))
	case directive.KindSectionWidth:
		setIf(&f.scope.SectionMaxWidth, d.Field("max_width"))
	case directive.KindSeoTitle:
		setIf(&f.scope.SEOTitle, d.Field("value"))
	case directive.KindSeoDesc:
		if !d.Text.IsBlank() {
			f.scope.SEODescription = d.Text
		}
	case directive.KindSeoKeys:
		if keys := d.Field("keys"); keys != "" {
			f.scope.SEOKeywords = append(f.scope.SEOKeywords, strings.Split(keys, ", ")...)
		}
	}
}

// infer decides type of implicitly opened section from the opening
// directive, pending heading level and whether section opens with a list.
func (f *folder) infer(d *directive.Directive, isList bool) LayoutType {
	if d != nil {
		switch d.Kind {
		case directive.KindFaqMode:
			return LayoutFAQ
		case directive.KindCols:
			return LayoutCards
		case directive.KindImg:
			return LayoutMedia
		}
	}
	switch {
	case f.cueLevel == 1:
		return LayoutBanner
	case isList:
		return LayoutFAQ
	}
	return LayoutText
}

func (f *folder) open(t LayoutType, implicit bool) {
	s := &Section{Index: len(f.finished), Type: t}
	s.ID = fmt.Sprintf("%s-%s-s%d", f.prefix, f.docID, s.Index+1)
	if implicit && !f.cueText.IsBlank() {
		s.Title = f.cueText
	}
	f.cueLevel, f.cueText = 0, nil
	f.current = s
	f.log.Debug("Section opened", zap.Int("index", s.Index), zap.String("type", string(t)), zap.Bool("implicit", implicit))
}

func (f *folder) close() {
	if f.current == nil {
		return
	}
	s := f.current
	if title := slug.Make(s.Title.String()); title != "" && !s.TitleHidden {
		s.ID += "-" + title
	}
	f.log.Debug("Section closed", zap.String("id", s.ID), zap.String("type", string(s.Type)), zap.Int("blocks", len(s.Blocks)))
	f.finished = append(f.finished, *s)
	f.current = nil
}

func (f *folder) add(b Block) {
	f.current.Blocks = append(f.current.Blocks, b)
	f.log.Debug("Block added", zap.String("section", f.current.ID), zap.String("kind", string(b.Kind)))
}

func applyLayout(s *Section, d directive.Directive) {
	switch side := d.Field("side"); s.Type {
	case LayoutMedia, LayoutZigzag, LayoutText:
		if side == "left" || side == "right" {
			s.Meta.Side = side
		}
	case LayoutBanner:
		setIf(&s.Meta.Align, side)
	}
	if d.Field("split") != "" {
		s.Meta.Split = true
	}
	if d.Field("stacked") != "" {
		s.Meta.Stacked = true
	}
	setIf(&s.Meta.FAQMode, d.Field("faq_mode"))
	if s.Type == LayoutCards {
		if n := atoi(d.Field("cols")); n > 0 {
			s.Meta.CardsCols = n
		}
		setIf(&s.Meta.CardRatio, d.Field("ratio"))
		return
	}
	setIf(&s.Meta.Ratio, d.Field("ratio"))
}

// describe fills SEO description with the first sentence of the first
// paragraph in the document.
func describe(doc *Document, opts Options, log *zap.Logger) {
	for _, s := range doc.Sections {
		for _, b := range s.Blocks {
			if b.Kind != BlockParagraph || b.Text.IsBlank() {
				continue
			}
			lang := opts.Language
			if lang == language.Und {
				lang = language.English
			}
			if d := newSplitter(lang, log).first(b.Text.String(), opts.DescriptionLimit); d != "" {
				doc.Scope.SEODescription = source.Plain(d)
				log.Debug("SEO description generated", zap.String("section", s.ID), zap.String("description", d))
			}
			return
		}
	}
}
