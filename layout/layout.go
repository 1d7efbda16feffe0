// Package layout renders document sections into HTML element trees and CSS
// rules carrying per section custom properties.
package layout

import (
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	"dbc/css"
	"dbc/document"
	"dbc/normalize"
	"dbc/source"
)

// Options controls rendering.
type Options struct {
	// Prefix starts every class name and custom property, defaults to "dbc".
	Prefix string
	Log    *zap.Logger
}

// Fragment is rendered section: element tree and rules declaring its
// variables. Rules are keyed by section id.
type Fragment struct {
	Element *etree.Element
	Rules   []css.Rule
}

type renderFunc func(r *renderer, s *document.Section, parent *etree.Element, vars *css.Rule)

var renderers = map[document.LayoutType]renderFunc{
	document.LayoutMedia:  renderMedia,
	document.LayoutText:   renderText,
	document.LayoutZigzag: renderZigzag,
	document.LayoutCards:  renderCards,
	document.LayoutFAQ:    renderFAQ,
	document.LayoutBanner: renderBanner,
}

type renderer struct {
	prefix string
	log    *zap.Logger
}

// Render renders single section. It never fails, unknown layout types are
// rendered as media.
func Render(s *document.Section, opts Options) Fragment {
	r := &renderer{prefix: opts.Prefix, log: opts.Log}
	if r.prefix == "" {
		r.prefix = "dbc"
	}
	if r.log == nil {
		r.log = zap.NewNop()
	}
	r.log = r.log.Named("layout")

	render, ok := renderers[s.Type]
	if !ok {
		r.log.Debug("Unknown layout type, rendering as media", zap.String("type", string(s.Type)), zap.String("section", s.ID))
		render = renderMedia
	}

	vars := css.NewRule("#" + s.ID)
	r.sectionVars(s, &vars)

	sec := etree.NewElement("section")
	sec.CreateAttr("id", s.ID)
	sec.CreateAttr("class", r.cls("section", "is-"+string(s.Type)))
	if s.Meta.LinkUnderline == "hover" {
		sec.CreateAttr("data-link-underline", "hover")
	}
	container := r.div(sec, "container")

	if s.Type != document.LayoutBanner && !s.TitleHidden && !s.Title.IsBlank() {
		r.inline(r.el(container, "h2", "section-title", "center"), s.Title)
	}
	r.description(container, s.Meta.DescTop, "is-top")
	render(r, s, container, &vars)
	r.description(container, s.Meta.DescBottom, "is-bottom")

	f := Fragment{Element: sec}
	if !vars.IsEmpty() {
		f.Rules = append(f.Rules, vars)
	}
	r.log.Debug("Section rendered", zap.String("section", s.ID), zap.Int("vars", len(vars.Declarations)))
	return f
}

// cls builds class attribute value, modifier names starting with "is-" are
// not prefixed.
func (r *renderer) cls(names ...string) string {
	parts := make([]string, 0, len(names))
	for _, n := range names {
		if n == "" {
			continue
		}
		if strings.HasPrefix(n, "is-") {
			parts = append(parts, n)
			continue
		}
		parts = append(parts, r.prefix+"-"+n)
	}
	return strings.Join(parts, " ")
}

// v returns custom property name.
func (r *renderer) v(name string) string {
	return "--" + r.prefix + "-" + name
}

func (r *renderer) el(parent *etree.Element, tag string, classes ...string) *etree.Element {
	e := parent.CreateElement(tag)
	if c := r.cls(classes...); c != "" {
		e.CreateAttr("class", c)
	}
	return e
}

func (r *renderer) div(parent *etree.Element, classes ...string) *etree.Element {
	return r.el(parent, "div", classes...)
}

func (r *renderer) description(parent *etree.Element, lines []source.Line, modifier string) {
	if len(lines) == 0 {
		return
	}
	desc := r.div(parent, "section-desc", modifier)
	for _, l := range lines {
		r.inline(r.el(desc, "p", "text-muted"), l)
	}
}

func (r *renderer) sectionVars(s *document.Section, vars *css.Rule) {
	m := &s.Meta
	vars.Set(r.v("title-color"), m.TitleColor)
	vars.Set(r.v("text-color"), m.TextColor)
	vars.Set(r.v("btn-color"), m.ButtonColor)
	vars.Set(r.v("link-color"), m.LinkColor)
	vars.Set(r.v("link-weight"), m.LinkWeight)
	switch m.LinkUnderline {
	case "on":
		vars.Set(r.v("link-decoration"), "underline")
	case "off", "hover":
		vars.Set(r.v("link-decoration"), "none")
	}
	vars.Set(r.v("section-mt"), m.MarginTop)
	vars.Set(r.v("section-mb"), m.MarginBottom)
	vars.Set(r.v("container-maxw"), m.ContainerMaxWidth)
	vars.Set(r.v("container-pct"), m.ContainerPct)
	vars.Set(r.v("section-maxw"), m.SectionMaxWidth)

	r.surfaceVars("section", &m.Section, vars)
	r.surfaceVars("container", &m.Container, vars)

	vars.Set(r.v("img-radius"), m.ImageRadius)
	vars.Set(r.v("card-radius"), m.CardRadius)
	vars.Set(r.v("btn-radius"), m.ButtonRadius)
	vars.Set(r.v("btn-bg"), m.ButtonBg)
	vars.Set(r.v("btn-border"), m.ButtonBorder)
	vars.Set(r.v("card-color"), m.CardColor)
	vars.Set(r.v("card-title-color"), m.CardTitleColor)
	vars.Set(r.v("card-bgcolor"), m.CardBgColor)
	vars.Set(r.v("card-bgimg"), m.CardBgImage)
	vars.Set(r.v("card-border"), m.CardBorder)
	vars.Set(r.v("faq-item-border"), m.FAQItemBorder)
}

// surfaceVars declares box variables of section or container, margins and
// paddings get scaled down copies for narrow screens.
func (r *renderer) surfaceVars(name string, b *document.Surface, vars *css.Rule) {
	vars.Set(r.v(name+"-bgcolor"), b.BgColor)
	vars.Set(r.v(name+"-bgimg"), b.BgImage)
	vars.Set(r.v(name+"-overlay"), overlayImage(b.Overlay))
	vars.Set(r.v(name+"-radius"), b.Radius)
	vars.Set(r.v(name+"-border"), b.Border)
	if b.Margin != "" {
		vars.Set(r.v(name+"-m"), b.Margin)
		vars.Set(r.v(name+"-m-m"), normalize.ScaleBox(b.Margin, normalize.MobileFactor))
	}
	if b.Padding != "" {
		vars.Set(r.v(name+"-p"), b.Padding)
		vars.Set(r.v(name+"-p-m"), normalize.ScaleBox(b.Padding, normalize.MobileFactor))
	}
}

// overlayImage turns overlay color into a flat gradient, so it can be layered
// over background image.
func overlayImage(color string) string {
	if color == "" {
		return ""
	}
	return "linear-gradient(" + color + "," + color + ")"
}
