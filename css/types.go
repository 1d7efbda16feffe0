// Package css keeps stylesheets as ordered rules which could be parsed,
// rewritten to another class prefix, merged and serialized back.
package css

import (
	"io"
	"regexp"
	"strings"
)

// Declaration is a single "property: value" pair. Custom properties keep
// their "--" prefix.
type Declaration struct {
	Property string
	Value    string
}

// Rule represents a single CSS rule. Selector may be a group ("a, b") and
// declarations keep source order.
type Rule struct {
	Selector     string
	Declarations []Declaration
}

// NewRule creates empty rule for the selector.
func NewRule(selector string) Rule {
	return Rule{Selector: selector}
}

// Set adds declaration to the rule replacing existing one with the same
// property. Empty values are ignored.
func (r *Rule) Set(property, value string) {
	if value == "" {
		return
	}
	for i := range r.Declarations {
		if r.Declarations[i].Property == property {
			r.Declarations[i].Value = value
			return
		}
	}
	r.Declarations = append(r.Declarations, Declaration{Property: property, Value: value})
}

// Get returns value of the property and whether it is present.
func (r Rule) Get(property string) (string, bool) {
	for _, d := range r.Declarations {
		if d.Property == property {
			return d.Value, true
		}
	}
	return "", false
}

// IsEmpty returns true if rule has no declarations.
func (r Rule) IsEmpty() bool {
	return len(r.Declarations) == 0
}

// MediaBlock represents a @media block with its query and nested rules.
type MediaBlock struct {
	Query string
	Rules []Rule
}

// Item is a single top-level item in a stylesheet. Exactly one of Rule or
// MediaBlock is non-nil.
type Item struct {
	Rule       *Rule
	MediaBlock *MediaBlock
}

// Stylesheet represents a parsed CSS stylesheet.
type Stylesheet struct {
	Items    []Item   // All top-level items in source order
	Warnings []string // Warnings for skipped constructs
}

// Rules returns top-level rules in source order.
func (s *Stylesheet) Rules() []Rule {
	var rules []Rule
	for _, it := range s.Items {
		if it.Rule != nil {
			rules = append(rules, *it.Rule)
		}
	}
	return rules
}

// AddRules appends non empty rules to the stylesheet.
func (s *Stylesheet) AddRules(rules ...Rule) {
	for _, r := range rules {
		if r.IsEmpty() {
			continue
		}
		s.Items = append(s.Items, Item{Rule: &r})
	}
}

// Append adds all items of other stylesheet after items of this one.
func (s *Stylesheet) Append(other *Stylesheet) {
	if other == nil {
		return
	}
	s.Items = append(s.Items, other.Items...)
	s.Warnings = append(s.Warnings, other.Warnings...)
}

// Rewrite replaces class prefix "from" with "to" in selectors (".from-x"),
// custom property names and their references ("--from-x").
func (s *Stylesheet) Rewrite(from, to string) {
	if from == to || from == "" || to == "" {
		return
	}
	rw := newRewriter(from, to)
	for i := range s.Items {
		switch {
		case s.Items[i].Rule != nil:
			r := rw.rule(*s.Items[i].Rule)
			s.Items[i].Rule = &r
		case s.Items[i].MediaBlock != nil:
			mb := &MediaBlock{Query: s.Items[i].MediaBlock.Query}
			for _, r := range s.Items[i].MediaBlock.Rules {
				mb.Rules = append(mb.Rules, rw.rule(r))
			}
			s.Items[i].MediaBlock = mb
		}
	}
}

type rewriter struct {
	class, prop *regexp.Regexp
	classTo     string
	propTo      string
}

func newRewriter(from, to string) *rewriter {
	q := regexp.QuoteMeta(from)
	return &rewriter{
		class:   regexp.MustCompile(`\.` + q + `-`),
		prop:    regexp.MustCompile(`--` + q + `-`),
		classTo: "." + to + "-",
		propTo:  "--" + to + "-",
	}
}

func (rw *rewriter) rule(r Rule) Rule {
	res := Rule{Selector: rw.class.ReplaceAllLiteralString(r.Selector, rw.classTo)}
	res.Declarations = make([]Declaration, 0, len(r.Declarations))
	for _, d := range r.Declarations {
		res.Declarations = append(res.Declarations, Declaration{
			Property: rw.prop.ReplaceAllLiteralString(d.Property, rw.propTo),
			Value:    rw.prop.ReplaceAllLiteralString(d.Value, rw.propTo),
		})
	}
	return res
}

// String returns serialized stylesheet.
func (s *Stylesheet) String() string {
	var b strings.Builder
	_, _ = s.WriteTo(&b)
	return b.String()
}

// WriteTo serializes stylesheet, output depends only on stylesheet content.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	for i, it := range s.Items {
		if i > 0 {
			b.WriteByte('\n')
		}
		switch {
		case it.Rule != nil:
			writeRule(&b, *it.Rule, "")
		case it.MediaBlock != nil:
			b.WriteString("@media ")
			b.WriteString(it.MediaBlock.Query)
			b.WriteString(" {\n")
			for _, r := range it.MediaBlock.Rules {
				writeRule(&b, r, "  ")
			}
			b.WriteString("}\n")
		}
	}
	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

func writeRule(b *strings.Builder, r Rule, indent string) {
	b.WriteString(indent)
	b.WriteString(r.Selector)
	b.WriteString(" {\n")
	for _, d := range r.Declarations {
		b.WriteString(indent)
		b.WriteString("  ")
		b.WriteString(d.Property)
		b.WriteString(": ")
		b.WriteString(d.Value)
		b.WriteString(";\n")
	}
	b.WriteString(indent)
	b.WriteString("}\n")
}
