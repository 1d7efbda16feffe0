package css

import (
	"bytes"
	"errors"
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Parser parses CSS stylesheets into ordered rules.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new CSS parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-parser")}
}

// Parse parses CSS text into a Stylesheet. Plain rules and @media blocks are
// kept, other @-rules are skipped with a warning.
// The optional source parameter identifies what's being parsed (for debug logging).
func (p *Parser) Parse(data []byte, source ...string) *Stylesheet {
	sheet := &Stylesheet{}

	if len(source) > 0 && source[0] != "" {
		p.log.Debug("Parsing CSS", zap.String("source", source[0]), zap.Int("bytes", len(data)))
	}

	parser := css.NewParser(parse.NewInput(bytes.NewReader(data)), false)
	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			if p.atEnd(parser, sheet) {
				return sheet
			}

		case css.BeginAtRuleGrammar:
			atRule := strings.ToLower(string(data))
			if atRule != "@media" {
				p.skipAtRuleBlock(parser)
				sheet.Warnings = append(sheet.Warnings, "unsupported at-rule: "+atRule)
				p.log.Debug("Skipping @-rule", zap.String("rule", atRule))
				continue
			}
			mb := &MediaBlock{Query: joinTokens(parser.Values())}
			mb.Rules = p.parseMediaBlockRules(parser)
			p.log.Debug("Parsed @media block", zap.String("query", mb.Query), zap.Int("rules", len(mb.Rules)))
			sheet.Items = append(sheet.Items, Item{MediaBlock: mb})

		case css.AtRuleGrammar:
			atRule := strings.ToLower(string(data))
			sheet.Warnings = append(sheet.Warnings, "unsupported at-rule: "+atRule)
			p.log.Debug("Skipping @-rule", zap.String("rule", atRule))

		case css.BeginRulesetGrammar:
			if r, ok := p.parseRuleset(parser, data); ok {
				sheet.Items = append(sheet.Items, Item{Rule: &r})
			}
		}
	}
}

// atEnd reports whether parser reached end of input. Recoverable errors are
// logged and recorded as warnings when sheet is not nil.
func (p *Parser) atEnd(parser *css.Parser, sheet *Stylesheet) bool {
	err := parser.Err()
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}
	if sheet != nil {
		sheet.Warnings = append(sheet.Warnings, "parse error: "+err.Error())
	}
	p.log.Debug("CSS parse error", zap.Error(err))
	return false
}

func (p *Parser) parseRuleset(parser *css.Parser, data []byte) (Rule, bool) {
	r := Rule{Selector: parseSelectors(data, parser.Values())}
	r.Declarations = p.parseDeclarations(parser)
	if r.Selector == "" || len(r.Declarations) == 0 {
		return r, false
	}
	return r, true
}

// parseSelectors builds normalized selector group from token data: white
// space collapsed, group members separated by ", ".
func parseSelectors(data []byte, values []css.Token) string {
	var sb strings.Builder
	sb.Write(data)
	for _, v := range values {
		sb.Write(v.Data)
	}

	var selectors []string
	for s := range strings.SplitSeq(sb.String(), ",") {
		if s = strings.Join(strings.Fields(s), " "); s != "" {
			selectors = append(selectors, s)
		}
	}
	return strings.Join(selectors, ", ")
}

// parseDeclarations parses property declarations until EndRulesetGrammar.
// Later declarations of the same property replace earlier ones.
func (p *Parser) parseDeclarations(parser *css.Parser) []Declaration {
	var r Rule
	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			if p.atEnd(parser, nil) {
				return r.Declarations
			}
		case css.EndRulesetGrammar:
			return r.Declarations

		case css.DeclarationGrammar:
			r.Set(strings.ToLower(string(data)), joinTokens(parser.Values()))

		case css.CustomPropertyGrammar:
			// custom property names are case sensitive
			r.Set(string(data), joinTokens(parser.Values()))
		}
	}
}

// joinTokens builds value string collapsing white space runs into single
// space.
func joinTokens(tokens []css.Token) string {
	var parts []string
	for _, t := range tokens {
		if t.TokenType != css.WhitespaceToken && t.TokenType != css.CustomPropertyValueToken {
			parts = append(parts, string(t.Data))
			continue
		}
		if t.TokenType == css.CustomPropertyValueToken {
			parts = append(parts, strings.Join(strings.Fields(string(t.Data)), " "))
			continue
		}
		if len(parts) > 0 {
			parts = append(parts, " ")
		}
	}
	return strings.TrimSpace(strings.Join(parts, ""))
}

// skipAtRuleBlock skips tokens until the matching end of an @-rule block.
func (p *Parser) skipAtRuleBlock(parser *css.Parser) {
	depth := 1
	for depth > 0 {
		gt, _, _ := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			return
		case css.BeginAtRuleGrammar, css.BeginRulesetGrammar:
			depth++
		case css.EndAtRuleGrammar, css.EndRulesetGrammar:
			depth--
		}
	}
}

// parseMediaBlockRules parses rules inside an @media block and returns them.
func (p *Parser) parseMediaBlockRules(parser *css.Parser) []Rule {
	var rules []Rule
	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			if p.atEnd(parser, nil) {
				return rules
			}
		case css.EndAtRuleGrammar:
			return rules

		case css.BeginAtRuleGrammar:
			p.skipAtRuleBlock(parser)

		case css.BeginRulesetGrammar:
			if r, ok := p.parseRuleset(parser, data); ok {
				rules = append(rules, r)
			}
		}
	}
}
