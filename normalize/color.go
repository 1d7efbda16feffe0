package normalize

import (
	"io"
	"regexp"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

var (
	hexColorRx  = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
	funcColorRx = regexp.MustCompile(`(?i)^(?:rgba?|hsla?|var)\(\s*[^()]+\)$`)
	gradientRx  = regexp.MustCompile(`(?i)^(?:repeating-)?(?:linear|radial|conic)-gradient\(.+\)$`)
	urlRx       = regexp.MustCompile(`(?i)^(?:https?://|//|data:|url\()`)
	overlayRx   = regexp.MustCompile(`^(?:0(?:\.\d+)?|1(?:\.0+)?|\.\d+)$`)
)

var namedColors = map[string]struct{}{
	"transparent": {}, "currentcolor": {}, "black": {}, "white": {}, "red": {}, "green": {},
	"blue": {}, "yellow": {}, "orange": {}, "purple": {}, "pink": {}, "brown": {},
	"gray": {}, "grey": {}, "silver": {}, "gold": {}, "navy": {}, "teal": {},
	"maroon": {}, "olive": {}, "lime": {}, "aqua": {}, "cyan": {}, "magenta": {},
	"fuchsia": {}, "indigo": {}, "violet": {}, "coral": {}, "salmon": {}, "crimson": {},
	"tomato": {}, "beige": {}, "ivory": {}, "khaki": {}, "lavender": {}, "plum": {},
	"orchid": {}, "tan": {}, "turquoise": {}, "skyblue": {}, "steelblue": {}, "slategray": {},
	"darkgray": {}, "lightgray": {}, "whitesmoke": {}, "gainsboro": {}, "darkblue": {}, "darkgreen": {},
	"darkred": {}, "lightblue": {}, "lightgreen": {}, "royalblue": {}, "midnightblue": {}, "seagreen": {},
}

// IsColorLike reports whether value looks like a CSS color: hex form,
// rgb/rgba/hsl/hsla/var function or one of known named colors.
func IsColorLike(value string) bool {
	v := strings.TrimSpace(value)
	if v == "" {
		return false
	}
	if hexColorRx.MatchString(v) || funcColorRx.MatchString(v) {
		return true
	}
	_, ok := namedColors[strings.ToLower(v)]
	return ok
}

// IsGradient reports whether value is a CSS gradient function.
func IsGradient(value string) bool {
	return gradientRx.MatchString(strings.TrimSpace(value))
}

// IsURL reports whether value references an external or inline resource.
func IsURL(value string) bool {
	return urlRx.MatchString(strings.TrimSpace(value))
}

// CSSURL wraps a resource reference into url("..."), keeping already wrapped
// references intact.
func CSSURL(value string) string {
	v := strings.TrimSpace(value)
	if len(v) > 4 && strings.EqualFold(v[:4], "url(") {
		return v
	}
	var b strings.Builder
	b.Grow(len(v) + 7)
	b.WriteString(`url("`)
	for _, r := range v {
		switch r {
		case '\\', '"':
			b.WriteRune('\\')
			b.WriteRune(r)
		case '\n', '\r':
		default:
			b.WriteRune(r)
		}
	}
	b.WriteString(`")`)
	return b.String()
}

// Overlay converts overlay argument into a color: "none"/"off" become
// transparent, opacity in 0..1 becomes black of that opacity, colors pass.
func Overlay(value string) string {
	v := strings.ToLower(strings.TrimSpace(value))
	switch {
	case v == "none" || v == "off":
		return "transparent"
	case overlayRx.MatchString(v):
		return "rgba(0,0,0," + v + ")"
	case IsColorLike(v):
		return strings.TrimSpace(value)
	}
	return ""
}

// SafeCSSValue reports whether value can be used as a single declaration
// value without escaping its rule or the surrounding style element.
func SafeCSSValue(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}
	l := css.NewLexer(parse.NewInputString(value))
	depth := 0
	for {
		tt, data := l.Next()
		switch tt {
		case css.ErrorToken:
			return l.Err() == io.EOF && depth == 0
		case css.SemicolonToken, css.LeftBraceToken, css.RightBraceToken,
			css.BadStringToken, css.BadURLToken, css.CDOToken, css.CDCToken, css.CommentToken:
			return false
		case css.FunctionToken, css.LeftParenthesisToken:
			depth++
		case css.RightParenthesisToken:
			depth--
		case css.DelimToken:
			if len(data) > 0 && (data[0] == '<' || data[0] == '>' || data[0] == '\\') {
				return false
			}
		}
	}
}
