// Package normalize coerces raw directive arguments into canonical CSS
// fragments. All functions are total: malformed input yields an empty string.
package normalize

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	numberRx = regexp.MustCompile(`^-?(?:\d+|\d*\.\d+)$`)
	lengthRx = regexp.MustCompile(`^-?(?:\d+|\d*\.\d+)(?:px|em|rem|%|vh|vw|ch|ex)$`)
	ratioRx  = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*[/:xх×]\s*(\d+(?:\.\d+)?)$`)
)

// MobileFactor scales margins and paddings for narrow viewports.
const MobileFactor = 0.4

// PixelLength turns a bare number into a px length and passes lengths with a
// recognized unit through unchanged.
func PixelLength(value string) string {
	v := strings.ToLower(strings.TrimSpace(value))
	switch {
	case numberRx.MatchString(v):
		return v + "px"
	case lengthRx.MatchString(v):
		return v
	}
	return ""
}

func splitTokens(value string) []string {
	return strings.FieldsFunc(value, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})
}

// BoxShorthand normalizes 1-4 margin or padding values into explicit
// "top right bottom left" form. Empty input yields "0".
func BoxShorthand(value string, allowAuto bool) string {
	tokens := splitTokens(value)
	if len(tokens) == 0 {
		return "0"
	}
	if len(tokens) > 4 {
		return ""
	}
	for i, t := range tokens {
		if allowAuto && strings.EqualFold(t, "auto") {
			tokens[i] = "auto"
			continue
		}
		if tokens[i] = PixelLength(t); tokens[i] == "" {
			return ""
		}
	}
	switch len(tokens) {
	case 1:
		tokens = []string{tokens[0], tokens[0], tokens[0], tokens[0]}
	case 2:
		tokens = []string{tokens[0], tokens[1], tokens[0], tokens[1]}
	case 3:
		tokens = []string{tokens[0], tokens[1], tokens[2], tokens[1]}
	}
	return strings.Join(tokens, " ")
}

func radiusToken(t string) string {
	switch strings.ToLower(t) {
	case "none", "off", "0":
		return "0"
	case "pill", "round", "circle", "full":
		return "9999px"
	}
	return PixelLength(t)
}

// RadiusShorthand normalizes 1-4 border radius values. Tokens are not
// expanded since radius shorthand pairs corners differently from boxes.
func RadiusShorthand(value string) string {
	tokens := splitTokens(value)
	if len(tokens) == 0 || len(tokens) > 4 {
		return ""
	}
	for i, t := range tokens {
		if tokens[i] = radiusToken(t); tokens[i] == "" {
			return ""
		}
	}
	return strings.Join(tokens, " ")
}

// ScaleBox multiplies every px component of a box shorthand by factor,
// rounding to two decimals. Other tokens are kept as is.
func ScaleBox(value string, factor float64) string {
	tokens := strings.Fields(value)
	for i, t := range tokens {
		num, ok := strings.CutSuffix(t, "px")
		if !ok {
			continue
		}
		f, err := strconv.ParseFloat(num, 64)
		if err != nil {
			continue
		}
		tokens[i] = strconv.FormatFloat(math.Round(f*factor*100)/100, 'f', -1, 64) + "px"
	}
	return strings.Join(tokens, " ")
}

// Ratio normalizes aspect ratios written as "a/b", "a:b" or "a x b" into
// CSS "a/b" form.
func Ratio(value string) string {
	m := ratioRx.FindStringSubmatch(strings.TrimSpace(value))
	if m == nil {
		return ""
	}
	a, _ := strconv.ParseFloat(m[1], 64)
	b, _ := strconv.ParseFloat(m[2], 64)
	if a <= 0 || b <= 0 {
		return ""
	}
	return m[1] + "/" + m[2]
}

var weights = map[string]string{
	"thin":       "100",
	"hairline":   "100",
	"extralight": "200",
	"ultralight": "200",
	"light":      "300",
	"normal":     "400",
	"regular":    "400",
	"medium":     "500",
	"semibold":   "600",
	"demibold":   "600",
	"bold":       "700",
	"extrabold":  "800",
	"ultrabold":  "800",
	"black":      "900",
	"heavy":      "900",
}

// FontWeight maps weight keywords and numbers in 100..900 range to numeric
// CSS font-weight.
func FontWeight(value string) string {
	v := strings.ToLower(strings.Join(strings.FieldsFunc(value, func(r rune) bool {
		return unicode.IsSpace(r) || r == '-' || r == '_'
	}), ""))
	if w, ok := weights[v]; ok {
		return w
	}
	if n, err := strconv.Atoi(v); err == nil && n >= 100 && n <= 900 && n%100 == 0 {
		return v
	}
	return ""
}
