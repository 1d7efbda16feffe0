package normalize

import "testing"

func TestPixelLength(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"10", "10px"},
		{" 12.5 ", "12.5px"},
		{"-4", "-4px"},
		{"2rem", "2rem"},
		{"50%", "50%"},
		{"10PX", "10px"},
		{"100vh", "100vh"},
		{"abc", ""},
		{"10pt", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := PixelLength(tt.in); got != tt.want {
			t.Errorf("PixelLength(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBoxShorthand(t *testing.T) {
	tests := []struct {
		in        string
		allowAuto bool
		want      string
	}{
		{"10", false, "10px 10px 10px 10px"},
		{"10 20", false, "10px 20px 10px 20px"},
		{"10 20 30", false, "10px 20px 30px 20px"},
		{"1 2 3 4", false, "1px 2px 3px 4px"},
		{"10,20", false, "10px 20px 10px 20px"},
		{"", false, "0"},
		{"0 auto", true, "0px auto 0px auto"},
		{"0 auto", false, ""},
		{"1 2 3 4 5", false, ""},
		{"wide", false, ""},
	}
	for _, tt := range tests {
		if got := BoxShorthand(tt.in, tt.allowAuto); got != tt.want {
			t.Errorf("BoxShorthand(%q, %v) = %q, want %q", tt.in, tt.allowAuto, got, tt.want)
		}
	}
}

func TestRadiusShorthand(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"pill", "9999px"},
		{"none", "0"},
		{"off", "0"},
		{"12", "12px"},
		{"12 50%", "12px 50%"},
		{"round 0", "9999px 0"},
		{"", ""},
		{"soft", ""},
	}
	for _, tt := range tests {
		if got := RadiusShorthand(tt.in); got != tt.want {
			t.Errorf("RadiusShorthand(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScaleBox(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"10px 20px 10px 20px", "4px 8px 4px 8px"},
		{"0px auto 0px auto", "0px auto 0px auto"},
		{"15px 2rem", "6px 2rem"},
		{"33px", "13.2px"},
	}
	for _, tt := range tests {
		if got := ScaleBox(tt.in, MobileFactor); got != tt.want {
			t.Errorf("ScaleBox(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRatio(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"16/9", "16/9"},
		{"4 : 3", "4/3"},
		{"1x1", "1/1"},
		{"0/3", ""},
		{"wide", ""},
	}
	for _, tt := range tests {
		if got := Ratio(tt.in); got != tt.want {
			t.Errorf("Ratio(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFontWeight(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"bold", "700"},
		{"Semi-Bold", "600"},
		{"500", "500"},
		{"550", ""},
		{"fat", ""},
	}
	for _, tt := range tests {
		if got := FontWeight(tt.in); got != tt.want {
			t.Errorf("FontWeight(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsColorLike(t *testing.T) {
	yes := []string{"#fff", "#FFFA", "#f0f0f0", "#11223344", "rgb(0, 0, 0)", "rgba(0,0,0,.5)", "hsl(120 50% 50%)", "var(--brand)", "Red", "transparent"}
	no := []string{"", "#ff", "#12345", "blueish", "url(x.png)", "linear-gradient(red, blue)", "rgb(0,0,0"}
	for _, v := range yes {
		if !IsColorLike(v) {
			t.Errorf("IsColorLike(%q) = false, want true", v)
		}
	}
	for _, v := range no {
		if IsColorLike(v) {
			t.Errorf("IsColorLike(%q) = true, want false", v)
		}
	}
}

func TestOverlay(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"none", "transparent"},
		{"0.4", "rgba(0,0,0,0.4)"},
		{".25", "rgba(0,0,0,.25)"},
		{"1", "rgba(0,0,0,1)"},
		{"rgba(255,255,255,.3)", "rgba(255,255,255,.3)"},
		{"2", ""},
		{"dark", ""},
	}
	for _, tt := range tests {
		if got := Overlay(tt.in); got != tt.want {
			t.Errorf("Overlay(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCSSURL(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"https://x.io/a.png", `url("https://x.io/a.png")`},
		{`https://x.io/a"b.png`, `url("https://x.io/a\"b.png")`},
		{"url('a.png')", "url('a.png')"},
	}
	for _, tt := range tests {
		if got := CSSURL(tt.in); got != tt.want {
			t.Errorf("CSSURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSafeCSSValue(t *testing.T) {
	safe := []string{"1px solid #ccc", "linear-gradient(90deg, #fff 0%, #000 100%)", `url("https://x.io/a.png?x=1&y=2")`, "rgba(0,0,0,.4)"}
	unsafe := []string{"", "red; color: blue", "red}</style><script>", "a { b", "calc(1px", "/* x */ red", "<!--"}
	for _, v := range safe {
		if !SafeCSSValue(v) {
			t.Errorf("SafeCSSValue(%q) = false, want true", v)
		}
	}
	for _, v := range unsafe {
		if SafeCSSValue(v) {
			t.Errorf("SafeCSSValue(%q) = true, want false", v)
		}
	}
}

func TestEscapeHTML(t *testing.T) {
	if got, want := EscapeHTML(`<a>&"'`), "&lt;a&gt;&amp;&quot;&#39;"; got != want {
		t.Errorf("EscapeHTML() = %q, want %q", got, want)
	}
	if got, want := EscapeHTML("&amp;"), "&amp;amp;"; got != want {
		t.Errorf("EscapeHTML() = %q, want %q", got, want)
	}
}

func TestStripTags(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"<b>Hi</b> &amp; bye", "Hi & bye"},
		{`<a href="x">link</a> text`, "link text"},
		{"a < b", "a < b"},
	}
	for _, tt := range tests {
		if got := StripTags(tt.in); got != tt.want {
			t.Errorf("StripTags(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
