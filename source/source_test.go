package source

import (
	"reflect"
	"strings"
	"testing"

	"golang.org/x/text/encoding/charmap"
)

func TestLineSplitKeepsLinks(t *testing.T) {
	l := Line{{Text: "a|b "}, {Text: "c|d", URL: "https://x.io"}}
	got := l.Split("|")
	want := []Line{
		{{Text: "a"}},
		{{Text: "b "}, {Text: "c", URL: "https://x.io"}},
		{{Text: "d", URL: "https://x.io"}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Split() = %#v, want %#v", got, want)
	}
}

func TestLineTrimSpace(t *testing.T) {
	l := Line{{Text: "  see "}, {Text: "docs", URL: "u"}, {Text: " \t"}}
	want := Line{{Text: "see "}, {Text: "docs", URL: "u"}}
	if got := l.TrimSpace(); !reflect.DeepEqual(got, want) {
		t.Errorf("TrimSpace() = %#v, want %#v", got, want)
	}
	if got := Plain("   ").TrimSpace(); got != nil {
		t.Errorf("TrimSpace() of blank line = %#v, want nil", got)
	}
}

func TestLineAppendMerges(t *testing.T) {
	var l Line
	l = l.Append(Span{Text: "a"})
	l = l.Append(Span{Text: "b"})
	l = l.Append(Span{Text: "c", URL: "u"})
	l = l.Append(Span{Text: ""})
	if len(l) != 2 || l.String() != "abc" || !l.HasLinks() {
		t.Errorf("Append() = %#v", l)
	}
}

func TestReadText(t *testing.T) {
	src := "# Title\n[LAYOUT:cards]\nHello   world\r\n\n- one\n  - two\n1. three\nafter\n"
	got, err := ReadText(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ReadText() error = %v", err)
	}
	want := []Token{
		Heading(1, Plain("Title")),
		Paragraph(Plain("[LAYOUT:cards]")),
		Paragraph(Plain("Hello world")),
		List(
			ListItem{Depth: 0, Text: Plain("one")},
			ListItem{Depth: 1, Text: Plain("two")},
			ListItem{Depth: 0, Ordered: true, Text: Plain("three")},
		),
		Paragraph(Plain("after")),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ReadText() = %#v\nwant %#v", got, want)
	}
}

func TestReadMarkdown(t *testing.T) {
	src := "# Title\n\n[LAYOUT:cards]\n[COLS:3]\n\nSee [docs](https://x.io) now.\n\n- a\n  - b\n\n![Alt](pic.png)\n"
	got := ReadMarkdown([]byte(src))
	want := []Token{
		Heading(1, Plain("Title")),
		Paragraph(Plain("[LAYOUT:cards]"), Plain("[COLS:3]")),
		Paragraph(Line{{Text: "See "}, {Text: "docs", URL: "https://x.io"}, {Text: " now."}}),
		List(
			ListItem{Depth: 0, Text: Plain("a")},
			ListItem{Depth: 1, Text: Plain("b")},
		),
		Paragraph(Plain("[IMG:pic.png|Alt]")),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ReadMarkdown() = %#v\nwant %#v", got, want)
	}
}

func TestReadHTML(t *testing.T) {
	src := `<html><head><title>T</title><style>p{}</style></head><body>` +
		`<h2>Head</h2><p>One<br>Two <a href="https://x.io">link</a></p>` +
		`<ul><li>a<ul><li>b</li></ul></li><li>c</li></ul><div>tail</div><script>x()</script></body></html>`
	got, err := ReadHTML(strings.NewReader(src), "text/html; charset=utf-8")
	if err != nil {
		t.Fatalf("ReadHTML() error = %v", err)
	}
	want := []Token{
		Heading(2, Plain("Head")),
		Paragraph(Plain("One"), Line{{Text: "Two "}, {Text: "link", URL: "https://x.io"}}),
		List(
			ListItem{Depth: 0, Text: Plain("a")},
			ListItem{Depth: 1, Text: Plain("b")},
			ListItem{Depth: 0, Text: Plain("c")},
		),
		Paragraph(Plain("tail")),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ReadHTML() = %#v\nwant %#v", got, want)
	}
}

func TestReadDecodes(t *testing.T) {
	t.Run("bom", func(t *testing.T) {
		got, err := Read(strings.NewReader("\xef\xbb\xbfhello"), FormatText, nil)
		if err != nil {
			t.Fatalf("Read() error = %v", err)
		}
		if len(got) != 1 || got[0].Lines[0].String() != "hello" {
			t.Errorf("Read() = %#v", got)
		}
	})
	t.Run("forced", func(t *testing.T) {
		got, err := Read(strings.NewReader("\xcf\xf0\xe8\xe2\xe5\xf2"), FormatText, charmap.Windows1251)
		if err != nil {
			t.Fatalf("Read() error = %v", err)
		}
		if len(got) != 1 || got[0].Lines[0].String() != "Привет" {
			t.Errorf("Read() = %#v", got)
		}
	})
	t.Run("unknown", func(t *testing.T) {
		if _, err := Read(strings.NewReader(""), FormatUnknown, nil); err == nil {
			t.Error("Read() expected error for unknown format")
		}
	})
}

func TestFormatFromName(t *testing.T) {
	tests := map[string]Format{
		"a.txt":        FormatText,
		"dir/b.MD":     FormatMarkdown,
		"export.htm":   FormatHTML,
		"page.html":    FormatHTML,
		"archive.zip":  FormatUnknown,
		"no-extension": FormatUnknown,
	}
	for name, want := range tests {
		if got := FormatFromName(name); got != want {
			t.Errorf("FormatFromName(%q) = %q, want %q", name, got, want)
		}
	}
}
