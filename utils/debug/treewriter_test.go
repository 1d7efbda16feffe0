package debug

import "testing"

func TestTreeWriter_Line(t *testing.T) {
	tests := []struct {
		name   string
		depth  int
		format string
		args   []any
		want   string
	}{
		{"no depth", 0, "test", nil, "test\n"},
		{"depth 1", 1, "indented", nil, "  indented\n"},
		{"depth 2", 2, "double indent", nil, "    double indent\n"},
		{"with formatting", 1, "Section[%d] %q", []any{3, "faq"}, "  Section[3] \"faq\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTreeWriter()
			tw.Line(tt.depth, tt.format, tt.args...)
			if got := tw.String(); got != tt.want {
				t.Errorf("Line() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTreeWriter_TextBlock(t *testing.T) {
	tw := NewTreeWriter()
	tw.TextBlock(1, "text", "a \"b\"\n")
	tw.TextBlock(0, "empty", "")
	want := "  text: \"a \\\"b\\\"\\n\"\nempty: \n"
	if got := tw.String(); got != want {
		t.Errorf("TextBlock() = %q, want %q", got, want)
	}
}

func TestTreeWriter_Fields(t *testing.T) {
	tw := NewTreeWriter()
	tw.Fields(1, "surface", "bg", "#fff", "margin", "", "radius", "8px")
	tw.Fields(1, "empty", "bg", "", "margin", "")
	tw.Fields(0, "odd", "bg", "#000", "dangling")
	want := "  surface: bg=\"#fff\" radius=\"8px\"\nodd: bg=\"#000\"\n"
	if got := tw.String(); got != want {
		t.Errorf("Fields() = %q, want %q", got, want)
	}
}
