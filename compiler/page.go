package compiler

import (
	"bytes"
	"fmt"
	"html/template"

	sprig "github.com/go-task/slim-sprig/v3"
	"golang.org/x/text/language"

	"dbc/misc"
)

const pageTemplate = `<!DOCTYPE html>
<html lang="{{ .Lang }}">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<meta name="generator" content="{{ .Generator }}">
<title>{{ .Title }}</title>
{{- with .Description }}
<meta name="description" content="{{ . }}">
{{- end }}
{{- with .Keywords }}
<meta name="keywords" content="{{ join ", " . }}">
{{- end }}
<style>
{{ .CSS }}</style>
</head>
<body>
{{ .Body }}</body>
</html>
`

// PageValues is what page template gets to work with.
type PageValues struct {
	Lang        string
	Generator   string
	Title       string
	Description string
	Keywords    []string
	CSS         template.CSS
	Body        template.HTML
}

var page = template.Must(template.New("page").Funcs(sprig.FuncMap()).Parse(pageTemplate))

// Page wraps compiled result into standalone HTML document. Title falls back
// to the first visible section title and then to fallback.
func Page(res *Result, lang language.Tag, fallback string) ([]byte, error) {
	v := PageValues{
		Lang:        "en",
		Generator:   fmt.Sprintf("%s %s", misc.GetAppName(), misc.GetVersion()),
		Title:       seoTitle(&res.Document.Scope),
		Description: seoDescription(&res.Document.Scope),
		Keywords:    res.Document.Scope.SEOKeywords,
		CSS:         template.CSS(res.CSS),
		Body:        template.HTML(res.HTML),
	}
	if lang != language.Und {
		v.Lang = lang.String()
	}
	if v.Title == "" {
		for _, s := range res.Document.Sections {
			if !s.TitleHidden && !s.Title.IsBlank() {
				v.Title = s.Title.String()
				break
			}
		}
	}
	if v.Title == "" {
		v.Title = fallback
	}

	var buf bytes.Buffer
	if err := page.Execute(&buf, v); err != nil {
		return nil, fmt.Errorf("unable to execute page template: %w", err)
	}
	return buf.Bytes(), nil
}
