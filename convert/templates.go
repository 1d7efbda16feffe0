package convert

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"

	"dbc/compiler"
	"dbc/config"
)

// Values is a struct that holds variables we make available for template expansion
type Values struct {
	Context    string
	Name       string
	SourceFile string
	Title      string
	DocumentID string
	Sections   int
	Mode       string
	Language   string
}

func newValues(res *compiler.Result, src string, mode config.OutputMode, lang string) Values {
	v := Values{
		Name:       filepath.ToSlash(src),
		SourceFile: strings.TrimSuffix(filepath.Base(src), filepath.Ext(src)),
		Title:      res.Document.Scope.SEOTitle,
		DocumentID: res.Document.ID,
		Sections:   len(res.Document.Sections),
		Mode:       mode.String(),
		Language:   lang,
	}
	if v.Title == "" {
		for _, s := range res.Document.Sections {
			if !s.Title.IsBlank() {
				v.Title = strings.TrimSpace(s.Title.String())
				break
			}
		}
	}
	return v
}

func expandTemplate(name config.TemplateFieldName, field string, values Values) (string, error) {
	funcMap := sprig.TxtFuncMap()

	tmpl, err := template.New(string(name)).Funcs(funcMap).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", name, err)
	}

	values.Context = string(name)

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", err
	}
	return strings.TrimSpace(buf.String()), nil
}
