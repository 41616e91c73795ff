package api

import (
	"fmt"
	"html/template"
	"path/filepath"

	"github.com/frabiasco/assenze/internal/i18n"
)

func templateFuncMap() template.FuncMap {
	return template.FuncMap{
		"formatDateShort": i18n.FormatDateShort,
	}
}

func parsePageTemplates(templateDir string, funcMap template.FuncMap, pages []string) (map[string]*template.Template, error) {
	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		parsed, err := template.New("base").Funcs(funcMap).ParseFiles(
			filepath.Join(templateDir, "base.html"),
			filepath.Join(templateDir, page+".html"),
		)
		if err != nil {
			return nil, fmt.Errorf("parse page template %s: %w", page, err)
		}
		templates[page] = parsed
	}
	return templates, nil
}
