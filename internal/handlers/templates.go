package handlers

import (
	"html/template"

	"github.com/SscSPs/money_ledger/internal/utils"
	"github.com/SscSPs/money_ledger/web"
)

// templateFuncs are available in every page template.
var templateFuncs = template.FuncMap{
	"money": utils.FormatAmount,
}

// NewTemplates parses every embedded page template. Pages are looked up by
// file name, e.g. "index.html".
func NewTemplates() (*template.Template, error) {
	return template.New("").Funcs(templateFuncs).ParseFS(web.TemplatesFS, "templates/*.html")
}
