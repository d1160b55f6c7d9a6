// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package web

import (
	"embed"
	"html/template"
	"io"

	"github.com/danielhkuo/diarisk/form"
	"github.com/danielhkuo/diarisk/models"
)

//go:embed templates/*.html
var files embed.FS

var templates = template.Must(template.New("").Funcs(template.FuncMap{
	// sections are 0-indexed internally, 1-indexed for display
	"inc": func(i int) int { return i + 1 },
}).ParseFS(files, "templates/*.html"))

// SectionPage is the data for one questionnaire section view.
type SectionPage struct {
	Token    string
	Section  models.Section
	Index    int
	Total    int
	Progress float64
	Vis      form.Visibility
	Values   form.Values
	Errors   []string
	Alert    string
}

// ResultPage is the data for the prediction result view.
type ResultPage struct {
	RecordID    string
	RiskLevel   string
	Result      int
	ProbPercent string
	AssessedAt  string
	ReportURL   string
}

// RenderSection writes the section view for the active wizard step.
func RenderSection(w io.Writer, page SectionPage) error {
	return templates.ExecuteTemplate(w, "section.html", page)
}

// RenderResult writes the result view for a completed assessment.
func RenderResult(w io.Writer, page ResultPage) error {
	return templates.ExecuteTemplate(w, "result.html", page)
}
