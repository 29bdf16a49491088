// Package renderer turns report structs into markdown strings. Rendering is
// template driven: each report has a main template plus named partials, all
// embedded, so the layout can change without touching report code.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/demofolio/demofolio"
)

//go:embed templates/*.md
var templates embed.FS

// RenderSummary renders the dashboard summary to a markdown string.
func RenderSummary(s *demofolio.PortfolioSummary) string {
	partials := map[string]string{
		"summary_allocation": "templates/summary_allocation.md",
		"summary_history":    "templates/summary_history.md",
	}
	return renderTemplate("summary", "templates/summary.md", partials, s)
}

// RenderPerformance renders a performance summary to a markdown string.
func RenderPerformance(p *demofolio.PerformanceSummary) string {
	partials := map[string]string{
		"performance_movers": "templates/performance_movers.md",
	}
	return renderTemplate("performance", "templates/performance.md", partials, p)
}

// Rankings bundles the ranked accounts with the timeframe they were computed
// over, so the template can label itself.
type Rankings struct {
	Timeframe demofolio.Timeframe
	Entries   []demofolio.RankedAccount
}

// RenderRankings renders the account comparison table to a markdown string.
func RenderRankings(r *Rankings) string {
	return renderTemplate("rankings", "templates/rankings.md", nil, r)
}

// RenderInstitutions renders the connections view to a markdown string.
func RenderInstitutions(insts []demofolio.SyncedInstitution) string {
	return renderTemplate("institutions", "templates/institutions.md", nil, insts)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
