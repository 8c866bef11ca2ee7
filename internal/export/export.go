// Package export renders the assessment results and development plan
// into one self-contained HTML document. The document embeds its own
// stylesheet and an SVG radar chart; it is a write-only artifact and is
// never read back.
package export

import (
	"fmt"
	"html/template"
	"os"
	"strings"

	"github.com/fbarrientos/autoeval/internal/catalog"
	"github.com/fbarrientos/autoeval/internal/plan"
	"github.com/fbarrientos/autoeval/internal/scoring"
)

// DefaultFileName is the suggested name for the exported document.
const DefaultFileName = "plan-de-desarrollo.html"

// Document gathers everything the export renders.
type Document struct {
	Results []scoring.AreaResult
	Plan    plan.Plan
}

type areaView struct {
	Title          string
	TierLabel      string
	Score          string
	Recommendation string
	PlanHTML       template.HTML
	PlanError      string
}

type documentView struct {
	OverallTier    string
	OverallScore   string
	ProfileSummary string
	RadarSVG       template.HTML
	Areas          []areaView
	Summary        template.HTML
	SummaryError   string
}

// HTML renders the document.
func (d Document) HTML() ([]byte, error) {
	labels := make([]string, len(d.Results))
	values := make([]float64, len(d.Results))
	for i, r := range d.Results {
		labels[i] = r.Area.ShortTitle
		values[i] = r.Score
	}

	overall := scoring.OverallScore(d.Results)
	view := documentView{
		OverallTier:    scoring.TierForScore(overall).Label(),
		OverallScore:   fmt.Sprintf("%.2f", overall),
		ProfileSummary: scoring.SummaryText(d.Results),
		RadarSVG:       template.HTML(radarSVG(labels, values, catalog.MaxScore)),
		Summary:        formatPlanText(d.Plan.Summary.Content),
		SummaryError:   d.Plan.Summary.Error,
	}

	for _, r := range d.Results {
		av := areaView{
			Title:          r.Area.Title,
			TierLabel:      r.Tier.Label(),
			Score:          fmt.Sprintf("%.2f", r.Score),
			Recommendation: catalog.Recommendation(r.Area.ID, r.Tier),
		}
		if st, ok := d.Plan.Areas[r.Area.ID]; ok {
			av.PlanHTML = formatPlanText(st.Content)
			av.PlanError = st.Error
		}
		view.Areas = append(view.Areas, av)
	}

	var b strings.Builder
	if err := documentTemplate.Execute(&b, view); err != nil {
		return nil, fmt.Errorf("render export: %w", err)
	}
	return []byte(b.String()), nil
}

// WriteFile renders and writes the document to path.
func (d Document) WriteFile(path string) error {
	html, err := d.HTML()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, html, 0o644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}

// formatPlanText turns plain plan text into simple HTML: **bold**
// spans, "- " bullets into list items, remaining newlines into breaks.
func formatPlanText(text string) template.HTML {
	if text == "" {
		return ""
	}

	var b strings.Builder
	inList := false
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "- ") {
			if !inList {
				b.WriteString("<ul>")
				inList = true
			}
			b.WriteString("<li>")
			b.WriteString(inlineFormat(strings.TrimPrefix(trimmed, "- ")))
			b.WriteString("</li>")
			continue
		}
		if inList {
			b.WriteString("</ul>")
			inList = false
		}
		if trimmed == "" {
			continue
		}
		b.WriteString("<p>")
		b.WriteString(inlineFormat(trimmed))
		b.WriteString("</p>")
	}
	if inList {
		b.WriteString("</ul>")
	}
	return template.HTML(b.String())
}

// inlineFormat escapes the text and converts **bold** markers.
func inlineFormat(s string) string {
	escaped := htmlEscape(s)
	var b strings.Builder
	bold := false
	for {
		idx := strings.Index(escaped, "**")
		if idx < 0 {
			break
		}
		b.WriteString(escaped[:idx])
		if bold {
			b.WriteString("</strong>")
		} else {
			b.WriteString("<strong>")
		}
		bold = !bold
		escaped = escaped[idx+2:]
	}
	b.WriteString(escaped)
	if bold {
		b.WriteString("</strong>")
	}
	return b.String()
}

var documentTemplate = template.Must(template.New("export").Parse(`<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Plan de Desarrollo Profesional</title>
<style>
body { font-family: system-ui, -apple-system, sans-serif; background: #f1f5f9; color: #334155; margin: 0; padding: 2rem 1rem; }
main { max-width: 56rem; margin: 0 auto; background: #fff; padding: 2.5rem; border-radius: 1rem; box-shadow: 0 4px 12px rgba(15,23,42,0.08); }
header { text-align: center; border-bottom: 2px solid #e2e8f0; padding-bottom: 1.5rem; margin-bottom: 2.5rem; }
h1 { font-size: 2rem; color: #1e293b; margin: 0; }
h2 { font-size: 1.5rem; color: #334155; margin: 2.5rem 0 1.5rem; }
.overall { display: inline-block; background: #f1f5f9; border-radius: 9999px; padding: 0.5rem 1.25rem; margin-top: 1rem; }
.chart { text-align: center; margin: 2rem 0; }
.card { border: 1px solid #e2e8f0; border-radius: 0.75rem; margin-bottom: 1.5rem; overflow: hidden; page-break-inside: avoid; }
.card-head { padding: 1.25rem; border-bottom: 4px solid #0ea5e9; }
.card-head h3 { margin: 0; font-size: 1.2rem; color: #1e293b; }
.card-meta { display: flex; justify-content: space-between; margin-top: 0.5rem; font-weight: 600; }
.card-body { padding: 1.25rem; background: #f8fafc; font-size: 0.9rem; line-height: 1.6; color: #64748b; }
.card-body h4 { margin: 0 0 0.5rem; color: #475569; }
.error { color: #e11d48; font-size: 0.9rem; }
ul { padding-left: 1.25rem; }
</style>
</head>
<body>
<main>
<header>
<h1>Plan de Desarrollo Profesional</h1>
<p>Análisis de competencias y plan de acción personalizado basado en el marco DigCompEdu.</p>
<div class="overall">Nivel General: <strong>{{.OverallTier}}</strong> · Puntuación {{.OverallScore}} / 5</div>
<p>{{.ProfileSummary}}</p>
</header>

<div class="chart">{{.RadarSVG}}</div>

{{if or .Summary .SummaryError}}
<section>
<h2>Resumen del Plan</h2>
{{if .SummaryError}}<p class="error">{{.SummaryError}}</p>{{else}}{{.Summary}}{{end}}
</section>
{{end}}

<section>
<h2>Desglose y Recomendaciones por Área</h2>
{{range .Areas}}
<div class="card">
<div class="card-head">
<h3>{{.Title}}</h3>
<div class="card-meta"><span>{{.TierLabel}}</span><span>Puntuación: {{.Score}} / 5</span></div>
</div>
<div class="card-body">
<h4>Sugerencias para tu desarrollo:</h4>
<p>{{.Recommendation}}</p>
{{if .PlanError}}<p class="error">{{.PlanError}}</p>{{end}}
{{if .PlanHTML}}<h4>Plan generado por IA:</h4>{{.PlanHTML}}{{end}}
</div>
</div>
{{end}}
</section>
</main>
</body>
</html>
`))
