// Package results shows the scored assessment: per-area levels and
// recommendations, the AI development plan, and the HTML export.
package results

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/fbarrientos/autoeval/internal/catalog"
	"github.com/fbarrientos/autoeval/internal/export"
	"github.com/fbarrientos/autoeval/internal/plan"
	"github.com/fbarrientos/autoeval/internal/screen"
	"github.com/fbarrientos/autoeval/internal/scoring"
	"github.com/fbarrientos/autoeval/internal/session"
	"github.com/fbarrientos/autoeval/internal/ui/layout"
	"github.com/fbarrientos/autoeval/internal/ui/theme"
)

// ResultsScreen lists area scores and the generated plan.
type ResultsScreen struct {
	sess            *session.Session
	selected        int
	confirmingRegen bool
	statusMsg       string
	errMsg          string
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates the results screen.
func New(sess *session.Session) *ResultsScreen {
	return &ResultsScreen{sess: sess}
}

func (r *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultsScreen) Title() string {
	return "Resultados"
}

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	if r.confirmingRegen {
		return []layout.KeyHint{
			{Key: "Y", Description: "Regenerar"},
			{Key: "N", Description: "Cancelar"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Área"},
		{Key: "G", Description: "Generar plan"},
		{Key: "E", Description: "Exportar HTML"},
		{Key: "Esc", Description: "Volver"},
	}
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		return r.handleKey(key)
	}
	return r, nil
}

func (r *ResultsScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if r.confirmingRegen {
		switch msg.String() {
		case "y", "Y":
			r.confirmingRegen = false
			r.generate()
		case "n", "N", "esc":
			r.confirmingRegen = false
		}
		return r, nil
	}

	switch msg.String() {
	case "up", "k":
		if r.selected > 0 {
			r.selected--
		}
	case "down", "j":
		if r.selected < len(catalog.Areas())-1 {
			r.selected++
		}
	case "g":
		if !r.sess.PlanConfigured() {
			r.errMsg = plan.ErrNotConfigured
			return r, nil
		}
		if r.sess.HasTaskProgress() {
			r.confirmingRegen = true
			return r, nil
		}
		r.generate()
	case "e":
		r.export()
	}
	return r, nil
}

func (r *ResultsScreen) generate() {
	r.errMsg = ""
	r.statusMsg = ""
	r.sess.GeneratePlan(context.Background())
}

func (r *ResultsScreen) export() {
	doc := export.Document{
		Results: r.sess.Results(),
		Plan:    r.planSnapshot(),
	}
	if err := doc.WriteFile(export.DefaultFileName); err != nil {
		r.errMsg = err.Error()
		return
	}
	r.errMsg = ""
	r.statusMsg = fmt.Sprintf("Exportado a %s", export.DefaultFileName)
}

func (r *ResultsScreen) planSnapshot() plan.Plan {
	if plans := r.sess.Plans(); plans != nil {
		return plans.Plan()
	}
	return plan.NewPlan()
}

func (r *ResultsScreen) View(width, height int) string {
	if r.confirmingRegen {
		return r.viewConfirmRegen(width, height)
	}

	results := r.sess.Results()
	overall := scoring.OverallScore(results)
	headline := theme.Title.Render(fmt.Sprintf(
		"Nivel general: %s · %.2f / %d",
		scoring.TierForScore(overall).Label(), overall, catalog.MaxScore))

	profile := theme.Subtitle.Render(wrap(scoring.SummaryText(results), min(88, width-8)))
	table := r.viewTable(results, width)
	detail := r.viewDetail(results, width)

	var extra string
	if r.statusMsg != "" {
		extra = "\n" + theme.Positive.Render(r.statusMsg)
	}
	if r.errMsg != "" {
		extra = "\n" + theme.Negative.Render(r.errMsg)
	}

	content := headline + "\n" + profile + "\n\n" + table + "\n" + detail + extra
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (r *ResultsScreen) viewTable(results []scoring.AreaResult, width int) string {
	p := r.planSnapshot()

	var b strings.Builder
	for i, res := range results {
		marker := "    "
		style := theme.Unselected
		if i == r.selected {
			marker = "  ▸ "
			style = theme.Selected
		}

		state := "—"
		if res.Answered > 0 {
			state = fmt.Sprintf("%-10s %.2f", res.Tier.Label(), res.Score)
		}
		slice := planBadge(p.Areas[res.Area.ID])

		line := fmt.Sprintf("%s%-42s %-16s %s", marker, res.Area.Title, state, slice)
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return theme.Card.Width(min(78, width-4)).Render(strings.TrimRight(b.String(), "\n"))
}

// planBadge summarizes one plan slice's state for the table.
func planBadge(st plan.State) string {
	switch {
	case st.IsLoading:
		return "…"
	case st.Error != "":
		return "✗"
	case st.Content != "":
		return "✓"
	}
	return " "
}

func (r *ResultsScreen) viewDetail(results []scoring.AreaResult, width int) string {
	if r.selected >= len(results) {
		return ""
	}
	res := results[r.selected]
	p := r.planSnapshot()

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(res.Area.Title))
	b.WriteString("\n\n")

	if res.Answered == 0 {
		b.WriteString(theme.Hint.Render("Aún no has respondido preguntas de esta área."))
	} else {
		b.WriteString(theme.Body.Render(catalog.Recommendation(res.Area.ID, res.Tier)))
	}

	st := p.Areas[res.Area.ID]
	switch {
	case st.IsLoading:
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render("Generando plan para esta área..."))
	case st.Error != "":
		b.WriteString("\n\n")
		b.WriteString(theme.Negative.Render(st.Error))
	case st.Content != "":
		b.WriteString("\n\n")
		b.WriteString(theme.Body.Render(wrap(st.Content, min(70, width-12))))
	}

	if sum := p.Summary; sum.Content != "" && !sum.IsLoading {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Resumen del plan"))
		b.WriteString("\n")
		b.WriteString(theme.Body.Render(wrap(sum.Content, min(70, width-12))))
	} else if p.Summary.IsLoading {
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render("Generando resumen del plan..."))
	}

	return theme.Card.Width(min(78, width-4)).Render(b.String())
}

func (r *ResultsScreen) viewConfirmRegen(width, height int) string {
	box := theme.Card.Width(min(56, width-4)).Render(
		theme.Negative.Render("¿Regenerar el plan?") + "\n\n" +
			theme.Body.Render("Ya marcaste tareas como completadas. Generar un\nplan nuevo reemplaza la lista de tareas y se\npierde ese avance.") + "\n\n" +
			theme.Hint.Render("Y para regenerar · N para cancelar"),
	)
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(box)
}

// wrap re-flows text to the given width, preserving bullet lines.
func wrap(text string, width int) string {
	if width < 16 {
		width = 16
	}
	var out []string
	for _, line := range strings.Split(text, "\n") {
		out = append(out, wrapLine(line, width))
	}
	return strings.Join(out, "\n")
}

func wrapLine(line string, width int) string {
	words := strings.Fields(line)
	if len(words) == 0 {
		return ""
	}
	var b strings.Builder
	length := 0
	for i, w := range words {
		wlen := len([]rune(w))
		if i > 0 {
			if length+1+wlen > width {
				b.WriteString("\n")
				length = 0
			} else {
				b.WriteString(" ")
				length++
			}
		}
		b.WriteString(w)
		length += wlen
	}
	return b.String()
}
