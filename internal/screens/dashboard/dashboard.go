// Package dashboard is the home screen: overall progress, the seven
// competence areas, notifications, and entry points to every flow.
package dashboard

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/fbarrientos/autoeval/internal/catalog"
	"github.com/fbarrientos/autoeval/internal/router"
	"github.com/fbarrientos/autoeval/internal/screen"
	"github.com/fbarrientos/autoeval/internal/screens/achievements"
	"github.com/fbarrientos/autoeval/internal/screens/assessment"
	"github.com/fbarrientos/autoeval/internal/screens/notifications"
	"github.com/fbarrientos/autoeval/internal/screens/results"
	"github.com/fbarrientos/autoeval/internal/screens/tasks"
	"github.com/fbarrientos/autoeval/internal/session"
	"github.com/fbarrientos/autoeval/internal/ui/components"
	"github.com/fbarrientos/autoeval/internal/ui/layout"
	"github.com/fbarrientos/autoeval/internal/ui/theme"
)

type mode int

const (
	modeBrowse mode = iota
	modeSearch
	modeConfirmReset
)

// DashboardScreen is the main navigation hub.
type DashboardScreen struct {
	sess     *session.Session
	mode     mode
	selected int
	search   components.TextInput
	errMsg   string
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.KeyHintProvider = (*DashboardScreen)(nil)

// New creates the dashboard.
func New(sess *session.Session) *DashboardScreen {
	return &DashboardScreen{
		sess:   sess,
		search: components.NewTextInput("Buscar áreas o preguntas...", false, 60),
	}
}

func (d *DashboardScreen) Init() tea.Cmd {
	return nil
}

func (d *DashboardScreen) Title() string {
	return "Panel"
}

func (d *DashboardScreen) KeyHints() []layout.KeyHint {
	switch d.mode {
	case modeSearch:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Abrir"},
			{Key: "↑↓", Description: "Navegar"},
			{Key: "Esc", Description: "Cerrar búsqueda"},
		}
	case modeConfirmReset:
		return []layout.KeyHint{
			{Key: "Y", Description: "Borrar todo"},
			{Key: "N", Description: "Cancelar"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Evaluar área"},
		{Key: "R", Description: "Resultados"},
		{Key: "T", Description: "Tareas"},
		{Key: "L", Description: "Logros"},
		{Key: "N", Description: "Avisos"},
		{Key: "/", Description: "Buscar"},
		{Key: "Ctrl+C", Description: "Salir"},
	}
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch d.mode {
	case modeSearch:
		return d.updateSearch(msg)
	case modeConfirmReset:
		return d.updateConfirmReset(msg)
	}
	return d.updateBrowse(msg)
}

func (d *DashboardScreen) updateBrowse(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}

	areas := catalog.Areas()
	switch kmsg.String() {
	case "up", "k":
		if d.selected > 0 {
			d.selected--
		}
	case "down", "j":
		if d.selected < len(areas)-1 {
			d.selected++
		}
	case "enter":
		area := areas[d.selected]
		return d, push(assessment.New(d.sess, area.ID, 0))
	case "r":
		return d, push(results.New(d.sess))
	case "t":
		return d, push(tasks.New(d.sess))
	case "l":
		return d, push(achievements.New(d.sess))
	case "n":
		return d, push(notifications.New(d.sess))
	case "/":
		d.mode = modeSearch
		d.selected = 0
		return d, d.search.Init()
	case "x":
		d.mode = modeConfirmReset
	}
	return d, nil
}

func (d *DashboardScreen) updateSearch(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		d.search, cmd = d.search.Update(msg)
		return d, cmd
	}

	matches := catalog.Search(d.search.Value())
	switch kmsg.String() {
	case "esc":
		d.mode = modeBrowse
		d.selected = 0
		return d, nil
	case "up":
		if d.selected > 0 {
			d.selected--
		}
		return d, nil
	case "down":
		if d.selected < len(matches)-1 {
			d.selected++
		}
		return d, nil
	case "enter":
		if d.selected < len(matches) {
			m := matches[d.selected]
			d.mode = modeBrowse
			d.selected = 0
			question := 0
			if m.Kind == catalog.MatchQuestion {
				question = questionIndex(m.Area, m.Question.ID)
			}
			return d, push(assessment.New(d.sess, m.Area.ID, question))
		}
		return d, nil
	}

	var cmd tea.Cmd
	d.search, cmd = d.search.Update(msg)
	d.selected = 0
	return d, cmd
}

func (d *DashboardScreen) updateConfirmReset(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}
	switch kmsg.String() {
	case "y", "Y":
		if err := d.sess.ResetAll(context.Background()); err != nil {
			d.errMsg = err.Error()
		}
		d.mode = modeBrowse
		d.selected = 0
	case "n", "N", "esc":
		d.mode = modeBrowse
	}
	return d, nil
}

func push(s screen.Screen) tea.Cmd {
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: s}
	}
}

func questionIndex(area *catalog.Area, questionID int) int {
	for i, q := range area.Questions {
		if q.ID == questionID {
			return i
		}
	}
	return 0
}

func (d *DashboardScreen) View(width, height int) string {
	if d.mode == modeConfirmReset {
		return d.viewConfirmReset(width, height)
	}

	var sections []string
	sections = append(sections, d.viewProgress(width))
	if d.mode == modeSearch {
		sections = append(sections, d.viewSearch(width))
	} else {
		sections = append(sections, d.viewAreas(width))
		sections = append(sections, d.viewNotifications(width))
	}
	if d.errMsg != "" {
		sections = append(sections, theme.Negative.Render("  "+d.errMsg))
	}

	content := strings.Join(sections, "\n\n")
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (d *DashboardScreen) viewProgress(width int) string {
	bar := components.NewProgressBar(
		"Progreso general",
		float64(d.sess.Progress())/100,
		true,
		min(64, width-8),
	)
	return bar.View()
}

func (d *DashboardScreen) viewAreas(width int) string {
	results := d.sess.Results()

	var b strings.Builder
	for i, r := range results {
		marker := "    "
		style := theme.Unselected
		if i == d.selected && d.mode == modeBrowse {
			marker = "  ▸ "
			style = theme.Selected
		}

		status := fmt.Sprintf("%d/%d", r.Answered, r.Total)
		if r.Answered == r.Total {
			status = fmt.Sprintf("%s · %.1f", r.Tier.Label(), r.Score)
		}
		line := fmt.Sprintf("%s%-42s %s", marker, r.Area.Title, status)
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	return theme.Card.Width(min(64, width-4)).Render(strings.TrimRight(b.String(), "\n"))
}

func (d *DashboardScreen) viewSearch(width int) string {
	var b strings.Builder
	b.WriteString(d.search.View())
	b.WriteString("\n\n")

	query := d.search.Value()
	matches := catalog.Search(query)
	switch {
	case len([]rune(query)) > 0 && len([]rune(strings.TrimSpace(query))) < 3:
		b.WriteString(theme.Hint.Render("  Escribe al menos 3 caracteres."))
	case len(matches) == 0 && query != "":
		b.WriteString(theme.Hint.Render("  Sin resultados."))
	default:
		for i, m := range matches {
			marker := "    "
			style := theme.Unselected
			if i == d.selected {
				marker = "  ▸ "
				style = theme.Selected
			}
			label := m.Area.Title
			if m.Kind == catalog.MatchQuestion {
				label = fmt.Sprintf("%s — %s", m.Area.ShortTitle, m.Question.Text)
			}
			if len([]rune(label)) > 56 {
				label = string([]rune(label)[:55]) + "…"
			}
			b.WriteString(style.Render(marker + label))
			b.WriteString("\n")
		}
	}

	return theme.Card.Width(min(64, width-4)).Render(strings.TrimRight(b.String(), "\n"))
}

func (d *DashboardScreen) viewNotifications(width int) string {
	shown := d.sess.Notifications()
	if len(shown) == 0 {
		return theme.Hint.Render("Sin avisos todavía.")
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true).Render("Avisos"))
	b.WriteString("\n")
	for _, n := range shown {
		dot := "  "
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if n.IsNew {
			dot = "● "
			style = lipgloss.NewStyle().Foreground(theme.Text)
		}
		b.WriteString(style.Render(dot + n.Text))
		b.WriteString("\n")
	}
	return theme.Card.Width(min(64, width-4)).Render(strings.TrimRight(b.String(), "\n"))
}

func (d *DashboardScreen) viewConfirmReset(width, height int) string {
	box := theme.Card.Width(min(56, width-4)).Render(
		theme.Negative.Render("¿Borrar todos tus datos?") + "\n\n" +
			theme.Body.Render("Se eliminarán tus respuestas, el plan generado,\nlas tareas y los logros. Esta acción no se puede\ndeshacer.") + "\n\n" +
			theme.Hint.Render("Y para confirmar · N para cancelar"),
	)
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(box)
}
