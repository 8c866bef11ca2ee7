// Package assessment runs the question flow for one competence area.
// Answers persist as they are given, so the flow can be abandoned and
// resumed at any point.
package assessment

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/fbarrientos/autoeval/internal/catalog"
	"github.com/fbarrientos/autoeval/internal/router"
	"github.com/fbarrientos/autoeval/internal/screen"
	"github.com/fbarrientos/autoeval/internal/screens/results"
	"github.com/fbarrientos/autoeval/internal/session"
	"github.com/fbarrientos/autoeval/internal/ui/components"
	"github.com/fbarrientos/autoeval/internal/ui/layout"
	"github.com/fbarrientos/autoeval/internal/ui/theme"
)

// AssessmentScreen presents one area's questions in order.
type AssessmentScreen struct {
	sess           *session.Session
	area           *catalog.Area
	index          int
	picker         components.OptionPicker
	showCompletion bool
	errMsg         string
}

var _ screen.Screen = (*AssessmentScreen)(nil)
var _ screen.KeyHintProvider = (*AssessmentScreen)(nil)

// New opens the flow for the given area at the given question index.
func New(sess *session.Session, areaID, questionIndex int) *AssessmentScreen {
	area := catalog.AreaByID(areaID)
	s := &AssessmentScreen{sess: sess, area: area}
	if area != nil {
		if questionIndex < 0 || questionIndex >= len(area.Questions) {
			questionIndex = 0
		}
		s.index = questionIndex
		s.loadPicker()
	}
	return s
}

func (a *AssessmentScreen) loadPicker() {
	q := a.area.Questions[a.index]
	prior := -1
	if v, ok := a.sess.Answers()[q.ID]; ok {
		prior = v
	}
	a.picker = components.NewOptionPicker(q.Text, q.Options, prior)
}

func (a *AssessmentScreen) Init() tea.Cmd {
	return nil
}

func (a *AssessmentScreen) Title() string {
	if a.area == nil {
		return "Evaluación"
	}
	return a.area.ShortTitle
}

func (a *AssessmentScreen) KeyHints() []layout.KeyHint {
	if a.showCompletion {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Ver resultados"},
			{Key: "Esc", Description: "Volver"},
		}
	}
	return []layout.KeyHint{
		{Key: "0-5", Description: "Responder"},
		{Key: "←→", Description: "Pregunta"},
		{Key: "Enter", Description: "Guardar"},
		{Key: "Esc", Description: "Volver"},
	}
}

func (a *AssessmentScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if a.area == nil {
		return a, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return a, nil
	}

	if a.showCompletion {
		if kmsg.String() == "enter" {
			a.showCompletion = false
			return a, func() tea.Msg {
				return router.PushScreenMsg{Screen: results.New(a.sess)}
			}
		}
		return a, nil
	}

	switch kmsg.String() {
	case "left", "h":
		if a.index > 0 {
			a.index--
			a.loadPicker()
		}
		return a, nil
	case "right", "l":
		if a.index < len(a.area.Questions)-1 {
			a.index++
			a.loadPicker()
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.picker, cmd = a.picker.Update(msg)
	if a.picker.Submitted {
		return a.record()
	}
	return a, cmd
}

// record saves the chosen level and advances. Finishing the very last
// unanswered question shows the completion dialog exactly once.
func (a *AssessmentScreen) record() (screen.Screen, tea.Cmd) {
	ctx := context.Background()
	q := a.area.Questions[a.index]
	if err := a.sess.Answer(ctx, q.ID, a.picker.Value()); err != nil {
		a.errMsg = err.Error()
		return a, nil
	}
	a.errMsg = ""

	if a.sess.Complete() && !a.sess.CompletionShown() {
		if err := a.sess.MarkCompletionShown(ctx); err != nil {
			a.errMsg = err.Error()
		}
		a.showCompletion = true
		return a, nil
	}

	if a.index < len(a.area.Questions)-1 {
		a.index++
		a.loadPicker()
		return a, nil
	}
	return a, func() tea.Msg { return router.PopScreenMsg{} }
}

func (a *AssessmentScreen) View(width, height int) string {
	if a.area == nil {
		return theme.Negative.Render("Área desconocida.")
	}
	if a.showCompletion {
		return a.viewCompletion(width, height)
	}

	position := theme.Subtitle.Render(
		fmt.Sprintf("%s · Pregunta %d de %d", a.area.Title, a.index+1, len(a.area.Questions)))

	answered := 0
	answers := a.sess.Answers()
	for _, q := range a.area.Questions {
		if _, ok := answers[q.ID]; ok {
			answered++
		}
	}
	bar := components.NewProgressBar(
		"", float64(answered)/float64(len(a.area.Questions)), true, min(56, width-8))

	var b strings.Builder
	b.WriteString(a.picker.View())
	if a.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(theme.Negative.Render(a.errMsg))
	}
	card := theme.Card.Width(min(72, width-4)).Render(b.String())

	content := position + "\n" + bar.View() + "\n\n" + card
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (a *AssessmentScreen) viewCompletion(width, height int) string {
	box := theme.Card.Width(min(56, width-4)).Render(
		theme.Positive.Render("¡Evaluación completa!") + "\n\n" +
			theme.Body.Render("Respondiste las 24 preguntas. Ya puedes revisar\ntus resultados y generar un plan de desarrollo\npersonalizado.") + "\n\n" +
			theme.Hint.Render("Enter para ver tus resultados"),
	)
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(box)
}
