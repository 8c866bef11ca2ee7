// Package tasks shows the checklist extracted from the development
// plan and tracks completion.
package tasks

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/fbarrientos/autoeval/internal/plan"
	"github.com/fbarrientos/autoeval/internal/screen"
	"github.com/fbarrientos/autoeval/internal/session"
	"github.com/fbarrientos/autoeval/internal/ui/components"
	"github.com/fbarrientos/autoeval/internal/ui/layout"
	"github.com/fbarrientos/autoeval/internal/ui/theme"
)

// TasksScreen is the actionable checklist.
type TasksScreen struct {
	sess     *session.Session
	selected int
	errMsg   string
}

var _ screen.Screen = (*TasksScreen)(nil)
var _ screen.KeyHintProvider = (*TasksScreen)(nil)

// New creates the tasks screen.
func New(sess *session.Session) *TasksScreen {
	return &TasksScreen{sess: sess}
}

func (t *TasksScreen) Init() tea.Cmd {
	return nil
}

func (t *TasksScreen) Title() string {
	return "Tareas"
}

func (t *TasksScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navegar"},
		{Key: "Espacio", Description: "Marcar"},
		{Key: "Esc", Description: "Volver"},
	}
}

func (t *TasksScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return t, nil
	}

	items := t.sess.Tasks()
	switch kmsg.String() {
	case "up", "k":
		if t.selected > 0 {
			t.selected--
		}
	case "down", "j":
		if t.selected < len(items)-1 {
			t.selected++
		}
	case " ", "enter":
		if t.selected < len(items) {
			if err := t.sess.ToggleTask(context.Background(), items[t.selected].ID); err != nil {
				t.errMsg = err.Error()
			}
		}
	}
	return t, nil
}

func (t *TasksScreen) View(width, height int) string {
	items := t.sess.Tasks()
	if len(items) == 0 {
		empty := theme.Hint.Render("No hay tareas todavía.\nGenera un plan de desarrollo desde Resultados.")
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(empty)
	}

	bar := components.NewProgressBar(
		"Avance", float64(plan.TaskProgress(items))/100, true, min(60, width-8))

	var b strings.Builder
	lastArea := ""
	for i, task := range items {
		if task.AreaTitle != lastArea {
			if lastArea != "" {
				b.WriteString("\n")
			}
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(task.AreaTitle))
			b.WriteString("\n")
			lastArea = task.AreaTitle
		}

		box := "[ ]"
		style := theme.Unselected
		if task.Completed {
			box = "[x]"
			style = lipgloss.NewStyle().Foreground(theme.TextDim).Strikethrough(true)
		}
		marker := "  "
		if i == t.selected {
			marker = "▸ "
			if !task.Completed {
				style = theme.Selected
			}
		}

		text := task.Text
		if len([]rune(text)) > 60 {
			text = string([]rune(text)[:59]) + "…"
		}
		b.WriteString(style.Render(marker + box + " " + text))
		b.WriteString("\n")
	}
	if t.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(theme.Negative.Render(t.errMsg))
	}

	card := theme.Card.Width(min(72, width-4)).Render(strings.TrimRight(b.String(), "\n"))
	content := bar.View() + "\n\n" + card

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
