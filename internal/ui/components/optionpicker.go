package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/fbarrientos/autoeval/internal/ui/theme"
)

// OptionPicker selects one answer level for a self-assessment question.
// There is no right answer; the option index is the score it awards.
type OptionPicker struct {
	Question  string
	Options   []string
	Selected  int
	Submitted bool
}

// NewOptionPicker creates a picker. prior preselects a previously saved
// answer; pass -1 when the question is unanswered.
func NewOptionPicker(question string, options []string, prior int) OptionPicker {
	selected := 0
	if prior >= 0 && prior < len(options) {
		selected = prior
	}
	return OptionPicker{
		Question: question,
		Options:  options,
		Selected: selected,
	}
}

// Init returns nil.
func (p OptionPicker) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (p OptionPicker) Update(msg tea.Msg) (OptionPicker, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if p.Selected > 0 {
			p.Selected--
		}
		p.Submitted = false
	case "down", "j":
		if p.Selected < len(p.Options)-1 {
			p.Selected++
		}
		p.Submitted = false
	case "0", "1", "2", "3", "4", "5":
		idx := int(key[0] - '0')
		if idx < len(p.Options) {
			p.Selected = idx
			p.Submitted = true
		}
	case "enter":
		p.Submitted = true
	}

	return p, nil
}

// View renders the question with its option levels.
func (p OptionPicker) View() string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := questionStyle.Render(p.Question) + "\n\n"

	for i, opt := range p.Options {
		prefix := "  "
		if i == p.Selected {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d)  %s", prefix, i, opt)

		if i == p.Selected {
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		} else {
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	return s
}

// Value returns the selected option index.
func (p OptionPicker) Value() int {
	return p.Selected
}
