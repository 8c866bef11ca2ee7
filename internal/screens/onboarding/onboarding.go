// Package onboarding collects the user profile before the first
// assessment: country, and university for users in Chile.
package onboarding

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/fbarrientos/autoeval/internal/profile"
	"github.com/fbarrientos/autoeval/internal/router"
	"github.com/fbarrientos/autoeval/internal/screen"
	"github.com/fbarrientos/autoeval/internal/screens/dashboard"
	"github.com/fbarrientos/autoeval/internal/session"
	"github.com/fbarrientos/autoeval/internal/ui/layout"
	"github.com/fbarrientos/autoeval/internal/ui/theme"
)

type step int

const (
	stepCountry step = iota
	stepUniversity
)

// OnboardingScreen walks through the profile questions.
type OnboardingScreen struct {
	sess     *session.Session
	step     step
	options  []string
	selected int
	country  string
	errMsg   string
}

var _ screen.Screen = (*OnboardingScreen)(nil)
var _ screen.KeyHintProvider = (*OnboardingScreen)(nil)

// New creates the onboarding screen at the country step.
func New(sess *session.Session) *OnboardingScreen {
	return &OnboardingScreen{
		sess:    sess,
		step:    stepCountry,
		options: profile.Countries(),
	}
}

func (o *OnboardingScreen) Init() tea.Cmd {
	return nil
}

func (o *OnboardingScreen) Title() string {
	return "Bienvenida"
}

func (o *OnboardingScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navegar"},
		{Key: "Enter", Description: "Seleccionar"},
		{Key: "Ctrl+C", Description: "Salir"},
	}
}

func (o *OnboardingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if o.selected > 0 {
			o.selected--
		}
	case "down", "j":
		if o.selected < len(o.options)-1 {
			o.selected++
		}
	case "enter":
		return o.choose()
	}
	return o, nil
}

// choose advances to the next step or saves the finished profile.
func (o *OnboardingScreen) choose() (screen.Screen, tea.Cmd) {
	choice := o.options[o.selected]

	if o.step == stepCountry {
		o.country = choice
		if choice == "Chile" {
			o.step = stepUniversity
			o.options = profile.UniversitiesChile()
			o.selected = 0
			o.errMsg = ""
			return o, nil
		}
		return o.save(profile.UserProfile{Country: choice})
	}

	return o.save(profile.UserProfile{Country: o.country, University: choice})
}

func (o *OnboardingScreen) save(p profile.UserProfile) (screen.Screen, tea.Cmd) {
	if err := o.sess.SetProfile(context.Background(), p); err != nil {
		o.errMsg = err.Error()
		return o, nil
	}
	return o, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: dashboard.New(o.sess)}
	}
}

func (o *OnboardingScreen) View(width, height int) string {
	title := theme.Title.Render("Autoevaluación de Competencias Digitales Docentes")
	subtitle := theme.Subtitle.Render("Basada en el marco europeo DigCompEdu")

	prompt := "¿En qué país trabajas?"
	if o.step == stepUniversity {
		prompt = "¿En qué universidad trabajas?"
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(prompt))
	b.WriteString("\n\n")

	// Show a window of options around the selection so long lists fit.
	const window = 12
	start := o.selected - window/2
	if start < 0 {
		start = 0
	}
	end := start + window
	if end > len(o.options) {
		end = len(o.options)
		if start = end - window; start < 0 {
			start = 0
		}
	}

	for i := start; i < end; i++ {
		if i == o.selected {
			b.WriteString(theme.Selected.Render("  ▸ " + o.options[i]))
		} else {
			b.WriteString(theme.Unselected.Render("    " + o.options[i]))
		}
		b.WriteString("\n")
	}

	if o.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(theme.Negative.Render("  " + o.errMsg))
	}

	card := theme.Card.Width(min(60, width-4)).Render(b.String())
	content := title + "\n" + subtitle + "\n\n" + card

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
