package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/fbarrientos/autoeval/internal/router"
	"github.com/fbarrientos/autoeval/internal/screen"
	"github.com/fbarrientos/autoeval/internal/screens/dashboard"
	"github.com/fbarrientos/autoeval/internal/screens/onboarding"
	"github.com/fbarrientos/autoeval/internal/session"
	"github.com/fbarrientos/autoeval/internal/ui/layout"
)

// Options carries the dependencies for the TUI.
type Options struct {
	Session *session.Session
}

// planUpdatedMsg arrives when the plan service finished one slice.
type planUpdatedMsg struct{}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	sess   *session.Session
	router *router.Router
	width  int
	height int
}

// newAppModel picks the initial screen: onboarding until a profile
// exists, the dashboard afterwards.
func newAppModel(opts Options) AppModel {
	r := router.New(dashboard.New(opts.Session))
	if !opts.Session.HasProfile() {
		r = router.New(onboarding.New(opts.Session))
	}
	return AppModel{
		sess:   opts.Session,
		router: r,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.waitForPlanUpdate()
}

// waitForPlanUpdate blocks on the plan service's update channel. The
// subscription lives at the root so every slice result is persisted no
// matter which screen is on top when it arrives.
func (m AppModel) waitForPlanUpdate() tea.Cmd {
	plans := m.sess.Plans()
	if plans == nil {
		return nil
	}
	ch := plans.Updates()
	return func() tea.Msg {
		<-ch
		return planUpdatedMsg{}
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case planUpdatedMsg:
		// A failed write leaves the in-memory plan intact; the next
		// slice update retries it.
		_ = m.sess.SyncPlan(context.Background())
		return m, m.waitForPlanUpdate()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			// At the root the active screen may use esc itself, e.g.
			// to leave search mode.
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.sess.Progress(), m.sess.StreakCount(), m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	}
	if footerHints == nil {
		if m.router.Depth() > 1 {
			footerHints = []layout.KeyHint{
				{Key: "Esc", Description: "Volver"},
				{Key: "Ctrl+C", Description: "Salir"},
			}
		} else {
			footerHints = []layout.KeyHint{
				{Key: "↑↓", Description: "Navegar"},
				{Key: "Enter", Description: "Seleccionar"},
				{Key: "Ctrl+C", Description: "Salir"},
			}
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
