// Package notifications shows the recent notifications and marks them
// read when the screen opens.
package notifications

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/fbarrientos/autoeval/internal/screen"
	"github.com/fbarrientos/autoeval/internal/session"
	"github.com/fbarrientos/autoeval/internal/ui/layout"
	"github.com/fbarrientos/autoeval/internal/ui/theme"
)

// NotificationsScreen renders the display slice of the history.
type NotificationsScreen struct {
	sess   *session.Session
	errMsg string
}

var _ screen.Screen = (*NotificationsScreen)(nil)
var _ screen.KeyHintProvider = (*NotificationsScreen)(nil)

// New creates the notifications screen.
func New(sess *session.Session) *NotificationsScreen {
	return &NotificationsScreen{sess: sess}
}

// Init marks everything read; the unread markers stay visible until the
// screen is reopened.
func (n *NotificationsScreen) Init() tea.Cmd {
	sess := n.sess
	return func() tea.Msg {
		_ = sess.MarkNotificationsRead(context.Background())
		return nil
	}
}

func (n *NotificationsScreen) Title() string {
	return "Avisos"
}

func (n *NotificationsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Volver"},
	}
}

func (n *NotificationsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return n, nil
}

func (n *NotificationsScreen) View(width, height int) string {
	shown := n.sess.Notifications()
	if len(shown) == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(theme.Hint.Render("Sin avisos todavía."))
	}

	var b []string
	for _, item := range shown {
		line := theme.Body.Render("  " + item.Text)
		stamp := theme.Hint.Render("    " + item.Time.Format("02 Jan 15:04"))
		b = append(b, line+"\n"+stamp)
	}

	card := theme.Card.Width(min(64, width-4)).Render(joinLines(b))
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(card)
}

func joinLines(lines []string) string {
	out := ""
	for i, l := range lines {
		if i > 0 {
			out += "\n\n"
		}
		out += l
	}
	return out
}
