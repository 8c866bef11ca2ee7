// Package achievements shows the badge catalog with earned state and
// the daily streak.
package achievements

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/fbarrientos/autoeval/internal/badges"
	"github.com/fbarrientos/autoeval/internal/screen"
	"github.com/fbarrientos/autoeval/internal/session"
	"github.com/fbarrientos/autoeval/internal/ui/layout"
	"github.com/fbarrientos/autoeval/internal/ui/theme"
)

// AchievementsScreen lists every badge, earned or locked.
type AchievementsScreen struct {
	sess *session.Session
}

var _ screen.Screen = (*AchievementsScreen)(nil)
var _ screen.KeyHintProvider = (*AchievementsScreen)(nil)

// New creates the achievements screen.
func New(sess *session.Session) *AchievementsScreen {
	return &AchievementsScreen{sess: sess}
}

func (a *AchievementsScreen) Init() tea.Cmd {
	return nil
}

func (a *AchievementsScreen) Title() string {
	return "Logros"
}

func (a *AchievementsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Volver"},
	}
}

func (a *AchievementsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return a, nil
}

func (a *AchievementsScreen) View(width, height int) string {
	earned := make(map[string]bool)
	for _, id := range a.sess.EarnedBadges() {
		earned[id] = true
	}

	streakLine := theme.Subtitle.Render(
		fmt.Sprintf("Racha actual: %d %s", a.sess.StreakCount(), dayWord(a.sess.StreakCount())))

	var b strings.Builder
	for _, badge := range badges.All() {
		mark := "○"
		titleStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
		descStyle := theme.Hint
		if earned[badge.ID] {
			mark = "●"
			titleStyle = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
			descStyle = lipgloss.NewStyle().Foreground(theme.Text)
		}
		b.WriteString(titleStyle.Render(fmt.Sprintf("  %s %s", mark, badge.Title)))
		b.WriteString("\n")
		b.WriteString(descStyle.Render("     " + badge.Description))
		b.WriteString("\n\n")
	}

	card := theme.Card.Width(min(68, width-4)).Render(strings.TrimRight(b.String(), "\n"))
	content := streakLine + "\n\n" + card

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func dayWord(n int) string {
	if n == 1 {
		return "día seguido"
	}
	return "días seguidos"
}
