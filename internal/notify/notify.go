// Package notify derives the notification feed from the current app
// state and maintains the persisted history with an upsert-by-id rule.
package notify

import (
	"fmt"
	"time"

	"github.com/fbarrientos/autoeval/internal/badges"
	"github.com/fbarrientos/autoeval/internal/scoring"
)

// displayCap limits how many notifications the UI shows. The persisted
// history is not capped.
const displayCap = 4

// Well-known notification ids. Badge notifications use "badge:<id>".
const (
	IDWelcome   = "welcome"
	IDProgress  = "progress"
	IDRemaining = "remaining"
	IDNextStep  = "next-step"
	IDStreak    = "streak"
)

// Notification is one entry in the feed.
type Notification struct {
	ID    string    `json:"id"`
	Text  string    `json:"text"`
	Time  time.Time `json:"time"`
	IsNew bool      `json:"is_new"`
}

// BadgeID returns the notification id for an earned badge.
func BadgeID(badgeID string) string {
	return "badge:" + badgeID
}

// Upsert merges one notification into the history by id. An exact
// duplicate (same id, same text) is a no-op; a same-id entry with
// different text is replaced in place and marked new; a new id is
// prepended. The returned slice is a fresh copy either way.
func Upsert(history []Notification, n Notification) []Notification {
	for i, existing := range history {
		if existing.ID != n.ID {
			continue
		}
		if existing.Text == n.Text {
			return history
		}
		out := make([]Notification, len(history))
		copy(out, history)
		n.IsNew = true
		out[i] = n
		return out
	}
	n.IsNew = true
	out := make([]Notification, 0, len(history)+1)
	out = append(out, n)
	out = append(out, history...)
	return out
}

// Display returns the most recent entries up to the display cap.
func Display(history []Notification) []Notification {
	if len(history) <= displayCap {
		return history
	}
	return history[:displayCap]
}

// MarkAllRead clears the IsNew flag on every entry.
func MarkAllRead(history []Notification) []Notification {
	out := make([]Notification, len(history))
	for i, n := range history {
		n.IsNew = false
		out[i] = n
	}
	return out
}

// Inputs is the state snapshot the deriver reads.
type Inputs struct {
	Results     []scoring.AreaResult
	Progress    int
	StreakCount int
	NewBadgeIDs []string
}

// Derive recomputes the condition-driven notifications and merges them
// into history via Upsert. Badge notifications are emitted only for the
// ids in NewBadgeIDs, so an already-earned badge never reappears.
func Derive(history []Notification, in Inputs, now time.Time) []Notification {
	history = Upsert(history, Notification{
		ID:   IDWelcome,
		Text: "¡Te damos la bienvenida a la autoevaluación!",
		Time: now,
	})

	if in.Progress > 0 && in.Progress < 100 {
		history = Upsert(history, Notification{
			ID:   IDProgress,
			Text: fmt.Sprintf("Llevas un %d%% completado. ¡Sigue así!", in.Progress),
			Time: now,
		})
	}

	left := 0
	for _, r := range in.Results {
		left += r.Total - r.Answered
	}
	if left > 0 {
		history = Upsert(history, Notification{
			ID:   IDRemaining,
			Text: fmt.Sprintf("Te quedan %d preguntas para finalizar.", left),
			Time: now,
		})
	}

	if next := leastProgressedArea(in.Results); next != nil {
		history = Upsert(history, Notification{
			ID:   IDNextStep,
			Text: fmt.Sprintf("Tu área con menor progreso es %s. ¿Continuamos por ahí?", next.Area.Title),
			Time: now,
		})
	}

	if in.StreakCount >= 2 {
		history = Upsert(history, Notification{
			ID:   IDStreak,
			Text: fmt.Sprintf("¡Llevas %d días seguidos! No pierdas la racha.", in.StreakCount),
			Time: now,
		})
	}

	for _, id := range in.NewBadgeIDs {
		b := badges.ByID(id)
		if b == nil {
			continue
		}
		history = Upsert(history, Notification{
			ID:   BadgeID(id),
			Text: fmt.Sprintf("¡Insignia desbloqueada: %s!", b.Title),
			Time: now,
		})
	}

	return history
}

// leastProgressedArea picks the started-but-unfinished area with the
// lowest progress. Ties keep catalog order.
func leastProgressedArea(results []scoring.AreaResult) *scoring.AreaResult {
	var best *scoring.AreaResult
	for i := range results {
		r := &results[i]
		if r.Answered == 0 || r.Answered == r.Total {
			continue
		}
		if best == nil || ratio(r) < ratio(best) {
			best = r
		}
	}
	return best
}

func ratio(r *scoring.AreaResult) float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Answered) / float64(r.Total)
}
