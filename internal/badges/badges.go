// Package badges defines the achievement catalog and the earn-once
// evaluation over a snapshot of the user's progress.
package badges

import (
	"github.com/fbarrientos/autoeval/internal/catalog"
	"github.com/fbarrientos/autoeval/internal/scoring"
)

// Badge is one achievement in the fixed catalog.
type Badge struct {
	ID          string
	Title       string
	Description string
}

// Snapshot is everything badge predicates look at. The caller builds it
// from the current app state.
type Snapshot struct {
	ProfileComplete bool
	Results         []scoring.AreaResult
	PlanSummary     string
	TaskCount       int
	StreakCount     int
}

// All returns the badge catalog in display order.
func All() []Badge {
	return badgeCatalog
}

// ByID returns the badge with the given id, or nil.
func ByID(id string) *Badge {
	for i := range badgeCatalog {
		if badgeCatalog[i].ID == id {
			return &badgeCatalog[i]
		}
	}
	return nil
}

// Evaluate returns the ids of badges newly earned by the snapshot,
// excluding any already in earned. Badges are never revoked: once an id
// is in earned it stays there even if the condition no longer holds.
func Evaluate(snap Snapshot, earned []string) []string {
	have := make(map[string]bool, len(earned))
	for _, id := range earned {
		have[id] = true
	}

	var fresh []string
	for _, b := range badgeCatalog {
		if have[b.ID] {
			continue
		}
		if predicates[b.ID](snap) {
			fresh = append(fresh, b.ID)
		}
	}
	return fresh
}

var badgeCatalog = []Badge{
	{ID: "first-steps", Title: "Primeros Pasos", Description: "Completaste tu perfil y comenzaste la autoevaluación."},
	{ID: "area-complete", Title: "Área Completa", Description: "Respondiste todas las preguntas de un área."},
	{ID: "full-assessment", Title: "Evaluación Completa", Description: "Respondiste las 24 preguntas de las siete áreas."},
	{ID: "plan-ready", Title: "Plan en Marcha", Description: "Generaste tu primer plan de desarrollo personalizado."},
	{ID: "first-task", Title: "Manos a la Obra", Description: "Tu plan incluye tareas concretas para trabajar."},
	{ID: "streak-3", Title: "Constancia", Description: "Usaste la aplicación tres días seguidos."},
	{ID: "streak-7", Title: "Semana Perfecta", Description: "Usaste la aplicación siete días seguidos."},
	{ID: "expert-area", Title: "Nivel Experto", Description: "Alcanzaste el nivel experto en un área completa."},
}

var predicates = map[string]func(Snapshot) bool{
	"first-steps": func(s Snapshot) bool {
		return s.ProfileComplete
	},
	"area-complete": func(s Snapshot) bool {
		for _, r := range s.Results {
			if r.Total > 0 && r.Answered == r.Total {
				return true
			}
		}
		return false
	},
	"full-assessment": func(s Snapshot) bool {
		if len(s.Results) == 0 {
			return false
		}
		for _, r := range s.Results {
			if r.Answered < r.Total {
				return false
			}
		}
		return true
	},
	"plan-ready": func(s Snapshot) bool {
		return s.PlanSummary != ""
	},
	"first-task": func(s Snapshot) bool {
		return s.TaskCount > 0
	},
	"streak-3": func(s Snapshot) bool {
		return s.StreakCount >= 3
	},
	"streak-7": func(s Snapshot) bool {
		return s.StreakCount >= 7
	},
	"expert-area": func(s Snapshot) bool {
		for _, r := range s.Results {
			if r.Answered == r.Total && r.Total > 0 && r.Tier == catalog.TierExpert {
				return true
			}
		}
		return false
	},
}
