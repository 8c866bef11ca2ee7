package scoring

import (
	"fmt"
	"strings"
)

// SummaryText builds the one-paragraph profile reading shown alongside
// the results: overall level, strongest areas and the ones with the
// most room to grow, in catalog order.
func SummaryText(results []AreaResult) string {
	answered := 0
	for _, r := range results {
		answered += r.Answered
	}
	if answered == 0 {
		return "Aún no has respondido ninguna pregunta. Completa la autoevaluación para conocer tu perfil."
	}

	overall := OverallScore(results)
	parts := []string{fmt.Sprintf("Tu nivel general es %s (%.2f sobre 5).", TierForScore(overall).Label(), overall)}

	if strengths := Strengths(results); len(strengths) > 0 {
		parts = append(parts, fmt.Sprintf("Destacas en %s.", joinTitles(strengths)))
	}
	if weaknesses := Weaknesses(results); len(weaknesses) > 0 {
		parts = append(parts, fmt.Sprintf("Tienes margen de mejora en %s.", joinTitles(weaknesses)))
	}
	if len(parts) == 1 {
		parts = append(parts, "Tu perfil es equilibrado, sin áreas especialmente fuertes ni débiles.")
	}
	return strings.Join(parts, " ")
}

func joinTitles(results []AreaResult) string {
	titles := make([]string, len(results))
	for i, r := range results {
		titles[i] = r.Area.Title
	}
	if len(titles) == 1 {
		return titles[0]
	}
	return strings.Join(titles[:len(titles)-1], ", ") + " y " + titles[len(titles)-1]
}
