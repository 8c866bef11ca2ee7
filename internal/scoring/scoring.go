// Package scoring turns raw questionnaire answers into area scores,
// competency tiers, and overall progress. All functions are pure; the
// answer map maps question id to the chosen option index.
package scoring

import (
	"math"

	"github.com/fbarrientos/autoeval/internal/catalog"
)

// Answers maps a question id to the selected option index (0–5).
type Answers map[int]int

// AreaResult is the computed outcome for one competency area.
type AreaResult struct {
	Area     catalog.Area
	Score    float64
	Tier     catalog.Tier
	Answered int
	Total    int
}

// AreaScore averages the answered option values within an area.
// Unanswered questions are excluded from the denominator. An area with
// no answers scores zero.
func AreaScore(area catalog.Area, answers Answers) (score float64, answered int) {
	sum := 0
	for _, q := range area.Questions {
		v, ok := answers[q.ID]
		if !ok {
			continue
		}
		sum += v
		answered++
	}
	if answered == 0 {
		return 0, 0
	}
	return float64(sum) / float64(answered), answered
}

// TierForScore maps a score onto a competency tier. The boundaries are
// inclusive: a score of exactly 2.0 is novice and exactly 4.0 is
// integrator.
func TierForScore(score float64) catalog.Tier {
	switch {
	case score <= 2.0:
		return catalog.TierNovice
	case score <= 4.0:
		return catalog.TierIntegrator
	default:
		return catalog.TierExpert
	}
}

// Results computes per-area outcomes for the whole catalog, in catalog
// order.
func Results(answers Answers) []AreaResult {
	areas := catalog.Areas()
	results := make([]AreaResult, 0, len(areas))
	for _, a := range areas {
		score, answered := AreaScore(a, answers)
		results = append(results, AreaResult{
			Area:     a,
			Score:    score,
			Tier:     TierForScore(score),
			Answered: answered,
			Total:    len(a.Questions),
		})
	}
	return results
}

// Progress returns the percentage of all catalog questions answered,
// rounded to the nearest integer.
func Progress(answers Answers) int {
	total := catalog.TotalQuestions()
	if total == 0 {
		return 0
	}
	answered := 0
	for _, a := range catalog.Areas() {
		for _, q := range a.Questions {
			if _, ok := answers[q.ID]; ok {
				answered++
			}
		}
	}
	return int(math.Round(float64(answered) / float64(total) * 100))
}

// Complete reports whether every catalog question has an answer.
func Complete(answers Answers) bool {
	for _, a := range catalog.Areas() {
		for _, q := range a.Questions {
			if _, ok := answers[q.ID]; !ok {
				return false
			}
		}
	}
	return true
}

// OverallScore averages the scores of all areas with at least one
// answer. Returns zero when nothing is answered.
func OverallScore(results []AreaResult) float64 {
	sum := 0.0
	counted := 0
	for _, r := range results {
		if r.Answered == 0 {
			continue
		}
		sum += r.Score
		counted++
	}
	if counted == 0 {
		return 0
	}
	return sum / float64(counted)
}

// Strengths returns the areas scoring at or above 4.0, in catalog order.
func Strengths(results []AreaResult) []AreaResult {
	var out []AreaResult
	for _, r := range results {
		if r.Answered > 0 && r.Score >= 4.0 {
			out = append(out, r)
		}
	}
	return out
}

// Weaknesses returns the areas scoring at or below 2.0, in catalog
// order. Areas with no answers are skipped so an untouched
// questionnaire does not read as seven weaknesses.
func Weaknesses(results []AreaResult) []AreaResult {
	var out []AreaResult
	for _, r := range results {
		if r.Answered > 0 && r.Score <= 2.0 {
			out = append(out, r)
		}
	}
	return out
}
