package scoring

import (
	"math"
	"strings"
	"testing"

	"github.com/fbarrientos/autoeval/internal/catalog"
)

func area1(t *testing.T) catalog.Area {
	t.Helper()
	a := catalog.AreaByID(1)
	if a == nil {
		t.Fatal("area 1 missing")
	}
	return *a
}

func TestAreaScore(t *testing.T) {
	a := area1(t) // questions 1-4

	t.Run("no answers scores zero", func(t *testing.T) {
		score, answered := AreaScore(a, Answers{})
		if score != 0 || answered != 0 {
			t.Errorf("got score=%v answered=%d, want 0,0", score, answered)
		}
	})

	t.Run("unanswered excluded from denominator", func(t *testing.T) {
		// Two of four questions answered: mean over 2, not 4.
		score, answered := AreaScore(a, Answers{1: 3, 2: 5})
		if answered != 2 {
			t.Errorf("answered = %d, want 2", answered)
		}
		if score != 4.0 {
			t.Errorf("score = %v, want 4.0", score)
		}
	})

	t.Run("all answered", func(t *testing.T) {
		score, _ := AreaScore(a, Answers{1: 1, 2: 2, 3: 3, 4: 4})
		if score != 2.5 {
			t.Errorf("score = %v, want 2.5", score)
		}
	})

	t.Run("answers for other areas ignored", func(t *testing.T) {
		score, answered := AreaScore(a, Answers{10: 5, 22: 5})
		if score != 0 || answered != 0 {
			t.Errorf("got score=%v answered=%d, want 0,0", score, answered)
		}
	})
}

func TestTierForScore(t *testing.T) {
	cases := []struct {
		score float64
		want  catalog.Tier
	}{
		{0, catalog.TierNovice},
		{1.99, catalog.TierNovice},
		{2.0, catalog.TierNovice},
		{2.01, catalog.TierIntegrator},
		{3.5, catalog.TierIntegrator},
		{4.0, catalog.TierIntegrator},
		{4.01, catalog.TierExpert},
		{5.0, catalog.TierExpert},
	}
	for _, tc := range cases {
		if got := TierForScore(tc.score); got != tc.want {
			t.Errorf("TierForScore(%v) = %s, want %s", tc.score, got, tc.want)
		}
	}
}

func TestProgress(t *testing.T) {
	if got := Progress(Answers{}); got != 0 {
		t.Errorf("empty progress = %d, want 0", got)
	}

	answers := Answers{}
	for _, a := range catalog.Areas() {
		for _, q := range a.Questions {
			answers[q.ID] = 3
		}
	}
	if got := Progress(answers); got != 100 {
		t.Errorf("full progress = %d, want 100", got)
	}
	if !Complete(answers) {
		t.Error("expected Complete for full answer set")
	}

	delete(answers, 1)
	if Complete(answers) {
		t.Error("expected incomplete after removing an answer")
	}
	want := int(math.Round(float64(catalog.TotalQuestions()-1) / float64(catalog.TotalQuestions()) * 100))
	if got := Progress(answers); got != want {
		t.Errorf("progress = %d, want %d", got, want)
	}
}

func TestResultsAndOverall(t *testing.T) {
	answers := Answers{}
	for _, a := range catalog.Areas() {
		for _, q := range a.Questions {
			answers[q.ID] = 4
		}
	}

	results := Results(answers)
	if len(results) != 7 {
		t.Fatalf("results = %d, want 7", len(results))
	}
	for _, r := range results {
		if r.Score != 4.0 {
			t.Errorf("area %d score = %v, want 4.0", r.Area.ID, r.Score)
		}
		if r.Tier != catalog.TierIntegrator {
			t.Errorf("area %d tier = %s, want integrator", r.Area.ID, r.Tier)
		}
	}
	if got := OverallScore(results); got != 4.0 {
		t.Errorf("overall = %v, want 4.0", got)
	}
}

func TestOverallSkipsUnansweredAreas(t *testing.T) {
	// Only area 1 answered; overall should equal its score, not be
	// diluted by the six empty areas.
	results := Results(Answers{1: 5, 2: 5, 3: 5, 4: 5})
	if got := OverallScore(results); got != 5.0 {
		t.Errorf("overall = %v, want 5.0", got)
	}
}

func TestStrengthsAndWeaknesses(t *testing.T) {
	answers := Answers{}
	// Area 1 (questions 1-4) strong, area 2 (5-7) weak, area 3 (8-11) middling.
	for _, id := range []int{1, 2, 3, 4} {
		answers[id] = 5
	}
	for _, id := range []int{5, 6, 7} {
		answers[id] = 1
	}
	for _, id := range []int{8, 9, 10, 11} {
		answers[id] = 3
	}

	results := Results(answers)

	strengths := Strengths(results)
	if len(strengths) != 1 || strengths[0].Area.ID != 1 {
		t.Errorf("strengths = %+v, want only area 1", strengths)
	}

	weaknesses := Weaknesses(results)
	if len(weaknesses) != 1 || weaknesses[0].Area.ID != 2 {
		t.Errorf("weaknesses = %+v, want only area 2", weaknesses)
	}
}

func TestSummaryText(t *testing.T) {
	if got := SummaryText(Results(Answers{})); !strings.Contains(got, "Aún no has respondido") {
		t.Errorf("empty answers: %q", got)
	}

	answers := Answers{}
	for _, a := range catalog.Areas() {
		for _, q := range a.Questions {
			answers[q.ID] = 3
		}
	}
	// Push area 1 up and area 7 down.
	for _, q := range catalog.Areas()[0].Questions {
		answers[q.ID] = 5
	}
	for _, q := range catalog.Areas()[6].Questions {
		answers[q.ID] = 1
	}

	got := SummaryText(Results(answers))
	if !strings.Contains(got, "Destacas en Compromiso Profesional") {
		t.Errorf("missing strength: %q", got)
	}
	if !strings.Contains(got, "margen de mejora en Educación Abierta") {
		t.Errorf("missing weakness: %q", got)
	}
	if !strings.Contains(got, "Tu nivel general es") {
		t.Errorf("missing overall sentence: %q", got)
	}
}

func TestSummaryTextBalanced(t *testing.T) {
	answers := Answers{}
	for _, a := range catalog.Areas() {
		for _, q := range a.Questions {
			answers[q.ID] = 3
		}
	}
	if got := SummaryText(Results(answers)); !strings.Contains(got, "equilibrado") {
		t.Errorf("balanced profile: %q", got)
	}
}
