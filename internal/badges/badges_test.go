package badges

import (
	"testing"

	"github.com/fbarrientos/autoeval/internal/catalog"
	"github.com/fbarrientos/autoeval/internal/scoring"
)

func fullResults(score float64) []scoring.AreaResult {
	answers := scoring.Answers{}
	for _, a := range catalog.Areas() {
		for _, q := range a.Questions {
			answers[q.ID] = int(score)
		}
	}
	return scoring.Results(answers)
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func TestEvaluate(t *testing.T) {
	t.Run("empty snapshot earns nothing", func(t *testing.T) {
		if got := Evaluate(Snapshot{}, nil); len(got) != 0 {
			t.Errorf("earned %v, want none", got)
		}
	})

	t.Run("profile earns first steps", func(t *testing.T) {
		got := Evaluate(Snapshot{ProfileComplete: true}, nil)
		if !contains(got, "first-steps") {
			t.Errorf("earned %v, want first-steps", got)
		}
	})

	t.Run("full assessment earns area and full badges", func(t *testing.T) {
		got := Evaluate(Snapshot{Results: fullResults(3)}, nil)
		if !contains(got, "area-complete") || !contains(got, "full-assessment") {
			t.Errorf("earned %v", got)
		}
	})

	t.Run("expert tier requires a fully answered expert area", func(t *testing.T) {
		got := Evaluate(Snapshot{Results: fullResults(5)}, nil)
		if !contains(got, "expert-area") {
			t.Errorf("earned %v, want expert-area", got)
		}
		got = Evaluate(Snapshot{Results: fullResults(3)}, nil)
		if contains(got, "expert-area") {
			t.Errorf("earned expert-area at integrator scores: %v", got)
		}
	})

	t.Run("streak thresholds", func(t *testing.T) {
		got := Evaluate(Snapshot{StreakCount: 3}, nil)
		if !contains(got, "streak-3") || contains(got, "streak-7") {
			t.Errorf("earned %v at streak 3", got)
		}
		got = Evaluate(Snapshot{StreakCount: 7}, nil)
		if !contains(got, "streak-3") || !contains(got, "streak-7") {
			t.Errorf("earned %v at streak 7", got)
		}
	})

	t.Run("plan and tasks", func(t *testing.T) {
		got := Evaluate(Snapshot{PlanSummary: "resumen", TaskCount: 4}, nil)
		if !contains(got, "plan-ready") || !contains(got, "first-task") {
			t.Errorf("earned %v", got)
		}
	})
}

func TestEvaluateIdempotent(t *testing.T) {
	snap := Snapshot{ProfileComplete: true, StreakCount: 3}

	first := Evaluate(snap, nil)
	if len(first) == 0 {
		t.Fatal("expected badges on first pass")
	}

	// Already-earned ids are never re-emitted.
	second := Evaluate(snap, first)
	if len(second) != 0 {
		t.Errorf("second pass re-earned %v", second)
	}
}

func TestEarnedBadgesNotRevoked(t *testing.T) {
	// Streak dropped back to 1 but streak-3 was already earned: the
	// evaluation leaves the earned list alone and emits nothing new.
	got := Evaluate(Snapshot{StreakCount: 1}, []string{"streak-3"})
	if len(got) != 0 {
		t.Errorf("got %v, want none", got)
	}
}

func TestCatalogAndPredicatesAgree(t *testing.T) {
	if len(All()) != 8 {
		t.Errorf("catalog size = %d, want 8", len(All()))
	}
	for _, b := range All() {
		if _, ok := predicates[b.ID]; !ok {
			t.Errorf("badge %s has no predicate", b.ID)
		}
		if ByID(b.ID) == nil {
			t.Errorf("ByID(%s) = nil", b.ID)
		}
	}
	if ByID("nope") != nil {
		t.Error("expected nil for unknown badge")
	}
}
