package session

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/fbarrientos/autoeval/internal/catalog"
	"github.com/fbarrientos/autoeval/internal/llm"
	"github.com/fbarrientos/autoeval/internal/notify"
	"github.com/fbarrientos/autoeval/internal/plan"
	"github.com/fbarrientos/autoeval/internal/profile"
	"github.com/fbarrientos/autoeval/internal/state"
	"github.com/fbarrientos/autoeval/internal/store"
)

func openSession(t *testing.T, plans *plan.Service) (*Session, *state.Store) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	states := state.New(st.KV())

	s, err := Load(context.Background(), states, plans)
	if err != nil {
		t.Fatalf("load session: %v", err)
	}
	return s, states
}

func TestStartTouchesStreak(t *testing.T) {
	s, _ := openSession(t, nil)
	ctx := context.Background()

	if err := s.Start(ctx, time.Now()); err != nil {
		t.Fatalf("start: %v", err)
	}
	if s.StreakCount() != 1 {
		t.Errorf("streak = %d, want 1", s.StreakCount())
	}
	// A second start on the same day changes nothing.
	if err := s.Start(ctx, time.Now()); err != nil {
		t.Fatalf("second start: %v", err)
	}
	if s.StreakCount() != 1 {
		t.Errorf("streak after repeat = %d, want 1", s.StreakCount())
	}
}

func TestStartDerivesWelcomeNotification(t *testing.T) {
	s, _ := openSession(t, nil)
	if err := s.Start(context.Background(), time.Now()); err != nil {
		t.Fatalf("start: %v", err)
	}

	shown := s.Notifications()
	if len(shown) == 0 {
		t.Fatal("expected at least the welcome notification")
	}
	if shown[0].ID != notify.IDWelcome {
		t.Errorf("first notification = %s, want %s", shown[0].ID, notify.IDWelcome)
	}
}

func TestSetProfileAwardsFirstSteps(t *testing.T) {
	s, _ := openSession(t, nil)
	ctx := context.Background()

	err := s.SetProfile(ctx, profile.UserProfile{Country: "Chile"})
	if err != profile.ErrUniversityRequired {
		t.Fatalf("expected university error, got %v", err)
	}
	if s.HasProfile() {
		t.Error("invalid profile must not be stored")
	}

	p := profile.UserProfile{Country: "Chile", University: profile.UniversitiesChile()[0]}
	if err := s.SetProfile(ctx, p); err != nil {
		t.Fatalf("set profile: %v", err)
	}
	if !s.HasProfile() {
		t.Error("profile not recorded")
	}
	if got := s.EarnedBadges(); len(got) != 1 || got[0] != "first-steps" {
		t.Errorf("earned = %v, want [first-steps]", got)
	}
}

func TestAnswerPersistsAndScores(t *testing.T) {
	s, states := openSession(t, nil)
	ctx := context.Background()

	area := catalog.Areas()[0]
	for _, q := range area.Questions {
		if err := s.Answer(ctx, q.ID, 4); err != nil {
			t.Fatalf("answer: %v", err)
		}
	}

	results := s.Results()
	if results[0].Answered != len(area.Questions) {
		t.Errorf("answered = %d, want %d", results[0].Answered, len(area.Questions))
	}
	if results[0].Score != 4.0 {
		t.Errorf("score = %v, want 4.0", results[0].Score)
	}

	// Completing one area earns the area-complete badge.
	found := false
	for _, id := range s.EarnedBadges() {
		if id == "area-complete" {
			found = true
		}
	}
	if !found {
		t.Errorf("earned = %v, missing area-complete", s.EarnedBadges())
	}

	// Answers survive a reload.
	reloaded, err := Load(ctx, states, nil)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got := reloaded.Answers(); got[area.Questions[0].ID] != 4 {
		t.Errorf("reloaded answer = %d, want 4", got[area.Questions[0].ID])
	}
}

func TestCompletionShownOnce(t *testing.T) {
	s, states := openSession(t, nil)
	ctx := context.Background()

	if s.CompletionShown() {
		t.Error("fresh session should not have shown completion")
	}
	if err := s.MarkCompletionShown(ctx); err != nil {
		t.Fatalf("mark: %v", err)
	}
	reloaded, err := Load(ctx, states, nil)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !reloaded.CompletionShown() {
		t.Error("completion flag lost on reload")
	}
}

func answerEverything(t *testing.T, s *Session) {
	t.Helper()
	ctx := context.Background()
	for _, a := range catalog.Areas() {
		for _, q := range a.Questions {
			if err := s.Answer(ctx, q.ID, 3); err != nil {
				t.Fatalf("answer: %v", err)
			}
		}
	}
}

// planResponse satisfies both the summary and the area response
// schemas, so it serves whichever concurrent request draws it.
const planResponse = `{"resumen":"Resumen general.","descripcion":"Texto del plan.","tareas":["Tarea uno.","Tarea dos."]}`

func waitSettled(t *testing.T, plans *plan.Service) {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for plans.Generating() {
		select {
		case <-deadline:
			t.Fatal("plan generation did not settle")
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestGeneratePlanRebuildsTasks(t *testing.T) {
	mock := llm.NewMockProvider()
	for range 8 {
		mock.AddResponse(llm.MockResponse{Content: json.RawMessage(planResponse)})
	}
	plans := plan.NewService(mock, plan.DefaultConfig())
	s, _ := openSession(t, plans)
	ctx := context.Background()
	answerEverything(t, s)

	s.GeneratePlan(ctx)
	waitSettled(t, plans)
	if err := s.SyncPlan(ctx); err != nil {
		t.Fatalf("sync: %v", err)
	}

	tasks := s.Tasks()
	if len(tasks) != 2*len(catalog.Areas()) {
		t.Fatalf("tasks = %d, want %d", len(tasks), 2*len(catalog.Areas()))
	}

	if err := s.ToggleTask(ctx, tasks[0].ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !s.HasTaskProgress() {
		t.Error("expected task progress after toggle")
	}

	// Plan-ready and first-task badges follow from the synced plan.
	earned := map[string]bool{}
	for _, id := range s.EarnedBadges() {
		earned[id] = true
	}
	for _, want := range []string{"plan-ready", "first-task", "full-assessment"} {
		if !earned[want] {
			t.Errorf("missing badge %s in %v", want, s.EarnedBadges())
		}
	}
}

func TestGeneratePlanPartialFailureKeepsTasks(t *testing.T) {
	// One of the eight concurrent requests fails. Whichever slice it
	// lands on, every area that produced content still gets its tasks.
	mock := llm.NewMockProvider()
	for range 7 {
		mock.AddResponse(llm.MockResponse{Content: json.RawMessage(planResponse)})
	}
	mock.AddResponse(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	plans := plan.NewService(mock, plan.DefaultConfig())
	s, _ := openSession(t, plans)
	ctx := context.Background()
	answerEverything(t, s)

	s.GeneratePlan(ctx)
	waitSettled(t, plans)
	if err := s.SyncPlan(ctx); err != nil {
		t.Fatalf("sync: %v", err)
	}

	atLeast := 2 * (len(catalog.Areas()) - 1)
	if got := len(s.Tasks()); got < atLeast {
		t.Fatalf("tasks = %d, want at least %d", got, atLeast)
	}
}

func TestSyncPlanPersistsAcrossRestart(t *testing.T) {
	mock := llm.NewMockProvider()
	for range 8 {
		mock.AddResponse(llm.MockResponse{Content: json.RawMessage(planResponse)})
	}
	plans := plan.NewService(mock, plan.DefaultConfig())
	s, states := openSession(t, plans)
	ctx := context.Background()
	answerEverything(t, s)

	s.GeneratePlan(ctx)
	waitSettled(t, plans)
	if err := s.SyncPlan(ctx); err != nil {
		t.Fatalf("sync: %v", err)
	}

	reloaded, err := Load(ctx, states, nil)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got := len(reloaded.Tasks()); got != 2*len(catalog.Areas()) {
		t.Errorf("reloaded tasks = %d, want %d", got, 2*len(catalog.Areas()))
	}
	saved, err := states.Plan(ctx)
	if err != nil {
		t.Fatalf("load plan: %v", err)
	}
	if saved.Summary.Content != "Resumen general." {
		t.Errorf("persisted summary = %q", saved.Summary.Content)
	}
}

func TestLoadRebuildsMissingTasks(t *testing.T) {
	// An exit between plan generation and task extraction leaves a
	// saved plan with no task list; loading recovers it.
	_, states := openSession(t, nil)
	ctx := context.Background()

	p := plan.NewPlan()
	p.Areas[1] = plan.State{Content: "Intro.\n- Acción uno.\n- Acción dos."}
	if err := states.SavePlan(ctx, p); err != nil {
		t.Fatalf("save plan: %v", err)
	}

	reloaded, err := Load(ctx, states, nil)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got := len(reloaded.Tasks()); got != 2 {
		t.Fatalf("tasks = %d, want 2", got)
	}
	if reloaded.Tasks()[0].Text != "Acción uno." {
		t.Errorf("task text = %q", reloaded.Tasks()[0].Text)
	}
}

func TestResetAll(t *testing.T) {
	s, states := openSession(t, nil)
	ctx := context.Background()

	if err := s.Start(ctx, time.Now()); err != nil {
		t.Fatalf("start: %v", err)
	}
	p := profile.UserProfile{Country: "Argentina"}
	if err := s.SetProfile(ctx, p); err != nil {
		t.Fatalf("set profile: %v", err)
	}
	if err := s.Answer(ctx, 1, 5); err != nil {
		t.Fatalf("answer: %v", err)
	}

	if err := s.ResetAll(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if s.HasProfile() || len(s.Answers()) != 0 || s.StreakCount() != 0 {
		t.Error("in-memory state not cleared")
	}

	reloaded, err := Load(ctx, states, nil)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.HasProfile() || len(reloaded.Answers()) != 0 {
		t.Error("persisted state not cleared")
	}
}
