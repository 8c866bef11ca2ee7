package assessment

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/fbarrientos/autoeval/internal/catalog"
	"github.com/fbarrientos/autoeval/internal/router"
	"github.com/fbarrientos/autoeval/internal/session"
	"github.com/fbarrientos/autoeval/internal/state"
	"github.com/fbarrientos/autoeval/internal/store"
)

func testSession(t *testing.T) *session.Session {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	sess, err := session.Load(context.Background(), state.New(st.KV()), nil)
	if err != nil {
		t.Fatalf("load session: %v", err)
	}
	return sess
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestAssessment_TitleIsAreaShortTitle(t *testing.T) {
	a := New(testSession(t), 1, 0)
	if a.Title() != catalog.Areas()[0].ShortTitle {
		t.Errorf("Title = %q", a.Title())
	}
}

func TestAssessment_NumberKeyRecordsAndAdvances(t *testing.T) {
	sess := testSession(t)
	a := New(sess, 1, 0)

	a.Update(keyPress('3'))

	firstQ := catalog.Areas()[0].Questions[0]
	if got := sess.Answers()[firstQ.ID]; got != 3 {
		t.Errorf("answer = %d, want 3", got)
	}
	if !strings.Contains(a.View(100, 30), "Pregunta 2 de") {
		t.Error("expected advance to the second question")
	}
}

func TestAssessment_PriorAnswerPreselected(t *testing.T) {
	sess := testSession(t)
	q := catalog.Areas()[0].Questions[0]
	if err := sess.Answer(context.Background(), q.ID, 5); err != nil {
		t.Fatalf("answer: %v", err)
	}

	a := New(sess, 1, 0)
	if a.picker.Selected != 5 {
		t.Errorf("preselected = %d, want 5", a.picker.Selected)
	}
}

func TestAssessment_ArrowNavigation(t *testing.T) {
	a := New(testSession(t), 1, 0)
	a.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if !strings.Contains(a.View(100, 30), "Pregunta 2 de") {
		t.Error("right arrow should advance")
	}
	a.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	if !strings.Contains(a.View(100, 30), "Pregunta 1 de") {
		t.Error("left arrow should go back")
	}
}

func TestAssessment_LastAnswerPopsScreen(t *testing.T) {
	sess := testSession(t)
	area := catalog.Areas()[0]
	a := New(sess, area.ID, len(area.Questions)-1)

	_, cmd := a.Update(keyPress('2'))
	if cmd == nil {
		t.Fatal("expected pop after the area's last question")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestAssessment_CompletionDialogShownOnce(t *testing.T) {
	sess := testSession(t)
	ctx := context.Background()

	// Answer everything except the final question.
	var last catalog.Question
	for _, area := range catalog.Areas() {
		for _, q := range area.Questions {
			last = q
		}
	}
	for _, area := range catalog.Areas() {
		for _, q := range area.Questions {
			if q.ID == last.ID {
				continue
			}
			if err := sess.Answer(ctx, q.ID, 3); err != nil {
				t.Fatalf("answer: %v", err)
			}
		}
	}

	lastArea := catalog.Areas()[len(catalog.Areas())-1]
	a := New(sess, lastArea.ID, len(lastArea.Questions)-1)
	a.Update(keyPress('4'))

	if !strings.Contains(a.View(100, 30), "Evaluación completa") {
		t.Error("expected completion dialog")
	}
	if !sess.CompletionShown() {
		t.Error("completion flag not persisted")
	}

	// Enter from the dialog leads to results.
	_, cmd := a.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected push to results")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Error("expected PushScreenMsg")
	}

	// Re-answering never re-triggers the dialog.
	b := New(sess, 1, 0)
	b.Update(keyPress('1'))
	if strings.Contains(b.View(100, 30), "Evaluación completa") {
		t.Error("completion dialog must only appear once")
	}
}
