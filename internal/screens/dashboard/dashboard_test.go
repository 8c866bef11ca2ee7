package dashboard

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

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
	if err := sess.Start(context.Background(), time.Now()); err != nil {
		t.Fatalf("start session: %v", err)
	}
	return sess
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestDashboard_Title(t *testing.T) {
	d := New(testSession(t))
	if d.Title() != "Panel" {
		t.Errorf("Title = %q", d.Title())
	}
}

func TestDashboard_EnterOpensAssessment(t *testing.T) {
	d := New(testSession(t))
	_, cmd := d.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected push command")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Error("expected PushScreenMsg")
	}
}

func TestDashboard_ShortcutsPushScreens(t *testing.T) {
	for _, key := range []rune{'r', 't', 'l', 'n'} {
		d := New(testSession(t))
		_, cmd := d.Update(keyPress(key))
		if cmd == nil {
			t.Fatalf("key %q: expected push command", key)
		}
		if _, ok := cmd().(router.PushScreenMsg); !ok {
			t.Errorf("key %q: expected PushScreenMsg", key)
		}
	}
}

func TestDashboard_SearchMode(t *testing.T) {
	d := New(testSession(t))
	d.Update(keyPress('/'))

	view := d.View(100, 30)
	if !strings.Contains(view, "Buscar") {
		t.Error("expected the search input")
	}

	for _, r := range "evaluación" {
		d.Update(keyPress(r))
	}
	view = d.View(100, 30)
	if !strings.Contains(view, "Evaluación y Retroalimentación") {
		t.Errorf("expected area hit in search results")
	}

	_, cmd := d.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected push command from search result")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Error("expected PushScreenMsg")
	}
}

func TestDashboard_SearchTooShortShowsHint(t *testing.T) {
	d := New(testSession(t))
	d.Update(keyPress('/'))
	d.Update(keyPress('e'))
	d.Update(keyPress('v'))

	if !strings.Contains(d.View(100, 30), "3 caracteres") {
		t.Error("expected minimum-length hint")
	}
}

func TestDashboard_ResetConfirm(t *testing.T) {
	sess := testSession(t)
	if err := sess.Answer(context.Background(), 1, 4); err != nil {
		t.Fatalf("answer: %v", err)
	}

	d := New(sess)
	d.Update(keyPress('x'))
	if !strings.Contains(d.View(100, 30), "Borrar todos tus datos") {
		t.Error("expected confirmation dialog")
	}

	d.Update(keyPress('n'))
	if len(sess.Answers()) != 1 {
		t.Error("cancel must not wipe answers")
	}

	d.Update(keyPress('x'))
	d.Update(keyPress('y'))
	if len(sess.Answers()) != 0 {
		t.Error("confirm must wipe answers")
	}
}

func TestDashboard_ViewListsAreas(t *testing.T) {
	d := New(testSession(t))
	view := d.View(100, 30)
	for _, want := range []string{"Compromiso Profesional", "Educación Abierta", "Progreso general"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
