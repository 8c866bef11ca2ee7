package achievements

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fbarrientos/autoeval/internal/badges"
	"github.com/fbarrientos/autoeval/internal/profile"
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
		t.Fatalf("start: %v", err)
	}
	return sess
}

func TestAchievements_ListsAllBadges(t *testing.T) {
	a := New(testSession(t))
	view := a.View(100, 40)

	for _, b := range badges.All() {
		if !strings.Contains(view, b.Title) {
			t.Errorf("view missing badge %q", b.Title)
		}
	}
	if !strings.Contains(view, "Racha actual: 1 día seguido") {
		t.Error("expected streak line")
	}
}

func TestAchievements_EarnedBadgeMarked(t *testing.T) {
	sess := testSession(t)
	if err := sess.SetProfile(context.Background(), profile.UserProfile{Country: "Argentina"}); err != nil {
		t.Fatalf("set profile: %v", err)
	}

	a := New(sess)
	if !strings.Contains(a.View(100, 40), "● Primeros Pasos") {
		t.Error("expected earned marker on Primeros Pasos")
	}
}
