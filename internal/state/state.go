// Package state owns every persisted slice of app data. Each slice is
// serialized to its own key in the store; a missing or malformed value
// loads as the slice's zero value rather than failing the app.
package state

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/fbarrientos/autoeval/internal/notify"
	"github.com/fbarrientos/autoeval/internal/plan"
	"github.com/fbarrientos/autoeval/internal/profile"
	"github.com/fbarrientos/autoeval/internal/scoring"
	"github.com/fbarrientos/autoeval/internal/store"
	"github.com/fbarrientos/autoeval/internal/streak"
)

// Storage keys. Absence of a key is a valid initial state.
const (
	keyProfile         = "profile"
	keyAnswers         = "answers"
	keyCompletionShown = "completion_shown"
	keyPlan            = "plan"
	keyTasks           = "tasks"
	keyStreak          = "streak"
	keyBadges          = "badges"
	keyNotifications   = "notifications"
)

var allKeys = []string{
	keyProfile,
	keyAnswers,
	keyCompletionShown,
	keyPlan,
	keyTasks,
	keyStreak,
	keyBadges,
	keyNotifications,
}

// Store persists the app's state slices through a KV store.
type Store struct {
	kv store.KV
}

// New wraps a KV store.
func New(kv store.KV) *Store {
	return &Store{kv: kv}
}

// load unmarshals a key into dst. Absent keys and malformed values
// leave dst at its zero value.
func (s *Store) load(ctx context.Context, key string, dst any) error {
	raw, err := s.kv.Get(ctx, key)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if jsonErr := json.Unmarshal(raw, dst); jsonErr != nil {
		// Corrupt value: treat as absent.
		return nil
	}
	return nil
}

func (s *Store) save(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, key, raw)
}

// Profile returns the stored profile, or (zero, false) when onboarding
// has not happened.
func (s *Store) Profile(ctx context.Context) (profile.UserProfile, bool, error) {
	raw, err := s.kv.Get(ctx, keyProfile)
	if errors.Is(err, store.ErrNotFound) {
		return profile.UserProfile{}, false, nil
	}
	if err != nil {
		return profile.UserProfile{}, false, err
	}
	var p profile.UserProfile
	if jsonErr := json.Unmarshal(raw, &p); jsonErr != nil {
		return profile.UserProfile{}, false, nil
	}
	return p, true, nil
}

func (s *Store) SaveProfile(ctx context.Context, p profile.UserProfile) error {
	return s.save(ctx, keyProfile, p)
}

func (s *Store) Answers(ctx context.Context) (scoring.Answers, error) {
	answers := scoring.Answers{}
	if err := s.load(ctx, keyAnswers, &answers); err != nil {
		return nil, err
	}
	if answers == nil {
		answers = scoring.Answers{}
	}
	return answers, nil
}

func (s *Store) SaveAnswers(ctx context.Context, a scoring.Answers) error {
	return s.save(ctx, keyAnswers, a)
}

func (s *Store) CompletionShown(ctx context.Context) (bool, error) {
	var shown bool
	err := s.load(ctx, keyCompletionShown, &shown)
	return shown, err
}

func (s *Store) SaveCompletionShown(ctx context.Context, shown bool) error {
	return s.save(ctx, keyCompletionShown, shown)
}

func (s *Store) Plan(ctx context.Context) (plan.Plan, error) {
	p := plan.NewPlan()
	if err := s.load(ctx, keyPlan, &p); err != nil {
		return plan.Plan{}, err
	}
	if p.Areas == nil {
		p.Areas = map[int]plan.State{}
	}
	return p, nil
}

func (s *Store) SavePlan(ctx context.Context, p plan.Plan) error {
	return s.save(ctx, keyPlan, p)
}

func (s *Store) Tasks(ctx context.Context) ([]plan.Task, error) {
	var tasks []plan.Task
	err := s.load(ctx, keyTasks, &tasks)
	return tasks, err
}

func (s *Store) SaveTasks(ctx context.Context, tasks []plan.Task) error {
	return s.save(ctx, keyTasks, tasks)
}

func (s *Store) Streak(ctx context.Context) (streak.Streak, error) {
	var st streak.Streak
	err := s.load(ctx, keyStreak, &st)
	return st, err
}

func (s *Store) SaveStreak(ctx context.Context, st streak.Streak) error {
	return s.save(ctx, keyStreak, st)
}

func (s *Store) EarnedBadges(ctx context.Context) ([]string, error) {
	var ids []string
	err := s.load(ctx, keyBadges, &ids)
	return ids, err
}

func (s *Store) SaveEarnedBadges(ctx context.Context, ids []string) error {
	return s.save(ctx, keyBadges, ids)
}

func (s *Store) Notifications(ctx context.Context) ([]notify.Notification, error) {
	var history []notify.Notification
	err := s.load(ctx, keyNotifications, &history)
	return history, err
}

func (s *Store) SaveNotifications(ctx context.Context, history []notify.Notification) error {
	return s.save(ctx, keyNotifications, history)
}

// Reset wipes every slice in one transaction. After Reset a fresh load
// is indistinguishable from a first run.
func (s *Store) Reset(ctx context.Context) error {
	return s.kv.Clear(ctx, allKeys...)
}
