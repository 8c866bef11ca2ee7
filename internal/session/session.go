// Package session coordinates the in-memory view of the user's state:
// it loads everything once at startup, applies mutations, persists them
// through the state store, and keeps streak, badges, and notifications
// in step after every change.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/fbarrientos/autoeval/internal/badges"
	"github.com/fbarrientos/autoeval/internal/notify"
	"github.com/fbarrientos/autoeval/internal/plan"
	"github.com/fbarrientos/autoeval/internal/profile"
	"github.com/fbarrientos/autoeval/internal/scoring"
	"github.com/fbarrientos/autoeval/internal/state"
	"github.com/fbarrientos/autoeval/internal/streak"
)

// Session is the live application state. It is not safe for concurrent
// use; the TUI event loop is its only caller.
type Session struct {
	store *state.Store
	plans *plan.Service

	profile         profile.UserProfile
	hasProfile      bool
	answers         scoring.Answers
	tasks           []plan.Task
	streak          streak.Streak
	earned          []string
	history         []notify.Notification
	completionShown bool

	tasksPending bool
}

// Load reads all persisted slices and restores the plan service from
// the last saved plan.
func Load(ctx context.Context, st *state.Store, plans *plan.Service) (*Session, error) {
	s := &Session{store: st, plans: plans}

	var err error
	if s.profile, s.hasProfile, err = st.Profile(ctx); err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if s.answers, err = st.Answers(ctx); err != nil {
		return nil, fmt.Errorf("load answers: %w", err)
	}
	if s.tasks, err = st.Tasks(ctx); err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	if s.streak, err = st.Streak(ctx); err != nil {
		return nil, fmt.Errorf("load streak: %w", err)
	}
	if s.earned, err = st.EarnedBadges(ctx); err != nil {
		return nil, fmt.Errorf("load badges: %w", err)
	}
	if s.history, err = st.Notifications(ctx); err != nil {
		return nil, fmt.Errorf("load notifications: %w", err)
	}
	if s.completionShown, err = st.CompletionShown(ctx); err != nil {
		return nil, fmt.Errorf("load completion flag: %w", err)
	}

	saved, err := st.Plan(ctx)
	if err != nil {
		return nil, fmt.Errorf("load plan: %w", err)
	}
	if plans != nil {
		plans.Restore(saved)
	}

	// An exit between plan generation and task extraction leaves a plan
	// without its task list; rebuild it from the saved content.
	if len(s.tasks) == 0 {
		if rebuilt := plan.ExtractTasks(saved); len(rebuilt) > 0 {
			s.tasks = rebuilt
			if err := st.SaveTasks(ctx, s.tasks); err != nil {
				return nil, fmt.Errorf("save tasks: %w", err)
			}
		}
	}
	return s, nil
}

// Start records today's visit, extending or resetting the streak, and
// refreshes badges and notifications.
func (s *Session) Start(ctx context.Context, now time.Time) error {
	touched, changed := streak.Touch(s.streak, now)
	if changed {
		s.streak = touched
		if err := s.store.SaveStreak(ctx, s.streak); err != nil {
			return fmt.Errorf("save streak: %w", err)
		}
	}
	return s.refresh(ctx, now)
}

// refresh re-evaluates badges against the current snapshot and rebuilds
// the condition-driven notifications, persisting both.
func (s *Session) refresh(ctx context.Context, now time.Time) error {
	results := s.Results()

	var summary string
	if s.plans != nil {
		summary = s.plans.Plan().Summary.Content
	}
	fresh := badges.Evaluate(badges.Snapshot{
		ProfileComplete: s.hasProfile,
		Results:         results,
		PlanSummary:     summary,
		TaskCount:       len(s.tasks),
		StreakCount:     s.streak.Count,
	}, s.earned)
	if len(fresh) > 0 {
		s.earned = append(s.earned, fresh...)
		if err := s.store.SaveEarnedBadges(ctx, s.earned); err != nil {
			return fmt.Errorf("save badges: %w", err)
		}
	}

	s.history = notify.Derive(s.history, notify.Inputs{
		Results:     results,
		Progress:    s.Progress(),
		StreakCount: s.streak.Count,
		NewBadgeIDs: fresh,
	}, now)
	if err := s.store.SaveNotifications(ctx, s.history); err != nil {
		return fmt.Errorf("save notifications: %w", err)
	}
	return nil
}

// HasProfile reports whether onboarding has been completed.
func (s *Session) HasProfile() bool { return s.hasProfile }

// Profile returns the stored profile. Zero value before onboarding.
func (s *Session) Profile() profile.UserProfile { return s.profile }

// SetProfile validates and stores the profile.
func (s *Session) SetProfile(ctx context.Context, p profile.UserProfile) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if err := s.store.SaveProfile(ctx, p); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	s.profile = p
	s.hasProfile = true
	return s.refresh(ctx, time.Now())
}

// Answers returns a copy of the recorded answers.
func (s *Session) Answers() scoring.Answers {
	out := make(scoring.Answers, len(s.answers))
	for k, v := range s.answers {
		out[k] = v
	}
	return out
}

// Answer records one answer and persists it.
func (s *Session) Answer(ctx context.Context, questionID, value int) error {
	if s.answers == nil {
		s.answers = scoring.Answers{}
	}
	s.answers[questionID] = value
	if err := s.store.SaveAnswers(ctx, s.answers); err != nil {
		return fmt.Errorf("save answers: %w", err)
	}
	return s.refresh(ctx, time.Now())
}

// Results scores every area against the current answers.
func (s *Session) Results() []scoring.AreaResult {
	return scoring.Results(s.answers)
}

// Progress returns the overall completion percentage.
func (s *Session) Progress() int {
	return scoring.Progress(s.answers)
}

// Complete reports whether all questions are answered.
func (s *Session) Complete() bool {
	return scoring.Complete(s.answers)
}

// CompletionShown reports whether the completion dialog was already
// displayed once.
func (s *Session) CompletionShown() bool { return s.completionShown }

// MarkCompletionShown records that the completion dialog was displayed,
// so it only ever appears once.
func (s *Session) MarkCompletionShown(ctx context.Context) error {
	s.completionShown = true
	return s.store.SaveCompletionShown(ctx, true)
}

// StreakCount returns the current consecutive-day count.
func (s *Session) StreakCount() int { return s.streak.Count }

// EarnedBadges returns the ids of earned badges in earn order.
func (s *Session) EarnedBadges() []string {
	return append([]string(nil), s.earned...)
}

// Notifications returns the display slice of the notification history.
func (s *Session) Notifications() []notify.Notification {
	return notify.Display(s.history)
}

// UnreadCount returns how many stored notifications are unread.
func (s *Session) UnreadCount() int {
	n := 0
	for _, item := range s.history {
		if item.IsNew {
			n++
		}
	}
	return n
}

// MarkNotificationsRead clears the unread flag on every notification.
func (s *Session) MarkNotificationsRead(ctx context.Context) error {
	s.history = notify.MarkAllRead(s.history)
	return s.store.SaveNotifications(ctx, s.history)
}

// Plans exposes the plan generation service. Nil when no LLM provider
// is configured.
func (s *Session) Plans() *plan.Service { return s.plans }

// PlanConfigured reports whether plan generation is available.
func (s *Session) PlanConfigured() bool {
	return s.plans != nil && s.plans.Configured()
}

// GeneratePlan starts a fresh generation over the current results. Any
// existing tasks are discarded once the new batch settles.
func (s *Session) GeneratePlan(ctx context.Context) {
	if s.plans == nil {
		return
	}
	s.tasksPending = true
	s.plans.Generate(ctx, s.Results())
}

// SyncPlan persists the plan service's current state. Once a pending
// generation has settled, the task list is rebuilt from every area
// that produced content; a failed slice only loses its own tasks.
func (s *Session) SyncPlan(ctx context.Context) error {
	if s.plans == nil {
		return nil
	}
	p := s.plans.Plan()
	if err := s.store.SavePlan(ctx, p); err != nil {
		return fmt.Errorf("save plan: %w", err)
	}
	if s.tasksPending && !s.plans.Generating() {
		s.tasksPending = false
		s.tasks = plan.ExtractTasks(p)
		if err := s.store.SaveTasks(ctx, s.tasks); err != nil {
			return fmt.Errorf("save tasks: %w", err)
		}
	}
	return s.refresh(ctx, time.Now())
}

// Tasks returns a copy of the current task list.
func (s *Session) Tasks() []plan.Task {
	return append([]plan.Task(nil), s.tasks...)
}

// HasTaskProgress reports whether any task has been marked done, which
// a regeneration would wipe out.
func (s *Session) HasTaskProgress() bool {
	return plan.HasCompletionState(s.tasks)
}

// ToggleTask flips one task's completion and persists the list.
func (s *Session) ToggleTask(ctx context.Context, id string) error {
	s.tasks = plan.ToggleTask(s.tasks, id)
	if err := s.store.SaveTasks(ctx, s.tasks); err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}
	return s.refresh(ctx, time.Now())
}

// ResetAll wipes every persisted slice and clears the in-memory state.
func (s *Session) ResetAll(ctx context.Context) error {
	if err := s.store.Reset(ctx); err != nil {
		return fmt.Errorf("reset state: %w", err)
	}
	s.profile = profile.UserProfile{}
	s.hasProfile = false
	s.answers = scoring.Answers{}
	s.tasks = nil
	s.streak = streak.Streak{}
	s.earned = nil
	s.history = nil
	s.completionShown = false
	s.tasksPending = false
	if s.plans != nil {
		s.plans.Restore(plan.NewPlan())
	}
	return nil
}
