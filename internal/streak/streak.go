// Package streak tracks consecutive calendar days of app usage.
package streak

import "time"

// Streak is the persisted streak state. LastVisit keeps only calendar
// precision; the time of day is irrelevant.
type Streak struct {
	Count     int       `json:"count"`
	LastVisit time.Time `json:"last_visit"`
}

// Touch updates the streak for a visit at now. Visits on the same
// calendar day as the last one leave the streak untouched; a visit on
// the following day extends it; anything else restarts at one. Returns
// the updated streak and whether it changed.
func Touch(s Streak, now time.Time) (Streak, bool) {
	today := truncateDay(now)

	if s.Count == 0 || s.LastVisit.IsZero() {
		return Streak{Count: 1, LastVisit: today}, true
	}

	last := truncateDay(s.LastVisit)
	switch {
	case last.Equal(today):
		return s, false
	case last.AddDate(0, 0, 1).Equal(today):
		return Streak{Count: s.Count + 1, LastVisit: today}, true
	default:
		return Streak{Count: 1, LastVisit: today}, true
	}
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
