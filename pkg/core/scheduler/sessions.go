package scheduler

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/kambari/kambari-agent/pkg/core/model"
)

// SessionPlan describes how a content plan is spread across dates
type SessionPlan struct {
	// Start is the date of the first candidate session
	Start time.Time

	// IntervalDays is the gap between consecutive sessions (7 = weekly).
	// Must be non-negative; a zero interval still advances at least one day
	// so that session dates are strictly increasing.
	IntervalDays int

	// ExcludedWeekdays are days no session may fall on. A candidate landing
	// on one is pushed forward a day at a time until it clears.
	ExcludedWeekdays []time.Weekday
}

// BuildSessions turns an ordered content plan into dated sessions, one per
// entry, with strictly increasing dates. An empty plan yields no sessions.
func BuildSessions(seriesID string, entries []model.ContentEntry, plan SessionPlan) ([]model.Session, error) {
	if plan.IntervalDays < 0 {
		return nil, fmt.Errorf("recurrence interval must be non-negative, got %d", plan.IntervalDays)
	}
	if plan.Start.IsZero() {
		return nil, fmt.Errorf("session plan start date is required")
	}
	excluded := make(map[time.Weekday]bool, len(plan.ExcludedWeekdays))
	for _, d := range plan.ExcludedWeekdays {
		excluded[d] = true
	}
	if len(excluded) >= 7 {
		return nil, fmt.Errorf("cannot exclude all seven weekdays")
	}

	sessions := make([]model.Session, 0, len(entries))
	candidate := normalizeDate(plan.Start)
	var last time.Time

	for _, entry := range entries {
		// Clear the previous session's date and any excluded weekdays.
		// Terminates because at most six weekdays are excluded.
		for (!last.IsZero() && !candidate.After(last)) || excluded[candidate.Weekday()] {
			candidate = candidate.AddDate(0, 0, 1)
		}

		sessions = append(sessions, model.Session{
			Date:     candidate,
			Topic:    entry.Title,
			Passage:  entry.Passage,
			SeriesID: seriesID,
		})
		last = candidate
		candidate = candidate.AddDate(0, 0, plan.IntervalDays)
	}

	return sessions, nil
}

// NextAnchorDate resolves the default start date for a series from the
// configured recurrence rule (e.g. "FREQ=WEEKLY;BYDAY=FR" anchors to the next
// Friday strictly after the given time).
func NextAnchorDate(rruleStr string, after time.Time) (time.Time, error) {
	rule, err := rrule.StrToRRule(rruleStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid session anchor rule: %w", err)
	}
	rule.DTStart(normalizeDate(after))

	next := rule.After(after, false)
	if next.IsZero() {
		return time.Time{}, fmt.Errorf("session anchor rule %q has no occurrence after %s", rruleStr, after.Format("2006-01-02"))
	}
	return normalizeDate(next), nil
}

// normalizeDate truncates to midnight UTC so dates compare as calendar days
func normalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
