package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kambari/kambari-agent/pkg/core/model"
)

func entries(count int) []model.ContentEntry {
	out := make([]model.ContentEntry, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, model.ContentEntry{Title: "Topic", Passage: "Passage"})
	}
	return out
}

func TestBuildSessions_WeeklyDates(t *testing.T) {
	plan := SessionPlan{Start: date(6), IntervalDays: 7}

	sessions, err := BuildSessions("series-1", entries(3), plan)
	require.NoError(t, err)
	require.Len(t, sessions, 3)

	assert.Equal(t, date(6), sessions[0].Date)
	assert.Equal(t, date(13), sessions[1].Date)
	assert.Equal(t, date(20), sessions[2].Date)
	for _, s := range sessions {
		assert.Equal(t, "series-1", s.SeriesID)
	}
}

func TestBuildSessions_ExcludedWeekdayPushedForward(t *testing.T) {
	// June 6 2025 is a Friday; excluding Fridays pushes each candidate to
	// the Saturday after
	plan := SessionPlan{
		Start:            date(6),
		IntervalDays:     7,
		ExcludedWeekdays: []time.Weekday{time.Friday},
	}

	sessions, err := BuildSessions("series-1", entries(2), plan)
	require.NoError(t, err)
	require.Len(t, sessions, 2)

	assert.Equal(t, date(7), sessions[0].Date)
	assert.Equal(t, date(14), sessions[1].Date)
	for _, s := range sessions {
		assert.NotEqual(t, time.Friday, s.Date.Weekday())
	}
}

func TestBuildSessions_ZeroIntervalStillStrictlyIncreasing(t *testing.T) {
	plan := SessionPlan{Start: date(6), IntervalDays: 0}

	sessions, err := BuildSessions("series-1", entries(4), plan)
	require.NoError(t, err)
	require.Len(t, sessions, 4)

	for i := 1; i < len(sessions); i++ {
		assert.True(t, sessions[i].Date.After(sessions[i-1].Date),
			"session %d not after session %d", i, i-1)
	}
}

func TestBuildSessions_EmptyPlan(t *testing.T) {
	plan := SessionPlan{Start: date(6), IntervalDays: 7}

	sessions, err := BuildSessions("series-1", nil, plan)
	require.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestBuildSessions_NegativeIntervalRejected(t *testing.T) {
	plan := SessionPlan{Start: date(6), IntervalDays: -1}

	_, err := BuildSessions("series-1", entries(1), plan)
	assert.Error(t, err)
}

func TestBuildSessions_MissingStartRejected(t *testing.T) {
	plan := SessionPlan{IntervalDays: 7}

	_, err := BuildSessions("series-1", entries(1), plan)
	assert.Error(t, err)
}

func TestBuildSessions_AllWeekdaysExcludedRejected(t *testing.T) {
	plan := SessionPlan{
		Start:        date(6),
		IntervalDays: 7,
		ExcludedWeekdays: []time.Weekday{
			time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
			time.Thursday, time.Friday, time.Saturday,
		},
	}

	_, err := BuildSessions("series-1", entries(1), plan)
	assert.Error(t, err)
}

func TestNextAnchorDate_NextFriday(t *testing.T) {
	// June 4 2025 is a Wednesday; the next Friday is June 6
	after := time.Date(2025, 6, 4, 10, 0, 0, 0, time.UTC)

	anchor, err := NextAnchorDate("FREQ=WEEKLY;BYDAY=FR", after)
	require.NoError(t, err)
	assert.Equal(t, date(6), anchor)
}

func TestNextAnchorDate_StrictlyAfter(t *testing.T) {
	// From mid-Friday the anchor lands on the following Friday
	after := time.Date(2025, 6, 6, 10, 0, 0, 0, time.UTC)

	anchor, err := NextAnchorDate("FREQ=WEEKLY;BYDAY=FR", after)
	require.NoError(t, err)
	assert.Equal(t, date(13), anchor)
}

func TestNextAnchorDate_InvalidRule(t *testing.T) {
	_, err := NextAnchorDate("FREQ=NONSENSE", time.Now())
	assert.Error(t, err)
}
