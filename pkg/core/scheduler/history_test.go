package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kambari/kambari-agent/pkg/core/model"
)

func TestBuildRoleHistory_GroupsAndSortsMostRecentFirst(t *testing.T) {
	assignments := []model.Assignment{
		{Date: date(6), Role: model.RolePrayerLead, MemberID: "alice"},
		{Date: date(20), Role: model.RolePrayerLead, MemberID: "alice"},
		{Date: date(13), Role: model.RolePrayerLead, MemberID: "alice"},
		{Date: date(13), Role: model.RoleSharingLead, MemberID: "bob"},
	}

	history := BuildRoleHistory(assignments, time.Time{})

	dates := history[HistoryKey{MemberID: "alice", Role: model.RolePrayerLead}]
	require.Len(t, dates, 3)
	assert.Equal(t, date(20), dates[0])
	assert.Equal(t, date(13), dates[1])
	assert.Equal(t, date(6), dates[2])

	last, ok := history.LastHeld("bob", model.RoleSharingLead)
	require.True(t, ok)
	assert.Equal(t, date(13), last)
}

func TestBuildRoleHistory_DropsAssignmentsBeforeCutoff(t *testing.T) {
	assignments := []model.Assignment{
		{Date: date(1), Role: model.RolePrayerLead, MemberID: "alice"},
		{Date: date(20), Role: model.RolePrayerLead, MemberID: "alice"},
	}

	history := BuildRoleHistory(assignments, date(10))

	dates := history[HistoryKey{MemberID: "alice", Role: model.RolePrayerLead}]
	require.Len(t, dates, 1)
	assert.Equal(t, date(20), dates[0])
}

func TestBuildRoleHistory_CapsDepth(t *testing.T) {
	var assignments []model.Assignment
	for day := 1; day <= 25; day += 5 {
		assignments = append(assignments, model.Assignment{
			Date: date(day), Role: model.RoleScriptureReader, MemberID: "alice",
		})
	}

	history := BuildRoleHistory(assignments, time.Time{})

	dates := history[HistoryKey{MemberID: "alice", Role: model.RoleScriptureReader}]
	require.Len(t, dates, historyDepth)
	assert.Equal(t, date(21), dates[0], "most recent kept first")
}

func TestLastHeld_NeverHeld(t *testing.T) {
	history := BuildRoleHistory(nil, time.Time{})

	_, ok := history.LastHeld("alice", model.RolePrayerLead)
	assert.False(t, ok)
}
