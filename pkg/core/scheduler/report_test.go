package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kambari/kambari-agent/pkg/core/model"
)

func TestBuildReport_GroupsByDateAndRole(t *testing.T) {
	sessions := []model.Session{
		{Date: date(13), Topic: "Second", Passage: "Ruth 1"},
		{Date: date(6), Topic: "First", Passage: "Genesis 16"},
	}
	assignments := []model.Assignment{
		{Date: date(6), Role: model.RolePrayerLead, MemberID: "m1"},
		{Date: date(6), Role: model.RoleScriptureReader, MemberID: "m2"},
		{Date: date(13), Role: model.RolePrayerLead, MemberID: "m2"},
	}
	roster := []model.Member{
		{ID: "m1", Name: "Alice", Active: true},
		{ID: "m2", Name: "Bob", Active: true},
	}

	report := BuildReport(sessions, assignments, roster, model.DefaultRoles)
	require.Len(t, report.Sessions, 2)

	// Sessions come back in date order regardless of input order
	first := report.Sessions[0]
	assert.Equal(t, date(6), first.Date)
	assert.Equal(t, "First", first.Topic)
	require.Len(t, first.Roles, 3)

	assert.Equal(t, model.RolePrayerLead, first.Roles[0].Role)
	assert.Equal(t, "Alice", first.Roles[0].MemberName)
	assert.True(t, first.Roles[0].Filled)

	assert.Equal(t, model.RoleScriptureReader, first.Roles[1].Role)
	assert.Equal(t, "Bob", first.Roles[1].MemberName)

	// Nobody holds sharing_lead on the first date
	assert.False(t, first.Roles[2].Filled)
	assert.Empty(t, first.Roles[2].MemberName)

	second := report.Sessions[1]
	assert.Equal(t, "Bob", second.Roles[0].MemberName)
	assert.False(t, second.Roles[1].Filled)
	assert.False(t, second.Roles[2].Filled)
}

func TestBuildReport_UnknownMemberLeavesNameEmpty(t *testing.T) {
	sessions := []model.Session{{Date: date(6), Topic: "First"}}
	assignments := []model.Assignment{
		{Date: date(6), Role: model.RolePrayerLead, MemberID: "ghost"},
	}

	report := BuildReport(sessions, assignments, nil, []model.Role{model.RolePrayerLead})
	require.Len(t, report.Sessions, 1)

	line := report.Sessions[0].Roles[0]
	assert.True(t, line.Filled)
	assert.Equal(t, "ghost", line.MemberID)
	assert.Empty(t, line.MemberName)
}
