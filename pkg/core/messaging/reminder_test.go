package messaging

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kambari/kambari-agent/pkg/core/model"
)

func testSession() model.Session {
	return model.Session{
		Date:     time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC),
		Topic:    "Hagar: Seen by God",
		Passage:  "Genesis 16:1-16",
		SeriesID: "series-1",
	}
}

func TestBuildReminders_OneReminderPerMember(t *testing.T) {
	alice := model.Member{ID: "m1", Name: "Alice", Phone: "0712345678"}
	bob := model.Member{ID: "m2", Name: "Bob", Email: "bob@example.com"}

	reminders := BuildReminders(testSession(), "Women of Faith", []ScheduledRole{
		{Role: model.RolePrayerLead, Member: alice},
		{Role: model.RoleScriptureReader, Member: bob},
		{Role: model.RoleSharingLead, Member: alice},
	})

	require.Len(t, reminders, 2)

	// Alice appears once with both roles, in schedule order
	assert.Equal(t, "Alice", reminders[0].MemberName)
	assert.Equal(t, []model.Role{model.RolePrayerLead, model.RoleSharingLead}, reminders[0].Roles)
	assert.Equal(t, "Bob", reminders[1].MemberName)
}

func TestReminderBody_NamesRolesAndPassage(t *testing.T) {
	r := Reminder{
		MemberName:  "Alice",
		Roles:       []model.Role{model.RolePrayerLead, model.RoleSharingLead},
		Date:        time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC),
		Passage:     "Genesis 16:1-16",
		SeriesTitle: "Women of Faith",
	}

	body := r.Body()
	assert.Contains(t, body, "Alice")
	assert.Contains(t, body, "Prayer Lead and Sharing Lead")
	assert.Contains(t, body, "Genesis 16:1-16")
	assert.Contains(t, body, "Women of Faith")
	assert.Contains(t, body, "2025-06-06")
}

func TestReminderBody_OmitsSeriesLineWhenUntitled(t *testing.T) {
	r := Reminder{MemberName: "Alice", Roles: []model.Role{model.RolePrayerLead}}

	assert.NotContains(t, r.Body(), "*Series:*")
}

func TestWhatsAppLink_NormalizesPhone(t *testing.T) {
	r := Reminder{
		MemberName: "Alice",
		Phone:      "0712 345-678",
		Roles:      []model.Role{model.RolePrayerLead},
	}

	link := r.WhatsAppLink("254")
	assert.True(t, strings.HasPrefix(link, "https://wa.me/254712345678?text="),
		"got %s", link)
	assert.NotContains(t, link, " ", "message text must be URL-encoded")
}

func TestWhatsAppLink_KeepsInternationalPrefix(t *testing.T) {
	r := Reminder{Phone: "+254712345678", Roles: []model.Role{model.RolePrayerLead}}

	link := r.WhatsAppLink("254")
	assert.True(t, strings.HasPrefix(link, "https://wa.me/254712345678?text="))
}

func TestWhatsAppLink_EmptyWithoutPhone(t *testing.T) {
	r := Reminder{MemberName: "Bob", Roles: []model.Role{model.RolePrayerLead}}

	assert.Empty(t, r.WhatsAppLink("254"))
}

func TestReminderSubject(t *testing.T) {
	r := Reminder{Date: time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC)}

	assert.Equal(t, "Bible Study Reminder - 2025-06-06", r.Subject())
}
