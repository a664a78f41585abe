package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kambari/kambari-agent/pkg/db"
)

// mockSendRemindersStore implements SendRemindersStore for testing
type mockSendRemindersStore struct {
	sessions    []db.Session
	assignments []db.ScheduleRole
	members     []db.Member
	series      []db.Series
}

func (m *mockSendRemindersStore) GetSessionsInRange(ctx context.Context, from, to string) ([]db.Session, error) {
	var out []db.Session
	for _, s := range m.sessions {
		if s.SessionDate >= from && s.SessionDate <= to {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *mockSendRemindersStore) GetAssignments(ctx context.Context, from, to string) ([]db.ScheduleRole, error) {
	var out []db.ScheduleRole
	for _, a := range m.assignments {
		if a.SessionDate >= from && a.SessionDate <= to {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockSendRemindersStore) GetMembers(ctx context.Context, activeOnly bool) ([]db.Member, error) {
	return m.members, nil
}

func (m *mockSendRemindersStore) GetSeries(ctx context.Context) ([]db.Series, error) {
	return m.series, nil
}

// mockMailer implements EmailSender for testing
type mockMailer struct {
	sent    []string
	sendErr error
}

func (m *mockMailer) SendEmail(to, subject, body string) error {
	if m.sendErr != nil {
		return m.sendErr
	}
	m.sent = append(m.sent, to)
	return nil
}

func remindersFixture() *mockSendRemindersStore {
	return &mockSendRemindersStore{
		sessions: []db.Session{
			{SessionDate: "2025-06-06", SeriesID: "s1", Topic: "Hagar", Passage: "Genesis 16"},
		},
		assignments: []db.ScheduleRole{
			{SessionDate: "2025-06-06", Role: "prayer_lead", MemberID: "m1"},
			{SessionDate: "2025-06-06", Role: "scripture_reader", MemberID: "m2"},
			{SessionDate: "2025-06-06", Role: "sharing_lead", MemberID: "m1"},
		},
		members: []db.Member{
			{ID: "m1", Name: "Alice", Phone: "0712345678", Email: "alice@example.com", IsActive: true},
			{ID: "m2", Name: "Bob", IsActive: true},
		},
		series: []db.Series{{ID: "s1", Title: "Women of Faith", StartDate: "2025-06-06"}},
	}
}

func TestSendReminders_EmailsAndLinks(t *testing.T) {
	store := remindersFixture()
	mailer := &mockMailer{}

	deliveries, err := SendReminders(context.Background(), store, mailer, testConfig(), zap.NewNop(), "2025-06-06", false)
	require.NoError(t, err)

	// Two roles for Alice collapse into one delivery
	require.Len(t, deliveries, 2)
	assert.Equal(t, "Alice", deliveries[0].MemberName)
	assert.True(t, deliveries[0].Emailed)
	assert.Contains(t, deliveries[0].WhatsAppLink, "wa.me/254712345678")
	assert.Contains(t, deliveries[0].Body, "Prayer Lead and Sharing Lead")

	// Bob has no email and no phone
	assert.Equal(t, "Bob", deliveries[1].MemberName)
	assert.False(t, deliveries[1].Emailed)
	assert.Empty(t, deliveries[1].WhatsAppLink)

	assert.Equal(t, []string{"alice@example.com"}, mailer.sent)
}

func TestSendReminders_TestModeSendsNothing(t *testing.T) {
	store := remindersFixture()
	mailer := &mockMailer{}

	deliveries, err := SendReminders(context.Background(), store, mailer, testConfig(), zap.NewNop(), "2025-06-06", true)
	require.NoError(t, err)

	require.Len(t, deliveries, 2)
	assert.Empty(t, mailer.sent)
	for _, d := range deliveries {
		assert.False(t, d.Emailed)
	}
	assert.Contains(t, deliveries[0].WhatsAppLink, "wa.me/", "links are still built in test mode")
}

func TestSendReminders_NilMailerStillBuildsLinks(t *testing.T) {
	store := remindersFixture()

	deliveries, err := SendReminders(context.Background(), store, nil, testConfig(), zap.NewNop(), "2025-06-06", false)
	require.NoError(t, err)

	require.Len(t, deliveries, 2)
	assert.False(t, deliveries[0].Emailed)
	assert.NotEmpty(t, deliveries[0].WhatsAppLink)
}

func TestSendReminders_EmailFailureRecordedPerDelivery(t *testing.T) {
	store := remindersFixture()
	mailer := &mockMailer{sendErr: errors.New("rate limited")}

	deliveries, err := SendReminders(context.Background(), store, mailer, testConfig(), zap.NewNop(), "2025-06-06", false)
	require.NoError(t, err, "one bad email must not abort the run")

	require.Len(t, deliveries, 2)
	assert.False(t, deliveries[0].Emailed)
	assert.Equal(t, "rate limited", deliveries[0].Error)
}

func TestSendReminders_NoSessionOnDate(t *testing.T) {
	store := remindersFixture()

	_, err := SendReminders(context.Background(), store, nil, testConfig(), zap.NewNop(), "2025-06-07", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no session scheduled")
}

func TestSendReminders_NoScheduleOnDate(t *testing.T) {
	store := remindersFixture()
	store.assignments = nil

	_, err := SendReminders(context.Background(), store, nil, testConfig(), zap.NewNop(), "2025-06-06", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no schedule found")
}

func TestSendReminders_BadDate(t *testing.T) {
	_, err := SendReminders(context.Background(), remindersFixture(), nil, testConfig(), zap.NewNop(), "June 6", false)
	assert.Error(t, err)
}
