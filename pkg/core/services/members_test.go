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

// mockMemberStore implements db.MemberStore for testing
type mockMemberStore struct {
	members      []db.Member
	inserted     []db.Member
	activeStates map[string]bool
	deleted      []string
	insertErr    error
	deleteErr    error
}

func (m *mockMemberStore) GetMembers(ctx context.Context, activeOnly bool) ([]db.Member, error) {
	if !activeOnly {
		return m.members, nil
	}
	var out []db.Member
	for _, member := range m.members {
		if member.IsActive {
			out = append(out, member)
		}
	}
	return out, nil
}

func (m *mockMemberStore) InsertMember(ctx context.Context, member *db.Member) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.inserted = append(m.inserted, *member)
	return nil
}

func (m *mockMemberStore) SetMemberActive(ctx context.Context, memberID string, active bool) error {
	if m.activeStates == nil {
		m.activeStates = make(map[string]bool)
	}
	m.activeStates[memberID] = active
	return nil
}

func (m *mockMemberStore) DeleteMember(ctx context.Context, memberID string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deleted = append(m.deleted, memberID)
	return nil
}

func TestAddMember_TrimsAndActivates(t *testing.T) {
	store := &mockMemberStore{}

	member, err := AddMember(context.Background(), store, zap.NewNop(), "  Alice  ", " 0712345678 ", "")
	require.NoError(t, err)

	assert.Equal(t, "Alice", member.Name)
	assert.Equal(t, "0712345678", member.Phone)
	assert.True(t, member.IsActive)
	assert.NotEmpty(t, member.ID)
	require.Len(t, store.inserted, 1)
}

func TestAddMember_EmptyNameRejected(t *testing.T) {
	store := &mockMemberStore{}

	_, err := AddMember(context.Background(), store, zap.NewNop(), "   ", "", "")
	assert.Error(t, err)
	assert.Empty(t, store.inserted)
}

func TestListMembers_ActiveOnly(t *testing.T) {
	store := &mockMemberStore{members: []db.Member{
		{ID: "m1", Name: "Alice", IsActive: true},
		{ID: "m2", Name: "Bob", IsActive: false},
	}}

	active, err := ListMembers(context.Background(), store, zap.NewNop(), true)
	require.NoError(t, err)
	assert.Len(t, active, 1)

	all, err := ListMembers(context.Background(), store, zap.NewNop(), false)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestSetMemberActive(t *testing.T) {
	store := &mockMemberStore{}

	require.NoError(t, SetMemberActive(context.Background(), store, zap.NewNop(), "m1", false))
	assert.False(t, store.activeStates["m1"])

	require.NoError(t, SetMemberActive(context.Background(), store, zap.NewNop(), "m1", true))
	assert.True(t, store.activeStates["m1"])
}

func TestRemoveMember_PropagatesStoreRefusal(t *testing.T) {
	store := &mockMemberStore{deleteErr: errors.New("member has 4 schedule entries, deactivate instead")}

	err := RemoveMember(context.Background(), store, zap.NewNop(), "m1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deactivate instead")
}

func TestRemoveMember(t *testing.T) {
	store := &mockMemberStore{}

	require.NoError(t, RemoveMember(context.Background(), store, zap.NewNop(), "m1"))
	assert.Equal(t, []string{"m1"}, store.deleted)
}
