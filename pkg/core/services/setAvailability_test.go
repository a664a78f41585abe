package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kambari/kambari-agent/pkg/db"
)

// mockAvailabilityStore implements db.AvailabilityStore for testing
type mockAvailabilityStore struct {
	records map[string]db.Availability
}

func (m *mockAvailabilityStore) SetAvailability(ctx context.Context, record db.Availability) error {
	if m.records == nil {
		m.records = make(map[string]db.Availability)
	}
	m.records[record.MemberID+"/"+record.Date] = record
	return nil
}

func (m *mockAvailabilityStore) GetAvailability(ctx context.Context, from, to string) ([]db.Availability, error) {
	var out []db.Availability
	for _, r := range m.records {
		if r.Date >= from && r.Date <= to {
			out = append(out, r)
		}
	}
	return out, nil
}

func TestSetAvailability_UpsertsRecord(t *testing.T) {
	store := &mockAvailabilityStore{}

	err := SetAvailability(context.Background(), store, zap.NewNop(), "m1", "2025-06-06", false, "travelling")
	require.NoError(t, err)

	record := store.records["m1/2025-06-06"]
	assert.False(t, record.IsAvailable)
	assert.Equal(t, "travelling", record.Reason)

	// A later record for the same date replaces the first
	err = SetAvailability(context.Background(), store, zap.NewNop(), "m1", "2025-06-06", true, "")
	require.NoError(t, err)
	assert.True(t, store.records["m1/2025-06-06"].IsAvailable)
	assert.Len(t, store.records, 1)
}

func TestSetAvailability_BadInputs(t *testing.T) {
	store := &mockAvailabilityStore{}

	assert.Error(t, SetAvailability(context.Background(), store, zap.NewNop(), "", "2025-06-06", true, ""))
	assert.Error(t, SetAvailability(context.Background(), store, zap.NewNop(), "m1", "6 June 2025", true, ""))
	assert.Empty(t, store.records)
}
