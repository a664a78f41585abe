package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kambari/kambari-agent/pkg/db"
)

// SetAvailability records whether a member can serve on a date. Repeated calls
// for the same (member, date) replace the earlier record.
func SetAvailability(ctx context.Context, database db.AvailabilityStore, logger *zap.Logger, memberID, date string, available bool, reason string) error {
	if memberID == "" {
		return fmt.Errorf("member id must not be empty")
	}
	parsed, err := parseDate(date)
	if err != nil {
		return err
	}

	record := db.Availability{
		MemberID:    memberID,
		Date:        formatDate(parsed),
		IsAvailable: available,
		Reason:      reason,
	}

	if err := database.SetAvailability(ctx, record); err != nil {
		return fmt.Errorf("failed to set availability: %w", err)
	}

	logger.Info("Availability recorded",
		zap.String("member_id", memberID),
		zap.String("date", record.Date),
		zap.Bool("available", available))
	return nil
}
