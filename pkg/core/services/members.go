package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kambari/kambari-agent/pkg/db"
)

// AddMember registers a new active member on the roster
func AddMember(ctx context.Context, database db.MemberStore, logger *zap.Logger, name, phone, email string) (*db.Member, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("member name must not be empty")
	}

	member := &db.Member{
		ID:       uuid.New().String(),
		Name:     name,
		Phone:    strings.TrimSpace(phone),
		Email:    strings.TrimSpace(email),
		IsActive: true,
	}

	logger.Debug("Adding member", zap.String("id", member.ID), zap.String("name", member.Name))

	if err := database.InsertMember(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to insert member: %w", err)
	}

	logger.Info("Member added", zap.String("name", member.Name), zap.String("id", member.ID))
	return member, nil
}

// ListMembers returns the roster, optionally limited to active members
func ListMembers(ctx context.Context, database db.MemberStore, logger *zap.Logger, activeOnly bool) ([]db.Member, error) {
	members, err := database.GetMembers(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch members: %w", err)
	}
	logger.Debug("Fetched members", zap.Int("count", len(members)), zap.Bool("active_only", activeOnly))
	return members, nil
}

// SetMemberActive activates or deactivates a member. Deactivated members keep
// their history and availability records but are skipped by the scheduler.
func SetMemberActive(ctx context.Context, database db.MemberStore, logger *zap.Logger, memberID string, active bool) error {
	if err := database.SetMemberActive(ctx, memberID, active); err != nil {
		return fmt.Errorf("failed to update member status: %w", err)
	}
	logger.Info("Member status updated", zap.String("id", memberID), zap.Bool("active", active))
	return nil
}

// RemoveMember permanently deletes a member. The store refuses when the member
// appears in any past schedule; deactivate instead to keep reports intact.
func RemoveMember(ctx context.Context, database db.MemberStore, logger *zap.Logger, memberID string) error {
	if err := database.DeleteMember(ctx, memberID); err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}
	logger.Info("Member removed", zap.String("id", memberID))
	return nil
}
