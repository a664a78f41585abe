package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kambari/kambari-agent/internal/config"
	"github.com/kambari/kambari-agent/pkg/core/scheduler"
	"github.com/kambari/kambari-agent/pkg/db"
)

// ViewScheduleStore is the storage surface schedule viewing needs
type ViewScheduleStore interface {
	GetSessionsInRange(ctx context.Context, from, to string) ([]db.Session, error)
	GetAssignments(ctx context.Context, from, to string) ([]db.ScheduleRole, error)
	GetMembers(ctx context.Context, activeOnly bool) ([]db.Member, error)
}

// ViewSchedule builds the stored schedule for a date range as a report of
// sessions with their role lines. Roles nobody holds appear unfilled.
func ViewSchedule(ctx context.Context, database ViewScheduleStore, cfg *config.Config, logger *zap.Logger, from, to string) (scheduler.ScheduleReport, error) {
	fromDate, err := parseDate(from)
	if err != nil {
		return scheduler.ScheduleReport{}, err
	}
	toDate, err := parseDate(to)
	if err != nil {
		return scheduler.ScheduleReport{}, err
	}
	if toDate.Before(fromDate) {
		return scheduler.ScheduleReport{}, fmt.Errorf("range end %s is before start %s", to, from)
	}

	sessionRecords, err := database.GetSessionsInRange(ctx, from, to)
	if err != nil {
		return scheduler.ScheduleReport{}, fmt.Errorf("failed to fetch sessions: %w", err)
	}
	sessions, err := toModelSessions(sessionRecords)
	if err != nil {
		return scheduler.ScheduleReport{}, err
	}

	assignmentRecords, err := database.GetAssignments(ctx, from, to)
	if err != nil {
		return scheduler.ScheduleReport{}, fmt.Errorf("failed to fetch assignments: %w", err)
	}
	assignments, err := toModelAssignments(assignmentRecords)
	if err != nil {
		return scheduler.ScheduleReport{}, err
	}

	// All members, not just active ones: past schedules may name members who
	// have since been deactivated
	memberRecords, err := database.GetMembers(ctx, false)
	if err != nil {
		return scheduler.ScheduleReport{}, fmt.Errorf("failed to fetch members: %w", err)
	}

	logger.Debug("Built schedule view",
		zap.String("from", from),
		zap.String("to", to),
		zap.Int("sessions", len(sessions)),
		zap.Int("assignments", len(assignments)))

	return scheduler.BuildReport(sessions, assignments, toModelMembers(memberRecords), cfg.RoleList()), nil
}
