package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kambari/kambari-agent/internal/config"
	"github.com/kambari/kambari-agent/pkg/core/scheduler"
	"github.com/kambari/kambari-agent/pkg/db"
)

// GenerateScheduleStore is the storage surface a scheduling run needs
type GenerateScheduleStore interface {
	GetMembers(ctx context.Context, activeOnly bool) ([]db.Member, error)
	GetAvailability(ctx context.Context, from, to string) ([]db.Availability, error)
	GetRecentAssignments(ctx context.Context, since string) ([]db.ScheduleRole, error)
	GetSeries(ctx context.Context) ([]db.Series, error)
	GetSessions(ctx context.Context, seriesID string) ([]db.Session, error)
	SaveAssignments(ctx context.Context, assignments []db.ScheduleRole) error
	ClearAssignments(ctx context.Context, from, to string) error
}

// GenerateScheduleParams controls one scheduling run
type GenerateScheduleParams struct {
	// SeriesID selects the series to schedule; empty picks the latest
	SeriesID string

	// Seed drives the tie-break shuffle; 0 seeds from the clock
	Seed int64

	// DryRun computes and reports the schedule without storing it
	DryRun bool

	// Reset clears existing assignments in the series date range first.
	// Without it, re-runs replace overlapping (date, role) slots via upsert.
	Reset bool
}

// GenerateScheduleResult is the outcome of a scheduling run
type GenerateScheduleResult struct {
	Series    db.Series
	Outcome   *scheduler.Outcome
	Report    scheduler.ScheduleReport
	Committed bool
}

// GenerateSchedule staffs every session of a series and stores the result.
// It loads the roster, explicit availability for the series date range, and
// recent assignment history for the fairness lookback, then runs the rotation
// engine. A storage failure after a successful run returns the computed
// result alongside the error so the caller can still show it.
func GenerateSchedule(ctx context.Context, database GenerateScheduleStore, cfg *config.Config, logger *zap.Logger, params GenerateScheduleParams) (*GenerateScheduleResult, error) {
	series, err := resolveSeries(ctx, database, logger, params.SeriesID)
	if err != nil {
		return nil, err
	}

	sessionRecords, err := database.GetSessions(ctx, series.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sessions: %w", err)
	}
	if len(sessionRecords) == 0 {
		return nil, fmt.Errorf("series %q has no sessions to schedule", series.Title)
	}
	sessions, err := toModelSessions(sessionRecords)
	if err != nil {
		return nil, err
	}

	from := sessionRecords[0].SessionDate
	to := sessionRecords[len(sessionRecords)-1].SessionDate

	logger.Debug("Scheduling series",
		zap.String("series_id", series.ID),
		zap.String("title", series.Title),
		zap.Int("sessions", len(sessions)),
		zap.String("from", from),
		zap.String("to", to))

	memberRecords, err := database.GetMembers(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch members: %w", err)
	}
	members := toModelMembers(memberRecords)

	availabilityRecords, err := database.GetAvailability(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability: %w", err)
	}
	availability, err := toModelAvailability(availabilityRecords)
	if err != nil {
		return nil, err
	}

	cutoff := time.Now().AddDate(0, -cfg.HistoryMonths, 0)
	recentRecords, err := database.GetRecentAssignments(ctx, formatDate(cutoff))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recent assignments: %w", err)
	}
	recent, err := toModelAssignments(recentRecords)
	if err != nil {
		return nil, err
	}

	seed := params.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	logger.Debug("Running rotation engine",
		zap.Int("members", len(members)),
		zap.Int("availability_records", len(availability)),
		zap.Int("history_assignments", len(recent)),
		zap.Int64("seed", seed))

	outcome, err := scheduler.Assign(scheduler.Config{
		Sessions:     sessions,
		Members:      members,
		Availability: scheduler.NewAvailabilitySet(availability),
		History:      scheduler.BuildRoleHistory(recent, cutoff),
		Roles:        cfg.RoleList(),
		CooldownDays: cfg.CooldownDays,
		Seed:         seed,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate schedule: %w", err)
	}

	result := &GenerateScheduleResult{
		Series:  series,
		Outcome: outcome,
		Report:  scheduler.BuildReport(sessions, outcome.Assignments, members, cfg.RoleList()),
	}

	logger.Info("Schedule generated",
		zap.String("series", series.Title),
		zap.Int("assignments", len(outcome.Assignments)),
		zap.Int("repaired", len(outcome.Repaired)),
		zap.Int("unfilled", len(outcome.Unfilled)))

	if params.DryRun {
		logger.Info("Dry run, schedule not stored")
		return result, nil
	}

	if params.Reset {
		logger.Debug("Clearing existing assignments", zap.String("from", from), zap.String("to", to))
		if err := database.ClearAssignments(ctx, from, to); err != nil {
			return result, fmt.Errorf("failed to clear existing assignments: %w", err)
		}
	}

	records := make([]db.ScheduleRole, 0, len(outcome.Assignments))
	for _, a := range outcome.Assignments {
		records = append(records, db.ScheduleRole{
			SessionDate: formatDate(a.Date),
			Role:        string(a.Role),
			MemberID:    a.MemberID,
		})
	}
	if err := database.SaveAssignments(ctx, records); err != nil {
		return result, fmt.Errorf("failed to store schedule: %w", err)
	}

	result.Committed = true
	logger.Info("Schedule stored", zap.Int("assignments", len(records)))
	return result, nil
}

// resolveSeries looks up the requested series, or the latest one when no id
// is given
func resolveSeries(ctx context.Context, database GenerateScheduleStore, logger *zap.Logger, seriesID string) (db.Series, error) {
	series, err := database.GetSeries(ctx)
	if err != nil {
		return db.Series{}, fmt.Errorf("failed to fetch series: %w", err)
	}
	if len(series) == 0 {
		return db.Series{}, fmt.Errorf("no series found, create one first")
	}

	if seriesID == "" {
		latest := findLatestSeries(series)
		logger.Debug("No series specified, using latest",
			zap.String("id", latest.ID),
			zap.String("title", latest.Title))
		return latest, nil
	}

	for _, s := range series {
		if s.ID == seriesID {
			return s, nil
		}
	}
	return db.Series{}, fmt.Errorf("series %s not found", seriesID)
}
