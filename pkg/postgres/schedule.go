package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/kambari/kambari-agent/pkg/db"
)

// GetRecentAssignments retrieves assignments dated on or after since
func (d *DB) GetRecentAssignments(ctx context.Context, since string) ([]db.ScheduleRole, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT session_date, role, member_id
		FROM schedule_role
		WHERE session_date >= $1
		ORDER BY session_date DESC
	`, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent assignments: %w", err)
	}
	defer rows.Close()

	return scanAssignments(rows)
}

// GetAssignments retrieves assignments between two dates inclusive
func (d *DB) GetAssignments(ctx context.Context, from, to string) ([]db.ScheduleRole, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT session_date, role, member_id
		FROM schedule_role
		WHERE session_date >= $1 AND session_date <= $2
		ORDER BY session_date, role
	`, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments: %w", err)
	}
	defer rows.Close()

	return scanAssignments(rows)
}

// SaveAssignments upserts assignments in a single transaction so a failure
// partway through never leaves a partially committed schedule. Existing
// (session_date, role) rows are replaced, which supports re-running the
// engine after availability changes.
func (d *DB) SaveAssignments(ctx context.Context, assignments []db.ScheduleRole) error {
	if len(assignments) == 0 {
		return nil
	}

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, a := range assignments {
		_, err := tx.Exec(ctx, `
			INSERT INTO schedule_role (session_date, role, member_id)
			VALUES ($1, $2, $3)
			ON CONFLICT (session_date, role)
			DO UPDATE SET member_id = EXCLUDED.member_id, assigned_at = NOW()
		`, a.SessionDate, a.Role, a.MemberID)
		if err != nil {
			return fmt.Errorf("failed to upsert assignment (%s, %s): %w", a.SessionDate, a.Role, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// ClearAssignments removes assignments between two dates inclusive,
// used before a full re-run of a series
func (d *DB) ClearAssignments(ctx context.Context, from, to string) error {
	_, err := d.pool.Exec(ctx, `
		DELETE FROM schedule_role WHERE session_date >= $1 AND session_date <= $2
	`, from, to)
	if err != nil {
		return fmt.Errorf("failed to clear assignments: %w", err)
	}
	return nil
}

func scanAssignments(rows rowScanner) ([]db.ScheduleRole, error) {
	var assignments []db.ScheduleRole
	for rows.Next() {
		var a db.ScheduleRole
		var date time.Time
		if err := rows.Scan(&date, &a.Role, &a.MemberID); err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		a.SessionDate = date.Format("2006-01-02")
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assignments: %w", err)
	}
	return assignments, nil
}
