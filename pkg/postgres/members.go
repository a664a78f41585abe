package postgres

import (
	"context"
	"fmt"

	"github.com/kambari/kambari-agent/pkg/db"
)

// GetMembers retrieves member records, optionally restricted to active ones
func (d *DB) GetMembers(ctx context.Context, activeOnly bool) ([]db.Member, error) {
	query := `SELECT id, name, COALESCE(phone, ''), COALESCE(email, ''), is_active FROM members ORDER BY name`
	if activeOnly {
		query = `SELECT id, name, COALESCE(phone, ''), COALESCE(email, ''), is_active FROM members WHERE is_active ORDER BY name`
	}

	rows, err := d.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query members: %w", err)
	}
	defer rows.Close()

	var members []db.Member
	for rows.Next() {
		var m db.Member
		if err := rows.Scan(&m.ID, &m.Name, &m.Phone, &m.Email, &m.IsActive); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating members: %w", err)
	}

	return members, nil
}

// InsertMember inserts a new member record
func (d *DB) InsertMember(ctx context.Context, member *db.Member) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO members (id, name, phone, email, is_active)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5)
	`, member.ID, member.Name, member.Phone, member.Email, member.IsActive)
	if err != nil {
		return fmt.Errorf("failed to insert member: %w", err)
	}
	return nil
}

// SetMemberActive flips a member's active flag (soft delete / reinstate)
func (d *DB) SetMemberActive(ctx context.Context, memberID string, active bool) error {
	tag, err := d.pool.Exec(ctx, `UPDATE members SET is_active = $2 WHERE id = $1`, memberID, active)
	if err != nil {
		return fmt.Errorf("failed to update member active flag: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("member %s not found", memberID)
	}
	return nil
}

// DeleteMember removes a member permanently. Members with historical
// assignments cannot be deleted; deactivate them instead so past schedules
// keep resolving.
func (d *DB) DeleteMember(ctx context.Context, memberID string) error {
	var assignmentCount int
	err := d.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM schedule_role WHERE member_id = $1`, memberID,
	).Scan(&assignmentCount)
	if err != nil {
		return fmt.Errorf("failed to count member assignments: %w", err)
	}
	if assignmentCount > 0 {
		return fmt.Errorf("member %s has %d historical assignments and cannot be deleted; deactivate instead", memberID, assignmentCount)
	}

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM member_availability WHERE member_id = $1`, memberID); err != nil {
		return fmt.Errorf("failed to delete member availability: %w", err)
	}
	tag, err := tx.Exec(ctx, `DELETE FROM members WHERE id = $1`, memberID)
	if err != nil {
		return fmt.Errorf("failed to delete member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("member %s not found", memberID)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
