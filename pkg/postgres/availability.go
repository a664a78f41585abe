package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/kambari/kambari-agent/pkg/db"
)

// SetAvailability upserts the availability record for (member, date)
func (d *DB) SetAvailability(ctx context.Context, record db.Availability) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO member_availability (member_id, date, is_available, reason)
		VALUES ($1, $2, $3, NULLIF($4, ''))
		ON CONFLICT (member_id, date)
		DO UPDATE SET is_available = EXCLUDED.is_available, reason = EXCLUDED.reason
	`, record.MemberID, record.Date, record.IsAvailable, record.Reason)
	if err != nil {
		return fmt.Errorf("failed to set availability: %w", err)
	}
	return nil
}

// GetAvailability retrieves explicit availability records in a date range
func (d *DB) GetAvailability(ctx context.Context, from, to string) ([]db.Availability, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT member_id, date, is_available, COALESCE(reason, '')
		FROM member_availability
		WHERE date >= $1 AND date <= $2
	`, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query availability: %w", err)
	}
	defer rows.Close()

	var records []db.Availability
	for rows.Next() {
		var r db.Availability
		var date time.Time
		if err := rows.Scan(&r.MemberID, &date, &r.IsAvailable, &r.Reason); err != nil {
			return nil, fmt.Errorf("failed to scan availability: %w", err)
		}
		r.Date = date.Format("2006-01-02")
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating availability: %w", err)
	}

	return records, nil
}
