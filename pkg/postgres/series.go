package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/kambari/kambari-agent/pkg/db"
)

// InsertSeries inserts a series and its sessions in one transaction
func (d *DB) InsertSeries(ctx context.Context, series *db.Series, sessions []db.Session) error {
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO series (id, title, theme, start_date)
		VALUES ($1, $2, $3, $4)
	`, series.ID, series.Title, series.Theme, series.StartDate)
	if err != nil {
		return fmt.Errorf("failed to insert series: %w", err)
	}

	for _, s := range sessions {
		_, err := tx.Exec(ctx, `
			INSERT INTO session (session_date, series_id, topic, passage)
			VALUES ($1, $2, $3, $4)
		`, s.SessionDate, s.SeriesID, s.Topic, s.Passage)
		if err != nil {
			return fmt.Errorf("failed to insert session %s: %w", s.SessionDate, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetSeries retrieves all series records, newest first
func (d *DB) GetSeries(ctx context.Context) ([]db.Series, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, title, theme, start_date FROM series ORDER BY start_date DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query series: %w", err)
	}
	defer rows.Close()

	var series []db.Series
	for rows.Next() {
		var s db.Series
		var start time.Time
		if err := rows.Scan(&s.ID, &s.Title, &s.Theme, &start); err != nil {
			return nil, fmt.Errorf("failed to scan series: %w", err)
		}
		s.StartDate = start.Format("2006-01-02")
		series = append(series, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating series: %w", err)
	}

	return series, nil
}

// GetSessions retrieves a series' sessions in date order
func (d *DB) GetSessions(ctx context.Context, seriesID string) ([]db.Session, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT session_date, series_id, topic, passage
		FROM session
		WHERE series_id = $1
		ORDER BY session_date
	`, seriesID)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	return scanSessions(rows)
}

// GetSessionsInRange retrieves sessions between two dates inclusive
func (d *DB) GetSessionsInRange(ctx context.Context, from, to string) ([]db.Session, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT session_date, series_id, topic, passage
		FROM session
		WHERE session_date >= $1 AND session_date <= $2
		ORDER BY session_date
	`, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	return scanSessions(rows)
}

type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanSessions(rows rowScanner) ([]db.Session, error) {
	var sessions []db.Session
	for rows.Next() {
		var s db.Session
		var date time.Time
		if err := rows.Scan(&date, &s.SeriesID, &s.Topic, &s.Passage); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		s.SessionDate = date.Format("2006-01-02")
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sessions: %w", err)
	}
	return sessions, nil
}
