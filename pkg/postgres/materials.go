package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/kambari/kambari-agent/pkg/db"
)

// UpsertMaterial replaces the generated content for (session_date, category)
func (d *DB) UpsertMaterial(ctx context.Context, material *db.Material) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO generated_material (id, session_date, category, content, source)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (session_date, category)
		DO UPDATE SET content = EXCLUDED.content, source = EXCLUDED.source, created_at = NOW()
	`, material.ID, material.SessionDate, material.Category, material.Content, material.Source)
	if err != nil {
		return fmt.Errorf("failed to upsert material: %w", err)
	}
	return nil
}

// GetMaterials retrieves generated materials for a session date
func (d *DB) GetMaterials(ctx context.Context, sessionDate string) ([]db.Material, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, session_date, category, content, source
		FROM generated_material
		WHERE session_date = $1
		ORDER BY category
	`, sessionDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query materials: %w", err)
	}
	defer rows.Close()

	var materials []db.Material
	for rows.Next() {
		var m db.Material
		var date time.Time
		if err := rows.Scan(&m.ID, &date, &m.Category, &m.Content, &m.Source); err != nil {
			return nil, fmt.Errorf("failed to scan material: %w", err)
		}
		m.SessionDate = date.Format("2006-01-02")
		materials = append(materials, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating materials: %w", err)
	}

	return materials, nil
}
