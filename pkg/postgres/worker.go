package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/eastgate-centre/shift-cover/pkg/db"
)

// GetWorker retrieves a worker by ID. Returns nil without error when the
// worker does not exist.
func (d *DB) GetWorker(ctx context.Context, id string) (*db.Worker, error) {
	var w db.Worker
	err := d.pool.QueryRow(ctx, `
		SELECT id, first_name, last_name, email, status
		FROM worker
		WHERE id = $1
	`, id).Scan(&w.ID, &w.FirstName, &w.LastName, &w.Email, &w.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get worker: %w", err)
	}
	return &w, nil
}

// ListWorkers retrieves all workers ordered by name
func (d *DB) ListWorkers(ctx context.Context) ([]db.Worker, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, first_name, last_name, email, status
		FROM worker
		ORDER BY last_name, first_name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query workers: %w", err)
	}
	defer rows.Close()

	var workers []db.Worker
	for rows.Next() {
		var w db.Worker
		if err := rows.Scan(&w.ID, &w.FirstName, &w.LastName, &w.Email, &w.Status); err != nil {
			return nil, fmt.Errorf("failed to scan worker: %w", err)
		}
		workers = append(workers, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating workers: %w", err)
	}

	return workers, nil
}
