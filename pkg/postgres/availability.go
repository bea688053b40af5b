package postgres

import (
	"context"
	"fmt"

	"github.com/eastgate-centre/shift-cover/pkg/db"
)

// UpsertAvailability inserts or updates a worker's stated availability. The
// conflict arbiter is the exact composite key: the partial index over
// (worker, shift) when no recurrence is given, or over (worker, shift,
// recurrence) otherwise. Concurrent upserts for the same key serialize to
// last-writer-wins with no duplicate rows.
func (d *DB) UpsertAvailability(ctx context.Context, a *db.Availability) error {
	var err error
	if a.ShiftRecurrenceID == nil {
		_, err = d.pool.Exec(ctx, `
			INSERT INTO worker_shift_availability (worker_id, shift_id, shift_recurrence_id, level)
			VALUES ($1, $2, NULL, $3)
			ON CONFLICT (worker_id, shift_id) WHERE shift_recurrence_id IS NULL
			DO UPDATE SET level = EXCLUDED.level, updated_at = NOW()
		`, a.WorkerID, a.ShiftID, string(a.Level))
	} else {
		_, err = d.pool.Exec(ctx, `
			INSERT INTO worker_shift_availability (worker_id, shift_id, shift_recurrence_id, level)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (worker_id, shift_id, shift_recurrence_id) WHERE shift_recurrence_id IS NOT NULL
			DO UPDATE SET level = EXCLUDED.level, updated_at = NOW()
		`, a.WorkerID, a.ShiftID, *a.ShiftRecurrenceID, string(a.Level))
	}
	if err != nil {
		return fmt.Errorf("failed to upsert availability: %w", err)
	}
	return nil
}

// DeleteAvailability removes the row for the exact composite key. A nil
// recurrence ID targets the shift-level row, not every row for the shift.
func (d *DB) DeleteAvailability(ctx context.Context, workerID, shiftID string, shiftRecurrenceID *string) error {
	var err error
	if shiftRecurrenceID == nil {
		_, err = d.pool.Exec(ctx, `
			DELETE FROM worker_shift_availability
			WHERE worker_id = $1 AND shift_id = $2 AND shift_recurrence_id IS NULL
		`, workerID, shiftID)
	} else {
		_, err = d.pool.Exec(ctx, `
			DELETE FROM worker_shift_availability
			WHERE worker_id = $1 AND shift_id = $2 AND shift_recurrence_id = $3
		`, workerID, shiftID, *shiftRecurrenceID)
	}
	if err != nil {
		return fmt.Errorf("failed to delete availability: %w", err)
	}
	return nil
}

// ListAvailabilityForShift retrieves every worker's stated availability for a shift
func (d *DB) ListAvailabilityForShift(ctx context.Context, shiftID string) ([]db.Availability, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT worker_id, shift_id, shift_recurrence_id, level
		FROM worker_shift_availability
		WHERE shift_id = $1
	`, shiftID)
	if err != nil {
		return nil, fmt.Errorf("failed to query availability: %w", err)
	}
	defer rows.Close()

	var availabilities []db.Availability
	for rows.Next() {
		var a db.Availability
		var level string
		if err := rows.Scan(&a.WorkerID, &a.ShiftID, &a.ShiftRecurrenceID, &level); err != nil {
			return nil, fmt.Errorf("failed to scan availability: %w", err)
		}
		a.Level = db.AvailabilityLevel(level)
		availabilities = append(availabilities, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating availability: %w", err)
	}

	return availabilities, nil
}
