package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/eastgate-centre/shift-cover/pkg/db"
)

// GetShift retrieves a shift by ID. Returns nil without error when the shift
// does not exist.
func (d *DB) GetShift(ctx context.Context, id string) (*db.Shift, error) {
	var s db.Shift
	err := d.pool.QueryRow(ctx, `
		SELECT id, name, start_time, end_time, rrule
		FROM shift
		WHERE id = $1
	`, id).Scan(&s.ID, &s.Name, &s.StartTime, &s.EndTime, &s.RRule)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get shift: %w", err)
	}
	return &s, nil
}

// ListShiftRecurrences retrieves the recurrence patterns of a shift
func (d *DB) ListShiftRecurrences(ctx context.Context, shiftID string) ([]db.ShiftRecurrence, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, shift_id, rrule, dtstart, label
		FROM shift_recurrence
		WHERE shift_id = $1
	`, shiftID)
	if err != nil {
		return nil, fmt.Errorf("failed to query shift recurrences: %w", err)
	}
	defer rows.Close()

	var recurrences []db.ShiftRecurrence
	for rows.Next() {
		var r db.ShiftRecurrence
		var dtstart time.Time
		if err := rows.Scan(&r.ID, &r.ShiftID, &r.RRule, &dtstart, &r.Label); err != nil {
			return nil, fmt.Errorf("failed to scan shift recurrence: %w", err)
		}
		r.DTStart = dtstart.Format("2006-01-02")
		recurrences = append(recurrences, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shift recurrences: %w", err)
	}

	return recurrences, nil
}

// InsertShiftRecurrence stores a new recurrence pattern for a shift
func (d *DB) InsertShiftRecurrence(ctx context.Context, r *db.ShiftRecurrence) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO shift_recurrence (id, shift_id, rrule, dtstart, label)
		VALUES ($1, $2, $3, $4, $5)
	`, r.ID, r.ShiftID, r.RRule, r.DTStart, r.Label)
	if err != nil {
		return fmt.Errorf("failed to insert shift recurrence: %w", err)
	}
	return nil
}
