package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/eastgate-centre/shift-cover/pkg/db"
)

// InsertSubRequest inserts a new substitute request record
func (d *DB) InsertSubRequest(ctx context.Context, req *db.SubRequest) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO sub_request (id, shift_id, shift_recurrence_id, user_id, date, start_time, end_time, type, status, nominated_sub_user_id, has_nominated_sub, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`, req.ID, req.ShiftID, req.ShiftRecurrenceID, req.UserID, req.Date, req.StartTime, req.EndTime,
		string(req.Type), string(req.Status), req.NominatedSubUserID, req.HasNominatedSub, req.Notes)
	if err != nil {
		return fmt.Errorf("failed to insert sub request: %w", err)
	}
	return nil
}

// GetSubRequest retrieves a substitute request by ID. Returns nil without
// error when the request does not exist.
func (d *DB) GetSubRequest(ctx context.Context, id string) (*db.SubRequest, error) {
	row := d.pool.QueryRow(ctx, `
		SELECT id, shift_id, shift_recurrence_id, user_id, date, start_time, end_time, type, status, nominated_sub_user_id, has_nominated_sub, notes
		FROM sub_request
		WHERE id = $1
	`, id)

	req, err := scanSubRequest(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get sub request: %w", err)
	}
	return req, nil
}

// ListSubRequestsByUser retrieves all substitute requests owned by a worker,
// most recent date first
func (d *DB) ListSubRequestsByUser(ctx context.Context, userID string) ([]db.SubRequest, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, shift_id, shift_recurrence_id, user_id, date, start_time, end_time, type, status, nominated_sub_user_id, has_nominated_sub, notes
		FROM sub_request
		WHERE user_id = $1
		ORDER BY date DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query sub requests: %w", err)
	}
	defer rows.Close()

	var requests []db.SubRequest
	for rows.Next() {
		req, err := scanSubRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sub request: %w", err)
		}
		requests = append(requests, *req)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sub requests: %w", err)
	}

	return requests, nil
}

// TransitionStatus conditionally moves a request between statuses. The status
// check and the update are one statement, so a concurrent transition makes
// this report false rather than re-applying.
func (d *DB) TransitionStatus(ctx context.Context, id string, from []db.RequestStatus, to db.RequestStatus) (bool, error) {
	fromStrs := make([]string, len(from))
	for i, s := range from {
		fromStrs[i] = string(s)
	}

	tag, err := d.pool.Exec(ctx, `
		UPDATE sub_request
		SET status = $3, updated_at = NOW()
		WHERE id = $1 AND status = ANY($2)
	`, id, fromStrs, string(to))
	if err != nil {
		return false, fmt.Errorf("failed to transition sub request status: %w", err)
	}

	return tag.RowsAffected() == 1, nil
}

// ClearNomination atomically reopens a request awaiting nomination
// confirmation, dropping the nominated substitute
func (d *DB) ClearNomination(ctx context.Context, id string) (bool, error) {
	tag, err := d.pool.Exec(ctx, `
		UPDATE sub_request
		SET status = $2, nominated_sub_user_id = NULL, has_nominated_sub = FALSE, updated_at = NOW()
		WHERE id = $1 AND status = $3
	`, id, string(db.StatusOpen), string(db.StatusAwaitingNominationConf))
	if err != nil {
		return false, fmt.Errorf("failed to clear nomination: %w", err)
	}

	return tag.RowsAffected() == 1, nil
}

// ExpireStaleSubRequests marks unfilled requests dated strictly before asOf as
// expired and returns the transitioned rows. Only rows still in a pre-expiry
// status are selected, which makes repeated sweeps with the same date no-ops.
func (d *DB) ExpireStaleSubRequests(ctx context.Context, asOf string) ([]db.SubRequest, error) {
	rows, err := d.pool.Query(ctx, `
		UPDATE sub_request
		SET status = $2, updated_at = NOW()
		WHERE date < $1 AND status = ANY($3)
		RETURNING id, shift_id, shift_recurrence_id, user_id, date, start_time, end_time, type, status, nominated_sub_user_id, has_nominated_sub, notes
	`, asOf, string(db.StatusExpired), []string{string(db.StatusOpen), string(db.StatusAwaitingNominationConf)})
	if err != nil {
		return nil, fmt.Errorf("failed to expire stale sub requests: %w", err)
	}
	defer rows.Close()

	var expired []db.SubRequest
	for rows.Next() {
		req, err := scanSubRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expired sub request: %w", err)
		}
		expired = append(expired, *req)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expired sub requests: %w", err)
	}

	return expired, nil
}

func scanSubRequest(row pgx.Row) (*db.SubRequest, error) {
	var req db.SubRequest
	var date time.Time
	var reqType, status string
	if err := row.Scan(&req.ID, &req.ShiftID, &req.ShiftRecurrenceID, &req.UserID, &date,
		&req.StartTime, &req.EndTime, &reqType, &status,
		&req.NominatedSubUserID, &req.HasNominatedSub, &req.Notes); err != nil {
		return nil, err
	}
	req.Date = date.Format("2006-01-02")
	req.Type = db.RequestType(reqType)
	req.Status = db.RequestStatus(status)
	return &req, nil
}
