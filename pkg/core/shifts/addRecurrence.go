package shifts

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/eastgate-centre/shift-cover/pkg/db"
)

// RecurrenceStore defines the database operations needed to store a pattern
type RecurrenceStore interface {
	GetShift(ctx context.Context, id string) (*db.Shift, error)
	InsertShiftRecurrence(ctx context.Context, r *db.ShiftRecurrence) error
}

// AddRecurrence stores a new recurrence pattern for a shift. The rule and its
// anchor date are validated up front; a pattern that cannot be expanded never
// reaches the database.
func AddRecurrence(
	ctx context.Context,
	store RecurrenceStore,
	logger *zap.Logger,
	shiftID, rule, dtstart, label string,
) (*db.ShiftRecurrence, error) {
	if err := ValidateRRule(rule); err != nil {
		return nil, err
	}
	if _, err := time.Parse("2006-01-02", dtstart); err != nil {
		return nil, fmt.Errorf("invalid dtstart %q: %w", dtstart, err)
	}

	shift, err := store.GetShift(ctx, shiftID)
	if err != nil {
		return nil, fmt.Errorf("failed to load shift: %w", err)
	}
	if shift == nil {
		return nil, fmt.Errorf("shift %s not found", shiftID)
	}

	rec := &db.ShiftRecurrence{
		ID:      uuid.New().String(),
		ShiftID: shiftID,
		RRule:   rule,
		DTStart: dtstart,
		Label:   label,
	}

	if err := store.InsertShiftRecurrence(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to insert shift recurrence: %w", err)
	}

	logger.Info("Shift recurrence stored",
		zap.String("shift_id", shiftID),
		zap.String("recurrence_id", rec.ID),
		zap.String("rrule", rule),
		zap.String("dtstart", dtstart))

	return rec, nil
}
