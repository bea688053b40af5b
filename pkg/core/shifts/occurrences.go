package shifts

import (
	"context"
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
	"go.uber.org/zap"

	"github.com/eastgate-centre/shift-cover/pkg/db"
)

// Occurrence is one concrete date a shift recurrence lands on
type Occurrence struct {
	ShiftID           string
	ShiftRecurrenceID string
	Date              string // YYYY-MM-DD
	StartTime         string
	EndTime           string
}

// Store defines the database operations needed for occurrence expansion
type Store interface {
	GetShift(ctx context.Context, id string) (*db.Shift, error)
	ListShiftRecurrences(ctx context.Context, shiftID string) ([]db.ShiftRecurrence, error)
}

// ListOccurrences expands every recurrence pattern of a shift into concrete
// dates within [from, until]. Each rule is anchored to the recurrence's stored
// start date, never to the query window, so interval rules land on the same
// dates no matter which window asks. The UI uses these dates when a worker
// picks which occurrence they need cover for.
func ListOccurrences(
	ctx context.Context,
	store Store,
	logger *zap.Logger,
	shiftID string,
	from, until time.Time,
) ([]Occurrence, error) {
	if until.Before(from) {
		return nil, fmt.Errorf("until %s is before from %s", until.Format("2006-01-02"), from.Format("2006-01-02"))
	}

	shift, err := store.GetShift(ctx, shiftID)
	if err != nil {
		return nil, fmt.Errorf("failed to load shift: %w", err)
	}
	if shift == nil {
		return nil, fmt.Errorf("shift %s not found", shiftID)
	}

	recurrences, err := store.ListShiftRecurrences(ctx, shiftID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift recurrences: %w", err)
	}

	var occurrences []Occurrence
	for _, rec := range recurrences {
		rule, err := rrule.StrToRRule(rec.RRule)
		if err != nil {
			return nil, fmt.Errorf("invalid rrule on recurrence %s: %w", rec.ID, err)
		}

		anchor, err := time.Parse("2006-01-02", rec.DTStart)
		if err != nil {
			return nil, fmt.Errorf("invalid dtstart on recurrence %s: %w", rec.ID, err)
		}

		rule.DTStart(anchor.UTC())
		for _, date := range rule.Between(from, until, true) {
			occurrences = append(occurrences, Occurrence{
				ShiftID:           shift.ID,
				ShiftRecurrenceID: rec.ID,
				Date:              date.Format("2006-01-02"),
				StartTime:         shift.StartTime,
				EndTime:           shift.EndTime,
			})
		}
	}

	logger.Debug("Expanded shift occurrences",
		zap.String("shift_id", shiftID),
		zap.Int("recurrences", len(recurrences)),
		zap.Int("occurrences", len(occurrences)))

	return occurrences, nil
}

// ValidateRRule checks recurrence rule syntax before a pattern is stored
func ValidateRRule(rule string) error {
	if _, err := rrule.StrToRRule(rule); err != nil {
		return fmt.Errorf("invalid rrule %q: %w", rule, err)
	}
	return nil
}
