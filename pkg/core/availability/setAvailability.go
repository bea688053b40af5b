package availability

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/eastgate-centre/shift-cover/pkg/core/subrequest"
	"github.com/eastgate-centre/shift-cover/pkg/db"
	"github.com/eastgate-centre/shift-cover/pkg/identity"
)

// SetInput identifies the shift (and optionally one recurrence instance) the
// worker is stating willingness for
type SetInput struct {
	ShiftID           string
	ShiftRecurrenceID *string
	Level             db.AvailabilityLevel
}

// ClearInput identifies the availability row to remove. Presence or absence of
// the recurrence ID selects between the shift-level row and the
// recurrence-specific row.
type ClearInput struct {
	ShiftID           string
	ShiftRecurrenceID *string
}

// Store defines the database operations for stating availability
type Store interface {
	UpsertAvailability(ctx context.Context, a *db.Availability) error
	DeleteAvailability(ctx context.Context, workerID, shiftID string, shiftRecurrenceID *string) error
}

// SetAvailability upserts the current actor's stated willingness for a shift.
// The upsert is atomic on the (worker, shift, recurrence-or-none) key, so
// concurrent writes serialize to last-writer-wins with no duplicate rows.
func SetAvailability(
	ctx context.Context,
	store Store,
	ident identity.Provider,
	logger *zap.Logger,
	input SetInput,
) error {
	actor := ident.CurrentActor(ctx)
	if actor == nil {
		return subrequest.ErrUnauthorized
	}

	if input.ShiftID == "" {
		return fmt.Errorf("%w: shift id is required", subrequest.ErrInvalidInput)
	}
	if input.Level != db.LevelUsually && input.Level != db.LevelMaybe {
		return fmt.Errorf("%w: unknown availability level %q", subrequest.ErrInvalidInput, input.Level)
	}

	a := &db.Availability{
		WorkerID:          actor.ID,
		ShiftID:           input.ShiftID,
		ShiftRecurrenceID: input.ShiftRecurrenceID,
		Level:             input.Level,
	}

	if err := store.UpsertAvailability(ctx, a); err != nil {
		return fmt.Errorf("failed to upsert availability: %w", err)
	}

	logger.Info("Availability stated",
		zap.String("worker_id", actor.ID),
		zap.String("shift_id", input.ShiftID),
		zap.Bool("recurrence_specific", input.ShiftRecurrenceID != nil),
		zap.String("level", string(input.Level)))

	return nil
}

// ClearAvailability removes the current actor's stated willingness for a shift
// or one of its recurrence instances
func ClearAvailability(
	ctx context.Context,
	store Store,
	ident identity.Provider,
	logger *zap.Logger,
	input ClearInput,
) error {
	actor := ident.CurrentActor(ctx)
	if actor == nil {
		return subrequest.ErrUnauthorized
	}

	if input.ShiftID == "" {
		return fmt.Errorf("%w: shift id is required", subrequest.ErrInvalidInput)
	}

	if err := store.DeleteAvailability(ctx, actor.ID, input.ShiftID, input.ShiftRecurrenceID); err != nil {
		return fmt.Errorf("failed to clear availability: %w", err)
	}

	logger.Info("Availability cleared",
		zap.String("worker_id", actor.ID),
		zap.String("shift_id", input.ShiftID),
		zap.Bool("recurrence_specific", input.ShiftRecurrenceID != nil))

	return nil
}
