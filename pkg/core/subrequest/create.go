package subrequest

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/eastgate-centre/shift-cover/internal/config"
	"github.com/eastgate-centre/shift-cover/pkg/db"
	"github.com/eastgate-centre/shift-cover/pkg/identity"
)

var validate = validator.New()

// CreateInput carries everything needed to open a new substitute request
type CreateInput struct {
	ShiftID            string `validate:"required,uuid"`
	ShiftRecurrenceID  string `validate:"required,uuid"`
	Date               string `validate:"required,datetime=2006-01-02"`
	StartTime          string `validate:"required,datetime=15:04"`
	EndTime            string `validate:"required,datetime=15:04"`
	Type               db.RequestType
	Notes              string
	NominatedSubUserID *string
}

// CreateStore defines the database operations needed to create a request
type CreateStore interface {
	InsertSubRequest(ctx context.Context, req *db.SubRequest) error
}

// Create opens a new substitute request owned by the current actor. A request
// created with a nominated substitute starts awaiting that worker's
// confirmation; one without starts open.
func Create(
	ctx context.Context,
	store CreateStore,
	ident identity.Provider,
	cfg *config.Config,
	logger *zap.Logger,
	input CreateInput,
) (*db.SubRequest, error) {
	actor := ident.CurrentActor(ctx)
	if actor == nil {
		return nil, ErrUnauthorized
	}

	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if input.Type != db.TypePlanned && input.Type != db.TypeLastMinute {
		return nil, fmt.Errorf("%w: unknown request type %q", ErrInvalidInput, input.Type)
	}

	if cfg.StrictValidation() {
		start, _ := time.Parse("15:04", input.StartTime)
		end, _ := time.Parse("15:04", input.EndTime)
		if !start.Before(end) {
			return nil, ErrInvalidTimeRange
		}
	}

	status := db.StatusOpen
	hasNominatedSub := false
	if input.NominatedSubUserID != nil && *input.NominatedSubUserID != "" {
		status = db.StatusAwaitingNominationConf
		hasNominatedSub = true
	} else {
		input.NominatedSubUserID = nil
	}

	req := &db.SubRequest{
		ID:                 uuid.New().String(),
		ShiftID:            input.ShiftID,
		ShiftRecurrenceID:  input.ShiftRecurrenceID,
		UserID:             actor.ID,
		Date:               input.Date,
		StartTime:          input.StartTime,
		EndTime:            input.EndTime,
		Type:               input.Type,
		Status:             status,
		NominatedSubUserID: input.NominatedSubUserID,
		HasNominatedSub:    hasNominatedSub,
		Notes:              input.Notes,
	}

	logger.Info("Creating substitute request",
		zap.String("request_id", req.ID),
		zap.String("user_id", actor.ID),
		zap.String("shift_id", req.ShiftID),
		zap.String("date", req.Date),
		zap.String("status", string(req.Status)),
		zap.Bool("has_nominated_sub", req.HasNominatedSub))

	if err := store.InsertSubRequest(ctx, req); err != nil {
		return nil, fmt.Errorf("failed to insert substitute request: %w", err)
	}

	logger.Debug("Substitute request created", zap.String("request_id", req.ID))

	return req, nil
}
