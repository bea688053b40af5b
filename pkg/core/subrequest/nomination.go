package subrequest

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/eastgate-centre/shift-cover/pkg/db"
	"github.com/eastgate-centre/shift-cover/pkg/identity"
	"github.com/eastgate-centre/shift-cover/pkg/notify"
)

// NominationStore defines the database operations needed to roll back or
// confirm a nomination
type NominationStore interface {
	GetSubRequest(ctx context.Context, id string) (*db.SubRequest, error)
	ClearNomination(ctx context.Context, id string) (bool, error)
	TransitionStatus(ctx context.Context, id string, from []db.RequestStatus, to db.RequestStatus) (bool, error)
}

// CancelNomination rolls a nominated request back to open, dropping the
// nominated substitute. Only the requesting worker may do this, and only while
// the request is awaiting nomination confirmation; this guard is intentionally
// narrower than Cancel's.
func CancelNomination(
	ctx context.Context,
	store NominationStore,
	ident identity.Provider,
	logger *zap.Logger,
	requestID string,
) error {
	actor := ident.CurrentActor(ctx)
	if actor == nil {
		return ErrUnauthorized
	}

	req, err := store.GetSubRequest(ctx, requestID)
	if err != nil {
		return fmt.Errorf("failed to load substitute request: %w", err)
	}
	if req == nil {
		return ErrNotFound
	}
	if req.UserID != actor.ID {
		return ErrForbidden
	}

	ok, err := store.ClearNomination(ctx, requestID)
	if err != nil {
		return fmt.Errorf("failed to clear nomination: %w", err)
	}
	if !ok {
		return ErrNoActiveNomination
	}

	logger.Info("Nomination cancelled, request reopened",
		zap.String("request_id", requestID),
		zap.String("user_id", actor.ID))

	return nil
}

// AcceptNomination confirms a nomination. Only the nominated worker may
// accept, moving the request to accepted and notifying the requester.
func AcceptNomination(
	ctx context.Context,
	store NominationStore,
	notifier notify.Notifier,
	ident identity.Provider,
	logger *zap.Logger,
	requestID string,
) error {
	actor := ident.CurrentActor(ctx)
	if actor == nil {
		return ErrUnauthorized
	}

	req, err := store.GetSubRequest(ctx, requestID)
	if err != nil {
		return fmt.Errorf("failed to load substitute request: %w", err)
	}
	if req == nil {
		return ErrNotFound
	}
	if req.NominatedSubUserID == nil || *req.NominatedSubUserID != actor.ID {
		return ErrForbidden
	}

	ok, err := store.TransitionStatus(ctx, requestID,
		[]db.RequestStatus{db.StatusAwaitingNominationConf}, db.StatusAccepted)
	if err != nil {
		return fmt.Errorf("failed to accept nomination: %w", err)
	}
	if !ok {
		return ErrNotAcceptable
	}

	logger.Info("Nomination accepted",
		zap.String("request_id", requestID),
		zap.String("sub_user_id", actor.ID))

	message := fmt.Sprintf("Your shift on %s will be covered.", req.Date)
	if err := notifier.Notify(ctx, req.UserID, notify.TypeNominationAccepted, message); err != nil {
		logger.Warn("Failed to notify requester of accepted nomination",
			zap.String("request_id", requestID),
			zap.String("user_id", req.UserID),
			zap.Error(err))
	}

	return nil
}
