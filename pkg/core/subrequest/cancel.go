package subrequest

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/eastgate-centre/shift-cover/pkg/db"
	"github.com/eastgate-centre/shift-cover/pkg/identity"
)

// cancellableStatuses is the broad withdrawal guard: anything that has not
// reached a terminal state may be cancelled. Deliberately wider than the
// cancel-nomination guard, which demands exactly one status.
var cancellableStatuses = []db.RequestStatus{
	db.StatusOpen,
	db.StatusAwaitingRequestConf,
	db.StatusAwaitingNominationConf,
}

// CancelStore defines the database operations needed to cancel a request
type CancelStore interface {
	GetSubRequest(ctx context.Context, id string) (*db.SubRequest, error)
	TransitionStatus(ctx context.Context, id string, from []db.RequestStatus, to db.RequestStatus) (bool, error)
}

// Cancel withdraws a substitute request entirely. Only the requesting worker
// may cancel, and only while the request has not been accepted, cancelled or
// expired. The status guard runs inside the conditional update, so a
// concurrent transition makes the later call fail rather than re-apply.
func Cancel(
	ctx context.Context,
	store CancelStore,
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

	ok, err := store.TransitionStatus(ctx, requestID, cancellableStatuses, db.StatusCancelled)
	if err != nil {
		return fmt.Errorf("failed to cancel substitute request: %w", err)
	}
	if !ok {
		return ErrNotCancellable
	}

	logger.Info("Substitute request cancelled",
		zap.String("request_id", requestID),
		zap.String("user_id", actor.ID))

	return nil
}
