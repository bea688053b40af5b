package subrequest

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/eastgate-centre/shift-cover/pkg/db"
	"github.com/eastgate-centre/shift-cover/pkg/notify"
)

// ExpiryStore defines the database operations needed for the expiry sweep
type ExpiryStore interface {
	ExpireStaleSubRequests(ctx context.Context, asOf string) ([]db.SubRequest, error)
}

// ExpireStale marks every unfilled request dated strictly before asOf as
// expired and notifies each requester once. The store only selects rows still
// in a pre-expiry status, so re-running the sweep with the same date expires
// nothing further and sends no duplicate notifications. Returns the number of
// requests transitioned.
func ExpireStale(
	ctx context.Context,
	store ExpiryStore,
	notifier notify.Notifier,
	logger *zap.Logger,
	asOf string,
) (int, error) {
	if _, err := time.Parse("2006-01-02", asOf); err != nil {
		return 0, fmt.Errorf("invalid as-of date %q: %w", asOf, err)
	}

	logger.Info("Starting expiry sweep", zap.String("as_of", asOf))

	expired, err := store.ExpireStaleSubRequests(ctx, asOf)
	if err != nil {
		return 0, fmt.Errorf("failed to expire stale substitute requests: %w", err)
	}

	logger.Info("Expired stale substitute requests", zap.Int("count", len(expired)))

	for _, req := range expired {
		message := fmt.Sprintf("Your request for cover on %s was not filled and has expired.", req.Date)
		if err := notifier.Notify(ctx, req.UserID, notify.TypeSubRequestExpired, message); err != nil {
			logger.Warn("Failed to notify requester of expired request",
				zap.String("request_id", req.ID),
				zap.String("user_id", req.UserID),
				zap.Error(err))
			continue
		}

		logger.Debug("Expiry notification sent",
			zap.String("request_id", req.ID),
			zap.String("user_id", req.UserID),
			zap.String("date", req.Date))
	}

	return len(expired), nil
}
