package notify

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/eastgate-centre/shift-cover/pkg/db"
)

// Outbox writes notifications to the database for the UI inbox to read
type Outbox struct {
	store db.NotificationStore
}

// NewOutbox creates an outbox notifier backed by the given store
func NewOutbox(store db.NotificationStore) *Outbox {
	return &Outbox{store: store}
}

func (o *Outbox) Notify(ctx context.Context, userID, notificationType, message string) error {
	n := &db.Notification{
		ID:      uuid.New().String(),
		UserID:  userID,
		Type:    notificationType,
		Message: message,
	}
	if err := o.store.InsertNotification(ctx, n); err != nil {
		return fmt.Errorf("failed to write notification to outbox: %w", err)
	}
	return nil
}
