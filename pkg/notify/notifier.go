package notify

import "context"

// Notification types understood by the UI inbox
const (
	TypeSubRequestExpired  = "sub_request_expired"
	TypeNominationAccepted = "nomination_accepted"
)

// Notifier delivers a message to a single worker. Implementations must not
// retry on failure; retry policy belongs to the caller.
type Notifier interface {
	Notify(ctx context.Context, userID, notificationType, message string) error
}

// Multi fans a notification out to several sinks, returning the first error
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, userID, notificationType, message string) error {
	for _, n := range m {
		if err := n.Notify(ctx, userID, notificationType, message); err != nil {
			return err
		}
	}
	return nil
}
