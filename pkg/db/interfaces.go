package db

import "context"

// SubRequestStore defines the full set of substitute request database operations.
// Service packages declare narrower consumer-side interfaces; this aggregate is
// what the postgres layer implements and what command wiring passes around.
type SubRequestStore interface {
	InsertSubRequest(ctx context.Context, req *SubRequest) error
	GetSubRequest(ctx context.Context, id string) (*SubRequest, error)
	ListSubRequestsByUser(ctx context.Context, userID string) ([]SubRequest, error)

	// TransitionStatus conditionally moves a request from one of the given
	// statuses to the target status. It reports whether a row was updated;
	// false means the request was not in any of the expected statuses.
	TransitionStatus(ctx context.Context, id string, from []RequestStatus, to RequestStatus) (bool, error)

	// ClearNomination atomically returns a request awaiting nomination
	// confirmation to open, dropping the nominated substitute.
	ClearNomination(ctx context.Context, id string) (bool, error)

	// ExpireStaleSubRequests marks every request dated strictly before asOf
	// that is still open or awaiting nomination confirmation as expired,
	// returning the transitioned rows.
	ExpireStaleSubRequests(ctx context.Context, asOf string) ([]SubRequest, error)
}

// AvailabilityStore defines the worker shift availability database operations
type AvailabilityStore interface {
	UpsertAvailability(ctx context.Context, a *Availability) error
	DeleteAvailability(ctx context.Context, workerID, shiftID string, shiftRecurrenceID *string) error
	ListAvailabilityForShift(ctx context.Context, shiftID string) ([]Availability, error)
}

// WorkerStore defines worker lookup operations
type WorkerStore interface {
	GetWorker(ctx context.Context, id string) (*Worker, error)
	ListWorkers(ctx context.Context) ([]Worker, error)
}

// ShiftStore defines shift catalogue operations
type ShiftStore interface {
	GetShift(ctx context.Context, id string) (*Shift, error)
	ListShiftRecurrences(ctx context.Context, shiftID string) ([]ShiftRecurrence, error)
	InsertShiftRecurrence(ctx context.Context, r *ShiftRecurrence) error
}

// NotificationStore persists outbox notifications
type NotificationStore interface {
	InsertNotification(ctx context.Context, n *Notification) error
}
