package db

// RequestStatus is the lifecycle state of a substitute request
type RequestStatus string

const (
	StatusOpen                   RequestStatus = "open"
	StatusAwaitingRequestConf    RequestStatus = "awaiting_request_confirmation"
	StatusAwaitingNominationConf RequestStatus = "awaiting_nomination_confirmation"
	StatusAccepted               RequestStatus = "accepted"
	StatusCancelled              RequestStatus = "cancelled"
	StatusExpired                RequestStatus = "expired"
)

// Terminal reports whether the status has no outgoing transitions
func (s RequestStatus) Terminal() bool {
	return s == StatusAccepted || s == StatusCancelled || s == StatusExpired
}

// RequestType classifies how far in advance cover is being sought
type RequestType string

const (
	TypePlanned    RequestType = "planned"
	TypeLastMinute RequestType = "last_minute"
)

// AvailabilityLevel is a worker's coarse willingness to cover a shift
type AvailabilityLevel string

const (
	LevelUsually AvailabilityLevel = "usually"
	LevelMaybe   AvailabilityLevel = "maybe"
)

// SubRequest represents one need for shift coverage on a specific calendar date
type SubRequest struct {
	ID                 string
	ShiftID            string
	ShiftRecurrenceID  string
	UserID             string
	Date               string // YYYY-MM-DD
	StartTime          string // HH:MM local wall clock
	EndTime            string // HH:MM local wall clock
	Type               RequestType
	Status             RequestStatus
	NominatedSubUserID *string
	HasNominatedSub    bool
	Notes              string
}

// Availability is a worker's stated willingness to cover a shift.
// A nil ShiftRecurrenceID means the row applies to the shift in general
// rather than to one recurrence instance.
type Availability struct {
	WorkerID          string
	ShiftID           string
	ShiftRecurrenceID *string
	Level             AvailabilityLevel
}

// Worker represents a centre worker who can request or provide cover
type Worker struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Status    string
}

// Shift is a recurring work slot workers are assigned to
type Shift struct {
	ID        string
	Name      string
	StartTime string
	EndTime   string
	RRule     string
}

// ShiftRecurrence is one concrete pattern instance of a shift,
// e.g. "every other Tuesday". DTStart anchors the pattern: interval rules
// count from it, so it never moves once the recurrence is stored.
type ShiftRecurrence struct {
	ID      string
	ShiftID string
	RRule   string
	DTStart string // YYYY-MM-DD
	Label   string
}

// Notification is an outbox row delivered to the worker's inbox in the UI
type Notification struct {
	ID      string
	UserID  string
	Type    string
	Message string
}
