package subrequest

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/eastgate-centre/shift-cover/internal/config"
	"github.com/eastgate-centre/shift-cover/pkg/db"
	"github.com/eastgate-centre/shift-cover/pkg/identity"
)

const (
	testShiftID      = "0b54a9b2-4f3f-4d8e-9a14-3a2f9c01d001"
	testRecurrenceID = "0b54a9b2-4f3f-4d8e-9a14-3a2f9c01d002"
)

// fakeStore keeps requests in memory and applies the same status guards the
// postgres store expresses as conditional updates
type fakeStore struct {
	requests map[string]*db.SubRequest

	insertErr     error
	transitionErr error
}

func newFakeStore(requests ...*db.SubRequest) *fakeStore {
	s := &fakeStore{requests: make(map[string]*db.SubRequest)}
	for _, req := range requests {
		s.requests[req.ID] = req
	}
	return s
}

func (s *fakeStore) InsertSubRequest(ctx context.Context, req *db.SubRequest) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	copied := *req
	s.requests[req.ID] = &copied
	return nil
}

func (s *fakeStore) GetSubRequest(ctx context.Context, id string) (*db.SubRequest, error) {
	req, ok := s.requests[id]
	if !ok {
		return nil, nil
	}
	copied := *req
	return &copied, nil
}

func (s *fakeStore) TransitionStatus(ctx context.Context, id string, from []db.RequestStatus, to db.RequestStatus) (bool, error) {
	if s.transitionErr != nil {
		return false, s.transitionErr
	}
	req, ok := s.requests[id]
	if !ok {
		return false, nil
	}
	for _, status := range from {
		if req.Status == status {
			req.Status = to
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeStore) ClearNomination(ctx context.Context, id string) (bool, error) {
	req, ok := s.requests[id]
	if !ok || req.Status != db.StatusAwaitingNominationConf {
		return false, nil
	}
	req.Status = db.StatusOpen
	req.NominatedSubUserID = nil
	req.HasNominatedSub = false
	return true, nil
}

func (s *fakeStore) ExpireStaleSubRequests(ctx context.Context, asOf string) ([]db.SubRequest, error) {
	var expired []db.SubRequest
	for _, req := range s.requests {
		if req.Status.Terminal() {
			continue
		}
		if req.Date < asOf {
			req.Status = db.StatusExpired
			expired = append(expired, *req)
		}
	}
	return expired, nil
}

// fakeNotifier records every delivered notification
type fakeNotifier struct {
	notifications []fakeNotification
	err           error
}

type fakeNotification struct {
	userID           string
	notificationType string
	message          string
}

func (n *fakeNotifier) Notify(ctx context.Context, userID, notificationType, message string) error {
	if n.err != nil {
		return n.err
	}
	n.notifications = append(n.notifications, fakeNotification{userID, notificationType, message})
	return nil
}

func asActor(id string) identity.StaticProvider {
	return identity.StaticProvider{Actor: &identity.Actor{ID: id, Role: "worker"}}
}

func noActor() identity.StaticProvider {
	return identity.StaticProvider{}
}

func testConfig() *config.Config {
	return &config.Config{
		Addr:        "localhost:8080",
		DatabaseURL: "postgres://localhost/test",
		JWTSecret:   "secret",
	}
}

func validCreateInput() CreateInput {
	return CreateInput{
		ShiftID:           testShiftID,
		ShiftRecurrenceID: testRecurrenceID,
		Date:              "2024-06-01",
		StartTime:         "09:00",
		EndTime:           "13:00",
		Type:              db.TypePlanned,
	}
}

func TestCreate_WithoutNominationStartsOpen(t *testing.T) {
	store := newFakeStore()

	req, err := Create(context.Background(), store, asActor("worker-1"), testConfig(), zap.NewNop(), validCreateInput())

	require.NoError(t, err)
	assert.Equal(t, db.StatusOpen, req.Status)
	assert.False(t, req.HasNominatedSub)
	assert.Nil(t, req.NominatedSubUserID)
	assert.Equal(t, "worker-1", req.UserID)
	assert.NotEmpty(t, req.ID)

	stored, err := store.GetSubRequest(context.Background(), req.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, db.StatusOpen, stored.Status)
}

func TestCreate_WithNominationAwaitsConfirmation(t *testing.T) {
	store := newFakeStore()
	nominee := "worker-2"
	input := validCreateInput()
	input.NominatedSubUserID = &nominee

	req, err := Create(context.Background(), store, asActor("worker-1"), testConfig(), zap.NewNop(), input)

	require.NoError(t, err)
	assert.Equal(t, db.StatusAwaitingNominationConf, req.Status)
	assert.True(t, req.HasNominatedSub)
	require.NotNil(t, req.NominatedSubUserID)
	assert.Equal(t, nominee, *req.NominatedSubUserID)
}

func TestCreate_EmptyNominationTreatedAsNone(t *testing.T) {
	store := newFakeStore()
	empty := ""
	input := validCreateInput()
	input.NominatedSubUserID = &empty

	req, err := Create(context.Background(), store, asActor("worker-1"), testConfig(), zap.NewNop(), input)

	require.NoError(t, err)
	assert.Equal(t, db.StatusOpen, req.Status)
	assert.False(t, req.HasNominatedSub)
	assert.Nil(t, req.NominatedSubUserID)
}

func TestCreate_NoActor(t *testing.T) {
	_, err := Create(context.Background(), newFakeStore(), noActor(), testConfig(), zap.NewNop(), validCreateInput())

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestCreate_MalformedInput(t *testing.T) {
	input := validCreateInput()
	input.Date = "01/06/2024"

	_, err := Create(context.Background(), newFakeStore(), asActor("worker-1"), testConfig(), zap.NewNop(), input)

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreate_UnknownType(t *testing.T) {
	input := validCreateInput()
	input.Type = "urgent"

	_, err := Create(context.Background(), newFakeStore(), asActor("worker-1"), testConfig(), zap.NewNop(), input)

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreate_StartNotBeforeEnd(t *testing.T) {
	input := validCreateInput()
	input.StartTime = "13:00"
	input.EndTime = "09:00"

	_, err := Create(context.Background(), newFakeStore(), asActor("worker-1"), testConfig(), zap.NewNop(), input)

	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestCreate_TimeOrderIgnoredWhenValidationRelaxed(t *testing.T) {
	relaxed := false
	cfg := testConfig()
	cfg.StrictRequestValidation = &relaxed

	input := validCreateInput()
	input.StartTime = "13:00"
	input.EndTime = "09:00"

	req, err := Create(context.Background(), newFakeStore(), asActor("worker-1"), cfg, zap.NewNop(), input)

	require.NoError(t, err)
	assert.Equal(t, db.StatusOpen, req.Status)
}

func TestCreate_StoreFailure(t *testing.T) {
	store := newFakeStore()
	store.insertErr = fmt.Errorf("connection refused")

	_, err := Create(context.Background(), store, asActor("worker-1"), testConfig(), zap.NewNop(), validCreateInput())

	assert.ErrorContains(t, err, "failed to insert substitute request")
}

func nominatedRequest(id, owner, nominee string) *db.SubRequest {
	return &db.SubRequest{
		ID:                 id,
		ShiftID:            testShiftID,
		ShiftRecurrenceID:  testRecurrenceID,
		UserID:             owner,
		Date:               "2024-06-01",
		StartTime:          "09:00",
		EndTime:            "13:00",
		Type:               db.TypePlanned,
		Status:             db.StatusAwaitingNominationConf,
		NominatedSubUserID: &nominee,
		HasNominatedSub:    true,
	}
}

func openRequest(id, owner string) *db.SubRequest {
	return &db.SubRequest{
		ID:                id,
		ShiftID:           testShiftID,
		ShiftRecurrenceID: testRecurrenceID,
		UserID:            owner,
		Date:              "2024-06-01",
		StartTime:         "09:00",
		EndTime:           "13:00",
		Type:              db.TypePlanned,
		Status:            db.StatusOpen,
	}
}

func TestCancelNomination_ReopensRequest(t *testing.T) {
	store := newFakeStore(nominatedRequest("req-1", "worker-1", "worker-2"))

	err := CancelNomination(context.Background(), store, asActor("worker-1"), zap.NewNop(), "req-1")

	require.NoError(t, err)
	req, _ := store.GetSubRequest(context.Background(), "req-1")
	assert.Equal(t, db.StatusOpen, req.Status)
	assert.Nil(t, req.NominatedSubUserID)
	assert.False(t, req.HasNominatedSub)
}

func TestCancelNomination_RequiresAwaitingConfirmation(t *testing.T) {
	store := newFakeStore(openRequest("req-1", "worker-1"))

	err := CancelNomination(context.Background(), store, asActor("worker-1"), zap.NewNop(), "req-1")

	assert.ErrorIs(t, err, ErrNoActiveNomination)
	req, _ := store.GetSubRequest(context.Background(), "req-1")
	assert.Equal(t, db.StatusOpen, req.Status)
}

func TestCancelNomination_OnlyOwner(t *testing.T) {
	store := newFakeStore(nominatedRequest("req-1", "worker-1", "worker-2"))

	err := CancelNomination(context.Background(), store, asActor("worker-2"), zap.NewNop(), "req-1")

	assert.ErrorIs(t, err, ErrForbidden)
	req, _ := store.GetSubRequest(context.Background(), "req-1")
	assert.Equal(t, db.StatusAwaitingNominationConf, req.Status)
}

func TestCancelNomination_UnknownRequest(t *testing.T) {
	err := CancelNomination(context.Background(), newFakeStore(), asActor("worker-1"), zap.NewNop(), "req-404")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCancelNomination_NoActor(t *testing.T) {
	err := CancelNomination(context.Background(), newFakeStore(), noActor(), zap.NewNop(), "req-1")

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestCancel_FromOpen(t *testing.T) {
	store := newFakeStore(openRequest("req-1", "worker-1"))

	err := Cancel(context.Background(), store, asActor("worker-1"), zap.NewNop(), "req-1")

	require.NoError(t, err)
	req, _ := store.GetSubRequest(context.Background(), "req-1")
	assert.Equal(t, db.StatusCancelled, req.Status)
}

func TestCancel_FromAwaitingNominationConfirmation(t *testing.T) {
	store := newFakeStore(nominatedRequest("req-1", "worker-1", "worker-2"))

	err := Cancel(context.Background(), store, asActor("worker-1"), zap.NewNop(), "req-1")

	require.NoError(t, err)
	req, _ := store.GetSubRequest(context.Background(), "req-1")
	assert.Equal(t, db.StatusCancelled, req.Status)
}

func TestCancel_TerminalStatusesRejected(t *testing.T) {
	for _, status := range []db.RequestStatus{db.StatusAccepted, db.StatusCancelled, db.StatusExpired} {
		t.Run(string(status), func(t *testing.T) {
			req := openRequest("req-1", "worker-1")
			req.Status = status
			store := newFakeStore(req)

			err := Cancel(context.Background(), store, asActor("worker-1"), zap.NewNop(), "req-1")

			assert.ErrorIs(t, err, ErrNotCancellable)
			after, _ := store.GetSubRequest(context.Background(), "req-1")
			assert.Equal(t, status, after.Status)
		})
	}
}

func TestCancel_OnlyOwner(t *testing.T) {
	store := newFakeStore(openRequest("req-1", "worker-1"))

	err := Cancel(context.Background(), store, asActor("worker-2"), zap.NewNop(), "req-1")

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCancel_UnknownRequest(t *testing.T) {
	err := Cancel(context.Background(), newFakeStore(), asActor("worker-1"), zap.NewNop(), "req-404")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAcceptNomination_MovesToAcceptedAndNotifiesRequester(t *testing.T) {
	store := newFakeStore(nominatedRequest("req-1", "worker-1", "worker-2"))
	notifier := &fakeNotifier{}

	err := AcceptNomination(context.Background(), store, notifier, asActor("worker-2"), zap.NewNop(), "req-1")

	require.NoError(t, err)
	req, _ := store.GetSubRequest(context.Background(), "req-1")
	assert.Equal(t, db.StatusAccepted, req.Status)

	require.Len(t, notifier.notifications, 1)
	assert.Equal(t, "worker-1", notifier.notifications[0].userID)
	assert.Contains(t, notifier.notifications[0].message, "2024-06-01")
}

func TestAcceptNomination_OnlyNominee(t *testing.T) {
	store := newFakeStore(nominatedRequest("req-1", "worker-1", "worker-2"))
	notifier := &fakeNotifier{}

	err := AcceptNomination(context.Background(), store, notifier, asActor("worker-3"), zap.NewNop(), "req-1")

	assert.ErrorIs(t, err, ErrForbidden)
	assert.Empty(t, notifier.notifications)
}

func TestAcceptNomination_WrongState(t *testing.T) {
	req := nominatedRequest("req-1", "worker-1", "worker-2")
	req.Status = db.StatusCancelled
	store := newFakeStore(req)

	err := AcceptNomination(context.Background(), store, &fakeNotifier{}, asActor("worker-2"), zap.NewNop(), "req-1")

	assert.ErrorIs(t, err, ErrNotAcceptable)
}

func TestAcceptNomination_NotifyFailureIsNotFatal(t *testing.T) {
	store := newFakeStore(nominatedRequest("req-1", "worker-1", "worker-2"))
	notifier := &fakeNotifier{err: fmt.Errorf("smtp down")}

	err := AcceptNomination(context.Background(), store, notifier, asActor("worker-2"), zap.NewNop(), "req-1")

	require.NoError(t, err)
	req, _ := store.GetSubRequest(context.Background(), "req-1")
	assert.Equal(t, db.StatusAccepted, req.Status)
}

func TestExpireStale_ExpiresRequestsBeforeDate(t *testing.T) {
	req := openRequest("req-1", "worker-1")
	req.Date = "2024-06-01"
	store := newFakeStore(req)
	notifier := &fakeNotifier{}

	count, err := ExpireStale(context.Background(), store, notifier, zap.NewNop(), "2024-06-02")

	require.NoError(t, err)
	assert.Equal(t, 1, count)

	after, _ := store.GetSubRequest(context.Background(), "req-1")
	assert.Equal(t, db.StatusExpired, after.Status)

	require.Len(t, notifier.notifications, 1)
	assert.Equal(t, "worker-1", notifier.notifications[0].userID)
	assert.Contains(t, notifier.notifications[0].message, "2024-06-01")
}

func TestExpireStale_SameDayNotExpired(t *testing.T) {
	req := openRequest("req-1", "worker-1")
	req.Date = "2024-06-01"
	store := newFakeStore(req)
	notifier := &fakeNotifier{}

	count, err := ExpireStale(context.Background(), store, notifier, zap.NewNop(), "2024-06-01")

	require.NoError(t, err)
	assert.Equal(t, 0, count)
	after, _ := store.GetSubRequest(context.Background(), "req-1")
	assert.Equal(t, db.StatusOpen, after.Status)
	assert.Empty(t, notifier.notifications)
}

func TestExpireStale_FutureRequestsLeftAlone(t *testing.T) {
	req := openRequest("req-1", "worker-1")
	req.Date = "2024-06-01"
	store := newFakeStore(req)

	count, err := ExpireStale(context.Background(), store, &fakeNotifier{}, zap.NewNop(), "2024-05-30")

	require.NoError(t, err)
	assert.Equal(t, 0, count)
	after, _ := store.GetSubRequest(context.Background(), "req-1")
	assert.Equal(t, db.StatusOpen, after.Status)
}

func TestExpireStale_TerminalRequestsUntouched(t *testing.T) {
	accepted := openRequest("req-1", "worker-1")
	accepted.Status = db.StatusAccepted
	cancelled := openRequest("req-2", "worker-1")
	cancelled.Status = db.StatusCancelled
	store := newFakeStore(accepted, cancelled)
	notifier := &fakeNotifier{}

	count, err := ExpireStale(context.Background(), store, notifier, zap.NewNop(), "2024-06-02")

	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.Empty(t, notifier.notifications)
}

func TestExpireStale_Idempotent(t *testing.T) {
	req := openRequest("req-1", "worker-1")
	store := newFakeStore(req)
	notifier := &fakeNotifier{}

	first, err := ExpireStale(context.Background(), store, notifier, zap.NewNop(), "2024-06-02")
	require.NoError(t, err)
	assert.Equal(t, 1, first)

	second, err := ExpireStale(context.Background(), store, notifier, zap.NewNop(), "2024-06-02")
	require.NoError(t, err)
	assert.Equal(t, 0, second)

	// One notification per transitioned request, not per sweep
	assert.Len(t, notifier.notifications, 1)
}

func TestExpireStale_RejectsMalformedDate(t *testing.T) {
	_, err := ExpireStale(context.Background(), newFakeStore(), &fakeNotifier{}, zap.NewNop(), "02/06/2024")

	assert.Error(t, err)
}
