package notify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eastgate-centre/shift-cover/pkg/db"
)

type fakeEmailSender struct {
	sent []sentEmail
}

type sentEmail struct {
	from, to, subject, body string
}

func (s *fakeEmailSender) SendEmail(from, to, subject, body string) error {
	s.sent = append(s.sent, sentEmail{from, to, subject, body})
	return nil
}

type fakeWorkerStore struct {
	workers map[string]db.Worker
}

func (s *fakeWorkerStore) GetWorker(ctx context.Context, id string) (*db.Worker, error) {
	w, ok := s.workers[id]
	if !ok {
		return nil, nil
	}
	return &w, nil
}

func (s *fakeWorkerStore) ListWorkers(ctx context.Context) ([]db.Worker, error) {
	var out []db.Worker
	for _, w := range s.workers {
		out = append(out, w)
	}
	return out, nil
}

func TestEmail_SendsToWorkerAddress(t *testing.T) {
	sender := &fakeEmailSender{}
	workers := &fakeWorkerStore{workers: map[string]db.Worker{
		"worker-1": {ID: "worker-1", FirstName: "Ana", Email: "ana@example.org"},
	}}
	email := NewEmail(sender, workers, "rota@eastgate.org")

	err := email.Notify(context.Background(), "worker-1", TypeSubRequestExpired, "Your request for cover on 2024-06-01 was not filled and has expired.")

	require.NoError(t, err)
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "rota@eastgate.org", sender.sent[0].from)
	assert.Equal(t, "ana@example.org", sender.sent[0].to)
	assert.Equal(t, "Your shift cover request has expired", sender.sent[0].subject)
	assert.Contains(t, sender.sent[0].body, "Hi Ana")
	assert.Contains(t, sender.sent[0].body, "2024-06-01")
}

func TestEmail_DefaultSubjectForUnknownType(t *testing.T) {
	sender := &fakeEmailSender{}
	workers := &fakeWorkerStore{workers: map[string]db.Worker{
		"worker-1": {ID: "worker-1", FirstName: "Ana", Email: "ana@example.org"},
	}}
	email := NewEmail(sender, workers, "")

	err := email.Notify(context.Background(), "worker-1", "something_new", "Hello.")

	require.NoError(t, err)
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "Shift cover update", sender.sent[0].subject)
	assert.Empty(t, sender.sent[0].from)
}

func TestEmail_UnknownWorker(t *testing.T) {
	sender := &fakeEmailSender{}
	email := NewEmail(sender, &fakeWorkerStore{}, "")

	err := email.Notify(context.Background(), "ghost", TypeNominationAccepted, "Covered.")

	assert.ErrorContains(t, err, "no worker found")
	assert.Empty(t, sender.sent)
}
