package notify

import (
	"context"
	"fmt"

	"github.com/eastgate-centre/shift-cover/pkg/db"
)

// EmailSender sends a plain-text email; satisfied by gmailclient.Client
type EmailSender interface {
	SendEmail(from, to, subject, body string) error
}

// Email delivers notifications as emails, resolving the worker's address
// through the worker store. The from address comes from the gmailSender
// config setting and may be empty.
type Email struct {
	sender  EmailSender
	workers db.WorkerStore
	from    string
}

// NewEmail creates an email notifier
func NewEmail(sender EmailSender, workers db.WorkerStore, from string) *Email {
	return &Email{sender: sender, workers: workers, from: from}
}

var subjects = map[string]string{
	TypeSubRequestExpired:  "Your shift cover request has expired",
	TypeNominationAccepted: "Your shift cover request has been accepted",
}

func (e *Email) Notify(ctx context.Context, userID, notificationType, message string) error {
	worker, err := e.workers.GetWorker(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to look up worker %s: %w", userID, err)
	}
	if worker == nil {
		return fmt.Errorf("no worker found for id %s", userID)
	}

	subject, ok := subjects[notificationType]
	if !ok {
		subject = "Shift cover update"
	}

	body := fmt.Sprintf("Hi %s\n\n%s\n\nThanks\nThe Eastgate centre team\n", worker.FirstName, message)
	if err := e.sender.SendEmail(e.from, worker.Email, subject, body); err != nil {
		return fmt.Errorf("failed to send notification email to %s: %w", worker.Email, err)
	}

	return nil
}
