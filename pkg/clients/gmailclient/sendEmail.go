package gmailclient

import (
	"encoding/base64"
	"fmt"
	"time"

	"google.golang.org/api/gmail/v1"
)

// Gmail caps send throughput; notification bursts (an expiry sweep can
// transition many requests at once) are spaced out to stay under it.
const sendInterval = 3 * time.Second

// SendEmail sends a plain-text email through the authorized Gmail account.
// An empty from address leaves the sender up to Gmail.
func (c *Client) SendEmail(from, to, subject, body string) error {
	c.sendMutex.Lock()
	defer c.sendMutex.Unlock()

	if !c.lastSendTime.IsZero() {
		if elapsed := time.Since(c.lastSendTime); elapsed < sendInterval {
			time.Sleep(sendInterval - elapsed)
		}
	}

	headers := fmt.Sprintf("To: %s\r\nSubject: %s\r\n", to, subject)
	if from != "" {
		headers = fmt.Sprintf("From: %s\r\n%s", from, headers)
	}
	raw := base64.URLEncoding.EncodeToString([]byte(headers + "\r\n" + body))

	_, err := c.service.Users.Messages.Send("me", &gmail.Message{Raw: raw}).Do()
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	c.lastSendTime = time.Now()

	return nil
}
