package postgres

import (
	"context"
	"fmt"

	"github.com/eastgate-centre/shift-cover/pkg/db"
)

// InsertNotification writes an outbox notification row
func (d *DB) InsertNotification(ctx context.Context, n *db.Notification) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO notification (id, user_id, type, message)
		VALUES ($1, $2, $3, $4)
	`, n.ID, n.UserID, n.Type, n.Message)
	if err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}
	return nil
}
