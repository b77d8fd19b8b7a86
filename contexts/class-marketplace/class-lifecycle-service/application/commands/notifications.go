package commands

import (
	"context"
	"time"

	"tutorlink/contexts/class-marketplace/class-lifecycle-service/domain/entities"
	"tutorlink/contexts/class-marketplace/class-lifecycle-service/ports"
)

// enqueueClassNotification writes a pending outbox row; the relay worker
// delivers it to the sink later. Transition success does not depend on
// delivery, only on the enqueue itself.
func enqueueClassNotification(
	ctx context.Context,
	outbox ports.NotificationOutbox,
	idGen ports.IDGenerator,
	now time.Time,
	userID string,
	title string,
	body string,
) error {
	notificationID, err := idGen.NewID(ctx)
	if err != nil {
		return err
	}
	outboxID, err := idGen.NewID(ctx)
	if err != nil {
		return err
	}
	return outbox.AppendNotification(ctx, ports.PendingNotification{
		OutboxID: outboxID,
		Notification: entities.Notification{
			NotificationID: notificationID,
			UserID:         userID,
			Title:          title,
			Body:           body,
			Type:           entities.NotificationTypeClassUpdate,
			CreatedAt:      now,
		},
		CreatedAt: now,
	})
}
