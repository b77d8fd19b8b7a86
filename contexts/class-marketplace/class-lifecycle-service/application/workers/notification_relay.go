package workers

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	application "tutorlink/contexts/class-marketplace/class-lifecycle-service/application"
	"tutorlink/contexts/class-marketplace/class-lifecycle-service/ports"
)

// NotificationRelay drains the notification outbox: each pending row is
// written to the sink, announced on the event bus, then marked dispatched.
// A failed row stays pending and is retried on the next cycle.
type NotificationRelay struct {
	Outbox    ports.NotificationOutbox
	Sink      ports.NotificationSink
	Publisher ports.EventPublisher
	Clock     ports.Clock
	Topic     string
	BatchSize int
	Logger    *slog.Logger
}

func (r NotificationRelay) RunOnce(ctx context.Context) error {
	logger := application.ResolveLogger(r.Logger)
	limit := r.BatchSize
	if limit <= 0 {
		limit = 100
	}

	pending, err := r.Outbox.ListPendingNotifications(ctx, limit)
	if err != nil {
		logger.Error("notification outbox list failed",
			"event", "notification_outbox_list_failed",
			"module", "class-marketplace/class-lifecycle-service",
			"layer", "worker",
			"error", err.Error(),
		)
		return err
	}

	now := time.Now().UTC()
	if r.Clock != nil {
		now = r.Clock.Now().UTC()
	}

	for _, row := range pending {
		if err := r.Sink.CreateNotification(ctx, row.Notification); err != nil {
			logger.Error("notification delivery failed",
				"event", "notification_delivery_failed",
				"module", "class-marketplace/class-lifecycle-service",
				"layer", "worker",
				"outbox_id", row.OutboxID,
				"user_id", row.Notification.UserID,
				"error", err.Error(),
			)
			return err
		}

		if r.Publisher != nil {
			payload, err := json.Marshal(row.Notification)
			if err != nil {
				return err
			}
			envelope := ports.EventEnvelope{
				EventID:       row.OutboxID,
				EventType:     "class.notification",
				OccurredAt:    row.CreatedAt,
				SourceService: "class-lifecycle-service",
				SchemaVersion: 1,
				PartitionKey:  row.Notification.UserID,
				Data:          payload,
			}
			if err := r.Publisher.Publish(ctx, r.Topic, envelope); err != nil {
				logger.Error("notification publish failed",
					"event", "notification_publish_failed",
					"module", "class-marketplace/class-lifecycle-service",
					"layer", "worker",
					"outbox_id", row.OutboxID,
					"error", err.Error(),
				)
				return err
			}
		}

		if err := r.Outbox.MarkNotificationDispatched(ctx, row.OutboxID, now); err != nil {
			logger.Error("notification mark dispatched failed",
				"event", "notification_mark_dispatched_failed",
				"module", "class-marketplace/class-lifecycle-service",
				"layer", "worker",
				"outbox_id", row.OutboxID,
				"error", err.Error(),
			)
			return err
		}
	}

	if len(pending) > 0 {
		logger.Info("notification relay cycle completed",
			"event", "notification_relay_completed",
			"module", "class-marketplace/class-lifecycle-service",
			"layer", "worker",
			"dispatched_count", len(pending),
		)
	}
	return nil
}
