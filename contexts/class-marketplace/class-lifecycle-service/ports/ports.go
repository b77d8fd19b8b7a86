package ports

import (
	"context"
	"time"

	"tutorlink/contexts/class-marketplace/class-lifecycle-service/domain/entities"
	"tutorlink/internal/shared/events"
)

// ClassFilter narrows listing queries. Empty fields are ignored.
// TutorEligible keeps only APPROVED_VISIBLE/PUBLIC postings with no
// selected tutor.
type ClassFilter struct {
	StudentID     string
	Status        entities.ClassStatus
	Subject       string
	TutorEligible bool
}

type ClassRepository interface {
	CreateClass(ctx context.Context, class entities.ClassPosting) error
	// UpdateClassStatus performs the guarded single-row transition write:
	// it only applies when the stored status still equals fromStatus and
	// reports ErrInvalidStateTransition otherwise.
	UpdateClassStatus(ctx context.Context, class entities.ClassPosting, fromStatus entities.ClassStatus) error
	GetClass(ctx context.Context, classID string) (entities.ClassPosting, error)
	ListClasses(ctx context.Context, filter ClassFilter) ([]entities.ClassPosting, error)
}

type StateHistoryRepository interface {
	AppendStateChange(ctx context.Context, item entities.StateChange) error
}

// PendingNotification is an outbox row: a notification decided by a
// transition but not yet delivered to the sink.
type PendingNotification struct {
	OutboxID     string
	Notification entities.Notification
	CreatedAt    time.Time
}

type NotificationOutbox interface {
	AppendNotification(ctx context.Context, item PendingNotification) error
	ListPendingNotifications(ctx context.Context, limit int) ([]PendingNotification, error)
	MarkNotificationDispatched(ctx context.Context, outboxID string, dispatchedAt time.Time) error
}

// NotificationSink is the append-only store the recipient reads elsewhere.
type NotificationSink interface {
	CreateNotification(ctx context.Context, item entities.Notification) error
}

// UserDirectory resolves display names for joined read views and the
// support recipient for cancellation requests.
type UserDirectory interface {
	DisplayName(ctx context.Context, userID string) (string, error)
	FindSupportContact(ctx context.Context) (string, error)
}

type EventEnvelope = events.Envelope

type EventPublisher interface {
	Publish(ctx context.Context, topic string, event EventEnvelope) error
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
