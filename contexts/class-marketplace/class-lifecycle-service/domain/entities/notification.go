package entities

import "time"

type NotificationType string

const (
	NotificationTypeClassUpdate NotificationType = "CLASS_UPDATE"
)

// Notification is an asynchronous message to one recipient user.
// Immutable once created; reading/consuming lives outside this module.
type Notification struct {
	NotificationID string
	UserID         string
	Title          string
	Body           string
	Type           NotificationType
	CreatedAt      time.Time
}
