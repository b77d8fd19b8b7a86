package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"tutorlink/contexts/class-marketplace/class-lifecycle-service/domain/entities"
	domainerrors "tutorlink/contexts/class-marketplace/class-lifecycle-service/domain/errors"
	"tutorlink/contexts/class-marketplace/class-lifecycle-service/ports"

	"github.com/google/uuid"
)

// Store implements every lifecycle port in memory. Used by tests and by
// the in-memory module wiring.
type Store struct {
	mu sync.RWMutex

	classes       map[string]entities.ClassPosting
	stateLog      []entities.StateChange
	outbox        map[string]ports.PendingNotification
	notifications []entities.Notification
	published     []ports.EventEnvelope

	displayNames map[string]string
	supportID    string
}

func NewStore(seed []entities.ClassPosting) *Store {
	classes := make(map[string]entities.ClassPosting, len(seed))
	for _, item := range seed {
		classes[item.ClassID] = item
	}
	return &Store{
		classes:      classes,
		outbox:       make(map[string]ports.PendingNotification),
		displayNames: make(map[string]string),
	}
}

// SetDisplayName seeds the directory view.
func (s *Store) SetDisplayName(userID string, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.displayNames[userID] = name
}

// SetSupportContact seeds the cancellation-request recipient.
func (s *Store) SetSupportContact(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.supportID = userID
}

func (s *Store) CreateClass(_ context.Context, class entities.ClassPosting) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.classes[class.ClassID]; exists {
		return domainerrors.ErrInvalidClassInput
	}
	s.classes[class.ClassID] = class
	return nil
}

func (s *Store) UpdateClassStatus(_ context.Context, class entities.ClassPosting, fromStatus entities.ClassStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, exists := s.classes[class.ClassID]
	if !exists {
		return domainerrors.ErrClassNotFound
	}
	if current.Status != fromStatus {
		return domainerrors.ErrInvalidStateTransition
	}
	s.classes[class.ClassID] = class
	return nil
}

func (s *Store) GetClass(_ context.Context, classID string) (entities.ClassPosting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.classes[strings.TrimSpace(classID)]
	if !exists {
		return entities.ClassPosting{}, domainerrors.ErrClassNotFound
	}
	return item, nil
}

func (s *Store) ListClasses(_ context.Context, filter ports.ClassFilter) ([]entities.ClassPosting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.ClassPosting, 0, len(s.classes))
	for _, class := range s.classes {
		if filter.StudentID != "" && class.StudentID != filter.StudentID {
			continue
		}
		if filter.Status != "" && class.Status != filter.Status {
			continue
		}
		if filter.Subject != "" && !strings.Contains(
			strings.ToLower(class.Subject), strings.ToLower(filter.Subject)) {
			continue
		}
		if filter.TutorEligible && !class.VisibleToTutors() {
			continue
		}
		items = append(items, class)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (s *Store) AppendStateChange(_ context.Context, item entities.StateChange) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stateLog = append(s.stateLog, item)
	return nil
}

// StateChanges returns a copy of the transition log, newest last.
func (s *Store) StateChanges() []entities.StateChange {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entities.StateChange(nil), s.stateLog...)
}

func (s *Store) AppendNotification(_ context.Context, item ports.PendingNotification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.outbox[item.OutboxID]; exists {
		return domainerrors.ErrInvalidClassInput
	}
	s.outbox[item.OutboxID] = item
	return nil
}

func (s *Store) ListPendingNotifications(_ context.Context, limit int) ([]ports.PendingNotification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]ports.PendingNotification, 0, len(s.outbox))
	for _, item := range s.outbox {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func (s *Store) MarkNotificationDispatched(_ context.Context, outboxID string, _ time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.outbox[outboxID]; !exists {
		return domainerrors.ErrClassNotFound
	}
	delete(s.outbox, outboxID)
	return nil
}

func (s *Store) CreateNotification(_ context.Context, item entities.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notifications = append(s.notifications, item)
	return nil
}

// Notifications returns delivered notifications, oldest first.
func (s *Store) Notifications() []entities.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entities.Notification(nil), s.notifications...)
}

// PendingCount reports undelivered outbox rows.
func (s *Store) PendingCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.outbox)
}

func (s *Store) DisplayName(_ context.Context, userID string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	name, exists := s.displayNames[strings.TrimSpace(userID)]
	if !exists {
		return "", nil
	}
	return name, nil
}

func (s *Store) FindSupportContact(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.supportID, nil
}

func (s *Store) Publish(_ context.Context, _ string, event ports.EventEnvelope) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.published = append(s.published, event)
	return nil
}

// Published returns envelopes emitted through the in-memory bus.
func (s *Store) Published() []ports.EventEnvelope {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]ports.EventEnvelope(nil), s.published...)
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
