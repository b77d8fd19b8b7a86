package commands

import (
	"context"
	"log/slog"
	"strings"

	application "tutorlink/contexts/class-marketplace/class-lifecycle-service/application"
	"tutorlink/contexts/class-marketplace/class-lifecycle-service/domain/entities"
	domainerrors "tutorlink/contexts/class-marketplace/class-lifecycle-service/domain/errors"
	"tutorlink/contexts/class-marketplace/class-lifecycle-service/ports"
)

type SelectTutorCommand struct {
	ClassID string
	ActorID string
	TutorID string
}

// SelectTutorUseCase lets the owning student claim a tutor. The posting
// leaves the tutor-facing listing immediately: visibility is forced back
// to PRIVATE together with the status change.
type SelectTutorUseCase struct {
	Classes ports.ClassRepository
	History ports.StateHistoryRepository
	Outbox  ports.NotificationOutbox
	Clock   ports.Clock
	IDGen   ports.IDGenerator
	Logger  *slog.Logger
}

func (uc SelectTutorUseCase) Execute(ctx context.Context, cmd SelectTutorCommand) (entities.ClassPosting, error) {
	logger := application.ResolveLogger(uc.Logger)
	class, err := uc.Classes.GetClass(ctx, strings.TrimSpace(cmd.ClassID))
	if err != nil {
		return entities.ClassPosting{}, err
	}
	if !class.IsOwnedBy(cmd.ActorID) {
		return entities.ClassPosting{}, domainerrors.ErrNotClassOwner
	}
	if strings.TrimSpace(cmd.TutorID) == "" {
		return entities.ClassPosting{}, domainerrors.ErrInvalidClassInput
	}
	if class.Status != entities.ClassStatusApprovedVisible {
		return entities.ClassPosting{}, domainerrors.ErrInvalidStateTransition
	}

	now := uc.Clock.Now().UTC()
	from := class.Status
	class.Status = entities.ClassStatusAwaitingPayments
	class.Visibility = entities.VisibilityPrivate
	class.SelectedTutorID = strings.TrimSpace(cmd.TutorID)
	class.UpdatedAt = now
	if err := uc.Classes.UpdateClassStatus(ctx, class, from); err != nil {
		return entities.ClassPosting{}, err
	}

	changeID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return entities.ClassPosting{}, err
	}
	if err := uc.History.AppendStateChange(ctx, entities.StateChange{
		ChangeID:  changeID,
		ClassID:   class.ClassID,
		FromState: from,
		ToState:   class.Status,
		ChangedBy: strings.TrimSpace(cmd.ActorID),
		CreatedAt: now,
	}); err != nil {
		return entities.ClassPosting{}, err
	}

	if err := enqueueClassNotification(ctx, uc.Outbox, uc.IDGen, now, class.SelectedTutorID,
		"You have been selected",
		"You were selected for class "+class.Subject+", awaiting payment"); err != nil {
		return entities.ClassPosting{}, err
	}

	logger.Info("tutor selected for class",
		"event", "class_tutor_selected",
		"module", "class-marketplace/class-lifecycle-service",
		"layer", "application",
		"class_id", class.ClassID,
		"tutor_id", class.SelectedTutorID,
		"to_status", string(class.Status),
	)
	return class, nil
}
