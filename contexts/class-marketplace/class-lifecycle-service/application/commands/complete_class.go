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

type CompleteClassCommand struct {
	ClassID      string
	ActorID      string
	ActorIsAdmin bool
}

// CompleteClassUseCase closes a claimed class. Allowed for an admin or
// for the tutor that was selected on this posting, nobody else.
type CompleteClassUseCase struct {
	Classes ports.ClassRepository
	History ports.StateHistoryRepository
	Outbox  ports.NotificationOutbox
	Clock   ports.Clock
	IDGen   ports.IDGenerator
	Logger  *slog.Logger
}

func (uc CompleteClassUseCase) Execute(ctx context.Context, cmd CompleteClassCommand) (entities.ClassPosting, error) {
	logger := application.ResolveLogger(uc.Logger)
	class, err := uc.Classes.GetClass(ctx, strings.TrimSpace(cmd.ClassID))
	if err != nil {
		return entities.ClassPosting{}, err
	}
	if !cmd.ActorIsAdmin && !class.HasSelectedTutor(cmd.ActorID) {
		return entities.ClassPosting{}, domainerrors.ErrNotClassParticipant
	}
	if class.Status != entities.ClassStatusAwaitingPayments {
		return entities.ClassPosting{}, domainerrors.ErrInvalidStateTransition
	}

	now := uc.Clock.Now().UTC()
	from := class.Status
	class.Status = entities.ClassStatusDone
	class.Visibility = entities.VisibilityPrivate
	class.CompletedAt = &now
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

	if err := enqueueClassNotification(ctx, uc.Outbox, uc.IDGen, now, class.StudentID,
		"Class completed", "Your class "+class.Subject+" was marked as completed"); err != nil {
		return entities.ClassPosting{}, err
	}

	logger.Info("class completed",
		"event", "class_completed",
		"module", "class-marketplace/class-lifecycle-service",
		"layer", "application",
		"class_id", class.ClassID,
		"changed_by", strings.TrimSpace(cmd.ActorID),
	)
	return class, nil
}
