package commands

import (
	"context"
	"log/slog"
	"strings"

	application "tutorlink/contexts/class-marketplace/class-lifecycle-service/application"
	domainerrors "tutorlink/contexts/class-marketplace/class-lifecycle-service/domain/errors"
	"tutorlink/contexts/class-marketplace/class-lifecycle-service/ports"
)

type RequestCancelCommand struct {
	ClassID string
	ActorID string
	Reason  string
}

// RequestCancelUseCase does not transition the posting. It routes a
// cancellation request to a support contact; the final decision is a
// manual follow-up outside this module.
type RequestCancelUseCase struct {
	Classes   ports.ClassRepository
	Directory ports.UserDirectory
	Outbox    ports.NotificationOutbox
	Clock     ports.Clock
	IDGen     ports.IDGenerator
	Logger    *slog.Logger
}

func (uc RequestCancelUseCase) Execute(ctx context.Context, cmd RequestCancelCommand) error {
	logger := application.ResolveLogger(uc.Logger)
	class, err := uc.Classes.GetClass(ctx, strings.TrimSpace(cmd.ClassID))
	if err != nil {
		return err
	}
	if !class.IsOwnedBy(cmd.ActorID) && !class.HasSelectedTutor(cmd.ActorID) {
		return domainerrors.ErrNotClassParticipant
	}

	supportID, err := uc.Directory.FindSupportContact(ctx)
	if err != nil {
		return err
	}
	if strings.TrimSpace(supportID) == "" {
		return domainerrors.ErrSupportContactMissing
	}

	now := uc.Clock.Now().UTC()
	body := "Class " + class.ClassID + " cancellation requested by " + strings.TrimSpace(cmd.ActorID)
	if reason := strings.TrimSpace(cmd.Reason); reason != "" {
		body += ": " + reason
	}
	if err := enqueueClassNotification(ctx, uc.Outbox, uc.IDGen, now,
		supportID, "Class cancellation request", body); err != nil {
		return err
	}

	logger.Info("class cancellation requested",
		"event", "class_cancel_requested",
		"module", "class-marketplace/class-lifecycle-service",
		"layer", "application",
		"class_id", class.ClassID,
		"requested_by", strings.TrimSpace(cmd.ActorID),
	)
	return nil
}
