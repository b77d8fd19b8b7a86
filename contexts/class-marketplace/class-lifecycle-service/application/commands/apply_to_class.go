package commands

import (
	"context"
	"log/slog"
	"strings"

	application "tutorlink/contexts/class-marketplace/class-lifecycle-service/application"
	"tutorlink/contexts/class-marketplace/class-lifecycle-service/ports"
)

type ApplyToClassCommand struct {
	ClassID string
	TutorID string
	Message string
}

// ApplyToClassUseCase records a tutor's interest. The posting does not
// change state; the owning student is notified and picks a tutor later.
type ApplyToClassUseCase struct {
	Classes ports.ClassRepository
	Outbox  ports.NotificationOutbox
	Clock   ports.Clock
	IDGen   ports.IDGenerator
	Logger  *slog.Logger
}

func (uc ApplyToClassUseCase) Execute(ctx context.Context, cmd ApplyToClassCommand) error {
	logger := application.ResolveLogger(uc.Logger)
	class, err := uc.Classes.GetClass(ctx, strings.TrimSpace(cmd.ClassID))
	if err != nil {
		return err
	}

	now := uc.Clock.Now().UTC()
	body := "Tutor " + strings.TrimSpace(cmd.TutorID) + " applied for your class"
	if message := strings.TrimSpace(cmd.Message); message != "" {
		body += ": " + message
	}
	if err := enqueueClassNotification(ctx, uc.Outbox, uc.IDGen, now,
		class.StudentID, "New tutor application", body); err != nil {
		return err
	}

	logger.Info("tutor applied to class",
		"event", "class_application_submitted",
		"module", "class-marketplace/class-lifecycle-service",
		"layer", "application",
		"class_id", class.ClassID,
		"tutor_id", strings.TrimSpace(cmd.TutorID),
	)
	return nil
}
