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

type CreateClassCommand struct {
	StudentID     string
	Subject       string
	Grade         string
	Schedule      string
	TuitionAmount float64
	Lat           *float64
	Lng           *float64
	City          string
	District      string
	Ward          string
}

type CreateClassUseCase struct {
	Classes     ports.ClassRepository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func (uc CreateClassUseCase) Execute(ctx context.Context, cmd CreateClassCommand) (entities.ClassPosting, error) {
	logger := application.ResolveLogger(uc.Logger)
	now := uc.Clock.Now().UTC()

	lat := entities.DefaultLat
	lng := entities.DefaultLng
	if cmd.Lat != nil && cmd.Lng != nil {
		lat = *cmd.Lat
		lng = *cmd.Lng
	}

	classID, err := uc.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.ClassPosting{}, err
	}

	class := entities.ClassPosting{
		ClassID:       classID,
		StudentID:     strings.TrimSpace(cmd.StudentID),
		Subject:       strings.TrimSpace(cmd.Subject),
		Grade:         strings.TrimSpace(cmd.Grade),
		Schedule:      strings.TrimSpace(cmd.Schedule),
		TuitionAmount: cmd.TuitionAmount,
		Lat:           lat,
		Lng:           lng,
		City:          strings.TrimSpace(cmd.City),
		District:      strings.TrimSpace(cmd.District),
		Ward:          strings.TrimSpace(cmd.Ward),
		Visibility:    entities.VisibilityPrivate,
		Status:        entities.ClassStatusPendingApproval,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if !class.ValidateBasics() {
		return entities.ClassPosting{}, domainerrors.ErrInvalidClassInput
	}

	if err := uc.Classes.CreateClass(ctx, class); err != nil {
		return entities.ClassPosting{}, err
	}

	logger.Info("class created",
		"event", "class_created",
		"module", "class-marketplace/class-lifecycle-service",
		"layer", "application",
		"class_id", class.ClassID,
		"student_id", class.StudentID,
		"status", string(class.Status),
	)
	return class, nil
}
