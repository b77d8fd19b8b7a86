package commands

import (
	"context"
	"log/slog"
	"strings"

	application "tutorlink/contexts/class-marketplace/tutor-profile-service/application"
	"tutorlink/contexts/class-marketplace/tutor-profile-service/domain/entities"
	domainerrors "tutorlink/contexts/class-marketplace/tutor-profile-service/domain/errors"
	"tutorlink/contexts/class-marketplace/tutor-profile-service/ports"
)

type SubmitCVCommand struct {
	UserID         string
	FullName       string
	BirthDate      string
	Avatar         string
	IDCardFront    string
	IDCardBack     string
	Certificates   []string
	Bio            string
	EducationLevel string
	Major          string
	University     string
	Experience     string
	Subject        string
	City           string
	HourlyRate     float64
}

// SubmitCVUseCase creates a tutor's profile or replaces an existing one.
// Resubmission resets the profile to PENDING so it goes through review again.
type SubmitCVUseCase struct {
	Profiles ports.ProfileRepository
	Clock    ports.Clock
	IDGen    ports.IDGenerator
	Logger   *slog.Logger
}

func (uc SubmitCVUseCase) Execute(ctx context.Context, cmd SubmitCVCommand) (entities.TutorProfile, error) {
	logger := application.ResolveLogger(uc.Logger)

	tutorID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return entities.TutorProfile{}, err
	}
	profile := entities.TutorProfile{
		TutorID:        tutorID,
		UserID:         strings.TrimSpace(cmd.UserID),
		FullName:       strings.TrimSpace(cmd.FullName),
		BirthDate:      strings.TrimSpace(cmd.BirthDate),
		Avatar:         strings.TrimSpace(cmd.Avatar),
		IDCardFront:    strings.TrimSpace(cmd.IDCardFront),
		IDCardBack:     strings.TrimSpace(cmd.IDCardBack),
		Certificates:   cmd.Certificates,
		Bio:            cmd.Bio,
		EducationLevel: strings.TrimSpace(cmd.EducationLevel),
		Major:          strings.TrimSpace(cmd.Major),
		University:     strings.TrimSpace(cmd.University),
		Experience:     cmd.Experience,
		Subject:        strings.TrimSpace(cmd.Subject),
		City:           strings.TrimSpace(cmd.City),
		HourlyRate:     cmd.HourlyRate,
		Status:         entities.ProfileStatusPending,
		CreatedAt:      uc.Clock.Now().UTC(),
	}
	if !profile.ValidateBasics() {
		return entities.TutorProfile{}, domainerrors.ErrInvalidProfileInput
	}

	stored, err := uc.Profiles.UpsertProfile(ctx, profile)
	if err != nil {
		return entities.TutorProfile{}, err
	}

	logger.Info("tutor cv submitted",
		"event", "tutor_cv_submitted",
		"module", "class-marketplace/tutor-profile-service",
		"layer", "application",
		"tutor_id", stored.TutorID,
		"user_id", stored.UserID,
	)
	return stored, nil
}
