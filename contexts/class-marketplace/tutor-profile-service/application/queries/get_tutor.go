package queries

import (
	"context"
	"log/slog"
	"strings"

	"tutorlink/contexts/class-marketplace/tutor-profile-service/domain/entities"
	"tutorlink/contexts/class-marketplace/tutor-profile-service/ports"
)

type GetTutorUseCase struct {
	Profiles ports.ProfileRepository
	Logger   *slog.Logger
}

func (uc GetTutorUseCase) Execute(ctx context.Context, tutorID string) (entities.TutorProfile, error) {
	return uc.Profiles.GetProfile(ctx, strings.TrimSpace(tutorID))
}
