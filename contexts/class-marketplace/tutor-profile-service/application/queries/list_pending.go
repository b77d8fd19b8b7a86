package queries

import (
	"context"
	"log/slog"

	"tutorlink/contexts/class-marketplace/tutor-profile-service/domain/entities"
	"tutorlink/contexts/class-marketplace/tutor-profile-service/ports"
)

// ListPendingProfilesUseCase returns all CVs awaiting review, newest first.
type ListPendingProfilesUseCase struct {
	Profiles ports.ProfileRepository
	Logger   *slog.Logger
}

func (uc ListPendingProfilesUseCase) Execute(ctx context.Context) ([]entities.TutorProfile, error) {
	return uc.Profiles.ListPendingProfiles(ctx)
}
