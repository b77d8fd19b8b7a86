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

type ReviewProfileCommand struct {
	TutorID    string
	ReviewerID string
	Verdict    entities.ProfileStatus
}

// ReviewProfileUseCase records a staff verdict on a submitted CV. The
// reviewer and review time are kept on the profile for auditing.
type ReviewProfileUseCase struct {
	Profiles ports.ProfileRepository
	Clock    ports.Clock
	Logger   *slog.Logger
}

func (uc ReviewProfileUseCase) Execute(ctx context.Context, cmd ReviewProfileCommand) (entities.TutorProfile, error) {
	logger := application.ResolveLogger(uc.Logger)
	if !entities.IsReviewVerdict(cmd.Verdict) {
		return entities.TutorProfile{}, domainerrors.ErrInvalidReviewVerdict
	}

	tutorID := strings.TrimSpace(cmd.TutorID)
	now := uc.Clock.Now().UTC()
	if err := uc.Profiles.RecordReview(ctx, tutorID, cmd.Verdict, strings.TrimSpace(cmd.ReviewerID), now); err != nil {
		return entities.TutorProfile{}, err
	}
	profile, err := uc.Profiles.GetProfile(ctx, tutorID)
	if err != nil {
		return entities.TutorProfile{}, err
	}

	logger.Info("tutor profile reviewed",
		"event", "tutor_profile_reviewed",
		"module", "class-marketplace/tutor-profile-service",
		"layer", "application",
		"tutor_id", tutorID,
		"verdict", string(cmd.Verdict),
	)
	return profile, nil
}
