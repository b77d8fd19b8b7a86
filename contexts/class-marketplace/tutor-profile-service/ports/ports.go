package ports

import (
	"context"
	"time"

	"tutorlink/contexts/class-marketplace/tutor-profile-service/domain/entities"
)

const SearchPageSize = 10

// ProfileFilter narrows tutor search. Subject and City are substring
// matches; rate bounds of zero are ignored.
type ProfileFilter struct {
	Subject string
	City    string
	RateMin float64
	RateMax float64
	Status  entities.ProfileStatus
	Page    int
}

type ProfileRepository interface {
	// UpsertProfile inserts or, when the user already has a profile,
	// replaces its submitted fields keeping the original TutorID.
	UpsertProfile(ctx context.Context, profile entities.TutorProfile) (entities.TutorProfile, error)
	GetProfile(ctx context.Context, tutorID string) (entities.TutorProfile, error)
	ListPendingProfiles(ctx context.Context) ([]entities.TutorProfile, error)
	SearchProfiles(ctx context.Context, filter ProfileFilter) ([]entities.TutorProfile, error)
	RecordReview(ctx context.Context, tutorID string, verdict entities.ProfileStatus, reviewerID string, reviewedAt time.Time) error
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
