package queries

import (
	"context"
	"log/slog"
	"strings"

	"tutorlink/contexts/class-marketplace/tutor-profile-service/domain/entities"
	"tutorlink/contexts/class-marketplace/tutor-profile-service/ports"
)

type SearchTutorsQuery struct {
	Subject string
	City    string
	RateMin float64
	RateMax float64
	Page    int
}

type SearchTutorsResult struct {
	Profiles []entities.TutorProfile
	Page     int
	PageSize int
}

// SearchTutorsUseCase is the public tutor directory. Only APPROVED
// profiles are returned, a fixed page at a time.
type SearchTutorsUseCase struct {
	Profiles ports.ProfileRepository
	Logger   *slog.Logger
}

func (uc SearchTutorsUseCase) Execute(ctx context.Context, query SearchTutorsQuery) (SearchTutorsResult, error) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	profiles, err := uc.Profiles.SearchProfiles(ctx, ports.ProfileFilter{
		Subject: strings.TrimSpace(query.Subject),
		City:    strings.TrimSpace(query.City),
		RateMin: query.RateMin,
		RateMax: query.RateMax,
		Status:  entities.ProfileStatusApproved,
		Page:    page,
	})
	if err != nil {
		return SearchTutorsResult{}, err
	}
	return SearchTutorsResult{Profiles: profiles, Page: page, PageSize: ports.SearchPageSize}, nil
}
