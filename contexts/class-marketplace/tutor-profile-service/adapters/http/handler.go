package httpadapter

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"tutorlink/contexts/class-marketplace/tutor-profile-service/application/commands"
	"tutorlink/contexts/class-marketplace/tutor-profile-service/application/queries"
	"tutorlink/contexts/class-marketplace/tutor-profile-service/domain/entities"
	httptransport "tutorlink/contexts/class-marketplace/tutor-profile-service/transport/http"
)

type Handler struct {
	SubmitCV      commands.SubmitCVUseCase
	ReviewProfile commands.ReviewProfileUseCase
	ListPending   queries.ListPendingProfilesUseCase
	SearchTutors  queries.SearchTutorsUseCase
	GetTutor      queries.GetTutorUseCase
	Logger        *slog.Logger
}

func (h Handler) SubmitCVHandler(
	ctx context.Context,
	userID string,
	req httptransport.SubmitCVRequest,
) (httptransport.TutorProfileDTO, error) {
	profile, err := h.SubmitCV.Execute(ctx, commands.SubmitCVCommand{
		UserID:         userID,
		FullName:       req.FullName,
		BirthDate:      req.BirthDate,
		Avatar:         req.Avatar,
		IDCardFront:    req.IDCardFront,
		IDCardBack:     req.IDCardBack,
		Certificates:   req.Certificates,
		Bio:            req.Bio,
		EducationLevel: req.EducationLevel,
		Major:          req.Major,
		University:     req.University,
		Experience:     req.Experience,
		Subject:        req.Subject,
		City:           req.City,
		HourlyRate:     req.HourlyRate,
	})
	if err != nil {
		return httptransport.TutorProfileDTO{}, err
	}
	return mapProfile(profile), nil
}

func (h Handler) ReviewProfileHandler(
	ctx context.Context,
	reviewerID string,
	tutorID string,
	req httptransport.ReviewProfileRequest,
) (httptransport.TutorProfileDTO, error) {
	profile, err := h.ReviewProfile.Execute(ctx, commands.ReviewProfileCommand{
		TutorID:    tutorID,
		ReviewerID: reviewerID,
		Verdict:    entities.ProfileStatus(strings.ToUpper(strings.TrimSpace(req.Verdict))),
	})
	if err != nil {
		return httptransport.TutorProfileDTO{}, err
	}
	return mapProfile(profile), nil
}

func (h Handler) ListPendingHandler(ctx context.Context) (httptransport.PendingProfilesResponse, error) {
	profiles, err := h.ListPending.Execute(ctx)
	if err != nil {
		return httptransport.PendingProfilesResponse{}, err
	}
	items := make([]httptransport.TutorProfileDTO, 0, len(profiles))
	for _, profile := range profiles {
		items = append(items, mapProfile(profile))
	}
	return httptransport.PendingProfilesResponse{Items: items}, nil
}

func (h Handler) SearchTutorsHandler(ctx context.Context, req httptransport.SearchTutorsRequest) (httptransport.SearchTutorsResponse, error) {
	result, err := h.SearchTutors.Execute(ctx, queries.SearchTutorsQuery{
		Subject: req.Subject,
		City:    req.City,
		RateMin: req.RateMin,
		RateMax: req.RateMax,
		Page:    req.Page,
	})
	if err != nil {
		return httptransport.SearchTutorsResponse{}, err
	}
	items := make([]httptransport.TutorProfileDTO, 0, len(result.Profiles))
	for _, profile := range result.Profiles {
		items = append(items, mapProfile(profile))
	}
	return httptransport.SearchTutorsResponse{Items: items, Page: result.Page, PageSize: result.PageSize}, nil
}

func (h Handler) GetTutorHandler(ctx context.Context, tutorID string) (httptransport.TutorProfileDTO, error) {
	profile, err := h.GetTutor.Execute(ctx, tutorID)
	if err != nil {
		return httptransport.TutorProfileDTO{}, err
	}
	return mapProfile(profile), nil
}

func mapProfile(item entities.TutorProfile) httptransport.TutorProfileDTO {
	result := httptransport.TutorProfileDTO{
		TutorID:        item.TutorID,
		UserID:         item.UserID,
		FullName:       item.FullName,
		BirthDate:      item.BirthDate,
		Avatar:         item.Avatar,
		Certificates:   item.Certificates,
		Bio:            item.Bio,
		EducationLevel: item.EducationLevel,
		Major:          item.Major,
		University:     item.University,
		Experience:     item.Experience,
		Subject:        item.Subject,
		City:           item.City,
		HourlyRate:     item.HourlyRate,
		Status:         string(item.Status),
		CreatedAt:      item.CreatedAt.Format(time.RFC3339),
	}
	if item.ApprovedAt != nil {
		result.ApprovedAt = item.ApprovedAt.UTC().Format(time.RFC3339)
	}
	return result
}
