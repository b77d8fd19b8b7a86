package httpadapter

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"tutorlink/contexts/class-marketplace/class-lifecycle-service/application/commands"
	"tutorlink/contexts/class-marketplace/class-lifecycle-service/application/queries"
	"tutorlink/contexts/class-marketplace/class-lifecycle-service/domain/entities"
	domainerrors "tutorlink/contexts/class-marketplace/class-lifecycle-service/domain/errors"
	httptransport "tutorlink/contexts/class-marketplace/class-lifecycle-service/transport/http"
)

type Handler struct {
	CreateClass   commands.CreateClassUseCase
	ReviewClass   commands.ReviewClassUseCase
	ApplyToClass  commands.ApplyToClassUseCase
	SelectTutor   commands.SelectTutorUseCase
	CompleteClass commands.CompleteClassUseCase
	RequestCancel commands.RequestCancelUseCase
	ListClasses   queries.ListClassesUseCase
	GetClass      queries.GetClassUseCase
	Logger        *slog.Logger
}

func (h Handler) CreateClassHandler(
	ctx context.Context,
	studentID string,
	req httptransport.CreateClassRequest,
) (httptransport.ClassDTO, error) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(req.TuitionAmount), 64)
	if err != nil || amount <= 0 {
		return httptransport.ClassDTO{}, domainerrors.ErrInvalidClassInput
	}
	class, err := h.CreateClass.Execute(ctx, commands.CreateClassCommand{
		StudentID:     studentID,
		Subject:       req.Subject,
		Grade:         req.Grade,
		Schedule:      req.Schedule,
		TuitionAmount: amount,
		Lat:           req.Lat,
		Lng:           req.Lng,
		City:          req.City,
		District:      req.District,
		Ward:          req.Ward,
	})
	if err != nil {
		return httptransport.ClassDTO{}, err
	}
	return mapClass(class), nil
}

func (h Handler) ApproveClassHandler(ctx context.Context, actorID string, classID string) (httptransport.ClassDTO, error) {
	class, err := h.ReviewClass.Execute(ctx, commands.ReviewClassCommand{
		ClassID: classID,
		ActorID: actorID,
		Action:  commands.ReviewActionApprove,
	})
	if err != nil {
		return httptransport.ClassDTO{}, err
	}
	return mapClass(class), nil
}

func (h Handler) RejectClassHandler(
	ctx context.Context,
	actorID string,
	classID string,
	req httptransport.RejectClassRequest,
) (httptransport.ClassDTO, error) {
	class, err := h.ReviewClass.Execute(ctx, commands.ReviewClassCommand{
		ClassID: classID,
		ActorID: actorID,
		Action:  commands.ReviewActionReject,
		Reason:  req.Reason,
	})
	if err != nil {
		return httptransport.ClassDTO{}, err
	}
	return mapClass(class), nil
}

func (h Handler) ApplyHandler(ctx context.Context, tutorID string, classID string, req httptransport.ApplyRequest) error {
	return h.ApplyToClass.Execute(ctx, commands.ApplyToClassCommand{
		ClassID: classID,
		TutorID: tutorID,
		Message: req.Message,
	})
}

func (h Handler) SelectTutorHandler(
	ctx context.Context,
	actorID string,
	classID string,
	req httptransport.SelectTutorRequest,
) (httptransport.ClassDTO, error) {
	class, err := h.SelectTutor.Execute(ctx, commands.SelectTutorCommand{
		ClassID: classID,
		ActorID: actorID,
		TutorID: req.TutorID,
	})
	if err != nil {
		return httptransport.ClassDTO{}, err
	}
	return mapClass(class), nil
}

func (h Handler) CompleteClassHandler(
	ctx context.Context,
	actorID string,
	actorIsAdmin bool,
	classID string,
) (httptransport.ClassDTO, error) {
	class, err := h.CompleteClass.Execute(ctx, commands.CompleteClassCommand{
		ClassID:      classID,
		ActorID:      actorID,
		ActorIsAdmin: actorIsAdmin,
	})
	if err != nil {
		return httptransport.ClassDTO{}, err
	}
	return mapClass(class), nil
}

func (h Handler) RequestCancelHandler(ctx context.Context, actorID string, classID string, req httptransport.CancelRequest) error {
	return h.RequestCancel.Execute(ctx, commands.RequestCancelCommand{
		ClassID: classID,
		ActorID: actorID,
		Reason:  req.Reason,
	})
}

func (h Handler) ListClassesHandler(ctx context.Context, req httptransport.ListClassesRequest) (httptransport.ListClassesResponse, error) {
	query := queries.ListClassesQuery{}
	switch req.Scope {
	case httptransport.ScopeOwner:
		query.Filter.StudentID = req.ActorID
		query.Filter.Status = entities.ClassStatus(req.Status)
	case httptransport.ScopeAll:
		query.Filter.Status = entities.ClassStatus(req.Status)
	default:
		query.Filter.TutorEligible = true
	}
	query.Filter.Subject = req.Subject

	items, err := h.ListClasses.Execute(ctx, query)
	if err != nil {
		return httptransport.ListClassesResponse{}, err
	}
	result := make([]httptransport.ClassDTO, 0, len(items))
	for _, item := range items {
		result = append(result, mapClass(item))
	}
	return httptransport.ListClassesResponse{Items: result}, nil
}

func (h Handler) GetClassHandler(ctx context.Context, classID string) (httptransport.ClassDetailDTO, error) {
	detail, err := h.GetClass.Execute(ctx, classID)
	if err != nil {
		return httptransport.ClassDetailDTO{}, err
	}
	return httptransport.ClassDetailDTO{
		ClassDTO:          mapClass(detail.Class),
		StudentName:       detail.StudentName,
		SelectedTutorName: detail.SelectedTutorName,
	}, nil
}

func mapClass(item entities.ClassPosting) httptransport.ClassDTO {
	result := httptransport.ClassDTO{
		ClassID:         item.ClassID,
		StudentID:       item.StudentID,
		Subject:         item.Subject,
		Grade:           item.Grade,
		Schedule:        item.Schedule,
		TuitionAmount:   item.TuitionAmount,
		Lat:             item.Lat,
		Lng:             item.Lng,
		City:            item.City,
		District:        item.District,
		Ward:            item.Ward,
		Visibility:      string(item.Visibility),
		Status:          string(item.Status),
		SelectedTutorID: item.SelectedTutorID,
		RejectionReason: item.RejectionReason,
		CreatedAt:       item.CreatedAt.Format(time.RFC3339),
	}
	if item.ApprovedAt != nil {
		result.ApprovedAt = item.ApprovedAt.UTC().Format(time.RFC3339)
	}
	if item.CompletedAt != nil {
		result.CompletedAt = item.CompletedAt.UTC().Format(time.RFC3339)
	}
	return result
}
