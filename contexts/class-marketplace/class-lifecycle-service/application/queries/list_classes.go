package queries

import (
	"context"
	"log/slog"
	"strings"

	"tutorlink/contexts/class-marketplace/class-lifecycle-service/domain/entities"
	"tutorlink/contexts/class-marketplace/class-lifecycle-service/ports"
)

type ListClassesQuery struct {
	Filter ports.ClassFilter
}

type ListClassesUseCase struct {
	Classes ports.ClassRepository
	Logger  *slog.Logger
}

func (uc ListClassesUseCase) Execute(ctx context.Context, query ListClassesQuery) ([]entities.ClassPosting, error) {
	filter := query.Filter
	filter.StudentID = strings.TrimSpace(filter.StudentID)
	filter.Subject = strings.TrimSpace(filter.Subject)
	if filter.TutorEligible {
		// The tutor-facing view is pinned to the single public status.
		filter.Status = entities.ClassStatusApprovedVisible
	}
	return uc.Classes.ListClasses(ctx, filter)
}
