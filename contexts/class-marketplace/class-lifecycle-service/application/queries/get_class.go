package queries

import (
	"context"
	"log/slog"
	"strings"

	"tutorlink/contexts/class-marketplace/class-lifecycle-service/domain/entities"
	"tutorlink/contexts/class-marketplace/class-lifecycle-service/ports"
)

type ClassDetail struct {
	Class             entities.ClassPosting
	StudentName       string
	SelectedTutorName string
}

type GetClassUseCase struct {
	Classes   ports.ClassRepository
	Directory ports.UserDirectory
	Logger    *slog.Logger
}

func (uc GetClassUseCase) Execute(ctx context.Context, classID string) (ClassDetail, error) {
	class, err := uc.Classes.GetClass(ctx, strings.TrimSpace(classID))
	if err != nil {
		return ClassDetail{}, err
	}

	detail := ClassDetail{Class: class}
	if name, err := uc.Directory.DisplayName(ctx, class.StudentID); err == nil {
		detail.StudentName = name
	}
	if class.SelectedTutorID != "" {
		if name, err := uc.Directory.DisplayName(ctx, class.SelectedTutorID); err == nil {
			detail.SelectedTutorName = name
		}
	}
	return detail, nil
}
