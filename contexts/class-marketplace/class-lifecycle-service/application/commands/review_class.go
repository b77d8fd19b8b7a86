package commands

import (
	"context"
	"log/slog"
	"strings"

	application "tutorlink/contexts/class-marketplace/class-lifecycle-service/application"
	"tutorlink/contexts/class-marketplace/class-lifecycle-service/domain/entities"
	domainerrors "tutorlink/contexts/class-marketplace/class-lifecycle-service/domain/errors"
	"tutorlink/contexts/class-marketplace/class-lifecycle-service/ports"
)

type ReviewAction string

const (
	ReviewActionApprove ReviewAction = "approve"
	ReviewActionReject  ReviewAction = "reject"
)

type ReviewClassCommand struct {
	ClassID string
	ActorID string
	Action  ReviewAction
	Reason  string
}

// ReviewClassUseCase is the admin approval gate: approve makes the posting
// tutor-visible, reject parks it in a terminal state with a recorded reason.
// Both are legal only from PENDING_ADMIN_APPROVAL.
type ReviewClassUseCase struct {
	Classes ports.ClassRepository
	History ports.StateHistoryRepository
	Outbox  ports.NotificationOutbox
	Clock   ports.Clock
	IDGen   ports.IDGenerator
	Logger  *slog.Logger
}

func (uc ReviewClassUseCase) Execute(ctx context.Context, cmd ReviewClassCommand) (entities.ClassPosting, error) {
	logger := application.ResolveLogger(uc.Logger)
	class, err := uc.Classes.GetClass(ctx, strings.TrimSpace(cmd.ClassID))
	if err != nil {
		return entities.ClassPosting{}, err
	}
	if class.Status != entities.ClassStatusPendingApproval {
		return entities.ClassPosting{}, domainerrors.ErrInvalidStateTransition
	}

	now := uc.Clock.Now().UTC()
	from := class.Status

	var title, body string
	switch cmd.Action {
	case ReviewActionApprove:
		class.Status = entities.ClassStatusApprovedVisible
		class.ApprovedAt = &now
		title = "Class approved"
		body = "Your class posting " + class.Subject + " is now visible to tutors"
	case ReviewActionReject:
		reason := strings.TrimSpace(cmd.Reason)
		if reason == "" {
			reason = entities.DefaultRejectionReason
		}
		class.Status = entities.ClassStatusRejected
		class.RejectionReason = reason
		class.RejectedAt = &now
		title = "Class rejected"
		body = "Your class posting " + class.Subject + " was rejected: " + reason
	default:
		return entities.ClassPosting{}, domainerrors.ErrInvalidStateTransition
	}

	class.Visibility = entities.VisibilityForStatus(class.Status)
	class.UpdatedAt = now
	if err := uc.Classes.UpdateClassStatus(ctx, class, from); err != nil {
		return entities.ClassPosting{}, err
	}

	changeID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return entities.ClassPosting{}, err
	}
	if err := uc.History.AppendStateChange(ctx, entities.StateChange{
		ChangeID:  changeID,
		ClassID:   class.ClassID,
		FromState: from,
		ToState:   class.Status,
		ChangedBy: strings.TrimSpace(cmd.ActorID),
		Reason:    strings.TrimSpace(cmd.Reason),
		CreatedAt: now,
	}); err != nil {
		return entities.ClassPosting{}, err
	}

	if err := enqueueClassNotification(ctx, uc.Outbox, uc.IDGen, now, class.StudentID, title, body); err != nil {
		return entities.ClassPosting{}, err
	}

	logger.Info("class reviewed",
		"event", "class_reviewed",
		"module", "class-marketplace/class-lifecycle-service",
		"layer", "application",
		"class_id", class.ClassID,
		"action", string(cmd.Action),
		"from_status", string(from),
		"to_status", string(class.Status),
	)
	return class, nil
}
