package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"tutorlink/contexts/class-marketplace/class-lifecycle-service/domain/entities"
	domainerrors "tutorlink/contexts/class-marketplace/class-lifecycle-service/domain/errors"
	"tutorlink/contexts/class-marketplace/class-lifecycle-service/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	outboxStatusPending    = "pending"
	outboxStatusDispatched = "dispatched"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) CreateClass(ctx context.Context, class entities.ClassPosting) error {
	row := classModelFromEntity(class)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrInvalidClassInput
		}
		return err
	}
	return nil
}

// UpdateClassStatus is the guarded transition write: the row only moves
// when its stored status still matches fromStatus, so two racing
// transitions cannot both win.
func (r *Repository) UpdateClassStatus(ctx context.Context, class entities.ClassPosting, fromStatus entities.ClassStatus) error {
	result := r.db.WithContext(ctx).
		Model(&classModel{}).
		Where("class_id = ? AND status = ?", strings.TrimSpace(class.ClassID), string(fromStatus)).
		Updates(classUpdatesFromEntity(class))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&classModel{}).
			Where("class_id = ?", strings.TrimSpace(class.ClassID)).
			Count(&count).
			Error; err != nil {
			return err
		}
		if count == 0 {
			return domainerrors.ErrClassNotFound
		}
		return domainerrors.ErrInvalidStateTransition
	}
	return nil
}

func (r *Repository) GetClass(ctx context.Context, classID string) (entities.ClassPosting, error) {
	var row classModel
	err := r.db.WithContext(ctx).
		Where("class_id = ?", strings.TrimSpace(classID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.ClassPosting{}, domainerrors.ErrClassNotFound
		}
		return entities.ClassPosting{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListClasses(ctx context.Context, filter ports.ClassFilter) ([]entities.ClassPosting, error) {
	tx := r.db.WithContext(ctx).Model(&classModel{})
	if strings.TrimSpace(filter.StudentID) != "" {
		tx = tx.Where("student_id = ?", strings.TrimSpace(filter.StudentID))
	}
	if filter.Status != "" {
		tx = tx.Where("status = ?", string(filter.Status))
	}
	if strings.TrimSpace(filter.Subject) != "" {
		tx = tx.Where("subject ILIKE ?", "%"+strings.TrimSpace(filter.Subject)+"%")
	}
	if filter.TutorEligible {
		tx = tx.Where("status = ? AND visibility = ? AND selected_tutor_id = ''",
			string(entities.ClassStatusApprovedVisible), string(entities.VisibilityPublic))
	}

	var rows []classModel
	if err := tx.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]entities.ClassPosting, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) AppendStateChange(ctx context.Context, item entities.StateChange) error {
	row := stateChangeModel{
		ChangeID:  strings.TrimSpace(item.ChangeID),
		ClassID:   strings.TrimSpace(item.ClassID),
		FromState: string(item.FromState),
		ToState:   string(item.ToState),
		ChangedBy: strings.TrimSpace(item.ChangedBy),
		Reason:    strings.TrimSpace(item.Reason),
		CreatedAt: item.CreatedAt.UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrInvalidClassInput
		}
		return err
	}
	return nil
}

func (r *Repository) AppendNotification(ctx context.Context, item ports.PendingNotification) error {
	row := outboxModel{
		OutboxID:       strings.TrimSpace(item.OutboxID),
		NotificationID: strings.TrimSpace(item.Notification.NotificationID),
		UserID:         strings.TrimSpace(item.Notification.UserID),
		Title:          item.Notification.Title,
		Body:           item.Notification.Body,
		Type:           string(item.Notification.Type),
		Status:         outboxStatusPending,
		CreatedAt:      item.CreatedAt.UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrInvalidClassInput
		}
		return err
	}
	return nil
}

func (r *Repository) ListPendingNotifications(ctx context.Context, limit int) ([]ports.PendingNotification, error) {
	if limit <= 0 {
		limit = 100
	}

	var rows []outboxModel
	if err := r.db.WithContext(ctx).
		Where("status = ?", outboxStatusPending).
		Order("created_at ASC").
		Limit(limit).
		Find(&rows).
		Error; err != nil {
		return nil, err
	}

	items := make([]ports.PendingNotification, 0, len(rows))
	for _, row := range rows {
		items = append(items, ports.PendingNotification{
			OutboxID: row.OutboxID,
			Notification: entities.Notification{
				NotificationID: row.NotificationID,
				UserID:         row.UserID,
				Title:          row.Title,
				Body:           row.Body,
				Type:           entities.NotificationType(row.Type),
				CreatedAt:      row.CreatedAt.UTC(),
			},
			CreatedAt: row.CreatedAt.UTC(),
		})
	}
	return items, nil
}

func (r *Repository) MarkNotificationDispatched(ctx context.Context, outboxID string, dispatchedAt time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&outboxModel{}).
		Where("outbox_id = ?", strings.TrimSpace(outboxID)).
		Updates(map[string]any{
			"status":        outboxStatusDispatched,
			"dispatched_at": dispatchedAt.UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrClassNotFound
	}
	return nil
}

func (r *Repository) CreateNotification(ctx context.Context, item entities.Notification) error {
	row := notificationModel{
		NotificationID: strings.TrimSpace(item.NotificationID),
		UserID:         strings.TrimSpace(item.UserID),
		Title:          item.Title,
		Body:           item.Body,
		Type:           string(item.Type),
		CreatedAt:      item.CreatedAt.UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		// Relay retries; an already delivered row is fine to skip.
		if isUniqueViolation(err) {
			return nil
		}
		return err
	}
	return nil
}

func (r *Repository) DisplayName(ctx context.Context, userID string) (string, error) {
	var row userModel
	err := r.db.WithContext(ctx).
		Select("full_name").
		Where("user_id = ?", strings.TrimSpace(userID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return row.FullName, nil
}

func (r *Repository) FindSupportContact(ctx context.Context) (string, error) {
	var row userModel
	err := r.db.WithContext(ctx).
		Select("user_id").
		Where("role IN ?", []string{"cskh", "admin"}).
		Order("user_id ASC").
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return row.UserID, nil
}

type classModel struct {
	ClassID         string     `gorm:"column:class_id;primaryKey"`
	StudentID       string     `gorm:"column:student_id"`
	Subject         string     `gorm:"column:subject"`
	Grade           string     `gorm:"column:grade"`
	Schedule        string     `gorm:"column:schedule"`
	TuitionAmount   float64    `gorm:"column:tuition_amount"`
	Lat             float64    `gorm:"column:lat"`
	Lng             float64    `gorm:"column:lng"`
	City            string     `gorm:"column:city"`
	District        string     `gorm:"column:district"`
	Ward            string     `gorm:"column:ward"`
	Visibility      string     `gorm:"column:visibility"`
	Status          string     `gorm:"column:status"`
	SelectedTutorID string     `gorm:"column:selected_tutor_id"`
	RejectionReason string     `gorm:"column:rejection_reason"`
	CreatedAt       time.Time  `gorm:"column:created_at"`
	UpdatedAt       time.Time  `gorm:"column:updated_at"`
	ApprovedAt      *time.Time `gorm:"column:approved_at"`
	RejectedAt      *time.Time `gorm:"column:rejected_at"`
	CompletedAt     *time.Time `gorm:"column:completed_at"`
}

func (classModel) TableName() string {
	return "classes"
}

func classModelFromEntity(item entities.ClassPosting) classModel {
	return classModel{
		ClassID:         strings.TrimSpace(item.ClassID),
		StudentID:       strings.TrimSpace(item.StudentID),
		Subject:         strings.TrimSpace(item.Subject),
		Grade:           strings.TrimSpace(item.Grade),
		Schedule:        strings.TrimSpace(item.Schedule),
		TuitionAmount:   item.TuitionAmount,
		Lat:             item.Lat,
		Lng:             item.Lng,
		City:            strings.TrimSpace(item.City),
		District:        strings.TrimSpace(item.District),
		Ward:            strings.TrimSpace(item.Ward),
		Visibility:      string(item.Visibility),
		Status:          string(item.Status),
		SelectedTutorID: strings.TrimSpace(item.SelectedTutorID),
		RejectionReason: strings.TrimSpace(item.RejectionReason),
		CreatedAt:       item.CreatedAt.UTC(),
		UpdatedAt:       item.UpdatedAt.UTC(),
		ApprovedAt:      normalizeOptionalTime(item.ApprovedAt),
		RejectedAt:      normalizeOptionalTime(item.RejectedAt),
		CompletedAt:     normalizeOptionalTime(item.CompletedAt),
	}
}

func classUpdatesFromEntity(item entities.ClassPosting) map[string]any {
	row := classModelFromEntity(item)
	return map[string]any{
		"visibility":        row.Visibility,
		"status":            row.Status,
		"selected_tutor_id": row.SelectedTutorID,
		"rejection_reason":  row.RejectionReason,
		"updated_at":        row.UpdatedAt,
		"approved_at":       row.ApprovedAt,
		"rejected_at":       row.RejectedAt,
		"completed_at":      row.CompletedAt,
	}
}

func (m classModel) toEntity() entities.ClassPosting {
	return entities.ClassPosting{
		ClassID:         m.ClassID,
		StudentID:       m.StudentID,
		Subject:         m.Subject,
		Grade:           m.Grade,
		Schedule:        m.Schedule,
		TuitionAmount:   m.TuitionAmount,
		Lat:             m.Lat,
		Lng:             m.Lng,
		City:            m.City,
		District:        m.District,
		Ward:            m.Ward,
		Visibility:      entities.Visibility(m.Visibility),
		Status:          entities.ClassStatus(m.Status),
		SelectedTutorID: m.SelectedTutorID,
		RejectionReason: m.RejectionReason,
		CreatedAt:       m.CreatedAt.UTC(),
		UpdatedAt:       m.UpdatedAt.UTC(),
		ApprovedAt:      normalizeOptionalTime(m.ApprovedAt),
		RejectedAt:      normalizeOptionalTime(m.RejectedAt),
		CompletedAt:     normalizeOptionalTime(m.CompletedAt),
	}
}

type stateChangeModel struct {
	ChangeID  string    `gorm:"column:change_id;primaryKey"`
	ClassID   string    `gorm:"column:class_id"`
	FromState string    `gorm:"column:from_state"`
	ToState   string    `gorm:"column:to_state"`
	ChangedBy string    `gorm:"column:changed_by"`
	Reason    string    `gorm:"column:reason"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (stateChangeModel) TableName() string {
	return "class_state_history"
}

type outboxModel struct {
	OutboxID       string     `gorm:"column:outbox_id;primaryKey"`
	NotificationID string     `gorm:"column:notification_id"`
	UserID         string     `gorm:"column:user_id"`
	Title          string     `gorm:"column:title"`
	Body           string     `gorm:"column:body"`
	Type           string     `gorm:"column:type"`
	Status         string     `gorm:"column:status"`
	CreatedAt      time.Time  `gorm:"column:created_at"`
	DispatchedAt   *time.Time `gorm:"column:dispatched_at"`
}

func (outboxModel) TableName() string {
	return "class_notification_outbox"
}

type notificationModel struct {
	NotificationID string    `gorm:"column:notification_id;primaryKey"`
	UserID         string    `gorm:"column:user_id"`
	Title          string    `gorm:"column:title"`
	Body           string    `gorm:"column:body"`
	Type           string    `gorm:"column:type"`
	CreatedAt      time.Time `gorm:"column:created_at"`
}

func (notificationModel) TableName() string {
	return "notifications"
}

type userModel struct {
	UserID   string `gorm:"column:user_id;primaryKey"`
	FullName string `gorm:"column:full_name"`
	Role     string `gorm:"column:role"`
}

func (userModel) TableName() string {
	return "users"
}

func normalizeOptionalTime(value *time.Time) *time.Time {
	if value == nil {
		return nil
	}
	timestamp := value.UTC()
	return &timestamp
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
