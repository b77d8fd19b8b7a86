package postgresadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"tutorlink/contexts/class-marketplace/tutor-profile-service/domain/entities"
	domainerrors "tutorlink/contexts/class-marketplace/tutor-profile-service/domain/errors"
	"tutorlink/contexts/class-marketplace/tutor-profile-service/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
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

// UpsertProfile relies on the unique index on user_id: a resubmission
// replaces the submitted columns but keeps the original tutor_id and
// created_at, so external references stay valid across review rounds.
func (r *Repository) UpsertProfile(ctx context.Context, profile entities.TutorProfile) (entities.TutorProfile, error) {
	row, err := profileModelFromEntity(profile)
	if err != nil {
		return entities.TutorProfile{}, err
	}
	err = r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"full_name", "birth_date", "avatar", "id_card_front", "id_card_back",
				"certificates", "bio", "education_level", "major", "university",
				"experience", "subject", "city", "hourly_rate", "status",
				"approved_by", "approved_at",
			}),
		}).
		Create(&row).
		Error
	if err != nil {
		return entities.TutorProfile{}, err
	}

	var stored profileModel
	err = r.db.WithContext(ctx).
		Where("user_id = ?", row.UserID).
		First(&stored).
		Error
	if err != nil {
		return entities.TutorProfile{}, err
	}
	return stored.toEntity()
}

func (r *Repository) GetProfile(ctx context.Context, tutorID string) (entities.TutorProfile, error) {
	var row profileModel
	err := r.db.WithContext(ctx).
		Where("tutor_id = ?", strings.TrimSpace(tutorID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.TutorProfile{}, domainerrors.ErrProfileNotFound
		}
		return entities.TutorProfile{}, err
	}
	return row.toEntity()
}

func (r *Repository) ListPendingProfiles(ctx context.Context) ([]entities.TutorProfile, error) {
	var rows []profileModel
	err := r.db.WithContext(ctx).
		Where("status = ?", string(entities.ProfileStatusPending)).
		Order("created_at DESC").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}
	return toEntities(rows)
}

func (r *Repository) SearchProfiles(ctx context.Context, filter ports.ProfileFilter) ([]entities.TutorProfile, error) {
	tx := r.db.WithContext(ctx).Model(&profileModel{})
	if filter.Status != "" {
		tx = tx.Where("status = ?", string(filter.Status))
	}
	if filter.Subject != "" {
		tx = tx.Where("subject ILIKE ?", "%"+filter.Subject+"%")
	}
	if filter.City != "" {
		tx = tx.Where("city ILIKE ?", "%"+filter.City+"%")
	}
	if filter.RateMin > 0 {
		tx = tx.Where("hourly_rate >= ?", filter.RateMin)
	}
	if filter.RateMax > 0 {
		tx = tx.Where("hourly_rate <= ?", filter.RateMax)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	var rows []profileModel
	err := tx.Order("created_at DESC").
		Limit(ports.SearchPageSize).
		Offset((page - 1) * ports.SearchPageSize).
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}
	return toEntities(rows)
}

func (r *Repository) RecordReview(ctx context.Context, tutorID string, verdict entities.ProfileStatus, reviewerID string, reviewedAt time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&profileModel{}).
		Where("tutor_id = ?", strings.TrimSpace(tutorID)).
		Updates(map[string]any{
			"status":      string(verdict),
			"approved_by": reviewerID,
			"approved_at": reviewedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrProfileNotFound
	}
	return nil
}

type profileModel struct {
	TutorID        string     `gorm:"column:tutor_id;primaryKey"`
	UserID         string     `gorm:"column:user_id;uniqueIndex"`
	FullName       string     `gorm:"column:full_name"`
	BirthDate      string     `gorm:"column:birth_date"`
	Avatar         string     `gorm:"column:avatar"`
	IDCardFront    string     `gorm:"column:id_card_front"`
	IDCardBack     string     `gorm:"column:id_card_back"`
	Certificates   string     `gorm:"column:certificates"`
	Bio            string     `gorm:"column:bio"`
	EducationLevel string     `gorm:"column:education_level"`
	Major          string     `gorm:"column:major"`
	University     string     `gorm:"column:university"`
	Experience     string     `gorm:"column:experience"`
	Subject        string     `gorm:"column:subject"`
	City           string     `gorm:"column:city"`
	HourlyRate     float64    `gorm:"column:hourly_rate"`
	Status         string     `gorm:"column:status"`
	ApprovedBy     string     `gorm:"column:approved_by"`
	ApprovedAt     *time.Time `gorm:"column:approved_at"`
	CreatedAt      time.Time  `gorm:"column:created_at"`
}

func (profileModel) TableName() string {
	return "tutor_profiles"
}

func profileModelFromEntity(item entities.TutorProfile) (profileModel, error) {
	certificates := "[]"
	if len(item.Certificates) > 0 {
		raw, err := json.Marshal(item.Certificates)
		if err != nil {
			return profileModel{}, err
		}
		certificates = string(raw)
	}
	return profileModel{
		TutorID:        strings.TrimSpace(item.TutorID),
		UserID:         strings.TrimSpace(item.UserID),
		FullName:       item.FullName,
		BirthDate:      item.BirthDate,
		Avatar:         item.Avatar,
		IDCardFront:    item.IDCardFront,
		IDCardBack:     item.IDCardBack,
		Certificates:   certificates,
		Bio:            item.Bio,
		EducationLevel: item.EducationLevel,
		Major:          item.Major,
		University:     item.University,
		Experience:     item.Experience,
		Subject:        item.Subject,
		City:           item.City,
		HourlyRate:     item.HourlyRate,
		Status:         string(item.Status),
		ApprovedBy:     item.ApprovedBy,
		ApprovedAt:     item.ApprovedAt,
		CreatedAt:      item.CreatedAt,
	}, nil
}

func (m profileModel) toEntity() (entities.TutorProfile, error) {
	var certificates []string
	if m.Certificates != "" {
		if err := json.Unmarshal([]byte(m.Certificates), &certificates); err != nil {
			return entities.TutorProfile{}, err
		}
	}
	return entities.TutorProfile{
		TutorID:        m.TutorID,
		UserID:         m.UserID,
		FullName:       m.FullName,
		BirthDate:      m.BirthDate,
		Avatar:         m.Avatar,
		IDCardFront:    m.IDCardFront,
		IDCardBack:     m.IDCardBack,
		Certificates:   certificates,
		Bio:            m.Bio,
		EducationLevel: m.EducationLevel,
		Major:          m.Major,
		University:     m.University,
		Experience:     m.Experience,
		Subject:        m.Subject,
		City:           m.City,
		HourlyRate:     m.HourlyRate,
		Status:         entities.ProfileStatus(m.Status),
		ApprovedBy:     m.ApprovedBy,
		ApprovedAt:     m.ApprovedAt,
		CreatedAt:      m.CreatedAt,
	}, nil
}

func toEntities(rows []profileModel) ([]entities.TutorProfile, error) {
	items := make([]entities.TutorProfile, 0, len(rows))
	for _, row := range rows {
		item, err := row.toEntity()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
