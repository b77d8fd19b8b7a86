package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"tutorlink/contexts/class-marketplace/tutor-profile-service/domain/entities"
	domainerrors "tutorlink/contexts/class-marketplace/tutor-profile-service/domain/errors"
	"tutorlink/contexts/class-marketplace/tutor-profile-service/ports"

	"github.com/google/uuid"
)

// Store implements every profile port in memory. Used by tests and by
// the in-memory module wiring.
type Store struct {
	mu       sync.RWMutex
	profiles map[string]entities.TutorProfile
}

func NewStore(seed []entities.TutorProfile) *Store {
	profiles := make(map[string]entities.TutorProfile, len(seed))
	for _, item := range seed {
		profiles[item.TutorID] = item
	}
	return &Store{profiles: profiles}
}

func (s *Store) UpsertProfile(_ context.Context, profile entities.TutorProfile) (entities.TutorProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.profiles {
		if existing.UserID == profile.UserID {
			profile.TutorID = existing.TutorID
			profile.CreatedAt = existing.CreatedAt
			break
		}
	}
	s.profiles[profile.TutorID] = profile
	return profile, nil
}

func (s *Store) GetProfile(_ context.Context, tutorID string) (entities.TutorProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profile, exists := s.profiles[tutorID]
	if !exists {
		return entities.TutorProfile{}, domainerrors.ErrProfileNotFound
	}
	return profile, nil
}

func (s *Store) ListPendingProfiles(_ context.Context) ([]entities.TutorProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]entities.TutorProfile, 0)
	for _, profile := range s.profiles {
		if profile.Status == entities.ProfileStatusPending {
			result = append(result, profile)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (s *Store) SearchProfiles(_ context.Context, filter ports.ProfileFilter) ([]entities.TutorProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]entities.TutorProfile, 0)
	for _, profile := range s.profiles {
		if filter.Status != "" && profile.Status != filter.Status {
			continue
		}
		if filter.Subject != "" && !containsFold(profile.Subject, filter.Subject) {
			continue
		}
		if filter.City != "" && !containsFold(profile.City, filter.City) {
			continue
		}
		if filter.RateMin > 0 && profile.HourlyRate < filter.RateMin {
			continue
		}
		if filter.RateMax > 0 && profile.HourlyRate > filter.RateMax {
			continue
		}
		matched = append(matched, profile)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	page := filter.Page
	if page < 1 {
		page = 1
	}
	start := (page - 1) * ports.SearchPageSize
	if start >= len(matched) {
		return []entities.TutorProfile{}, nil
	}
	end := start + ports.SearchPageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], nil
}

func (s *Store) RecordReview(_ context.Context, tutorID string, verdict entities.ProfileStatus, reviewerID string, reviewedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile, exists := s.profiles[tutorID]
	if !exists {
		return domainerrors.ErrProfileNotFound
	}
	profile.Status = verdict
	profile.ApprovedBy = reviewerID
	profile.ApprovedAt = &reviewedAt
	s.profiles[tutorID] = profile
	return nil
}

func (s *Store) Now() time.Time {
	return time.Now()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
