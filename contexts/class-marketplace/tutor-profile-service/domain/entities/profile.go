package entities

import (
	"strings"
	"time"
)

type ProfileStatus string

const (
	ProfileStatusPending  ProfileStatus = "PENDING"
	ProfileStatusApproved ProfileStatus = "APPROVED"
	ProfileStatusRejected ProfileStatus = "REJECTED"
)

// TutorProfile is a tutor's CV submission. One profile per user;
// resubmission resets it to PENDING for another review round.
type TutorProfile struct {
	TutorID        string
	UserID         string
	FullName       string
	BirthDate      string
	Avatar         string
	IDCardFront    string
	IDCardBack     string
	Certificates   []string
	Bio            string
	EducationLevel string
	Major          string
	University     string
	Experience     string
	Subject        string
	City           string
	HourlyRate     float64
	Status         ProfileStatus
	ApprovedBy     string
	ApprovedAt     *time.Time
	CreatedAt      time.Time
}

func (p TutorProfile) ValidateBasics() bool {
	return strings.TrimSpace(p.UserID) != "" &&
		strings.TrimSpace(p.FullName) != "" &&
		strings.TrimSpace(p.Avatar) != ""
}

func IsReviewVerdict(value ProfileStatus) bool {
	return value == ProfileStatusApproved || value == ProfileStatusRejected
}
