package entities

import (
	"strings"
	"time"
)

type ClassStatus string
type Visibility string

const (
	ClassStatusPendingApproval  ClassStatus = "PENDING_ADMIN_APPROVAL"
	ClassStatusApprovedVisible  ClassStatus = "APPROVED_VISIBLE"
	ClassStatusRejected         ClassStatus = "REJECTED"
	ClassStatusAwaitingPayments ClassStatus = "AWAITING_PAYMENTS"
	ClassStatusDone             ClassStatus = "DONE"

	VisibilityPublic  Visibility = "PUBLIC"
	VisibilityPrivate Visibility = "PRIVATE"
)

// Fallback coordinates used when a posting is created without geolocation.
const (
	DefaultLat = 10.7769
	DefaultLng = 106.7009
)

const DefaultRejectionReason = "No reason provided"

type ClassPosting struct {
	ClassID         string
	StudentID       string
	Subject         string
	Grade           string
	Schedule        string
	TuitionAmount   float64
	Lat             float64
	Lng             float64
	City            string
	District        string
	Ward            string
	Visibility      Visibility
	Status          ClassStatus
	SelectedTutorID string
	RejectionReason string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	ApprovedAt      *time.Time
	RejectedAt      *time.Time
	CompletedAt     *time.Time
}

// StateChange records one lifecycle transition for audit.
type StateChange struct {
	ChangeID  string
	ClassID   string
	FromState ClassStatus
	ToState   ClassStatus
	ChangedBy string
	Reason    string
	CreatedAt time.Time
}

func (c ClassPosting) ValidateBasics() bool {
	return strings.TrimSpace(c.Subject) != "" &&
		strings.TrimSpace(c.Grade) != "" &&
		strings.TrimSpace(c.Schedule) != "" &&
		strings.TrimSpace(c.StudentID) != "" &&
		c.TuitionAmount > 0
}

// VisibleToTutors reports whether the posting may appear in the
// tutor-facing listing. A posting with a tutor already selected is
// never tutor-visible, even if a stale PUBLIC flag survives in storage.
func (c ClassPosting) VisibleToTutors() bool {
	return c.Status == ClassStatusApprovedVisible &&
		c.Visibility == VisibilityPublic &&
		c.SelectedTutorID == ""
}

func (c ClassPosting) IsTerminal() bool {
	return c.Status == ClassStatusDone || c.Status == ClassStatusRejected
}

func (c ClassPosting) HasSelectedTutor(tutorID string) bool {
	return c.SelectedTutorID != "" && c.SelectedTutorID == strings.TrimSpace(tutorID)
}

func (c ClassPosting) IsOwnedBy(studentID string) bool {
	return c.StudentID == strings.TrimSpace(studentID)
}

func IsSupportedStatus(value ClassStatus) bool {
	switch value {
	case ClassStatusPendingApproval, ClassStatusApprovedVisible, ClassStatusRejected,
		ClassStatusAwaitingPayments, ClassStatusDone:
		return true
	default:
		return false
	}
}

// VisibilityForStatus pins PUBLIC to exactly one status so tutors never
// see pending, rejected, or already claimed postings.
func VisibilityForStatus(status ClassStatus) Visibility {
	if status == ClassStatusApprovedVisible {
		return VisibilityPublic
	}
	return VisibilityPrivate
}
