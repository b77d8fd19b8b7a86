package http

// ListScope selects the role-scoped view of the listing endpoint.
type ListScope string

const (
	ScopeOwner         ListScope = "owner"
	ScopeTutorEligible ListScope = "tutor_eligible"
	ScopeAll           ListScope = "all"
)

type CreateClassRequest struct {
	Subject       string   `json:"subject" validate:"required"`
	Grade         string   `json:"grade" validate:"required"`
	Schedule      string   `json:"schedule" validate:"required"`
	TuitionAmount string   `json:"tuition_amount" validate:"required"`
	Lat           *float64 `json:"lat"`
	Lng           *float64 `json:"lng"`
	City          string   `json:"city"`
	District      string   `json:"district"`
	Ward          string   `json:"ward"`
}

type RejectClassRequest struct {
	Reason string `json:"reason"`
}

type ApplyRequest struct {
	Message string `json:"message"`
}

type SelectTutorRequest struct {
	TutorID string `json:"tutor_id" validate:"required"`
}

type CancelRequest struct {
	Reason string `json:"reason"`
}

type ListClassesRequest struct {
	Scope   ListScope
	ActorID string
	Status  string
	Subject string
}

type ClassDTO struct {
	ClassID         string  `json:"class_id"`
	StudentID       string  `json:"student_id"`
	Subject         string  `json:"subject"`
	Grade           string  `json:"grade"`
	Schedule        string  `json:"schedule"`
	TuitionAmount   float64 `json:"tuition_amount"`
	Lat             float64 `json:"lat"`
	Lng             float64 `json:"lng"`
	City            string  `json:"city,omitempty"`
	District        string  `json:"district,omitempty"`
	Ward            string  `json:"ward,omitempty"`
	Visibility      string  `json:"visibility"`
	Status          string  `json:"status"`
	SelectedTutorID string  `json:"selected_tutor_id,omitempty"`
	RejectionReason string  `json:"rejection_reason,omitempty"`
	CreatedAt       string  `json:"created_at"`
	ApprovedAt      string  `json:"approved_at,omitempty"`
	CompletedAt     string  `json:"completed_at,omitempty"`
}

type ClassDetailDTO struct {
	ClassDTO
	StudentName       string `json:"student_name,omitempty"`
	SelectedTutorName string `json:"selected_tutor_name,omitempty"`
}

type ListClassesResponse struct {
	Items []ClassDTO `json:"items"`
}
