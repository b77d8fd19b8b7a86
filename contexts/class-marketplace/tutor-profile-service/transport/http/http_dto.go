package http

type SubmitCVRequest struct {
	FullName       string   `json:"full_name" validate:"required"`
	BirthDate      string   `json:"birth_date"`
	Avatar         string   `json:"avatar" validate:"required"`
	IDCardFront    string   `json:"id_card_front"`
	IDCardBack     string   `json:"id_card_back"`
	Certificates   []string `json:"certificates"`
	Bio            string   `json:"bio"`
	EducationLevel string   `json:"education_level"`
	Major          string   `json:"major"`
	University     string   `json:"university"`
	Experience     string   `json:"experience"`
	Subject        string   `json:"subject"`
	City           string   `json:"city"`
	HourlyRate     float64  `json:"hourly_rate"`
}

type ReviewProfileRequest struct {
	Verdict string `json:"verdict" validate:"required"`
}

type SearchTutorsRequest struct {
	Subject string
	City    string
	RateMin float64
	RateMax float64
	Page    int
}

type TutorProfileDTO struct {
	TutorID        string   `json:"tutor_id"`
	UserID         string   `json:"user_id"`
	FullName       string   `json:"full_name"`
	BirthDate      string   `json:"birth_date,omitempty"`
	Avatar         string   `json:"avatar,omitempty"`
	Certificates   []string `json:"certificates,omitempty"`
	Bio            string   `json:"bio,omitempty"`
	EducationLevel string   `json:"education_level,omitempty"`
	Major          string   `json:"major,omitempty"`
	University     string   `json:"university,omitempty"`
	Experience     string   `json:"experience,omitempty"`
	Subject        string   `json:"subject,omitempty"`
	City           string   `json:"city,omitempty"`
	HourlyRate     float64  `json:"hourly_rate"`
	Status         string   `json:"status"`
	ApprovedAt     string   `json:"approved_at,omitempty"`
	CreatedAt      string   `json:"created_at"`
}

type SearchTutorsResponse struct {
	Items    []TutorProfileDTO `json:"items"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

type PendingProfilesResponse struct {
	Items []TutorProfileDTO `json:"items"`
}
