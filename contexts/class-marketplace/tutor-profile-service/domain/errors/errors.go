package errors

import "errors"

var (
	ErrProfileNotFound      = errors.New("tutor profile not found")
	ErrInvalidProfileInput  = errors.New("invalid tutor profile input")
	ErrInvalidReviewVerdict = errors.New("review verdict must be APPROVED or REJECTED")
)
