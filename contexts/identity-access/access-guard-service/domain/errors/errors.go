package errors

import "errors"

var (
	ErrUnauthenticated = errors.New("missing or unverifiable credential")
	ErrInvalidToken    = errors.New("invalid token")
	ErrForbidden       = errors.New("forbidden: insufficient role")
)
