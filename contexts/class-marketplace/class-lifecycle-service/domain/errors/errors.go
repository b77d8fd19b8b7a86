package errors

import "errors"

var (
	ErrClassNotFound          = errors.New("class not found")
	ErrInvalidClassInput      = errors.New("invalid class input")
	ErrInvalidStateTransition = errors.New("invalid class state transition")
	ErrNotClassOwner          = errors.New("actor is not the class owner")
	ErrNotClassParticipant    = errors.New("actor is neither admin nor the selected tutor")
	ErrSupportContactMissing  = errors.New("no support contact available")
)
