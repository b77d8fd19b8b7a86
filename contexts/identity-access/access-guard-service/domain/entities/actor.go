package entities

type Role string

const (
	RoleStudent Role = "student"
	RoleTutor   Role = "tutor"
	RoleAdmin   Role = "admin"
	RoleCSKH    Role = "cskh"
)

// Actor is the authenticated identity driving an operation. It is
// produced by the token verifier; nothing else constructs one.
type Actor struct {
	UserID   string
	Role     Role
	FullName string
}

func (a Actor) IsZero() bool {
	return a.UserID == ""
}

func IsSupportedRole(value Role) bool {
	switch value {
	case RoleStudent, RoleTutor, RoleAdmin, RoleCSKH:
		return true
	default:
		return false
	}
}
