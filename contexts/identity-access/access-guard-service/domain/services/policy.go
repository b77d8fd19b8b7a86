package services

import "tutorlink/contexts/identity-access/access-guard-service/domain/entities"

// RoleAllowed is the any-of combinator: an empty allowed set means any
// authenticated role qualifies.
func RoleAllowed(role entities.Role, allowed ...entities.Role) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, item := range allowed {
		if role == item {
			return true
		}
	}
	return false
}
