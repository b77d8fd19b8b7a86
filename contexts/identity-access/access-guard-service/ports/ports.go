package ports

import (
	"context"

	"tutorlink/contexts/identity-access/access-guard-service/domain/entities"
)

// TokenVerifier turns a bearer credential into an Actor. The guard
// trusts the result unconditionally.
type TokenVerifier interface {
	Verify(ctx context.Context, bearer string) (entities.Actor, error)
}
