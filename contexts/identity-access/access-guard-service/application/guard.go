package application

import (
	"context"
	"log/slog"
	"strings"

	"tutorlink/contexts/identity-access/access-guard-service/domain/entities"
	domainerrors "tutorlink/contexts/identity-access/access-guard-service/domain/errors"
	"tutorlink/contexts/identity-access/access-guard-service/domain/services"
	"tutorlink/contexts/identity-access/access-guard-service/ports"
)

// Guard authenticates bearer credentials and enforces role sets.
// Ownership predicates stay with the resource-owning modules.
type Guard struct {
	Verifier ports.TokenVerifier
	Logger   *slog.Logger
}

// Authenticate resolves the Authorization header value into an Actor.
// A blank header yields ErrUnauthenticated.
func (g Guard) Authenticate(ctx context.Context, bearer string) (entities.Actor, error) {
	if strings.TrimSpace(bearer) == "" {
		return entities.Actor{}, domainerrors.ErrUnauthenticated
	}
	actor, err := g.Verifier.Verify(ctx, bearer)
	if err != nil {
		return entities.Actor{}, err
	}
	if actor.IsZero() || !entities.IsSupportedRole(actor.Role) {
		return entities.Actor{}, domainerrors.ErrInvalidToken
	}
	return actor, nil
}

// RequireRole denies with ErrForbidden unless the actor's role is in
// the allowed set, and with ErrUnauthenticated for a zero actor.
func (g Guard) RequireRole(actor entities.Actor, allowed ...entities.Role) error {
	if actor.IsZero() {
		return domainerrors.ErrUnauthenticated
	}
	if !services.RoleAllowed(actor.Role, allowed...) {
		if g.Logger != nil {
			g.Logger.Warn("role check denied",
				"event", "guard_role_denied",
				"module", "identity-access/access-guard-service",
				"layer", "application",
				"user_id", actor.UserID,
				"role", string(actor.Role),
			)
		}
		return domainerrors.ErrForbidden
	}
	return nil
}
