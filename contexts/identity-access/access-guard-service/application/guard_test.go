package application

import (
	"context"
	"errors"
	"testing"

	"tutorlink/contexts/identity-access/access-guard-service/domain/entities"
	domainerrors "tutorlink/contexts/identity-access/access-guard-service/domain/errors"
)

type fakeVerifier struct {
	actor entities.Actor
	err   error
}

func (f fakeVerifier) Verify(_ context.Context, _ string) (entities.Actor, error) {
	return f.actor, f.err
}

func TestAuthenticateRejectsBlankBearer(t *testing.T) {
	guard := Guard{Verifier: fakeVerifier{}}
	_, err := guard.Authenticate(context.Background(), "   ")
	if !errors.Is(err, domainerrors.ErrUnauthenticated) {
		t.Fatalf("expected unauthenticated, got %v", err)
	}
}

func TestAuthenticateRejectsUnsupportedRole(t *testing.T) {
	guard := Guard{Verifier: fakeVerifier{actor: entities.Actor{UserID: "u-1", Role: "superuser"}}}
	_, err := guard.Authenticate(context.Background(), "bearer token")
	if !errors.Is(err, domainerrors.ErrInvalidToken) {
		t.Fatalf("expected invalid token, got %v", err)
	}
}

func TestAuthenticatePassesThroughVerifierError(t *testing.T) {
	guard := Guard{Verifier: fakeVerifier{err: domainerrors.ErrInvalidToken}}
	_, err := guard.Authenticate(context.Background(), "bearer bad")
	if !errors.Is(err, domainerrors.ErrInvalidToken) {
		t.Fatalf("expected invalid token, got %v", err)
	}
}

func TestRequireRoleAnyOf(t *testing.T) {
	guard := Guard{}
	actor := entities.Actor{UserID: "u-1", Role: entities.RoleCSKH}

	if err := guard.RequireRole(actor, entities.RoleAdmin, entities.RoleCSKH); err != nil {
		t.Fatalf("cskh should pass an admin|cskh gate: %v", err)
	}
	if err := guard.RequireRole(actor, entities.RoleAdmin); !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("cskh should fail an admin-only gate, got %v", err)
	}
}

func TestRequireRoleEmptySetMeansAuthenticated(t *testing.T) {
	guard := Guard{}
	actor := entities.Actor{UserID: "u-1", Role: entities.RoleTutor}
	if err := guard.RequireRole(actor); err != nil {
		t.Fatalf("any authenticated actor should pass an empty gate: %v", err)
	}
	if err := guard.RequireRole(entities.Actor{}); !errors.Is(err, domainerrors.ErrUnauthenticated) {
		t.Fatalf("zero actor should be unauthenticated, got %v", err)
	}
}
