package jwtadapter

import (
	"context"
	"errors"
	"testing"
	"time"

	"tutorlink/contexts/identity-access/access-guard-service/domain/entities"
	domainerrors "tutorlink/contexts/identity-access/access-guard-service/domain/errors"
)

func TestVerifyRoundTrip(t *testing.T) {
	verifier := NewVerifier("test-secret")
	token, err := verifier.Sign(entities.Actor{
		UserID:   "user-1",
		Role:     entities.RoleStudent,
		FullName: "An Nguyen",
	}, time.Now().Add(time.Hour).Unix())
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	actor, err := verifier.Verify(context.Background(), "Bearer "+token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if actor.UserID != "user-1" || actor.Role != entities.RoleStudent || actor.FullName != "An Nguyen" {
		t.Fatalf("unexpected actor %+v", actor)
	}
}

func TestVerifyAcceptsRawToken(t *testing.T) {
	verifier := NewVerifier("test-secret")
	token, err := verifier.Sign(entities.Actor{UserID: "user-1", Role: entities.RoleTutor}, 0)
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}
	if _, err := verifier.Verify(context.Background(), token); err != nil {
		t.Fatalf("verify without bearer prefix failed: %v", err)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := NewVerifier("secret-a").Sign(entities.Actor{UserID: "user-1", Role: entities.RoleTutor}, 0)
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}
	_, err = NewVerifier("secret-b").Verify(context.Background(), token)
	if !errors.Is(err, domainerrors.ErrInvalidToken) {
		t.Fatalf("expected invalid token, got %v", err)
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	verifier := NewVerifier("test-secret")
	token, err := verifier.Sign(entities.Actor{UserID: "user-1", Role: entities.RoleTutor},
		time.Now().Add(-time.Hour).Unix())
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}
	_, err = verifier.Verify(context.Background(), token)
	if !errors.Is(err, domainerrors.ErrInvalidToken) {
		t.Fatalf("expected invalid token, got %v", err)
	}
}

func TestVerifyRejectsMissingClaims(t *testing.T) {
	verifier := NewVerifier("test-secret")
	token, err := verifier.Sign(entities.Actor{UserID: "user-1", Role: "ghost"}, 0)
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}
	_, err = verifier.Verify(context.Background(), token)
	if !errors.Is(err, domainerrors.ErrInvalidToken) {
		t.Fatalf("expected invalid token for unsupported role, got %v", err)
	}
}
