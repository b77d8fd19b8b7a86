package jwtadapter

import (
	"context"
	"strings"

	"tutorlink/contexts/identity-access/access-guard-service/domain/entities"
	domainerrors "tutorlink/contexts/identity-access/access-guard-service/domain/errors"

	"github.com/golang-jwt/jwt/v5"
)

// Verifier parses HMAC-signed bearer tokens carrying
// {user_id, role, full_name} claims.
type Verifier struct {
	Secret []byte
}

func NewVerifier(secret string) Verifier {
	return Verifier{Secret: []byte(secret)}
}

func (v Verifier) Verify(_ context.Context, bearer string) (entities.Actor, error) {
	raw := strings.TrimSpace(bearer)
	if lower := strings.ToLower(raw); strings.HasPrefix(lower, "bearer ") {
		raw = strings.TrimSpace(raw[len("bearer "):])
	}
	if raw == "" {
		return entities.Actor{}, domainerrors.ErrUnauthenticated
	}

	token, err := jwt.Parse(raw, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domainerrors.ErrInvalidToken
		}
		return v.Secret, nil
	})
	if err != nil || !token.Valid {
		return entities.Actor{}, domainerrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return entities.Actor{}, domainerrors.ErrInvalidToken
	}

	actor := entities.Actor{
		UserID:   claimString(claims, "user_id"),
		Role:     entities.Role(claimString(claims, "role")),
		FullName: claimString(claims, "full_name"),
	}
	if actor.UserID == "" || !entities.IsSupportedRole(actor.Role) {
		return entities.Actor{}, domainerrors.ErrInvalidToken
	}
	return actor, nil
}

// Sign issues a token for the given actor. Kept next to Verify so the
// two stay in sync; production issuance lives in the auth service.
func (v Verifier) Sign(actor entities.Actor, expiresAt int64) (string, error) {
	claims := jwt.MapClaims{
		"user_id":   actor.UserID,
		"role":      string(actor.Role),
		"full_name": actor.FullName,
	}
	if expiresAt > 0 {
		claims["exp"] = expiresAt
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(v.Secret)
}

func claimString(claims jwt.MapClaims, key string) string {
	value, ok := claims[key].(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(value)
}
