package httpserver

import (
	"log/slog"
	"testing"
	"time"

	classlifecycle "tutorlink/contexts/class-marketplace/class-lifecycle-service"
	tutorprofile "tutorlink/contexts/class-marketplace/tutor-profile-service"
	accessguard "tutorlink/contexts/identity-access/access-guard-service"
	jwtadapter "tutorlink/contexts/identity-access/access-guard-service/adapters/jwt"
	guardentities "tutorlink/contexts/identity-access/access-guard-service/domain/entities"
)

const testJWTSecret = "httpserver-test-secret"

func newTestServer() *Server {
	logger := slog.Default()
	return New(
		classlifecycle.NewInMemoryModule(nil, logger),
		tutorprofile.NewInMemoryModule(nil, logger),
		accessguard.NewJWTModule(testJWTSecret, logger),
		logger,
		":0",
	)
}

func bearerToken(t *testing.T, userID string, role guardentities.Role) string {
	t.Helper()
	token, err := jwtadapter.NewVerifier(testJWTSecret).Sign(guardentities.Actor{
		UserID:   userID,
		Role:     role,
		FullName: "Test " + userID,
	}, time.Now().Add(time.Hour).Unix())
	if err != nil {
		t.Fatalf("sign test token: %v", err)
	}
	return "Bearer " + token
}
