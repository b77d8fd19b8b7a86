package accessguard

import (
	"log/slog"

	jwtadapter "tutorlink/contexts/identity-access/access-guard-service/adapters/jwt"
	"tutorlink/contexts/identity-access/access-guard-service/application"
	"tutorlink/contexts/identity-access/access-guard-service/ports"
)

type Module struct {
	Guard application.Guard
}

type Dependencies struct {
	Verifier ports.TokenVerifier
	Logger   *slog.Logger
}

func NewModule(deps Dependencies) Module {
	return Module{
		Guard: application.Guard{
			Verifier: deps.Verifier,
			Logger:   deps.Logger,
		},
	}
}

func NewJWTModule(secret string, logger *slog.Logger) Module {
	return NewModule(Dependencies{
		Verifier: jwtadapter.NewVerifier(secret),
		Logger:   logger,
	})
}
