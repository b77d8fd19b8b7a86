package tutorprofile

import (
	"log/slog"

	httpadapter "tutorlink/contexts/class-marketplace/tutor-profile-service/adapters/http"
	"tutorlink/contexts/class-marketplace/tutor-profile-service/adapters/memory"
	"tutorlink/contexts/class-marketplace/tutor-profile-service/application/commands"
	"tutorlink/contexts/class-marketplace/tutor-profile-service/application/queries"
	"tutorlink/contexts/class-marketplace/tutor-profile-service/domain/entities"
	"tutorlink/contexts/class-marketplace/tutor-profile-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Profiles    ports.ProfileRepository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func NewModule(deps Dependencies) Module {
	submitCV := commands.SubmitCVUseCase{
		Profiles: deps.Profiles,
		Clock:    deps.Clock,
		IDGen:    deps.IDGenerator,
		Logger:   deps.Logger,
	}
	reviewProfile := commands.ReviewProfileUseCase{
		Profiles: deps.Profiles,
		Clock:    deps.Clock,
		Logger:   deps.Logger,
	}
	listPending := queries.ListPendingProfilesUseCase{
		Profiles: deps.Profiles,
		Logger:   deps.Logger,
	}
	searchTutors := queries.SearchTutorsUseCase{
		Profiles: deps.Profiles,
		Logger:   deps.Logger,
	}
	getTutor := queries.GetTutorUseCase{
		Profiles: deps.Profiles,
		Logger:   deps.Logger,
	}

	return Module{
		Handler: httpadapter.Handler{
			SubmitCV:      submitCV,
			ReviewProfile: reviewProfile,
			ListPending:   listPending,
			SearchTutors:  searchTutors,
			GetTutor:      getTutor,
			Logger:        deps.Logger,
		},
	}
}

func NewInMemoryModule(seed []entities.TutorProfile, logger *slog.Logger) Module {
	store := memory.NewStore(seed)
	module := NewModule(Dependencies{
		Profiles:    store,
		Clock:       store,
		IDGenerator: store,
		Logger:      logger,
	})
	module.Store = store
	return module
}
