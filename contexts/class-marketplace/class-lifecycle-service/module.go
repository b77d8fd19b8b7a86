package classlifecycle

import (
	"log/slog"

	httpadapter "tutorlink/contexts/class-marketplace/class-lifecycle-service/adapters/http"
	"tutorlink/contexts/class-marketplace/class-lifecycle-service/adapters/memory"
	"tutorlink/contexts/class-marketplace/class-lifecycle-service/application/commands"
	"tutorlink/contexts/class-marketplace/class-lifecycle-service/application/queries"
	"tutorlink/contexts/class-marketplace/class-lifecycle-service/application/workers"
	"tutorlink/contexts/class-marketplace/class-lifecycle-service/domain/entities"
	"tutorlink/contexts/class-marketplace/class-lifecycle-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Relay   workers.NotificationRelay
	Store   *memory.Store
}

type Dependencies struct {
	Classes     ports.ClassRepository
	History     ports.StateHistoryRepository
	Outbox      ports.NotificationOutbox
	Sink        ports.NotificationSink
	Directory   ports.UserDirectory
	Publisher   ports.EventPublisher
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	RelayTopic  string
	RelayBatch  int
	Logger      *slog.Logger
}

func NewModule(deps Dependencies) Module {
	createClass := commands.CreateClassUseCase{
		Classes:     deps.Classes,
		Clock:       deps.Clock,
		IDGenerator: deps.IDGenerator,
		Logger:      deps.Logger,
	}
	reviewClass := commands.ReviewClassUseCase{
		Classes: deps.Classes,
		History: deps.History,
		Outbox:  deps.Outbox,
		Clock:   deps.Clock,
		IDGen:   deps.IDGenerator,
		Logger:  deps.Logger,
	}
	applyToClass := commands.ApplyToClassUseCase{
		Classes: deps.Classes,
		Outbox:  deps.Outbox,
		Clock:   deps.Clock,
		IDGen:   deps.IDGenerator,
		Logger:  deps.Logger,
	}
	selectTutor := commands.SelectTutorUseCase{
		Classes: deps.Classes,
		History: deps.History,
		Outbox:  deps.Outbox,
		Clock:   deps.Clock,
		IDGen:   deps.IDGenerator,
		Logger:  deps.Logger,
	}
	completeClass := commands.CompleteClassUseCase{
		Classes: deps.Classes,
		History: deps.History,
		Outbox:  deps.Outbox,
		Clock:   deps.Clock,
		IDGen:   deps.IDGenerator,
		Logger:  deps.Logger,
	}
	requestCancel := commands.RequestCancelUseCase{
		Classes:   deps.Classes,
		Directory: deps.Directory,
		Outbox:    deps.Outbox,
		Clock:     deps.Clock,
		IDGen:     deps.IDGenerator,
		Logger:    deps.Logger,
	}

	listClasses := queries.ListClassesUseCase{
		Classes: deps.Classes,
		Logger:  deps.Logger,
	}
	getClass := queries.GetClassUseCase{
		Classes:   deps.Classes,
		Directory: deps.Directory,
		Logger:    deps.Logger,
	}

	return Module{
		Handler: httpadapter.Handler{
			CreateClass:   createClass,
			ReviewClass:   reviewClass,
			ApplyToClass:  applyToClass,
			SelectTutor:   selectTutor,
			CompleteClass: completeClass,
			RequestCancel: requestCancel,
			ListClasses:   listClasses,
			GetClass:      getClass,
			Logger:        deps.Logger,
		},
		Relay: workers.NotificationRelay{
			Outbox:    deps.Outbox,
			Sink:      deps.Sink,
			Publisher: deps.Publisher,
			Clock:     deps.Clock,
			Topic:     deps.RelayTopic,
			BatchSize: deps.RelayBatch,
			Logger:    deps.Logger,
		},
	}
}

func NewInMemoryModule(seed []entities.ClassPosting, logger *slog.Logger) Module {
	store := memory.NewStore(seed)
	module := NewModule(Dependencies{
		Classes:     store,
		History:     store,
		Outbox:      store,
		Sink:        store,
		Directory:   store,
		Publisher:   store,
		Clock:       store,
		IDGenerator: store,
		RelayTopic:  "class.notification",
		RelayBatch:  100,
		Logger:      logger,
	})
	module.Store = store
	return module
}
