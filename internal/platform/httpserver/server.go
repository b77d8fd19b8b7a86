package httpserver

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	classlifecycle "tutorlink/contexts/class-marketplace/class-lifecycle-service"
	classerrors "tutorlink/contexts/class-marketplace/class-lifecycle-service/domain/errors"
	tutorprofile "tutorlink/contexts/class-marketplace/tutor-profile-service"
	profileerrors "tutorlink/contexts/class-marketplace/tutor-profile-service/domain/errors"
	accessguard "tutorlink/contexts/identity-access/access-guard-service"
	"tutorlink/contexts/identity-access/access-guard-service/domain/entities"
	guarderrors "tutorlink/contexts/identity-access/access-guard-service/domain/errors"

	"github.com/go-playground/validator/v10"
	httpSwagger "github.com/swaggo/http-swagger"
	_ "tutorlink/internal/platform/httpserver/docs"
)

type Server struct {
	mux      *http.ServeMux
	logger   *slog.Logger
	addr     string
	validate *validator.Validate
	classes  classlifecycle.Module
	tutors   tutorprofile.Module
	guard    accessguard.Module
}

func New(
	classes classlifecycle.Module,
	tutors tutorprofile.Module,
	guard accessguard.Module,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:      http.NewServeMux(),
		logger:   logger,
		addr:     addr,
		validate: validator.New(),
		classes:  classes,
		tutors:   tutors,
		guard:    guard,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

// Handler exposes the mux for tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
	s.registerClassRoutes()
	s.registerTutorRoutes()
}

// actor authenticates the request and, when roles are given, enforces
// that the actor holds one of them.
func (s *Server) actor(w http.ResponseWriter, r *http.Request, roles ...entities.Role) (entities.Actor, bool) {
	actor, err := s.guard.Guard.Authenticate(r.Context(), r.Header.Get("Authorization"))
	if err != nil {
		writeDomainError(w, err)
		return entities.Actor{}, false
	}
	if err := s.guard.Guard.RequireRole(actor, roles...); err != nil {
		writeDomainError(w, err)
		return entities.Actor{}, false
	}
	return actor, true
}

// optionalActor resolves the actor when credentials are present and
// returns a zero actor otherwise. A present but bad token still fails.
func (s *Server) optionalActor(w http.ResponseWriter, r *http.Request) (entities.Actor, bool) {
	bearer := r.Header.Get("Authorization")
	if bearer == "" {
		return entities.Actor{}, true
	}
	actor, err := s.guard.Guard.Authenticate(r.Context(), bearer)
	if err != nil {
		writeDomainError(w, err)
		return entities.Actor{}, false
	}
	return actor, true
}

func (s *Server) decodeAndValidate(w http.ResponseWriter, r *http.Request, target any) bool {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		writeError(w, http.StatusBadRequest, "request body must be valid JSON")
		return false
	}
	if err := s.validate.Struct(target); err != nil {
		writeError(w, http.StatusBadRequest, "missing or invalid fields: "+err.Error())
		return false
	}
	return true
}

type responseEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func writeSuccess(w http.ResponseWriter, status int, message string, data any) {
	writeJSON(w, status, responseEnvelope{Success: true, Message: message, Data: data})
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, responseEnvelope{Success: false, Message: message})
}

func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, classerrors.ErrInvalidClassInput),
		errors.Is(err, profileerrors.ErrInvalidProfileInput),
		errors.Is(err, profileerrors.ErrInvalidReviewVerdict):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, guarderrors.ErrUnauthenticated),
		errors.Is(err, guarderrors.ErrInvalidToken):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, guarderrors.ErrForbidden),
		errors.Is(err, classerrors.ErrNotClassOwner),
		errors.Is(err, classerrors.ErrNotClassParticipant):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, classerrors.ErrClassNotFound),
		errors.Is(err, profileerrors.ErrProfileNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, classerrors.ErrInvalidStateTransition):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
