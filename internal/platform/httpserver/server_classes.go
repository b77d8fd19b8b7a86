package httpserver

import (
	"net/http"
	"strings"

	classhttp "tutorlink/contexts/class-marketplace/class-lifecycle-service/transport/http"
	"tutorlink/contexts/identity-access/access-guard-service/domain/entities"
)

func (s *Server) registerClassRoutes() {
	s.mux.HandleFunc("POST /api/classes", s.handleCreateClass)
	s.mux.HandleFunc("GET /api/classes", s.handleListClasses)
	s.mux.HandleFunc("GET /api/classes/{class_id}", s.handleGetClass)
	s.mux.HandleFunc("PUT /api/classes/{class_id}/approve", s.handleApproveClass)
	s.mux.HandleFunc("PUT /api/classes/{class_id}/reject", s.handleRejectClass)
	s.mux.HandleFunc("POST /api/classes/{class_id}/apply", s.handleApplyToClass)
	s.mux.HandleFunc("PUT /api/classes/{class_id}/select-tutor", s.handleSelectTutor)
	s.mux.HandleFunc("PUT /api/classes/{class_id}/complete", s.handleCompleteClass)
	s.mux.HandleFunc("PUT /api/classes/{class_id}/cancel", s.handleCancelClass)
}

func (s *Server) handleCreateClass(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.actor(w, r, entities.RoleStudent)
	if !ok {
		return
	}
	var req classhttp.CreateClassRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}
	resp, err := s.classes.Handler.CreateClassHandler(r.Context(), actor.UserID, req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, "class created", resp)
}

// handleListClasses scopes the listing by the caller's role: students
// see their own postings, tutors see the open marketplace, staff see
// everything. Anonymous callers get the tutor-facing view.
func (s *Server) handleListClasses(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.optionalActor(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	req := classhttp.ListClassesRequest{
		ActorID: actor.UserID,
		Status:  strings.TrimSpace(query.Get("status")),
		Subject: strings.TrimSpace(query.Get("subject")),
	}
	switch actor.Role {
	case entities.RoleStudent:
		req.Scope = classhttp.ScopeOwner
	case entities.RoleAdmin, entities.RoleCSKH:
		req.Scope = classhttp.ScopeAll
	default:
		req.Scope = classhttp.ScopeTutorEligible
	}

	resp, err := s.classes.Handler.ListClassesHandler(r.Context(), req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "classes listed", resp)
}

func (s *Server) handleGetClass(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.optionalActor(w, r); !ok {
		return
	}
	resp, err := s.classes.Handler.GetClassHandler(r.Context(), r.PathValue("class_id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "class detail", resp)
}

func (s *Server) handleApproveClass(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.actor(w, r, entities.RoleAdmin)
	if !ok {
		return
	}
	resp, err := s.classes.Handler.ApproveClassHandler(r.Context(), actor.UserID, r.PathValue("class_id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "class approved", resp)
}

func (s *Server) handleRejectClass(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.actor(w, r, entities.RoleAdmin)
	if !ok {
		return
	}
	var req classhttp.RejectClassRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}
	resp, err := s.classes.Handler.RejectClassHandler(r.Context(), actor.UserID, r.PathValue("class_id"), req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "class rejected", resp)
}

func (s *Server) handleApplyToClass(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.actor(w, r, entities.RoleTutor)
	if !ok {
		return
	}
	var req classhttp.ApplyRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}
	if err := s.classes.Handler.ApplyHandler(r.Context(), actor.UserID, r.PathValue("class_id"), req); err != nil {
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "application recorded", nil)
}

func (s *Server) handleSelectTutor(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.actor(w, r, entities.RoleStudent)
	if !ok {
		return
	}
	var req classhttp.SelectTutorRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}
	resp, err := s.classes.Handler.SelectTutorHandler(r.Context(), actor.UserID, r.PathValue("class_id"), req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "tutor selected", resp)
}

func (s *Server) handleCompleteClass(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.actor(w, r, entities.RoleAdmin, entities.RoleTutor)
	if !ok {
		return
	}
	resp, err := s.classes.Handler.CompleteClassHandler(
		r.Context(),
		actor.UserID,
		actor.Role == entities.RoleAdmin,
		r.PathValue("class_id"),
	)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "class completed", resp)
}

func (s *Server) handleCancelClass(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.actor(w, r, entities.RoleStudent, entities.RoleTutor)
	if !ok {
		return
	}
	var req classhttp.CancelRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}
	if err := s.classes.Handler.RequestCancelHandler(r.Context(), actor.UserID, r.PathValue("class_id"), req); err != nil {
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "cancellation request forwarded to support", nil)
}
