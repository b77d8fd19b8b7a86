package httpserver

import (
	"net/http"
	"strconv"
	"strings"

	tutorhttp "tutorlink/contexts/class-marketplace/tutor-profile-service/transport/http"
	"tutorlink/contexts/identity-access/access-guard-service/domain/entities"
)

func (s *Server) registerTutorRoutes() {
	s.mux.HandleFunc("GET /api/tutors", s.handleSearchTutors)
	s.mux.HandleFunc("GET /api/tutors/pending", s.handleListPendingProfiles)
	s.mux.HandleFunc("GET /api/tutors/{tutor_id}", s.handleGetTutor)
	s.mux.HandleFunc("POST /api/tutors/submit-cv", s.handleSubmitCV)
	s.mux.HandleFunc("PUT /api/tutors/{tutor_id}/approve", s.handleReviewProfile)
}

func (s *Server) handleSearchTutors(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := tutorhttp.SearchTutorsRequest{
		Subject: strings.TrimSpace(query.Get("subject")),
		City:    strings.TrimSpace(query.Get("city")),
	}
	if raw := query.Get("rate_min"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "rate_min must be a number")
			return
		}
		req.RateMin = value
	}
	if raw := query.Get("rate_max"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "rate_max must be a number")
			return
		}
		req.RateMax = value
	}
	if raw := query.Get("page"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "page must be an integer")
			return
		}
		req.Page = value
	}

	resp, err := s.tutors.Handler.SearchTutorsHandler(r.Context(), req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "tutors listed", resp)
}

func (s *Server) handleListPendingProfiles(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.actor(w, r, entities.RoleAdmin, entities.RoleCSKH); !ok {
		return
	}
	resp, err := s.tutors.Handler.ListPendingHandler(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "pending profiles", resp)
}

func (s *Server) handleGetTutor(w http.ResponseWriter, r *http.Request) {
	resp, err := s.tutors.Handler.GetTutorHandler(r.Context(), r.PathValue("tutor_id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "tutor detail", resp)
}

func (s *Server) handleSubmitCV(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.actor(w, r)
	if !ok {
		return
	}
	var req tutorhttp.SubmitCVRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}
	resp, err := s.tutors.Handler.SubmitCVHandler(r.Context(), actor.UserID, req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, "cv submitted for review", resp)
}

func (s *Server) handleReviewProfile(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.actor(w, r, entities.RoleAdmin, entities.RoleCSKH)
	if !ok {
		return
	}
	var req tutorhttp.ReviewProfileRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}
	resp, err := s.tutors.Handler.ReviewProfileHandler(r.Context(), actor.UserID, r.PathValue("tutor_id"), req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "profile reviewed", resp)
}
