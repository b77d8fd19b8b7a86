package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	guardentities "tutorlink/contexts/identity-access/access-guard-service/domain/entities"
)

func submitCVViaAPI(t *testing.T, server *Server, token string) string {
	t.Helper()
	body := []byte(`{"full_name":"Binh Tran","avatar":"https://cdn.example/a.png","subject":"Math","city":"Ho Chi Minh","hourly_rate":120}`)
	req := httptest.NewRequest(http.MethodPost, "/api/tutors/submit-cv", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", token)
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusCreated {
		t.Fatalf("submit cv expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}
	var envelope struct {
		Data struct {
			TutorID string `json:"tutor_id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode submit response: %v", err)
	}
	return envelope.Data.TutorID
}

func TestSubmitCVRequiresAuthentication(t *testing.T) {
	server := newTestServer()
	body := []byte(`{"full_name":"Binh Tran","avatar":"https://cdn.example/a.png"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/tutors/submit-cv", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestPendingProfilesRequiresStaff(t *testing.T) {
	server := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/api/tutors/pending", nil)
	req.Header.Set("Authorization", bearerToken(t, "tutor-1", guardentities.RoleTutor))
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("tutor expected 403, got %d", rr.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/tutors/pending", nil)
	req.Header.Set("Authorization", bearerToken(t, "cskh-1", guardentities.RoleCSKH))
	rr = httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("cskh expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestReviewProfileRequiresStaff(t *testing.T) {
	server := newTestServer()
	tutorID := submitCVViaAPI(t, server, bearerToken(t, "user-1", guardentities.RoleTutor))

	body := []byte(`{"verdict":"APPROVED"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/tutors/"+tutorID+"/approve", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearerToken(t, "user-1", guardentities.RoleTutor))
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("tutor reviewing own cv expected 403, got %d", rr.Code)
	}

	req = httptest.NewRequest(http.MethodPut, "/api/tutors/"+tutorID+"/approve", bytes.NewReader([]byte(`{"verdict":"APPROVED"}`)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearerToken(t, "admin-1", guardentities.RoleAdmin))
	rr = httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("admin review expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestReviewProfileBadVerdictIs400(t *testing.T) {
	server := newTestServer()
	tutorID := submitCVViaAPI(t, server, bearerToken(t, "user-1", guardentities.RoleTutor))

	req := httptest.NewRequest(http.MethodPut, "/api/tutors/"+tutorID+"/approve", bytes.NewReader([]byte(`{"verdict":"MAYBE"}`)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearerToken(t, "admin-1", guardentities.RoleAdmin))
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestSearchTutorsIsPublic(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/tutors?subject=math&rate_max=200", nil)
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	var envelope struct {
		Success bool `json:"success"`
		Data    struct {
			PageSize int `json:"page_size"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode search response: %v", err)
	}
	if !envelope.Success || envelope.Data.PageSize != 10 {
		t.Fatalf("unexpected search envelope: %s", rr.Body.String())
	}
}

func TestSearchTutorsRejectsBadRate(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/tutors?rate_min=cheap", nil)
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestGetTutorUnknownIs404(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/tutors/missing", nil)
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rr.Code, rr.Body.String())
	}
}
