package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	guardentities "tutorlink/contexts/identity-access/access-guard-service/domain/entities"
)

func postClass(t *testing.T, server *Server, authorization string) *httptest.ResponseRecorder {
	t.Helper()
	body := []byte(`{"subject":"Math","grade":"10","schedule":"Mon/Wed 19:00","tuition_amount":"150"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/classes", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	return rr
}

func createClassViaAPI(t *testing.T, server *Server, studentToken string) string {
	t.Helper()
	rr := postClass(t, server, studentToken)
	if rr.Code != http.StatusCreated {
		t.Fatalf("create class expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}
	var envelope struct {
		Success bool `json:"success"`
		Data    struct {
			ClassID string `json:"class_id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if !envelope.Success || envelope.Data.ClassID == "" {
		t.Fatalf("unexpected create envelope: %s", rr.Body.String())
	}
	return envelope.Data.ClassID
}

func TestCreateClassRequiresAuthentication(t *testing.T) {
	server := newTestServer()
	rr := postClass(t, server, "")
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestCreateClassRejectsNonStudent(t *testing.T) {
	server := newTestServer()
	rr := postClass(t, server, bearerToken(t, "tutor-1", guardentities.RoleTutor))
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestCreateClassRejectsGarbageToken(t *testing.T) {
	server := newTestServer()
	rr := postClass(t, server, "Bearer not-a-token")
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestCreateClassMissingFieldsIs400(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodPost, "/api/classes", bytes.NewReader([]byte(`{"subject":"Math"}`)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearerToken(t, "student-1", guardentities.RoleStudent))

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}
	var envelope struct {
		Success bool `json:"success"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode error envelope: %v", err)
	}
	if envelope.Success {
		t.Fatalf("error envelope should carry success=false: %s", rr.Body.String())
	}
}

func TestApproveRequiresAdmin(t *testing.T) {
	server := newTestServer()
	classID := createClassViaAPI(t, server, bearerToken(t, "student-1", guardentities.RoleStudent))

	req := httptest.NewRequest(http.MethodPut, "/api/classes/"+classID+"/approve", nil)
	req.Header.Set("Authorization", bearerToken(t, "student-1", guardentities.RoleStudent))
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}

	req = httptest.NewRequest(http.MethodPut, "/api/classes/"+classID+"/approve", nil)
	req.Header.Set("Authorization", bearerToken(t, "admin-1", guardentities.RoleAdmin))
	rr = httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestApproveTwiceIsConflict(t *testing.T) {
	server := newTestServer()
	classID := createClassViaAPI(t, server, bearerToken(t, "student-1", guardentities.RoleStudent))
	admin := bearerToken(t, "admin-1", guardentities.RoleAdmin)

	req := httptest.NewRequest(http.MethodPut, "/api/classes/"+classID+"/approve", nil)
	req.Header.Set("Authorization", admin)
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("first approve expected 200, got %d", rr.Code)
	}

	req = httptest.NewRequest(http.MethodPut, "/api/classes/"+classID+"/approve", nil)
	req.Header.Set("Authorization", admin)
	rr = httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusConflict {
		t.Fatalf("second approve expected 409, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestAnonymousListingSeesOnlyApproved(t *testing.T) {
	server := newTestServer()
	student := bearerToken(t, "student-1", guardentities.RoleStudent)
	pendingID := createClassViaAPI(t, server, student)
	approvedID := createClassViaAPI(t, server, student)

	req := httptest.NewRequest(http.MethodPut, "/api/classes/"+approvedID+"/approve", nil)
	req.Header.Set("Authorization", bearerToken(t, "admin-1", guardentities.RoleAdmin))
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("approve expected 200, got %d", rr.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/classes", nil)
	rr = httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("anonymous list expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	var envelope struct {
		Data struct {
			Items []struct {
				ClassID string `json:"class_id"`
			} `json:"items"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode listing: %v", err)
	}
	if len(envelope.Data.Items) != 1 || envelope.Data.Items[0].ClassID != approvedID {
		t.Fatalf("anonymous listing should hold only the approved posting (not %s), got %s",
			pendingID, rr.Body.String())
	}
}

func TestSelectTutorByNonOwnerIsForbidden(t *testing.T) {
	server := newTestServer()
	classID := createClassViaAPI(t, server, bearerToken(t, "student-1", guardentities.RoleStudent))

	req := httptest.NewRequest(http.MethodPut, "/api/classes/"+classID+"/approve", nil)
	req.Header.Set("Authorization", bearerToken(t, "admin-1", guardentities.RoleAdmin))
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("approve expected 200, got %d", rr.Code)
	}

	body := []byte(`{"tutor_id":"tutor-1"}`)
	req = httptest.NewRequest(http.MethodPut, "/api/classes/"+classID+"/select-tutor", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearerToken(t, "student-2", guardentities.RoleStudent))
	rr = httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestGetClassUnknownIs404(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/classes/missing", nil)
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rr.Code, rr.Body.String())
	}
}
