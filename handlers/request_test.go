package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Souvikgooooo/ThrivePro/middleware"
	"github.com/Souvikgooooo/ThrivePro/models"
	requestSvc "github.com/Souvikgooooo/ThrivePro/services/request"

	"github.com/gin-gonic/gin"
)

// stubRequestService returns canned results so handler mapping can be tested
// without a database.
type stubRequestService struct {
	createErr error
	updateErr error
	record    *models.ServiceRequest
	list      []models.ServiceRequest
}

func (s *stubRequestService) Create(requestSvc.CreateInput) (*models.ServiceRequest, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return s.record, nil
}

func (s *stubRequestService) ListForProvider(string) ([]models.ServiceRequest, error) {
	return s.list, nil
}

func (s *stubRequestService) ListForCustomer(string) ([]models.ServiceRequest, error) {
	return s.list, nil
}

func (s *stubRequestService) UpdateStatus(string, models.Status, string) (*models.ServiceRequest, error) {
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	return s.record, nil
}

func (s *stubRequestService) ConfirmPayment(string, string) (*models.ServiceRequest, error) {
	return s.record, nil
}

func newTestRouter(svc requestSvc.RequestService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	// Stand-in for the JWT middleware: the actor is fixed.
	r.Use(func(c *gin.Context) {
		c.Set(middleware.CtxActorID, "actor-1")
		c.Next()
	})
	h := NewRequestHandler(svc)
	r.POST("/api/service-requests", h.CreateRequest)
	r.GET("/api/service-requests/provider", h.ListForProvider)
	r.PATCH("/api/service-requests/:id/provider", h.UpdateStatus)
	return r
}

func sampleRequest() *models.ServiceRequest {
	return &models.ServiceRequest{
		ID:           "r1",
		CustomerID:   "actor-1",
		ProviderID:   "p1",
		ServiceName:  "Plumbing",
		ServicePrice: 499,
		TimeSlot:     time.Now().Add(24 * time.Hour),
		Status:       models.StatusPending,
	}
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	return body
}

func TestCreateRequestReturnsCreatedEnvelope(t *testing.T) {
	router := newTestRouter(&stubRequestService{record: sampleRequest()})

	payload := `{"providerId":"p1","serviceName":"Plumbing","customerAddress":"12 MG Road","time_slot":"2031-05-01T10:00:00Z"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/service-requests", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", w.Code)
	}
	body := decodeEnvelope(t, w)
	if body["status"] != "success" {
		t.Errorf("envelope status = %v, want success", body["status"])
	}
	data, _ := body["data"].(map[string]any)
	record, _ := data["serviceRequest"].(map[string]any)
	if record == nil || record["id"] != "r1" {
		t.Errorf("expected data.serviceRequest with id r1, got %v", data)
	}
	if record["status"] != "pending" {
		t.Errorf("serviceRequest status = %v, want pending", record["status"])
	}
}

func TestCreateRequestErrorMapping(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"validation", requestSvc.ValidationError{Message: "time_slot must be in the future"}, http.StatusBadRequest},
		{"not found", requestSvc.NotFoundError{Message: "provider not found"}, http.StatusNotFound},
		{"forbidden", requestSvc.ForbiddenError{Message: "not yours"}, http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := newTestRouter(&stubRequestService{createErr: tc.err})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/service-requests", strings.NewReader(`{}`))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			if w.Code != tc.wantCode {
				t.Fatalf("status = %d, want %d", w.Code, tc.wantCode)
			}
			body := decodeEnvelope(t, w)
			if body["status"] != "fail" {
				t.Errorf("envelope status = %v, want fail", body["status"])
			}
			if msg, _ := body["message"].(string); msg == "" {
				t.Error("expected a human-readable message in the fail envelope")
			}
		})
	}
}

func TestCreateRequestRejectsMalformedBody(t *testing.T) {
	router := newTestRouter(&stubRequestService{record: sampleRequest()})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/service-requests", strings.NewReader(`{"providerId":`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestListForProviderReturnsEmptyArray(t *testing.T) {
	router := newTestRouter(&stubRequestService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/service-requests/provider", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := decodeEnvelope(t, w)
	data, _ := body["data"].(map[string]any)
	list, ok := data["serviceRequests"].([]any)
	if !ok {
		t.Fatalf("expected data.serviceRequests to be an array, got %v", data)
	}
	if len(list) != 0 {
		t.Errorf("expected empty array, got %d entries", len(list))
	}
}

func TestUpdateStatusReturnsUpdatedRecord(t *testing.T) {
	record := sampleRequest()
	record.Status = models.StatusAccepted
	router := newTestRouter(&stubRequestService{record: record})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/service-requests/r1/provider", strings.NewReader(`{"status":"accepted"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := decodeEnvelope(t, w)
	data, _ := body["data"].(map[string]any)
	rec, _ := data["serviceRequest"].(map[string]any)
	if rec == nil || rec["status"] != "accepted" {
		t.Errorf("expected updated serviceRequest with status accepted, got %v", data)
	}
}

func TestUpdateStatusForbiddenMapsTo403(t *testing.T) {
	router := newTestRouter(&stubRequestService{
		updateErr: requestSvc.ForbiddenError{Message: "you are not assigned to this request"},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/service-requests/r1/provider", strings.NewReader(`{"status":"accepted"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
}
