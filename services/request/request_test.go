package request

import (
	"errors"
	"testing"
	"time"

	"github.com/Souvikgooooo/ThrivePro/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// --- in-memory fakes ---

type fakeRequestRepo struct {
	records map[string]*models.ServiceRequest
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{records: make(map[string]*models.ServiceRequest)}
}

func (f *fakeRequestRepo) Create(req *models.ServiceRequest) error {
	now := time.Now()
	req.CreatedAt = now
	req.UpdatedAt = now
	clone := *req
	f.records[req.ID] = &clone
	return nil
}

func (f *fakeRequestRepo) GetByID(id string) (*models.ServiceRequest, error) {
	req, ok := f.records[id]
	if !ok {
		return nil, nil
	}
	clone := *req
	return &clone, nil
}

func (f *fakeRequestRepo) GetByProvider(providerID string) ([]models.ServiceRequest, error) {
	var out []models.ServiceRequest
	for _, req := range f.records {
		if req.ProviderID == providerID {
			out = append(out, *req)
		}
	}
	return out, nil
}

func (f *fakeRequestRepo) GetByCustomer(customerID string) ([]models.ServiceRequest, error) {
	var out []models.ServiceRequest
	for _, req := range f.records {
		if req.CustomerID == customerID {
			out = append(out, *req)
		}
	}
	return out, nil
}

func (f *fakeRequestRepo) UpdateStatus(id string, status models.Status) (*models.ServiceRequest, error) {
	req, ok := f.records[id]
	if !ok {
		return nil, nil
	}
	req.Status = status
	req.UpdatedAt = time.Now()
	clone := *req
	return &clone, nil
}

func (f *fakeRequestRepo) SetPaymentIntent(id, intentID string) error {
	req, ok := f.records[id]
	if !ok {
		return errors.New("not found")
	}
	req.PaymentIntentID = intentID
	return nil
}

type fakeUserRepo struct {
	users map[string]*models.User
}

func (f *fakeUserRepo) GetByID(id string) (*models.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByIDWithProjection(id string, _ bson.M) (*models.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) Create(u *models.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) UpdateSetDocument(string, bson.M) error { return nil }

type fakeServiceRepo struct {
	services []models.Service
}

func (f *fakeServiceRepo) Create(svc *models.Service) error {
	f.services = append(f.services, *svc)
	return nil
}

func (f *fakeServiceRepo) GetByID(id string) (*models.Service, error) {
	for i := range f.services {
		if f.services[i].ID == id {
			return &f.services[i], nil
		}
	}
	return nil, nil
}

func (f *fakeServiceRepo) GetByProvider(providerID string) ([]models.Service, error) {
	var out []models.Service
	for _, s := range f.services {
		if s.ProviderID == providerID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeServiceRepo) GetByNameAndProvider(name, providerID string) (*models.Service, error) {
	for i := range f.services {
		if f.services[i].Name == name && f.services[i].ProviderID == providerID {
			return &f.services[i], nil
		}
	}
	return nil, nil
}

// --- fixtures ---

func newTestService(repo *fakeRequestRepo) *DefaultRequestService {
	users := &fakeUserRepo{users: map[string]*models.User{
		"p1": {ID: "p1", Name: "Priya", Role: models.RoleProvider},
		"c1": {ID: "c1", Name: "Arjun", Role: models.RoleCustomer},
	}}
	services := &fakeServiceRepo{services: []models.Service{
		{ID: "s1", ProviderID: "p1", Name: "Plumbing", Price: 499},
	}}
	return &DefaultRequestService{
		Repo:     repo,
		Users:    users,
		Services: services,
		Logger:   zap.NewNop(),
	}
}

func futureSlot() string {
	return time.Now().Add(48 * time.Hour).Format(time.RFC3339)
}

func validCreateInput() CreateInput {
	return CreateInput{
		CustomerID:      "c1",
		ProviderID:      "p1",
		ServiceName:     "Plumbing",
		CustomerAddress: "12 MG Road",
		NearestPoint:    "City Mall",
		TimeSlot:        futureSlot(),
	}
}

func seedRequest(repo *fakeRequestRepo, status models.Status) *models.ServiceRequest {
	req := &models.ServiceRequest{
		ID:              "r1",
		CustomerID:      "c1",
		ProviderID:      "p1",
		ServiceID:       "s1",
		ServiceName:     "Plumbing",
		ServicePrice:    499,
		CustomerAddress: "12 MG Road",
		TimeSlot:        time.Now().Add(48 * time.Hour),
		Status:          status,
	}
	repo.records[req.ID] = req
	return req
}

// --- Create ---

func TestCreatePersistsPendingRequest(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := newTestService(repo)

	req, err := svc.Create(validCreateInput())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if req.Status != models.StatusPending {
		t.Errorf("new request status = %s, want pending", req.Status)
	}
	if req.ServiceName != "Plumbing" || req.ServicePrice != 499 {
		t.Errorf("snapshot fields not taken from catalog entry: %q %v", req.ServiceName, req.ServicePrice)
	}
	if req.ID == "" {
		t.Error("expected a generated id")
	}
	if _, ok := repo.records[req.ID]; !ok {
		t.Error("request was not persisted")
	}
}

func TestCreateRejectsPastSlot(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := newTestService(repo)

	in := validCreateInput()
	in.TimeSlot = time.Now().Add(-time.Hour).Format(time.RFC3339)

	_, err := svc.Create(in)
	var validationErr ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(repo.records) != 0 {
		t.Error("no record may be persisted when the slot is in the past")
	}
}

func TestCreateRejectsUnparsableSlot(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := newTestService(repo)

	in := validCreateInput()
	in.TimeSlot = "next tuesday"

	_, err := svc.Create(in)
	var validationErr ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(repo.records) != 0 {
		t.Error("no record may be persisted when the slot is unparsable")
	}
}

func TestCreateUnknownProviderNotFound(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := newTestService(repo)

	in := validCreateInput()
	in.ProviderID = "ghost"

	_, err := svc.Create(in)
	var notFoundErr NotFoundError
	if !errors.As(err, &notFoundErr) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestCreateCustomerAsProviderNotFound(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := newTestService(repo)

	// c1 exists but does not carry the provider role.
	in := validCreateInput()
	in.ProviderID = "c1"

	_, err := svc.Create(in)
	var notFoundErr NotFoundError
	if !errors.As(err, &notFoundErr) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestCreateUnknownServiceNotFound(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := newTestService(repo)

	// p1 offers no service named "Haircut".
	in := validCreateInput()
	in.ServiceName = "Haircut"

	_, err := svc.Create(in)
	var notFoundErr NotFoundError
	if !errors.As(err, &notFoundErr) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if len(repo.records) != 0 {
		t.Error("no record may be persisted when the service lookup fails")
	}
}

// --- UpdateStatus ---

func TestUpdateStatusAcceptsPendingRequest(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := newTestService(repo)
	seedRequest(repo, models.StatusPending)

	updated, err := svc.UpdateStatus("r1", models.StatusAccepted, "p1")
	if err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}
	if updated.Status != models.StatusAccepted {
		t.Errorf("returned status = %s, want accepted", updated.Status)
	}
	if repo.records["r1"].Status != models.StatusAccepted {
		t.Errorf("stored status = %s, want accepted", repo.records["r1"].Status)
	}
}

func TestUpdateStatusUnknownRequest(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := newTestService(repo)

	_, err := svc.UpdateStatus("missing", models.StatusAccepted, "p1")
	var notFoundErr NotFoundError
	if !errors.As(err, &notFoundErr) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestUpdateStatusForeignProviderForbidden(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := newTestService(repo)
	seedRequest(repo, models.StatusPending)

	// The transition itself would be valid; ownership is checked first.
	_, err := svc.UpdateStatus("r1", models.StatusAccepted, "p2")
	var forbiddenErr ForbiddenError
	if !errors.As(err, &forbiddenErr) {
		t.Fatalf("expected ForbiddenError, got %v", err)
	}
	if repo.records["r1"].Status != models.StatusPending {
		t.Error("stored status must be unchanged after a forbidden update")
	}
}

func TestUpdateStatusRejectsIllegalTransitions(t *testing.T) {
	cases := []struct {
		name      string
		current   models.Status
		requested models.Status
	}{
		{"skip ahead", models.StatusPending, models.StatusInProgress},
		{"repeat applied transition", models.StatusAccepted, models.StatusAccepted},
		{"backward", models.StatusInProgress, models.StatusAccepted},
		{"out of terminal", models.StatusRejected, models.StatusAccepted},
		{"complete from pending", models.StatusPending, models.StatusCompleted},
		{"payment not provider settable", models.StatusCompleted, models.StatusPaymentCompleted},
		{"unknown status", models.StatusPending, models.Status("archived")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newFakeRequestRepo()
			svc := newTestService(repo)
			seedRequest(repo, tc.current)

			_, err := svc.UpdateStatus("r1", tc.requested, "p1")
			var validationErr ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("expected ValidationError for %s -> %s, got %v", tc.current, tc.requested, err)
			}
			if repo.records["r1"].Status != tc.current {
				t.Errorf("stored status changed to %s, want %s", repo.records["r1"].Status, tc.current)
			}
		})
	}
}

// --- ConfirmPayment ---

func TestConfirmPaymentCompletesLifecycle(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := newTestService(repo)
	seedRequest(repo, models.StatusCompleted)

	updated, err := svc.ConfirmPayment("r1", "c1")
	if err != nil {
		t.Fatalf("ConfirmPayment failed: %v", err)
	}
	if updated.Status != models.StatusPaymentCompleted {
		t.Errorf("status = %s, want PaymentCompleted", updated.Status)
	}
}

func TestConfirmPaymentWrongCustomerForbidden(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := newTestService(repo)
	seedRequest(repo, models.StatusCompleted)

	_, err := svc.ConfirmPayment("r1", "c2")
	var forbiddenErr ForbiddenError
	if !errors.As(err, &forbiddenErr) {
		t.Fatalf("expected ForbiddenError, got %v", err)
	}
}

func TestConfirmPaymentBeforeCompletionInvalid(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := newTestService(repo)
	seedRequest(repo, models.StatusInProgress)

	_, err := svc.ConfirmPayment("r1", "c1")
	var validationErr ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if repo.records["r1"].Status != models.StatusInProgress {
		t.Error("stored status must be unchanged")
	}
}

// --- listings ---

func TestListForProviderAttachesSummaries(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := newTestService(repo)
	seedRequest(repo, models.StatusPending)

	requests, err := svc.ListForProvider("p1")
	if err != nil {
		t.Fatalf("ListForProvider failed: %v", err)
	}
	if len(requests) != 1 {
		t.Fatalf("got %d requests, want 1", len(requests))
	}
	req := requests[0]
	if req.Customer == nil || req.Customer.Name != "Arjun" {
		t.Errorf("expected customer summary to be attached, got %+v", req.Customer)
	}
	if req.Service == nil || req.Service.Name != "Plumbing" || req.Service.Price != 499 {
		t.Errorf("expected service summary from snapshot fields, got %+v", req.Service)
	}
}

func TestListForCustomerAttachesProviderSummary(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := newTestService(repo)
	seedRequest(repo, models.StatusAccepted)

	requests, err := svc.ListForCustomer("c1")
	if err != nil {
		t.Fatalf("ListForCustomer failed: %v", err)
	}
	if len(requests) != 1 {
		t.Fatalf("got %d requests, want 1", len(requests))
	}
	if requests[0].Provider == nil || requests[0].Provider.Name != "Priya" {
		t.Errorf("expected provider summary to be attached, got %+v", requests[0].Provider)
	}
}
