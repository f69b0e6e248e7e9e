package service_test

import (
	"errors"
	"testing"

	appErrors "github.com/P7yush-Singh/CrSaathi/internal/errors"
	"github.com/P7yush-Singh/CrSaathi/internal/model"
	"github.com/P7yush-Singh/CrSaathi/internal/service"
)

// --- Mock collaborators ---

type MockCallbackRepo struct {
	created    []*model.CallbackRequest
	failCreate error
	existing   *model.CallbackRequest
	updated    []string
}

func (m *MockCallbackRepo) Create(req *model.CallbackRequest) error {
	if m.failCreate != nil {
		return m.failCreate
	}
	req.ID = "generated-id"
	m.created = append(m.created, req)
	return nil
}

func (m *MockCallbackRepo) GetByID(id string) (*model.CallbackRequest, error) {
	if m.existing == nil || m.existing.ID != id {
		return nil, appErrors.NewCallbackNotFound(id)
	}
	return m.existing, nil
}

func (m *MockCallbackRepo) List(offset, limit int, status string) ([]*model.CallbackRequest, int, error) {
	return []*model.CallbackRequest{}, 0, nil
}

func (m *MockCallbackRepo) UpdateStatus(id, status string, assignedAgent *string) error {
	m.updated = append(m.updated, status)
	m.existing.Status = status
	if assignedAgent != nil {
		m.existing.AssignedAgent = assignedAgent
	}
	return nil
}

type MockNotifier struct {
	customer   int
	operations int
}

func (m *MockNotifier) NotifyCustomer(req *model.CallbackRequest)   { m.customer++ }
func (m *MockNotifier) NotifyOperations(req *model.CallbackRequest) { m.operations++ }

type allowAll struct{}

func (allowAll) Allow(identity string) bool { return true }

type denyAll struct{}

func (denyAll) Allow(identity string) bool { return false }

func validInput() service.SubmitInput {
	return service.SubmitInput{
		Name:  "Asha K",
		Email: "asha@x.com",
		Phone: "9876543210",
	}
}

// --- Tests ---

func TestSubmitStoresAndNotifies(t *testing.T) {
	repo := &MockCallbackRepo{}
	notifier := &MockNotifier{}
	svc := &service.CallbackService{Repo: repo, Limiter: allowAll{}, Notifier: notifier}

	req, err := svc.Submit("9.9.9.9", validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if req.ID == "" {
		t.Error("expected a store-assigned id")
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected exactly one stored record, got %d", len(repo.created))
	}
	if repo.created[0].Status != model.StatusNew {
		t.Errorf("expected status new, got %q", repo.created[0].Status)
	}
	if repo.created[0].SourceIP != "9.9.9.9" {
		t.Errorf("expected source ip recorded, got %q", repo.created[0].SourceIP)
	}
	if notifier.customer != 1 || notifier.operations != 1 {
		t.Errorf("expected both notifications dispatched, got customer=%d operations=%d",
			notifier.customer, notifier.operations)
	}
}

func TestSubmitRateLimitedHasNoSideEffects(t *testing.T) {
	repo := &MockCallbackRepo{}
	notifier := &MockNotifier{}
	svc := &service.CallbackService{Repo: repo, Limiter: denyAll{}, Notifier: notifier}

	// Even a malformed submission is throttled before validation runs.
	_, err := svc.Submit("9.9.9.9", service.SubmitInput{Name: "A", Email: "bad", Phone: "1"})
	if !errors.Is(err, appErrors.ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}
	if len(repo.created) != 0 {
		t.Error("rate-limited submission must not be stored")
	}
	if notifier.customer != 0 || notifier.operations != 0 {
		t.Error("rate-limited submission must not be notified")
	}
}

func TestSubmitInvalidHasNoSideEffects(t *testing.T) {
	repo := &MockCallbackRepo{}
	notifier := &MockNotifier{}
	svc := &service.CallbackService{Repo: repo, Limiter: allowAll{}, Notifier: notifier}

	in := validInput()
	in.Phone = "123"
	_, err := svc.Submit("9.9.9.9", in)

	var ve *appErrors.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected a validation error, got %v", err)
	}
	if ve.Field != "phone" {
		t.Errorf("expected phone failure, got %q", ve.Field)
	}
	if len(repo.created) != 0 || notifier.customer != 0 || notifier.operations != 0 {
		t.Error("invalid submission must have no side effects")
	}
}

func TestSubmitStoreFailureSkipsNotifications(t *testing.T) {
	repo := &MockCallbackRepo{failCreate: errors.New("connection refused")}
	notifier := &MockNotifier{}
	svc := &service.CallbackService{Repo: repo, Limiter: allowAll{}, Notifier: notifier}

	_, err := svc.Submit("9.9.9.9", validInput())

	var se *appErrors.StoreError
	if !errors.As(err, &se) {
		t.Fatalf("expected a store error, got %v", err)
	}
	if notifier.customer != 0 || notifier.operations != 0 {
		t.Error("no notification may be made when persistence fails")
	}
}

func TestUpdateStatusForwardOnly(t *testing.T) {
	repo := &MockCallbackRepo{
		existing: &model.CallbackRequest{ID: "r1", Status: model.StatusContacted},
	}
	svc := &service.CallbackService{Repo: repo, Limiter: allowAll{}}

	if _, err := svc.UpdateStatus("r1", model.StatusNew, nil); err == nil {
		t.Error("moving contacted back to new should be rejected")
	}
	if _, err := svc.UpdateStatus("r1", "bogus", nil); err == nil {
		t.Error("unknown status should be rejected")
	}

	req, err := svc.UpdateStatus("r1", model.StatusClosed, nil)
	if err != nil {
		t.Fatalf("contacted -> closed should be allowed: %v", err)
	}
	if req.Status != model.StatusClosed {
		t.Errorf("expected closed, got %q", req.Status)
	}
}

func TestUpdateStatusNotFound(t *testing.T) {
	svc := &service.CallbackService{Repo: &MockCallbackRepo{}, Limiter: allowAll{}}

	_, err := svc.UpdateStatus("missing", model.StatusContacted, nil)
	var nf *appErrors.ErrCallbackNotFound
	if !errors.As(err, &nf) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}
