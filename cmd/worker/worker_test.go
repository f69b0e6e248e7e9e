package main

import (
	"context"
	"errors"
	"testing"

	"github.com/P7yush-Singh/CrSaathi/internal/model"
	"github.com/P7yush-Singh/CrSaathi/internal/queue"
)

type stubSender struct {
	customer    int
	operations  int
	customerErr error
}

func (s *stubSender) SendCustomerConfirmation(ctx context.Context, req *model.CallbackRequest) error {
	s.customer++
	return s.customerErr
}

func (s *stubSender) SendOperationsAlert(ctx context.Context, req *model.CallbackRequest) error {
	s.operations++
	return nil
}

func TestDeliverRoutesByKind(t *testing.T) {
	sender := &stubSender{}
	req := &model.CallbackRequest{ID: "cb-1", Email: "asha@x.com"}

	if err := deliver(queue.NotificationJob{Kind: queue.KindCustomer, Request: req}, sender); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := deliver(queue.NotificationJob{Kind: queue.KindOperations, Request: req}, sender); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sender.customer != 1 || sender.operations != 1 {
		t.Errorf("expected 1/1 deliveries, got %d/%d", sender.customer, sender.operations)
	}
}

func TestDeliverPropagatesSendErrors(t *testing.T) {
	sender := &stubSender{customerErr: errors.New("resend: status 500")}
	req := &model.CallbackRequest{ID: "cb-1"}

	if err := deliver(queue.NotificationJob{Kind: queue.KindCustomer, Request: req}, sender); err == nil {
		t.Error("send failures must surface so the message is retried")
	}
}

func TestDeliverDropsMalformedJobs(t *testing.T) {
	sender := &stubSender{}

	if err := deliver(queue.NotificationJob{Kind: "bogus", Request: &model.CallbackRequest{}}, sender); err != nil {
		t.Errorf("unknown kinds are dropped, not retried: %v", err)
	}
	if err := deliver(queue.NotificationJob{Kind: queue.KindCustomer}, sender); err != nil {
		t.Errorf("missing payloads are dropped, not retried: %v", err)
	}
	if sender.customer != 0 || sender.operations != 0 {
		t.Error("malformed jobs must not reach the sender")
	}
}
