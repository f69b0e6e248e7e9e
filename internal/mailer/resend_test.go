package mailer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/P7yush-Singh/CrSaathi/internal/model"
)

func TestSendPostsToResend(t *testing.T) {
	var got emailPayload
	var auth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("failed to decode payload: %v", err)
		}
		w.Write([]byte(`{"id":"email-1"}`))
	}))
	defer srv.Close()

	c := New("key-123", "no-reply@creditsaathi.in", WithBaseURL(srv.URL))
	err := c.Send(context.Background(), "asha@x.com", "subject", "<p>hi</p>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if auth != "Bearer key-123" {
		t.Errorf("expected bearer auth, got %q", auth)
	}
	if got.From != "no-reply@creditsaathi.in" || got.To != "asha@x.com" {
		t.Errorf("unexpected payload: %+v", got)
	}
	if got.HTML != "<p>hi</p>" {
		t.Errorf("unexpected html: %q", got.HTML)
	}
}

func TestSendSurfacesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"invalid sender"}`, http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	c := New("key-123", "no-reply@creditsaathi.in", WithBaseURL(srv.URL))
	err := c.Send(context.Background(), "asha@x.com", "subject", "<p>hi</p>")
	if err == nil {
		t.Fatal("expected an error for a non-2xx response")
	}
	if !strings.Contains(err.Error(), "422") {
		t.Errorf("expected the status in the error, got %v", err)
	}
}

func TestSendWithoutAPIKeyIsNoop(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer srv.Close()

	c := New("", "no-reply@creditsaathi.in", WithBaseURL(srv.URL))
	if err := c.Send(context.Background(), "asha@x.com", "subject", "x"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if atomic.LoadInt32(&calls) != 0 {
		t.Error("no HTTP call may be made without an API key")
	}
}

func TestTemplatesEscapeUntrustedInput(t *testing.T) {
	req := &model.CallbackRequest{
		Name:  `<script>alert("x")</script>`,
		Email: "asha@x.com",
		Phone: "9876543210",
		Note:  `<img src=x onerror=alert(1)>`,
	}

	body := OperationsAlertHTML(req)
	if strings.Contains(body, "<script>") || strings.Contains(body, "<img") {
		t.Error("alert body must escape submitted HTML")
	}
	if !strings.Contains(body, "&lt;script&gt;") {
		t.Error("expected the escaped name in the body")
	}

	confirm := CustomerConfirmationHTML(req.Name, "ops@creditsaathi.in")
	if strings.Contains(confirm, "<script>") {
		t.Error("confirmation body must escape the submitted name")
	}
}
