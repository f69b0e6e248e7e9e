// internal/service/callback_service.go
package service

import (
	"fmt"

	appErrors "github.com/P7yush-Singh/CrSaathi/internal/errors"
	"github.com/P7yush-Singh/CrSaathi/internal/model"
	"github.com/P7yush-Singh/CrSaathi/internal/notify"
	"github.com/P7yush-Singh/CrSaathi/internal/repository"
	"github.com/P7yush-Singh/CrSaathi/internal/sanitize"
)

// Admitter decides whether a request from identity may proceed.
type Admitter interface {
	Allow(identity string) bool
}

// SubmitInput carries the raw, already-coerced form fields.
type SubmitInput struct {
	Name  string
	Email string
	Phone string
	Note  string
}

// CallbackService sequences the intake pipeline: admission, validation,
// durable write, then detached notification dispatch.
type CallbackService struct {
	Repo     repository.CallbackRepositoryInterface
	Limiter  Admitter
	Notifier notify.Notifier
}

// Submit runs one submission through the pipeline. On success the
// stored record is returned; the notifications have already been handed
// to the Notifier, whose outcome never affects the result. Errors:
// appErrors.ErrRateLimited, *appErrors.ValidationError,
// *appErrors.StoreError.
func (s *CallbackService) Submit(identity string, in SubmitInput) (*model.CallbackRequest, error) {
	if !s.Limiter.Allow(identity) {
		return nil, appErrors.ErrRateLimited
	}

	req, err := sanitize.CallbackDraft(in.Name, in.Email, in.Phone, in.Note)
	if err != nil {
		return nil, err
	}
	req.SourceIP = identity

	if err := s.Repo.Create(req); err != nil {
		return nil, appErrors.NewStoreError(err)
	}

	// The outcome is decided; everything past this point is
	// fire-and-forget.
	if s.Notifier != nil {
		s.Notifier.NotifyCustomer(req)
		s.Notifier.NotifyOperations(req)
	}

	return req, nil
}

// List fetches a page of callback requests for the triage dashboard.
func (s *CallbackService) List(page, pageSize int, status string) ([]*model.CallbackRequest, map[string]int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}
	offset := (page - 1) * pageSize

	requests, total, err := s.Repo.List(offset, pageSize, status)
	if err != nil {
		return nil, nil, err
	}

	totalPages := (total + pageSize - 1) / pageSize
	pagination := map[string]int{
		"page":        page,
		"page_size":   pageSize,
		"total_count": total,
		"total_pages": totalPages,
	}
	return requests, pagination, nil
}

// UpdateStatus moves a request along the triage workflow, enforcing the
// forward-only new -> contacted -> closed rule.
func (s *CallbackService) UpdateStatus(id, status string, assignedAgent *string) (*model.CallbackRequest, error) {
	if !model.ValidStatus(status) {
		return nil, appErrors.NewValidationError("status", fmt.Sprintf("Invalid status %q.", status))
	}

	existing, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if model.StatusRank(status) <= model.StatusRank(existing.Status) && status != existing.Status {
		return nil, appErrors.NewValidationError(
			"status",
			fmt.Sprintf("Cannot move status backward from %q to %q.", existing.Status, status),
		)
	}

	if err := s.Repo.UpdateStatus(id, status, assignedAgent); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(id)
}
