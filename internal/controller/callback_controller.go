// internal/controller/callback_controller.go
package controller

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	appErrors "github.com/P7yush-Singh/CrSaathi/internal/errors"
	"github.com/P7yush-Singh/CrSaathi/internal/ratelimit"
	"github.com/P7yush-Singh/CrSaathi/internal/sanitize"
	"github.com/P7yush-Singh/CrSaathi/internal/service"
)

type CallbackController struct {
	CallbackService *service.CallbackService
	// Production hides store and unexpected fault details from clients.
	Production bool
}

// SubmitCallback handles POST /api/callbacks.
func (c *CallbackController) SubmitCallback(w http.ResponseWriter, r *http.Request) {
	ip := ratelimit.ClientIP(r)

	// Decode into a loose map so non-string field values degrade to
	// empty strings instead of failing the whole body.
	var body map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	in := service.SubmitInput{
		Name:  sanitize.Coerce(body["name"]),
		Email: sanitize.Coerce(body["email"]),
		Phone: sanitize.Coerce(body["phone"]),
		Note:  sanitize.Coerce(body["note"]),
	}

	req, err := c.CallbackService.Submit(ip, in)
	if err != nil {
		c.writeSubmitError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"ok": true,
		"id": req.ID,
	})
}

func (c *CallbackController) writeSubmitError(w http.ResponseWriter, err error) {
	var ve *appErrors.ValidationError
	var se *appErrors.StoreError

	switch {
	case errors.Is(err, appErrors.ErrRateLimited):
		writeError(w, http.StatusTooManyRequests, err.Error())
	case errors.As(err, &ve):
		writeError(w, http.StatusBadRequest, ve.Msg)
	case errors.As(err, &se):
		log.Println("❌ failed to save callback request:", se.Err)
		msg := "Failed to save request"
		if !c.Production {
			msg = se.Err.Error()
		}
		writeError(w, http.StatusInternalServerError, msg)
	default:
		log.Println("❌ unexpected callback error:", err)
		msg := "Internal Server Error"
		if !c.Production {
			msg = err.Error()
		}
		writeError(w, http.StatusInternalServerError, msg)
	}
}

// ListCallbacks returns a paginated page of requests for the triage
// dashboard. GET /api/callbacks?page=&page_size=&status=
func (c *CallbackController) ListCallbacks(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))
	status := r.URL.Query().Get("status")

	requests, pagination, err := c.CallbackService.List(page, pageSize, status)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch callback requests")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data":       requests,
		"pagination": pagination,
	})
}

// UpdateCallback handles PATCH /api/callbacks/{id}: status moves and
// agent assignment from the downstream triage workflow.
func (c *CallbackController) UpdateCallback(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var body struct {
		Status        string  `json:"status"`
		AssignedAgent *string `json:"assigned_agent"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	req, err := c.CallbackService.UpdateStatus(id, body.Status, body.AssignedAgent)
	if err != nil {
		var ve *appErrors.ValidationError
		var nf *appErrors.ErrCallbackNotFound
		switch {
		case errors.As(err, &ve):
			writeError(w, http.StatusBadRequest, ve.Msg)
		case errors.As(err, &nf):
			writeError(w, http.StatusNotFound, nf.Error())
		default:
			writeError(w, http.StatusInternalServerError, "failed to update callback request")
		}
		return
	}

	writeJSON(w, http.StatusOK, req)
}
