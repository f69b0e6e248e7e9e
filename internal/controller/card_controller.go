// internal/controller/card_controller.go
package controller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/P7yush-Singh/CrSaathi/internal/repository"
)

type CardController struct {
	Repo repository.CardRepositoryInterface
}

// GetCards handles GET /api/cards: the catalog search/filter
// pass-through backing the comparison pages.
func (c *CardController) GetCards(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := repository.CardFilter{
		Query:    strings.TrimSpace(q.Get("q")),
		Bank:     strings.TrimSpace(q.Get("bank")),
		Category: strings.TrimSpace(q.Get("category")),
		Limit:    20,
	}

	if v, err := strconv.ParseFloat(q.Get("minFee"), 64); err == nil && v > 0 {
		filter.MinFee = v
	}
	if raw := q.Get("maxFee"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MaxFee = &v
		}
	}
	if n, err := strconv.Atoi(q.Get("limit")); err == nil && n > 0 {
		filter.Limit = n
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}

	cards, err := c.Repo.List(filter)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"ok":    false,
			"error": "failed to fetch cards",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"ok":    true,
		"cards": cards,
	})
}
