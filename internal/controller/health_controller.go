// internal/controller/health_controller.go
package controller

import (
	"database/sql"
	"net/http"
)

type HealthController struct {
	DB *sql.DB
}

// TestDB handles GET /api/test-db with a connectivity ping.
func (c *HealthController) TestDB(w http.ResponseWriter, r *http.Request) {
	if err := c.DB.PingContext(r.Context()); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"ok":    false,
			"error": err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"ok":      true,
		"message": "Database connected successfully!",
	})
}
