// internal/model/callback_request.go
package model

import "time"

// Callback request statuses. A request only ever moves forward:
// new -> contacted -> closed.
const (
	StatusNew       = "new"
	StatusContacted = "contacted"
	StatusClosed    = "closed"
)

type CallbackRequest struct {
	ID            string    `db:"id" json:"id"`
	Name          string    `db:"name" json:"name"`
	Email         string    `db:"email" json:"email"`
	Phone         string    `db:"phone" json:"phone"`
	Note          string    `db:"note" json:"note,omitempty"`
	SourceIP      string    `db:"source_ip" json:"source_ip,omitempty"`
	Status        string    `db:"status" json:"status"`
	AssignedAgent *string   `db:"assigned_agent" json:"assigned_agent,omitempty"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

// StatusRank orders the statuses for the forward-only transition check.
// Unknown statuses rank -1.
func StatusRank(status string) int {
	switch status {
	case StatusNew:
		return 0
	case StatusContacted:
		return 1
	case StatusClosed:
		return 2
	}
	return -1
}

// ValidStatus reports whether status is one of the known statuses.
func ValidStatus(status string) bool {
	return StatusRank(status) >= 0
}
