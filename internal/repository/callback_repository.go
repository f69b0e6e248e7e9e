package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	appErrors "github.com/P7yush-Singh/CrSaathi/internal/errors"
	"github.com/P7yush-Singh/CrSaathi/internal/model"
)

// CallbackRepositoryInterface defines the store operations consumed by
// the intake service and the triage endpoints.
type CallbackRepositoryInterface interface {
	Create(req *model.CallbackRequest) error
	GetByID(id string) (*model.CallbackRequest, error)
	List(offset, limit int, status string) ([]*model.CallbackRequest, int, error)
	UpdateStatus(id, status string, assignedAgent *string) error
}

// CallbackRepository is the Postgres implementation
type CallbackRepository struct {
	DB *sql.DB
}

// Create persists an accepted submission, assigning its id and
// timestamps. The record is written exactly once and never deleted.
func (r *CallbackRepository) Create(req *model.CallbackRequest) error {
	now := time.Now()
	req.ID = uuid.NewString()
	req.CreatedAt = now
	req.UpdatedAt = now
	if req.Status == "" {
		req.Status = model.StatusNew
	}

	query := `
        INSERT INTO callback_requests
        (id, name, email, phone, note, source_ip, status, assigned_agent, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    `
	_, err := r.DB.Exec(
		query,
		req.ID,
		req.Name,
		req.Email,
		req.Phone,
		req.Note,
		req.SourceIP,
		req.Status,
		req.AssignedAgent,
		req.CreatedAt,
		req.UpdatedAt,
	)
	return err
}

// GetByID fetches a callback request by its ID
func (r *CallbackRepository) GetByID(id string) (*model.CallbackRequest, error) {
	query := `
        SELECT id, name, email, phone, note, source_ip, status, assigned_agent, created_at, updated_at
        FROM callback_requests
        WHERE id=$1
    `
	var req model.CallbackRequest
	err := r.DB.QueryRow(query, id).Scan(
		&req.ID, &req.Name, &req.Email, &req.Phone, &req.Note,
		&req.SourceIP, &req.Status, &req.AssignedAgent,
		&req.CreatedAt, &req.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.NewCallbackNotFound(id)
		}
		return nil, err
	}
	return &req, nil
}

// List returns a page of callback requests, newest first, optionally
// filtered by status, plus the total count for pagination.
func (r *CallbackRepository) List(offset, limit int, status string) ([]*model.CallbackRequest, int, error) {
	requests := []*model.CallbackRequest{}
	query := `
        SELECT id, name, email, phone, note, source_ip, status, assigned_agent, created_at, updated_at
        FROM callback_requests WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if status != "" {
		query += fmt.Sprintf(" AND status=$%d", argPos)
		args = append(args, status)
		argPos++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argPos, argPos+1)
	args = append(args, limit, offset)

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	for rows.Next() {
		req := &model.CallbackRequest{}
		if err := rows.Scan(
			&req.ID, &req.Name, &req.Email, &req.Phone, &req.Note,
			&req.SourceIP, &req.Status, &req.AssignedAgent,
			&req.CreatedAt, &req.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		requests = append(requests, req)
	}

	countQuery := `SELECT COUNT(*) FROM callback_requests WHERE 1=1`
	argsCount := []interface{}{}
	if status != "" {
		countQuery += " AND status=$1"
		argsCount = append(argsCount, status)
	}

	var total int
	if err := r.DB.QueryRow(countQuery, argsCount...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}

// UpdateStatus moves a request along the triage workflow and refreshes
// updated_at. The forward-only transition rule is enforced by the
// service before calling this.
func (r *CallbackRepository) UpdateStatus(id, status string, assignedAgent *string) error {
	query := `
        UPDATE callback_requests
        SET status=$1, assigned_agent=COALESCE($2, assigned_agent), updated_at=$3
        WHERE id=$4
    `
	res, err := r.DB.Exec(query, status, assignedAgent, time.Now(), id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return appErrors.NewCallbackNotFound(id)
	}
	return nil
}

var _ CallbackRepositoryInterface = (*CallbackRepository)(nil)
