package repository

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/P7yush-Singh/CrSaathi/internal/model"
)

// CardFilter holds the catalog search parameters. Zero values mean
// "no constraint" except Limit, which the service defaults.
type CardFilter struct {
	Query    string
	Bank     string
	Category string
	MinFee   float64
	MaxFee   *float64
	Limit    int
}

// CardRepositoryInterface defines methods used by the catalog endpoint
type CardRepositoryInterface interface {
	List(f CardFilter) ([]*model.Card, error)
}

// CardRepository is the concrete implementation
type CardRepository struct {
	DB *sql.DB
}

const cardColumns = `id, name, bank, category, annual_fee, rewards_text,
        min_score, min_income, features, pros, cons, image_url, created_at, updated_at`

// List fetches cards matching the filter, newest first. The free-text
// query matches across name, bank, category, rewards text and features.
func (r *CardRepository) List(f CardFilter) ([]*model.Card, error) {
	query := `SELECT ` + cardColumns + ` FROM cards WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if f.Bank != "" {
		query += fmt.Sprintf(" AND bank ILIKE $%d", argPos)
		args = append(args, f.Bank+"%")
		argPos++
	}
	if f.Category != "" {
		query += fmt.Sprintf(" AND category ILIKE $%d", argPos)
		args = append(args, f.Category+"%")
		argPos++
	}
	if f.MinFee > 0 {
		query += fmt.Sprintf(" AND annual_fee >= $%d", argPos)
		args = append(args, f.MinFee)
		argPos++
	}
	if f.MaxFee != nil {
		query += fmt.Sprintf(" AND annual_fee <= $%d", argPos)
		args = append(args, *f.MaxFee)
		argPos++
	}
	if f.Query != "" {
		query += fmt.Sprintf(
			" AND (name ILIKE $%d OR bank ILIKE $%d OR category ILIKE $%d OR rewards_text ILIKE $%d OR array_to_string(features, ' ') ILIKE $%d)",
			argPos, argPos, argPos, argPos, argPos,
		)
		args = append(args, "%"+f.Query+"%")
		argPos++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", argPos)
	args = append(args, f.Limit)

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cards := []*model.Card{}
	for rows.Next() {
		c := &model.Card{}
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Bank, &c.Category, &c.AnnualFee, &c.RewardsText,
			&c.MinScore, &c.MinIncome,
			pq.Array(&c.Features), pq.Array(&c.Pros), pq.Array(&c.Cons),
			&c.ImageURL, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, rows.Err()
}

var _ CardRepositoryInterface = (*CardRepository)(nil)
