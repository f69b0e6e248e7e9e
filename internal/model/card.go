// internal/model/card.go
package model

import "time"

type Card struct {
	ID          string    `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Bank        string    `db:"bank" json:"bank"`
	Category    string    `db:"category" json:"category"` // e.g. "Travel", "Cashback", "Rewards"
	AnnualFee   float64   `db:"annual_fee" json:"annual_fee"`
	RewardsText string    `db:"rewards_text" json:"rewards_text"`
	MinScore    int       `db:"min_score" json:"min_score"`
	MinIncome   int       `db:"min_income" json:"min_income"`
	Features    []string  `db:"features" json:"features"`
	Pros        []string  `db:"pros" json:"pros"`
	Cons        []string  `db:"cons" json:"cons"`
	ImageURL    string    `db:"image_url" json:"image_url,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}
