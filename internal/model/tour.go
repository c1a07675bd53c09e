package model

import "time"

// Tour mirrors the `tours` table. Distance is kilometres from the city
// centre and Price is the per-person rate. Field names in JSON follow the
// public API contract (camelCase for the multi-word columns).
type Tour struct {
	ID           uint64    `json:"id"`
	Title        string    `json:"title"`
	City         string    `json:"city"`
	Address      string    `json:"address"`
	Distance     int       `json:"distance"`
	Photo        *string   `json:"photo"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	MaxGroupSize int       `json:"maxGroupSize"`
	Featured     bool      `json:"featured"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TourWithReviews is a tour row plus its aggregated reviews, as returned
// by list endpoints. Reviews is always non-nil so empty aggregates render
// as [] rather than null.
type TourWithReviews struct {
	Tour
	Reviews []Review `json:"reviews"`
}
