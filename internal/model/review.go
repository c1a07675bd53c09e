package model

import "time"

// Review mirrors the `tour_reviews` table. Reviews are linked to tours by
// foreign key but carry only a free-form username, not a user ID.
type Review struct {
	ID         uint64    `json:"id"`
	TourID     uint64    `json:"tour_id"`
	Username   string    `json:"username"`
	ReviewText string    `json:"review_text"`
	Rating     int       `json:"rating"`
	CreatedAt  time.Time `json:"created_at"`
}
