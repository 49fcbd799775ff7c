package entity

import (
	"github.com/google/uuid"
)

type Review struct {
	BaseNoDelete
	UserID  uuid.UUID `db:"user_id" json:"user_id"`
	MovieID uuid.UUID `db:"movie_id" json:"movie_id"`
	Rating  float64   `db:"rating" json:"rating"` // 0-10
	Concept float64   `db:"concept" json:"concept"`
	Cinema  float64   `db:"cinema" json:"cinema"`
	Perform float64   `db:"perform" json:"perform"`
	Comment *string   `db:"comment" json:"comment,omitempty"`

	// Author is nil when the user no longer exists.
	Author *ReviewAuthor `db:"-" json:"author,omitempty"`
	// Movie is only populated on per-user listings.
	Movie *ReviewMovie `db:"-" json:"movie,omitempty"`
}

type ReviewAuthor struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Image *string   `json:"image,omitempty"`
}

type ReviewMovie struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Image *string   `json:"image,omitempty"`
}
