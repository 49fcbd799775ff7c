package entity

// Movie is a catalog entry. Genres and NumReviews are read-side projections.
type Movie struct {
	Base
	Name       string   `db:"name" json:"name"`
	Image      *string  `db:"image" json:"image,omitempty"`
	Rating     float64  `db:"rating" json:"rating"`
	Genres     []string `db:"genres" json:"genres"`
	NumReviews int      `db:"num_reviews" json:"num_reviews"`
}

// MovieDetail is a movie together with its reviews.
type MovieDetail struct {
	Movie
	Reviews []*Review `json:"reviews"`
}
