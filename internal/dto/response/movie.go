package response

import (
	"time"

	"movie-review/internal/data/entity"
)

type MovieResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Image       *string   `json:"image,omitempty"`
	Rating      float64   `json:"rating"`
	ReviewCount int       `json:"review_count"`
	Genres      []string  `json:"genres"`
	CreatedAt   time.Time `json:"created_at"`
}

type MovieDetailResponse struct {
	MovieResponse
	UpdatedAt time.Time        `json:"updated_at"`
	Reviews   []ReviewResponse `json:"reviews"`
}

// Helper converters
func MovieToResponse(movie *entity.Movie) MovieResponse {
	genres := movie.Genres
	if genres == nil {
		genres = []string{}
	}

	return MovieResponse{
		ID:          movie.ID.String(),
		Name:        movie.Name,
		Image:       movie.Image,
		Rating:      movie.Rating,
		ReviewCount: movie.NumReviews,
		Genres:      genres,
		CreatedAt:   movie.CreatedAt,
	}
}

func MoviesToResponse(movies []*entity.Movie) []MovieResponse {
	resp := make([]MovieResponse, 0, len(movies))
	for _, m := range movies {
		resp = append(resp, MovieToResponse(m))
	}
	return resp
}

func MovieToDetailResponse(detail *entity.MovieDetail) MovieDetailResponse {
	return MovieDetailResponse{
		MovieResponse: MovieToResponse(&detail.Movie),
		UpdatedAt:     detail.UpdatedAt,
		Reviews:       ReviewsToResponse(detail.Reviews),
	}
}
