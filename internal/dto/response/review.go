package response

import (
	"time"

	"movie-review/internal/data/entity"
)

// Submission outcomes reported back to the client.
const (
	SubmitTypeAddition     = "addition"
	SubmitTypeModification = "modification"
)

type ReviewAuthorResponse struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Image *string `json:"image,omitempty"`
}

type ReviewMovieResponse struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Image *string `json:"image,omitempty"`
}

type ReviewResponse struct {
	ID        string                `json:"id"`
	UserID    string                `json:"user_id"`
	MovieID   string                `json:"movie_id"`
	Rating    float64               `json:"rating"`
	Concept   float64               `json:"concept"`
	Cinema    float64               `json:"cinema"`
	Perform   float64               `json:"perform"`
	Comment   *string               `json:"comment,omitempty"`
	Author    *ReviewAuthorResponse `json:"author"`
	Movie     *ReviewMovieResponse  `json:"movie,omitempty"`
	CreatedAt time.Time             `json:"created_at"`
	UpdatedAt time.Time             `json:"updated_at"`
}

type SubmitReviewResponse struct {
	Type   string         `json:"type"`
	Review ReviewResponse `json:"review"`
}

// UserReviewsResponse is the user page payload.
type UserReviewsResponse struct {
	User          UserResponse     `json:"user"`
	Reviews       []ReviewResponse `json:"reviews"`
	ReviewCount   int              `json:"review_count"`
	AverageRating float64          `json:"average_rating"`
}

func ReviewToResponse(review *entity.Review) ReviewResponse {
	resp := ReviewResponse{
		ID:        review.ID.String(),
		UserID:    review.UserID.String(),
		MovieID:   review.MovieID.String(),
		Rating:    review.Rating,
		Concept:   review.Concept,
		Cinema:    review.Cinema,
		Perform:   review.Perform,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
		UpdatedAt: review.UpdatedAt,
	}

	if review.Author != nil {
		resp.Author = &ReviewAuthorResponse{
			ID:    review.Author.ID.String(),
			Name:  review.Author.Name,
			Image: review.Author.Image,
		}
	}
	if review.Movie != nil {
		resp.Movie = &ReviewMovieResponse{
			ID:    review.Movie.ID.String(),
			Name:  review.Movie.Name,
			Image: review.Movie.Image,
		}
	}

	return resp
}

func ReviewsToResponse(reviews []*entity.Review) []ReviewResponse {
	resp := make([]ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		resp = append(resp, ReviewToResponse(r))
	}
	return resp
}

// NewUserReviewsResponse builds the user page, averaging the overall rating.
func NewUserReviewsResponse(user *entity.User, reviews []*entity.Review) UserReviewsResponse {
	var sum float64
	for _, r := range reviews {
		sum += r.Rating
	}

	avg := 0.0
	if len(reviews) > 0 {
		avg = sum / float64(len(reviews))
	}

	return UserReviewsResponse{
		User:          UserToResponse(user),
		Reviews:       ReviewsToResponse(reviews),
		ReviewCount:   len(reviews),
		AverageRating: avg,
	}
}
