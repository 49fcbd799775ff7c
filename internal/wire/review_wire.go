package wire

import (
	"movie-review/internal/adaptor"
	"movie-review/internal/data/repository"
	"movie-review/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReview(
	r chi.Router,
	reviewHandler *adaptor.ReviewHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Group(func(r chi.Router) {
		r.Use(member(repo, log)...)

		// Creates the caller's review of a movie or replaces it
		r.Post("/api/review", reviewHandler.SubmitReview)
		r.Get("/api/user/reviews", reviewHandler.GetUserReviews)
	})
}
