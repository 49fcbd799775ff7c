package wire

import (
	"movie-review/internal/adaptor"
	"movie-review/internal/data/repository"
	"movie-review/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireMovie(
	r chi.Router,
	movieHandler *adaptor.MovieHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// The catalog is private: every route needs a member session.
	r.Group(func(r chi.Router) {
		r.Use(member(repo, log)...)

		r.Get("/api/movies", movieHandler.GetMovies)
		r.Get("/api/movies/{id}", movieHandler.GetMovieByID)
		r.Get("/api/genres", movieHandler.GetGenres)
	})
}
