package wire

import (
	"movie-review/internal/adaptor"
	"movie-review/internal/data/repository"
	"movie-review/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Group(func(r chi.Router) {
		r.Use(member(repo, log)...)

		r.Get("/api/user/profile", userHandler.GetProfile)
		r.Get("/api/users", userHandler.GetAllUsers)
		r.Get("/api/users/{id}", userHandler.GetUserPage)
	})
}
